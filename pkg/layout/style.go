package layout

import (
	"path"

	"github.com/lynxviz/lynxviz/pkg/codegraph"
)

// =============================================================================
// Style Resolution - Lookup Tables
// =============================================================================

// Shape classifies how the rendering surface draws a node outline.
type Shape string

// Node shapes by declaration kind.
const (
	ShapeRectangle Shape = "rectangle"
	ShapeRounded   Shape = "rounded"
	ShapeEllipse   Shape = "ellipse"
	ShapeDiamond   Shape = "diamond"
)

// kindShapes maps each recognized node kind to its shape. The kind set is
// closed, so a table replaces open-ended dispatch; kinds outside the table
// fall back to defaultShape.
var kindShapes = map[codegraph.Kind]Shape{
	codegraph.KindClass:    ShapeRectangle,
	codegraph.KindMethod:   ShapeRounded,
	codegraph.KindFunction: ShapeRounded,
	codegraph.KindProperty: ShapeEllipse,
	codegraph.KindImport:   ShapeDiamond,
}

// fileFills overrides the node fill for a closed set of recognized
// filenames. Matching is on the path base, so nested paths still pick up
// their override. Everything else gets defaultFill.
var fileFills = map[string]string{
	"main.py":       "#ffcccb",
	"operations.py": "#90ee90",
	"utils.py":      "#ffffe0",
	"__init__.py":   "#d3d3d3",
}

const (
	defaultShape = ShapeRounded
	defaultFill  = "#add8e6"

	borderColor = "#000000"
	borderWidth = 1.0
)

// StyleForNode resolves the visual style for a node from its kind and
// owning file. Unrecognized kinds get the default shape; the fill is
// file-driven either way. Never fails.
func StyleForNode(n codegraph.Node) NodeStyle {
	shape, ok := kindShapes[n.Kind]
	if !ok {
		shape = defaultShape
	}

	fill, ok := fileFills[path.Base(n.File)]
	if !ok {
		fill = defaultFill
	}

	return NodeStyle{
		Shape:       shape,
		Fill:        fill,
		Border:      borderColor,
		BorderWidth: borderWidth,
	}
}

// DefaultEdgeStyle returns the uniform style applied to every edge.
func DefaultEdgeStyle() EdgeStyle {
	return EdgeStyle{
		Stroke:      "darkblue",
		StrokeWidth: 1.5,
		Arrowhead:   "vee",
	}
}
