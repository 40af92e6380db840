package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/layout"
)

// ToDOT converts a layout to Graphviz DOT format.
// The resulting DOT string can be rendered with [SVG] or [PNG].
//
// Each container becomes a cluster subgraph labeled with its source file.
// Clusters, members, and edges are emitted in layout order, so identical
// layouts produce identical DOT text.
func ToDOT(lay *layout.Layout, g *codegraph.Graph) string {
	nodes := make(map[string]codegraph.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes[n.ID] = n
	}
	styles := make(map[string]layout.NodeStyle, len(lay.Nodes))
	for _, n := range lay.Nodes {
		styles[n.ID] = n.Style
	}

	var buf bytes.Buffer
	buf.WriteString("digraph CodeGraph {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", dotRankdir(lay.Direction))
	buf.WriteString("  node [shape=box, style=\"rounded,filled\"];\n")
	es := layout.DefaultEdgeStyle()
	fmt.Fprintf(&buf, "  edge [color=%s, arrowhead=%s, penwidth=%.1f];\n\n", es.Stroke, es.Arrowhead, es.StrokeWidth)

	for _, c := range lay.Containers {
		fmt.Fprintf(&buf, "  subgraph cluster_%s {\n", sanitizeID(c.Label))
		fmt.Fprintf(&buf, "    label=%q;\n", c.Label)
		buf.WriteString("    style=filled;\n")
		buf.WriteString("    fillcolor=lightsteelblue;\n")

		for _, id := range c.MemberIDs {
			attrs := nodeAttrs(nodes[id], styles[id])
			fmt.Fprintf(&buf, "    %q [%s];\n", sanitizeID(id), strings.Join(attrs, ", "))
		}
		buf.WriteString("  }\n\n")
	}

	for _, e := range lay.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", sanitizeID(e.SourceID), sanitizeID(e.TargetID))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotRankdir(direction string) string {
	if direction == layout.DirectionLR {
		return "LR"
	}
	return "TB"
}

// dotLabel renders the two-line node label: declaration name over line number.
func dotLabel(n codegraph.Node) string {
	line := "N/A"
	if n.Line > 0 {
		line = strconv.Itoa(n.Line)
	}
	return fmt.Sprintf("%s\nLine: %s", n.Name, line)
}

// nodeAttrs builds the attribute list for one node. Rounded boxes are the
// graph-level default, so only the other shapes carry overrides.
func nodeAttrs(n codegraph.Node, style layout.NodeStyle) []string {
	attrs := []string{fmt.Sprintf("label=%q", dotLabel(n))}
	switch style.Shape {
	case layout.ShapeRectangle:
		attrs = append(attrs, "shape=box", "style=filled")
	case layout.ShapeEllipse:
		attrs = append(attrs, "shape=ellipse", "style=filled")
	case layout.ShapeDiamond:
		attrs = append(attrs, "shape=diamond", "style=filled")
	}
	attrs = append(attrs, fmt.Sprintf("fillcolor=%q", style.Fill))
	return attrs
}

// DOT identifiers stay readable after sanitization: "add::operations.py"
// becomes "add_operations_py".
var dotIDSanitizer = strings.NewReplacer("::", "_", ".", "_", "-", "_", "/", "_")

func sanitizeID(id string) string {
	return dotIDSanitizer.Replace(id)
}
