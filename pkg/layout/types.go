package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/errors"
)

// =============================================================================
// Geometry Primitives
// =============================================================================

// Point is a canvas position. X grows rightward, Y grows downward.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Size is a width/height extent in canvas units.
type Size struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// =============================================================================
// Directions and Anchors
// =============================================================================

// Layout directions. The direction orients hierarchical containers and
// decides which node sides edges attach to.
const (
	DirectionTB = "TB" // ranks flow top to bottom
	DirectionLR = "LR" // ranks flow left to right
)

// DefaultDirection is used when Options.Direction is left empty.
const DefaultDirection = DirectionTB

// Anchor names the side of a node where an edge attaches.
type Anchor string

// Anchor sides, matching the vocabulary of node-link rendering surfaces.
const (
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
	AnchorLeft   Anchor = "left"
	AnchorRight  Anchor = "right"
)

// AnchorsForDirection returns the source-facing and target-facing anchor
// sides for a layout direction. Anchors are fixed once per pass, not
// recomputed per node: TB edges leave the bottom and enter the top, LR
// edges leave the right and enter the left.
func AnchorsForDirection(direction string) (source, target Anchor) {
	if direction == DirectionLR {
		return AnchorRight, AnchorLeft
	}
	return AnchorBottom, AnchorTop
}

// =============================================================================
// Intra-Container Strategy
// =============================================================================

// Strategy names the algorithm used to position members inside a container.
// It is resolved once per container, before any position is written.
type Strategy string

const (
	// StrategyHierarchical layers members by longest path along internal
	// edges, then orders each rank to reduce crossings.
	StrategyHierarchical Strategy = "hierarchical"

	// StrategyGrid places members in raster order. Used when the container
	// has no internal edges or only one member, where a layered ordering
	// has nothing to order by.
	StrategyGrid Strategy = "grid"
)

// =============================================================================
// Styles
// =============================================================================

// NodeStyle is the resolved visual style of a single node.
type NodeStyle struct {
	Shape       Shape   `json:"shape" bson:"shape"`
	Fill        string  `json:"fill" bson:"fill"`
	Border      string  `json:"border" bson:"border"`
	BorderWidth float64 `json:"border_width" bson:"border_width"`
}

// EdgeStyle is the resolved visual style of a single edge.
type EdgeStyle struct {
	Stroke      string  `json:"stroke" bson:"stroke"`
	StrokeWidth float64 `json:"stroke_width" bson:"stroke_width"`
	Arrowhead   string  `json:"arrowhead" bson:"arrowhead"`
}

// =============================================================================
// Output Records
// =============================================================================

// LayoutNode is the positioned form of a graph node. Positions are
// canvas-absolute: the owning container's offset and its title band are
// already included. Recomputed from scratch every pass, never patched.
type LayoutNode struct {
	ID           string    `json:"id" bson:"id"`
	Position     Point     `json:"position" bson:"position"`
	Size         Size      `json:"size" bson:"size"`
	Style        NodeStyle `json:"style" bson:"style"`
	ContainerID  string    `json:"container_id" bson:"container_id"`
	SourceAnchor Anchor    `json:"source_anchor" bson:"source_anchor"`
	TargetAnchor Anchor    `json:"target_anchor" bson:"target_anchor"`
}

// LayoutEdge is the output form of a graph edge, 1:1 with surviving input
// edges in input order. IDs are "e<index>" and therefore stable across runs
// on identical input.
type LayoutEdge struct {
	ID       string    `json:"id" bson:"id"`
	SourceID string    `json:"source_id" bson:"source_id"`
	TargetID string    `json:"target_id" bson:"target_id"`
	Style    EdgeStyle `json:"style" bson:"style"`
}

// Container is the visual group of all nodes sharing one source file.
// Containers appear in first-encounter order of their file, with IDs
// "c<index>" in that order and MemberIDs in original node order.
type Container struct {
	ID        string   `json:"id" bson:"id"`
	Label     string   `json:"label" bson:"label"` // the source file
	MemberIDs []string `json:"member_ids" bson:"member_ids"`
	Position  Point    `json:"position" bson:"position"`
	Size      Size     `json:"size" bson:"size"`
	Strategy  Strategy `json:"strategy" bson:"strategy"`
}

// Contains reports whether the node's rectangle lies fully inside the
// container's footprint.
func (c *Container) Contains(n LayoutNode) bool {
	return n.Position.X >= c.Position.X &&
		n.Position.Y >= c.Position.Y &&
		n.Position.X+n.Size.Width <= c.Position.X+c.Size.Width &&
		n.Position.Y+n.Size.Height <= c.Position.Y+c.Size.Height
}

// =============================================================================
// Layout - Engine Output
// =============================================================================

// Layout is the complete result of one layout pass.
type Layout struct {
	Direction  string       `json:"direction" bson:"direction"`
	Nodes      []LayoutNode `json:"nodes" bson:"nodes"`
	Edges      []LayoutEdge `json:"edges" bson:"edges"`
	Containers []Container  `json:"containers" bson:"containers"`

	// Report carries ingest diagnostics (dropped duplicates, dangling
	// edges, unknown kinds). Nil when normalization found nothing.
	Report *codegraph.Report `json:"report,omitempty" bson:"report,omitempty"`
}

// NodeByID returns the positioned node with the given id.
func (l *Layout) NodeByID(id string) (*LayoutNode, bool) {
	for i := range l.Nodes {
		if l.Nodes[i].ID == id {
			return &l.Nodes[i], true
		}
	}
	return nil, false
}

// ContainerByID returns the container with the given id.
func (l *Layout) ContainerByID(id string) (*Container, bool) {
	for i := range l.Containers {
		if l.Containers[i].ID == id {
			return &l.Containers[i], true
		}
	}
	return nil, false
}

// ContainerByLabel returns the container for the given source file.
func (l *Layout) ContainerByLabel(label string) (*Container, bool) {
	for i := range l.Containers {
		if l.Containers[i].Label == label {
			return &l.Containers[i], true
		}
	}
	return nil, false
}

// Bounds returns the canvas extent enclosing all containers plus the
// standard margin. An empty layout has zero bounds.
func (l *Layout) Bounds() Size {
	if len(l.Containers) == 0 {
		return Size{}
	}
	var b Size
	for _, c := range l.Containers {
		b.Width = max(b.Width, c.Position.X+c.Size.Width)
		b.Height = max(b.Height, c.Position.Y+c.Size.Height)
	}
	b.Width += CanvasMargin
	b.Height += CanvasMargin
	return b
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// An empty direction defaults to TB; anything else unknown is rejected.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if l.Direction == "" {
		l.Direction = DefaultDirection
	}
	if err := errors.ValidateDirection(l.Direction); err != nil {
		return Layout{}, err
	}

	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
