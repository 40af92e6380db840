package layout

import (
	"fmt"

	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/errors"
)

// =============================================================================
// Options - Engine Configuration
// =============================================================================

// Default strategy thresholds. The exact boundary between the hierarchical
// and grid strategies is a policy knob, not a fixed rule: hierarchical
// layering applies when a container has more than HierarchicalMinNodes
// members and at least HierarchicalMinEdges internal edges.
const (
	DefaultHierarchicalMinNodes = 1
	DefaultHierarchicalMinEdges = 1
)

// Options configures a layout pass. The zero value is valid and lays out
// top-to-bottom with the default thresholds.
//
// This struct supports JSON serialization for API requests and cache keys.
type Options struct {
	// Direction orients hierarchical containers and edge anchors:
	// "TB" (default) or "LR".
	Direction string `json:"direction,omitempty"`

	// HierarchicalMinNodes is the member count a container must exceed
	// for hierarchical layering. Defaults to 1 (two members suffice).
	HierarchicalMinNodes int `json:"hierarchical_min_nodes,omitempty"`

	// HierarchicalMinEdges is the minimum number of internal edges for
	// hierarchical layering. Defaults to 1.
	HierarchicalMinEdges int `json:"hierarchical_min_edges,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks option values and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Direction == "" {
		o.Direction = DefaultDirection
	}
	if err := errors.ValidateDirection(o.Direction); err != nil {
		return err
	}

	if o.HierarchicalMinNodes < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "hierarchical_min_nodes cannot be negative")
	}
	if o.HierarchicalMinNodes == 0 {
		o.HierarchicalMinNodes = DefaultHierarchicalMinNodes
	}

	if o.HierarchicalMinEdges < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "hierarchical_min_edges cannot be negative")
	}
	if o.HierarchicalMinEdges == 0 {
		o.HierarchicalMinEdges = DefaultHierarchicalMinEdges
	}

	o.validated = true
	return nil
}

// =============================================================================
// Build - The Layout Pass
// =============================================================================

// Build computes a complete layout for a code graph.
//
// The pass normalizes the graph, partitions nodes into per-file containers,
// sizes each container from its member count, positions members inside each
// container by the resolved strategy, places the containers on the canvas,
// and resolves per-node styles. Output is rebuilt from scratch on every
// call; nothing persists between passes and identical inputs yield
// byte-identical results.
//
// Recoverable input problems (duplicate ids, dangling edges, unknown kinds)
// are cleaned up and reported on the returned Layout. Structurally broken
// input fails the whole pass with ErrCodeMalformedInput; a nil graph fails
// with ErrCodeInvalidInput; an empty graph succeeds with an empty layout.
//
// Build is safe for concurrent use: it shares no state across calls.
func Build(g *codegraph.Graph, opts Options) (*Layout, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph must not be nil")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	normalized, report, err := codegraph.Normalize(*g)
	if err != nil {
		return nil, err
	}

	containers := Partition(&normalized)
	for i := range containers {
		containers[i].Size = ContainerSize(len(containers[i].MemberIDs))
	}

	// Intra-container layout runs before placement so containers that grow
	// to fit a wide layered spread are placed with their final size.
	local := make(map[string]Point, len(normalized.Nodes))
	for i := range containers {
		c := &containers[i]
		internal := inducedEdges(c.MemberIDs, normalized.Edges)
		c.Strategy = chooseStrategy(len(c.MemberIDs), len(internal), opts)

		switch c.Strategy {
		case StrategyHierarchical:
			pos, content, herr := hierarchyPositions(c.MemberIDs, internal, opts.Direction)
			if herr != nil {
				return nil, errors.Wrap(errors.ErrCodeLayoutFailed, herr, "layer container %s (%s)", c.ID, c.Label)
			}
			growContainer(c, content)
			for id, p := range pos {
				local[id] = p
			}
		default:
			for id, p := range gridPositions(c.MemberIDs) {
				local[id] = p
			}
		}
	}

	PlaceContainers(containers)

	return assemble(&normalized, containers, local, report, opts), nil
}

// assemble folds container offsets into node positions and materializes the
// output records in input order.
func assemble(g *codegraph.Graph, containers []Container, local map[string]Point, report *codegraph.Report, opts Options) *Layout {
	byFile := make(map[string]*Container, len(containers))
	for i := range containers {
		byFile[containers[i].Label] = &containers[i]
	}

	sourceAnchor, targetAnchor := AnchorsForDirection(opts.Direction)

	nodes := make([]LayoutNode, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		c := byFile[n.File]
		p := local[n.ID]
		nodes = append(nodes, LayoutNode{
			ID:           n.ID,
			Position:     Point{X: c.Position.X + p.X, Y: c.Position.Y + p.Y},
			Size:         Size{Width: NodeWidth, Height: NodeHeight},
			Style:        StyleForNode(n),
			ContainerID:  c.ID,
			SourceAnchor: sourceAnchor,
			TargetAnchor: targetAnchor,
		})
	}

	edges := make([]LayoutEdge, 0, len(g.Edges))
	for i, e := range g.Edges {
		edges = append(edges, LayoutEdge{
			ID:       fmt.Sprintf("e%d", i),
			SourceID: e.From,
			TargetID: e.To,
			Style:    DefaultEdgeStyle(),
		})
	}

	if report != nil && report.Empty() {
		report = nil
	}

	return &Layout{
		Direction:  opts.Direction,
		Nodes:      nodes,
		Edges:      edges,
		Containers: containers,
		Report:     report,
	}
}
