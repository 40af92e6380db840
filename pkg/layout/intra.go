package layout

import "github.com/lynxviz/lynxviz/pkg/codegraph"

// =============================================================================
// Intra-Container Layout - Strategy Selection and Grid Placement
// =============================================================================

// inducedEdges returns the edges whose endpoints both belong to the member
// set, in input edge order. These are the only edges an intra-container
// strategy may consider; cross-container edges never influence geometry.
func inducedEdges(memberIDs []string, edges []codegraph.Edge) []codegraph.Edge {
	members := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = true
	}

	var internal []codegraph.Edge
	for _, e := range edges {
		if members[e.From] && members[e.To] {
			internal = append(internal, e)
		}
	}
	return internal
}

// chooseStrategy resolves the placement strategy for one container, once,
// before any position is written. Hierarchical layering needs connectivity
// to order by: it applies when the induced subgraph reaches the configured
// edge threshold and the container holds more members than the node
// threshold. Everything else rasterizes.
func chooseStrategy(memberCount, internalEdges int, opts Options) Strategy {
	if internalEdges >= opts.HierarchicalMinEdges && memberCount > opts.HierarchicalMinNodes {
		return StrategyHierarchical
	}
	return StrategyGrid
}

// gridPositions places members in raster order on the same cols/rows split
// the sizer used, returning container-local top-left positions offset by
// the side padding and title band. Purely positional: identical member
// lists always rasterize identically.
func gridPositions(memberIDs []string) map[string]Point {
	cols, _ := GridShape(len(memberIDs))
	pos := make(map[string]Point, len(memberIDs))
	for i, id := range memberIDs {
		col := i % cols
		row := i / cols
		pos[id] = Point{
			X: HorizontalPad + float64(col)*(NodeWidth+NodeGapX),
			Y: TitleBand + float64(row)*(NodeHeight+NodeGapY),
		}
	}
	return pos
}
