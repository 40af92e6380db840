package pipeline

import (
	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/layout"
)

// =============================================================================
// Layout Stage
// =============================================================================

// GenerateLayout computes container and node geometry for a graph.
//
// The graph does not have to be pre-normalized; the engine normalizes
// internally and reports anything it had to clean up on the layout.
func GenerateLayout(g *codegraph.Graph, opts Options) (*layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	return layout.Build(g, opts.LayoutOptions())
}
