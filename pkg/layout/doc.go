// Package layout computes 2-D visual layouts for code-relationship graphs.
//
// The engine turns an abstract graph (nodes = declarations, edges = calls or
// containment) into concrete geometry: nodes grouped into one container per
// source file, ordered inside each container to respect edge direction, and
// sized so nothing overlaps.
//
// # Pipeline
//
// A layout pass runs six stages in a fixed order:
//
//  1. Ingest: validate and normalize the raw graph (codegraph.Normalize)
//  2. Partition: group nodes by source file into containers
//  3. Size: compute each container's footprint from its member count
//  4. Place: arrange containers on the canvas
//  5. Intra-layout: position members inside each container
//  6. Style: resolve per-node shapes and colors from kind and file
//
// The whole pass is a pure function of (graph, options): no state survives
// between calls, output is recomputed from scratch every time, and identical
// inputs always produce identical geometry. Build may be called concurrently
// from multiple goroutines.
//
// # Containers
//
// Every node belongs to exactly one container, keyed by its file attribute.
// Containers appear in first-encounter order of their file in the node list,
// which keeps container-to-position assignment stable across runs.
//
// # Strategies
//
// Inside a container, members are positioned by one of two strategies:
//
//   - StrategyHierarchical: rank assignment by longest path from sources,
//     barycenter ordering within ranks, coordinates along the layout
//     direction. Chosen when the container's induced subgraph has internal
//     edges and more than one member.
//   - StrategyGrid: deterministic raster placement in a square-ish grid.
//     Chosen for edge-free or single-member containers, where a layered
//     ordering has nothing to order by.
//
// # Usage
//
//	g, report, err := codegraph.Normalize(raw)
//	if err != nil {
//	    return err
//	}
//	result, err := layout.Build(&g, layout.Options{Direction: layout.DirectionTB})
//	if err != nil {
//	    return err
//	}
//	for _, n := range result.Nodes {
//	    fmt.Println(n.ID, n.Position.X, n.Position.Y)
//	}
//
// Build normalizes internally as well, so callers holding raw parser output
// can pass it straight in; the returned Layout carries the normalization
// report for diagnostics.
package layout
