// Package dag provides a directed acyclic graph (DAG) organized into ranks
// for layered graph drawing.
//
// # Overview
//
// Lynxviz places the members of each file container with a hierarchical
// layering algorithm: nodes are assigned ranks along the layout direction,
// ordered within each rank to reduce edge crossings, and finally given
// coordinates. This package provides the per-container workspace for that
// pass - a small DAG with a rank index and crossing-count primitives.
//
// Each layout invocation builds fresh DAG instances scoped to that call;
// no layering state is shared between passes.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges
// with [DAG.AddEdge]. Nodes must have unique IDs and edges can only connect
// existing nodes:
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "main"})
//	g.AddNode(dag.Node{ID: "add"})
//	g.AddEdge(dag.Edge{From: "main", To: "add"})
//
// Query the structure with [DAG.Children], [DAG.Parents], [DAG.NodesInRank],
// and related methods. Use [DAG.Validate] after rank assignment to verify
// structural integrity.
//
// # Edge Crossings
//
// Orderings within ranks are scored by the number of edge crossings they
// produce between adjacent ranks. The [CountCrossings] and
// [CountLayerCrossings] functions use a Fenwick tree (binary indexed tree)
// to count inversions in O(E log V) time; [CountPairCrossings] supports the
// adjacent-swap heuristic used during ordering refinement.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same graph. Counting
// crossings on a read-only graph can safely run in parallel across
// different goroutines.
//
// # Related Packages
//
// The [transform] subpackage provides the graph transformations applied
// before coordinates are assigned:
//   - Cycle breaking (remove back edges so layering terminates)
//   - Rank assignment (longest-path layering from sources)
//
// The [perm] subpackage enumerates permutations for the exhaustive order
// search applied to small ranks.
//
// [transform]: github.com/lynxviz/lynxviz/pkg/dag/transform
// [perm]: github.com/lynxviz/lynxviz/pkg/dag/perm
package dag
