// Package transform provides graph transformations that prepare a DAG for
// layered placement.
//
// # Overview
//
// The hierarchical regime of the container layout expects an acyclic graph
// with rank assignments. This package supplies the two steps that get an
// arbitrary induced subgraph into that form, applied in order:
//
//	transform.BreakCycles(g)
//	transform.AssignRanks(g)
//
// # Cycle Breaking
//
// [BreakCycles] detects and removes edges that create cycles. Call
// relationships in real code contain cycles (mutual recursion, callbacks);
// this function removes the back edges found by a depth-first search so
// that layering terminates. Removal only affects the layering workspace -
// the layout's output edge list is built from the ingested graph, not from
// the workspace, so broken edges still render.
//
// # Rank Assignment
//
// [AssignRanks] computes the rank (layer) for each node based on its
// longest path from source nodes (those with no incoming edges), using a
// topological traversal. Parents always end up at strictly lower ranks
// than their children.
package transform
