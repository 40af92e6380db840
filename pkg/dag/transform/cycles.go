package transform

import (
	"slices"

	"github.com/lynxviz/lynxviz/pkg/dag"
)

// BreakCycles removes back edges until the graph is acyclic and returns the
// number of edges removed.
//
// Call graphs legitimately contain cycles (mutual recursion, callbacks), but
// longest-path layering only terminates on a DAG. BreakCycles runs a
// depth-first search from the sources first, then from any remaining
// unvisited nodes, and records every edge that closes a loop back into the
// active path. Those edges are removed from the graph; the caller is
// expected to keep its own copy if the full edge set matters downstream.
//
// Starting at the sources keeps the removal stable for graphs with clear
// entry points: edges that close a loop back toward an entry point are the
// ones dropped, not the forward path. DFS roots are visited in sorted ID
// order so the same input always sheds the same edges.
func BreakCycles(g *dag.DAG) int {
	onPath := make(map[string]bool, g.NodeCount())
	done := make(map[string]bool, g.NodeCount())
	var dropped [][2]string

	var walk func(id string)
	walk = func(id string) {
		onPath[id] = true
		for _, child := range g.Children(id) {
			if onPath[child] {
				dropped = append(dropped, [2]string{id, child})
				continue
			}
			if !done[child] {
				walk(child)
			}
		}
		onPath[id] = false
		done[id] = true
	}

	roots := sortedIDs(g.Sources())
	roots = append(roots, sortedIDs(g.Nodes())...)
	for _, id := range roots {
		if !done[id] {
			walk(id)
		}
	}

	for _, e := range dropped {
		g.RemoveEdge(e[0], e[1])
	}
	return len(dropped)
}

func sortedIDs(nodes []*dag.Node) []string {
	ids := dag.NodeIDs(nodes)
	slices.Sort(ids)
	return ids
}
