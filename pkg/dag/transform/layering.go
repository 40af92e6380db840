package transform

import "github.com/lynxviz/lynxviz/pkg/dag"

// AssignRanks computes a rank for every node and writes the result back
// with [dag.DAG.SetRanks], replacing any previous assignment. A node's
// rank is the length of the longest path reaching it, so sources land
// at rank 0 and every edge descends at least one rank.
//
// The traversal is Kahn's topological sort: sources seed a queue, each
// dequeued node pushes its children at least one rank below itself, and
// a child joins the queue once all its parents are done. Runs in
// O(V+E) time and O(V) space.
//
// The graph must be acyclic. Nodes on a cycle never drain their
// in-degree and would stay at rank 0, so run [BreakCycles] first.
func AssignRanks(g *dag.DAG) {
	pending := make(map[string]int)
	depth := make(map[string]int)

	var queue []string
	for _, n := range g.Nodes() {
		d := g.InDegree(n.ID)
		pending[n.ID] = d
		if d == 0 {
			queue = append(queue, n.ID)
		}
	}

	for head := 0; head < len(queue); head++ {
		id := queue[head]
		for _, child := range g.Children(id) {
			if below := depth[id] + 1; below > depth[child] {
				depth[child] = below
			}
			pending[child]--
			if pending[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	g.SetRanks(depth)
}
