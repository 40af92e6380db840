package layout

import (
	"fmt"

	"github.com/lynxviz/lynxviz/pkg/codegraph"
)

// Partition groups the graph's nodes into one container per distinct file.
//
// Container order follows the first appearance of each file in the node
// list and MemberIDs keep the original node order, so identical inputs
// always partition identically. Container IDs are "c<index>" in that order.
//
// Partition assumes a normalized graph (unique node ids, non-empty files);
// run codegraph.Normalize first. Sizes and positions are left zero for the
// later stages.
func Partition(g *codegraph.Graph) []Container {
	if g.IsEmpty() {
		return []Container{}
	}

	files := g.Files()
	index := make(map[string]int, len(files))
	containers := make([]Container, len(files))
	for i, f := range files {
		index[f] = i
		containers[i] = Container{
			ID:    fmt.Sprintf("c%d", i),
			Label: f,
		}
	}

	for _, n := range g.Nodes {
		i := index[n.File]
		containers[i].MemberIDs = append(containers[i].MemberIDs, n.ID)
	}

	return containers
}
