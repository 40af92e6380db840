package layout

import (
	"cmp"
	"slices"

	"github.com/lynxviz/lynxviz/pkg/codegraph"
	"github.com/lynxviz/lynxviz/pkg/dag"
	"github.com/lynxviz/lynxviz/pkg/dag/perm"
	"github.com/lynxviz/lynxviz/pkg/dag/transform"
)

// =============================================================================
// Hierarchical Strategy - Layered Placement
// =============================================================================

const (
	// orderingPasses bounds the alternating barycenter sweeps. Containers
	// hold one file's declarations, so the subgraphs are small and the
	// heuristic settles well before the bound.
	orderingPasses = 8

	// transposeIterations bounds the adjacent-swap refinement per pass.
	// Each accepted swap strictly reduces crossings, so iteration
	// terminates on its own; the bound is a safeguard.
	transposeIterations = 4

	// exactRankLimit is the largest rank eligible for exhaustive order
	// search. 6! = 720 candidates per rank is still cheaper than a
	// barycenter pass on the file-sized subgraphs containers hold.
	exactRankLimit = 6

	// exactPasses bounds the exhaustive sweeps. A second sweep only
	// helps when fixing one rank unlocks a better order in a neighbor.
	exactPasses = 2
)

// hierarchyPositions computes container-local positions for one container's
// members using layered placement:
//
//  1. Load the induced subgraph into a fresh layering workspace, break any
//     cycles, and assign ranks by longest path from sources.
//  2. Order each rank by barycenter sweeps with adjacent transposition,
//     keeping the lowest-crossing ordering found, then settle small
//     ranks exactly by trying every permutation.
//  3. Space ranks along the layout direction and center each rank across
//     the cross axis.
//
// Positions are top-left corners already offset by the side padding and
// title band. The returned Size is the content extent; the caller grows the
// container when the layered spread exceeds the count-based estimate.
//
// The workspace lives and dies inside this call. Identical member and edge
// lists produce identical positions: rank orders are seeded from member
// order, cycle breaking visits roots in sorted order, and ties in the
// barycenter sort are resolved by the incumbent order.
func hierarchyPositions(memberIDs []string, internal []codegraph.Edge, direction string) (map[string]Point, Size, error) {
	g := dag.New()
	for _, id := range memberIDs {
		if err := g.AddNode(dag.Node{ID: id}); err != nil {
			return nil, Size{}, err
		}
	}
	for _, e := range internal {
		if err := g.AddEdge(dag.Edge{From: e.From, To: e.To}); err != nil {
			return nil, Size{}, err
		}
	}

	transform.BreakCycles(g)
	transform.AssignRanks(g)
	if err := g.Validate(); err != nil {
		return nil, Size{}, err
	}

	orders := initialOrders(g, memberIDs)
	orders = orderRanks(g, orders)

	pos, content := rankPositions(orders, g.RankIDs(), direction)
	return pos, content, nil
}

// initialOrders seeds each rank's left-to-right order from the original
// member order. The rank index itself is map-backed, so seeding from it
// would leak map iteration order into the output.
func initialOrders(g *dag.DAG, memberIDs []string) map[int][]string {
	orders := make(map[int][]string, g.RankCount())
	for _, id := range memberIDs {
		n, ok := g.Node(id)
		if !ok {
			continue
		}
		orders[n.Rank] = append(orders[n.Rank], id)
	}
	return orders
}

// orderRanks refines rank orders with the barycenter heuristic: alternating
// top-down and bottom-up sweeps position each node near the average position
// of its neighbors, followed by a transpose pass swapping adjacent pairs
// whenever that reduces crossings. The best ordering seen wins, and ranks
// small enough to search exhaustively get an exact polish at the end.
func orderRanks(g *dag.DAG, orders map[int][]string) map[int][]string {
	if g.RankCount() < 2 {
		return orders
	}

	best := cloneOrders(orders)
	bestCrossings := dag.CountCrossings(g, best)

	for pass := 0; pass < orderingPasses && bestCrossings > 0; pass++ {
		if pass%2 == 0 {
			sweepDown(g, orders)
		} else {
			sweepUp(g, orders)
		}
		transposeOrders(g, orders)

		if crossings := dag.CountCrossings(g, orders); crossings < bestCrossings {
			bestCrossings = crossings
			best = cloneOrders(orders)
		}
	}

	if bestCrossings > 0 {
		refineExact(g, best)
	}
	return best
}

// sweepDown reorders each rank after the first by the barycenter of parent
// positions in the rank above.
func sweepDown(g *dag.DAG, orders map[int][]string) {
	rankIDs := g.RankIDs()
	for i := 1; i < len(rankIDs); i++ {
		adjPos := dag.PosMap(orders[rankIDs[i-1]])
		sortByBarycenter(orders[rankIDs[i]], g.Parents, adjPos)
	}
}

// sweepUp reorders each rank before the last by the barycenter of child
// positions in the rank below.
func sweepUp(g *dag.DAG, orders map[int][]string) {
	rankIDs := g.RankIDs()
	for i := len(rankIDs) - 2; i >= 0; i-- {
		adjPos := dag.PosMap(orders[rankIDs[i+1]])
		sortByBarycenter(orders[rankIDs[i]], g.Children, adjPos)
	}
}

// sortByBarycenter stably sorts order by the average adjacent-rank position
// of each node's neighbors. Nodes with no neighbors in the adjacent rank
// keep their current position as their weight, so they drift with the sort
// instead of collapsing to one end.
func sortByBarycenter(order []string, neighbors func(string) []string, adjPos map[string]int) {
	weights := make(map[string]float64, len(order))
	for i, id := range order {
		sum, count := 0.0, 0
		for _, nb := range neighbors(id) {
			if p, ok := adjPos[nb]; ok {
				sum += float64(p)
				count++
			}
		}
		if count == 0 {
			weights[id] = float64(i)
		} else {
			weights[id] = sum / float64(count)
		}
	}
	slices.SortStableFunc(order, func(a, b string) int {
		return cmp.Compare(weights[a], weights[b])
	})
}

// transposeOrders swaps adjacent pairs within each rank while doing so
// strictly reduces crossings against both neighboring ranks.
func transposeOrders(g *dag.DAG, orders map[int][]string) {
	rankIDs := g.RankIDs()

	improved := true
	for iter := 0; improved && iter < transposeIterations; iter++ {
		improved = false
		for i, r := range rankIDs {
			var abovePos, belowPos map[string]int
			if i > 0 {
				abovePos = dag.PosMap(orders[rankIDs[i-1]])
			}
			if i < len(rankIDs)-1 {
				belowPos = dag.PosMap(orders[rankIDs[i+1]])
			}

			order := orders[r]
			for j := 0; j+1 < len(order); j++ {
				left, right := order[j], order[j+1]

				current, swapped := 0, 0
				if abovePos != nil {
					current += dag.CountPairCrossingsWithPos(g, left, right, abovePos, true)
					swapped += dag.CountPairCrossingsWithPos(g, right, left, abovePos, true)
				}
				if belowPos != nil {
					current += dag.CountPairCrossingsWithPos(g, left, right, belowPos, false)
					swapped += dag.CountPairCrossingsWithPos(g, right, left, belowPos, false)
				}

				if swapped < current {
					order[j], order[j+1] = right, left
					improved = true
				}
			}
		}
	}
}

// refineExact replaces each small rank's order with the permutation that
// minimizes crossings against the neighboring ranks as they currently
// stand. Ranks above exactRankLimit keep their heuristic order. The
// incumbent order is enumerated first and ties never displace it, so an
// already optimal ordering survives the pass unchanged.
func refineExact(g *dag.DAG, orders map[int][]string) {
	rankIDs := g.RankIDs()

	improved := true
	for iter := 0; improved && iter < exactPasses; iter++ {
		improved = false
		for i, r := range rankIDs {
			order := orders[r]
			if len(order) < 2 || len(order) > exactRankLimit {
				continue
			}

			var above, below []string
			if i > 0 {
				above = orders[rankIDs[i-1]]
			}
			if i < len(rankIDs)-1 {
				below = orders[rankIDs[i+1]]
			}

			cost := func(candidate []string) int {
				c := 0
				if above != nil {
					c += dag.CountLayerCrossings(g, above, candidate)
				}
				if below != nil {
					c += dag.CountLayerCrossings(g, candidate, below)
				}
				return c
			}

			bestCost := cost(order)
			if bestCost == 0 {
				continue
			}

			best := slices.Clone(order)
			candidate := make([]string, len(order))
			for p := range perm.Permutations(len(order)) {
				for j, idx := range p {
					candidate[j] = order[idx]
				}
				if c := cost(candidate); c < bestCost {
					bestCost = c
					copy(best, candidate)
				}
				if bestCost == 0 {
					break
				}
			}

			if !slices.Equal(best, order) {
				copy(order, best)
				improved = true
			}
		}
	}
}

func cloneOrders(orders map[int][]string) map[int][]string {
	clone := make(map[int][]string, len(orders))
	for r, order := range orders {
		clone[r] = slices.Clone(order)
	}
	return clone
}

// rankPositions converts rank orders into container-local top-left
// positions. Ranks advance along the layout direction at the fixed cell
// pitch; within a rank, nodes line up across the other axis, centered
// against the widest rank. The returned Size is the content extent before
// padding.
func rankPositions(orders map[int][]string, rankIDs []int, direction string) (map[string]Point, Size) {
	maxCount := 0
	for _, r := range rankIDs {
		maxCount = max(maxCount, len(orders[r]))
	}

	pos := make(map[string]Point)

	if direction == DirectionLR {
		content := Size{
			Width:  span(len(rankIDs), NodeWidth, NodeGapX),
			Height: span(maxCount, NodeHeight, NodeGapY),
		}
		for ri, r := range rankIDs {
			order := orders[r]
			startY := (content.Height - span(len(order), NodeHeight, NodeGapY)) / 2
			for i, id := range order {
				pos[id] = Point{
					X: HorizontalPad + float64(ri)*(NodeWidth+NodeGapX),
					Y: TitleBand + startY + float64(i)*(NodeHeight+NodeGapY),
				}
			}
		}
		return pos, content
	}

	content := Size{
		Width:  span(maxCount, NodeWidth, NodeGapX),
		Height: span(len(rankIDs), NodeHeight, NodeGapY),
	}
	for ri, r := range rankIDs {
		order := orders[r]
		startX := (content.Width - span(len(order), NodeWidth, NodeGapX)) / 2
		for i, id := range order {
			pos[id] = Point{
				X: HorizontalPad + startX + float64(i)*(NodeWidth+NodeGapX),
				Y: TitleBand + float64(ri)*(NodeHeight+NodeGapY),
			}
		}
	}
	return pos, content
}
