package dag

import (
	"cmp"
	"maps"
	"slices"
)

// CountCrossings sums the edge crossings between every pair of adjacent
// ranks under the given orderings. orders maps a rank to its node IDs in
// left-to-right order; ranks absent from the map count as empty.
//
//	orders := map[int][]string{
//	    0: {"Handler", "Router"},
//	    1: {"parseBody", "writeJSON", "logRequest"},
//	}
//	total := dag.CountCrossings(g, orders)
//
// The ordering pass calls this to score candidate orderings against each
// other.
func CountCrossings(g *DAG, orders map[int][]string) int {
	ranks := slices.Sorted(maps.Keys(orders))
	total := 0
	for i := 1; i < len(ranks); i++ {
		total += CountLayerCrossings(g, orders[ranks[i-1]], orders[ranks[i]])
	}
	return total
}

// span is one edge projected onto layer positions.
type span struct {
	from int // position in the upper rank
	to   int // position in the lower rank
}

// fenwick is a binary indexed tree over lower-rank positions. It counts
// how many spans have landed at or before a given position.
type fenwick []int

func (f fenwick) add(pos int) {
	for i := pos + 1; i < len(f); i += i & (-i) {
		f[i]++
	}
}

func (f fenwick) upTo(pos int) int {
	s := 0
	for i := pos + 1; i > 0; i -= i & (-i) {
		s += f[i]
	}
	return s
}

// CountLayerCrossings counts the crossings between two adjacent ranks.
// Edges (u1,v1) and (u2,v2) cross exactly when u1 sits left of u2 while
// v1 sits right of v2, so after sorting spans by upper position the
// answer is the number of inversions among their lower positions. A
// Fenwick tree counts those in O(E log V) instead of the naive O(E²).
//
// Either rank being empty or having fewer than two spans yields 0.
func CountLayerCrossings(g *DAG, upper, lower []string) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	lowerPos := PosMap(lower)
	var spans []span
	for i, id := range upper {
		for _, child := range g.Children(id) {
			if p, ok := lowerPos[child]; ok {
				spans = append(spans, span{from: i, to: p})
			}
		}
	}
	if len(spans) < 2 {
		return 0
	}

	slices.SortFunc(spans, func(a, b span) int {
		if c := cmp.Compare(a.from, b.from); c != 0 {
			return c
		}
		return cmp.Compare(a.to, b.to)
	})

	tree := make(fenwick, len(lower)+1)
	count, seen := 0, 0
	for _, s := range spans {
		// Everything seen so far that lands right of s.to crosses s.
		count += seen - tree.upTo(s.to)
		tree.add(s.to)
		seen++
	}
	return count
}

// CountPairCrossings reports the crossings produced by placing left
// immediately before right in their rank, counting edges toward the
// rank above when useParents is set and toward the rank below
// otherwise. adjOrder is the adjacent rank's left-to-right order.
func CountPairCrossings(g *DAG, left, right string, adjOrder []string, useParents bool) int {
	return CountPairCrossingsWithPos(g, left, right, PosMap(adjOrder), useParents)
}

// CountPairCrossingsWithPos is [CountPairCrossings] with a precomputed
// position map, so swap sweeps over one rank build the map once.
// Neighbors missing from adjPos are skipped.
func CountPairCrossingsWithPos(g *DAG, left, right string, adjPos map[string]int, useParents bool) int {
	neighbors := g.Children
	if useParents {
		neighbors = g.Parents
	}

	count := 0
	for _, ln := range neighbors(left) {
		lp, ok := adjPos[ln]
		if !ok {
			continue
		}
		for _, rn := range neighbors(right) {
			if rp, ok := adjPos[rn]; ok && rp < lp {
				count++
			}
		}
	}
	return count
}
