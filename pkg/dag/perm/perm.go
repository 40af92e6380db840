// Package perm generates permutations for exhaustive order search.
//
// The layout pipeline orders nodes within a rank heuristically, then
// polishes small ranks by trying every permutation. This package supplies
// that enumeration: [Permutations] yields each ordering of n indices
// exactly once via Heap's algorithm, and [Factorial] sizes the search
// space so callers can bound it up front.
package perm

import "iter"

// Seq returns the identity permutation [0, 1, ..., n-1].
// For n <= 0 it returns an empty slice.
func Seq(n int) []int {
	if n < 0 {
		n = 0
	}
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// Factorial returns n!, the number of permutations of n elements.
// For n <= 1 it returns 1. Factorials overflow fast: 21! exceeds a
// 64-bit int, so callers comparing against a budget should keep n small.
func Factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// Permutations returns an iterator over every permutation of
// [0, 1, ..., n-1], generated by Heap's algorithm. The first permutation
// yielded is always the identity, so a caller seeding a search with the
// incumbent order sees it before any alternative.
//
// The yielded slice is reused between iterations. Callers that retain a
// permutation past the loop body must clone it.
//
// For n = 0 the iterator yields a single empty permutation. Heap's order
// is not lexicographic, but it is fixed for a given n, so searches that
// break ties by first occurrence stay deterministic.
func Permutations(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p := Seq(n)
		if !yield(p) {
			return
		}
		if n < 2 {
			return
		}
		state := make([]int, n)
		for i := 0; i < n; {
			if state[i] < i {
				if i%2 == 0 {
					p[0], p[i] = p[i], p[0]
				} else {
					p[state[i]], p[i] = p[i], p[state[i]]
				}
				if !yield(p) {
					return
				}
				state[i]++
				i = 0
			} else {
				state[i] = 0
				i++
			}
		}
	}
}
