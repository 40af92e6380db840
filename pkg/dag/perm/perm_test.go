package perm

import (
	"slices"
	"testing"
)

func TestSeq(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"empty", 0, []int{}},
		{"negative", -3, []int{}},
		{"single", 1, []int{0}},
		{"five", 5, []int{0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Seq(tt.n); !slices.Equal(got, tt.want) {
				t.Errorf("Seq(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{4, 24},
		{6, 720},
		{10, 3628800},
	}

	for _, tt := range tests {
		if got := Factorial(tt.n); got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPermutationsCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 6} {
		count := 0
		for range Permutations(n) {
			count++
		}
		if want := Factorial(n); count != want {
			t.Errorf("Permutations(%d) yielded %d permutations, want %d", n, count, want)
		}
	}
}

func TestPermutationsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for p := range Permutations(4) {
		key := ""
		for _, v := range p {
			key += string(rune('0' + v))
		}
		if seen[key] {
			t.Errorf("permutation %v yielded twice", p)
		}
		seen[key] = true
	}
	if len(seen) != 24 {
		t.Errorf("got %d distinct permutations, want 24", len(seen))
	}
}

func TestPermutationsIdentityFirst(t *testing.T) {
	for _, n := range []int{1, 3, 5} {
		for p := range Permutations(n) {
			if !slices.Equal(p, Seq(n)) {
				t.Errorf("first permutation of %d elements = %v, want identity", n, p)
			}
			break
		}
	}
}

func TestPermutationsEarlyStop(t *testing.T) {
	count := 0
	for range Permutations(8) {
		count++
		if count == 10 {
			break
		}
	}
	if count != 10 {
		t.Errorf("stopped after %d permutations, want 10", count)
	}
}

func TestPermutationsEmpty(t *testing.T) {
	var got [][]int
	for p := range Permutations(0) {
		got = append(got, slices.Clone(p))
	}
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("Permutations(0) = %v, want one empty permutation", got)
	}
}

func TestPermutationsDeterministic(t *testing.T) {
	collect := func() [][]int {
		var out [][]int
		for p := range Permutations(4) {
			out = append(out, slices.Clone(p))
		}
		return out
	}

	first, second := collect(), collect()
	for i := range first {
		if !slices.Equal(first[i], second[i]) {
			t.Fatalf("permutation %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}
