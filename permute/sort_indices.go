package permute

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SortIndices returns the permutation that would sort keys ascending.
//
// Description:
//
//	The result idx satisfies keys[idx[0]] <= keys[idx[1]] <= ... and is
//	stable: if keys[a] == keys[b] and a < b, then a precedes b in idx.
//	keys itself is never modified.
//
// Example:
//
//	SortIndices([]int{5, 4, 3, 2, 0, 1}) → [4 5 3 2 1 0]
//
// Only the < relation is consulted. Values that are unordered under <
// (NaN floats) compare equal to everything and therefore keep their
// original relative position among their neighbours.
//
// Complexity: O(n log n) time, O(n) memory for the result.
func SortIndices[S ~[]E, E constraints.Ordered](keys S) Permutation {
	return SortIndicesFunc(keys, func(a, b E) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		default:
			return 0
		}
	})
}

// SortIndicesFunc is SortIndices with an explicit ordering: cmp(a, b) < 0
// places a before b, 0 treats them as equal (stable), > 0 places b first.
// Panics if cmp is nil.
func SortIndicesFunc[S ~[]E, E any](keys S, cmp func(a, b E) int) Permutation {
	if cmp == nil {
		panic("permute: SortIndicesFunc(nil cmp)")
	}

	idx := Identity(len(keys))
	slices.SortStableFunc(idx, func(i, j int) int {
		return cmp(keys[i], keys[j])
	})

	return idx
}
