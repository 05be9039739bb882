package permute

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SortByKeys sorts keys ascending (stable) and applies the same movement to
// v, so that v[i] keeps travelling with keys[i].
//
//	keys := []int{3, 1, 2}
//	names := []string{"c", "a", "b"}
//	_ = SortByKeys(keys, names) // keys == [1 2 3], names == [a b c]
//
// Returns ErrLengthMismatch (and modifies nothing) if the lengths differ.
// Complexity: O(n log n) time, O(n) memory for the two index buffers.
func SortByKeys[K constraints.Ordered, V any](keys []K, v []V) error {
	if err := checkLength(MethodSortByKeys, len(keys), len(v)); err != nil {
		return err
	}

	order := SortIndices(keys)
	spare := slices.Clone(order)
	if err := ReorderDestructive(order, keys); err != nil {
		return permuteErrorf(MethodSortByKeys, "keys: %w", err)
	}
	if err := ReorderDestructive(spare, v); err != nil {
		return permuteErrorf(MethodSortByKeys, "values: %w", err)
	}

	return nil
}
