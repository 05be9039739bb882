package permute

import "github.com/bits-and-blooms/bitset"

// Reorder permutes v in place so that v'[i] == v[order[i]], leaving order
// untouched.
//
// Algorithm Outline:
//  1. Validate lengths, index range and bijectivity (bitset of seen targets).
//  2. Clear the bitset and reuse it as the per-position "done" marker.
//  3. For each position i not yet done, follow the cycle
//     i → order[i] → order[order[i]] → ... back to i,
//     swapping the previous slot with the current one at each step.
//
// Example:
//
//	v := []int{1, 2, 3, 4}
//	_ = Reorder(v, Permutation{2, 0, 3, 1}) // v == [3 1 4 2]
//
// Errors (nothing is modified when an error is returned):
//   - ErrLengthMismatch  — len(order) != len(v).
//   - ErrConsumed        — order was consumed by ReorderDestructive.
//   - ErrIndexOutOfRange — an entry lies outside [0, len(v)).
//   - ErrNotPermutation  — an entry repeats.
//
// Complexity: O(n) time, O(n) bits extra memory.
func Reorder[S ~[]E, E any](v S, order Permutation) error {
	n := len(v)
	if err := checkLength(MethodReorder, len(order), n); err != nil {
		return err
	}

	done := bitset.New(uint(n))
	if err := checkBijection(MethodReorder, order, done); err != nil {
		return err
	}
	done.ClearAll()

	var prev, j int
	for i := 0; i < n; i++ {
		if done.Test(uint(i)) {
			continue
		}
		done.Set(uint(i))
		prev, j = i, order[i]
		for j != i {
			v[prev], v[j] = v[j], v[prev]
			done.Set(uint(j))
			prev, j = j, order[j]
		}
	}

	return nil
}

// checkBijection validates the range of every entry of p and that no entry
// repeats, using seen (len >= len(p), all clear) as scratch space.
func checkBijection(method string, p Permutation, seen *bitset.BitSet) error {
	if err := checkRange(method, p); err != nil {
		return err
	}
	for i, j := range p {
		if seen.Test(uint(j)) {
			return permuteErrorf(method, "order[%d]=%d repeats: %w", i, j, ErrNotPermutation)
		}
		seen.Set(uint(j))
	}

	return nil
}
