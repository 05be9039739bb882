// Package permute computes and applies index permutations over in-memory
// slices without ever sorting the data itself.
//
// What:
//
//   - SortIndices / SortIndicesFunc: the stable permutation that would sort
//     a key slice ascending, leaving the keys untouched.
//   - Reorder: applies a permutation in place, keeping the permutation
//     intact (visited markers live in a per-call bitset).
//   - ReorderDestructive: applies a permutation in place with no auxiliary
//     allocation, consuming the permutation buffer as its own marker space.
//   - Identity, Validate, Inverse, Cycles: small helpers around the
//     Permutation type.
//   - SortByKeys: sorts a key slice and drags a value slice along with it.
//
// Index convention (gather):
//
//	p[i] = j   ⇒   after applying p, position i holds the element that was at j
//
// This is exactly what SortIndices returns, so the output of the builder
// feeds either applicator directly:
//
//	keys := []int{5, 4, 3, 2, 0, 1}
//	v := []string{"a", "b", "c", "d", "e", "f"}
//	p := permute.SortIndices(keys)     // [4 5 3 2 1 0]
//	_ = permute.Reorder(v, p)          // [e f d c b a]
//
// Consumed buffers:
//
//	ReorderDestructive overwrites every entry of its permutation with
//	Consumed (-1). The value lies outside every valid index domain, so a
//	consumed buffer can never be mistaken for a permutation: passing it
//	again fails with ErrConsumed.
//
// Errors:
//
//   - ErrLengthMismatch   permutation and sequence lengths differ
//   - ErrIndexOutOfRange  an entry lies outside [0, n)
//   - ErrNotPermutation   an index appears more than once
//   - ErrConsumed         the buffer was already consumed by ReorderDestructive
//
// Every check runs before the first write, so a rejected call leaves both
// the sequence and the permutation exactly as they were.
//
// Complexity:
//
//   - SortIndices:         Time O(n log n), Memory O(n)
//   - Reorder:             Time O(n),       Memory O(n) bits
//   - ReorderDestructive:  Time O(n),       Memory O(1)
//
// Concurrency: none of the functions lock; callers own every slice for the
// duration of a call.
package permute
