// Package vec is a small toolkit of generic algorithms over in-memory
// slices: index permutations and set-based cleanup.
//
// What is in the box?
//
//	permute/   — SortIndices (stable sort permutation), Reorder (keeps the
//	             permutation), ReorderDestructive (allocation-free, consumes
//	             the permutation), plus Identity/Validate/Inverse/Cycles and
//	             SortByKeys for sorting parallel slices.
//	setfilter/ — RemoveDuplicates (first occurrence wins) and
//	             RemoveIntersection (drop values shared with another slice).
//
// Design:
//
//   - Pure Go, single-threaded, no hidden state: every buffer is owned by
//     the caller for the duration of a call.
//   - Contract violations (length mismatch, non-bijective permutations)
//     are reported as sentinel errors before anything is modified.
//   - Generic over element types; ordering and equality are explicit
//     type constraints or caller-supplied functions.
//
// Quick example:
//
//	keys := []int{5, 4, 3, 2, 0, 1}
//	v := []string{"a", "b", "c", "d", "e", "f"}
//	_ = permute.Reorder(v, permute.SortIndices(keys)) // [e f d c b a]
//
//	go get github.com/IMMRMKW/Vec
package vec
