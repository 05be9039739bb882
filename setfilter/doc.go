// Package setfilter removes elements from slices by set membership:
// repeated values within one slice, and values shared between two slices.
//
// What:
//
//   - RemoveDuplicates: keep the first occurrence of every value.
//   - RemoveDuplicatesFunc: same, with identity given by a key function.
//   - RemoveIntersection: drop from a every value that occurs more than once
//     across a and b together; b is filtered too only with WithSymmetric().
//
// Every filter is stable (survivors keep their relative order), runs in
// O(n) expected time with a hash-based membership count, and reuses the
// input's backing array. The returned slice is the result; vacated tail
// slots of the input are zeroed so they no longer retain references.
//
//	v := setfilter.RemoveDuplicates([]int{3, 1, 3, 2, 1}) // [3 1 2]
//	a, _ := setfilter.RemoveIntersection([]int{1, 2, 3, 4}, []int{2, 4, 5}) // [1 3]
//
// Equality is Go's == on comparable types, so float NaN never matches
// itself and is always kept.
package setfilter
