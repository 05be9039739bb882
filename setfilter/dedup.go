package setfilter

import "golang.org/x/exp/slices"

// RemoveDuplicates removes every element that already appeared earlier in v.
// The first occurrence wins and survivors keep their order. The result
// shares v's backing array; its length is the new length of the sequence.
//
// Applying it twice is a no-op the second time.
//
// Complexity: O(n) expected time, O(u) memory for u distinct values.
func RemoveDuplicates[S ~[]E, E comparable](v S) S {
	seen := make(map[E]struct{}, len(v))

	return deleteFunc(v, func(e E) bool {
		if _, dup := seen[e]; dup {
			return true
		}
		seen[e] = struct{}{}

		return false
	})
}

// RemoveDuplicatesFunc is RemoveDuplicates where two elements are the same
// when key returns the same value for both. Use it for element types that
// are not comparable. Panics if key is nil.
func RemoveDuplicatesFunc[S ~[]E, E any, K comparable](v S, key func(E) K) S {
	if key == nil {
		panic("setfilter: RemoveDuplicatesFunc(nil key)")
	}
	seen := make(map[K]struct{}, len(v))

	return deleteFunc(v, func(e E) bool {
		k := key(e)
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}

		return false
	})
}

// deleteFunc drops the elements for which del is true, calling del exactly
// once per element in index order, and zeroes the vacated tail of s.
func deleteFunc[S ~[]E, E any](s S, del func(E) bool) S {
	out := slices.DeleteFunc(s, del)
	clear(s[len(out):])

	return out
}
