package setfilter

// RemoveIntersection removes from a every element whose value occurs more
// than once in a and b combined: values present in both slices, and values
// repeated within a. Survivors keep their order.
//
// b is returned unchanged unless WithSymmetric() is given, in which case the
// same predicate, counted before either slice is filtered, is applied to b.
//
//	a, b := RemoveIntersection([]int{1, 2, 3, 4}, []int{2, 4, 5})
//	// a == [1 3], b == [2 4 5]
//
// a and b must not share a backing array when WithSymmetric is used.
//
// Complexity: O(len(a)+len(b)) expected time and memory.
func RemoveIntersection[S ~[]E, E comparable](a, b S, opts ...Option) (S, S) {
	cfg := newConfig(opts...)

	counts := make(map[E]int, len(a)+len(b))
	for _, e := range a {
		counts[e]++
	}
	for _, e := range b {
		counts[e]++
	}
	shared := func(e E) bool { return counts[e] > 1 }

	a = deleteFunc(a, shared)
	if cfg.symmetric {
		b = deleteFunc(b, shared)
	}

	return a, b
}
