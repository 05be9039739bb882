// SPDX-License-Identifier: MIT
// Package: Vec/permute
//
// errors.go — error wrapping helpers.
//
// Error policy:
//   • Only the sentinels from types.go are exposed; branch with errors.Is.
//   • Context is attached with %w, never baked into the sentinel text.
//   • Algorithms do not panic on data. Nil comparators and negative sizes
//     are programmer errors and panic at the call site.

package permute

import "fmt"

// permuteErrorf prefixes a formatted message with the method name.
// The format string must contain exactly one %w for the sentinel.
//
//	permuteErrorf(MethodReorder, "len(order)=%d, len(v)=%d: %w", 3, 4, ErrLengthMismatch)
//	→ "Reorder: len(order)=3, len(v)=4: permute: length mismatch"
func permuteErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}

// checkLength reports ErrLengthMismatch when the permutation and the
// sequence disagree on size. Always O(1).
func checkLength(method string, order, n int) error {
	if order != n {
		return permuteErrorf(method, "len(order)=%d, len(v)=%d: %w", order, n, ErrLengthMismatch)
	}

	return nil
}

// checkRange verifies every entry lies in [0, len(p)).
// A Consumed entry is reported as ErrConsumed rather than a plain range error.
func checkRange(method string, p Permutation) error {
	n := len(p)
	for i, j := range p {
		if j == Consumed {
			return permuteErrorf(method, "order[%d]: %w", i, ErrConsumed)
		}
		if j < 0 || j >= n {
			return permuteErrorf(method, "order[%d]=%d not in [0,%d): %w", i, j, n, ErrIndexOutOfRange)
		}
	}

	return nil
}
