package permute

// ReorderDestructive permutes v in place exactly like Reorder
// (v'[i] == v[order[i]]) but allocates nothing: every entry of order is
// overwritten with Consumed as its position is placed. The buffer must not
// be reused afterwards; passing it again yields ErrConsumed.
//
// Algorithm Outline (cycle following with one temporary):
//  1. remaining = n-1. The final unplaced slot, if any, is necessarily a
//     fixed point, so the scan may stop one position early.
//  2. For s = 0, 1, ... while remaining > 0:
//     skip s if order[s] == Consumed;
//     temp = v[s]; d = s;
//     while order[d] != s: v[d] = v[order[d]], mark d consumed, d = order[d];
//     v[d] = temp, mark d consumed.
//     Each placed slot decrements remaining.
//  3. Mark any leftover slots Consumed so the whole buffer is invalidated.
//
// Validation uses no extra memory either: seen targets are flagged by
// bitwise complement inside order and restored before returning, so a
// rejected order is handed back unmodified.
//
// Errors (nothing is modified when an error is returned):
//   - ErrLengthMismatch  — len(order) != len(v).
//   - ErrConsumed        — order was already consumed.
//   - ErrIndexOutOfRange — an entry lies outside [0, len(v)).
//   - ErrNotPermutation  — an entry repeats.
//
// Complexity: O(n) time, O(1) extra memory.
func ReorderDestructive[S ~[]E, E any](order Permutation, v S) error {
	n := len(v)
	if err := checkLength(MethodReorderDestructive, len(order), n); err != nil {
		return err
	}
	if err := checkBijectionInPlace(MethodReorderDestructive, order); err != nil {
		return err
	}

	var (
		s, d, next int
		temp       E
	)
	remaining := n - 1
	for s = 0; remaining > 0; s++ {
		if order[s] == Consumed {
			continue
		}
		temp = v[s]
		d = s
		for next = order[d]; next != s; next = order[d] {
			v[d] = v[next]
			order[d] = Consumed
			remaining--
			d = next
		}
		v[d] = temp
		order[d] = Consumed
		remaining--
	}
	for ; s < n; s++ {
		order[s] = Consumed
	}

	return nil
}

// checkBijectionInPlace is checkBijection without scratch memory.
// Entry p[j] is complemented (^p[j] < 0) once index j has been seen;
// every complemented entry is flipped back before returning.
func checkBijectionInPlace(method string, p Permutation) error {
	if err := checkRange(method, p); err != nil {
		return err
	}

	var err error
	for i := range p {
		j := p[i]
		if j < 0 {
			j = ^j
		}
		if p[j] < 0 {
			err = permuteErrorf(method, "order[%d]=%d repeats: %w", i, j, ErrNotPermutation)
			break
		}
		p[j] = ^p[j]
	}
	for i := range p {
		if p[i] < 0 {
			p[i] = ^p[i]
		}
	}

	return err
}
