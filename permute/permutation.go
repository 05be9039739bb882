package permute

import "github.com/bits-and-blooms/bitset"

// Identity returns p with p[i] = i for i in [0, n).
// Applying it leaves any sequence unchanged. Panics if n < 0.
func Identity(n int) Permutation {
	if n < 0 {
		panic("permute: Identity(n<0)")
	}
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate reports whether p is a bijection on [0, len(p)).
// Returns nil, ErrConsumed, ErrIndexOutOfRange or ErrNotPermutation.
// Complexity: O(n) time, O(n) bits.
func Validate(p Permutation) error {
	return checkBijection(MethodValidate, p, bitset.New(uint(len(p))))
}

// IsConsumed reports whether every entry of p equals Consumed, i.e. p has
// been spent by ReorderDestructive. An empty p is reported as consumed.
func IsConsumed(p Permutation) bool {
	for _, j := range p {
		if j != Consumed {
			return false
		}
	}

	return true
}

// Inverse returns q with q[p[i]] = i. Reordering by p and then by q
// restores the original sequence.
func Inverse(p Permutation) (Permutation, error) {
	if err := checkBijection(MethodInverse, p, bitset.New(uint(len(p)))); err != nil {
		return nil, err
	}
	q := make(Permutation, len(p))
	for i, j := range p {
		q[j] = i
	}

	return q, nil
}

// Cycles decomposes p into disjoint cycles. Each cycle starts at its
// smallest index and lists the positions visited by following p; cycles
// appear in order of their starting index. Fixed points are 1-cycles.
//
// Example:
//
//	Cycles(Permutation{2, 0, 3, 1}) → [[0 2 3 1]]
//	Cycles(Permutation{1, 0, 2})    → [[0 1] [2]]
//
// Complexity: O(n) time, O(n) memory.
func Cycles(p Permutation) ([][]int, error) {
	n := len(p)
	visited := bitset.New(uint(n))
	if err := checkBijection(MethodCycles, p, visited); err != nil {
		return nil, err
	}
	visited.ClearAll()

	var cycles [][]int
	for s := 0; s < n; s++ {
		if visited.Test(uint(s)) {
			continue
		}
		cycle := []int{s}
		visited.Set(uint(s))
		for j := p[s]; j != s; j = p[j] {
			cycle = append(cycle, j)
			visited.Set(uint(j))
		}
		cycles = append(cycles, cycle)
	}

	return cycles, nil
}
