package permute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IMMRMKW/Vec/permute"
)

// TestReorder_Basic applies the canonical gather example.
func TestReorder_Basic(t *testing.T) {
	v := []int{1, 2, 3, 4}
	order := permute.Permutation{2, 0, 3, 1}

	require.NoError(t, permute.Reorder(v, order))
	assert.Equal(t, []int{3, 1, 4, 2}, v)
	assert.Equal(t, permute.Permutation{2, 0, 3, 1}, order, "order must stay intact")
}

// TestReorder_EndToEnd pairs the builder with the applicator.
func TestReorder_EndToEnd(t *testing.T) {
	keys := []int{5, 4, 3, 2, 0, 1}
	v := []rune{'a', 'b', 'c', 'd', 'e', 'f'}

	require.NoError(t, permute.Reorder(v, permute.SortIndices(keys)))
	assert.Equal(t, []rune{'e', 'f', 'd', 'c', 'b', 'a'}, v)
}

// TestReorder_Empty is a no-op.
func TestReorder_Empty(t *testing.T) {
	var v []string
	assert.NoError(t, permute.Reorder(v, permute.Permutation{}))
	assert.NoError(t, permute.Reorder(v, nil))
}

// TestReorder_Identity leaves the sequence unchanged.
func TestReorder_Identity(t *testing.T) {
	v := []string{"x", "y", "z", "w"}

	require.NoError(t, permute.Reorder(v, permute.Identity(4)))
	assert.Equal(t, []string{"x", "y", "z", "w"}, v)
}

// TestReorder_MultipleCycles covers a permutation with a 2-cycle, a 3-cycle and a fixed point.
func TestReorder_MultipleCycles(t *testing.T) {
	v := []int{10, 11, 12, 13, 14, 15}
	order := permute.Permutation{1, 0, 2, 4, 5, 3}

	require.NoError(t, permute.Reorder(v, order))
	assert.Equal(t, []int{11, 10, 12, 14, 15, 13}, v)
}

// TestReorder_Errors verifies every contract violation is reported atomically.
func TestReorder_Errors(t *testing.T) {
	cases := []struct {
		name  string
		order permute.Permutation
		want  error
	}{
		{"length mismatch", permute.Permutation{0, 1}, permute.ErrLengthMismatch},
		{"out of range high", permute.Permutation{0, 3, 1}, permute.ErrIndexOutOfRange},
		{"out of range negative", permute.Permutation{0, -2, 1}, permute.ErrIndexOutOfRange},
		{"duplicate", permute.Permutation{0, 0, 1}, permute.ErrNotPermutation},
		{"consumed", permute.Permutation{permute.Consumed, permute.Consumed, permute.Consumed}, permute.ErrConsumed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := []string{"a", "b", "c"}
			before := append(permute.Permutation(nil), tc.order...)

			err := permute.Reorder(v, tc.order)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, []string{"a", "b", "c"}, v, "v must be untouched on error")
			assert.Equal(t, before, tc.order, "order must be untouched on error")
		})
	}
}

// TestReorder_Reusable applies the same order twice, which is only possible
// because Reorder preserves it.
func TestReorder_Reusable(t *testing.T) {
	order := permute.Permutation{1, 2, 0}
	v := []int{0, 1, 2}

	require.NoError(t, permute.Reorder(v, order))
	assert.Equal(t, []int{1, 2, 0}, v)
	require.NoError(t, permute.Reorder(v, order))
	assert.Equal(t, []int{2, 0, 1}, v)
}
