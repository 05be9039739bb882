package setfilter_test

import (
	"fmt"

	"github.com/IMMRMKW/Vec/setfilter"
)

// ExampleRemoveDuplicates keeps the first occurrence of each reading.
func ExampleRemoveDuplicates() {
	readings := []int{3, 1, 3, 2, 1}
	readings = setfilter.RemoveDuplicates(readings)
	fmt.Println(readings, len(readings))
	// Output:
	// [3 1 2] 3
}

// ExampleRemoveIntersection removes the values a shares with b.
func ExampleRemoveIntersection() {
	a, b := setfilter.RemoveIntersection([]int{1, 2, 3, 4}, []int{2, 4, 5})
	fmt.Println(a, b)

	a, b = setfilter.RemoveIntersection([]int{1, 2, 3, 4}, []int{2, 4, 5}, setfilter.WithSymmetric())
	fmt.Println(a, b)
	// Output:
	// [1 3] [2 4 5]
	// [1 3] [5]
}
