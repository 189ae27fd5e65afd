package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/heldkarp/matrix"
)

// ExampleNewDenseFromRows builds and validates a small distance matrix.
func ExampleNewDenseFromRows() {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 10, 15},
		{10, 0, 35},
		{15, 35, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(matrix.ValidateDistance(m, 1e-12) == nil)
	fmt.Print(m)
	// Output:
	// true
	// [0, 10, 15]
	// [10, 0, 35]
	// [15, 35, 0]
}
