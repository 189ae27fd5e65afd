package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/heldkarp/tsp"
)

// ExampleSolveMatrix solves the classic 4-city instance.
func ExampleSolveMatrix() {
	dist, err := tsp.NewMatrixOracleFromRows([][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := tsp.Solve(dist, tsp.Options{Workers: 2, ReconstructTour: true})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cost, res.Tour)
	// Output: 80 [0 2 3 1 0]
}

// ExampleSolvePoints solves a unit square laid out as Euclidean points.
func ExampleSolvePoints() {
	res, err := tsp.SolvePoints([][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, tsp.Options{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cost)
	// Output: 40
}
