// Package heldkarp is an exact solver for the travelling salesman problem:
// a parallel Held–Karp dynamic program over vertex subsets.
//
// What is in the module?
//
//	tsp/              - distance oracles, subset enumeration, DP table, scheduler, Solve
//	matrix/           - dense row-major distance matrices and their validators
//	tsplib/           - .mat, coordinate, lower-triangle and TSPLIB readers; .mat writer
//	builder/          - seeded random and structured instances for tests and benchmarks
//	internal/cli/     - the heldkarp command (solve, convert, gen)
//	internal/config/  - heldkarp.toml loading
//	cmd/heldkarp/     - main
//
// Complexity: O(n²·2ⁿ) time and O(n·2ⁿ) memory. Instances above a vertex
// ceiling (24 by default, 32 at most) or above a memory budget are refused
// before any table is allocated.
//
// Quick start:
//
//	dist, _ := tsp.NewMatrixOracleFromRows(rows)
//	res, err := tsp.Solve(dist, tsp.Options{Workers: 8})
//	fmt.Println(res.Cost)
//
// Or from the shell:
//
//	go install github.com/katalvlaran/heldkarp/cmd/heldkarp@latest
//	heldkarp solve -f instances/matrix/15.mat -t 8
package heldkarp
