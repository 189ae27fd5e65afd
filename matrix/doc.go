// Package matrix provides the dense distance-matrix storage consumed by the
// exact TSP solver.
//
// The matrix package provides:
//
//   - Matrix, a small bounds-checked interface over a 2-D float64 array.
//   - Dense, a row-major implementation on a single flat slice.
//   - Validators for the shape and numeric contract of a distance matrix
//     (square, finite, non-negative, zero diagonal, optional symmetry).
//
// A distance matrix is read-only for the duration of a solve; Dense itself is
// not synchronized, so callers must not mutate it while tsp reads it.
//
// See the examples in this package for usage patterns.
package matrix
