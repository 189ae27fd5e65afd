// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_matrix.go - explicit distance-matrix instances.
//
// Contract:
//   • Diagonal is exactly 0; off-diagonal entries come from cfg.weightFn.
//   • Symmetric by default; WithAsymmetric draws a[i][j] and a[j][i] independently.
//   • Entries are drawn row-major over i<j (then j<i when asymmetric), so one seed
//     always yields the same matrix.

package builder

import (
	"math"

	"github.com/katalvlaran/heldkarp/matrix"
)

// RandomMatrix returns an n×n distance matrix with weights from the configured
// WeightFn (default UniformIntWeightFn(1,100)).
//
// Errors: ErrTooFewVertices if n < 1; ErrNeedRandSource if no RNG was set.
//
// Complexity: O(n²).
func RandomMatrix(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	if n < 1 {
		return nil, builderErrorf(MethodRandomMatrix, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandomMatrix, ErrNeedRandSource)
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			rows[i][j] = cfg.weightFn(cfg.rng)
			rows[j][i] = rows[i][j]
		}
	}
	if !cfg.symmetric {
		for i = 1; i < n; i++ {
			for j = 0; j < i; j++ {
				rows[i][j] = cfg.weightFn(cfg.rng)
			}
		}
	}

	return matrix.NewDenseFromRows(rows)
}

// CycleMatrix returns the ring metric on n vertices,
// d(i,j) = min(|i−j|, n−|i−j|). The identity tour 0→1→…→n−1→0 is optimal
// with cost n for n ≥ 3 (and 2 for n = 2).
//
// Errors: ErrTooFewVertices if n < 1.
//
// Complexity: O(n²).
func CycleMatrix(n int) (*matrix.Dense, error) {
	if n < 1 {
		return nil, builderErrorf(MethodCycleMatrix, ErrTooFewVertices)
	}

	rows := make([][]float64, n)
	var i, j, d int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			d = i - j
			if d < 0 {
				d = -d
			}
			rows[i][j] = math.Min(float64(d), float64(n-d))
		}
	}

	return matrix.NewDenseFromRows(rows)
}
