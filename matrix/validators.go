// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for distance-matrix checks.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Square → values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows()==Cols()>0.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() || m.Rows() <= 0 {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |a_ij − a_ji| ≤ tol for all i<j.
// Assumes m is square (call ValidateSquare first).
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return err
			}
			if aji, err = m.At(j, i); err != nil {
				return err
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("a[%d][%d]=%g a[%d][%d]=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateDistance enforces the distance-matrix contract:
//   - square and non-nil,
//   - every entry finite (no NaN/±Inf),
//   - off-diagonal entries non-negative,
//   - diagonal within tol of zero.
//
// Symmetry is NOT required; use ValidateSymmetric for that.
// Complexity: O(n²).
func ValidateDistance(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateDistance", fmt.Errorf("a[%d][%d]: %w", i, j, ErrNaNInf))
			}
			if i == j {
				if math.Abs(v) > tol {
					return validatorErrorf("ValidateDistance", fmt.Errorf("a[%d][%d]=%g: %w", i, j, v, ErrNonZeroDiagonal))
				}
				continue
			}
			if v < 0 {
				return validatorErrorf("ValidateDistance", fmt.Errorf("a[%d][%d]=%g: %w", i, j, v, ErrNegativeWeight))
			}
		}
	}

	return nil
}

// ValidateOffDiagonal enforces the distance-matrix contract on off-diagonal
// entries only: square, finite, non-negative. Diagonal values are not read,
// so TSPLIB's "infinite" self-distances (9999, 100000000) pass.
// Complexity: O(n²).
func ValidateOffDiagonal(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateOffDiagonal", fmt.Errorf("a[%d][%d]: %w", i, j, ErrNaNInf))
			}
			if v < 0 {
				return validatorErrorf("ValidateOffDiagonal", fmt.Errorf("a[%d][%d]=%g: %w", i, j, v, ErrNegativeWeight))
			}
		}
	}

	return nil
}
