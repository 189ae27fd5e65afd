// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf (%w).
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// Method tokens used as error context.
const (
	MethodRandomMatrix = "RandomMatrix"
	MethodCycleMatrix  = "CycleMatrix"
	MethodRandomPoints = "RandomPoints"
	MethodCirclePoints = "CirclePoints"
)

// builderErrorf prefixes err with the constructor name.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
