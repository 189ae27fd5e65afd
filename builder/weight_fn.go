// SPDX-License-Identifier: MIT
// Package: builder
//
// weight_fn.go - off-diagonal entry distributions for RandomMatrix.
//
// Contract:
//   • A WeightFn is called once per drawn entry with the constructor's RNG,
//     which is never nil (RandomMatrix refuses to run without one).
//   • Every value is finite and ≥ 0, so generated matrices pass
//     matrix.ValidateDistance.
//   • Parameter checks happen in the constructor (panic), never per draw.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn draws one matrix entry from rng.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn yields value for every entry. Panics if value < 0 or is
// not finite.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		panic(fmt.Sprintf("builder: constant weight %g not in [0,+Inf)", value))
	}

	return func(*rand.Rand) float64 { return value }
}

// UniformWeightFn draws reals from [lo, hi). lo == hi yields lo.
// Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: uniform weight range [%g,%g) invalid", lo, hi))
	}
	span := hi - lo

	return func(rng *rand.Rand) float64 { return lo + rng.Float64()*span }
}

// UniformIntWeightFn draws integers from [lo, hi] inclusive. Integer entries
// survive the solver's half-up rounding unchanged, so the printed tour cost
// equals the sum of the written matrix entries. Panics unless 0 ≤ lo ≤ hi.
func UniformIntWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: uniform int weight range [%d,%d] invalid", lo, hi))
	}
	width := hi - lo + 1

	return func(rng *rand.Rand) float64 { return float64(lo + rng.Intn(width)) }
}

// NormalWeightFn draws from N(mean, stddev), rounds to the nearest integer
// and clips below at 0. Panics if stddev < 0 or either argument is not finite.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 || math.IsInf(mean, 0) || math.IsNaN(mean) || math.IsInf(stddev, 0) || math.IsNaN(stddev) {
		panic(fmt.Sprintf("builder: normal weight N(%g,%g) invalid", mean, stddev))
	}

	return func(rng *rand.Rand) float64 {
		return math.Max(0, math.Round(mean+stddev*rng.NormFloat64()))
	}
}

// WithConstantWeight draws every entry as w.
func WithConstantWeight(w float64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight draws entries from [lo, hi).
func WithUniformWeight(lo, hi float64) BuilderOption { return WithWeightFn(UniformWeightFn(lo, hi)) }

// WithUniformIntWeight draws integer entries from [lo, hi].
func WithUniformIntWeight(lo, hi int) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(lo, hi))
}

// WithNormalWeight draws rounded, non-negative entries from N(mean, stddev).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}
