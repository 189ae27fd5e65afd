// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng        = nil                 (stochastic constructors refuse to run)
//   • weightFn   = UniformIntWeightFn(1, 100)
//   • symmetric  = true
//   • extent     = 1000.0              (RandomPoints square side)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for matrix entries.
	weightFn WeightFn
	// symmetric mirrors a[i][j] into a[j][i].
	symmetric bool
	// extent is the side of the square RandomPoints samples from.
	extent float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultMinWeight = 1
	defaultMaxWeight = 100
	defaultExtent    = 1000.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		weightFn:  UniformIntWeightFn(defaultMinWeight, defaultMaxWeight),
		symmetric: true,
		extent:    defaultExtent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
