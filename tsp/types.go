package tsp

import (
	"errors"
	"time"
)

// Sentinel errors. Callers branch with errors.Is; context is attached with %w.
var (
	// ErrInfeasibleSize is returned, before any table allocation, when the
	// instance exceeds the configured vertex ceiling or memory budget for the
	// Θ(n·2ⁿ) DP table.
	ErrInfeasibleSize = errors.New("tsp: instance too large for exact DP")

	// ErrMalformedInput reports a distance source that violates the oracle
	// contract (nil, non-square, NaN/Inf, negative or oversized costs, n ≤ 0).
	ErrMalformedInput = errors.New("tsp: malformed input")

	// ErrConsistencyViolation reports a size class whose enumerated population
	// differs from its binomial count. It indicates an enumerator bug and aborts
	// the solve instead of producing a wrong cost.
	ErrConsistencyViolation = errors.New("tsp: subset enumeration disagrees with binomial table")

	// ErrInvalidOptions reports a nonsensical Options combination.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrDimensionMismatch reports a tour whose shape does not match n.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")
)

// Size limits.
const (
	// HardMaxVertices bounds n regardless of Options: subset masks are uint64
	// and table rows are addressed with int.
	HardMaxVertices = 32

	// DefaultMaxVertices is the ceiling applied when Options.MaxVertices is 0.
	// n=24 needs 2²³·23·8 B ≈ 1.5 GiB of DP cells.
	DefaultMaxVertices = 24

	// MaxEdgeCost is the largest accepted edge cost. n ≤ 32 edges of at most
	// 2⁵³ sum well below math.MaxInt64.
	MaxEdgeCost int64 = 1 << 53
)

// Result holds the outcome of an exact solve.
type Result struct {
	// Cost is the optimal tour cost.
	Cost int64

	// Tour is a closed optimal tour [0, …, 0] of length n+1. It is nil unless
	// Options.ReconstructTour was set.
	Tour []int

	// Elapsed is the wall-clock time of the whole solve.
	Elapsed time.Duration

	// Workers is the worker-pool size the solve ran with.
	Workers int

	// Phases breaks Elapsed down by scheduler phase.
	Phases PhaseTimings
}

// PhaseTimings records wall-clock time spent in each scheduler phase.
type PhaseTimings struct {
	BuildBinomial   time.Duration
	GenerateSubsets time.Duration
	FillClasses     time.Duration
	Finalize        time.Duration
}
