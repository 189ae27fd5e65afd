// Package tsp - up-front refusal and tour validation.
//
// Everything here runs before the DP table exists (CheckFeasible) or after
// the solve returns (ValidateTour, TourCost). None of it logs or panics.
package tsp

import "fmt"

// CheckFeasible decides, without allocating, whether an n-vertex instance may
// be solved under opts. It returns:
//   - ErrMalformedInput when n ≤ 0,
//   - ErrInvalidOptions for inconsistent options,
//   - ErrInfeasibleSize when n exceeds the vertex ceiling or the footprint
//     exceeds opts.MemoryLimit.
//
// Complexity: O(1).
func CheckFeasible(n int, opts Options) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrMalformedInput, n)
	}
	if err := validateOptions(opts); err != nil {
		return err
	}
	if limit := opts.ceiling(); n > limit {
		return fmt.Errorf("n=%d exceeds vertex ceiling %d: %w", n, limit, ErrInfeasibleSize)
	}
	if need := FootprintBytes(n); opts.MemoryLimit > 0 && need > opts.MemoryLimit {
		return fmt.Errorf("n=%d needs %d bytes, limit %d: %w", n, need, opts.MemoryLimit, ErrInfeasibleSize)
	}

	return nil
}

// ValidateTour enforces Hamiltonian-cycle invariants for a tour rooted at 0:
//
//	len(tour) == n+1, tour[0] == tour[n] == 0,
//	each vertex v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != 0 || tour[n] != 0 {
		return ErrDimensionMismatch
	}

	var (
		seen = make([]bool, n)
		i    int
		v    int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums dist along tour[i]→tour[i+1]. Index range is checked against
// dist.N(); use ValidateTour for the full Hamiltonian contract.
//
// Complexity: O(len(tour)).
func TourCost(dist Oracle, tour []int) (int64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		n   = dist.N()
		sum int64
		i   int
		u   int
		v   int
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		sum += dist.Dist(u, v)
	}

	return sum, nil
}
