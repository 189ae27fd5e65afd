package tsp

import "fmt"

// NextSubset advances s to the next larger integer with the same population
// count (Gosper's Hack). s must be non-zero.
//
//	c  = s & -s
//	r  = s + c
//	s' = (((r ^ s) >> 2) / c) | r
func NextSubset(s uint64) uint64 {
	c := s & -s
	r := s + c

	return (((r ^ s) >> 2) / c) | r
}

// EnumerateClass writes every p-subset of the non-origin vertices {1..n-1}
// into dst, in strictly increasing numeric order, and returns the count.
//
// Gosper's Hack runs on the compact mask over the n-1 non-origin vertices
// (bit i ↔ vertex i+1), from (1<<p)-1 until the mask reaches 2^(n-1). Each
// value is stored shifted left by one, so bit 0 (the origin) is always clear
// and every stored value is below 2^n.
//
// len(dst) must equal C(n-1, p). Producing more or fewer values returns
// ErrConsistencyViolation; dst is never written past its length.
//
// Requires 1 ≤ p ≤ n-1 and n ≤ HardMaxVertices.
//
// Complexity: O(C(n-1, p)).
func EnumerateClass(n, p int, dst []uint64) (int, error) {
	if p < 1 || p > n-1 || n > HardMaxVertices {
		return 0, fmt.Errorf("class p=%d for n=%d: %w", p, n, ErrConsistencyViolation)
	}

	var (
		limit = uint64(1) << uint(n-1)
		s     = uint64(1)<<uint(p) - 1
		i     int
	)
	for s < limit {
		if i == len(dst) {
			return i, fmt.Errorf("class p=%d overflows %d slots: %w", p, len(dst), ErrConsistencyViolation)
		}
		dst[i] = s << 1
		i++
		s = NextSubset(s)
	}
	if i != len(dst) {
		return i, fmt.Errorf("class p=%d produced %d subsets, want %d: %w", p, i, len(dst), ErrConsistencyViolation)
	}

	return i, nil
}
