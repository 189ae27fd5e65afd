// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/builder"
	"github.com/katalvlaran/heldkarp/tsp"
)

// seedDet is the deterministic seed for generated instances.
const seedDet = 20240601

// classic4 is the textbook 4-city instance; optimum 80 (0→1→3→2→0).
var classic4 = [][]float64{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

// mustOracle builds a MatrixOracle or fails the test.
func mustOracle(t testing.TB, rows [][]float64) *tsp.MatrixOracle {
	t.Helper()
	o, err := tsp.NewMatrixOracleFromRows(rows)
	require.NoError(t, err)

	return o
}

// randomOracle builds a seeded random instance of size n.
func randomOracle(t testing.TB, n int, seed int64, opts ...builder.BuilderOption) *tsp.MatrixOracle {
	t.Helper()
	m, err := builder.RandomMatrix(n, append([]builder.BuilderOption{builder.WithSeed(seed)}, opts...)...)
	require.NoError(t, err)
	o, err := tsp.NewMatrixOracle(m)
	require.NoError(t, err)

	return o
}

// bruteForce returns the optimal tour cost by trying every permutation of
// vertices 1..n-1. Only for small n.
func bruteForce(dist tsp.Oracle) int64 {
	n := dist.N()
	if n == 1 {
		return 0
	}
	perm := make([]int, n-1)
	for i := range perm {
		perm[i] = i + 1
	}

	best := int64(-1)
	var walk func(k int)
	walk = func(k int) {
		if k == len(perm) {
			cost := dist.Dist(0, perm[0])
			for i := 0; i+1 < len(perm); i++ {
				cost += dist.Dist(perm[i], perm[i+1])
			}
			cost += dist.Dist(perm[len(perm)-1], 0)
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			walk(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0)

	return best
}

// sizedOracle reports n vertices with synthetic costs and never allocates a
// table; it lets refusal tests use n above the ceiling.
type sizedOracle int

func (s sizedOracle) N() int { return int(s) }

func (s sizedOracle) Dist(i, j int) int64 {
	if i == j {
		return 0
	}

	return int64(i + j)
}
