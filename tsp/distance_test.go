package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/matrix"
	"github.com/katalvlaran/heldkarp/tsp"
)

func TestMatrixOracle(t *testing.T) {
	t.Parallel()

	o := mustOracle(t, [][]float64{
		{0, 2.5, 1.4},
		{7, 0, 0.49},
		{3, 9, 0},
	})
	require.Equal(t, 3, o.N())
	for i := 0; i < 3; i++ {
		require.Zero(t, o.Dist(i, i))
	}
	require.Equal(t, int64(3), o.Dist(0, 1), "half rounds up")
	require.Equal(t, int64(1), o.Dist(0, 2))
	require.Equal(t, int64(0), o.Dist(1, 2))
	require.Equal(t, int64(7), o.Dist(1, 0), "asymmetric entries kept")
	require.Equal(t, o.Dist(2, 1), o.Dist(2, 1))
}

// TestMatrixOracle_IgnoresDiagonal covers TSPLIB-style "infinite" self-distances.
func TestMatrixOracle_IgnoresDiagonal(t *testing.T) {
	t.Parallel()

	o := mustOracle(t, [][]float64{
		{9999, 10, 15, 20},
		{10, 9999, 35, 25},
		{15, 35, 1e8, 30},
		{20, 25, 30, math.NaN()},
	})
	for i := 0; i < 4; i++ {
		require.Zero(t, o.Dist(i, i))
	}
	res, err := tsp.Solve(o, tsp.Options{})
	require.NoError(t, err)
	require.Equal(t, int64(80), res.Cost)
}

func TestMatrixOracle_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"negative", [][]float64{{0, -1}, {1, 0}}, matrix.ErrNegativeWeight},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{0, math.Inf(1)}, {1, 0}}, matrix.ErrNaNInf},
		{"ragged", [][]float64{{0, 1}, {1}}, matrix.ErrRaggedRows},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := tsp.NewMatrixOracleFromRows(tc.rows)
			require.ErrorIs(t, err, tsp.ErrMalformedInput)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := tsp.NewMatrixOracle(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = tsp.NewMatrixOracleFromRows([][]float64{{0, 1e17}, {1, 0}})
	require.ErrorIs(t, err, tsp.ErrMalformedInput)
}

func TestEuclideanOracle(t *testing.T) {
	t.Parallel()

	o, err := tsp.NewEuclideanOracle([][2]float64{{0, 0}, {3, 0}, {0, 4}, {0.5, 0}})
	require.NoError(t, err)
	require.Equal(t, 4, o.N())
	require.Equal(t, int64(3), o.Dist(0, 1))
	require.Equal(t, int64(4), o.Dist(0, 2))
	require.Equal(t, int64(5), o.Dist(1, 2))
	require.Equal(t, int64(1), o.Dist(0, 3), "0.5 rounds up")
	require.Equal(t, o.Dist(1, 2), o.Dist(2, 1))
	require.Zero(t, o.Dist(2, 2))
	require.Equal(t, [2]float64{0, 4}, o.Point(2))

	_, err = tsp.NewEuclideanOracle([][2]float64{{math.Inf(-1), 0}})
	require.ErrorIs(t, err, tsp.ErrMalformedInput)
}
