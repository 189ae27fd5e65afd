// Package tsp - distance oracles consumed by the exact solver.
//
// An Oracle answers dist(i, j) for vertices in [0, n). Both concrete oracles
// materialize every cost into a flat []int64 at construction, so Dist is a
// single slice read: pure, allocation-free and safe for unsynchronized
// concurrent calls from the fill workers.
//
// Cost policy: costs are integers. Euclidean costs use TSPLIB nint rounding,
// floor(d + 0.5); matrix entries are rounded the same way. Integer costs make
// the optimum exactly reproducible across worker counts and against brute force.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heldkarp/matrix"
)

// Oracle is the distance function over vertices [0, N()).
// Implementations must be read-only after construction.
type Oracle interface {
	// N returns the vertex count.
	N() int

	// Dist returns the cost of the directed edge i→j. Dist(i, i) == 0.
	Dist(i, j int) int64
}

// flat is a row-major n×n cost table shared by the concrete oracles.
type flat struct {
	n int
	w []int64
}

// N returns the vertex count.
func (f *flat) N() int { return f.n }

// Dist returns w[i*n+j]. Indices are trusted; the solver only passes i,j ∈ [0,n).
func (f *flat) Dist(i, j int) int64 { return f.w[i*f.n+j] }

// roundHalfUp implements TSPLIB nint for non-negative x.
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// MatrixOracle serves costs from a dense n×n matrix.
type MatrixOracle struct {
	flat
}

var _ Oracle = (*MatrixOracle)(nil)

// NewMatrixOracle validates the off-diagonal entries of m (square, finite,
// non-negative) and copies them, rounded half-up, into a flat cost table.
// The diagonal is ignored and served as 0, since a tour never uses a
// self-loop; TSPLIB ATSP files store 9999 or 100000000 there. Asymmetric
// matrices are accepted.
//
// Errors: ErrMalformedInput wrapping the matrix sentinel that failed.
//
// Complexity: O(n²).
func NewMatrixOracle(m matrix.Matrix) (*MatrixOracle, error) {
	if err := matrix.ValidateOffDiagonal(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	var (
		n    = m.Rows()
		w    = make([]int64, n*n)
		i, j int
		v    float64
		err  error
		c    int64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // exact zero on the diagonal
			}
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
			}
			if v > float64(MaxEdgeCost) {
				return nil, fmt.Errorf("%w: cost a[%d][%d]=%g exceeds %d", ErrMalformedInput, i, j, v, MaxEdgeCost)
			}
			c = roundHalfUp(v)
			w[i*n+j] = c
		}
	}

	return &MatrixOracle{flat{n: n, w: w}}, nil
}

// NewMatrixOracleFromRows is a convenience wrapper over matrix.NewDenseFromRows.
func NewMatrixOracleFromRows(rows [][]float64) (*MatrixOracle, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return NewMatrixOracle(m)
}

// EuclideanOracle serves rounded planar Euclidean distances.
type EuclideanOracle struct {
	flat
	pts [][2]float64
}

var _ Oracle = (*EuclideanOracle)(nil)

// NewEuclideanOracle precomputes nint(‖p_i − p_j‖) for every ordered pair.
// The input slice is copied.
//
// Errors: ErrMalformedInput on an empty slice, non-finite coordinates, or a
// distance above MaxEdgeCost.
//
// Complexity: O(n²).
func NewEuclideanOracle(points [][2]float64) (*EuclideanOracle, error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("%w: no coordinates", ErrMalformedInput)
	}

	var (
		pts  = make([][2]float64, n)
		w    = make([]int64, n*n)
		i, j int
		d    float64
	)
	copy(pts, points)
	for i = 0; i < n; i++ {
		if !isFinite(pts[i][0]) || !isFinite(pts[i][1]) {
			return nil, fmt.Errorf("%w: point %d (%g, %g) is not finite", ErrMalformedInput, i, pts[i][0], pts[i][1])
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			if d > float64(MaxEdgeCost) {
				return nil, fmt.Errorf("%w: distance %d-%d exceeds %d", ErrMalformedInput, i, j, MaxEdgeCost)
			}
			w[i*n+j] = roundHalfUp(d)
			w[j*n+i] = w[i*n+j]
		}
	}

	return &EuclideanOracle{flat: flat{n: n, w: w}, pts: pts}, nil
}

// Point returns the coordinates of vertex i.
func (e *EuclideanOracle) Point(i int) [2]float64 { return e.pts[i] }

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
