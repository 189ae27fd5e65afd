package tsp

import (
	"math"
	"math/bits"
)

// cellBytes is the size of one DP cell.
const cellBytes = 8

// Table is the Held–Karp DP table C[S][k]: the minimal cost of a path that
// leaves vertex 0, visits exactly the vertices of S and ends at k ∈ S.
//
// Storage is one flat []int64 of 2^(n-1) rows × (n-1) columns. Subsets never
// contain the origin, so row = S>>1 and column = k-1. Cells with k ∉ S are
// never written nor read.
//
// Concurrency: distinct subsets own distinct rows, so FillSubset may run
// concurrently for subsets of one size class once the previous class is
// complete. The table itself holds no lock.
type Table struct {
	n     int
	width int // n-1 columns
	cells []int64
}

// TableBytes returns the exact size of the DP cell buffer for n vertices.
// It is 0 for n ≤ 1 (no table is needed).
func TableBytes(n int) uint64 {
	if n <= 1 {
		return 0
	}

	return (uint64(1) << uint(n-1)) * uint64(n-1) * cellBytes
}

// FootprintBytes returns the bytes a solve allocates up front: the DP table
// plus every size-class subset array (Σ C(n-1,p) ≤ 2^(n-1) masks).
func FootprintBytes(n int) uint64 {
	if n <= 1 {
		return 0
	}

	return TableBytes(n) + (uint64(1)<<uint(n-1))*8
}

// NewTable allocates the table for n vertices (2 ≤ n ≤ HardMaxVertices).
// Callers gate n through CheckFeasible first.
//
// Complexity: O(n·2ⁿ) memory.
func NewTable(n int) *Table {
	width := n - 1
	rows := 1 << uint(n-1)

	return &Table{n: n, width: width, cells: make([]int64, rows*width)}
}

// N returns the vertex count the table was sized for.
func (t *Table) N() int { return t.n }

// Len returns the number of cells.
func (t *Table) Len() int { return len(t.cells) }

func (t *Table) index(s uint64, k int) int {
	return int(s>>1)*t.width + (k - 1)
}

// At returns C[s][k]. Requires k ∈ s and s&1 == 0.
func (t *Table) At(s uint64, k int) int64 {
	return t.cells[t.index(s, k)]
}

// Set writes C[s][k]. Requires k ∈ s and s&1 == 0.
func (t *Table) Set(s uint64, k int, v int64) {
	t.cells[t.index(s, k)] = v
}

// FillBase writes the size-1 class: C[{k}][k] = dist(0, k) for every k ≥ 1.
//
// Complexity: O(n).
func (t *Table) FillBase(dist Oracle) {
	var k int
	for k = 1; k < t.n; k++ {
		t.Set(uint64(1)<<uint(k), k, dist.Dist(0, k))
	}
}

// FillSubset computes every cell of row s from the rows of class |s|-1:
//
//	C[s][k] = min over w ∈ s, w ≠ k of C[s \ {k}][w] + dist(w, k)
//
// Predecessors are scanned in increasing w; ties keep the first minimum.
//
// Complexity: O(|s|²).
func (t *Table) FillSubset(s uint64, dist Oracle) {
	var (
		ks, ws     uint64
		k, w       int
		prev       uint64
		best, cand int64
	)
	for ks = s; ks != 0; ks &= ks - 1 {
		k = bits.TrailingZeros64(ks)
		prev = s &^ (uint64(1) << uint(k))
		best = math.MaxInt64
		for ws = prev; ws != 0; ws &= ws - 1 {
			w = bits.TrailingZeros64(ws)
			cand = t.cells[t.index(prev, w)] + dist.Dist(w, k)
			if cand < best {
				best = cand
			}
		}
		t.cells[t.index(s, k)] = best
	}
}

// closeTour returns min over k of C[full][k] + dist(k, 0) and the k attaining
// it (smallest k on ties).
//
// Complexity: O(n).
func (t *Table) closeTour(dist Oracle) (int64, int) {
	var (
		full = (uint64(1)<<uint(t.n) - 1) &^ 1
		best = int64(math.MaxInt64)
		last = -1
		k    int
		c    int64
	)
	for k = 1; k < t.n; k++ {
		c = t.At(full, k) + dist.Dist(k, 0)
		if c < best {
			best, last = c, k
		}
	}

	return best, last
}

// backtrack rebuilds a closed optimal tour ending the open path at last.
// At each step it picks the smallest predecessor w reproducing the stored
// optimum, so the result is deterministic.
//
// Complexity: O(n²).
func (t *Table) backtrack(dist Oracle, last int) []int {
	var (
		n    = t.n
		tour = make([]int, n+1)
		s    = (uint64(1)<<uint(n) - 1) &^ 1
		k    = last
		pos  int
		prev uint64
		ws   uint64
		w    int
		want int64
	)
	for pos = n - 1; pos >= 1; pos-- {
		tour[pos] = k
		prev = s &^ (uint64(1) << uint(k))
		if prev == 0 {
			break
		}
		want = t.At(s, k)
		for ws = prev; ws != 0; ws &= ws - 1 {
			w = bits.TrailingZeros64(ws)
			if t.At(prev, w)+dist.Dist(w, k) == want {
				break
			}
		}
		s, k = prev, w
	}
	tour[0], tour[n] = 0, 0

	return tour
}
