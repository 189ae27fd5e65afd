package tsp

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/heldkarp/matrix"
)

// Solve computes the optimal tour cost for dist with the parallel Held–Karp
// dynamic program.
//
// Stages:
//  1. CheckFeasible: refuse oversized instances before any allocation.
//  2. BuildBinomial: T[p] = C(n-1, p).
//  3. GenerateSubsets: every class p ∈ [2, n-1] enumerated concurrently,
//     dynamically scheduled, into arrays pre-sized from T. Full barrier.
//  4. FillClass: base case, then classes in increasing p; within a class the
//     T[p] subsets are statically partitioned across workers. Barrier per class.
//  5. Finalize: close the tour through vertex 0 (and backtrack if asked).
//
// n = 1 yields cost 0 without allocating a table.
//
// Errors: ErrMalformedInput, ErrInvalidOptions, ErrInfeasibleSize,
// ErrConsistencyViolation. No partial result is ever returned.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func Solve(dist Oracle, opts Options) (Result, error) {
	start := time.Now()
	if dist == nil {
		return Result{}, fmt.Errorf("%w: nil oracle", ErrMalformedInput)
	}
	n := dist.N()
	if err := CheckFeasible(n, opts); err != nil {
		return Result{}, err
	}

	workers := opts.workerCount()
	if n == 1 {
		res := Result{Workers: workers}
		if opts.ReconstructTour {
			res.Tour = []int{0, 0}
		}
		res.Elapsed = time.Since(start)

		return res, nil
	}

	sc := &solveContext{
		n:      n,
		dist:   dist,
		sched:  NewScheduler(workers),
		logger: opts.logger(),
	}
	sc.logger.Debug("solve started", "n", n, "workers", workers, "table_bytes", TableBytes(n))

	cost, tour, err := sc.run(opts.ReconstructTour)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Cost:    cost,
		Tour:    tour,
		Elapsed: time.Since(start),
		Workers: workers,
		Phases:  sc.phases,
	}, nil
}

// SolveMatrix wraps NewMatrixOracle + Solve.
func SolveMatrix(m matrix.Matrix, opts Options) (Result, error) {
	dist, err := NewMatrixOracle(m)
	if err != nil {
		return Result{}, err
	}

	return Solve(dist, opts)
}

// SolvePoints wraps NewEuclideanOracle + Solve.
func SolvePoints(points [][2]float64, opts Options) (Result, error) {
	dist, err := NewEuclideanOracle(points)
	if err != nil {
		return Result{}, err
	}

	return Solve(dist, opts)
}

// solveContext owns everything one solve allocates. Nothing in it outlives
// Solve, and nothing is shared with other solves.
type solveContext struct {
	n      int
	dist   Oracle
	sched  *Scheduler
	logger *log.Logger

	binom  []int      // T[p] = C(n-1, p)
	sets   [][]uint64 // sets[p]: class p in increasing order; released after fill
	table  *Table
	phases PhaseTimings
}

// run drives the phases in order and returns (cost, tour).
func (sc *solveContext) run(reconstruct bool) (int64, []int, error) {
	var (
		t0  time.Time
		err error
	)

	t0 = time.Now()
	sc.binom = BinomialRow(sc.n)
	sc.phases.BuildBinomial = sc.mark(PhaseBuildBinomial, t0)

	t0 = time.Now()
	if err = sc.generateSubsets(); err != nil {
		return 0, nil, err
	}
	sc.phases.GenerateSubsets = sc.mark(PhaseGenerateSubsets, t0)

	t0 = time.Now()
	if err = sc.fillClasses(); err != nil {
		return 0, nil, err
	}
	sc.phases.FillClasses = sc.mark(PhaseFillClass, t0)

	t0 = time.Now()
	cost, last := sc.table.closeTour(sc.dist)
	var tour []int
	if reconstruct {
		tour = sc.table.backtrack(sc.dist, last)
	}
	sc.phases.Finalize = sc.mark(PhaseFinalize, t0)

	return cost, tour, nil
}

// mark logs the end of a phase and returns its duration.
func (sc *solveContext) mark(p Phase, t0 time.Time) time.Duration {
	d := time.Since(t0)
	sc.logger.Debug("phase done", "phase", p, "elapsed", d)

	return d
}

// enumerationOrder lists classes 2..n-1 largest population first, so the
// dynamic pool starts the longest tasks early. Ties keep increasing p.
func (sc *solveContext) enumerationOrder() []int {
	classes := make([]int, 0, max(sc.n-2, 0))
	for p := 2; p < sc.n; p++ {
		classes = append(classes, p)
	}
	slices.SortStableFunc(classes, func(a, b int) int {
		return sc.binom[b] - sc.binom[a]
	})

	return classes
}

// generateSubsets sizes sets[p] from T[p] and enumerates every class on the
// dynamic pool. Classes 0 and 1 are never enumerated.
func (sc *solveContext) generateSubsets() error {
	sc.sets = make([][]uint64, sc.n)
	for p := 2; p < sc.n; p++ {
		sc.sets[p] = make([]uint64, sc.binom[p])
	}

	return sc.sched.RunDynamic(sc.enumerationOrder(), func(p int) error {
		_, err := EnumerateClass(sc.n, p, sc.sets[p])
		return err
	})
}

// fillClasses writes the base case then every class p = 2..n-1 in order.
// RunStatic returning is the barrier between class p and p+1.
func (sc *solveContext) fillClasses() error {
	sc.table = NewTable(sc.n)
	sc.table.FillBase(sc.dist)

	for p := 2; p < sc.n; p++ {
		class := sc.sets[p]
		err := sc.sched.RunStatic(len(class), func(span Span) error {
			for _, s := range class[span.Lo:span.Hi] {
				sc.table.FillSubset(s, sc.dist)
			}
			return nil
		})
		if err != nil {
			return err
		}
		sc.sets[p] = nil
		sc.logger.Debug("class filled", "p", p, "subsets", len(class))
	}
	sc.sets = nil

	return nil
}
