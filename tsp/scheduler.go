// Package tsp - subset-space scheduler.
//
// The solve is a fixed state machine:
//
//	BuildBinomial → GenerateSubsets(p=2..n-1) → FillClass(p=2..n-1) → Finalize
//
// Two partitioning policies are used, each chosen explicitly per phase:
//
//   - RunDynamic (enumeration): class populations C(n-1,p) are wildly uneven,
//     so a fixed pool pulls one class at a time from a shared counter.
//   - RunStatic (fill): every subset of a class costs the same O(n²), so the
//     exact class size T[p] is cut into contiguous near-equal spans, one per
//     worker, with no shared counter at all.
//
// Both return only after every task has finished (errgroup.Wait). That return
// is the barrier: writes made by workers happen-before the caller's next
// statement, which is what lets class p read class p-1 without locks.
package tsp

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Phase names a scheduler state.
type Phase int

const (
	PhaseBuildBinomial Phase = iota
	PhaseGenerateSubsets
	PhaseFillClass
	PhaseFinalize
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseBuildBinomial:
		return "build-binomial"
	case PhaseGenerateSubsets:
		return "generate-subsets"
	case PhaseFillClass:
		return "fill-class"
	case PhaseFinalize:
		return "finalize"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Span is a half-open index range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Len returns Hi-Lo.
func (s Span) Len() int { return s.Hi - s.Lo }

// Partition splits [0,total) into min(parts,total) contiguous spans whose
// lengths differ by at most one (the first total%parts spans get the extra
// element). It returns nil when total ≤ 0; parts < 1 is treated as 1.
//
// Complexity: O(parts).
func Partition(total, parts int) []Span {
	if total <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > total {
		parts = total
	}

	var (
		spans = make([]Span, parts)
		base  = total / parts
		extra = total % parts
		lo    int
		i     int
		size  int
	)
	for i = 0; i < parts; i++ {
		size = base
		if i < extra {
			size++
		}
		spans[i] = Span{Lo: lo, Hi: lo + size}
		lo += size
	}

	return spans
}

// Scheduler is a fixed-size worker pool with the two partitioning policies.
// A Scheduler holds no per-run state and may be shared by concurrent solves.
type Scheduler struct {
	workers int
}

// NewScheduler returns a scheduler with the given pool size (minimum 1).
func NewScheduler(workers int) *Scheduler {
	if workers < 1 {
		workers = 1
	}

	return &Scheduler{workers: workers}
}

// Workers returns the pool size.
func (s *Scheduler) Workers() int { return s.workers }

// RunDynamic runs fn(tasks[i]) for every i using min(workers, len(tasks))
// goroutines. Each goroutine claims the next unclaimed index from an atomic
// counter, so a worker stuck on a large task never holds back small ones.
// Tasks are claimed in slice order. The first error stops further claims and
// is returned after all goroutines exit.
func (s *Scheduler) RunDynamic(tasks []int, fn func(task int) error) error {
	if len(tasks) == 0 {
		return nil
	}

	var (
		g      errgroup.Group
		next   atomic.Int64
		failed atomic.Bool
		pool   = min(s.workers, len(tasks))
		w      int
	)
	for w = 0; w < pool; w++ {
		g.Go(func() error {
			for !failed.Load() {
				i := int(next.Add(1) - 1)
				if i >= len(tasks) {
					return nil
				}
				if err := fn(tasks[i]); err != nil {
					failed.Store(true)
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// RunStatic cuts [0,total) with Partition(total, workers) and runs fn once per
// span, each on its own goroutine. A single span runs inline on the caller.
func (s *Scheduler) RunStatic(total int, fn func(span Span) error) error {
	spans := Partition(total, s.workers)
	switch len(spans) {
	case 0:
		return nil
	case 1:
		return fn(spans[0])
	}

	var g errgroup.Group
	for _, sp := range spans {
		g.Go(func() error { return fn(sp) })
	}

	return g.Wait()
}
