package tsp

import (
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
)

// Options configures a solve. The zero value is usable: all hardware threads,
// DefaultMaxVertices, no memory budget, cost only, no logging.
type Options struct {
	// Workers is the worker-pool size. 0 ⇒ runtime.GOMAXPROCS(0).
	Workers int

	// MaxVertices is the refusal ceiling for n. 0 ⇒ DefaultMaxVertices.
	// Must not exceed HardMaxVertices.
	MaxVertices int

	// MemoryLimit caps the bytes the DP table and subset arrays may take.
	// 0 ⇒ unlimited (only MaxVertices applies).
	MemoryLimit uint64

	// ReconstructTour asks Solve to backtrack an optimal tour from the table.
	ReconstructTour bool

	// Logger receives debug-level phase events. nil ⇒ silent.
	Logger *log.Logger
}

// DefaultOptions returns the documented defaults with explicit values.
func DefaultOptions() Options {
	return Options{
		Workers:     runtime.GOMAXPROCS(0),
		MaxVertices: DefaultMaxVertices,
	}
}

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", opts.Workers, ErrInvalidOptions)
	}
	if opts.MaxVertices < 0 || opts.MaxVertices > HardMaxVertices {
		return fmt.Errorf("max vertices=%d not in [0,%d]: %w", opts.MaxVertices, HardMaxVertices, ErrInvalidOptions)
	}

	return nil
}

// workerCount resolves the effective pool size.
func (o Options) workerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// ceiling resolves the effective vertex ceiling.
func (o Options) ceiling() int {
	if o.MaxVertices > 0 {
		return o.MaxVertices
	}

	return DefaultMaxVertices
}

// logger returns o.Logger or a logger writing to io.Discard.
func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return log.New(io.Discard)
}
