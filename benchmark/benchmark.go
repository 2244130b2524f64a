// Package benchmark measures the running time of a zero-argument action.
//
// Run executes the action in a warmup-then-measure loop on the calling
// goroutine, times every measured invocation with the monotonic clock,
// and summarizes the sample set into quartiles, mean and standard
// deviation, optionally dropping outliers through Tukey's fences first.
// It is an in-process harness: no child processes, no goroutines, no
// state shared between invocations beyond the clock resolution constant.
package benchmark

import (
	"errors"
	"runtime"
	"time"
)

// Errors reported by Run before any callable is invoked.
var (
	ErrNoAction          = errors.New("action is required")
	ErrInvalidIterations = errors.New("iteration count must not be negative")
	ErrInvalidWarmup     = errors.New("warmup count must not be negative")
	ErrTooFewIterations  = errors.New("at least one measured iteration is required")
)

// Options defines the parameters of a single benchmark run.
type Options struct {
	Iterations     int     // total invocations of the action
	Warmup         int     // leading invocations excluded from timing
	Before         func()  // runs immediately before every iteration (optional)
	After          func()  // runs immediately after every iteration (optional)
	FilterOutliers bool    // drop samples outside Tukey's fences before summarizing
	K              float64 // Tukey fence coefficient; larger keeps more samples
}

// DefaultOptions returns the options of a plain measurement run: 100
// iterations with the first 5 as warmup, and mild outlier filtering
// (k = 1.5).
func DefaultOptions() Options {
	return Options{
		Iterations:     100,
		Warmup:         5,
		FilterOutliers: true,
		K:              1.5,
	}
}

// Run executes action opts.Iterations times and returns summary
// statistics over the timed invocations. The first opts.Warmup
// invocations run untimed so that one-time costs (lazy initialization,
// cache warming) stay out of the sample set; there must be at least one
// measured iteration. Before and After, when set, run around every
// iteration, timed or not. A full garbage collection cycle is forced
// before each iteration to keep the collector out of the timed section
// as far as possible; this reduces noise but is not a guarantee.
//
// The whole run is synchronous on the calling goroutine and cannot be
// cancelled. Panics raised by the action or the hooks propagate to the
// caller; no partial Result is produced.
func Run(action func(), opts Options) (Result, error) {
	if action == nil {
		return Result{}, ErrNoAction
	}
	if opts.Iterations < 0 {
		return Result{}, ErrInvalidIterations
	}
	if opts.Warmup < 0 {
		return Result{}, ErrInvalidWarmup
	}
	if opts.Iterations-opts.Warmup <= 0 {
		return Result{}, ErrTooFewIterations
	}

	samples := collect(action, opts)
	return summarize(samples, opts.FilterOutliers, opts.K, clockResolution)
}

// collect runs the measurement loop and returns one raw sample per timed
// iteration, in iteration order, as nanosecond tick counts.
func collect(action func(), opts Options) []float64 {
	before := opts.Before
	if before == nil {
		before = func() {}
	}
	after := opts.After
	if after == nil {
		after = func() {}
	}

	samples := make([]float64, 0, opts.Iterations-opts.Warmup)
	for i := 0; i < opts.Iterations; i++ {
		before()
		runtime.GC()
		if i >= opts.Warmup {
			start := time.Now()
			action()
			samples = append(samples, float64(time.Since(start).Nanoseconds()))
		} else {
			action()
		}
		after()
	}
	return samples
}
