package workload

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tclemos/microbench/benchmark"
)

// RunConfig defines one benchmark invocation passed from the CLI.
type RunConfig struct {
	BenchmarkID    string // optional label for this benchmark run
	Workload       Config
	Iterations     int
	Warmup         int
	FilterOutliers bool
	K              float64
}

// Run orchestrates the full benchmark lifecycle: create the workload,
// set it up, drive it through benchmark.Run, and report the summary.
func Run(cfg RunConfig) (benchmark.Result, error) {
	w, err := New(cfg.Workload)
	if err != nil {
		return benchmark.Result{}, err
	}

	log.Info().
		Str("benchmark_id", cfg.BenchmarkID).
		Str("workload", w.Name()).
		Str("description", w.Description()).
		Int("iterations", cfg.Iterations).
		Int("warmup", cfg.Warmup).
		Bool("filter_outliers", cfg.FilterOutliers).
		Float64("k", cfg.K).
		Msg("Starting benchmark")

	if err := w.Setup(); err != nil {
		return benchmark.Result{}, fmt.Errorf("failed to set up workload: %w", err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("Workload close failed")
		}
	}()

	opts := benchmark.Options{
		Iterations:     cfg.Iterations,
		Warmup:         cfg.Warmup,
		Before:         w.Before(),
		FilterOutliers: cfg.FilterOutliers,
		K:              cfg.K,
	}
	result, err := benchmark.Run(w.Action(), opts)
	if err != nil {
		return benchmark.Result{}, err
	}

	log.Info().
		Str("benchmark_id", cfg.BenchmarkID).
		Float64("mean_s", result.Mean).
		Float64("std_dev_s", result.StdDev).
		Float64("q1_s", result.Q1).
		Float64("q2_s", result.Q2).
		Float64("q3_s", result.Q3).
		Float64("resolution_s", result.Resolution).
		Msg("Benchmark complete")

	return result, nil
}
