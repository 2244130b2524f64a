package benchmark

import (
	"errors"
	"math"
	"slices"
)

// ErrAllSamplesRemoved reports that outlier filtering left nothing to
// summarize. The fences are computed from the sample set itself, so the
// quartiles always survive a non-negative coefficient; only a negative k
// can invert the fences and empty the set.
var ErrAllSamplesRemoved = errors.New("outlier filter removed every sample")

// summarize turns raw tick samples into a Result: sort ascending, drop
// samples outside Tukey's fences when requested, then compute quartiles,
// mean and population standard deviation over what remains, scaled to
// seconds with resolution (seconds per tick). The input slice is left
// untouched.
func summarize(samples []float64, filterOutliers bool, k, resolution float64) (Result, error) {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	if filterOutliers {
		sorted = removeOutliers(sorted, k)
	}
	if len(sorted) == 0 {
		return Result{}, ErrAllSamplesRemoved
	}

	q1, q2, q3 := quartiles(sorted)
	mean, stdDev := meanStdDev(sorted)

	return Result{
		Q1:         q1 * resolution,
		Q2:         q2 * resolution,
		Q3:         q3 * resolution,
		Mean:       mean * resolution,
		StdDev:     stdDev * resolution,
		Resolution: resolution,
	}, nil
}

// meanStdDev returns the arithmetic mean and the population standard
// deviation (squared deviations divided by n, not n-1) of values, which
// must be non-empty.
func meanStdDev(values []float64) (mean, stdDev float64) {
	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / n

	var varSum float64
	for _, v := range values {
		d := v - mean
		varSum += d * d
	}
	return mean, math.Sqrt(varSum / n)
}
