package workload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSleep(t *testing.T) {
	const d = 500 * time.Microsecond

	result, err := Run(RunConfig{
		BenchmarkID: "test",
		Workload:    Config{Type: TypeSleep, SleepFor: d},
		Iterations:  6,
		Warmup:      1,
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Mean, d.Seconds())
	assert.Positive(t, result.Resolution)
}

func TestRunPebbleSet(t *testing.T) {
	result, err := Run(RunConfig{
		Workload: Config{
			Type:           TypePebbleSet,
			Path:           t.TempDir(),
			ValueSize:      64,
			Seed:           42,
			BlockCacheSize: 8 << 20,
		},
		Iterations:     8,
		Warmup:         2,
		FilterOutliers: true,
		K:              1.5,
	})
	require.NoError(t, err)

	assert.Positive(t, result.Mean)
	assert.LessOrEqual(t, result.Q1, result.Q2)
	assert.LessOrEqual(t, result.Q2, result.Q3)
}

func TestRunUnknownWorkload(t *testing.T) {
	_, err := Run(RunConfig{
		Workload:   Config{Type: "bogus"},
		Iterations: 5,
		Warmup:     1,
	})
	assert.ErrorIs(t, err, ErrUnknownWorkload)
}

func TestRunInvalidIterations(t *testing.T) {
	_, err := Run(RunConfig{
		Workload:   Config{Type: TypeSleep, SleepFor: time.Microsecond},
		Iterations: 2,
		Warmup:     2,
	})
	assert.Error(t, err)
}
