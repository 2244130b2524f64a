package workload

import (
	"fmt"
	"time"
)

// sleepWorkload sleeps a fixed duration on every iteration. Useful as a
// baseline: the measured mean should land within scheduler jitter of the
// configured duration.
type sleepWorkload struct {
	d time.Duration
}

func newSleepWorkload(cfg Config) *sleepWorkload {
	d := cfg.SleepFor
	if d <= 0 {
		d = time.Millisecond
	}
	return &sleepWorkload{d: d}
}

func (w *sleepWorkload) Name() string { return string(TypeSleep) }

func (w *sleepWorkload) Description() string {
	return fmt.Sprintf("sleep %s per iteration", w.d)
}

func (w *sleepWorkload) Setup() error { return nil }

func (w *sleepWorkload) Action() func() {
	return func() { time.Sleep(w.d) }
}

func (w *sleepWorkload) Before() func() { return nil }

func (w *sleepWorkload) Close() error { return nil }
