package benchmark

import "time"

// The driver records samples as integer tick counts of the monotonic
// clock. Go's clock ticks in nanoseconds, so the resolution below is the
// seconds-per-tick factor used to scale statistics, and it is reported in
// every Result so callers can judge whether measured intervals are
// meaningfully larger than the timer granularity.
const ticksPerSecond = float64(time.Second / time.Nanosecond)

const clockResolution = 1.0 / ticksPerSecond
