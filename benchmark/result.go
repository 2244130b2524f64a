package benchmark

import "fmt"

// Result summarizes one benchmark run. All values are in seconds. A
// Result is created once per run and returned by value; it is never
// modified afterwards and owns no resources.
type Result struct {
	Q1         float64 // first quartile
	Q2         float64 // median
	Q3         float64 // third quartile
	Mean       float64 // arithmetic mean
	StdDev     float64 // population standard deviation
	Resolution float64 // tick length of the sampling clock
}

// String renders the summary with every value in scientific notation,
// three fractional digits.
func (r Result) String() string {
	return fmt.Sprintf(
		"Mean = %.3E s; Std.Dev = %.3E s; Q1 = %.3E s; Q2 = %.3E s; Q3 = %.3E s; Resolution: %.3E s",
		r.Mean, r.StdDev, r.Q1, r.Q2, r.Q3, r.Resolution,
	)
}
