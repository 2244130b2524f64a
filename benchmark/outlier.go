package benchmark

// removeOutliers applies Tukey's fences to sorted ascending samples and
// returns the samples inside [Q1 - k*dQ, Q3 + k*dQ], bounds inclusive,
// where dQ = Q3 - Q1 over the full input. The coefficient k tunes the
// sensitivity: larger k widens the fences and keeps more samples, with
// k = 1.5 the conventional cutoff for mild outliers. Order is preserved
// and the result is never longer than the input.
func removeOutliers(sorted []float64, k float64) []float64 {
	q1, _, q3 := quartiles(sorted)
	dq := q3 - q1
	lower := q1 - k*dq
	upper := q3 + k*dq

	kept := make([]float64, 0, len(sorted))
	for _, s := range sorted {
		if lower <= s && s <= upper {
			kept = append(kept, s)
		}
	}
	return kept
}
