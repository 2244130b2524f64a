package benchmark

// quartiles estimates the first, second, and third quartile of sorted,
// which must be ascending and non-empty, by weighted interpolation
// between neighboring elements.
//
// The estimator splits on the parity of the sample count: for even n the
// median is the average of the two middle elements and the outer quartiles
// recurse into the halves the same way; for odd n the middle element is
// the median and the outer quartiles blend the two elements straddling the
// quarter positions with 1/4 and 3/4 weights. The two odd sub-cases cover
// every odd n > 1, since an odd number is congruent to either 1 or 3 mod 4.
func quartiles(sorted []float64) (q1, q2, q3 float64) {
	n := len(sorted)
	if n == 1 {
		v := sorted[0]
		return v, v, v
	}

	if n%2 == 0 {
		mid := n / 2
		q2 = (sorted[mid-1] + sorted[mid]) / 2

		midMid := mid / 2
		if mid%2 == 0 {
			q1 = (sorted[midMid-1] + sorted[midMid]) / 2
			q3 = (sorted[mid+midMid-1] + sorted[mid+midMid]) / 2
		} else {
			q1 = sorted[midMid]
			q3 = sorted[midMid+mid]
		}
		return q1, q2, q3
	}

	mid := n / 2
	q2 = sorted[mid]

	switch {
	case (n-1)%4 == 0:
		p := (n - 1) / 4
		q1 = 0.25*sorted[p-1] + 0.75*sorted[p]
		q3 = 0.75*sorted[3*p] + 0.25*sorted[3*p+1]
	case (n-3)%4 == 0:
		p := (n - 3) / 4
		q1 = 0.75*sorted[p] + 0.25*sorted[p+1]
		q3 = 0.25*sorted[3*p+1] + 0.75*sorted[3*p+2]
	}
	return q1, q2, q3
}
