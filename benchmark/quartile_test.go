package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuartiles(t *testing.T) {
	tests := []struct {
		name       string
		sorted     []float64
		q1, q2, q3 float64
	}{
		{
			name:   "single sample",
			sorted: []float64{5},
			q1:     5, q2: 5, q3: 5,
		},
		{
			name:   "two samples",
			sorted: []float64{1, 2},
			q1:     1, q2: 1.5, q3: 2,
		},
		{
			name:   "three samples",
			sorted: []float64{1, 2, 3},
			q1:     1.25, q2: 2, q3: 2.75,
		},
		{
			name:   "four samples",
			sorted: []float64{1, 2, 3, 4},
			q1:     1.5, q2: 2.5, q3: 3.5,
		},
		{
			name:   "five samples",
			sorted: []float64{1, 2, 3, 4, 5},
			q1:     1.75, q2: 3, q3: 4.25,
		},
		{
			name:   "six samples",
			sorted: []float64{1, 2, 3, 4, 5, 6},
			q1:     2, q2: 3.5, q3: 5,
		},
		{
			name:   "seven samples",
			sorted: []float64{1, 2, 3, 4, 5, 6, 7},
			q1:     2.25, q2: 4, q3: 5.75,
		},
		{
			name:   "eight samples",
			sorted: []float64{1, 2, 3, 4, 5, 6, 7, 8},
			q1:     2.5, q2: 4.5, q3: 6.5,
		},
		{
			name:   "nine samples",
			sorted: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9},
			q1:     2.75, q2: 5, q3: 7.25,
		},
		{
			name:   "ten samples",
			sorted: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			q1:     30, q2: 55, q3: 80,
		},
		{
			name:   "repeated values",
			sorted: []float64{2, 4, 4, 4, 5, 5, 7, 9},
			q1:     4, q2: 4.5, q3: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q1, q2, q3 := quartiles(tt.sorted)
			assert.InDelta(t, tt.q1, q1, 1e-12, "Q1")
			assert.InDelta(t, tt.q2, q2, 1e-12, "Q2")
			assert.InDelta(t, tt.q3, q3, 1e-12, "Q3")
		})
	}
}
