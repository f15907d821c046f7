// SPDX-License-Identifier: MIT

package canvas_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qdplot/canvas"
)

// TestMapToCell_Values pins the rounding rule at the ends and at a half step.
func TestMapToCell_Values(t *testing.T) {
	cases := []struct {
		name     string
		x        float64
		min, max float64
		n        int
		want     int
	}{
		{"Min", 0, 0, 1, 80, 0},
		{"Max", 1, 0, 1, 80, 79},
		{"HalfAwayFromZero", 0.5, 0, 1, 80, 40},
		{"NegativeInterval", -2, -4, 0, 5, 2},
		{"SingleCell", 3, 0, 10, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := canvas.MapToCell(tc.x, tc.min, tc.max, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestMapToCell_OutOfRange verifies values outside [min, max] and NaN are rejected.
func TestMapToCell_OutOfRange(t *testing.T) {
	for _, x := range []float64{-0.001, 1.001, math.NaN(), math.Inf(1)} {
		_, err := canvas.MapToCell(x, 0, 1, 80)
		assert.ErrorIs(t, err, canvas.ErrOutOfRange, "x=%g", x)
	}
}

// TestMapToCell_EmptyIntervalPanics verifies max <= min is a precondition violation.
func TestMapToCell_EmptyIntervalPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = canvas.MapToCell(1, 1, 1, 10) })
	assert.Panics(t, func() { _, _ = canvas.MapToCell(1, 2, 1, 10) })
}

// TestMapToCell_MonotonicAndBounded sweeps an interval and checks every index
// stays in [0, n-1], never decreases, and both ends are reached.
func TestMapToCell_MonotonicAndBounded(t *testing.T) {
	const (
		lo, hi = -3.0, 7.0
		n      = 37
		steps  = 1000
	)
	prev := -1
	seen := make(map[int]bool)
	for i := 0; i <= steps; i++ {
		x := lo + (hi-lo)*float64(i)/steps
		got, err := canvas.MapToCell(x, lo, hi, n)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, 0)
		require.LessOrEqual(t, got, n-1)
		require.GreaterOrEqual(t, got, prev, "not monotonic at x=%g", x)
		prev = got
		seen[got] = true
	}
	assert.Len(t, seen, n, "every cell must be reachable")
}
