// SPDX-License-Identifier: MIT

package stats

import (
	"sort"

	"github.com/katalvlaran/qdplot/canvas"
)

// Step is one jump of an ECDF: the fraction of the sample at or below Value.
type Step struct {
	Value    float64
	Fraction float64
}

// ECDF is an empirical cumulative distribution. Step values are strictly
// increasing and fractions lie in (0, 1], the last one ≈ 1.
type ECDF struct {
	steps []Step
}

// NewECDF builds the ECDF of sample, NaN values dropped. An empty sample
// yields an ECDF whose Value is 0 everywhere.
//
// Complexity: O(n log n) time, Memory: O(n).
func NewECDF(sample []float64) *ECDF {
	x := clean(sample)
	e := &ECDF{steps: make([]Step, 0, len(x))}
	if len(x) == 0 {
		return e
	}

	step := 1 / float64(len(x))
	cur := 0.0
	for _, v := range x {
		cur += step
		// Repeated values overwrite, so each keeps the running total
		// through its last occurrence.
		if n := len(e.steps); n > 0 && e.steps[n-1].Value == v {
			e.steps[n-1].Fraction = cur
			continue
		}
		e.steps = append(e.steps, Step{Value: v, Fraction: cur})
	}

	return e
}

// Steps returns a copy of the step list.
func (e *ECDF) Steps() []Step {
	out := make([]Step, len(e.steps))
	copy(out, e.steps)
	return out
}

// Value returns the fraction recorded for the largest step value strictly
// less than x, or 0 when x is at or below every step value.
//
// Complexity: O(log k) for k distinct values.
func (e *ECDF) Value(x float64) float64 {
	i := sort.Search(len(e.steps), func(i int) bool { return e.steps[i].Value >= x })
	if i == 0 {
		return 0
	}
	return e.steps[i-1].Fraction
}

// DrawInto samples Value once per canvas column across the x range, the
// last column exactly at its maximum, and draws each (x, Value(x)) with
// marker. The caller sets both ranges; see canvas.Canvas.FixYRange.
//
// Complexity: O(W log k) for a W-column canvas.
func (e *ECDF) DrawInto(c *canvas.Canvas, marker byte) error {
	xr := c.XRange()
	if !xr.Valid() {
		return errRangeUnset
	}

	w := c.Width()
	for col := 0; col < w; col++ {
		x := xr.Min
		switch {
		case col == w-1:
			x = xr.Max
		case w > 1:
			x += xr.Span() * float64(col) / float64(w-1)
		}
		if err := c.DrawValue(x, e.Value(x), marker); err != nil {
			return err
		}
	}

	return nil
}
