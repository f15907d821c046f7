// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qdplot/canvas"
	"github.com/katalvlaran/qdplot/stats"
)

// Fixed y range of the CDF plot: a little headroom around [0, 1].
const (
	cdfYMin = -0.1
	cdfYMax = 1.1
)

// histHeadroom divides the largest bin count into the depth reserved below
// the histogram x axis.
const histHeadroom = 20

// Renderer draws a list of series, already in label order, onto a canvas.
// Implementations own c for the duration of the call.
type Renderer interface {
	Render(series []Series, c *canvas.Canvas) error
}

// PointRenderer draws a scatter plot with axes through the origin.
type PointRenderer struct{}

// Render sets both ranges from the bounding box of the finite points (a
// single value is widened to a unit interval), draws the axes, then marks
// every point with its series marker.
func (PointRenderer) Render(series []Series, c *canvas.Canvas) error {
	b, err := boundsOf(series)
	if err != nil {
		return err
	}
	c.SetXRange(canvas.Widen(b.X.Min, b.X.Max))
	c.SetYRange(canvas.Widen(b.Y.Min, b.Y.Max))
	if err := c.DrawAxes(); err != nil {
		return err
	}

	for _, s := range series {
		m := s.Marker()
		for _, p := range s.Drawable() {
			if err := c.DrawValue(p.X, p.Y, m); err != nil {
				return fmt.Errorf("series %q: %w", s.Label, err)
			}
		}
	}

	return nil
}

// BoxplotRenderer stacks one box plot per series, RowStep rows apart,
// starting at the top row. The x range must be preset.
type BoxplotRenderer struct {
	// RowStep is the row distance between boxes; 0 means DefaultRowStep.
	RowStep int
}

// Render fails with canvas.ErrNoData for a series without a finite value
// and with canvas.ErrOutOfRange when the next box does not fit.
func (r BoxplotRenderer) Render(series []Series, c *canvas.Canvas) error {
	step := r.RowStep
	if step <= 0 {
		step = DefaultRowStep
	}

	row := 0
	for _, s := range series {
		vs := s.Values()
		if len(vs) == 0 {
			return fmt.Errorf("%w: series %q has no finite value", canvas.ErrNoData, s.Label)
		}
		if row+stats.BoxRows > c.Height() {
			return fmt.Errorf("%w: box of series %q needs rows %d..%d of %d",
				canvas.ErrOutOfRange, s.Label, row, row+stats.BoxRows-1, c.Height())
		}
		if err := stats.NewQuantiles(vs).DrawInto(c, row); err != nil {
			return fmt.Errorf("series %q: %w", s.Label, err)
		}
		row += step
	}

	return nil
}

// CDFRenderer draws one empirical CDF per series. The x range must be
// preset; the y range is forced to [-0.1, 1.1].
type CDFRenderer struct{}

// Render fixes the y range, draws the axes and each series' ECDF.
func (CDFRenderer) Render(series []Series, c *canvas.Canvas) error {
	c.FixYRange(cdfYMin, cdfYMax)
	if err := c.DrawAxes(); err != nil {
		return err
	}

	for _, s := range series {
		if err := stats.NewECDF(s.Values()).DrawInto(c, s.Marker()); err != nil {
			return fmt.Errorf("series %q: %w", s.Label, err)
		}
	}

	return nil
}

// HistogramRenderer draws one histogram per series on shared ranges.
type HistogramRenderer struct {
	// Bins is the bin count of every histogram; 0 means stats.DefaultBins.
	Bins int
}

// Render sets the x range to the union of the bin spans and the y range to
// [-maxCount/20, maxCount], maxCount being the largest bin over all series.
// Fails with canvas.ErrNoData when no series holds a finite value.
func (r HistogramRenderer) Render(series []Series, c *canvas.Canvas) error {
	bins := r.Bins
	if bins <= 0 {
		bins = stats.DefaultBins
	}

	hists := make([]*stats.Histogram, len(series))
	xr := canvas.Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	maxCount := 0
	for i, s := range series {
		h := stats.NewHistogramN(s.Values(), bins)
		hists[i] = h
		if lo, hi, ok := h.Bounds(); ok {
			xr.Min = math.Min(xr.Min, lo)
			xr.Max = math.Max(xr.Max, hi)
		}
		maxCount = max(maxCount, h.MaxCount())
	}
	if maxCount == 0 {
		return fmt.Errorf("%w: no finite value in %d series", canvas.ErrNoData, len(series))
	}

	c.FixXRange(xr.Min, xr.Max)
	top := float64(maxCount)
	c.FixYRange(-top/histHeadroom, top)

	for i, h := range hists {
		if err := h.DrawInto(c, series[i].Marker()); err != nil {
			return fmt.Errorf("series %q: %w", series[i].Label, err)
		}
	}

	return nil
}
