// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/qdplot/canvas"
)

// DefaultBins is the bin count of NewHistogram.
const DefaultBins = 10

// maxInflation widens the upper bound by this fraction of the span so the
// sample maximum lands strictly inside the last bin.
const maxInflation = 0.001

// Histogram is a frequency table over equal-width, half-open bins
// [bins[i], bins[i+1]). Invariant: len(counts) == len(bins)-1, or both empty.
type Histogram struct {
	bins   []float64
	counts []int
	total  int
}

// NewHistogram builds a DefaultBins-bin histogram of sample.
func NewHistogram(sample []float64) *Histogram {
	return NewHistogramN(sample, DefaultBins)
}

// NewHistogramN builds an n-bin histogram of sample, NaN values dropped.
// An empty sample yields an empty histogram (no bins, no counts).
// A sample of one repeated value is spread over an interval of width 1.
//
// Panics when n == 0.
//
// Complexity: O(m log m + n) for m sample values, Memory: O(m + n).
func NewHistogramN(sample []float64, n int) *Histogram {
	if n <= 0 {
		panic(fmt.Sprintf("stats: NewHistogramN: bin count must be > 0, got %d", n))
	}
	x := clean(sample)
	if len(x) == 0 {
		return &Histogram{}
	}

	// Inflate the top so the maximum sits inside the last bin.
	lo, hi := floats.Min(x), floats.Max(x)
	hi += maxInflation * (hi - lo)
	lo, hi = canvas.Widen(lo, hi)

	bins := floats.Span(make([]float64, n+1), lo, hi)
	// Rounding in Span may leave the last boundary at or below the maximum.
	if last := x[len(x)-1]; bins[n] <= last {
		bins[n] = math.Nextafter(last, math.Inf(1))
	}

	weights := stat.Histogram(nil, bins, x, nil)
	counts := make([]int, n)
	for i, w := range weights {
		counts[i] = int(w)
	}

	return &Histogram{bins: bins, counts: counts, total: len(x)}
}

// Empty reports whether the histogram has no bins.
func (h *Histogram) Empty() bool {
	return len(h.bins) == 0
}

// Bins returns a copy of the n+1 ascending bin boundaries.
func (h *Histogram) Bins() []float64 {
	out := make([]float64, len(h.bins))
	copy(out, h.bins)
	return out
}

// Counts returns a copy of the n bin counts.
func (h *Histogram) Counts() []int {
	out := make([]int, len(h.counts))
	copy(out, h.counts)
	return out
}

// Total returns the number of counted values.
func (h *Histogram) Total() int {
	return h.total
}

// MaxCount returns the largest single-bin count, 0 when empty.
func (h *Histogram) MaxCount() int {
	m := 0
	for _, c := range h.counts {
		m = max(m, c)
	}
	return m
}

// Bounds returns the first and last boundaries. ok is false when empty.
func (h *Histogram) Bounds() (lo, hi float64, ok bool) {
	if h.Empty() {
		return 0, 0, false
	}
	return h.bins[0], h.bins[len(h.bins)-1], true
}

// BinIndex returns the bin holding x: the index of the first boundary
// strictly greater than x, minus one. x equal to the last boundary belongs
// to the last bin. ok is false for NaN or x outside [first, last].
//
// Panics on an empty histogram.
func (h *Histogram) BinIndex(x float64) (idx int, ok bool) {
	if h.Empty() {
		panic("stats: BinIndex on an empty histogram")
	}
	last := len(h.bins) - 1
	if math.IsNaN(x) || x < h.bins[0] || x > h.bins[last] {
		return 0, false
	}
	if i := floats.Within(h.bins, x); i >= 0 {
		return i, true
	}

	return last - 1, true
}

// Value returns the count of the bin holding x, or 0 when x falls outside
// every bin. ok is false only for an empty histogram.
//
// Complexity: O(b) for b bins.
func (h *Histogram) Value(x float64) (float64, bool) {
	if h.Empty() {
		return 0, false
	}
	if i, ok := h.BinIndex(x); ok {
		return float64(h.counts[i]), true
	}
	return 0, true
}

// Frequency returns Value normalized by the total count.
func (h *Histogram) Frequency(x float64) (float64, bool) {
	v, ok := h.Value(x)
	if !ok || h.total == 0 {
		return 0, ok
	}
	return v / float64(h.total), true
}

// DrawInto samples Value at XRange.Min + col·span/Width for every column and
// draws each point with marker. An empty histogram draws nothing.
//
// Complexity: O(W·b) for a W-column canvas and b bins.
func (h *Histogram) DrawInto(c *canvas.Canvas, marker byte) error {
	if h.Empty() {
		return nil
	}
	xr := c.XRange()
	if !xr.Valid() {
		return errRangeUnset
	}

	step := xr.Span() / float64(c.Width())
	for col := 0; col < c.Width(); col++ {
		x := xr.Min + float64(col)*step
		v, _ := h.Value(x)
		if err := c.DrawValue(x, v, marker); err != nil {
			return err
		}
	}

	return nil
}
