// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qdplot/canvas"
)

// tukeyK scales the interquartile range into the outlier fences.
const tukeyK = 1.5

// Box plot glyphs.
const (
	boxLine    = '-'
	boxBar     = '|'
	boxOutlier = '+'
)

// BoxRows is the number of canvas rows one box plot occupies.
const BoxRows = 3

// Quantiles is the five-number summary of a sample plus its outliers.
//
// Min and Max are not the fences: they are the most extreme sample values
// inside [lower, upper]. Outliers are the values outside it.
type Quantiles struct {
	Min, Q1, Q2, Q3, Max float64
	Outliers             []float64
}

// NewQuantiles summarizes sample. NaN values are dropped first.
//
// Quartile q sits at fractional index q·n of the sorted sample and is
// interpolated linearly between its floor and ceiling neighbours; an index
// at or past n-1 yields the last element.
//
// Panics when no value remains after dropping NaN.
//
// Complexity: O(n log n) time, Memory: O(n).
func NewQuantiles(sample []float64) *Quantiles {
	x := clean(sample)
	if len(x) == 0 {
		panic(fmt.Sprintf("stats: NewQuantiles: no valid value in %v", sample))
	}

	q := &Quantiles{
		Q1: quantileAt(x, 0.25),
		Q2: quantileAt(x, 0.5),
		Q3: quantileAt(x, 0.75),
	}
	lower, upper := q.Fences()

	// Split the sample into whisker candidates and outliers.
	q.Min, q.Max = math.Inf(1), math.Inf(-1)
	for _, v := range x {
		if v < lower || v > upper {
			q.Outliers = append(q.Outliers, v)
			continue
		}
		if v < q.Min {
			q.Min = v
		}
		if v > q.Max {
			q.Max = v
		}
	}
	// Interpolated quartiles can leave nothing inside a zero-width fence.
	if math.IsInf(q.Min, 1) {
		q.Min = q.Q1
	}
	if math.IsInf(q.Max, -1) {
		q.Max = q.Q3
	}

	return q
}

// quantileAt interpolates sorted x at index p·len(x).
func quantileAt(x []float64, p float64) float64 {
	idx := p * float64(len(x))
	last := len(x) - 1
	if idx >= float64(last) {
		return x[last]
	}
	i := math.Floor(idx)
	f := idx - i
	k := int(i)

	return (1-f)*x[k] + f*x[k+1]
}

// IQR returns Q3 - Q1.
func (q *Quantiles) IQR() float64 {
	return q.Q3 - q.Q1
}

// Fences returns the Tukey fences Q2 ∓ 1.5·IQR.
func (q *Quantiles) Fences() (lower, upper float64) {
	return q.Q2 - tukeyK*q.IQR(), q.Q2 + tukeyK*q.IQR()
}

// DrawInto draws a horizontal box plot on rows row..row+2 of c, using the
// canvas x range to place every value:
//
//	row    :        -----------
//	row+1  : |------|    |    |------|   +
//	row+2  :        -----------
//
// Whiskers join Min to Q1 and Q3 to Max on the middle row, the box body
// spans Q1..Q3 above and below it, bars mark the five values and '+' each
// outlier. The x range must have been set by the caller.
//
// Panics when c has fewer than BoxRows rows from row on.
//
// Complexity: O(W + k) for a W-column canvas and k outliers.
func (q *Quantiles) DrawInto(c *canvas.Canvas, row int) error {
	if row < 0 || c.Height() < row+BoxRows {
		panic(fmt.Sprintf("stats: DrawInto: rows %d..%d outside a %d-row canvas", row, row+BoxRows-1, c.Height()))
	}

	var cols [5]int
	for i, v := range [5]float64{q.Min, q.Q1, q.Q2, q.Q3, q.Max} {
		col, err := c.Column(v)
		if err != nil {
			return err
		}
		cols[i] = col
	}
	outliers := make([]int, 0, len(q.Outliers))
	for _, v := range q.Outliers {
		col, err := c.Column(v)
		if err != nil {
			return err
		}
		outliers = append(outliers, col)
	}

	// Whiskers and outliers first; the bars overwrite their end cells.
	minCol, q1Col, q3Col, maxCol := cols[0], cols[1], cols[3], cols[4]
	mid := row + 1
	for j := minCol + 1; j < q1Col; j++ {
		if err := c.SetCell(mid, j, boxLine); err != nil {
			return err
		}
	}
	for j := q3Col + 1; j < maxCol; j++ {
		if err := c.SetCell(mid, j, boxLine); err != nil {
			return err
		}
	}
	for _, j := range outliers {
		if err := c.SetCell(mid, j, boxOutlier); err != nil {
			return err
		}
	}
	for j := q1Col; j < q3Col; j++ {
		if err := c.SetCell(row, j, boxLine); err != nil {
			return err
		}
		if err := c.SetCell(row+2, j, boxLine); err != nil {
			return err
		}
	}
	for _, j := range cols {
		if err := c.SetCell(mid, j, boxBar); err != nil {
			return err
		}
	}

	return nil
}
