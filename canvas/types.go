// SPDX-License-Identifier: MIT

package canvas

import "math"

// Defaults of the reference configuration.
const (
	// DefaultHeight is the number of rows of a canvas built without WithSize.
	DefaultHeight = 25

	// DefaultWidth is the number of columns of a canvas built without WithSize.
	DefaultWidth = 80

	// DefaultMargin is the fraction of the data span added on each side of an
	// axis by SetXRange and SetYRange.
	DefaultMargin = 0.0

	// Blank is the content of an unwritten cell.
	Blank byte = ' '
)

// Interval is a continuous axis range. The zero value is the unset interval.
type Interval struct {
	Min, Max float64
}

// Valid reports whether Min < Max. The zero value is not valid.
func (r Interval) Valid() bool {
	return r.Min < r.Max
}

// Span returns Max - Min.
func (r Interval) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether Min ≤ x ≤ Max.
func (r Interval) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// Widen returns a pair usable by the range setters: when min == max the
// single value is centred in an interval of width 1.
func Widen(min, max float64) (float64, float64) {
	if min == max {
		return min - 0.5, max + 0.5
	}
	return min, max
}

func validBounds(min, max float64) bool {
	return min < max && !math.IsInf(min, 0) && !math.IsInf(max, 0)
}
