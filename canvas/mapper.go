// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"math"
)

// MapToCell maps x in [min, max] onto a cell index in [0, n-1]:
//
//	round((n-1)/(max-min) · (x-min))
//
// rounding half away from zero. The map is monotonic non-decreasing and
// reaches both 0 (at min) and n-1 (at max).
//
// Returns ErrOutOfRange when x < min, x > max or x is NaN.
// Panics unless max > min.
//
// Complexity: O(1).
func MapToCell(x, min, max float64, n int) (int, error) {
	if !(max > min) {
		panic(fmt.Sprintf("canvas: MapToCell: empty interval [%g, %g]", min, max))
	}
	if math.IsNaN(x) || x < min || x > max {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, x, min, max)
	}

	return int(math.Round(float64(n-1) / (max - min) * (x - min))), nil
}
