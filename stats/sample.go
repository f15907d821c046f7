// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/qdplot/canvas"
)

var errRangeUnset = fmt.Errorf("%w: x range not set", canvas.ErrOutOfRange)

// clean returns the non-NaN values of sample, sorted ascending, in a new slice.
func clean(sample []float64) []float64 {
	out := make([]float64, 0, len(sample))
	for _, v := range sample {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	stat.SortWeighted(out, nil)

	return out
}
