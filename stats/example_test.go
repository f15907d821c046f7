// SPDX-License-Identifier: MIT

package stats_test

import (
	"fmt"

	"github.com/katalvlaran/qdplot/canvas"
	"github.com/katalvlaran/qdplot/stats"
)

// ExampleNewQuantiles prints the five-number summary of a small sample.
func ExampleNewQuantiles() {
	q := stats.NewQuantiles([]float64{1, 3, 4, 0, 2})
	fmt.Println(q.Min, q.Q1, q.Q2, q.Q3, q.Max, len(q.Outliers))
	// Output:
	// 0 1.25 2.5 3.75 4 0
}

// ExampleQuantiles_DrawInto renders a box plot on a grid where each column
// is one unit.
func ExampleQuantiles_DrawInto() {
	c := canvas.New(canvas.WithSize(3, 13))
	c.FixXRange(0, 12)
	q := stats.NewQuantiles([]float64{0, 2, 4, 6, 8, 10, 12})
	_ = q.DrawInto(c, 0)

	for _, line := range c.Lines() {
		fmt.Printf("[%s]\n", line)
	}
	// Output:
	// [    -------  ]
	// [|---|  |   ||]
	// [    -------  ]
}

// ExampleNewECDF lists the steps of a sample with a repeated value.
func ExampleNewECDF() {
	e := stats.NewECDF([]float64{3, 1, 2, 2})
	for _, s := range e.Steps() {
		fmt.Printf("%g: %.2f\n", s.Value, s.Fraction)
	}
	fmt.Println(e.Value(2.5))
	// Output:
	// 1: 0.25
	// 2: 0.75
	// 3: 1.00
	// 0.75
}

// ExampleNewHistogram shows the default ten bins of a skewed sample.
func ExampleNewHistogram() {
	h := stats.NewHistogram([]float64{-1, 0, 0, 0.1, 0.2, 10})
	fmt.Println(h.Counts())
	v, _ := h.Value(0)
	fmt.Println(v)
	// Output:
	// [4 1 0 0 0 0 0 0 0 1]
	// 4
}
