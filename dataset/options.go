// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/qdplot/stats"
)

// DefaultRowStep is the row distance between two stacked box plots: one
// box plus a blank separator row.
const DefaultRowStep = stats.BoxRows + 1

// Option tunes the renderer built by PlotKind.Renderer. Invalid values panic.
type Option func(*options)

type options struct {
	bins    int
	rowStep int
}

// WithBins sets the histogram bin count. Panics unless n > 0.
func WithBins(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("dataset: WithBins(%d): bin count must be > 0", n))
	}
	return func(o *options) { o.bins = n }
}

// WithRowStep sets the row distance between stacked box plots.
// Panics when boxes would overlap (n < stats.BoxRows).
func WithRowStep(n int) Option {
	if n < stats.BoxRows {
		panic(fmt.Sprintf("dataset: WithRowStep(%d): step must be >= %d", n, stats.BoxRows))
	}
	return func(o *options) { o.rowStep = n }
}

func gatherOptions(opts []Option) options {
	o := options{bins: stats.DefaultBins, rowStep: DefaultRowStep}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
