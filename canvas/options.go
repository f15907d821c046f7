// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"math"
)

// Option configures a Canvas at construction. Invalid values panic.
type Option func(*options)

type options struct {
	height int
	width  int
	margin float64
}

func defaultOptions() options {
	return options{
		height: DefaultHeight,
		width:  DefaultWidth,
		margin: DefaultMargin,
	}
}

// WithSize sets the grid to height rows and width columns.
// Panics unless both are positive.
func WithSize(height, width int) Option {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("canvas: WithSize(%d, %d): dimensions must be > 0", height, width))
	}
	return func(o *options) {
		o.height = height
		o.width = width
	}
}

// WithMargin sets the fraction of the data span added on each side of an
// axis by SetXRange and SetYRange. Panics on a negative or non-finite value.
func WithMargin(f float64) Option {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("canvas: WithMargin(%g): margin must be finite and >= 0", f))
	}
	return func(o *options) {
		o.margin = f
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
