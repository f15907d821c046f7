// SPDX-License-Identifier: MIT

package dataset

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// DefaultMarker marks the points of a series with an empty label.
const DefaultMarker byte = '*'

// Series is one labelled point sequence as handed to a Renderer.
type Series struct {
	Label  string
	Points plotter.XYs
}

// Marker returns the byte drawn for the points of s: the first byte of its
// label, DefaultMarker when the label is empty.
func (s Series) Marker() byte {
	if s.Label == "" {
		return DefaultMarker
	}
	return s.Label[0]
}

// Values returns the finite y values of s in point order.
func (s Series) Values() plotter.Values {
	out := make(plotter.Values, 0, len(s.Points))
	for _, p := range s.Points {
		if finite(p.Y) {
			out = append(out, p.Y)
		}
	}
	return out
}

// Drawable returns the points of s whose coordinates are both finite.
func (s Series) Drawable() plotter.XYs {
	out := make(plotter.XYs, 0, len(s.Points))
	for _, p := range s.Points {
		if finite(p.X) && finite(p.Y) {
			out = append(out, p)
		}
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
