// SPDX-License-Identifier: MIT

package canvas

import "errors"

// Sentinel errors. Returned errors wrap them with the offending coordinates
// and bounds; match with errors.Is.
var (
	// ErrOutOfRange indicates a write or a coordinate lookup outside the grid
	// or outside the current axis interval.
	ErrOutOfRange = errors.New("canvas: out of range")

	// ErrNoData indicates a range computation over zero points.
	ErrNoData = errors.New("canvas: no data")
)
