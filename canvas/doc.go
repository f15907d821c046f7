// SPDX-License-Identifier: MIT

// Package canvas is the character grid every qdplot plot is drawn into.
//
// What:
//
//   - Canvas is a fixed-size Height×Width matrix of single-byte cells,
//     blank (' ') when created or cleared.
//   - Each axis carries a continuous Interval; DrawValue maps a point (x, y)
//     through both intervals onto one cell, increasing y moving towards row 0.
//   - MapToCell is the pure continuous→discrete transform shared by all
//     renderers: round((n-1)/(max-min)·(x-min)), half away from zero.
//   - DrawAxes draws dashed x/y axes through zero (or along the nearest edge)
//     with a '+' tick every fifth cell and at their intersection.
//
// Ranges:
//
//   - SetXRange pads the data interval by Margin·span plus one cell width on
//     both sides.
//   - SetYRange pads by Margin·span and reserves two cell heights below the
//     data and none above. The asymmetry moves every plotted point and is
//     relied upon by the renderers.
//   - FixXRange / FixYRange store an interval verbatim.
//
// Options:
//
//   - WithSize(height, width): grid dimensions, default 25×80.
//   - WithMargin(f): fraction of the data span added on each side, default 0.
//
// Errors:
//
//   - ErrOutOfRange: a cell or a coordinate outside the grid or the current
//     axis interval, including an axis whose interval was never set.
//   - ErrNoData: a range computation was attempted over zero points.
//
// Preconditions such as min ≥ max passed to a range setter signal a
// programming error and panic.
//
// A Canvas is not safe for concurrent use; a renderer owns it for the
// duration of one draw call.
package canvas
