// SPDX-License-Identifier: MIT

// Package stats holds the statistical transforms behind the box plot, CDF
// and histogram plot kinds, each able to draw itself into a canvas.Canvas.
//
//   - Quantiles: five-number summary with Tukey fences (q2 ± 1.5·IQR) and
//     the outliers beyond them.
//   - ECDF: empirical cumulative distribution as a left-continuous step
//     function.
//   - Histogram: equal-width bins over the sample span, the maximum inflated
//     by 0.1% so it falls strictly inside the last bin.
//
// NaN marks a missing value and is dropped before anything is computed.
//
// Drawing never sets canvas ranges except where the plot kind dictates it
// (see package dataset); a canvas whose x range is unset makes DrawInto
// fail with canvas.ErrOutOfRange.
package stats
