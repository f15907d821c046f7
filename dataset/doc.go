// SPDX-License-Identifier: MIT

// Package dataset stores labelled point series and renders them onto a
// canvas.Canvas as one of four plot kinds.
//
// A DataSet maps a label to an ordered list of points (plotter.XYs).
// Series are always visited in lexicographic label order, so when two
// series write the same cell the later label wins, deterministically.
//
// Plot kinds form a closed set, PlotKind, each backed by its own Renderer:
//
//   - Point: bounding box of all finite points sets both axes, axes are
//     drawn, then every point is marked with the first byte of its label.
//   - Boxplot: one three-row box plot per series, stacked every RowStep
//     rows. The caller presets the x range.
//   - CDF: y range fixed to [-0.1, 1.1], axes drawn, one empirical CDF per
//     series. The caller presets the x range.
//   - Histogram: one histogram per series, x range set to the union of all
//     bin spans and y range to [-maxCount/20, maxCount].
//
// Ingestion reads the reference table layout from CSV (FromCSV) or from an
// XLSX worksheet (FromXLSX):
//
//	    , A , B , "C"
//	-1  , 0 , 1 , 3
//	-5  , 1 , -2, 4
//
// The first header cell is a placeholder for the row-index column. Each
// row contributes the point (index, value) to the series of every column.
package dataset
