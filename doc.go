// Package qdplot is a quick-and-dirty plotting toolkit for the terminal:
// feed it a table of labelled series, get back a character grid.
//
// 🚀 What is qdplot?
//
//	A small, deterministic library plus CLI that brings together:
//		• Canvas: a fixed-size grid of byte cells with continuous axis ranges
//		• Statistics: quantiles with Tukey fences, empirical CDFs, histograms
//		• Data sets: labelled point series read from CSV or XLSX tables
//		• Plot kinds: point, boxplot, cdf, histogram
//
// ✨ Why choose qdplot?
//
//   - Deterministic: series are always drawn in label order
//   - Explicit errors: sentinels matched with errors.Is, panics only on misuse
//   - Small surface: one Draw call per plot, the grid is yours to print
//
// Under the hood, everything is organized under three packages and a command:
//
//	canvas/      Canvas, Interval, MapToCell, axes, ErrOutOfRange / ErrNoData
//	stats/       Quantiles, ECDF, Histogram, each drawable into a Canvas
//	dataset/     DataSet, PlotKind, Renderer per kind, FromCSV / FromXLSX
//	cmd/qdplot/  cobra CLI: qdplot --kind boxplot data.csv
//
// Quick ASCII example (two box plots, one column per unit):
//
//	    -------
//	|---|  |   ||
//	    -------
//
//	  ---
//	|-| |||
//	  ---
//
//	go install github.com/katalvlaran/qdplot/cmd/qdplot@latest
package qdplot
