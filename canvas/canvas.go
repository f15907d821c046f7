// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"io"
	"strings"
)

// Canvas is a Height×Width grid of byte cells with one continuous interval
// per axis. Row 0 is the top row.
type Canvas struct {
	cells  [][]byte
	height int
	width  int
	margin float64
	xRange Interval
	yRange Interval
}

// New builds a blank canvas with unset axis intervals.
//
// Example:
//
//	c := canvas.New(canvas.WithSize(10, 40))
//	c.SetXRange(0, 1)
//	c.SetYRange(0, 1)
//	_ = c.DrawValue(0.5, 0.5, '*')
//	fmt.Print(c)
func New(opts ...Option) *Canvas {
	o := gatherOptions(opts)
	c := &Canvas{
		height: o.height,
		width:  o.width,
		margin: o.margin,
	}
	c.cells = make([][]byte, c.height)
	for i := range c.cells {
		c.cells[i] = make([]byte, c.width)
	}
	c.Clear()

	return c
}

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Margin returns the configured margin fraction.
func (c *Canvas) Margin() float64 { return c.margin }

// XRange returns the current x interval; the zero Interval when unset.
func (c *Canvas) XRange() Interval { return c.xRange }

// YRange returns the current y interval; the zero Interval when unset.
func (c *Canvas) YRange() Interval { return c.yRange }

// Clear blanks every cell. Size and axis intervals are kept.
func (c *Canvas) Clear() {
	for _, row := range c.cells {
		for j := range row {
			row[j] = Blank
		}
	}
}

// SetXRange stores [min, max] padded by Margin·(max-min) and then by one
// cell width on each side. Panics unless min < max.
func (c *Canvas) SetXRange(min, max float64) {
	mustBounds("SetXRange", min, max)
	lo, hi := c.pad(min, max)
	cell := (hi - lo) / float64(c.width)
	c.xRange = Interval{Min: lo - cell, Max: hi + cell}
}

// SetYRange stores [min, max] padded by Margin·(max-min), with two extra
// cell heights below the data and none above. Panics unless min < max.
func (c *Canvas) SetYRange(min, max float64) {
	mustBounds("SetYRange", min, max)
	lo, hi := c.pad(min, max)
	cell := (hi - lo) / float64(c.height)
	c.yRange = Interval{Min: lo - 2*cell, Max: hi}
}

// FixXRange stores [min, max] as is. Panics unless min < max.
func (c *Canvas) FixXRange(min, max float64) {
	mustBounds("FixXRange", min, max)
	c.xRange = Interval{Min: min, Max: max}
}

// FixYRange stores [min, max] as is. Panics unless min < max.
func (c *Canvas) FixYRange(min, max float64) {
	mustBounds("FixYRange", min, max)
	c.yRange = Interval{Min: min, Max: max}
}

func (c *Canvas) pad(min, max float64) (float64, float64) {
	delta := (max - min) * c.margin
	return min - delta, max + delta
}

func mustBounds(op string, min, max float64) {
	if !validBounds(min, max) {
		panic(fmt.Sprintf("canvas: %s(%g, %g): min must be < max", op, min, max))
	}
}

// Cell returns the content of (row, col).
func (c *Canvas) Cell(row, col int) (byte, error) {
	if err := c.checkCell(row, col); err != nil {
		return 0, err
	}
	return c.cells[row][col], nil
}

// SetCell overwrites (row, col) with v.
// Returns ErrOutOfRange when the cell lies outside the grid.
func (c *Canvas) SetCell(row, col int, v byte) error {
	if err := c.checkCell(row, col); err != nil {
		return err
	}
	c.cells[row][col] = v

	return nil
}

func (c *Canvas) checkCell(row, col int) error {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return fmt.Errorf("%w: cell (%d, %d) outside %d×%d grid", ErrOutOfRange, row, col, c.height, c.width)
	}
	return nil
}

// Column maps x through the x interval onto a column index.
func (c *Canvas) Column(x float64) (int, error) {
	return mapAxis("x", x, c.xRange, c.width)
}

// DrawValue writes v at the cell of point (x, y). The row is
// Height - MapToCell(y, YRange, Height), so larger y lands nearer the top;
// y at the very bottom of the interval maps one row past the grid and fails.
//
// Complexity: O(1).
func (c *Canvas) DrawValue(x, y float64, v byte) error {
	offset, err := mapAxis("y", y, c.yRange, c.height)
	if err != nil {
		return err
	}
	col, err := c.Column(x)
	if err != nil {
		return err
	}

	return c.SetCell(c.height-offset, col, v)
}

func mapAxis(name string, v float64, r Interval, n int) (int, error) {
	if !r.Valid() {
		return 0, mapRangeUnset(name)
	}
	idx, err := MapToCell(v, r.Min, r.Max, n)
	if err != nil {
		return 0, fmt.Errorf("%s axis: %w", name, err)
	}
	return idx, nil
}

// Lines returns one string per row, top row first.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for i, row := range c.cells {
		lines[i] = string(row)
	}
	return lines
}

// String renders the grid, each row terminated by a newline.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))
	for _, row := range c.cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the String form of the grid to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}
