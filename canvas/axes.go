// SPDX-License-Identifier: MIT

package canvas

import "fmt"

const (
	tickEvery      = 5
	axisTick       = '+'
	axisHorizontal = '-'
	axisVertical   = '|'
)

// DrawAxes draws the x axis along the row of y=0 and the y axis along the
// column of x=0.
//
// When zero lies outside an interval the axis is pinned to the nearest edge:
// column 0 for an all-positive x range, the last column for an all-negative
// one; the bottom row for an all-positive y range, the top row for an
// all-negative one. Both lines are dashed with a '+' every fifth cell,
// counted from the other axis, and the intersection is always '+'.
//
// Returns ErrOutOfRange when either interval is unset.
//
// Complexity: O(W + H).
func (c *Canvas) DrawAxes() error {
	col, err := c.yAxisColumn()
	if err != nil {
		return err
	}
	row, err := c.xAxisRow()
	if err != nil {
		return err
	}

	for j := 0; j < c.width; j++ {
		v := byte(axisHorizontal)
		if (j-col)%tickEvery == 0 {
			v = axisTick
		}
		c.cells[row][j] = v
	}
	for i := 0; i < c.height; i++ {
		v := byte(axisVertical)
		if (i-row)%tickEvery == 0 {
			v = axisTick
		}
		c.cells[i][col] = v
	}

	return c.SetCell(row, col, axisTick)
}

func (c *Canvas) yAxisColumn() (int, error) {
	if !c.xRange.Valid() {
		return 0, mapRangeUnset("x")
	}
	if col, err := MapToCell(0, c.xRange.Min, c.xRange.Max, c.width); err == nil {
		return col, nil
	}
	if c.xRange.Max < 0 {
		return c.width - 1, nil
	}
	return 0, nil
}

func (c *Canvas) xAxisRow() (int, error) {
	if !c.yRange.Valid() {
		return 0, mapRangeUnset("y")
	}
	// Flip like DrawValue so the axis runs through the row of y=0 points.
	if offset, err := MapToCell(0, c.yRange.Min, c.yRange.Max, c.height); err == nil {
		return min(c.height-offset, c.height-1), nil
	}
	if c.yRange.Max < 0 {
		return 0, nil
	}
	return c.height - 1, nil
}

func mapRangeUnset(axis string) error {
	return fmt.Errorf("%w: %s range not set", ErrOutOfRange, axis)
}
