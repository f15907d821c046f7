// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/qdplot/dataset"
)

// writeWorkbook stores rows from A1 on sheet and returns the encoded file.
func writeWorkbook(t *testing.T, sheet string, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		idx, err := f.NewSheet(sheet)
		require.NoError(t, err)
		f.SetActiveSheet(idx)
	}
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

var refRows = [][]any{
	{nil, "A", "B", "C"},
	{-1, 0, 1, 3},
	{-5, 1, -2, 4},
}

// TestFromXLSX_Reference reads the reference table from the active sheet.
func TestFromXLSX_Reference(t *testing.T) {
	ds, err := dataset.FromXLSX(writeWorkbook(t, "Sheet1", refRows), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, ds.Labels())
	b, ok := ds.Series("B")
	require.True(t, ok)
	assert.Equal(t, plotter.XYs{{X: -1, Y: 1}, {X: -5, Y: -2}}, b)
}

// TestFromXLSX_NamedSheet selects a sheet by name and skips empty rows.
func TestFromXLSX_NamedSheet(t *testing.T) {
	rows := [][]any{
		{nil, "latency"},
		{},
		{0, 1.5},
		{1, 2.25},
	}
	buf := writeWorkbook(t, "runs", rows)
	ds, err := dataset.FromXLSX(buf, "runs")
	require.NoError(t, err)

	pts, ok := ds.Series("latency")
	require.True(t, ok)
	assert.Equal(t, plotter.XYs{{X: 0, Y: 1.5}, {X: 1, Y: 2.25}}, pts)
}

func TestFromXLSX_Errors(t *testing.T) {
	_, err := dataset.FromXLSX(writeWorkbook(t, "Sheet1", refRows), "missing")
	assert.Error(t, err)

	_, err = dataset.FromXLSX(writeWorkbook(t, "Sheet1", nil), "")
	assert.ErrorIs(t, err, dataset.ErrNoData)

	bad := [][]any{{nil, "A"}, {0, "oops"}}
	_, err = dataset.FromXLSX(writeWorkbook(t, "Sheet1", bad), "Sheet1")
	assert.ErrorIs(t, err, dataset.ErrInvalidData)

	_, err = dataset.FromXLSX(bytes.NewBufferString("not a workbook"), "")
	assert.Error(t, err)
}
