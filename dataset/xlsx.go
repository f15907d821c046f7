// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// FromXLSX reads the same table layout as FromCSV from one worksheet of an
// XLSX workbook; sheet "" selects the active sheet. Cells are read raw, so
// number formats do not alter values.
func FromXLSX(r io.Reader, sheet string) (*DataSet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("dataset: read sheet %q: %w", sheet, err)
	}

	t := newTable()
	for i, row := range rows {
		if err := t.add(i+1, row); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}

	return t.result(fmt.Sprintf("sheet %q", sheet))
}
