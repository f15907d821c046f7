// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/plot/plotter"
)

// table turns header + data records into a DataSet. Records are fed in
// input order; line numbers only decorate errors.
type table struct {
	labels []string
	header bool
	ds     *DataSet
}

func newTable() *table {
	return &table{ds: New()}
}

// cleanField strips every double quote and surrounding white space.
func cleanField(f string) string {
	return strings.TrimSpace(strings.ReplaceAll(f, `"`, ""))
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if cleanField(f) != "" {
			return false
		}
	}
	return true
}

// add consumes one record. The first non-blank record is the header, whose
// first cell is ignored. A data record yields (index, value) for each
// labelled column present; cells beyond the header are ignored.
func (t *table) add(line int, rec []string) error {
	if blankRecord(rec) {
		return nil
	}
	if !t.header {
		t.header = true
		if len(rec) > 1 {
			t.labels = make([]string, 0, len(rec)-1)
			for _, f := range rec[1:] {
				t.labels = append(t.labels, cleanField(f))
			}
		}
		return nil
	}

	x, err := parseField(line, 1, rec[0])
	if err != nil {
		return err
	}
	for i, label := range t.labels {
		if i+1 >= len(rec) {
			break
		}
		y, err := parseField(line, i+2, rec[i+1])
		if err != nil {
			return err
		}
		t.ds.addPoint(label, plotter.XY{X: x, Y: y})
	}

	return nil
}

func parseField(line, col int, f string) (float64, error) {
	v, err := strconv.ParseFloat(cleanField(f), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d, column %d: %w", ErrInvalidData, line, col, err)
	}
	return v, nil
}

// result returns the DataSet, or ErrNoData when no header was seen.
func (t *table) result(source string) (*DataSet, error) {
	if !t.header {
		return nil, fmt.Errorf("%w: %s has no header row", ErrNoData, source)
	}
	return t.ds, nil
}
