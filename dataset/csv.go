// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FromCSV reads a comma-separated table: a header row of labels whose
// first cell is ignored, then rows of a numeric index followed by one
// numeric value per label. Double quotes are stripped, fields trimmed and
// blank lines skipped. Rows may be shorter or longer than the header.
//
// Fields are split on every comma; quoting does not protect one.
//
// Fails with ErrNoData on input without a header row and with
// ErrInvalidData on a field that does not parse as a float.
func FromCSV(r io.Reader) (*DataSet, error) {
	sc := bufio.NewScanner(r)
	t := newTable()
	for line := 1; sc.Scan(); line++ {
		if err := t.add(line, strings.Split(sc.Text(), ",")); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading csv input: %w", ErrInvalidData, err)
	}

	return t.result("csv input")
}
