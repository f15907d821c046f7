// SPDX-License-Identifier: MIT

package dataset

import "errors"

// Ingestion and configuration errors. Drawing reports canvas.ErrNoData and
// canvas.ErrOutOfRange instead.
var (
	// ErrNoData indicates an input without a header row.
	ErrNoData = errors.New("dataset: no data")

	// ErrInvalidData indicates a field that is not a number. The wrapped
	// chain also carries the *strconv.NumError.
	ErrInvalidData = errors.New("dataset: invalid data")

	// ErrUnknownKind indicates a plot kind name outside the known set.
	ErrUnknownKind = errors.New("dataset: unknown plot kind")
)
