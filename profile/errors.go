// SPDX-License-Identifier: MIT

// Package profile: sentinel error set. All Table operations return these
// sentinels (possibly wrapped with context via fmt.Errorf("...: %w", ...));
// callers match with errors.Is. No operation panics on user input.

package profile

import "errors"

var (
	// ErrNoColumns is returned when a Table is constructed with zero columns.
	ErrNoColumns = errors.New("profile: table has no columns")

	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("profile: duplicate column name")

	// ErrRagged is returned when column lengths (or row widths) disagree.
	ErrRagged = errors.New("profile: ragged table")

	// ErrUnknownColumn is returned when a referenced column does not exist.
	ErrUnknownColumn = errors.New("profile: unknown column")

	// ErrUnknownRowID is returned when a subset references a row identifier
	// that is not present in the table.
	ErrUnknownRowID = errors.New("profile: unknown row id")

	// ErrRowOutOfRange is returned for a positional row index outside [0, NumRows).
	ErrRowOutOfRange = errors.New("profile: row index out of range")

	// ErrNonNumericCell is returned when a feature-matrix view hits a cell
	// that is not a float64.
	ErrNonNumericCell = errors.New("profile: non-numeric cell in feature column")

	// ErrEmptyMatrix is returned when a matrix view would have zero rows
	// or zero columns.
	ErrEmptyMatrix = errors.New("profile: empty matrix view")

	// ErrEmptyHeader is returned when a CSV source has no header record.
	ErrEmptyHeader = errors.New("profile: empty or headerless CSV input")
)
