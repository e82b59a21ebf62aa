// SPDX-License-Identifier: MIT

package query

import "errors"

var (
	// ErrBadPredicate is returned when the predicate string does not parse.
	ErrBadPredicate = errors.New("query: malformed predicate")

	// ErrUnknownColumn is returned when the predicate references a column
	// absent from the table.
	ErrUnknownColumn = errors.New("query: unknown column")

	// ErrTypeMismatch is returned when an ordering operator (< <= > >=)
	// meets a non-numeric cell or literal.
	ErrTypeMismatch = errors.New("query: ordering comparison on non-numeric value")
)
