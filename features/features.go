// SPDX-License-Identifier: MIT

package features

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cytonorm/profile"
)

// Column-name prefixes recognized by the inference heuristic.
var (
	featurePrefixes = []string{"Cells_", "Cytoplasm_", "Nuclei_"}
	metadataPrefix  = "Metadata_"
)

var (
	// ErrUnknownColumn is returned when an explicit selection names a column
	// absent from the table.
	ErrUnknownColumn = errors.New("features: unknown column")

	// ErrDuplicate is returned when an explicit selection repeats a name.
	ErrDuplicate = errors.New("features: duplicate column in selection")

	// ErrNoFeatures is returned when inference finds no feature columns.
	ErrNoFeatures = errors.New("features: no feature columns recognized")
)

// kind discriminates the Selection sum type.
type kind int

const (
	kindExplicit kind = iota
	kindInfer
	kindNone
)

// Selection names a set of columns: an explicit ordered list, the "infer"
// sentinel, or the empty set. The zero value is Infer().
type Selection struct {
	k     kind
	names []string
}

// Explicit selects exactly the given columns, in the given order.
func Explicit(names ...string) Selection {
	return Selection{k: kindExplicit, names: append([]string(nil), names...)}
}

// Infer selects columns by the naming-convention heuristic.
func Infer() Selection { return Selection{k: kindInfer} }

// None selects no columns. Valid for metadata; resolving None as a feature
// set yields ErrNoFeatures.
func None() Selection { return Selection{k: kindNone} }

// IsInfer reports whether the selection is the inference sentinel.
func (s Selection) IsInfer() bool { return s.k == kindInfer }

// ResolveFeatures materializes the selection as a feature-column list.
//
// Errors: ErrUnknownColumn, ErrDuplicate, ErrNoFeatures.
func (s Selection) ResolveFeatures(t *profile.Table) ([]string, error) {
	switch s.k {
	case kindExplicit:
		return validate(t, s.names)
	case kindNone:
		return nil, ErrNoFeatures
	default:
		names := InferFeatures(t)
		if len(names) == 0 {
			return nil, ErrNoFeatures
		}
		return names, nil
	}
}

// ResolveMetadata materializes the selection as a metadata-column list.
// None resolves to the empty list; inference finding nothing is not an
// error (a table with no metadata is legal).
//
// Errors: ErrUnknownColumn, ErrDuplicate.
func (s Selection) ResolveMetadata(t *profile.Table) ([]string, error) {
	switch s.k {
	case kindExplicit:
		return validate(t, s.names)
	case kindNone:
		return nil, nil
	default:
		return InferMetadata(t), nil
	}
}

// InferFeatures returns the table's columns recognized as features by the
// naming convention, in table order.
func InferFeatures(t *profile.Table) []string {
	var out []string
	for _, name := range t.Columns() {
		for _, p := range featurePrefixes {
			if strings.HasPrefix(name, p) {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// InferMetadata returns the table's columns recognized as metadata by the
// naming convention, in table order.
func InferMetadata(t *profile.Table) []string {
	var out []string
	for _, name := range t.Columns() {
		if strings.HasPrefix(name, metadataPrefix) {
			out = append(out, name)
		}
	}
	return out
}

// Disjoint reports whether the two name lists share no column, returning
// the first offender otherwise.
func Disjoint(a, b []string) (string, bool) {
	seen := make(map[string]struct{}, len(a))
	for _, n := range a {
		seen[n] = struct{}{}
	}
	for _, n := range b {
		if _, hit := seen[n]; hit {
			return n, false
		}
	}
	return "", true
}

// validate checks that every explicit name exists exactly once.
func validate(t *profile.Table, names []string) ([]string, error) {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if !t.HasColumn(n) {
			return nil, fmt.Errorf("%q: %w", n, ErrUnknownColumn)
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("%q: %w", n, ErrDuplicate)
		}
		seen[n] = struct{}{}
	}
	return append([]string(nil), names...), nil
}
