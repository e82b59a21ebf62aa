// SPDX-License-Identifier: MIT

package profile

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Table is an immutable, column-ordered profile table. Feature cells are
// float64; metadata cells are arbitrary scalars (float64 or string). Each
// row carries a stable identifier: its index in the table the data was
// originally loaded into. Identifiers are preserved by Subset, so a value
// fitted on a subset can always be realigned with the full table.
type Table struct {
	names []string
	index map[string]int // column name → position in names/cols
	cols  [][]any        // column-major storage, all equal length
	ids   []int          // per-row stable identifier
}

// New builds a Table from a header and row-major data. Row identifiers are
// assigned 0..len(rows)-1.
//
// Errors: ErrNoColumns, ErrDuplicateColumn, ErrRagged.
func New(names []string, rows [][]any) (*Table, error) {
	cols := make([][]any, len(names))
	for j := range cols {
		cols[j] = make([]any, len(rows))
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), len(names), ErrRagged)
		}
		for j, v := range row {
			cols[j][i] = v
		}
	}
	return FromColumns(names, cols, nil)
}

// FromColumns builds a Table from column-major data. If ids is nil, row
// identifiers are assigned 0..n-1; otherwise ids must be exactly one per
// row and is copied as-is (used by normalize/ to preserve the identifiers
// of a source table).
//
// Errors: ErrNoColumns, ErrDuplicateColumn, ErrRagged.
func FromColumns(names []string, cols [][]any, ids []int) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	if len(cols) != len(names) {
		return nil, fmt.Errorf("%d names, %d columns: %w", len(names), len(cols), ErrRagged)
	}
	n := len(cols[0])
	index := make(map[string]int, len(names))
	for j, name := range names {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateColumn)
		}
		index[name] = j
		if len(cols[j]) != n {
			return nil, fmt.Errorf("column %q has %d cells, want %d: %w", name, len(cols[j]), n, ErrRagged)
		}
	}
	if ids == nil {
		ids = make([]int, n)
		for i := range ids {
			ids[i] = i
		}
	} else {
		if len(ids) != n {
			return nil, fmt.Errorf("%d ids for %d rows: %w", len(ids), n, ErrRagged)
		}
		ids = append([]int(nil), ids...)
	}

	t := &Table{
		names: append([]string(nil), names...),
		index: index,
		cols:  make([][]any, len(cols)),
		ids:   ids,
	}
	for j := range cols {
		t.cols[j] = append([]any(nil), cols[j]...)
	}
	return t, nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.ids) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.names) }

// Columns returns the column names in table order. The slice is a copy.
func (t *Table) Columns() []string { return append([]string(nil), t.names...) }

// HasColumn reports whether a column named name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// RowIDs returns the stable row identifiers in row order. The slice is a copy.
func (t *Table) RowIDs() []int { return append([]int(nil), t.ids...) }

// Column returns a copy of the named column's cells in row order.
//
// Errors: ErrUnknownColumn.
func (t *Table) Column(name string) ([]any, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}
	return append([]any(nil), t.cols[j]...), nil
}

// Cell returns the cell at positional row i of the named column.
//
// Errors: ErrUnknownColumn, ErrRowOutOfRange.
func (t *Table) Cell(i int, name string) (any, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}
	if i < 0 || i >= len(t.ids) {
		return nil, fmt.Errorf("row %d of %d: %w", i, len(t.ids), ErrRowOutOfRange)
	}
	return t.cols[j][i], nil
}

// Float returns the named column as float64 values.
//
// Errors: ErrUnknownColumn, ErrNonNumericCell.
func (t *Table) Float(name string) ([]float64, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}
	out := make([]float64, len(t.cols[j]))
	for i, v := range t.cols[j] {
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("column %q row %d (%v): %w", name, i, v, ErrNonNumericCell)
		}
		out[i] = f
	}
	return out, nil
}

// Matrix assembles the named columns into a rows×len(names) dense matrix,
// column order as given. Every referenced cell must be numeric. A table
// with zero rows (or an empty name list) cannot be viewed as a matrix.
//
// Errors: ErrEmptyMatrix, ErrUnknownColumn, ErrNonNumericCell.
func (t *Table) Matrix(names []string) (*mat.Dense, error) {
	n := len(t.ids)
	if n == 0 || len(names) == 0 {
		return nil, fmt.Errorf("%dx%d view: %w", n, len(names), ErrEmptyMatrix)
	}
	X := mat.NewDense(n, len(names), nil)
	for k, name := range names {
		col, err := t.Float(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			X.Set(i, k, col[i])
		}
	}
	return X, nil
}

// Subset returns a new Table holding the rows with the given identifiers,
// in the given order. Identifiers are carried over unchanged.
//
// Errors: ErrUnknownRowID.
func (t *Table) Subset(rowIDs []int) (*Table, error) {
	pos := make(map[int]int, len(t.ids))
	for i, id := range t.ids {
		pos[id] = i
	}
	cols := make([][]any, len(t.cols))
	for j := range cols {
		cols[j] = make([]any, len(rowIDs))
	}
	ids := make([]int, len(rowIDs))
	for k, id := range rowIDs {
		i, ok := pos[id]
		if !ok {
			return nil, fmt.Errorf("id %d: %w", id, ErrUnknownRowID)
		}
		for j := range t.cols {
			cols[j][k] = t.cols[j][i]
		}
		ids[k] = id
	}
	return FromColumns(t.names, cols, ids)
}
