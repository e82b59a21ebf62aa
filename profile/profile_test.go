package profile_test

import (
	"testing"

	"github.com/katalvlaran/cytonorm/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTable builds a 4-row table with one metadata and two feature
// columns.
func sampleTable(t *testing.T) *profile.Table {
	t.Helper()
	tab, err := profile.New(
		[]string{"Metadata_plate", "x", "y"},
		[][]any{
			{"a", 1.0, 10.0},
			{"a", 2.0, 20.0},
			{"b", 3.0, 30.0},
			{"b", 4.0, 40.0},
		},
	)
	require.NoError(t, err)
	return tab
}

// TestNew_AssignsSequentialIDs verifies row identifiers are the original
// indices.
func TestNew_AssignsSequentialIDs(t *testing.T) {
	tab := sampleTable(t)
	assert.Equal(t, []int{0, 1, 2, 3}, tab.RowIDs())
	assert.Equal(t, 4, tab.NumRows())
	assert.Equal(t, 3, tab.NumCols())
	assert.Equal(t, []string{"Metadata_plate", "x", "y"}, tab.Columns())
}

// TestNew_RaggedRow verifies a short row is rejected.
func TestNew_RaggedRow(t *testing.T) {
	_, err := profile.New([]string{"a", "b"}, [][]any{{1.0}})
	assert.ErrorIs(t, err, profile.ErrRagged)
}

// TestFromColumns_Validation covers the constructor error set.
func TestFromColumns_Validation(t *testing.T) {
	_, err := profile.FromColumns(nil, nil, nil)
	assert.ErrorIs(t, err, profile.ErrNoColumns)

	_, err = profile.FromColumns([]string{"a", "a"}, [][]any{{1.0}, {2.0}}, nil)
	assert.ErrorIs(t, err, profile.ErrDuplicateColumn)

	_, err = profile.FromColumns([]string{"a", "b"}, [][]any{{1.0}, {2.0, 3.0}}, nil)
	assert.ErrorIs(t, err, profile.ErrRagged)

	_, err = profile.FromColumns([]string{"a"}, [][]any{{1.0, 2.0}}, []int{7})
	assert.ErrorIs(t, err, profile.ErrRagged)
}

// TestTable_CellAndColumn verifies positional access and the unknown-column
// and out-of-range errors.
func TestTable_CellAndColumn(t *testing.T) {
	tab := sampleTable(t)

	v, err := tab.Cell(2, "Metadata_plate")
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	col, err := tab.Column("x")
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0, 3.0, 4.0}, col)

	_, err = tab.Cell(0, "nope")
	assert.ErrorIs(t, err, profile.ErrUnknownColumn)
	_, err = tab.Cell(9, "x")
	assert.ErrorIs(t, err, profile.ErrRowOutOfRange)
}

// TestTable_Float verifies the numeric view and its non-numeric guard.
func TestTable_Float(t *testing.T) {
	tab := sampleTable(t)

	xs, err := tab.Float("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, xs)

	_, err = tab.Float("Metadata_plate")
	assert.ErrorIs(t, err, profile.ErrNonNumericCell)
}

// TestTable_Matrix verifies the dense view honors the requested column
// order and rejects metadata cells.
func TestTable_Matrix(t *testing.T) {
	tab := sampleTable(t)

	X, err := tab.Matrix([]string{"y", "x"})
	require.NoError(t, err)
	r, c := X.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 30.0, X.At(2, 0))
	assert.Equal(t, 3.0, X.At(2, 1))

	_, err = tab.Matrix([]string{"Metadata_plate"})
	assert.ErrorIs(t, err, profile.ErrNonNumericCell)

	_, err = tab.Matrix(nil)
	assert.ErrorIs(t, err, profile.ErrEmptyMatrix)
}

// TestSubset_PreservesIDs verifies subsetting keeps the original
// identifiers and requested order, and leaves the source untouched.
func TestSubset_PreservesIDs(t *testing.T) {
	tab := sampleTable(t)

	sub, err := tab.Subset([]int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, sub.RowIDs())
	xs, err := sub.Float("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 2}, xs)
	assert.Equal(t, 4, tab.NumRows())

	_, err = tab.Subset([]int{42})
	assert.ErrorIs(t, err, profile.ErrUnknownRowID)
}

// TestSubset_Empty verifies the degenerate zero-row subset is valid.
func TestSubset_Empty(t *testing.T) {
	tab := sampleTable(t)
	sub, err := tab.Subset(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, sub.NumRows())
	assert.Equal(t, 3, sub.NumCols())
}
