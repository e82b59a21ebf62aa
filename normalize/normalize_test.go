package normalize_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/cytonorm/features"
	"github.com/katalvlaran/cytonorm/normalize"
	"github.com/katalvlaran/cytonorm/profile"
	"github.com/katalvlaran/cytonorm/query"
	"github.com/katalvlaran/cytonorm/scaler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plateTable is the canonical two-plate, eight-well fixture: four control
// and four drug wells with four measured features.
func plateTable(t *testing.T) *profile.Table {
	t.Helper()
	tab, err := profile.New(
		[]string{"Metadata_plate", "Metadata_treatment", "x", "y", "z", "zz"},
		[][]any{
			{"a", "drug", 1.0, 3.0, 1.0, 14.0},
			{"a", "drug", 2.0, 1.0, 8.0, 46.0},
			{"a", "control", 8.0, 7.0, 2.0, 1.0},
			{"a", "control", 2.0, 4.0, 5.0, 6.0},
			{"b", "drug", 5.0, 5.0, 6.0, 30.0},
			{"b", "drug", 5.0, 9.0, 22.0, 100.0},
			{"b", "control", 5.0, 6.0, 2.0, 2.0},
			{"b", "control", 1.0, 1.0, 2.0, 2.0},
		},
	)
	require.NoError(t, err)
	return tab
}

var featureNames = []string{"x", "y", "z", "zz"}

// assertFeatures compares the table's feature columns against expected
// values rounded to one decimal place (half-to-even, the rounding the
// reference outputs were produced with).
func assertFeatures(t *testing.T, tab *profile.Table, want map[string][]float64) {
	t.Helper()
	for name, expected := range want {
		got, err := tab.Float(name)
		require.NoError(t, err, name)
		require.Len(t, got, len(expected), name)
		for i, w := range expected {
			assert.InDelta(t, w, math.RoundToEven(got[i]*10)/10, 1e-9, "%s[%d]", name, i)
		}
	}
}

func baseOptions() normalize.Options {
	opts := normalize.DefaultOptions()
	opts.Features = features.Explicit(featureNames...)
	return opts
}

// TestNormalize_StandardizeAllSamples pins the documented z-scores for a
// fit over every row.
func TestNormalize_StandardizeAllSamples(t *testing.T) {
	out, err := normalize.Normalize(plateTable(t), baseOptions())
	require.NoError(t, err)

	assertFeatures(t, out, map[string][]float64{
		"x":  {-1.1, -0.7, 1.9, -0.7, 0.6, 0.6, 0.6, -1.1},
		"y":  {-0.6, -1.3, 0.9, -0.2, 0.2, 1.7, 0.6, -1.3},
		"z":  {-0.8, 0.3, -0.6, -0.2, 0.0, 2.5, -0.6, -0.6},
		"zz": {-0.3, 0.7, -0.8, -0.6, 0.2, 2.3, -0.7, -0.7},
	})
}

// TestNormalize_StandardizeControlSamples verifies fitting on the four
// control wells only while transforming all eight rows: drug rows land
// far outside the control distribution.
func TestNormalize_StandardizeControlSamples(t *testing.T) {
	opts := baseOptions()
	opts.Samples = "Metadata_treatment == 'control'"

	out, err := normalize.Normalize(plateTable(t), opts)
	require.NoError(t, err)

	assertFeatures(t, out, map[string][]float64{
		"x":  {-1.1, -0.7, 1.5, -0.7, 0.4, 0.4, 0.4, -1.1},
		"y":  {-0.7, -1.5, 1.1, -0.2, 0.2, 2.0, 0.7, -1.5},
		"z":  {-1.3, 4.0, -0.6, 1.7, 2.5, 14.8, -0.6, -0.6},
		"zz": {5.9, 22.5, -0.9, 1.7, 14.2, 50.6, -0.4, -0.4},
	})
}

// TestNormalize_RobustizeAllSamples pins the documented median/IQR scaling
// over every row.
func TestNormalize_RobustizeAllSamples(t *testing.T) {
	opts := baseOptions()
	opts.Method = "robustize"

	out, err := normalize.Normalize(plateTable(t), opts)
	require.NoError(t, err)

	assertFeatures(t, out, map[string][]float64{
		"x":  {-0.8, -0.5, 1.4, -0.5, 0.5, 0.5, 0.5, -0.8},
		"y":  {-0.4, -0.9, 0.7, -0.1, 0.1, 1.2, 0.4, -0.9},
		"z":  {-0.6, 1.0, -0.3, 0.3, 0.6, 4.1, -0.3, -0.3},
		"zz": {0.1, 1.1, -0.3, -0.1, 0.6, 2.8, -0.2, -0.2},
	})
}

// TestNormalize_RobustizeControlSamples pins the control-fit robustize
// outputs.
func TestNormalize_RobustizeControlSamples(t *testing.T) {
	opts := baseOptions()
	opts.Method = "robustize"
	opts.Samples = "Metadata_treatment == 'control'"

	out, err := normalize.Normalize(plateTable(t), opts)
	require.NoError(t, err)

	assertFeatures(t, out, map[string][]float64{
		"x":  {-0.6, -0.4, 1.1, -0.4, 0.4, 0.4, 0.4, -0.6},
		"y":  {-0.7, -1.3, 0.7, -0.3, 0.0, 1.3, 0.3, -1.3},
		"z":  {-1.3, 8.0, 0.0, 4.0, 5.3, 26.7, 0.0, 0.0},
		"zz": {9.6, 35.2, -0.8, 3.2, 22.4, 78.4, 0.0, 0.0},
	})
}

// TestNormalize_PreservesRowsAndMetadata verifies the core invariants for
// every method: identical row ids, byte-identical metadata, metadata-first
// column order.
func TestNormalize_PreservesRowsAndMetadata(t *testing.T) {
	tab := plateTable(t)
	for _, method := range []string{"standardize", "robustize", "mad_robustize", "spherize"} {
		opts := baseOptions()
		opts.Method = method

		out, err := normalize.Normalize(tab, opts)
		require.NoError(t, err, method)

		assert.Equal(t, tab.RowIDs(), out.RowIDs(), method)
		assert.Equal(t,
			[]string{"Metadata_plate", "Metadata_treatment", "x", "y", "z", "zz"},
			out.Columns(), method)
		for _, meta := range []string{"Metadata_plate", "Metadata_treatment"} {
			want, err := tab.Column(meta)
			require.NoError(t, err)
			got, err := out.Column(meta)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s/%s", method, meta)
		}
	}
}

// TestNormalize_AllEqualsAlwaysTruePredicate verifies the "all" sentinel
// and a predicate matching every row fit identical parameters.
func TestNormalize_AllEqualsAlwaysTruePredicate(t *testing.T) {
	tab := plateTable(t)

	all, err := normalize.Normalize(tab, baseOptions())
	require.NoError(t, err)

	opts := baseOptions()
	opts.Samples = "Metadata_treatment != 'nothing'"
	pred, err := normalize.Normalize(tab, opts)
	require.NoError(t, err)

	for _, name := range featureNames {
		a, err := all.Float(name)
		require.NoError(t, err)
		b, err := pred.Float(name)
		require.NoError(t, err)
		assert.Equal(t, a, b, name)
	}
}

// TestNormalize_MetaNone verifies the "none" metadata selection drops
// metadata from the output entirely.
func TestNormalize_MetaNone(t *testing.T) {
	opts := baseOptions()
	opts.MetaFeatures = features.None()

	out, err := normalize.Normalize(plateTable(t), opts)
	require.NoError(t, err)
	assert.Equal(t, featureNames, out.Columns())
}

// TestNormalize_SpherizeDecorrelates verifies whitening through the full
// orchestration: transformed features are pairwise decorrelated over the
// fitting rows.
func TestNormalize_SpherizeDecorrelates(t *testing.T) {
	for _, sm := range []string{"ZCA", "ZCA-cor"} {
		opts := baseOptions()
		opts.Method = "spherize"
		opts.SpherizeMethod = sm

		out, err := normalize.Normalize(plateTable(t), opts)
		require.NoError(t, err, sm)

		X, err := out.Matrix(featureNames)
		require.NoError(t, err)
		r, c := X.Dims()
		require.Equal(t, 8, r)

		// Pairwise sample covariance of the whitened output ≈ 0.
		means := make([]float64, c)
		for j := 0; j < c; j++ {
			for i := 0; i < r; i++ {
				means[j] += X.At(i, j)
			}
			means[j] /= float64(r)
		}
		for a := 0; a < c; a++ {
			for b := a + 1; b < c; b++ {
				cov := 0.0
				for i := 0; i < r; i++ {
					cov += (X.At(i, a) - means[a]) * (X.At(i, b) - means[b])
				}
				cov /= float64(r - 1)
				assert.InDelta(t, 0, cov, 1e-3, "%s cov(%d,%d)", sm, a, b)
			}
		}
	}
}

// TestNormalize_IgnoresSpherizeOptions verifies spherize-only options are
// consulted only when spherize is the chosen method: a zero-value or
// unrecognized whitening name must not fail the per-column methods.
func TestNormalize_IgnoresSpherizeOptions(t *testing.T) {
	tab := plateTable(t)
	for _, method := range []string{"standardize", "robustize", "mad_robustize"} {
		opts := baseOptions()
		opts.Method = method
		opts.SpherizeMethod = ""

		out, err := normalize.Normalize(tab, opts)
		require.NoError(t, err, method)
		assert.Equal(t, tab.NumRows(), out.NumRows(), method)

		opts.SpherizeMethod = "PCA"
		_, err = normalize.Normalize(tab, opts)
		assert.NoError(t, err, method)
	}
}

// TestNormalize_OutputFile verifies the optional persistence path writes a
// loadable CSV with the same shape.
func TestNormalize_OutputFile(t *testing.T) {
	opts := baseOptions()
	opts.OutputFile = filepath.Join(t.TempDir(), "normalized.csv.gz")
	opts.Output.Compression = profile.Gzip
	opts.Output.FloatFormat = "%.4f"

	out, err := normalize.Normalize(plateTable(t), opts)
	require.NoError(t, err)

	back, err := profile.Load(opts.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, out.Columns(), back.Columns())
	assert.Equal(t, out.NumRows(), back.NumRows())
}

// TestNormalize_Faults covers the orchestrator's error taxonomy.
func TestNormalize_Faults(t *testing.T) {
	tab := plateTable(t)

	opts := baseOptions()
	opts.Method = "zscore"
	_, err := normalize.Normalize(tab, opts)
	assert.ErrorIs(t, err, scaler.ErrUnknownMethod)

	opts = baseOptions()
	opts.Method = "spherize"
	opts.SpherizeMethod = "PCA"
	_, err = normalize.Normalize(tab, opts)
	assert.ErrorIs(t, err, scaler.ErrUnknownWhitening)

	opts = baseOptions()
	opts.Samples = "Metadata_treatment == 'vehicle'"
	_, err = normalize.Normalize(tab, opts)
	assert.ErrorIs(t, err, scaler.ErrEmptyFit)

	opts = baseOptions()
	opts.Samples = "Metadata_missing == 'x'"
	_, err = normalize.Normalize(tab, opts)
	assert.ErrorIs(t, err, query.ErrUnknownColumn)

	opts = baseOptions()
	opts.MetaFeatures = features.Explicit("Metadata_plate", "x")
	_, err = normalize.Normalize(tab, opts)
	assert.ErrorIs(t, err, normalize.ErrOverlap)

	opts = baseOptions()
	opts.Features = features.Explicit("x", "missing")
	_, err = normalize.Normalize(tab, opts)
	assert.ErrorIs(t, err, features.ErrUnknownColumn)
}
