// SPDX-License-Identifier: MIT

package normalize

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cytonorm/features"
	"github.com/katalvlaran/cytonorm/profile"
	"github.com/katalvlaran/cytonorm/query"
	"github.com/katalvlaran/cytonorm/scaler"
)

var (
	// ErrOverlap is returned when the resolved feature and metadata
	// partitions share a column.
	ErrOverlap = errors.New("normalize: feature and metadata columns overlap")

	// ErrRowMismatch is returned when the transformed feature block
	// disagrees with the source table on row count or feature width. It
	// guards an invariant violation and should not occur in correct use.
	ErrRowMismatch = errors.New("normalize: row identifier mismatch during merge")
)

// Normalize fits the scaling model named by opts.Method on the fitting
// subset selected by opts.Samples and applies it to every row of t,
// returning a new table: metadata columns first (byte-identical), then the
// transformed feature columns, with t's row order and identifiers
// preserved. When opts.OutputFile is set the result is also persisted.
//
// Errors: scaler.ErrUnknownMethod, scaler.ErrUnknownWhitening (spherize
// only), scaler.ErrEmptyFit, scaler.ErrShapeMismatch, features/query
// resolution errors, ErrOverlap, ErrRowMismatch, profile I/O errors.
func Normalize(t *profile.Table, opts Options) (*profile.Table, error) {
	// Fail fast on an unrecognized method before touching any data. The
	// spherize-only options are consulted, and can fail, only when
	// spherize is the chosen method; otherwise they are ignored.
	method, err := scaler.ParseMethod(opts.Method)
	if err != nil {
		return nil, err
	}
	var sopts []scaler.Option
	if method == scaler.Spherize {
		whiten, err := scaler.ParseWhitening(opts.SpherizeMethod)
		if err != nil {
			return nil, err
		}
		sopts = []scaler.Option{
			scaler.WithCenter(opts.SpherizeCenter),
			scaler.WithWhitening(whiten),
		}
	}

	// Resolve the column partition and check its disjointness contract.
	feats, err := opts.Features.ResolveFeatures(t)
	if err != nil {
		return nil, err
	}
	metas, err := opts.MetaFeatures.ResolveMetadata(t)
	if err != nil {
		return nil, err
	}
	if name, ok := features.Disjoint(metas, feats); !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrOverlap)
	}

	// Select the fitting rows. Zero matches is valid here; the scaler
	// rejects the empty fit below.
	fitIDs, err := query.Select(t, opts.Samples)
	if err != nil {
		return nil, err
	}
	if len(fitIDs) == 0 {
		return nil, fmt.Errorf("samples %q matched no rows: %w", opts.Samples, scaler.ErrEmptyFit)
	}
	sub, err := t.Subset(fitIDs)
	if err != nil {
		return nil, err
	}

	s, err := scaler.New(method, sopts...)
	if err != nil {
		return nil, err
	}

	// Fit on the subset's features only; transform every row's features.
	Xfit, err := sub.Matrix(feats)
	if err != nil {
		return nil, err
	}
	if err := s.Fit(Xfit); err != nil {
		return nil, err
	}
	Xall, err := t.Matrix(feats)
	if err != nil {
		return nil, err
	}
	Y, err := s.Transform(Xall)
	if err != nil {
		return nil, err
	}

	out, err := merge(t, metas, feats, Y)
	if err != nil {
		return nil, err
	}

	if opts.OutputFile != "" {
		if err := profile.Write(out, opts.OutputFile, opts.Output); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// merge recombines untouched metadata columns with the transformed feature
// block, metadata order first, preserving t's row identifiers.
func merge(t *profile.Table, metas, feats []string, Y *mat.Dense) (*profile.Table, error) {
	yr, yc := Y.Dims()
	if yr != t.NumRows() || yc != len(feats) {
		return nil, fmt.Errorf("feature block is %dx%d, want %dx%d: %w",
			yr, yc, t.NumRows(), len(feats), ErrRowMismatch)
	}

	names := make([]string, 0, len(metas)+len(feats))
	cols := make([][]any, 0, len(metas)+len(feats))
	for _, name := range metas {
		col, err := t.Column(name)
		if err != nil {
			return nil, fmt.Errorf("metadata column: %w", err)
		}
		names = append(names, name)
		cols = append(cols, col)
	}
	for j, name := range feats {
		col := make([]any, yr)
		for i := 0; i < yr; i++ {
			col[i] = Y.At(i, j)
		}
		names = append(names, name)
		cols = append(cols, col)
	}
	return profile.FromColumns(names, cols, t.RowIDs())
}
