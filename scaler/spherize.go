// SPDX-License-Identifier: MIT

package scaler

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// whitenParams is the immutable fitted state of the spherize model: the
// learned column means (all zeros when centering is off) and the c×c
// whitening matrix applied on the right.
type whitenParams struct {
	mean []float64
	w    *mat.Dense
}

// spherizeScaler implements ZCA / ZCA-cor whitening. Fit eigendecomposes
// the covariance (resp. correlation) matrix of the fitting rows, floors
// the eigenvalues by ε and builds W = V·diag(1/√(Λ+ε))·Vᵀ; for ZCA-cor the
// result is pre-scaled by the inverse column standard deviations. The
// transform (X−μ)·W yields decorrelated, unit-variance columns.
type spherizeScaler struct {
	cfg    config
	params *whitenParams
}

// Fit learns the whitening matrix from the rows of X. At least two rows
// are required for the covariance estimate. Each call replaces the fitted
// state with a new value.
//
// Errors: ErrEmptyFit, ErrEigenFailed.
func (s *spherizeScaler) Fit(X mat.Matrix) error {
	r, c, err := checkFitInput(X)
	if err != nil {
		return err
	}
	if r < 2 {
		return fmt.Errorf("spherize needs at least 2 rows, got %d: %w", r, ErrEmptyFit)
	}

	// Center about the column means, or about zero when centering is off.
	mean := make([]float64, c)
	if s.cfg.center {
		col := make([]float64, r)
		for j := 0; j < c; j++ {
			mat.Col(col, j, X)
			mean[j] = floats.Sum(col) / float64(r)
		}
	}
	Xc := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			Xc.Set(i, j, X.At(i, j)-mean[j])
		}
	}

	// Sample second-moment matrix S = Xcᵀ·Xc/(r−1).
	var g mat.Dense
	g.Mul(Xc.T(), Xc)
	g.Scale(1/float64(r-1), &g)

	sym := mat.NewSymDense(c, nil)
	invSD := make([]float64, c)
	switch s.cfg.whiten {
	case ZCACor:
		// Correlation matrix R = D⁻¹·S·D⁻¹ with D = diag(σ). Degenerate
		// columns (σ = 0) become zero rows/columns; the eigenvalue floor
		// absorbs them.
		for j := 0; j < c; j++ {
			if sd := math.Sqrt(g.At(j, j)); sd > 0 {
				invSD[j] = 1 / sd
			}
		}
		for i := 0; i < c; i++ {
			for j := i; j < c; j++ {
				sym.SetSym(i, j, g.At(i, j)*invSD[i]*invSD[j])
			}
		}
	default:
		for i := 0; i < c; i++ {
			for j := i; j < c; j++ {
				sym.SetSym(i, j, g.At(i, j))
			}
		}
	}

	// Symmetric eigendecomposition; gonum returns eigenvalues in ascending
	// order, so repeated fits on identical data are bit-reproducible.
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return ErrEigenFailed
	}
	vals := eig.Values(nil)
	var V mat.Dense
	eig.VectorsTo(&V)

	// W = V·diag(1/√(Λ+ε))·Vᵀ. Tiny negative eigenvalues from floating
	// point are clamped to zero before the floor.
	invRoot := make([]float64, c)
	for j, l := range vals {
		if l < 0 {
			l = 0
		}
		invRoot[j] = 1 / math.Sqrt(l+s.cfg.epsilon)
	}
	var VD, W mat.Dense
	VD.Mul(&V, mat.NewDiagDense(c, invRoot))
	W.Mul(&VD, V.T())

	if s.cfg.whiten == ZCACor {
		// Fold the column standardization into W so the transform stays a
		// single (X−μ)·W product.
		var DW mat.Dense
		DW.Mul(mat.NewDiagDense(c, invSD), &W)
		W.CloneFrom(&DW)
	}

	s.params = &whitenParams{mean: mean, w: &W}
	return nil
}

// Transform applies the fitted whitening, (X−μ)·W, to every row of X.
//
// Errors: ErrNotFitted, ErrShapeMismatch.
func (s *spherizeScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if s.params == nil {
		return nil, ErrNotFitted
	}
	r, c := X.Dims()
	if c != len(s.params.mean) {
		return nil, fmt.Errorf("got %d columns, fitted %d: %w", c, len(s.params.mean), ErrShapeMismatch)
	}
	if r == 0 {
		return &mat.Dense{}, nil
	}
	Xc := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			Xc.Set(i, j, X.At(i, j)-s.params.mean[j])
		}
	}
	out := mat.NewDense(r, c, nil)
	out.Mul(Xc, s.params.w)
	return out, nil
}
