// SPDX-License-Identifier: MIT

package scaler

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// momentParams is the immutable fitted state of the standardize model:
// one mean and one scale per feature column.
type momentParams struct {
	mean  []float64
	scale []float64
}

// standardScaler implements (x−μ)/σ with population σ. A zero σ is kept
// as-is: transforming that column yields ±Inf/NaN by policy.
type standardScaler struct {
	params *momentParams
}

// Fit computes per-column mean and population standard deviation over the
// rows of X. Each call replaces the fitted state with a new value.
//
// Errors: ErrEmptyFit.
func (s *standardScaler) Fit(X mat.Matrix) error {
	r, c, err := checkFitInput(X)
	if err != nil {
		return err
	}
	p := &momentParams{mean: make([]float64, c), scale: make([]float64, c)}
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		p.mean[j] = stat.Mean(col, nil)
		p.scale[j] = stat.PopStdDev(col, nil)
	}
	s.params = p
	return nil
}

// Transform applies the fitted (x−μ)/σ to every row of X.
//
// Errors: ErrNotFitted, ErrShapeMismatch.
func (s *standardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if s.params == nil {
		return nil, ErrNotFitted
	}
	return shiftScale(X, s.params.mean, s.params.scale)
}
