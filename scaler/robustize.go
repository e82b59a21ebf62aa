// SPDX-License-Identifier: MIT

package scaler

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// normalConsistency rescales the median absolute deviation so it estimates
// σ under a normal distribution (1/Φ⁻¹(0.75)).
const normalConsistency = 1.4826

// madFloor bounds the MADRobustize denominator away from zero so constant
// and near-constant columns stay finite after scaling.
const madFloor = 1e-6

// robustParams is the immutable fitted state of the median-based models.
type robustParams struct {
	median []float64
	scale  []float64
}

// robustScaler implements (x−median)/IQR. Quartiles use linear
// interpolation between order statistics. A zero IQR is kept as-is:
// transforming that column yields ±Inf/NaN by policy.
type robustScaler struct {
	params *robustParams
}

// Fit computes per-column median and interquartile range over the rows of X.
//
// Errors: ErrEmptyFit.
func (s *robustScaler) Fit(X mat.Matrix) error {
	r, c, err := checkFitInput(X)
	if err != nil {
		return err
	}
	p := &robustParams{median: make([]float64, c), scale: make([]float64, c)}
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		sort.Float64s(col)
		p.median[j] = quantile(col, 0.5)
		p.scale[j] = quantile(col, 0.75) - quantile(col, 0.25)
	}
	s.params = p
	return nil
}

// Transform applies the fitted (x−median)/IQR to every row of X.
//
// Errors: ErrNotFitted, ErrShapeMismatch.
func (s *robustScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if s.params == nil {
		return nil, ErrNotFitted
	}
	return shiftScale(X, s.params.median, s.params.scale)
}

// madScaler implements (x−median)/max(1.4826·MAD, madFloor). This is the
// one variant that clamps its denominator: flat features are routine in
// profiling data and must not poison the whole table with non-finite
// values.
type madScaler struct {
	params *robustParams
}

// Fit computes per-column median and floored, normality-consistent MAD.
//
// Errors: ErrEmptyFit.
func (s *madScaler) Fit(X mat.Matrix) error {
	r, c, err := checkFitInput(X)
	if err != nil {
		return err
	}
	p := &robustParams{median: make([]float64, c), scale: make([]float64, c)}
	col := make([]float64, r)
	dev := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		sort.Float64s(col)
		med := quantile(col, 0.5)
		for i, v := range col {
			dev[i] = math.Abs(v - med)
		}
		sort.Float64s(dev)
		p.median[j] = med
		p.scale[j] = math.Max(normalConsistency*quantile(dev, 0.5), madFloor)
	}
	s.params = p
	return nil
}

// Transform applies the fitted (x−median)/max(1.4826·MAD, ε) to every row.
//
// Errors: ErrNotFitted, ErrShapeMismatch.
func (s *madScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if s.params == nil {
		return nil, ErrNotFitted
	}
	return shiftScale(X, s.params.median, s.params.scale)
}

// quantile evaluates the p-quantile of sorted data by linear interpolation
// between order statistics at fractional index (n−1)·p — the convention
// the profiling pipelines this library replaces rely on.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
