// SPDX-License-Identifier: MIT

package scaler

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Method tags the closed set of scaling models.
type Method int

const (
	// Standardize scales each column to zero mean, unit population σ.
	Standardize Method = iota

	// Robustize scales each column by median and interquartile range.
	Robustize

	// MADRobustize scales each column by median and 1.4826·MAD with an
	// epsilon floor on the denominator.
	MADRobustize

	// Spherize whitens all columns jointly (ZCA or ZCA-cor).
	Spherize
)

// methodNames maps Method to its canonical configuration-surface name.
var methodNames = map[Method]string{
	Standardize:  "standardize",
	Robustize:    "robustize",
	MADRobustize: "mad_robustize",
	Spherize:     "spherize",
}

// String returns the canonical lower-case method name.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a case-insensitive method name to its tag.
//
// Errors: ErrUnknownMethod.
func ParseMethod(name string) (Method, error) {
	want := strings.ToLower(name)
	for m, s := range methodNames {
		if s == want {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
}

// Scaler is the fit/transform contract shared by all scaling models.
//
// Fit learns parameters from the rows of X only; Transform applies the
// most recently fitted parameters to any matrix with the same column
// count. Transform never mutates its input.
type Scaler interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (*mat.Dense, error)
}

// New instantiates the scaling model named by m. Options apply to the
// variants that understand them (currently Spherize); options irrelevant
// to the chosen method are ignored.
//
// Errors: ErrUnknownMethod.
func New(m Method, opts ...Option) (Scaler, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch m {
	case Standardize:
		return &standardScaler{}, nil
	case Robustize:
		return &robustScaler{}, nil
	case MADRobustize:
		return &madScaler{}, nil
	case Spherize:
		return &spherizeScaler{cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("%d: %w", int(m), ErrUnknownMethod)
	}
}

// FitTransform fits s on X and transforms the same X. Convenience for the
// common fit-on-everything case.
func FitTransform(s Scaler, X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// checkFitInput validates a fitting matrix: at least one row and column.
func checkFitInput(X mat.Matrix) (r, c int, err error) {
	r, c = X.Dims()
	if r == 0 || c == 0 {
		return 0, 0, ErrEmptyFit
	}
	return r, c, nil
}

// shiftScale applies (x−center)/scale column-wise, the shared transform
// kernel of the three per-column variants. Zero entries in scale are
// applied as-is: the division yields ±Inf or NaN and the caller's policy
// decides whether that may happen.
func shiftScale(X mat.Matrix, center, scale []float64) (*mat.Dense, error) {
	r, c := X.Dims()
	if c != len(center) {
		return nil, fmt.Errorf("got %d columns, fitted %d: %w", c, len(center), ErrShapeMismatch)
	}
	if r == 0 {
		return &mat.Dense{}, nil
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, (X.At(i, j)-center[j])/scale[j])
		}
	}
	return out, nil
}
