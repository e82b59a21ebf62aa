// SPDX-License-Identifier: MIT
// Package scaler: sentinel error set. All variants return these sentinels
// and tests check them via errors.Is. No variant panics on user input.

package scaler

import "errors"

var (
	// ErrUnknownMethod is returned by ParseMethod/New for a method name
	// outside the four recognized scaling models.
	ErrUnknownMethod = errors.New("scaler: unknown method")

	// ErrUnknownWhitening is returned for a spherize whitening name other
	// than "ZCA" or "ZCA-cor".
	ErrUnknownWhitening = errors.New("scaler: unknown whitening method")

	// ErrEmptyFit is returned when Fit is called on an empty row subset
	// (or, for Spherize, fewer rows than the covariance estimate needs).
	ErrEmptyFit = errors.New("scaler: empty fitting subset")

	// ErrShapeMismatch is returned when Transform receives a matrix whose
	// column count differs from the one seen at Fit time.
	ErrShapeMismatch = errors.New("scaler: feature width differs from fit")

	// ErrNotFitted is returned when Transform is called before Fit.
	ErrNotFitted = errors.New("scaler: transform before fit")

	// ErrEigenFailed is returned when the spherize eigendecomposition does
	// not converge.
	ErrEigenFailed = errors.New("scaler: eigendecomposition failed")
)
