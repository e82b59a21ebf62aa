// SPDX-License-Identifier: MIT

package scaler

import (
	"fmt"
	"strings"
)

// Whitening selects the matrix the spherize model eigendecomposes.
type Whitening int

const (
	// ZCA whitens against the covariance matrix of the fitting rows.
	ZCA Whitening = iota

	// ZCACor whitens against the correlation matrix — covariance of the
	// column-standardized data — preserving correlation-based semantics.
	ZCACor
)

// String returns the canonical configuration-surface name.
func (w Whitening) String() string {
	if w == ZCACor {
		return "ZCA-cor"
	}
	return "ZCA"
}

// ParseWhitening resolves a case-insensitive whitening name ("ZCA",
// "ZCA-cor"; an underscore is accepted for the dash).
//
// Errors: ErrUnknownWhitening.
func ParseWhitening(name string) (Whitening, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "zca":
		return ZCA, nil
	case "zca-cor":
		return ZCACor, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownWhitening)
	}
}

// Defaults - single source of truth for option zero behavior.
const (
	// DefaultEpsilon floors spherize eigenvalues before inversion so that
	// collinear or constant features cannot blow up the whitening matrix.
	DefaultEpsilon = 1e-6

	// DefaultCenter subtracts per-column means before whitening.
	DefaultCenter = true
)

// DefaultWhitening is the whitening used when none is chosen.
const DefaultWhitening = ZCACor

// config holds resolved option state. Fields are unexported; public APIs
// consume ...Option.
type config struct {
	center  bool
	whiten  Whitening
	epsilon float64
}

func defaultConfig() config {
	return config{center: DefaultCenter, whiten: DefaultWhitening, epsilon: DefaultEpsilon}
}

// Option configures a scaling model at construction. Safe to apply
// repeatedly; the last write wins.
type Option func(*config)

// WithCenter controls whether spherize subtracts per-column means before
// whitening. When false the transform is taken about zero.
func WithCenter(center bool) Option {
	return func(c *config) { c.center = center }
}

// WithWhitening selects the spherize whitening variant.
func WithWhitening(w Whitening) Option {
	return func(c *config) { c.whiten = w }
}

// WithEpsilon overrides the spherize eigenvalue floor. Non-positive values
// are ignored and the default kept.
func WithEpsilon(eps float64) Option {
	return func(c *config) {
		if eps > 0 {
			c.epsilon = eps
		}
	}
}
