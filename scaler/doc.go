// SPDX-License-Identifier: MIT

// Package scaler implements the four scaling models used to normalize
// profile feature matrices: standardize, robustize, mad_robustize and
// spherize. All variants share one contract:
//
//	s, _ := scaler.New(scaler.Standardize)
//	err := s.Fit(subset)          // learn parameters from the fitting rows
//	out, err := s.Transform(full) // apply them to any matrix of equal width
//
// Fit consumes only the rows it is given; Transform applies the fitted
// parameters to every row it is given — the fit/transform split is what
// lets a pipeline learn from control wells and rescale a whole plate.
// Each Fit replaces the scaler's fitted state wholesale with a fresh
// immutable parameter value; fitted state is never mutated in place, so a
// fitted scaler may be shared across goroutines for Transform.
//
// Variants:
//
//   - Standardize  — per-column (x−μ)/σ, population σ.
//   - Robustize    — per-column (x−median)/IQR, quartiles by linear
//     interpolation.
//   - MADRobustize — per-column (x−median)/max(1.4826·MAD, 1e-6).
//   - Spherize     — joint ZCA or ZCA-cor whitening: eigendecompose the
//     covariance (resp. correlation) matrix of the fitting rows,
//     floor eigenvalues by ε, and apply W = V·diag(1/√(Λ+ε))·Vᵀ.
//
// Zero-variance policy (documented, intentional asymmetry):
//
//   - Standardize and Robustize propagate the degeneracy — a zero σ or
//     zero IQR yields ±Inf/NaN in that column's output, a detectable
//     numeric fault, never a silent clamp.
//   - MADRobustize clamps — near-zero-variance features are routine in
//     this domain and a single flat column must not poison the table.
//   - Spherize regularizes internally — the ε eigenvalue floor absorbs
//     collinear/constant features without surfacing an error.
//
// Determinism: fixed accumulation order and gonum's symmetric
// eigendecomposition (eigenvalues ascending) make repeated fits on
// identical data bit-reproducible.
//
// Complexity: column-wise variants are O(r·c) to fit (O(r·c·log r) for the
// median-based ones) and O(r·c) to transform; Spherize is O(r·c²+c³) to
// fit and O(r·c²) to transform.
package scaler
