// SPDX-License-Identifier: MIT

// Package normalize orchestrates profile normalization: partition columns
// into features and metadata, select the fitting rows, fit the chosen
// scaling model on that subset, transform every row's features, and
// recombine with the untouched metadata.
//
// 🚀 Flow:
//
//	Table ──► features.Selection ──► (feature cols, metadata cols)
//	      ──► query.Select(Samples) ──► fitting-row subset
//	      ──► scaler.Fit(subset features) ──► scaler.Transform(all features)
//	      ──► metadata-first merge by row id ──► normalized Table
//
// Guarantees:
//
//   - Output column order is metadata columns first, then feature columns,
//     both in their resolved order; metadata cells are byte-identical to
//     the input.
//   - Output row count and row identifiers equal the input's exactly —
//     transform never drops or reorders rows.
//   - Fitting uses only the selected subset's feature values; the
//     transform is applied to every row regardless of subset membership.
//
// Usage:
//
//	opts := normalize.DefaultOptions()
//	opts.Samples = "Metadata_treatment == 'control'"
//	opts.Method = "spherize"
//	opts.SpherizeMethod = "ZCA"
//	out, err := normalize.Normalize(t, opts)
//
// All faults are surfaced synchronously to the caller; nothing is retried
// (the computation is deterministic and pure) and no partial result is
// ever returned on error.
package normalize
