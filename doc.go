// SPDX-License-Identifier: MIT

// Package cytonorm normalizes tabular measurement profiles — one row per
// biological sample/well, one column per measured feature plus metadata
// columns — to remove batch- and plate-level scale and location effects
// before downstream analysis.
//
// 🚀 What is cytonorm?
//
//	A small, deterministic library that brings together:
//		• profile/   — the Table data model + CSV load/output collaborators
//		• features/  — feature vs. metadata column partitioning ("infer" heuristic)
//		• query/     — typed row predicates selecting the fitting subset
//		• scaler/    — four scaling models: standardize, robustize,
//		               mad_robustize and spherize (ZCA / ZCA-cor whitening)
//		• normalize/ — the orchestrator: partition, select, fit, transform, merge
//
// ✨ Why choose cytonorm?
//
//   - Exact fit/transform contract — fit on a row subset, transform every row
//   - Robust numerics — MAD floors, eigenvalue regularization, documented
//     zero-variance policies
//   - Deterministic — repeated fits on identical data are bit-reproducible
//   - Pure computation — no goroutines, no hidden I/O outside profile/
//
// Quick sketch:
//
//	t, _ := profile.Load("plate_42.csv")
//	opts := normalize.DefaultOptions()
//	opts.Samples = "Metadata_treatment == 'control'"
//	opts.Method = "mad_robustize"
//	out, err := normalize.Normalize(t, opts)
//
// Dive into each package's doc.go for contracts, error sets and complexity
// notes.
//
//	go get github.com/katalvlaran/cytonorm
package cytonorm
