// SPDX-License-Identifier: MIT

// Package features partitions a profile table's columns into feature
// columns (numeric measurements subject to scaling) and metadata columns
// (descriptive, passed through unchanged).
//
// The partition is expressed as a Selection — a small sum type with three
// cases:
//
//   - Explicit(names...) — use exactly these columns, in this order
//   - Infer()            — apply the naming-convention heuristic below
//   - None()             — the empty set (valid for metadata only)
//
// The inference heuristic follows the CellProfiler convention: feature
// columns start with "Cells_", "Cytoplasm_" or "Nuclei_"; metadata columns
// start with "Metadata_". Inference is deterministic: it walks the table's
// column order once, so two calls on the same table always agree.
//
// Resolution guarantees the contract the orchestrator relies on: every
// returned name exists in the table, appears once, and the feature and
// metadata lists can be checked for disjointness with Disjoint.
package features
