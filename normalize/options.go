// SPDX-License-Identifier: MIT

package normalize

import (
	"github.com/katalvlaran/cytonorm/features"
	"github.com/katalvlaran/cytonorm/profile"
	"github.com/katalvlaran/cytonorm/query"
	"github.com/katalvlaran/cytonorm/scaler"
)

// DefaultMethod is the scaling model used when none is chosen.
const DefaultMethod = "standardize"

// DefaultSpherizeMethod is the whitening used when none is chosen.
const DefaultSpherizeMethod = "ZCA-cor"

// Options configures one Normalize call.
//
// Fields:
//   - Features       — feature-column selection: Explicit list or Infer.
//   - MetaFeatures   — metadata-column selection: Explicit, Infer or None.
//   - Samples        — query.All, or a predicate string selecting the
//     fitting rows (e.g. "Metadata_treatment == 'control'").
//   - Method         — scaling model name, case-insensitive: one of
//     "standardize", "robustize", "mad_robustize", "spherize".
//   - SpherizeCenter — subtract column means before whitening
//     (spherize only; ignored by the other methods).
//   - SpherizeMethod — "ZCA" or "ZCA-cor" (spherize only).
//   - OutputFile     — when non-empty, the normalized table is also
//     written there with the Output settings.
//   - Output         — compression and float formatting for OutputFile.
type Options struct {
	Features       features.Selection
	MetaFeatures   features.Selection
	Samples        string
	Method         string
	SpherizeCenter bool
	SpherizeMethod string
	OutputFile     string
	Output         profile.WriteOptions
}

// DefaultOptions mirrors the conventional pipeline defaults: infer both
// partitions, fit on all rows, standardize, centered ZCA-cor spherizing,
// no output file.
func DefaultOptions() Options {
	return Options{
		Features:       features.Infer(),
		MetaFeatures:   features.Infer(),
		Samples:        query.All,
		Method:         DefaultMethod,
		SpherizeCenter: scaler.DefaultCenter,
		SpherizeMethod: DefaultSpherizeMethod,
		Output:         profile.DefaultWriteOptions(),
	}
}
