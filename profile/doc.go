// SPDX-License-Identifier: MIT

// Package profile defines the Table data model consumed by the cytonorm
// pipeline, plus the load/output collaborators that move profiles in and
// out of CSV files.
//
// A Table is an ordered sequence of named columns over an ordered sequence
// of rows. Every row carries a stable integer identifier — its original
// index — which survives subsetting and recombination, so downstream
// stages can merge transformed features back onto untouched metadata
// without ever reordering or dropping rows. Numeric cells are float64,
// everything else is a string; feature columns must be fully numeric,
// metadata columns may hold anything.
//
// Tables are read-only by contract: every operation that would change one
// (Subset, recombination in normalize/) produces a new Table and leaves
// the receiver untouched. None of the accessors mutate, so a Table may be
// shared across concurrent normalize calls without locking.
//
// I/O:
//
//	t, err := profile.Load("plate_42.csv")      // or .csv.gz
//	...
//	err = profile.Write(t, "out.csv.gz", profile.WriteOptions{
//	  Compression: profile.Gzip,
//	  FloatFormat: "%.4g",
//	})
//
// Complexity: all accessors are O(1) or O(cells copied); Load/Write are a
// single pass over the file.
package profile
