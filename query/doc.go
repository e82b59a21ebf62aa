// SPDX-License-Identifier: MIT

// Package query selects the fitting subset of a profile table by
// evaluating a row predicate against metadata columns.
//
// Instead of embedding a full expression-language engine, the predicate is
// a small typed AST: comparisons between a column and a literal, combined
// with and/or and parentheses. The string form accepted by Parse matches
// the query convention used by profiling pipelines:
//
//	Metadata_treatment == 'control'
//	Metadata_plate == 'a' and Metadata_dose >= 0.5
//	(Metadata_line == 'wt' | Metadata_line == 'ko') & Metadata_pass == 1
//
// Operators: == != < <= > >=, conjunction "and"/"&", disjunction "or"/"|".
// Literals are single- or double-quoted strings or numbers. Ordering
// operators require numeric cells; equality between mismatched types is
// simply false (and != true), never an error.
//
// Select preserves the table's row order and returns stable row
// identifiers, so a zero-match predicate yields an empty — but valid —
// subset; it is the scaler's job to reject fitting on it.
package query
