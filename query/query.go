// SPDX-License-Identifier: MIT

package query

import (
	"fmt"

	"github.com/katalvlaran/cytonorm/profile"
)

// All is the selection sentinel meaning "every row" — no predicate is
// parsed or evaluated.
const All = "all"

// Op is a comparison operator.
type Op int

const (
	Eq Op = iota // ==
	Ne           // !=
	Lt           // <
	Le           // <=
	Gt           // >
	Ge           // >=
)

// Expr is a boolean expression over one table row. Implementations are
// immutable and safe for reuse across rows and tables.
type Expr interface {
	// Eval reports whether positional row i of t satisfies the expression.
	Eval(t *profile.Table, i int) (bool, error)
}

// Literal is a typed predicate operand: a number or a string.
type Literal struct {
	Num     float64
	Str     string
	Numeric bool
}

// Comparison compares one column's cell against a literal.
type Comparison struct {
	Column string
	Op     Op
	Value  Literal
}

// Eval implements Expr.
//
// Semantics: ==/!= compare numerically when both sides are numeric, as
// strings when both are strings, and mismatched types are unequal.
// Ordering operators require both sides numeric (ErrTypeMismatch).
func (c Comparison) Eval(t *profile.Table, i int) (bool, error) {
	cell, err := t.Cell(i, c.Column)
	if err != nil {
		return false, fmt.Errorf("%q: %w", c.Column, ErrUnknownColumn)
	}

	switch c.Op {
	case Eq, Ne:
		eq := literalEquals(cell, c.Value)
		if c.Op == Ne {
			eq = !eq
		}
		return eq, nil
	default:
		f, ok := cell.(float64)
		if !ok || !c.Value.Numeric {
			return false, fmt.Errorf("column %q: %w", c.Column, ErrTypeMismatch)
		}
		switch c.Op {
		case Lt:
			return f < c.Value.Num, nil
		case Le:
			return f <= c.Value.Num, nil
		case Gt:
			return f > c.Value.Num, nil
		default:
			return f >= c.Value.Num, nil
		}
	}
}

// literalEquals compares a cell against a literal without coercion across
// kinds: float64 vs numeric literal, string vs string literal.
func literalEquals(cell any, lit Literal) bool {
	switch v := cell.(type) {
	case float64:
		return lit.Numeric && v == lit.Num
	case string:
		return !lit.Numeric && v == lit.Str
	default:
		return false
	}
}

// logic is the binary and/or node.
type logic struct {
	and  bool
	l, r Expr
}

// And combines two expressions conjunctively.
func And(l, r Expr) Expr { return logic{and: true, l: l, r: r} }

// Or combines two expressions disjunctively.
func Or(l, r Expr) Expr { return logic{and: false, l: l, r: r} }

// Eval implements Expr. Both operands are always evaluated so that column
// and type errors surface regardless of short-circuit truth values.
func (g logic) Eval(t *profile.Table, i int) (bool, error) {
	lv, err := g.l.Eval(t, i)
	if err != nil {
		return false, err
	}
	rv, err := g.r.Eval(t, i)
	if err != nil {
		return false, err
	}
	if g.and {
		return lv && rv, nil
	}
	return lv || rv, nil
}

// Select returns the stable identifiers of the rows satisfying spec, in
// table order. spec == All selects every row; any other string is parsed
// as a predicate. A predicate matching zero rows returns an empty slice
// and no error.
//
// Errors: ErrBadPredicate, ErrUnknownColumn, ErrTypeMismatch.
func Select(t *profile.Table, spec string) ([]int, error) {
	if spec == All {
		return t.RowIDs(), nil
	}
	expr, err := Parse(spec)
	if err != nil {
		return nil, err
	}
	return SelectExpr(t, expr)
}

// SelectExpr evaluates an already-built expression against every row.
func SelectExpr(t *profile.Table, expr Expr) ([]int, error) {
	ids := t.RowIDs()
	out := make([]int, 0, len(ids))
	for i, id := range ids {
		ok, err := expr.Eval(t, i)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, id)
		}
	}
	return out, nil
}
