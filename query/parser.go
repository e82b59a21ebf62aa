// SPDX-License-Identifier: MIT

package query

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// token kinds produced by the lexer.
type tokKind int

const (
	tokIdent tokKind = iota
	tokNumber
	tokString
	tokOp     // == != < <= > >=
	tokAnd    // "and" or "&"
	tokOr     // "or" or "|"
	tokLParen // (
	tokRParen // )
	tokEOF
)

type token struct {
	kind tokKind
	text string
}

// Parse builds a predicate expression from its string form.
//
// Grammar (lowest precedence first):
//
//	expr       := term { OR term }
//	term       := factor { AND factor }
//	factor     := '(' expr ')' | comparison
//	comparison := IDENT op literal
//
// Errors: ErrBadPredicate (wrapped with position context).
func Parse(s string) (Expr, error) {
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("trailing input %q: %w", p.peek().text, ErrBadPredicate)
	}
	return expr, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Or(left, right)
	}
	return left, nil
}

func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = And(left, right)
	}
	return left, nil
}

func (p *parser) parseFactor() (Expr, error) {
	switch t := p.next(); t.kind {
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.next().kind != tokRParen {
			return nil, fmt.Errorf("missing ')': %w", ErrBadPredicate)
		}
		return inner, nil
	case tokIdent:
		return p.parseComparison(t.text)
	default:
		return nil, fmt.Errorf("unexpected %q: %w", t.text, ErrBadPredicate)
	}
}

func (p *parser) parseComparison(column string) (Expr, error) {
	opTok := p.next()
	if opTok.kind != tokOp {
		return nil, fmt.Errorf("expected comparison operator after %q, got %q: %w", column, opTok.text, ErrBadPredicate)
	}
	var op Op
	switch opTok.text {
	case "==":
		op = Eq
	case "!=":
		op = Ne
	case "<":
		op = Lt
	case "<=":
		op = Le
	case ">":
		op = Gt
	case ">=":
		op = Ge
	}

	switch lit := p.next(); lit.kind {
	case tokNumber:
		f, err := strconv.ParseFloat(lit.text, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", lit.text, ErrBadPredicate)
		}
		return Comparison{Column: column, Op: op, Value: Literal{Num: f, Numeric: true}}, nil
	case tokString:
		return Comparison{Column: column, Op: op, Value: Literal{Str: lit.text}}, nil
	default:
		return nil, fmt.Errorf("expected literal after operator, got %q: %w", lit.text, ErrBadPredicate)
	}
}

// lex splits the predicate string into tokens. Keywords "and"/"or" are
// matched case-insensitively; column names are case-sensitive idents.
func lex(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case c == '&':
			toks = append(toks, token{tokAnd, "&"})
			i++
		case c == '|':
			toks = append(toks, token{tokOr, "|"})
			i++
		case c == '=' || c == '!' || c == '<' || c == '>':
			op := string(c)
			if i+1 < len(s) && s[i+1] == '=' {
				op += "="
				i++
			}
			i++
			if op == "=" || op == "!" {
				return nil, fmt.Errorf("bad operator %q: %w", op, ErrBadPredicate)
			}
			toks = append(toks, token{tokOp, op})
		case c == '\'' || c == '"':
			quote := c
			j := i + 1
			for j < len(s) && s[j] != quote {
				j++
			}
			if j == len(s) {
				return nil, fmt.Errorf("unterminated string: %w", ErrBadPredicate)
			}
			toks = append(toks, token{tokString, s[i+1 : j]})
			i = j + 1
		case c >= '0' && c <= '9' || c == '-' || c == '.':
			j := i + 1
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.' || s[j] == 'e' || s[j] == 'E' || s[j] == '-' || s[j] == '+') {
				j++
			}
			toks = append(toks, token{tokNumber, s[i:j]})
			i = j
		case unicode.IsLetter(rune(c)) || c == '_':
			j := i + 1
			for j < len(s) && (unicode.IsLetter(rune(s[j])) || unicode.IsDigit(rune(s[j])) || s[j] == '_') {
				j++
			}
			word := s[i:j]
			switch strings.ToLower(word) {
			case "and":
				toks = append(toks, token{tokAnd, word})
			case "or":
				toks = append(toks, token{tokOr, word})
			default:
				toks = append(toks, token{tokIdent, word})
			}
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q: %w", string(c), ErrBadPredicate)
		}
	}
	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}
