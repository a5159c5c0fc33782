// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eval folds a parsed expression tree down to a single
// numeral.Number.
package eval

import (
	"errors"
	"fmt"

	"github.com/p-davide/cwim/numeral"
	"github.com/p-davide/cwim/parse"
)

// ErrFreeVariable is returned (wrapped) when evaluation reaches an
// Unknown node: the expression had a free variable and should have
// been routed through poly.Solve instead (spec §4.5).
var ErrFreeVariable = errors.New("unknown name in a plain expression")

// Eval evaluates e. Var is a leaf value; Fun applies its descriptor's
// unary or binary body to its evaluated children; Unknown is an error
// here — a free variable means the statement should have gone through
// poly.Solve instead (spec §4.5).
func Eval(e parse.Expr) (numeral.Number, error) {
	switch v := e.(type) {
	case *parse.Var:
		return v.N, nil
	case *parse.Unknown:
		return nil, fmt.Errorf("eval: %q: %w", v.Name, ErrFreeVariable)
	case *parse.Fun:
		return evalFun(v)
	default:
		return nil, fmt.Errorf("eval: unrecognized node %T", e)
	}
}

// evalFun evaluates children right-to-left (spec §4.5) before applying
// the descriptor body; a body with more than two children (n-ary
// fold, never produced by the current parser but supported for
// completeness) is reduced left-to-right.
func evalFun(f *parse.Fun) (numeral.Number, error) {
	vals := make([]numeral.Number, len(f.Args))
	for i := len(f.Args) - 1; i >= 0; i-- {
		v, err := Eval(f.Args[i])
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	switch len(vals) {
	case 1:
		if f.Desc.Unary == nil {
			return nil, fmt.Errorf("eval: %q has no unary form", f.Name)
		}
		return f.Desc.Unary(vals[0]), nil
	case 2:
		if f.Desc.Binary == nil {
			return nil, fmt.Errorf("eval: %q has no binary form", f.Name)
		}
		return f.Desc.Binary(vals[0], vals[1]), nil
	default:
		if f.Desc.Binary == nil {
			return nil, fmt.Errorf("eval: %q has no binary form", f.Name)
		}
		acc := vals[0]
		for _, v := range vals[1:] {
			acc = f.Desc.Binary(acc, v)
		}
		return acc, nil
	}
}
