// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly converts an expression tree containing at most one free
// variable into a polynomial coefficient vector and solves it, backing
// cwim's assignment-by-equation feature (`7x = 14` binds `x := 2`).
package poly

import (
	"fmt"
	"math"

	"github.com/p-davide/cwim/eval"
	"github.com/p-davide/cwim/numeral"
	"github.com/p-davide/cwim/parse"
)

// Poly is Σ Coeffs[i]·x^i in the single free variable named Unknown.
// Unknown is "" until an Unknown(name) leaf fixes it.
type Poly struct {
	Coeffs  []numeral.Number
	Unknown string
}

func constant(n numeral.Number) Poly {
	return Poly{Coeffs: []numeral.Number{n}}
}

func variable(name string) Poly {
	return Poly{Coeffs: []numeral.Number{numeral.Zero, numeral.One}, Unknown: name}
}

// degree is len(Coeffs)-1 with trailing zero coefficients trimmed.
func (p Poly) degree() int {
	d := len(p.Coeffs) - 1
	for d > 0 && numeral.IsZero(p.Coeffs[d]) {
		d--
	}
	return d
}

// unify checks that a and b name the same free variable (or that at
// most one of them names any), returning the unified name. Two
// distinct non-empty names are a polynomial error (spec §4.6,
// "unknown-name unification").
func unify(a, b Poly) (string, error) {
	switch {
	case a.Unknown == "":
		return b.Unknown, nil
	case b.Unknown == "" || a.Unknown == b.Unknown:
		return a.Unknown, nil
	default:
		return "", fmt.Errorf("poly: two unknowns %q and %q in one equation", a.Unknown, b.Unknown)
	}
}

func pad(c []numeral.Number, n int) []numeral.Number {
	out := make([]numeral.Number, n)
	copy(out, c)
	for i := len(c); i < n; i++ {
		out[i] = numeral.Zero
	}
	return out
}

func add(a, b Poly) (Poly, error) {
	unknown, err := unify(a, b)
	if err != nil {
		return Poly{}, err
	}
	n := len(a.Coeffs)
	if len(b.Coeffs) > n {
		n = len(b.Coeffs)
	}
	ac, bc := pad(a.Coeffs, n), pad(b.Coeffs, n)
	out := make([]numeral.Number, n)
	for i := range out {
		out[i] = numeral.Add(ac[i], bc[i])
	}
	return Poly{Coeffs: out, Unknown: unknown}, nil
}

func negate(a Poly) Poly {
	out := make([]numeral.Number, len(a.Coeffs))
	for i, c := range a.Coeffs {
		out[i] = numeral.Neg(c)
	}
	return Poly{Coeffs: out, Unknown: a.Unknown}
}

// sub is left minus the rest (spec §4.6: "left minus sum of rest").
func sub(a, b Poly) (Poly, error) {
	return add(a, negate(b))
}

func mul(a, b Poly) (Poly, error) {
	unknown, err := unify(a, b)
	if err != nil {
		return Poly{}, err
	}
	out := make([]numeral.Number, len(a.Coeffs)+len(b.Coeffs)-1)
	for i := range out {
		out[i] = numeral.Zero
	}
	for i, ac := range a.Coeffs {
		for j, bc := range b.Coeffs {
			out[i+j] = numeral.Add(out[i+j], numeral.Mul(ac, bc))
		}
	}
	return Poly{Coeffs: out, Unknown: unknown}, nil
}

func intPow(base Poly, exp int64) (Poly, error) {
	if exp < 0 {
		return Poly{}, fmt.Errorf("poly: negative exponent in polynomial")
	}
	result := constant(numeral.One)
	for i := int64(0); i < exp; i++ {
		var err error
		result, err = mul(result, base)
		if err != nil {
			return Poly{}, err
		}
	}
	return result, nil
}

// From converts tree bottom-up into a Poly (spec §4.6).
func From(tree parse.Expr) (Poly, error) {
	switch v := tree.(type) {
	case *parse.Var:
		return constant(v.N), nil
	case *parse.Unknown:
		return variable(v.Name), nil
	case *parse.Fun:
		return funToPoly(v)
	default:
		return Poly{}, fmt.Errorf("poly: unrecognized node %T", tree)
	}
}

func funToPoly(f *parse.Fun) (Poly, error) {
	switch f.Name {
	case "+":
		return foldAdd(f.Args)
	case "-":
		return foldSub(f.Args)
	case "*":
		return foldMul(f.Args)
	case "^":
		return powToPoly(f.Args)
	default:
		return evalAsConstant(f)
	}
}

func foldAdd(args []parse.Expr) (Poly, error) {
	acc, err := From(args[0])
	if err != nil {
		return Poly{}, err
	}
	for _, a := range args[1:] {
		p, err := From(a)
		if err != nil {
			return Poly{}, err
		}
		acc, err = add(acc, p)
		if err != nil {
			return Poly{}, err
		}
	}
	return acc, nil
}

func foldSub(args []parse.Expr) (Poly, error) {
	if len(args) == 1 {
		p, err := From(args[0])
		if err != nil {
			return Poly{}, err
		}
		return negate(p), nil
	}
	acc, err := From(args[0])
	if err != nil {
		return Poly{}, err
	}
	rest, err := foldAdd(args[1:])
	if err != nil {
		return Poly{}, err
	}
	return sub(acc, rest)
}

func foldMul(args []parse.Expr) (Poly, error) {
	acc, err := From(args[0])
	if err != nil {
		return Poly{}, err
	}
	for _, a := range args[1:] {
		p, err := From(a)
		if err != nil {
			return Poly{}, err
		}
		acc, err = mul(acc, p)
		if err != nil {
			return Poly{}, err
		}
	}
	return acc, nil
}

func powToPoly(args []parse.Expr) (Poly, error) {
	base, err := From(args[0])
	if err != nil {
		return Poly{}, err
	}
	expVal, err := eval.Eval(args[1])
	if err != nil {
		return Poly{}, fmt.Errorf("poly: exponent is not a plain expression: %w", err)
	}
	f := numeral.ToFloat64(expVal)
	if f != math.Trunc(f) {
		return Poly{}, fmt.Errorf("poly: fractional exponent in polynomial")
	}
	return intPow(base, int64(f))
}

func evalAsConstant(f *parse.Fun) (Poly, error) {
	n, err := eval.Eval(f)
	if err != nil {
		return Poly{}, fmt.Errorf("poly: non-polynomial subterm %q", f.String())
	}
	return constant(n), nil
}

// Equation builds the polynomial for lhs - rhs = 0.
func Equation(lhs, rhs parse.Expr) (Poly, error) {
	l, err := From(lhs)
	if err != nil {
		return Poly{}, err
	}
	r, err := From(rhs)
	if err != nil {
		return Poly{}, err
	}
	return sub(l, r)
}

// Solve returns the real root(s) of p = 0. Degree 0 and degree > 2 are
// "no solution"; degree 1 returns exactly one root; degree 2 returns
// both roots (ordered [+√Δ, -√Δ]) when the discriminant is
// non-negative (spec §4.6).
func Solve(p Poly) ([]numeral.Number, error) {
	if p.Unknown == "" {
		return nil, fmt.Errorf("poly: no solution (no free variable)")
	}
	switch p.degree() {
	case 0:
		if !numeral.IsZero(p.Coeffs[0]) {
			return nil, fmt.Errorf("poly: no solution (contradiction)")
		}
		return nil, fmt.Errorf("poly: no solution (identically true)")
	case 1:
		b, a := p.Coeffs[0], p.Coeffs[1]
		return []numeral.Number{numeral.Neg(numeral.Div(b, a))}, nil
	case 2:
		c, b, a := p.Coeffs[0], p.Coeffs[1], p.Coeffs[2]
		discriminant := numeral.Sub(numeral.Mul(b, b), numeral.Mul(numeral.FromInt64(4), numeral.Mul(a, c)))
		discF := numeral.ToFloat64(discriminant)
		if discF < 0 {
			return nil, fmt.Errorf("poly: no solution (negative discriminant)")
		}
		sqrtDisc := numeral.FromFloat(math.Sqrt(discF))
		twoA := numeral.Mul(numeral.FromInt64(2), a)
		plus := numeral.Div(numeral.Add(numeral.Neg(b), sqrtDisc), twoA)
		minus := numeral.Div(numeral.Sub(numeral.Neg(b), sqrtDisc), twoA)
		return []numeral.Number{plus, minus}, nil
	default:
		return nil, fmt.Errorf("poly: no solution (degree %d not supported)", p.degree())
	}
}
