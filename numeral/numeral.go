// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeral implements cwim's numeric tower: arbitrary-precision
// integers, exact rationals, and IEEE-754 doubles, with a promotion
// lattice so that mixed-type arithmetic is computed in the widest
// operand's tier; exact results that are integral are normalized
// back to Int.
package numeral

import (
	"fmt"
	"math/big"
)

// Number is the tagged sum Int | Rat | Flt. The concrete types below
// are the only implementations; a Number is immutable once built.
type Number interface {
	fmt.Stringer

	// tier ranks the three variants for promotion: Int < Rat < Flt.
	tier() int
}

// IntVal is an arbitrary-precision integer.
type IntVal struct{ v *big.Int }

// RatVal is an exact rational, always reduced, never integral
// (an integral BigRat normalizes to IntVal on construction).
type RatVal struct{ v *big.Rat }

// FltVal is an IEEE-754 double.
type FltVal float64

func (IntVal) tier() int { return tierInt }
func (RatVal) tier() int { return tierRat }
func (FltVal) tier() int { return tierFlt }

const (
	tierInt = iota
	tierRat
	tierFlt
)

// FromInt64 builds an IntVal from a machine int64.
func FromInt64(x int64) Number {
	return IntVal{big.NewInt(x)}
}

// FromBigInt builds an IntVal, taking ownership of x.
func FromBigInt(x *big.Int) Number {
	return IntVal{x}
}

// FromRat builds a Number from a *big.Rat, normalizing to IntVal
// when the denominator is 1 (spec.md §3 invariant).
func FromRat(x *big.Rat) Number {
	return normalizeRat(x)
}

// FromFloat builds a FltVal.
func FromFloat(x float64) Number {
	return FltVal(x)
}

func normalizeRat(r *big.Rat) Number {
	if r.IsInt() {
		return IntVal{new(big.Int).Set(r.Num())}
	}
	return RatVal{r}
}

// Zero and One are the canonical small integers used throughout the
// polynomial solver and evaluator.
var (
	Zero = FromInt64(0)
	One  = FromInt64(1)
)

// IsZero reports whether n is exactly zero (for any tier).
func IsZero(n Number) bool {
	switch x := n.(type) {
	case IntVal:
		return x.v.Sign() == 0
	case RatVal:
		return x.v.Sign() == 0
	case FltVal:
		return float64(x) == 0
	}
	panic(fmt.Sprintf("numeral: IsZero: unknown type %T", n))
}

// Sign returns -1, 0, or 1. For FltVal(NaN) it returns 0, matching
// the "incomparable" treatment of NaN elsewhere in the package.
func Sign(n Number) int {
	switch x := n.(type) {
	case IntVal:
		return x.v.Sign()
	case RatVal:
		return x.v.Sign()
	case FltVal:
		f := float64(x)
		switch {
		case f != f:
			return 0
		case f < 0:
			return -1
		case f > 0:
			return 1
		default:
			return 0
		}
	}
	panic(fmt.Sprintf("numeral: Sign: unknown type %T", n))
}

// String renders the canonical form: Int as decimal digits, Rat as
// "n/d", Flt in Go's standard double format.
func (i IntVal) String() string { return i.v.String() }

func (r RatVal) String() string {
	return fmt.Sprintf("%s/%s", r.v.Num().String(), r.v.Denom().String())
}

func (f FltVal) String() string {
	return fmt.Sprintf("%v", float64(f))
}

// ToFloat64 is the lossy conversion to the host double, used by the
// polynomial solver's discriminant square root and by Flt promotion.
func ToFloat64(n Number) float64 {
	switch x := n.(type) {
	case IntVal:
		f := new(big.Float).SetInt(x.v)
		v, _ := f.Float64()
		return v
	case RatVal:
		v, _ := x.v.Float64()
		return v
	case FltVal:
		return float64(x)
	}
	panic(fmt.Sprintf("numeral: ToFloat64: unknown type %T", n))
}

// asRat lifts an Int or Rat to a *big.Rat. Panics on FltVal; callers
// must promote to Flt before calling if a Flt operand is possible.
func asRat(n Number) *big.Rat {
	switch x := n.(type) {
	case IntVal:
		return new(big.Rat).SetInt(x.v)
	case RatVal:
		return x.v
	}
	panic(fmt.Sprintf("numeral: asRat: not exact: %T", n))
}

// asInt lifts an IntVal to *big.Int. Panics otherwise; callers check
// tier first.
func asInt(n Number) *big.Int {
	i, ok := n.(IntVal)
	if !ok {
		panic(fmt.Sprintf("numeral: asInt: not an int: %T", n))
	}
	return i.v
}

// widerTier returns the promotion tier for a binary operation over x, y.
func widerTier(x, y Number) int {
	tx, ty := x.tier(), y.tier()
	if tx > ty {
		return tx
	}
	return ty
}
