// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeral

import (
	"math"
	"math/big"
)

// Add, Sub, Mul, Div, Rem, Pow, Neg, Abs implement the arithmetic
// ladder described in spec.md §4.1: promote to the wider operand's
// tier, then dispatch. This mirrors the teacher's binaryOp dispatch
// table in value/binary.go, collapsed from ivy's four-tier lattice to
// cwim's three (Int, Rat, Flt).

// Add returns x + y.
func Add(x, y Number) Number {
	switch widerTier(x, y) {
	case tierFlt:
		return FltVal(ToFloat64(x) + ToFloat64(y))
	case tierRat:
		return normalizeRat(new(big.Rat).Add(asRat(x), asRat(y)))
	default:
		return IntVal{new(big.Int).Add(asInt(x), asInt(y))}
	}
}

// Sub returns x - y.
func Sub(x, y Number) Number {
	switch widerTier(x, y) {
	case tierFlt:
		return FltVal(ToFloat64(x) - ToFloat64(y))
	case tierRat:
		return normalizeRat(new(big.Rat).Sub(asRat(x), asRat(y)))
	default:
		return IntVal{new(big.Int).Sub(asInt(x), asInt(y))}
	}
}

// Mul returns x * y.
func Mul(x, y Number) Number {
	switch widerTier(x, y) {
	case tierFlt:
		return FltVal(ToFloat64(x) * ToFloat64(y))
	case tierRat:
		return normalizeRat(new(big.Rat).Mul(asRat(x), asRat(y)))
	default:
		return IntVal{new(big.Int).Mul(asInt(x), asInt(y))}
	}
}

// Div returns x / y. Division of two Ints always produces a Rat
// (then normalized to Int if exact); division by exact zero yields
// Flt(NaN) and logs a warning rather than panicking.
func Div(x, y Number) Number {
	if widerTier(x, y) == tierFlt {
		return FltVal(ToFloat64(x) / ToFloat64(y))
	}
	if IsZero(y) {
		log.Warnw("division by zero, returning NaN", "x", x.String())
		return FltVal(math.NaN())
	}
	return normalizeRat(new(big.Rat).Quo(asRat(x), asRat(y)))
}

// Rem returns the remainder of x / y, truncating toward zero like
// Go's %. Division by exact zero yields Flt(NaN) with a warning.
func Rem(x, y Number) Number {
	if widerTier(x, y) == tierFlt {
		return FltVal(math.Mod(ToFloat64(x), ToFloat64(y)))
	}
	if IsZero(y) {
		log.Warnw("modulo by zero, returning NaN", "x", x.String())
		return FltVal(math.NaN())
	}
	if xi, ok := x.(IntVal); ok {
		if yi, ok := y.(IntVal); ok {
			return IntVal{new(big.Int).Rem(xi.v, yi.v)}
		}
	}
	rx, ry := asRat(x), asRat(y)
	quo := new(big.Rat).Quo(rx, ry)
	truncated := new(big.Int).Quo(quo.Num(), quo.Denom())
	truncRat := new(big.Rat).SetInt(truncated)
	return normalizeRat(new(big.Rat).Sub(rx, new(big.Rat).Mul(ry, truncRat)))
}

// Neg returns -x.
func Neg(x Number) Number {
	switch v := x.(type) {
	case IntVal:
		return IntVal{new(big.Int).Neg(v.v)}
	case RatVal:
		return RatVal{new(big.Rat).Neg(v.v)}
	case FltVal:
		return FltVal(-v)
	}
	panic("numeral: Neg: unknown type")
}

// Abs returns |x|.
func Abs(x Number) Number {
	if Sign(x) >= 0 {
		return x
	}
	return Neg(x)
}

// Pow raises x to the y power, following spec.md §4.1's promotion
// table: non-negative integer exponent of an Int yields Int; negative
// integer exponent yields Rat; any Rat or Flt exponent yields Flt.
// Exponents too large to evaluate fall back to Flt(NaN) with a logged
// warning rather than panicking.
func Pow(x, y Number) Number {
	yi, yIsInt := y.(IntVal)
	if !yIsInt || x.tier() == tierFlt {
		return FltVal(math.Pow(ToFloat64(x), ToFloat64(y)))
	}
	if !yi.v.IsInt64() {
		log.Warnw("exponent too large, returning NaN", "exp", yi.v.String())
		return FltVal(math.NaN())
	}
	exp := yi.v.Int64()
	if xi, ok := x.(IntVal); ok {
		return intPow(xi, exp)
	}
	return ratPow(x.(RatVal), exp)
}

func intPow(x IntVal, exp int64) Number {
	if exp >= 0 {
		return IntVal{new(big.Int).Exp(x.v, big.NewInt(exp), nil)}
	}
	if x.v.Sign() == 0 {
		log.Warnw("negative exponent of zero, returning NaN")
		return FltVal(math.NaN())
	}
	mag := new(big.Int).Exp(x.v, big.NewInt(-exp), nil)
	return normalizeRat(new(big.Rat).SetFrac(big.NewInt(1), mag))
}

func ratPow(x RatVal, exp int64) Number {
	if exp == 0 {
		return One
	}
	n := new(big.Int).Abs(big.NewInt(exp))
	num := new(big.Int).Exp(x.v.Num(), n, nil)
	den := new(big.Int).Exp(x.v.Denom(), n, nil)
	if exp < 0 {
		if x.v.Sign() == 0 {
			log.Warnw("negative exponent of zero, returning NaN")
			return FltVal(math.NaN())
		}
		num, den = den, num
	}
	return normalizeRat(new(big.Rat).SetFrac(num, den))
}

// Compare orders two numbers. It returns -1, 0, or 1 the way
// (*big.Int).Cmp does, and the boolean reports whether the values
// were comparable at all — false whenever a FltVal(NaN) is involved
// (spec.md §3: "comparing Flt(NaN) to anything returns incomparable").
func Compare(x, y Number) (cmp int, ok bool) {
	if f, isFlt := x.(FltVal); isFlt && float64(f) != float64(f) {
		return 0, false
	}
	if f, isFlt := y.(FltVal); isFlt && float64(f) != float64(f) {
		return 0, false
	}
	switch widerTier(x, y) {
	case tierFlt:
		fx, fy := ToFloat64(x), ToFloat64(y)
		switch {
		case fx < fy:
			return -1, true
		case fx > fy:
			return 1, true
		default:
			return 0, true
		}
	case tierRat:
		return asRat(x).Cmp(asRat(y)), true
	default:
		return asInt(x).Cmp(asInt(y)), true
	}
}
