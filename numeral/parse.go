// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeral

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// Parse converts a literal's lexeme into a Number. It is radix-aware:
// a leading "0x", "0o", or "0b" prefix selects base 16, 8, or 2; any
// other digit string is decimal. A "." present in a base-10 lexeme
// forces a Flt result (cwim has no fractional-literal syntax in
// radixes other than 10). Digits invalid for the selected radix are
// a parse error, not a partial token — spec.md §3 calls out "0b112"
// as an error rather than two tokens, so the caller is expected to
// have already validated the lexeme during lexing; Parse re-validates
// defensively.
func Parse(lexeme string) (Number, error) {
	if strings.Contains(lexeme, "/") {
		return parseRatLiteral(lexeme)
	}

	neg := false
	s := lexeme
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0o") || strings.HasPrefix(s, "0O"):
		base, s = 8, s[2:]
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		base, s = 2, s[2:]
	}

	if base != 10 {
		if s == "" {
			return nil, errors.New("numeral: radix literal with no digits")
		}
		i, ok := new(big.Int).SetString(s, base)
		if !ok {
			return nil, errors.New("numeral: invalid digits for radix literal " + lexeme)
		}
		if neg {
			i.Neg(i)
		}
		return IntVal{i}, nil
	}

	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return nil, errors.New("numeral: invalid float literal " + lexeme)
		}
		return FltVal(f), nil
	}

	i, ok := new(big.Int).SetString(lexeme, 10)
	if !ok {
		return nil, errors.New("numeral: invalid integer literal " + lexeme)
	}
	return IntVal{i}, nil
}

// parseRatLiteral parses the "n/d" form produced by RatVal.String(). It
// is not part of the lexer's literal grammar (spec.md §8's literal rule
// has no rational syntax); it exists so that Number's round-trip
// property, parse(display(n), 10) == n, holds for Rat as well as Int.
func parseRatLiteral(s string) (Number, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return nil, errors.New("numeral: malformed rational literal " + s)
	}
	r, ok := new(big.Rat).SetString(parts[0] + "/" + parts[1])
	if !ok {
		return nil, errors.New("numeral: malformed rational literal " + s)
	}
	return normalizeRat(r), nil
}
