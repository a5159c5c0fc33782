// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"fmt"

	"github.com/p-davide/cwim/env"
	"github.com/p-davide/cwim/numeral"
	"github.com/p-davide/cwim/token"
)

// maxSpaces is the sentinel width used as the weakest possible
// whitespace floor: it seeds the top-level parse and is restored on
// entering parentheses, matching the teacher's habit of a named
// constant over a bare magic number (spec §9).
const maxSpaces = 0xffff

// Strength is a Pratt binding power: a (spaces, priority) pair
// compared lexicographically with spaces inverted — more surrounding
// whitespace means a weaker bind (spec §4.4).
type Strength struct {
	Spaces   int
	Priority int
}

var minStrength = Strength{Spaces: maxSpaces, Priority: 0}

// less reports whether a binds weaker than b: a.Spaces > b.Spaces, or
// they're equal and a.Priority < b.Priority.
func less(a, b Strength) bool {
	if a.Spaces != b.Spaces {
		return a.Spaces > b.Spaces
	}
	return a.Priority < b.Priority
}

// Parser consumes a token slice and produces one Expr per call to
// Parse.
type Parser struct {
	toks []token.Token
	pos  int
	env  *env.Environment
}

// New builds a Parser over toks, dropping Comment and Newline tokens
// which carry no grammatical meaning for a single-line statement.
func New(toks []token.Token, e *env.Environment) *Parser {
	filtered := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind == token.Comment || t.Kind == token.Newline {
			continue
		}
		filtered = append(filtered, t)
	}
	return &Parser{toks: filtered, env: e}
}

// Parse parses one expression and requires the remaining tokens to be
// EOF or surplus closing parens, which are accepted silently (spec §9,
// "surplus trailing )").
func Parse(toks []token.Token, e *env.Environment) (Expr, error) {
	p := New(toks, e)
	expr, err := p.exprBP(minStrength)
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		switch p.peek().Kind {
		case token.EOF:
			return expr, nil
		case token.RParen:
			p.advance()
		case token.Error:
			return nil, fmt.Errorf("parse: %s", p.peek().Lexeme)
		default:
			return nil, fmt.Errorf("parse: unexpected %s %q", p.peek().Kind, p.peek().Lexeme)
		}
	}
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(i int) token.Token {
	if i >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[i]
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) skipSpace() {
	if p.peek().Kind == token.Space {
		p.advance()
	}
}

// exprBP is the standard Pratt loop, generalized with a whitespace
// floor alongside the usual priority floor (spec §4.4).
func (p *Parser) exprBP(floor Strength) (Expr, error) {
	lhs, err := p.prefix()
	if err != nil {
		return nil, err
	}
	for {
		op, ok, err := p.peekInfix()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		left := Strength{Spaces: op.spaces, Priority: op.priority * 2}
		if less(left, floor) {
			break
		}
		p.commitInfix(op)
		right := Strength{Spaces: min(floor.Spaces, op.spaces), Priority: op.priority*2 + 1}
		rhs, err := p.exprBP(right)
		if err != nil {
			return nil, err
		}
		lhs = &Fun{Name: op.name, Desc: op.desc, Args: []Expr{lhs, rhs}}
	}
	return lhs, nil
}

// prefix consumes the single token (or bracketed sub-expression) that
// starts an operand (spec §4.4 step 1).
func (p *Parser) prefix() (Expr, error) {
	p.skipSpace()
	tok := p.peek()
	switch tok.Kind {
	case token.Literal:
		p.advance()
		n, err := numeral.Parse(tok.Lexeme)
		if err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
		return &Var{N: n}, nil

	case token.LParen:
		p.advance()
		inner, err := p.exprBP(minStrength)
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		switch p.peek().Kind {
		case token.RParen:
			p.advance()
		case token.EOF:
			// missing ')' at end of input is accepted (spec §4.4 step 1).
		default:
			return nil, fmt.Errorf("parse: expected ')', found %q", p.peek().Lexeme)
		}
		return inner, nil

	case token.Symbol:
		desc, err := p.env.FindUnary(tok.Lexeme)
		if err != nil {
			return nil, fmt.Errorf("parse: %q is not a prefix operator", tok.Lexeme)
		}
		p.advance()
		rhs, err := p.exprBP(Strength{Spaces: 0, Priority: desc.UnaryPriority*2 + 1})
		if err != nil {
			return nil, err
		}
		return &Fun{Name: tok.Lexeme, Desc: desc, Args: []Expr{rhs}}, nil

	case token.Identifier:
		p.advance()
		if desc, err := p.env.FindUnary(tok.Lexeme); err == nil {
			rhs, err := p.exprBP(Strength{Spaces: 0, Priority: desc.UnaryPriority*2 + 1})
			if err != nil {
				return nil, err
			}
			return &Fun{Name: tok.Lexeme, Desc: desc, Args: []Expr{rhs}}, nil
		}
		if v, err := p.env.FindValue(tok.Lexeme); err == nil {
			return &Var{N: v}, nil
		}
		return &Unknown{Name: tok.Lexeme}, nil

	case token.EOF:
		return nil, fmt.Errorf("parse: unexpected end of input")

	case token.Error:
		return nil, fmt.Errorf("parse: %s", tok.Lexeme)

	default:
		return nil, fmt.Errorf("parse: unexpected %s %q", tok.Kind, tok.Lexeme)
	}
}

// infixOp describes a candidate infix operator, real or synthesized.
type infixOp struct {
	name     string
	desc     *env.Descriptor
	priority int
	spaces   int
}

// peekInfix looks past LHS for the next infix operator without
// consuming it: an explicit Symbol resolving to a binary descriptor,
// or an implicit multiplication synthesized before a LParen, Literal,
// or Identifier (spec §4.4 step 2). Returns ok=false with no error
// when the loop should simply stop (EOF, a closing delimiter, or an
// unrecognized symbol left for the caller to report as a leftover
// token).
func (p *Parser) peekInfix() (infixOp, bool, error) {
	pos := p.pos
	pre := 0
	if p.peekAt(pos).Kind == token.Space {
		pre = len(p.peekAt(pos).Lexeme)
		pos++
	}
	tok := p.peekAt(pos)
	switch tok.Kind {
	case token.Symbol:
		desc, err := p.env.FindBinary(tok.Lexeme)
		if err != nil {
			return infixOp{}, false, nil
		}
		post := 0
		if p.peekAt(pos+1).Kind == token.Space {
			post = len(p.peekAt(pos + 1).Lexeme)
		}
		spaces := pre
		if post > spaces {
			spaces = post
		}
		return infixOp{name: tok.Lexeme, desc: desc, priority: desc.BinaryPriority, spaces: spaces}, true, nil

	case token.LParen, token.Literal, token.Identifier:
		desc, err := p.env.FindBinary("*")
		if err != nil {
			return infixOp{}, false, fmt.Errorf("parse: no binary \"*\" in environment")
		}
		return infixOp{name: "*", desc: desc, priority: desc.BinaryPriority, spaces: pre}, true, nil

	default:
		return infixOp{}, false, nil
	}
}

// commitInfix advances past whatever peekInfix looked at: the
// operator symbol and its surrounding spaces for an explicit infix, or
// just the leading space (if any) for a synthesized implicit
// multiplication — the triggering token itself is left for the
// following exprBP(right) call to consume as its LHS.
func (p *Parser) commitInfix(op infixOp) {
	p.skipSpace()
	if p.peek().Kind == token.Symbol && p.peek().Lexeme == op.name {
		p.advance()
		p.skipSpace()
	}
}
