// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns a token stream into an S-form expression tree
// using a whitespace-aware Pratt parser: unlike the teacher's
// parse.Parser, binding power here is a (spaces, priority) pair, not a
// bare priority, so "2 * 3+4" and "2*3+4" group differently.
package parse

import (
	"fmt"
	"strings"

	"github.com/p-davide/cwim/env"
	"github.com/p-davide/cwim/numeral"
)

// Expr is a node in the S-form expression tree: a constant, a
// function application, or a free name awaiting polynomial solving.
type Expr interface {
	String() string
	exprNode()
}

// Var is a leaf holding a constant value.
type Var struct {
	N numeral.Number
}

func (v *Var) String() string { return v.N.String() }
func (*Var) exprNode()        {}

// Fun is a function application: Desc.Unary is used when len(Args) ==
// 1, Desc.Binary when len(Args) == 2.
type Fun struct {
	Name string
	Desc *env.Descriptor
	Args []Expr
}

func (f *Fun) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%s", f.Name)
	for _, a := range f.Args {
		fmt.Fprintf(&b, " %s", a)
	}
	b.WriteString(")")
	return b.String()
}
func (*Fun) exprNode() {}

// Unknown is a free variable name with no binding in the environment;
// it can only be resolved by the poly package's equation solver, never
// by eval.
type Unknown struct {
	Name string
}

func (u *Unknown) String() string { return u.Name }
func (*Unknown) exprNode()        {}
