// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env implements cwim's name→entry store: the environment
// that holds variable bindings and the function prelude. Unlike the
// teacher's value.Context, which is a stack of frames supporting
// nested function calls, Environment is a single flat table — cwim
// has no user-defined functions or lexical scoping (spec §4.3).
package env

import (
	"fmt"

	"github.com/p-davide/cwim/numeral"
)

// UnaryFunc is the body of a unary function descriptor.
type UnaryFunc func(numeral.Number) numeral.Number

// BinaryFunc is the body of a binary function descriptor.
type BinaryFunc func(a, b numeral.Number) numeral.Number

// Descriptor pairs a function body with its Pratt binding priority
// (spec §3: "lowest binds weakest"). Unary and binary priorities are
// kept separate because a few names (notably "+" and "-") carry both
// meanings at once, and spec §3 gives them different numbers: unary
// "+"/"-" bind at 6, their binary form at 4.
type Descriptor struct {
	UnaryPriority  int
	BinaryPriority int
	Unary          UnaryFunc
	Binary         BinaryFunc
}

// Entry is what a name resolves to: a constant Value, and/or a
// function descriptor. Names like "+" and "-" carry both a unary and
// a binary meaning simultaneously; the parser picks based on
// syntactic position (spec §4.3: "the parser chooses based on
// syntactic position").
type Entry struct {
	HasValue bool
	Value    numeral.Number
	Func     *Descriptor
}

// Environment is the flat name→Entry store, seeded at construction
// with the standard-library prelude and grown by user assignment.
type Environment struct {
	entries map[string]Entry
}

// New returns a fresh Environment seeded with the prelude (spec §4.3
// and §6's "Standard library").
func New() *Environment {
	e := &Environment{entries: make(map[string]Entry)}
	e.loadPrelude()
	return e
}

// FindValue resolves name to a constant Number.
func (e *Environment) FindValue(name string) (numeral.Number, error) {
	entry, ok := e.entries[name]
	if !ok || !entry.HasValue {
		return nil, fmt.Errorf("can't find %q", name)
	}
	return entry.Value, nil
}

// FindUnary resolves name to its unary descriptor.
func (e *Environment) FindUnary(name string) (*Descriptor, error) {
	entry, ok := e.entries[name]
	if !ok || entry.Func == nil || entry.Func.Unary == nil {
		return nil, fmt.Errorf("%q is not a unary function", name)
	}
	return entry.Func, nil
}

// FindBinary resolves name to its binary descriptor.
func (e *Environment) FindBinary(name string) (*Descriptor, error) {
	entry, ok := e.entries[name]
	if !ok || entry.Func == nil || entry.Func.Binary == nil {
		return nil, fmt.Errorf("%q is not a binary function", name)
	}
	return entry.Func, nil
}

// Assign binds name to v. It refuses to overwrite an existing entry
// (spec §3: "user assignments insert and refuse to overwrite"), with
// a single exception: "ans", which AssignAns updates freely after
// every successful expression (spec §4.7 step 5).
func (e *Environment) Assign(name string, v numeral.Number) error {
	if _, exists := e.entries[name]; exists {
		return fmt.Errorf("%q is already defined", name)
	}
	e.entries[name] = Entry{HasValue: true, Value: v}
	return nil
}

// AssignAns sets the special "ans" binding, overwriting any previous
// value.
func (e *Environment) AssignAns(v numeral.Number) {
	e.entries["ans"] = Entry{HasValue: true, Value: v}
}
