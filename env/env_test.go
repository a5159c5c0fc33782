// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-davide/cwim/numeral"
)

func TestPreludeArithmetic(t *testing.T) {
	e := New()
	plus, err := e.FindBinary("+")
	require.NoError(t, err)
	got := plus.Binary(numeral.FromInt64(2), numeral.FromInt64(3))
	assert.Equal(t, "5", got.String())
}

func TestPreludeUnaryNegation(t *testing.T) {
	e := New()
	minus, err := e.FindUnary("-")
	require.NoError(t, err)
	got := minus.Unary(numeral.FromInt64(5))
	assert.Equal(t, "-5", got.String())
}

func TestPreludeConstantPi(t *testing.T) {
	e := New()
	pi, err := e.FindValue("pi")
	require.NoError(t, err)
	assert.InDelta(t, 3.14159265, numeral.ToFloat64(pi), 1e-6)
}

func TestAliasesShareDescriptor(t *testing.T) {
	e := New()
	acos, err := e.FindUnary("acos")
	require.NoError(t, err)
	arccos, err := e.FindUnary("arccos")
	require.NoError(t, err)
	assert.Same(t, acos, arccos)
}

func TestAssignRefusesOverwrite(t *testing.T) {
	e := New()
	require.NoError(t, e.Assign("x", numeral.FromInt64(2)))
	err := e.Assign("x", numeral.FromInt64(3))
	assert.Error(t, err)
	v, err := e.FindValue("x")
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())
}

func TestAssignAnsOverwritesFreely(t *testing.T) {
	e := New()
	e.AssignAns(numeral.FromInt64(1))
	e.AssignAns(numeral.FromInt64(2))
	v, err := e.FindValue("ans")
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())
}

func TestFindValueOnUnknownName(t *testing.T) {
	e := New()
	_, err := e.FindValue("nope")
	assert.Error(t, err)
}

func TestFindUnaryRejectsBinaryOnlyName(t *testing.T) {
	e := New()
	_, err := e.FindUnary("*")
	assert.Error(t, err)
}
