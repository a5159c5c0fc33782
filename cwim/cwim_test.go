// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cwim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-davide/cwim/env"
)

func TestRunExpressionScenarios(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"234*5+7*8-18^3", "-4666"},
		{"234 * 5+7*8-18 ^ 3", "9298818"},
		{"2(+3+5)", "16"},
		{" -(6) * -(6)", "36"},
		{"2^128", "340282366920938463463374607431768211456"},
		{"-1/0", "NaN"},
	}
	for _, test := range tests {
		e := env.New()
		res, err := Run(test.in, e)
		require.NoError(t, err, "running %q", test.in)
		require.Equal(t, Expression, res.Kind)
		assert.Equal(t, test.want, res.Value.String(), "running %q", test.in)
	}
}

func TestRunBindsAns(t *testing.T) {
	e := env.New()
	_, err := Run("2+2", e)
	require.NoError(t, err)
	res, err := Run("ans*10", e)
	require.NoError(t, err)
	assert.Equal(t, "40", res.Value.String())
}

func TestRunLinearAssignmentBindsUnknown(t *testing.T) {
	e := env.New()
	res, err := Run("7x = 14", e)
	require.NoError(t, err)
	require.Equal(t, Assignment, res.Kind)
	assert.Equal(t, "x", res.Unknown)
	assert.Equal(t, "2", res.Value.String())

	query, err := Run("x", e)
	require.NoError(t, err)
	assert.Equal(t, "2", query.Value.String())
}

func TestRunQuadraticAssignmentReportsBothRoots(t *testing.T) {
	e := env.New()
	res, err := Run("x^2-5x+6 = 0", e)
	require.NoError(t, err)
	require.Len(t, res.Roots, 2)
	assert.Equal(t, "3", res.Roots[0].String())
	assert.Equal(t, "2", res.Roots[1].String())
	assert.Equal(t, "3", res.Value.String())
}

func TestRunAssignmentTwoUnknownsIsPolynomialError(t *testing.T) {
	e := env.New()
	_, err := Run("7x+5y = 12", e)
	require.Error(t, err)
	se, ok := err.(StatementError)
	require.True(t, ok)
	assert.Equal(t, "PolynomialError", se.Kind())
}

// Once bound, a name resolves to its Var value rather than to Unknown
// on any later reference, so a second "x = ..." is not a rebind
// attempt at the Assign layer (see env.TestAssignRefusesOverwrite for
// that guard) but a numeric equation that the new value must satisfy.
func TestRunReassigningBoundNameIsPolynomialContradiction(t *testing.T) {
	e := env.New()
	_, err := Run("x = 5", e)
	require.NoError(t, err)
	_, err = Run("x = 6", e)
	require.Error(t, err)
	se, ok := err.(StatementError)
	require.True(t, ok)
	assert.Equal(t, "PolynomialError", se.Kind())
}

func TestRunLexErrorOnUnknownCharacter(t *testing.T) {
	e := env.New()
	_, err := Run("2 ~ 3", e)
	require.Error(t, err)
	se, ok := err.(StatementError)
	require.True(t, ok)
	assert.Equal(t, "LexError", se.Kind())
}

func TestRunBlankAndCommentLinesAreNoOps(t *testing.T) {
	e := env.New()
	res, err := Run("", e)
	assert.NoError(t, err)
	assert.Nil(t, res)

	res, err = Run("# just a comment", e)
	assert.NoError(t, err)
	assert.Nil(t, res)
}
