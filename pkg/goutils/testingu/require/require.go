/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package require

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Require extends testify require assertions with constraint-based checks of panics and errors.
type Require struct {
	*require.Assertions
	t *testing.T
}

func New(t *testing.T) *Require {
	return &Require{
		Assertions: require.New(t),
		t:          t,
	}
}

func (r *Require) Has(substr interface{}, msgAndArgs ...interface{}) Constraint {
	return Has(substr, msgAndArgs...)
}

func (r *Require) NotHas(substr interface{}, msgAndArgs ...interface{}) Constraint {
	return NotHas(substr, msgAndArgs...)
}

func (r *Require) Is(target error, msgAndArgs ...interface{}) Constraint {
	return Is(target, msgAndArgs...)
}

func (r *Require) NotIs(target error, msgAndArgs ...interface{}) Constraint {
	return NotIs(target, msgAndArgs...)
}

// PanicsWith asserts that f panics and recovered value satisfies all constraints.
//
//	require := require.New(t)
//	require.PanicsWith(
//		func() { edm.NewTypeUsage(nil) },
//		require.Is(edm.ErrInvalidError),
//		require.Has("nil type"))
func (r *Require) PanicsWith(f func(), c ...Constraint) {
	if !PanicsWith(r.t, f, c...) {
		r.t.FailNow()
	}
}

// ErrorWith asserts that error is not nil and satisfies all constraints.
func (r *Require) ErrorWith(e error, c ...Constraint) {
	if !ErrorWith(r.t, e, c...) {
		r.t.FailNow()
	}
}
