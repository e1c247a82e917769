/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package require

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// Constraint checks value of panic or error.
type Constraint assert.ValueAssertionFunc

// Returns constraint that checks value rendered by fmt.Sprint contains substring.
func Has(substr interface{}, msgAndArgs ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		return assert.Contains(t, fmt.Sprint(v), fmt.Sprint(substr), msgAndArgs...)
	}
}

// Returns constraint that checks value rendered by fmt.Sprint does not contain substring.
func NotHas(substr interface{}, msgAndArgs ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		return assert.NotContains(t, fmt.Sprint(v), fmt.Sprint(substr), msgAndArgs...)
	}
}

// Returns constraint that checks value is error and its chain matches target.
func Is(target error, msgAndArgs ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		err, ok := v.(error)
		if !ok {
			return assert.Fail(t, fmt.Sprintf("«%#v» is not an error", v), msgAndArgs...)
		}
		return assert.ErrorIs(t, err, target, msgAndArgs...)
	}
}

// Returns constraint that checks value is not error or its chain does not match target.
func NotIs(target error, msgAndArgs ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		if err, ok := v.(error); ok {
			return assert.NotErrorIs(t, err, target, msgAndArgs...)
		}
		return true
	}
}

// PanicsWith asserts that f panics and recovered value satisfies all constraints.
func PanicsWith(t assert.TestingT, f func(), c ...Constraint) bool {
	panicked, recovered := func() (panicked bool, recovered any) {
		defer func() {
			if recovered = recover(); recovered != nil {
				panicked = true
			}
		}()
		f()
		return false, nil
	}()

	if !panicked {
		return assert.Fail(t, "panic expected")
	}
	return satisfies(t, recovered, c)
}

// ErrorWith asserts that error is not nil and satisfies all constraints.
func ErrorWith(t assert.TestingT, e error, c ...Constraint) bool {
	if e == nil {
		return assert.Fail(t, "error expected")
	}
	return satisfies(t, e, c)
}

func satisfies(t assert.TestingT, v any, c []Constraint) bool {
	for _, constraint := range c {
		if !constraint(t, v) {
			return false
		}
	}
	return true
}
