/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package diag

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Reference to originating schema element
type ElementRef struct {
	// Schema document, e.g. file name. May be empty
	Document string

	// Element kind, e.g. «Property»
	Element string

	// Qualified element name, e.g. «Customer.Name»
	Name string
}

func (r ElementRef) String() string {
	s := r.Element
	if r.Name != "" {
		s += fmt.Sprintf(" «%s»", r.Name)
	}
	if r.Document != "" {
		s = r.Document + ": " + s
	}
	return s
}

// Error record
type Error struct {
	Code     ErrorCode
	Severity Severity
	Element  ElementRef
	Message  string
}

// Creates new error record with Error severity.
func NewError(code ErrorCode, elem ElementRef, msg string, args ...any) Error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return Error{
		Code:     code,
		Severity: Severity_Error,
		Element:  elem,
		Message:  msg,
	}
}

func (e Error) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Element, e.Code.TrimString(), e.Message)
}

func (e Error) Unwrap() error { return e.Code }

// Returns codes of errors in order of errors
func Codes(errs []Error) []ErrorCode {
	cc := make([]ErrorCode, 0, len(errs))
	for _, e := range errs {
		cc = append(cc, e.Code)
	}
	return cc
}

// Returns count of errors with specified code
func Count(errs []Error, code ErrorCode) int {
	cnt := 0
	for _, e := range errs {
		if e.Code == code {
			cnt++
		}
	}
	return cnt
}

// Returns is errors contain at least one record with Error severity
func HasErrors(errs []Error) bool {
	return slices.ContainsFunc(errs, func(e Error) bool { return e.Severity == Severity_Error })
}

// Sorts errors by document, element, name, code and message.
func Sort(errs []Error) {
	slices.SortStableFunc(errs, func(a, b Error) int {
		return cmp.Or(
			cmp.Compare(a.Element.Document, b.Element.Document),
			cmp.Compare(a.Element.Element, b.Element.Element),
			cmp.Compare(a.Element.Name, b.Element.Name),
			cmp.Compare(a.Code, b.Code),
			cmp.Compare(a.Message, b.Message),
		)
	})
}

// Joins errors into single error. Returns nil if errs is empty.
func Join(errs []Error) error {
	ee := make([]error, 0, len(errs))
	for _, e := range errs {
		ee = append(ee, e)
	}
	return errors.Join(ee...)
}
