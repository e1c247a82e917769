/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package edm

import (
	"strconv"
	"strings"
)

// Built-in type kind enumeration
type TypeKind uint8

const (
	// null - no-value type. Returned when the requested kind does not exist
	TypeKind_null TypeKind = iota

	// Scalar types: strings, numbers, temporal, spatial, etc.
	TypeKind_Primitive

	// Enumeration types with integral underlying primitive type
	TypeKind_Enum

	// Non-scalar structural types
	TypeKind_Complex
	TypeKind_Entity

	TypeKind_Count
)

var typeKindNames = [TypeKind_Count]string{
	"TypeKind_null",
	"TypeKind_Primitive",
	"TypeKind_Enum",
	"TypeKind_Complex",
	"TypeKind_Entity",
}

func (k TypeKind) String() string {
	if k < TypeKind_Count {
		return typeKindNames[k]
	}
	return "TypeKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Renders an TypeKind in human-readable form, without "TypeKind_" prefix,
// suitable for debugging or error messages
func (k TypeKind) TrimString() string {
	const pref = "TypeKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Returns is kind is primitive or enumeration
func (k TypeKind) IsScalar() bool {
	return k == TypeKind_Primitive || k == TypeKind_Enum
}
