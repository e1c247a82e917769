/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package edm

import (
	"strconv"
	"strings"
)

// Primitive (scalar) type kind enumeration
type PrimitiveTypeKind uint8

const (
	// null - no-value type. Returned when the requested kind does not exist
	PrimitiveTypeKind_null PrimitiveTypeKind = iota

	PrimitiveTypeKind_Binary
	PrimitiveTypeKind_Boolean
	PrimitiveTypeKind_Byte
	PrimitiveTypeKind_DateTime
	PrimitiveTypeKind_Decimal
	PrimitiveTypeKind_Double
	PrimitiveTypeKind_Guid
	PrimitiveTypeKind_Single
	PrimitiveTypeKind_SByte
	PrimitiveTypeKind_Int16
	PrimitiveTypeKind_Int32
	PrimitiveTypeKind_Int64
	PrimitiveTypeKind_String
	PrimitiveTypeKind_Time
	PrimitiveTypeKind_DateTimeOffset

	PrimitiveTypeKind_Geometry
	PrimitiveTypeKind_Geography
	PrimitiveTypeKind_GeometryPoint
	PrimitiveTypeKind_GeometryLineString
	PrimitiveTypeKind_GeometryPolygon
	PrimitiveTypeKind_GeometryMultiPoint
	PrimitiveTypeKind_GeometryMultiLineString
	PrimitiveTypeKind_GeometryMultiPolygon
	PrimitiveTypeKind_GeometryCollection
	PrimitiveTypeKind_GeographyPoint
	PrimitiveTypeKind_GeographyLineString
	PrimitiveTypeKind_GeographyPolygon
	PrimitiveTypeKind_GeographyMultiPoint
	PrimitiveTypeKind_GeographyMultiLineString
	PrimitiveTypeKind_GeographyMultiPolygon
	PrimitiveTypeKind_GeographyCollection

	PrimitiveTypeKind_Count
)

var primitiveTypeKindNames = [PrimitiveTypeKind_Count]string{
	"PrimitiveTypeKind_null",
	"PrimitiveTypeKind_Binary",
	"PrimitiveTypeKind_Boolean",
	"PrimitiveTypeKind_Byte",
	"PrimitiveTypeKind_DateTime",
	"PrimitiveTypeKind_Decimal",
	"PrimitiveTypeKind_Double",
	"PrimitiveTypeKind_Guid",
	"PrimitiveTypeKind_Single",
	"PrimitiveTypeKind_SByte",
	"PrimitiveTypeKind_Int16",
	"PrimitiveTypeKind_Int32",
	"PrimitiveTypeKind_Int64",
	"PrimitiveTypeKind_String",
	"PrimitiveTypeKind_Time",
	"PrimitiveTypeKind_DateTimeOffset",
	"PrimitiveTypeKind_Geometry",
	"PrimitiveTypeKind_Geography",
	"PrimitiveTypeKind_GeometryPoint",
	"PrimitiveTypeKind_GeometryLineString",
	"PrimitiveTypeKind_GeometryPolygon",
	"PrimitiveTypeKind_GeometryMultiPoint",
	"PrimitiveTypeKind_GeometryMultiLineString",
	"PrimitiveTypeKind_GeometryMultiPolygon",
	"PrimitiveTypeKind_GeometryCollection",
	"PrimitiveTypeKind_GeographyPoint",
	"PrimitiveTypeKind_GeographyLineString",
	"PrimitiveTypeKind_GeographyPolygon",
	"PrimitiveTypeKind_GeographyMultiPoint",
	"PrimitiveTypeKind_GeographyMultiLineString",
	"PrimitiveTypeKind_GeographyMultiPolygon",
	"PrimitiveTypeKind_GeographyCollection",
}

func (k PrimitiveTypeKind) String() string {
	if k < PrimitiveTypeKind_Count {
		return primitiveTypeKindNames[k]
	}
	return "PrimitiveTypeKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

func (k PrimitiveTypeKind) MarshalText() ([]byte, error) {
	var s string
	if k < PrimitiveTypeKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders an PrimitiveTypeKind in human-readable form, without "PrimitiveTypeKind_" prefix,
// suitable for debugging or error messages
func (k PrimitiveTypeKind) TrimString() string {
	const pref = "PrimitiveTypeKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Returns is kind is one of geography or geometry kinds
func (k PrimitiveTypeKind) IsSpatial() bool {
	return k.IsGeometry() || k.IsGeography()
}

func (k PrimitiveTypeKind) IsGeometry() bool {
	switch k {
	case PrimitiveTypeKind_Geometry,
		PrimitiveTypeKind_GeometryPoint,
		PrimitiveTypeKind_GeometryLineString,
		PrimitiveTypeKind_GeometryPolygon,
		PrimitiveTypeKind_GeometryMultiPoint,
		PrimitiveTypeKind_GeometryMultiLineString,
		PrimitiveTypeKind_GeometryMultiPolygon,
		PrimitiveTypeKind_GeometryCollection:
		return true
	}
	return false
}

func (k PrimitiveTypeKind) IsGeography() bool {
	switch k {
	case PrimitiveTypeKind_Geography,
		PrimitiveTypeKind_GeographyPoint,
		PrimitiveTypeKind_GeographyLineString,
		PrimitiveTypeKind_GeographyPolygon,
		PrimitiveTypeKind_GeographyMultiPoint,
		PrimitiveTypeKind_GeographyMultiLineString,
		PrimitiveTypeKind_GeographyMultiPolygon,
		PrimitiveTypeKind_GeographyCollection:
		return true
	}
	return false
}

// Returns is kind is DateTime, Time or DateTimeOffset
func (k PrimitiveTypeKind) IsTemporal() bool {
	switch k {
	case PrimitiveTypeKind_DateTime, PrimitiveTypeKind_Time, PrimitiveTypeKind_DateTimeOffset:
		return true
	}
	return false
}

// Returns is kind may be used as underlying type of enumeration
func (k PrimitiveTypeKind) IsIntegral() bool {
	switch k {
	case PrimitiveTypeKind_Byte,
		PrimitiveTypeKind_SByte,
		PrimitiveTypeKind_Int16,
		PrimitiveTypeKind_Int32,
		PrimitiveTypeKind_Int64:
		return true
	}
	return false
}

// Parses kind from trimmed name, e.g. «Int32». Returns false if name is unknown.
func ParsePrimitiveTypeKind(name string) (PrimitiveTypeKind, bool) {
	for k := PrimitiveTypeKind_null + 1; k < PrimitiveTypeKind_Count; k++ {
		if k.TrimString() == name {
			return k, true
		}
	}
	return PrimitiveTypeKind_null, false
}
