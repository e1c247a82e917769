/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package diag

import (
	"strconv"
	"strings"
)

// Closed enumeration of schema error codes.
//
// ErrorCode implements error, so records can be matched with errors.Is(record, code).
type ErrorCode uint16

const (
	// null - no-value code. Returned when the requested code does not exist
	ErrorCode_null ErrorCode = iota

	// Attribute literals
	ErrorCode_IntegerExpected
	ErrorCode_ByteValueExpected
	ErrorCode_BoolValueExpected

	// Structural facet errors
	ErrorCode_FacetNotAllowedByType
	ErrorCode_ConstantFacetSpecifiedInSchema
	ErrorCode_RequiredFacetMissing
	ErrorCode_FacetOnNonScalarType

	// Range errors
	ErrorCode_InvalidSize
	ErrorCode_PrecisionOutOfRange
	ErrorCode_ScaleOutOfRange
	ErrorCode_BadPrecisionAndScale
	ErrorCode_InvalidSystemReferenceId

	// Spatial errors
	ErrorCode_UnexpectedSpatialType

	// Default value errors
	ErrorCode_DefaultNotAllowed
	ErrorCode_InvalidDefaultBinaryWithNoMaxLength
	ErrorCode_InvalidDefaultBoolean
	ErrorCode_InvalidDefaultByte
	ErrorCode_InvalidDefaultSByte
	ErrorCode_InvalidDefaultInt16
	ErrorCode_InvalidDefaultInt32
	ErrorCode_InvalidDefaultInt64
	ErrorCode_InvalidDefaultSingle
	ErrorCode_InvalidDefaultDouble
	ErrorCode_InvalidDefaultDecimal
	ErrorCode_InvalidDefaultGuid
	ErrorCode_InvalidDefaultDateTime
	ErrorCode_InvalidDefaultTime
	ErrorCode_InvalidDefaultDateTimeOffset

	// Schema document errors
	ErrorCode_UnexpectedXmlAttribute
	ErrorCode_InvalidAttributeValue
	ErrorCode_UnresolvedType

	ErrorCode_Count
)

var errorCodeNames = [ErrorCode_Count]string{
	"ErrorCode_null",
	"ErrorCode_IntegerExpected",
	"ErrorCode_ByteValueExpected",
	"ErrorCode_BoolValueExpected",
	"ErrorCode_FacetNotAllowedByType",
	"ErrorCode_ConstantFacetSpecifiedInSchema",
	"ErrorCode_RequiredFacetMissing",
	"ErrorCode_FacetOnNonScalarType",
	"ErrorCode_InvalidSize",
	"ErrorCode_PrecisionOutOfRange",
	"ErrorCode_ScaleOutOfRange",
	"ErrorCode_BadPrecisionAndScale",
	"ErrorCode_InvalidSystemReferenceId",
	"ErrorCode_UnexpectedSpatialType",
	"ErrorCode_DefaultNotAllowed",
	"ErrorCode_InvalidDefaultBinaryWithNoMaxLength",
	"ErrorCode_InvalidDefaultBoolean",
	"ErrorCode_InvalidDefaultByte",
	"ErrorCode_InvalidDefaultSByte",
	"ErrorCode_InvalidDefaultInt16",
	"ErrorCode_InvalidDefaultInt32",
	"ErrorCode_InvalidDefaultInt64",
	"ErrorCode_InvalidDefaultSingle",
	"ErrorCode_InvalidDefaultDouble",
	"ErrorCode_InvalidDefaultDecimal",
	"ErrorCode_InvalidDefaultGuid",
	"ErrorCode_InvalidDefaultDateTime",
	"ErrorCode_InvalidDefaultTime",
	"ErrorCode_InvalidDefaultDateTimeOffset",
	"ErrorCode_UnexpectedXmlAttribute",
	"ErrorCode_InvalidAttributeValue",
	"ErrorCode_UnresolvedType",
}

func (c ErrorCode) String() string {
	if c < ErrorCode_Count {
		return errorCodeNames[c]
	}
	return "ErrorCode(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// Renders an ErrorCode in human-readable form, without "ErrorCode_" prefix,
// suitable for debugging or error messages
func (c ErrorCode) TrimString() string {
	const pref = "ErrorCode_"
	return strings.TrimPrefix(c.String(), pref)
}

func (c ErrorCode) Error() string { return c.TrimString() }

func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.TrimString()), nil
}

// Severity of error record
type Severity uint8

const (
	Severity_Error Severity = iota
	Severity_Warning
	Severity_Info

	Severity_Count
)

var severityNames = [Severity_Count]string{"Error", "Warning", "Info"}

func (s Severity) String() string {
	if s < Severity_Count {
		return severityNames[s]
	}
	return "Severity(" + strconv.FormatUint(uint64(s), 10) + ")"
}
