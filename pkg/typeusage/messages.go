/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typeusage

const (
	msgBoolValueExpected   = "attribute «%s» value «%s» must be boolean: true, false, 1 or 0"
	msgIntegerExpected     = "attribute «%s» value «%s» must be an integer in range [%d, %d]"
	msgByteValueExpected   = "attribute «%s» value «%s» must be an integer in range [0, 255]"
	msgConstantFacet       = "facet «%s» is constant for type «%s» and can not be specified"
	msgRequiredFacet       = "facet «%s» is required by type «%s»"
	msgFacetNotAllowed     = "facet «%s» is not allowed for type «%s»"
	msgFacetOnNonScalar    = "facets are not allowed for non-scalar type «%s»"
	msgInvalidSize         = "MaxLength %v is out of range [%d, %d] for type «%s»"
	msgPrecisionOutOfRange = "Precision %v is out of range [%d, %d] for type «%s»"
	msgScaleOutOfRange     = "Scale %v is out of range [%d, %d] for type «%s»"
	msgBadPrecisionScale   = "Precision %d must be greater than or equal to Scale %d for type «%s»"
	msgInvalidSRID         = "SRID %v is out of range [%d, %d] for type «%s»"
	msgUnexpectedSpatial   = "spatial type «%s» requires IsStrict facet to be false"
	msgDefaultNotAllowed   = "default value is not allowed for type «%s»"
	msgInvalidDefault      = "default value «%s» is not valid for type «%s»: %v"
	msgInvalidDefaultRange = "default value «%s» is not valid for type «%s», expected value in range [%s, %s]"
	msgInvalidDefaultForm  = "default value «%s» is not valid for type «%s», expected format «%s»"
)
