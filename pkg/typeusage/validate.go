/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typeusage

import (
	"golang.org/x/exp/constraints"

	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/edm"
)

// Validates resolved facets of primitive type usage.
//
// Should be called only if Resolve was successful. Draft is used to check raw supplied facets.
func ValidateFacets(d Draft, u edm.TypeUsage, descs map[string]edm.FacetDescription, model edm.DataModel) []diag.Error {
	switch k := edm.PrimitiveKindOf(u.Type()); {
	case k == edm.PrimitiveTypeKind_Binary, k == edm.PrimitiveTypeKind_String:
		return validateLength(d.Element(), u, descs)
	case k == edm.PrimitiveTypeKind_Decimal:
		return validateDecimal(d.Element(), u, descs)
	case k.IsTemporal():
		return validateTemporal(d.Element(), u, descs)
	case k.IsSpatial():
		return validateSpatial(d, u, descs, model)
	}
	return nil
}

func validateLength(elem diag.ElementRef, u edm.TypeUsage, descs map[string]edm.FacetDescription) (errs []diag.Error) {
	v, ok := u.FacetValue(edm.FacetName_MaxLength)
	if !ok || v == edm.Unbounded {
		return nil
	}
	if e, ok := checkRange(elem, u, descs[edm.FacetName_MaxLength], v, diag.ErrorCode_InvalidSize, msgInvalidSize); !ok {
		errs = append(errs, e)
	}
	return errs
}

func validateDecimal(elem diag.ElementRef, u edm.TypeUsage, descs map[string]edm.FacetDescription) (errs []diag.Error) {
	p, hasPrecision := u.FacetValue(edm.FacetName_Precision)
	s, hasScale := u.FacetValue(edm.FacetName_Scale)

	precisionOK, scaleOK := true, true
	if hasPrecision {
		var e diag.Error
		if e, precisionOK = checkRange(elem, u, descs[edm.FacetName_Precision], p, diag.ErrorCode_PrecisionOutOfRange, msgPrecisionOutOfRange); !precisionOK {
			errs = append(errs, e)
		}
	}
	if hasScale {
		var e diag.Error
		if e, scaleOK = checkRange(elem, u, descs[edm.FacetName_Scale], s, diag.ErrorCode_ScaleOutOfRange, msgScaleOutOfRange); !scaleOK {
			errs = append(errs, e)
		}
	}

	if hasPrecision && hasScale && precisionOK && scaleOK {
		pv, _ := intValue(p)
		sv, _ := intValue(s)
		if pv < sv {
			errs = append(errs, diag.NewError(diag.ErrorCode_BadPrecisionAndScale, elem, msgBadPrecisionScale, pv, sv, u.Type().FullName()))
		}
	}
	return errs
}

func validateTemporal(elem diag.ElementRef, u edm.TypeUsage, descs map[string]edm.FacetDescription) (errs []diag.Error) {
	v, ok := u.FacetValue(edm.FacetName_Precision)
	if !ok {
		return nil
	}
	if e, ok := checkRange(elem, u, descs[edm.FacetName_Precision], v, diag.ErrorCode_PrecisionOutOfRange, msgPrecisionOutOfRange); !ok {
		errs = append(errs, e)
	}
	return errs
}

func validateSpatial(d Draft, u edm.TypeUsage, descs map[string]edm.FacetDescription, model edm.DataModel) (errs []diag.Error) {
	elem := d.Element()

	if _, ok := d.Facet(edm.FacetName_ConcurrencyMode); ok {
		errs = append(errs, diag.NewError(diag.ErrorCode_FacetNotAllowedByType, elem, msgFacetNotAllowed, edm.FacetName_ConcurrencyMode, u.Type().FullName()))
	}

	if model == edm.EntityDataModel {
		strict, ok := u.FacetValue(edm.FacetName_IsStrict)
		if !ok || strict != false {
			errs = append(errs, diag.NewError(diag.ErrorCode_UnexpectedSpatialType, elem, msgUnexpectedSpatial, u.Type().FullName()))
		}
	}

	if v, ok := u.FacetValue(edm.FacetName_SRID); ok && v != edm.Variable {
		if e, ok := checkRange(elem, u, descs[edm.FacetName_SRID], v, diag.ErrorCode_InvalidSystemReferenceId, msgInvalidSRID); !ok {
			errs = append(errs, e)
		}
	}
	return errs
}

// Checks integral facet value against inclusive bounds of description.
// Values of descriptions without bounds and non-integral values are not checked.
func checkRange(elem diag.ElementRef, u edm.TypeUsage, desc edm.FacetDescription, v any, code diag.ErrorCode, msg string) (diag.Error, bool) {
	min, max, ok := desc.Bounds()
	if !ok {
		return diag.Error{}, true
	}
	n, ok := intValue(v)
	if !ok || inRange(n, min, max) {
		return diag.Error{}, true
	}
	return diag.NewError(code, elem, msg, v, min, max, u.Type().FullName()), false
}

func inRange[T constraints.Integer](v, min, max T) bool {
	return v >= min && v <= max
}

func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int32:
		return int64(n), true
	case byte:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}
