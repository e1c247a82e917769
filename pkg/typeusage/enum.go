/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typeusage

import (
	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/edm"
)

// Validates supplied facets of enumeration type usage.
//
// Only Nullable, StoreGeneratedPattern and ConcurrencyMode facets are allowed. Values are not range checked.
// Returned type usage contains Nullable facet only.
func ValidateEnumFacets(d Draft, t edm.IEnumType) (edm.TypeUsage, []diag.Error) {
	var errs []diag.Error
	for name := range d.Facets() {
		if !enumLegalFacets[name] {
			errs = append(errs, diag.NewError(diag.ErrorCode_FacetNotAllowedByType, d.Element(), msgFacetNotAllowed, name, t.FullName()))
		}
	}
	return edm.NewTypeUsage(t, nullableFacet(d)), errs
}

// Validates type usage of complex or entity type. Only Nullable facet is allowed.
func validateNonScalar(d Draft, t edm.IType) (edm.TypeUsage, []diag.Error) {
	var errs []diag.Error
	if d.HasUserDefinedFacets() {
		errs = append(errs, diag.NewError(diag.ErrorCode_FacetOnNonScalarType, d.Element(), msgFacetOnNonScalar, t.FullName()))
	}
	return edm.NewTypeUsage(t, nullableFacet(d)), errs
}

func nullableFacet(d Draft) edm.Facet {
	f := edm.Facet{Name: edm.FacetName_Nullable, Value: true}
	if v, ok := d.Facet(edm.FacetName_Nullable); ok {
		f.Value = v
	}
	return f
}
