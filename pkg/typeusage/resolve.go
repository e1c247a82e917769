/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typeusage

import (
	"maps"
	"slices"

	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/edm"
)

// Resolves supplied facets of draft against facet descriptions of type.
//
// Returned type usage contains exactly one facet per description:
//   - constant facet always has description default; supplying it is an error,
//   - supplied facet has supplied value,
//   - missed facet has description default; missed required facet is an error if complainOnMissingFacet.
//
// Supplied facets without description are errors, except StoreGeneratedPattern, ConcurrencyMode
// and Collation for String types. These facets are not included in type usage.
//
// Type usage is always constructed, resolution is successful if no errors returned.
func Resolve(d Draft, t edm.IType, descs map[string]edm.FacetDescription, complainOnMissingFacet bool) (edm.TypeUsage, []diag.Error) {
	var errs []diag.Error

	facets := make([]edm.Facet, 0, len(descs))
	for _, name := range slices.Sorted(maps.Keys(descs)) {
		desc := descs[name]
		v, supplied := d.Facet(name)
		switch {
		case desc.IsConstant:
			if supplied {
				errs = append(errs, diag.NewError(diag.ErrorCode_ConstantFacetSpecifiedInSchema, d.Element(), msgConstantFacet, name, t.FullName()))
			}
			facets = append(facets, edm.Facet{Name: name, Value: desc.DefaultValue})
		case supplied:
			facets = append(facets, edm.Facet{Name: name, Value: v})
		default:
			if desc.IsRequired && complainOnMissingFacet {
				errs = append(errs, diag.NewError(diag.ErrorCode_RequiredFacetMissing, d.Element(), msgRequiredFacet, name, t.FullName()))
			}
			facets = append(facets, edm.Facet{Name: name, Value: desc.DefaultValue})
		}
	}

	for name := range d.Facets() {
		if _, ok := descs[name]; ok {
			continue
		}
		if !isLegalUndescribedFacet(name, t) {
			errs = append(errs, diag.NewError(diag.ErrorCode_FacetNotAllowedByType, d.Element(), msgFacetNotAllowed, name, t.FullName()))
		}
	}

	return edm.NewTypeUsage(t, facets...), errs
}

func isLegalUndescribedFacet(name string, t edm.IType) bool {
	if alwaysLegalFacets[name] {
		return true
	}
	return name == edm.FacetName_Collation && edm.PrimitiveKindOf(t) == edm.PrimitiveTypeKind_String
}
