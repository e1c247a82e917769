/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package edm

import "fmt"

// Returns facet descriptions shared by all primitive types: Nullable and DefaultValue.
func GeneralFacetDescriptions() []FacetDescription {
	return []FacetDescription{
		{Name: FacetName_Nullable, Kind: FacetValueKind_Boolean, DefaultValue: true},
		{Name: FacetName_DefaultValue, Kind: FacetValueKind_Any},
	}
}

// Returns facet descriptions of enumeration types.
func EnumFacetDescriptions() []FacetDescription {
	return []FacetDescription{
		{Name: FacetName_Nullable, Kind: FacetValueKind_Boolean, DefaultValue: true},
	}
}

// Returns facet descriptions of conceptual primitive type of specified kind.
func EDMFacetDescriptions(kind PrimitiveTypeKind) []FacetDescription {
	dd := GeneralFacetDescriptions()

	switch {
	case kind == PrimitiveTypeKind_Binary:
		dd = append(dd,
			FacetDescription{Name: FacetName_MaxLength, Kind: FacetValueKind_Int32}.WithBounds(0, MaxEDMLength),
			FacetDescription{Name: FacetName_FixedLength, Kind: FacetValueKind_Boolean},
		)
	case kind == PrimitiveTypeKind_String:
		dd = append(dd,
			FacetDescription{Name: FacetName_MaxLength, Kind: FacetValueKind_Int32}.WithBounds(0, MaxEDMLength),
			FacetDescription{Name: FacetName_FixedLength, Kind: FacetValueKind_Boolean},
			FacetDescription{Name: FacetName_Unicode, Kind: FacetValueKind_Boolean},
		)
	case kind == PrimitiveTypeKind_Decimal:
		dd = append(dd,
			FacetDescription{Name: FacetName_Precision, Kind: FacetValueKind_Byte}.WithBounds(1, MaxEDMDecimalPrecision),
			FacetDescription{Name: FacetName_Scale, Kind: FacetValueKind_Byte}.WithBounds(0, MaxEDMDecimalScale),
		)
	case kind.IsTemporal():
		dd = append(dd,
			FacetDescription{Name: FacetName_Precision, Kind: FacetValueKind_Byte}.WithBounds(0, MaxEDMTimePrecision),
		)
	case kind.IsSpatial():
		var srid int32 = DefaultGeometrySRID
		if kind.IsGeography() {
			srid = DefaultGeographySRID
		}
		dd = append(dd,
			FacetDescription{Name: FacetName_SRID, Kind: FacetValueKind_Int32, DefaultValue: srid}.WithBounds(0, MaxSRID),
			FacetDescription{Name: FacetName_IsStrict, Kind: FacetValueKind_Boolean, DefaultValue: true},
		)
	}

	return dd
}

// Returns full name of conceptual primitive type, e.g. «Edm.Int32»
func EDMTypeName(kind PrimitiveTypeKind) string {
	return fmt.Sprintf("%s.%s", EDMNamespace, kind.TrimString())
}

var edmCatalog = newEDMCatalog()

func newEDMCatalog() ICatalog {
	types := make([]IType, 0, PrimitiveTypeKind_Count-1)
	for k := PrimitiveTypeKind_null + 1; k < PrimitiveTypeKind_Count; k++ {
		types = append(types, NewPrimitiveType(EDMTypeName(k), k, EDMFacetDescriptions(k)...))
	}
	return NewCatalog(types...)
}

// Returns catalog of conceptual primitive types «Edm.*».
func EDM() ICatalog { return edmCatalog }

// Returns conceptual primitive type of specified kind. Returns nil if kind is unknown.
func EDMPrimitiveType(kind PrimitiveTypeKind) IPrimitiveType {
	if t, ok := edmCatalog.Type(EDMTypeName(kind)).(IPrimitiveType); ok {
		return t
	}
	return nil
}
