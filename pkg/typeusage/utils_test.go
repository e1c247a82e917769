/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typeusage_test

import (
	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/edm"
)

var testElem = diag.ElementRef{Document: "test.ssdl", Element: "Property", Name: "Customer.Name"}

var (
	nvarchar = edm.NewPrimitiveType("nvarchar", edm.PrimitiveTypeKind_String,
		edm.FacetDescription{Name: edm.FacetName_Nullable, Kind: edm.FacetValueKind_Boolean, DefaultValue: true},
		edm.FacetDescription{Name: edm.FacetName_DefaultValue, Kind: edm.FacetValueKind_Any},
		edm.FacetDescription{Name: edm.FacetName_MaxLength, Kind: edm.FacetValueKind_Int32, DefaultValue: int32(4000)}.WithBounds(1, 4000),
		edm.FacetDescription{Name: edm.FacetName_Unicode, Kind: edm.FacetValueKind_Boolean, DefaultValue: true, IsConstant: true},
		edm.FacetDescription{Name: edm.FacetName_FixedLength, Kind: edm.FacetValueKind_Boolean, DefaultValue: false, IsConstant: true},
	)
	numeric = edm.NewPrimitiveType("numeric", edm.PrimitiveTypeKind_Decimal,
		edm.FacetDescription{Name: edm.FacetName_Nullable, Kind: edm.FacetValueKind_Boolean, DefaultValue: true},
		edm.FacetDescription{Name: edm.FacetName_Precision, Kind: edm.FacetValueKind_Byte, DefaultValue: byte(18), IsRequired: true}.WithBounds(1, 38),
		edm.FacetDescription{Name: edm.FacetName_Scale, Kind: edm.FacetValueKind_Byte, DefaultValue: byte(0)}.WithBounds(0, 38),
	)
	datetime2 = edm.NewPrimitiveType("datetime2", edm.PrimitiveTypeKind_DateTime,
		edm.FacetDescription{Name: edm.FacetName_Nullable, Kind: edm.FacetValueKind_Boolean, DefaultValue: true},
		edm.FacetDescription{Name: edm.FacetName_Precision, Kind: edm.FacetValueKind_Byte, DefaultValue: byte(7)}.WithBounds(0, 7),
	)
	geography = edm.NewPrimitiveType("geography", edm.PrimitiveTypeKind_Geography,
		edm.FacetDescription{Name: edm.FacetName_Nullable, Kind: edm.FacetValueKind_Boolean, DefaultValue: true},
		edm.FacetDescription{Name: edm.FacetName_SRID, Kind: edm.FacetValueKind_Int32, DefaultValue: int32(4326)}.WithBounds(0, 100000),
	)
	status   = edm.NewEnumType("Model.Status", edm.EDMPrimitiveType(edm.PrimitiveTypeKind_Int32))
	address  = edm.NewComplexType("Model.Address")
	customer = edm.NewEntityType("Model.Customer")

	storeCatalog = edm.NewCatalog(nvarchar, numeric, datetime2, geography, status, address, customer)
)

func edmType(k edm.PrimitiveTypeKind) edm.IType { return edm.EDMPrimitiveType(k) }
