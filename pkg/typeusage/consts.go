/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typeusage

import "github.com/voedger/edmfacets/pkg/edm"

// Schema attribute names handled by collector
const (
	Attr_Nullable              = edm.FacetName_Nullable
	Attr_DefaultValue          = edm.FacetName_DefaultValue
	Attr_MaxLength             = edm.FacetName_MaxLength
	Attr_FixedLength           = edm.FacetName_FixedLength
	Attr_Unicode               = edm.FacetName_Unicode
	Attr_Collation             = edm.FacetName_Collation
	Attr_Precision             = edm.FacetName_Precision
	Attr_Scale                 = edm.FacetName_Scale
	Attr_SRID                  = edm.FacetName_SRID
	Attr_StoreGeneratedPattern = edm.FacetName_StoreGeneratedPattern
	Attr_ConcurrencyMode       = edm.FacetName_ConcurrencyMode
)

// Literal of unbounded MaxLength
const maxLengthLiteral = "Max"

// Literal of variable SRID
const variableSRIDLiteral = "Variable"

// Facets are legal for every type usage, even if type does not describe them
var alwaysLegalFacets = map[string]bool{
	edm.FacetName_StoreGeneratedPattern: true,
	edm.FacetName_ConcurrencyMode:       true,
}

// Facets are legal for enumeration type usage
var enumLegalFacets = map[string]bool{
	edm.FacetName_Nullable:              true,
	edm.FacetName_StoreGeneratedPattern: true,
	edm.FacetName_ConcurrencyMode:       true,
}

func isUserDefinedFacet(name string) bool {
	return name != edm.FacetName_Nullable
}
