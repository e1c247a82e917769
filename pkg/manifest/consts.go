/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package manifest

import "github.com/voedger/edmfacets/pkg/edm"

// Value kinds of facets which can be declared by manifest
var facetKinds = map[string]edm.FacetValueKind{
	edm.FacetName_MaxLength:   edm.FacetValueKind_Int32,
	edm.FacetName_FixedLength: edm.FacetValueKind_Boolean,
	edm.FacetName_Unicode:     edm.FacetValueKind_Boolean,
	edm.FacetName_Collation:   edm.FacetValueKind_String,
	edm.FacetName_Precision:   edm.FacetValueKind_Byte,
	edm.FacetName_Scale:       edm.FacetValueKind_Byte,
	edm.FacetName_SRID:        edm.FacetValueKind_Int32,
	edm.FacetName_IsStrict:    edm.FacetValueKind_Boolean,
}

// Sentinel literals allowed as facet defaults
var sentinels = map[string]map[string]edm.Sentinel{
	edm.FacetName_MaxLength: {string(edm.Unbounded): edm.Unbounded},
	edm.FacetName_SRID:      {string(edm.Variable): edm.Variable},
}
