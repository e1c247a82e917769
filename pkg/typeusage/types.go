/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typeusage

import (
	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/edm"
)

// Options of type usage building
type Options struct {
	// Model of schema document which contains property declaration
	DataModel edm.DataModel

	// Strong spatial types are used by schema. If false, absent IsStrict facet of spatial type usage is synthesized as false
	UseStrongSpatialTypes bool

	// Report missed required facets
	ComplainOnMissingFacet bool
}

// Result of type usage building
type Result struct {
	// Resolved type usage. Always constructed, even if errors occurred
	Usage edm.TypeUsage

	// Typed default value, nil if default is not supplied or invalid
	Default any

	// Raw default value text, empty if not supplied
	DefaultText string

	// Value of Nullable facet, true if not supplied
	Nullable bool

	StoreGeneratedPattern edm.StoreGeneratedPattern
	ConcurrencyMode       edm.ConcurrencyMode

	// Collation name, empty if not supplied
	Collation string

	// Errors reported by building, also added to builder sink. Collector errors are not included
	Errors []diag.Error
}

// Returns is result has no errors
func (r Result) OK() bool { return len(r.Errors) == 0 }
