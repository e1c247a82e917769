/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package csdl

import (
	"github.com/voedger/edmfacets/pkg/edm"
	"github.com/voedger/edmfacets/pkg/typeusage"
)

// Options of schema document compilation
type Options struct {
	// Document name used in error records, e.g. file name
	Document string

	// Kind of schemas. If Model_Auto, kind is detected by schema namespace
	Model Model

	// Catalog of store types, used by storage schemas. If nil, embedded sample manifest is used
	StoreCatalog edm.ICatalog

	// Overrides UseStrongSpatialTypes attribute of conceptual schemas if not nil
	UseStrongSpatialTypes *bool

	// Report missed required facets
	ComplainOnMissingFacet bool

	// Max count of property declarations validated concurrently. If zero, DefaultParallelism is used
	Parallelism int
}

// Compiled schema
type Schema struct {
	Namespace             string
	DataModel             edm.DataModel
	UseStrongSpatialTypes bool

	// Property declarations in document order
	Properties []Property
}

// Compiled property declaration
type Property struct {
	// Qualified name of declaring type, e.g. «Model.Customer»
	Owner string

	Name string

	// Type name as declared
	TypeName string

	// Resolved type, nil if type is not resolved
	Type edm.IType

	// Result of type usage building. Zero if type is not resolved
	Result typeusage.Result
}

// Returns qualified property name, e.g. «Model.Customer.Name»
func (p Property) QName() string { return p.Owner + "." + p.Name }
