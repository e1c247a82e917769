/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package edm

import "iter"

// Type of schema model.
//
// Ref. to types.go for implementation
type IType interface {
	// Returns full type name, e.g. «Edm.String» or «nvarchar»
	FullName() string

	Kind() TypeKind
}

// Primitive (scalar) type.
type IPrimitiveType interface {
	IType

	PrimitiveKind() PrimitiveTypeKind

	// Returns facet descriptions declared by type, sorted by facet name.
	FacetDescriptions() []FacetDescription
}

// Enumeration type.
type IEnumType interface {
	IType

	// Returns integral primitive type of enumeration members
	UnderlyingType() IPrimitiveType
}

// Catalog of types with their facet descriptions.
//
// Ref. to catalog.go for implementation
type ICatalog interface {
	// Returns type by full name. Returns nil if not found.
	Type(name string) IType

	// Returns all types sorted by full name.
	Types() iter.Seq[IType]

	// Returns facet descriptions of specified type, keyed by facet name.
	//
	// Returned map is a copy owned by caller.
	FacetDescriptions(IType) map[string]FacetDescription
}
