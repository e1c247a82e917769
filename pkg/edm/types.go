/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package edm

import (
	"fmt"
	"slices"
	"strings"
)

// # Implements:
//   - IPrimitiveType
type primitiveType struct {
	name   string
	kind   PrimitiveTypeKind
	facets []FacetDescription
}

// Creates and returns new primitive type with specified facet descriptions.
//
// # Panics:
//   - if name is empty,
//   - if kind is unknown,
//   - if facet descriptions contain duplicated names.
func NewPrimitiveType(name string, kind PrimitiveTypeKind, facets ...FacetDescription) IPrimitiveType {
	if name == "" {
		panic(ErrInvalid("empty primitive type name"))
	}
	if kind == PrimitiveTypeKind_null || kind >= PrimitiveTypeKind_Count {
		panic(ErrInvalid("primitive kind «%v» for type «%s»", kind, name))
	}
	ff := slices.Clone(facets)
	slices.SortFunc(ff, func(a, b FacetDescription) int { return strings.Compare(a.Name, b.Name) })
	for i := 1; i < len(ff); i++ {
		if ff[i].Name == ff[i-1].Name {
			panic(ErrAlreadyExists("facet «%s» in type «%s»", ff[i].Name, name))
		}
	}
	return &primitiveType{name: name, kind: kind, facets: ff}
}

func (t *primitiveType) FullName() string { return t.name }

func (t *primitiveType) Kind() TypeKind { return TypeKind_Primitive }

func (t *primitiveType) PrimitiveKind() PrimitiveTypeKind { return t.kind }

func (t *primitiveType) FacetDescriptions() []FacetDescription { return slices.Clone(t.facets) }

func (t *primitiveType) String() string {
	return fmt.Sprintf("%s-type «%s»", t.kind.TrimString(), t.name)
}

// # Implements:
//   - IEnumType
type enumType struct {
	name       string
	underlying IPrimitiveType
}

// Creates and returns new enumeration type.
//
// # Panics:
//   - if name is empty,
//   - if underlying type is not integral.
func NewEnumType(name string, underlying IPrimitiveType) IEnumType {
	if name == "" {
		panic(ErrInvalid("empty enumeration type name"))
	}
	if underlying == nil || !underlying.PrimitiveKind().IsIntegral() {
		panic(ErrIncompatible("underlying type %v of enumeration «%s»", underlying, name))
	}
	return &enumType{name: name, underlying: underlying}
}

func (t *enumType) FullName() string { return t.name }

func (t *enumType) Kind() TypeKind { return TypeKind_Enum }

func (t *enumType) UnderlyingType() IPrimitiveType { return t.underlying }

func (t *enumType) String() string {
	return fmt.Sprintf("Enum-type «%s»", t.name)
}

// # Implements:
//   - IType
type structuralType struct {
	name string
	kind TypeKind
}

// Creates and returns new complex type.
func NewComplexType(name string) IType {
	return newStructuralType(name, TypeKind_Complex)
}

// Creates and returns new entity type.
func NewEntityType(name string) IType {
	return newStructuralType(name, TypeKind_Entity)
}

func newStructuralType(name string, kind TypeKind) *structuralType {
	if name == "" {
		panic(ErrInvalid("empty %s type name", kind.TrimString()))
	}
	return &structuralType{name: name, kind: kind}
}

func (t *structuralType) FullName() string { return t.name }

func (t *structuralType) Kind() TypeKind { return t.kind }

func (t *structuralType) String() string {
	return fmt.Sprintf("%s-type «%s»", t.kind.TrimString(), t.name)
}

// Returns primitive kind of type. Returns PrimitiveTypeKind_null if type is not primitive.
func PrimitiveKindOf(t IType) PrimitiveTypeKind {
	if p, ok := t.(IPrimitiveType); ok {
		return p.PrimitiveKind()
	}
	return PrimitiveTypeKind_null
}
