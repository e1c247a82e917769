/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package edm

import (
	"iter"
	"maps"
	"slices"

	"github.com/voedger/edmfacets/pkg/objcache"
)

// Size of facet descriptions cache per catalog
const descriptionsCacheSize = 256

// # Implements:
//   - ICatalog
type catalog struct {
	types map[string]IType
	names []string
	descs objcache.ICache[IType, map[string]FacetDescription]
}

// Creates and returns new catalog with specified types.
//
// # Panics:
//   - if types contain duplicated names.
func NewCatalog(types ...IType) ICatalog {
	c := &catalog{
		types: make(map[string]IType, len(types)),
		names: make([]string, 0, len(types)),
		descs: objcache.New[IType, map[string]FacetDescription](descriptionsCacheSize, nil),
	}
	for _, t := range types {
		n := t.FullName()
		if _, exists := c.types[n]; exists {
			panic(ErrAlreadyExists("type «%s» in catalog", n))
		}
		c.types[n] = t
		c.names = append(c.names, n)
	}
	slices.Sort(c.names)
	return c
}

func (c *catalog) Type(name string) IType {
	if t, ok := c.types[name]; ok {
		return t
	}
	return nil
}

func (c *catalog) Types() iter.Seq[IType] {
	return func(yield func(IType) bool) {
		for _, n := range c.names {
			if !yield(c.types[n]) {
				return
			}
		}
	}
}

func (c *catalog) FacetDescriptions(t IType) map[string]FacetDescription {
	if t == nil {
		return nil
	}
	return maps.Clone(c.descs.GetOrMake(t, FacetDescriptionsOf))
}

// Returns facet descriptions of type keyed by facet name.
//
// Primitive types return their own descriptions, enumerations return Nullable description,
// structural types have no facet descriptions.
func FacetDescriptionsOf(t IType) map[string]FacetDescription {
	var dd []FacetDescription
	switch tt := t.(type) {
	case IPrimitiveType:
		dd = tt.FacetDescriptions()
	case IEnumType:
		dd = EnumFacetDescriptions()
	}
	m := make(map[string]FacetDescription, len(dd))
	for _, d := range dd {
		m[d.Name] = d
	}
	return m
}
