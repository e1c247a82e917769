/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package edm

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Immutable pair of type and its resolved facet values.
type TypeUsage struct {
	typ    IType
	facets []Facet
}

// Creates and returns new type usage. Facets are sorted by name.
//
// # Panics:
//   - if type is nil,
//   - if facets contain duplicated names.
func NewTypeUsage(t IType, facets ...Facet) TypeUsage {
	if t == nil {
		panic(ErrInvalid("nil type for type usage"))
	}
	ff := slices.Clone(facets)
	slices.SortFunc(ff, func(a, b Facet) int { return strings.Compare(a.Name, b.Name) })
	for i := 1; i < len(ff); i++ {
		if ff[i].Name == ff[i-1].Name {
			panic(ErrAlreadyExists("facet «%s» in type usage of «%s»", ff[i].Name, t.FullName()))
		}
	}
	return TypeUsage{typ: t, facets: ff}
}

func (u TypeUsage) Type() IType { return u.typ }

// Returns facet by name. Returns false if type usage has no such facet.
func (u TypeUsage) Facet(name string) (Facet, bool) {
	i, ok := slices.BinarySearchFunc(u.facets, name, func(f Facet, n string) int { return strings.Compare(f.Name, n) })
	if !ok {
		return Facet{}, false
	}
	return u.facets[i], true
}

// Returns facet value by name. Returns false if facet is absent or has no value.
func (u TypeUsage) FacetValue(name string) (any, bool) {
	f, ok := u.Facet(name)
	if !ok || f.Value == nil {
		return nil, false
	}
	return f.Value, true
}

// Returns facets sorted by name.
func (u TypeUsage) Facets() iter.Seq[Facet] {
	return func(yield func(Facet) bool) {
		for _, f := range u.facets {
			if !yield(f) {
				return
			}
		}
	}
}

func (u TypeUsage) FacetCount() int { return len(u.facets) }

// Returns copy of type usage with specified facet added or replaced.
func (u TypeUsage) With(f Facet) TypeUsage {
	ff := make([]Facet, 0, len(u.facets)+1)
	for _, e := range u.facets {
		if e.Name != f.Name {
			ff = append(ff, e)
		}
	}
	return NewTypeUsage(u.typ, append(ff, f)...)
}

// Returns value of Nullable facet. Type usage without Nullable facet is nullable.
func (u TypeUsage) IsNullable() bool {
	if v, ok := u.FacetValue(FacetName_Nullable); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return true
}

func (u TypeUsage) String() string {
	if u.typ == nil {
		return "null type usage"
	}
	if len(u.facets) == 0 {
		return u.typ.FullName()
	}
	ss := make([]string, 0, len(u.facets))
	for _, f := range u.facets {
		ss = append(ss, fmt.Sprint(f))
	}
	return fmt.Sprintf("%s(%s)", u.typ.FullName(), strings.Join(ss, ", "))
}
