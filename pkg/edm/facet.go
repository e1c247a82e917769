/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package edm

import (
	"fmt"
	"strings"
)

// Kind of facet value
type FacetValueKind uint8

const (
	FacetValueKind_null FacetValueKind = iota

	// bool
	FacetValueKind_Boolean

	// int32 or Sentinel
	FacetValueKind_Int32

	// byte
	FacetValueKind_Byte

	// string
	FacetValueKind_String

	// ConcurrencyMode
	FacetValueKind_ConcurrencyMode

	// StoreGeneratedPattern
	FacetValueKind_StoreGeneratedPattern

	// Any typed value, used by DefaultValue facet
	FacetValueKind_Any

	FacetValueKind_Count
)

var facetValueKindNames = [FacetValueKind_Count]string{
	"FacetValueKind_null",
	"FacetValueKind_Boolean",
	"FacetValueKind_Int32",
	"FacetValueKind_Byte",
	"FacetValueKind_String",
	"FacetValueKind_ConcurrencyMode",
	"FacetValueKind_StoreGeneratedPattern",
	"FacetValueKind_Any",
}

func (k FacetValueKind) String() string {
	if k < FacetValueKind_Count {
		return facetValueKindNames[k]
	}
	return "FacetValueKind(?)"
}

// Renders an FacetValueKind in human-readable form, without "FacetValueKind_" prefix
func (k FacetValueKind) TrimString() string {
	const pref = "FacetValueKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Special facet value meaning "no fixed bound" or "determined elsewhere"
type Sentinel string

const (
	// Unbounded maximum length, written as «Max»
	Unbounded Sentinel = "Max"

	// Spatial reference system is inherited from data, written as «Variable»
	Variable Sentinel = "Variable"
)

func (s Sentinel) String() string { return string(s) }

// Type-intrinsic metadata of facet.
//
// MinValue and MaxValue are inclusive bounds, nil if facet has no numeric bounds.
type FacetDescription struct {
	Name         string
	Kind         FacetValueKind
	MinValue     *int64
	MaxValue     *int64
	DefaultValue any
	IsConstant   bool
	IsRequired   bool
}

// Returns inclusive numeric bounds of facet. Returns false if facet has no bounds.
func (d FacetDescription) Bounds() (min, max int64, ok bool) {
	if d.MinValue == nil || d.MaxValue == nil {
		return 0, 0, false
	}
	return *d.MinValue, *d.MaxValue, true
}

// Returns copy of description with specified inclusive bounds.
func (d FacetDescription) WithBounds(min, max int64) FacetDescription {
	d.MinValue, d.MaxValue = &min, &max
	return d
}

func (d FacetDescription) String() string {
	s := fmt.Sprintf("%s %s", d.Name, d.Kind.TrimString())
	if min, max, ok := d.Bounds(); ok {
		s += fmt.Sprintf(" [%d, %d]", min, max)
	}
	if d.DefaultValue != nil {
		s += fmt.Sprintf(" default %v", d.DefaultValue)
	}
	if d.IsConstant {
		s += " constant"
	}
	if d.IsRequired {
		s += " required"
	}
	return s
}

// Facet is a named value of type usage. Nil Value means facet has no value.
type Facet struct {
	Name  string
	Value any
}

func (f Facet) String() string {
	if f.Value == nil {
		return f.Name + ": null"
	}
	return fmt.Sprintf("%s: %v", f.Name, f.Value)
}
