/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typeusage

import (
	"iter"
	"maps"
	"slices"

	"github.com/voedger/edmfacets/pkg/diag"
)

// Immutable snapshot of facets collected from one property declaration.
//
// Draft is safe to share. With returns a modified copy.
type Draft struct {
	elem        diag.ElementRef
	facets      map[string]any
	defaultText *string
	userFacets  bool
}

// Creates new draft from facet values. Every facet except Nullable is user-defined.
//
// Used to resolve facets without attribute source, e.g. from provider manifests or tests.
func NewDraft(elem diag.ElementRef, facets map[string]any) Draft {
	d := Draft{elem: elem, facets: maps.Clone(facets)}
	if d.facets == nil {
		d.facets = make(map[string]any)
	}
	for n := range d.facets {
		if isUserDefinedFacet(n) {
			d.userFacets = true
		}
	}
	return d
}

func (d Draft) Element() diag.ElementRef { return d.elem }

// Returns raw facet value. Returns false if facet was not supplied.
func (d Draft) Facet(name string) (any, bool) {
	v, ok := d.facets[name]
	return v, ok
}

// Returns supplied facets sorted by name.
func (d Draft) Facets() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, n := range slices.Sorted(maps.Keys(d.facets)) {
			if !yield(n, d.facets[n]) {
				return
			}
		}
	}
}

func (d Draft) FacetCount() int { return len(d.facets) }

// Returns raw default value text. Returns false if default was not supplied.
func (d Draft) DefaultText() (string, bool) {
	if d.defaultText == nil {
		return "", false
	}
	return *d.defaultText, true
}

// Returns is any facet other than Nullable was supplied.
func (d Draft) HasUserDefinedFacets() bool { return d.userFacets }

// Returns copy of draft with specified facet added or replaced.
func (d Draft) With(name string, value any) Draft {
	c := d
	c.facets = maps.Clone(d.facets)
	if c.facets == nil {
		c.facets = make(map[string]any)
	}
	c.facets[name] = value
	if isUserDefinedFacet(name) {
		c.userFacets = true
	}
	return c
}

// Returns copy of draft with specified default value text.
func (d Draft) WithDefault(text string) Draft {
	c := d
	c.defaultText = &text
	return c
}
