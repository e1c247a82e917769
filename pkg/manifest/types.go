/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package manifest

// Provider manifest: store types with their facet descriptions.
type Manifest struct {
	// Provider name, e.g. «SqlServer»
	Name  string     `yaml:"name"`
	Types []TypeDecl `yaml:"types"`
}

// Store type declaration
type TypeDecl struct {
	// Store type name, e.g. «nvarchar»
	Name string `yaml:"name"`

	// Primitive kind name, e.g. «String»
	Kind string `yaml:"kind"`

	// Facet declarations keyed by facet name. Nullable and DefaultValue are declared for every type implicitly
	Facets map[string]FacetDecl `yaml:"facets,omitempty"`
}

// Facet declaration
type FacetDecl struct {
	Min      *int64 `yaml:"min,omitempty"`
	Max      *int64 `yaml:"max,omitempty"`
	Default  any    `yaml:"default,omitempty"`
	Constant bool   `yaml:"constant,omitempty"`
	Required bool   `yaml:"required,omitempty"`
}
