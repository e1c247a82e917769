/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"math"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/voedger/edmfacets/pkg/edm"
)

//go:embed sqlstore.yaml
var sqlStoreYAML []byte

// Parses manifest from YAML. Unknown fields are errors.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	m := &Manifest{}
	if err := dec.Decode(m); err != nil {
		return nil, errInvalid("%v", err)
	}
	return m, nil
}

// Loads manifest from YAML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Returns embedded sample manifest of SQL store.
func Default() *Manifest {
	m, err := Parse(sqlStoreYAML)
	if err != nil {
		panic(err)
	}
	return m
}

// Builds catalog of store types declared by manifest.
//
// All declaration errors are collected and returned joined.
func (m *Manifest) Catalog() (edm.ICatalog, error) {
	types, err := m.PrimitiveTypes()
	if err != nil {
		return nil, err
	}
	tt := make([]edm.IType, 0, len(types))
	for _, t := range types {
		tt = append(tt, t)
	}
	return edm.NewCatalog(tt...), nil
}

// Returns store types declared by manifest.
func (m *Manifest) PrimitiveTypes() ([]edm.IPrimitiveType, error) {
	var errs []error

	types := make([]edm.IPrimitiveType, 0, len(m.Types))
	names := make(map[string]bool, len(m.Types))
	for i, decl := range m.Types {
		if decl.Name == "" {
			errs = append(errs, errInvalid("type #%d: empty name", i))
			continue
		}
		if names[decl.Name] {
			errs = append(errs, errInvalid("type «%s»: %v", decl.Name, edm.ErrAlreadyExistsError))
			continue
		}
		names[decl.Name] = true

		t, err := decl.primitiveType()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		types = append(types, t)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return types, nil
}

func (decl TypeDecl) primitiveType() (edm.IPrimitiveType, error) {
	kind, ok := edm.ParsePrimitiveTypeKind(decl.Kind)
	if !ok {
		return nil, errInvalid("type «%s»: unknown kind «%s»", decl.Name, decl.Kind)
	}

	var errs []error
	descs := edm.GeneralFacetDescriptions()
	for _, name := range slices.Sorted(maps.Keys(decl.Facets)) {
		d, err := decl.Facets[name].description(name)
		if err != nil {
			errs = append(errs, errInvalid("type «%s»: %v", decl.Name, err))
			continue
		}
		descs = append(descs, d)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return edm.NewPrimitiveType(decl.Name, kind, descs...), nil
}

func (f FacetDecl) description(name string) (edm.FacetDescription, error) {
	kind, ok := facetKinds[name]
	if !ok {
		return edm.FacetDescription{}, fmt.Errorf("unknown facet «%s»", name)
	}

	d := edm.FacetDescription{
		Name:       name,
		Kind:       kind,
		IsConstant: f.Constant,
		IsRequired: f.Required,
	}

	if f.Min != nil || f.Max != nil {
		if f.Min == nil || f.Max == nil {
			return d, fmt.Errorf("facet «%s»: both min and max should be specified", name)
		}
		if *f.Min > *f.Max {
			return d, fmt.Errorf("facet «%s»: min %d is greater than max %d", name, *f.Min, *f.Max)
		}
		if kind != edm.FacetValueKind_Int32 && kind != edm.FacetValueKind_Byte {
			return d, fmt.Errorf("facet «%s»: bounds are not applicable to %s values", name, kind.TrimString())
		}
		d = d.WithBounds(*f.Min, *f.Max)
	}

	if f.Default != nil {
		v, err := defaultValue(name, kind, f.Default)
		if err != nil {
			return d, fmt.Errorf("facet «%s»: %w", name, err)
		}
		d.DefaultValue = v
	}

	if f.Constant && d.DefaultValue == nil {
		return d, fmt.Errorf("facet «%s»: constant facet should have default value", name)
	}

	return d, nil
}

// Converts YAML default value to facet value of specified kind
func defaultValue(name string, kind edm.FacetValueKind, v any) (any, error) {
	if s, ok := v.(string); ok {
		if sentinel, ok := sentinels[name][s]; ok {
			return sentinel, nil
		}
	}

	switch kind {
	case edm.FacetValueKind_Boolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case edm.FacetValueKind_Int32:
		if n, ok := v.(int); ok && n >= math.MinInt32 && n <= math.MaxInt32 {
			return int32(n), nil
		}
	case edm.FacetValueKind_Byte:
		if n, ok := v.(int); ok && n >= 0 && n <= math.MaxUint8 {
			return byte(n), nil
		}
	case edm.FacetValueKind_String:
		if s, ok := v.(string); ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("default value «%v» is not %s", v, strings.ToLower(kind.TrimString()))
}
