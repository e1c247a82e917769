/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package csdl

import (
	"strings"

	"aqwari.net/xml/xmltree"

	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/edm"
)

// Returns catalog of conceptual primitive types and types declared by schema.
//
// Enumerations with unresolved or non-integral underlying type are reported and skipped.
func conceptualCatalog(ns string, el *xmltree.Element, doc string, sink diag.ISink) edm.ICatalog {
	types := []edm.IType{}
	for t := range edm.EDM().Types() {
		types = append(types, t)
	}

	declared := map[string]bool{}
	for i := range el.Children {
		c := &el.Children[i]
		name := qualify(ns, c.Attr("", attr_Name))
		if declared[name] || edm.EDM().Type(name) != nil {
			continue
		}

		switch c.Name.Local {
		case elem_EntityType:
			types = append(types, edm.NewEntityType(name))
		case elem_ComplexType:
			types = append(types, edm.NewComplexType(name))
		case elem_EnumType:
			t := enumType(name, c, doc, sink)
			if t == nil {
				continue
			}
			types = append(types, t)
		default:
			continue
		}
		declared[name] = true
	}

	return edm.NewCatalog(types...)
}

func enumType(name string, el *xmltree.Element, doc string, sink diag.ISink) edm.IType {
	u := el.Attr("", attr_UnderlyingType)
	if u == "" {
		u = defaultEnumUnderlyingType
	}
	kind, ok := edm.ParsePrimitiveTypeKind(strings.TrimPrefix(u, edm.EDMNamespace+"."))
	if !ok || !kind.IsIntegral() {
		elem := diag.ElementRef{Document: doc, Element: elem_EnumType, Name: name}
		sink.Add(diag.NewError(diag.ErrorCode_InvalidAttributeValue, elem, "attribute «%s» value «%s» is not an integral type", attr_UnderlyingType, u))
		return nil
	}
	return edm.NewEnumType(name, edm.EDMPrimitiveType(kind))
}

// Returns type by name as declared in schema.
//
// Conceptual primitive types may be referenced without «Edm.» prefix, schema types may be referenced without namespace.
func resolveType(cat edm.ICatalog, ns, name string) edm.IType {
	if name == "" {
		return nil
	}
	if t := cat.Type(name); t != nil {
		return t
	}
	if t := cat.Type(edm.EDMNamespace + "." + name); t != nil {
		return t
	}
	if ns != "" {
		return cat.Type(ns + "." + name)
	}
	return nil
}
