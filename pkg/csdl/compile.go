/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package csdl

import (
	"context"
	"encoding/xml"
	"strconv"
	"strings"

	"aqwari.net/xml/xmltree"
	"golang.org/x/sync/errgroup"

	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/edm"
	"github.com/voedger/edmfacets/pkg/goutils/logger"
	"github.com/voedger/edmfacets/pkg/manifest"
	"github.com/voedger/edmfacets/pkg/typeusage"
)

// Compiles property declarations of all schemas found in XML document.
//
// Schema errors are added to sink. Returned error is not nil only if document is not well-formed XML,
// contains no schemas, or context is cancelled.
func Compile(ctx context.Context, doc []byte, opts Options, sink diag.ISink) ([]*Schema, error) {
	root, err := xmltree.Parse(doc)
	if err != nil {
		return nil, errInvalidDocument("%s: %v", opts.Document, err)
	}

	schemas := findSchemas(root)
	if len(schemas) == 0 {
		return nil, errInvalidDocument("%s: no «%s» elements", opts.Document, elem_Schema)
	}

	if sink == nil {
		sink = diag.Discard
	}
	ctx = logger.WithContextAttrs(ctx, logger.LogAttr_Document, opts.Document)

	res := make([]*Schema, 0, len(schemas))
	for _, el := range schemas {
		s, err := compileSchema(ctx, el, opts, sink)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

// Returns schema elements of document in document order. Root element is a schema in standalone documents.
func findSchemas(root *xmltree.Element) []*xmltree.Element {
	isSchema := func(el *xmltree.Element) bool { return el.Name.Local == elem_Schema }
	schemas := root.SearchFunc(isSchema)
	if isSchema(root) {
		schemas = append([]*xmltree.Element{root}, schemas...)
	}
	return schemas
}

// Declaration of property, collected before validation
type propertyDecl struct {
	owner string
	el    *xmltree.Element
}

func compileSchema(ctx context.Context, el *xmltree.Element, opts Options, sink diag.ISink) (*Schema, error) {
	s := &Schema{
		Namespace: el.Attr("", attr_Namespace),
		DataModel: detectModel(el, opts.Model),
	}

	cat := opts.StoreCatalog
	if s.DataModel == edm.EntityDataModel {
		s.UseStrongSpatialTypes = useStrongSpatialTypes(el, opts, sink)
		cat = conceptualCatalog(s.Namespace, el, opts.Document, sink)
	} else if cat == nil {
		c, err := manifest.Default().Catalog()
		if err != nil {
			return nil, err
		}
		cat = c
	}

	decls := []propertyDecl{}
	for i := range el.Children {
		t := &el.Children[i]
		if t.Name.Local != elem_EntityType && t.Name.Local != elem_ComplexType {
			continue
		}
		owner := qualify(s.Namespace, t.Attr("", attr_Name))
		for j := range t.Children {
			if p := &t.Children[j]; p.Name.Local == elem_Property {
				decls = append(decls, propertyDecl{owner: owner, el: p})
			}
		}
	}

	ctx = logger.WithContextAttrs(ctx, logger.LogAttr_Schema, s.Namespace)
	logger.VerboseCtx(ctx, s.DataModel, " properties: ", len(decls))

	s.Properties = make([]Property, len(decls))

	bOpts := typeusage.Options{
		DataModel:              s.DataModel,
		UseStrongSpatialTypes:  s.UseStrongSpatialTypes,
		ComplainOnMissingFacet: opts.ComplainOnMissingFacet,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism(opts))
	for i, decl := range decls {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			s.Properties[i] = compileProperty(decl, cat, s.Namespace, opts.Document, bOpts, sink)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s, nil
}

func compileProperty(decl propertyDecl, cat edm.ICatalog, ns, doc string, opts typeusage.Options, sink diag.ISink) Property {
	p := Property{
		Owner:    decl.owner,
		Name:     decl.el.Attr("", attr_Name),
		TypeName: decl.el.Attr("", attr_Type),
	}
	elem := diag.ElementRef{Document: doc, Element: elem_Property, Name: p.QName()}

	b := typeusage.New(elem, sink)
	for _, a := range decl.el.StartElement.Attr {
		name, ok := facetAttribute(a)
		if !ok {
			continue
		}
		if !validEnumerationLiteral(name, a.Value) {
			sink.Add(diag.NewError(diag.ErrorCode_InvalidAttributeValue, elem, "attribute «%s» value «%s» is not valid", name, a.Value))
			continue
		}
		if !b.HandleAttribute(name, a.Value) {
			sink.Add(diag.NewError(diag.ErrorCode_UnexpectedXmlAttribute, elem, "attribute «%s» is not expected", name))
		}
	}

	p.Type = resolveType(cat, ns, p.TypeName)
	if p.Type == nil {
		sink.Add(diag.NewError(diag.ErrorCode_UnresolvedType, elem, "type «%s» is not found", p.TypeName))
		return p
	}

	p.Result = b.Build(p.Type, cat, opts)
	return p
}

// Returns local name of attribute to be handled by type usage builder.
//
// Returns false for name, type and namespace declarations, and for foreign namespace attributes.
func facetAttribute(a xml.Attr) (string, bool) {
	switch a.Name.Space {
	case "":
		switch a.Name.Local {
		case attr_Name, attr_Type, attr_XMLNS:
			return "", false
		}
		return a.Name.Local, true
	case NS_Annotation:
		return a.Name.Local, a.Name.Local == typeusage.Attr_StoreGeneratedPattern
	}
	return "", false
}

// Returns false if value of enumeration attribute is not valid literal
func validEnumerationLiteral(name, value string) bool {
	switch name {
	case typeusage.Attr_StoreGeneratedPattern:
		_, ok := edm.ParseStoreGeneratedPattern(value)
		return ok
	case typeusage.Attr_ConcurrencyMode:
		_, ok := edm.ParseConcurrencyMode(value)
		return ok
	}
	return true
}

func detectModel(el *xmltree.Element, m Model) edm.DataModel {
	switch m {
	case Model_CSDL:
		return edm.EntityDataModel
	case Model_SSDL:
		return edm.ProviderDataModel
	}
	if strings.HasSuffix(el.Name.Space, ssdlNamespaceSuffix) {
		return edm.ProviderDataModel
	}
	return edm.EntityDataModel
}

func useStrongSpatialTypes(el *xmltree.Element, opts Options, sink diag.ISink) bool {
	if opts.UseStrongSpatialTypes != nil {
		return *opts.UseStrongSpatialTypes
	}
	v := el.Attr(NS_Annotation, attr_UseStrongSpatialTypes)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		elem := diag.ElementRef{Document: opts.Document, Element: elem_Schema, Name: el.Attr("", attr_Namespace)}
		sink.Add(diag.NewError(diag.ErrorCode_InvalidAttributeValue, elem, "attribute «%s» value «%s» is not valid", attr_UseStrongSpatialTypes, v))
	}
	return b
}

func parallelism(opts Options) int {
	if opts.Parallelism > 0 {
		return opts.Parallelism
	}
	return DefaultParallelism
}

func qualify(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + "." + name
}
