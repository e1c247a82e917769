/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package csdl_test

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/edmfacets/pkg/csdl"
	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/edm"
)

//go:embed testdata
var testdata embed.FS

func compile(t *testing.T, file string, opts csdl.Options) (*csdl.Schema, []diag.Error) {
	t.Helper()
	doc, err := testdata.ReadFile("testdata/" + file)
	require.NoError(t, err)

	opts.Document = file
	sink := diag.NewCollector()
	schemas, err := csdl.Compile(context.Background(), doc, opts, sink)
	require.NoError(t, err)
	require.Len(t, schemas, 1)

	errs := sink.Errors()
	diag.Sort(errs)
	return schemas[0], errs
}

func property(s *csdl.Schema, qName string) csdl.Property {
	for _, p := range s.Properties {
		if p.QName() == qName {
			return p
		}
	}
	panic("property not found: " + qName)
}

func TestCompile_ConceptualSchema(t *testing.T) {
	require := require.New(t)

	s, errs := compile(t, "model.csdl", csdl.Options{})
	require.Equal("Model", s.Namespace)
	require.Equal(edm.EntityDataModel, s.DataModel)
	require.False(s.UseStrongSpatialTypes)
	require.Len(s.Properties, 9)

	require.Len(errs, 1)
	require.Equal(diag.ErrorCode_InvalidAttributeValue, errs[0].Code)
	require.Equal(diag.ElementRef{Document: "model.csdl", Element: "EnumType", Name: "Model.Broken"}, errs[0].Element)

	t.Run("should keep document order", func(t *testing.T) {
		require.Equal("Model.Address.City", s.Properties[0].QName())
		require.Equal("Model.Customer.Created", s.Properties[8].QName())
	})

	t.Run("should build type usages", func(t *testing.T) {
		p := property(s, "Model.Address.City")
		require.Equal("Edm.String(DefaultValue: null, FixedLength: null, MaxLength: 100, Nullable: false, Unicode: null)", p.Result.Usage.String())

		p = property(s, "Model.Customer.Id")
		require.Equal(edm.StoreGeneratedPattern_Identity, p.Result.StoreGeneratedPattern)
		require.False(p.Result.Nullable)

		p = property(s, "Model.Customer.Name")
		v, _ := p.Result.Usage.FacetValue(edm.FacetName_MaxLength)
		require.Equal(edm.Unbounded, v)
		require.Equal(edm.ConcurrencyMode_Fixed, p.Result.ConcurrencyMode)

		p = property(s, "Model.Customer.Balance")
		require.Equal("12.5", fmt.Sprint(p.Result.Default))
		v, ok := p.Result.Usage.FacetValue(edm.FacetName_DefaultValue)
		require.True(ok)
		require.Equal(p.Result.Default, v)

		p = property(s, "Model.Customer.Status")
		require.Equal(edm.TypeKind_Enum, p.Type.Kind())
		require.Equal("Model.Status(Nullable: false)", p.Result.Usage.String())

		p = property(s, "Model.Customer.Home")
		require.Equal(edm.TypeKind_Complex, p.Type.Kind())

		p = property(s, "Model.Customer.Location")
		v, _ = p.Result.Usage.FacetValue(edm.FacetName_SRID)
		require.Equal(edm.Variable, v)
		v, _ = p.Result.Usage.FacetValue(edm.FacetName_IsStrict)
		require.Equal(false, v)
	})

	t.Run("should respect strong spatial types override", func(t *testing.T) {
		strong := true
		_, errs := compile(t, "model.csdl", csdl.Options{UseStrongSpatialTypes: &strong})
		require.Equal(1, diag.Count(errs, diag.ErrorCode_UnexpectedSpatialType))
	})
}

func TestCompile_ReportsAllErrors(t *testing.T) {
	require := require.New(t)

	s, errs := compile(t, "faulty.csdl", csdl.Options{Parallelism: 3})
	require.Len(s.Properties, 11)

	expected := map[string]diag.ErrorCode{
		"Faulty.Order.Amount":  diag.ErrorCode_BadPrecisionAndScale,
		"Faulty.Order.Code":    diag.ErrorCode_InvalidSize,
		"Faulty.Order.Flag":    diag.ErrorCode_InvalidDefaultBoolean,
		"Faulty.Order.Ref":     diag.ErrorCode_FacetNotAllowedByType,
		"Faulty.Order.Size":    diag.ErrorCode_IntegerExpected,
		"Faulty.Order.Shape":   diag.ErrorCode_FacetNotAllowedByType,
		"Faulty.Order.Kind":    diag.ErrorCode_UnresolvedType,
		"Faulty.Order.Details": diag.ErrorCode_FacetOnNonScalarType,
		"Faulty.Order.Seq":     diag.ErrorCode_InvalidAttributeValue,
		"Faulty.Order.Extra":   diag.ErrorCode_UnexpectedXmlAttribute,
	}
	require.Len(errs, len(expected))
	for _, e := range errs {
		require.Equal(expected[e.Element.Name], e.Code, e.Error())
		require.Equal("faulty.csdl", e.Element.Document)
	}

	require.Nil(property(s, "Faulty.Order.Kind").Type)
	require.True(property(s, "Faulty.Info.Note").Result.OK())
}

func TestCompile_StorageSchema(t *testing.T) {
	require := require.New(t)

	s, errs := compile(t, "store.ssdl", csdl.Options{ComplainOnMissingFacet: true})
	require.Equal(edm.ProviderDataModel, s.DataModel)
	require.Equal([]diag.ErrorCode{
		diag.ErrorCode_RequiredFacetMissing,
		diag.ErrorCode_InvalidSize,
		diag.ErrorCode_ConstantFacetSpecifiedInSchema,
		diag.ErrorCode_PrecisionOutOfRange,
	}, diag.Codes(errs))

	p := property(s, "Store.Customers.Name")
	require.Equal("Latin1_General_CI_AS", p.Result.Collation)
	v, _ := p.Result.Usage.FacetValue(edm.FacetName_Collation)
	require.Equal("Latin1_General_CI_AS", v)

	t.Run("should not complain on missing facets by default", func(t *testing.T) {
		_, errs := compile(t, "store.ssdl", csdl.Options{})
		require.Zero(diag.Count(errs, diag.ErrorCode_RequiredFacetMissing))
	})

	t.Run("should use model from options", func(t *testing.T) {
		s, errs := compile(t, "store.ssdl", csdl.Options{Model: csdl.Model_CSDL})
		require.Equal(edm.EntityDataModel, s.DataModel)
		require.Equal(len(s.Properties), diag.Count(errs, diag.ErrorCode_UnresolvedType), "store types are unknown for conceptual schemas")
	})
}

func TestCompile_Errors(t *testing.T) {
	require := require.New(t)

	_, err := csdl.Compile(context.Background(), []byte("<Schema"), csdl.Options{Document: "bad.xml"}, nil)
	require.ErrorIs(err, csdl.ErrInvalidDocument)
	require.ErrorContains(err, "bad.xml")

	_, err = csdl.Compile(context.Background(), []byte("<Root/>"), csdl.Options{}, nil)
	require.ErrorIs(err, csdl.ErrInvalidDocument)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	doc, err := testdata.ReadFile("testdata/model.csdl")
	require.NoError(err)
	_, err = csdl.Compile(ctx, doc, csdl.Options{}, nil)
	require.ErrorIs(err, context.Canceled)
}

func TestCompile_Edmx(t *testing.T) {
	require := require.New(t)

	csdlDoc, err := testdata.ReadFile("testdata/model.csdl")
	require.NoError(err)
	ssdlDoc, err := testdata.ReadFile("testdata/store.ssdl")
	require.NoError(err)

	strip := func(b []byte) string {
		return strings.TrimPrefix(string(b), `<?xml version="1.0" encoding="utf-8"?>`)
	}
	doc := `<Edmx xmlns="http://schemas.microsoft.com/ado/2009/11/edmx"><Runtime>` +
		`<ConceptualModels>` + strip(csdlDoc) + `</ConceptualModels>` +
		`<StorageModels>` + strip(ssdlDoc) + `</StorageModels>` +
		`</Runtime></Edmx>`

	sink := diag.NewCollector()
	schemas, err := csdl.Compile(context.Background(), []byte(doc), csdl.Options{}, sink)
	require.NoError(err)
	require.Len(schemas, 2)
	require.Equal(edm.EntityDataModel, schemas[0].DataModel)
	require.Equal(edm.ProviderDataModel, schemas[1].DataModel)
	require.Equal(1+3, sink.Len())
}

func TestCompile_SchemaRoot(t *testing.T) {
	require := require.New(t)

	doc := `<Schema Namespace="Root" xmlns="http://schemas.microsoft.com/ado/2009/11/edm">
  <EntityType Name="Item">
    <Property Name="Code" Type="String" MaxLength="-1" Unicode="false" />
    <Property Name="Note" Type="String" Nullable="false" />
  </EntityType>
</Schema>`

	sink := diag.NewCollector()
	schemas, err := csdl.Compile(context.Background(), []byte(doc), csdl.Options{Document: "root.csdl"}, sink)
	require.NoError(err)
	require.Len(schemas, 1)
	require.Equal("Root", schemas[0].Namespace)
	require.Len(schemas[0].Properties, 2)

	t.Run("should handle property attributes", func(t *testing.T) {
		code := schemas[0].Properties[0]
		v, ok := code.Result.Usage.FacetValue(edm.FacetName_Unicode)
		require.True(ok)
		require.Equal(false, v)
		require.False(schemas[0].Properties[1].Result.Nullable)

		errs := sink.Errors()
		require.Len(errs, 1)
		require.Equal(diag.ErrorCode_InvalidSize, errs[0].Code)
		require.Equal("Root.Item.Code", errs[0].Element.Name)
	})

	t.Run("should find nested schemas after root schema", func(t *testing.T) {
		nested := `<Schema Namespace="Outer" xmlns="http://schemas.microsoft.com/ado/2009/11/edm">` +
			`<Schema Namespace="Inner" />` +
			`</Schema>`
		schemas, err := csdl.Compile(context.Background(), []byte(nested), csdl.Options{}, nil)
		require.NoError(err)
		require.Len(schemas, 2)
		require.Equal("Outer", schemas[0].Namespace)
		require.Equal("Inner", schemas[1].Namespace)
	})
}

func TestParseModel(t *testing.T) {
	require := require.New(t)

	for s, m := range map[string]csdl.Model{"": csdl.Model_Auto, "CSDL": csdl.Model_CSDL, "ssdl": csdl.Model_SSDL} {
		v, ok := csdl.ParseModel(s)
		require.True(ok)
		require.Equal(m, v)
	}
	_, ok := csdl.ParseModel("msl")
	require.False(ok)
}
