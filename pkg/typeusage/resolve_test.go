/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typeusage_test

import (
	"fmt"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/edm"
	"github.com/voedger/edmfacets/pkg/typeusage"
)

func TestResolve(t *testing.T) {
	t.Run("should use defaults for missed facets", func(t *testing.T) {
		require := require.New(t)

		d := typeusage.NewDraft(testElem, nil)
		u, errs := typeusage.Resolve(d, numeric, storeCatalog.FacetDescriptions(numeric), false)
		require.Empty(errs)
		require.Equal("numeric(Nullable: true, Precision: 18, Scale: 0)", u.String())
	})

	t.Run("should report constant facet once and use description default", func(t *testing.T) {
		require := require.New(t)

		d := typeusage.NewDraft(testElem, map[string]any{edm.FacetName_Unicode: false})
		u, errs := typeusage.Resolve(d, nvarchar, storeCatalog.FacetDescriptions(nvarchar), true)
		require.Equal([]diag.ErrorCode{diag.ErrorCode_ConstantFacetSpecifiedInSchema}, diag.Codes(errs))
		require.Contains(errs[0].Message, "Unicode")
		require.Contains(errs[0].Message, "nvarchar")

		v, ok := u.FacetValue(edm.FacetName_Unicode)
		require.True(ok)
		require.Equal(true, v)
	})

	t.Run("should report missed required facet only if complain", func(t *testing.T) {
		require := require.New(t)

		d := typeusage.NewDraft(testElem, map[string]any{edm.FacetName_Scale: byte(2)})
		descs := storeCatalog.FacetDescriptions(numeric)

		u, errs := typeusage.Resolve(d, numeric, descs, true)
		require.Equal([]diag.ErrorCode{diag.ErrorCode_RequiredFacetMissing}, diag.Codes(errs))
		v, _ := u.FacetValue(edm.FacetName_Precision)
		require.Equal(byte(18), v, "description default is used")

		_, errs = typeusage.Resolve(d, numeric, descs, false)
		require.Empty(errs)
	})

	t.Run("should check facets not described by type", func(t *testing.T) {
		require := require.New(t)

		d := typeusage.NewDraft(testElem, map[string]any{
			edm.FacetName_StoreGeneratedPattern: edm.StoreGeneratedPattern_Identity,
			edm.FacetName_ConcurrencyMode:       edm.ConcurrencyMode_Fixed,
			edm.FacetName_Collation:             "ci",
		})

		u, errs := typeusage.Resolve(d, nvarchar, storeCatalog.FacetDescriptions(nvarchar), true)
		require.Empty(errs)
		_, ok := u.Facet(edm.FacetName_Collation)
		require.False(ok, "undescribed facets are not included in type usage")

		_, errs = typeusage.Resolve(d, numeric, storeCatalog.FacetDescriptions(numeric), false)
		require.Equal([]diag.ErrorCode{diag.ErrorCode_FacetNotAllowedByType}, diag.Codes(errs))
		require.Contains(errs[0].Message, "Collation")

		d = typeusage.NewDraft(testElem, map[string]any{edm.FacetName_MaxLength: int32(1), edm.FacetName_SRID: int32(1)})
		_, errs = typeusage.Resolve(d, edmType(edm.PrimitiveTypeKind_Int32), edm.EDM().FacetDescriptions(edmType(edm.PrimitiveTypeKind_Int32)), false)
		require.Equal([]diag.ErrorCode{diag.ErrorCode_FacetNotAllowedByType, diag.ErrorCode_FacetNotAllowedByType}, diag.Codes(errs))
	})

	t.Run("should not change draft", func(t *testing.T) {
		require := require.New(t)

		d := typeusage.NewDraft(testElem, map[string]any{edm.FacetName_MaxLength: int32(5), edm.FacetName_Precision: byte(1)})
		_, _ = typeusage.Resolve(d, nvarchar, storeCatalog.FacetDescriptions(nvarchar), true)
		require.Equal(2, d.FacetCount())
	})
}

var facetNames = []string{
	edm.FacetName_Nullable,
	edm.FacetName_MaxLength,
	edm.FacetName_FixedLength,
	edm.FacetName_Unicode,
	edm.FacetName_Collation,
	edm.FacetName_Precision,
	edm.FacetName_Scale,
	edm.FacetName_SRID,
	edm.FacetName_IsStrict,
	edm.FacetName_StoreGeneratedPattern,
	edm.FacetName_ConcurrencyMode,
}

// Returns random facet map, keys are mostly known facet names
func randomFacets(f *fuzz.Fuzzer) map[string]any {
	raw := map[uint8]int32{}
	f.Fuzz(&raw)
	facets := make(map[string]any, len(raw))
	for k, v := range raw {
		name := fmt.Sprint("Unknown", k)
		if int(k)%16 < len(facetNames) {
			name = facetNames[int(k)%16]
		}
		facets[name] = v
	}
	return facets
}

func allTypes() []edm.IType {
	tt := []edm.IType{}
	for t := range edm.EDM().Types() {
		tt = append(tt, t)
	}
	return append(tt, nvarchar, numeric, datetime2, geography)
}

func TestResolve_NoDuplicatedFacets(t *testing.T) {
	require := require.New(t)

	f := fuzz.NewWithSeed(1).NilChance(0).NumElements(0, 12)
	for i := 0; i < 200; i++ {
		d := typeusage.NewDraft(testElem, randomFacets(f))
		for _, typ := range allTypes() {
			descs := storeCatalog.FacetDescriptions(typ)
			u, _ := typeusage.Resolve(d, typ, descs, true)

			seen := map[string]bool{}
			for fc := range u.Facets() {
				require.False(seen[fc.Name], "duplicated facet «%s» in %v", fc.Name, u)
				seen[fc.Name] = true
				_, described := descs[fc.Name]
				require.True(described, "unknown facet «%s» in %v", fc.Name, u)
			}
			require.Equal(len(descs), u.FacetCount())
		}
	}
}

func TestResolve_Idempotent(t *testing.T) {
	require := require.New(t)

	f := fuzz.NewWithSeed(2).NilChance(0).NumElements(0, 12)
	for i := 0; i < 100; i++ {
		d := typeusage.NewDraft(testElem, randomFacets(f))
		for _, typ := range []edm.IType{nvarchar, numeric, datetime2, geography} {
			descs := storeCatalog.FacetDescriptions(typ)

			u1, errs1 := typeusage.Resolve(d, typ, descs, true)
			u2, errs2 := typeusage.Resolve(d, typ, descs, true)
			require.Equal(u1, u2)
			require.Equal(errs1, errs2)
		}
	}
}
