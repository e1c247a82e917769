/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typeusage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/edm"
	"github.com/voedger/edmfacets/pkg/typeusage"
)

// Resolves facets and validates resolved type usage
func validate(t *testing.T, typ edm.IType, model edm.DataModel, facets map[string]any) []diag.Error {
	t.Helper()
	d := typeusage.NewDraft(testElem, facets)
	descs := storeCatalog.FacetDescriptions(typ)
	u, errs := typeusage.Resolve(d, typ, descs, false)
	require.Empty(t, errs)
	return typeusage.ValidateFacets(d, u, descs, model)
}

func TestValidateFacets_Length(t *testing.T) {
	require := require.New(t)

	errs := validate(t, nvarchar, edm.ProviderDataModel, map[string]any{edm.FacetName_MaxLength: int32(5000)})
	require.Equal([]diag.ErrorCode{diag.ErrorCode_InvalidSize}, diag.Codes(errs))
	require.Equal("MaxLength 5000 is out of range [1, 4000] for type «nvarchar»", errs[0].Message)

	require.Empty(validate(t, nvarchar, edm.ProviderDataModel, map[string]any{edm.FacetName_MaxLength: edm.Unbounded}))
	require.Empty(validate(t, nvarchar, edm.ProviderDataModel, map[string]any{edm.FacetName_MaxLength: int32(4000)}))

	errs = validate(t, nvarchar, edm.ProviderDataModel, map[string]any{edm.FacetName_MaxLength: int32(0)})
	require.Equal([]diag.ErrorCode{diag.ErrorCode_InvalidSize}, diag.Codes(errs))

	bin := edmType(edm.PrimitiveTypeKind_Binary)
	require.Empty(validate(t, bin, edm.EntityDataModel, map[string]any{edm.FacetName_MaxLength: int32(0)}))
	errs = validate(t, bin, edm.EntityDataModel, map[string]any{edm.FacetName_MaxLength: int32(-1)})
	require.Equal([]diag.ErrorCode{diag.ErrorCode_InvalidSize}, diag.Codes(errs))
}

func TestValidateFacets_Decimal(t *testing.T) {
	tests := []struct {
		name      string
		precision any
		scale     any
		expected  []diag.ErrorCode
	}{
		{"precision 10 scale 12", byte(10), byte(12), []diag.ErrorCode{diag.ErrorCode_BadPrecisionAndScale}},
		{"precision 10 scale 5", byte(10), byte(5), []diag.ErrorCode{}},
		{"precision equals scale", byte(10), byte(10), []diag.ErrorCode{}},
		{"precision out of range", byte(39), byte(5), []diag.ErrorCode{diag.ErrorCode_PrecisionOutOfRange}},
		{"zero precision", byte(0), nil, []diag.ErrorCode{diag.ErrorCode_PrecisionOutOfRange}},
		{"scale out of range", byte(38), byte(39), []diag.ErrorCode{diag.ErrorCode_ScaleOutOfRange}},
		{"both out of range", byte(40), byte(50), []diag.ErrorCode{diag.ErrorCode_PrecisionOutOfRange, diag.ErrorCode_ScaleOutOfRange}},
		{"default precision with bigger scale", nil, byte(20), []diag.ErrorCode{diag.ErrorCode_BadPrecisionAndScale}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			facets := map[string]any{}
			if test.precision != nil {
				facets[edm.FacetName_Precision] = test.precision
			}
			if test.scale != nil {
				facets[edm.FacetName_Scale] = test.scale
			}
			errs := validate(t, numeric, edm.ProviderDataModel, facets)
			require.Equal(t, test.expected, diag.Codes(errs))
		})
	}
}

func TestValidateFacets_Temporal(t *testing.T) {
	require := require.New(t)

	require.Empty(validate(t, datetime2, edm.ProviderDataModel, map[string]any{edm.FacetName_Precision: byte(7)}))

	errs := validate(t, datetime2, edm.ProviderDataModel, map[string]any{edm.FacetName_Precision: byte(8)})
	require.Equal([]diag.ErrorCode{diag.ErrorCode_PrecisionOutOfRange}, diag.Codes(errs))
	require.Contains(errs[0].Message, "[0, 7]")

	for _, k := range []edm.PrimitiveTypeKind{edm.PrimitiveTypeKind_Time, edm.PrimitiveTypeKind_DateTimeOffset} {
		require.Empty(validate(t, edmType(k), edm.EntityDataModel, map[string]any{edm.FacetName_Precision: byte(255)}))
	}
}

func TestValidateFacets_Spatial(t *testing.T) {
	geo := edmType(edm.PrimitiveTypeKind_Geometry)

	t.Run("should check IsStrict under entity data model only", func(t *testing.T) {
		require := require.New(t)

		require.Empty(validate(t, geo, edm.EntityDataModel, map[string]any{edm.FacetName_IsStrict: false}))

		errs := validate(t, geo, edm.EntityDataModel, map[string]any{edm.FacetName_IsStrict: true})
		require.Equal([]diag.ErrorCode{diag.ErrorCode_UnexpectedSpatialType}, diag.Codes(errs))

		errs = validate(t, geo, edm.EntityDataModel, nil)
		require.Equal([]diag.ErrorCode{diag.ErrorCode_UnexpectedSpatialType}, diag.Codes(errs), "IsStrict description default is true")

		require.Empty(validate(t, geo, edm.ProviderDataModel, nil))
		require.Empty(validate(t, geography, edm.ProviderDataModel, nil))
	})

	t.Run("should not allow concurrency mode", func(t *testing.T) {
		require := require.New(t)

		errs := validate(t, geography, edm.ProviderDataModel, map[string]any{edm.FacetName_ConcurrencyMode: edm.ConcurrencyMode_None})
		require.Equal([]diag.ErrorCode{diag.ErrorCode_FacetNotAllowedByType}, diag.Codes(errs))
	})

	t.Run("should check SRID", func(t *testing.T) {
		require := require.New(t)

		require.Empty(validate(t, geography, edm.ProviderDataModel, map[string]any{edm.FacetName_SRID: edm.Variable}))
		require.Empty(validate(t, geography, edm.ProviderDataModel, map[string]any{edm.FacetName_SRID: int32(100000)}))

		errs := validate(t, geography, edm.ProviderDataModel, map[string]any{edm.FacetName_SRID: int32(100001)})
		require.Equal([]diag.ErrorCode{diag.ErrorCode_InvalidSystemReferenceId}, diag.Codes(errs))

		errs = validate(t, geo, edm.EntityDataModel, map[string]any{edm.FacetName_SRID: int32(-1), edm.FacetName_IsStrict: false})
		require.Equal([]diag.ErrorCode{diag.ErrorCode_InvalidSystemReferenceId}, diag.Codes(errs))
	})
}

func TestValidateFacets_NoExtraValidation(t *testing.T) {
	require := require.New(t)

	for _, k := range []edm.PrimitiveTypeKind{
		edm.PrimitiveTypeKind_Boolean,
		edm.PrimitiveTypeKind_Byte,
		edm.PrimitiveTypeKind_SByte,
		edm.PrimitiveTypeKind_Int16,
		edm.PrimitiveTypeKind_Int32,
		edm.PrimitiveTypeKind_Int64,
		edm.PrimitiveTypeKind_Single,
		edm.PrimitiveTypeKind_Double,
		edm.PrimitiveTypeKind_Guid,
	} {
		require.Empty(validate(t, edmType(k), edm.EntityDataModel, map[string]any{edm.FacetName_Nullable: false}), k)
	}
}
