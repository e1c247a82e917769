/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typeusage

import (
	"math"
	"strconv"
	"strings"

	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/edm"
	"github.com/voedger/edmfacets/pkg/goutils/logger"
)

// Collects facets of one property declaration and builds its type usage.
//
// Builder is not safe for concurrent use.
type Builder struct {
	elem        diag.ElementRef
	sink        diag.ISink
	facets      map[string]any
	nullable    *bool
	defaultText *string
	userFacets  bool
}

// Creates new builder. Errors are added to specified sink, if sink is nil then diag.Discard is used.
func New(elem diag.ElementRef, sink diag.ISink) *Builder {
	if sink == nil {
		sink = diag.Discard
	}
	return &Builder{
		elem:   elem,
		sink:   sink,
		facets: make(map[string]any),
	}
}

// Handles schema attribute. Returns false if attribute is not a facet attribute.
//
// Unparsable values are reported to sink and not recorded.
func (b *Builder) HandleAttribute(name, value string) bool {
	switch name {
	case Attr_Nullable:
		if v, ok := b.parseBool(name, value); ok {
			b.RecordFacet(name, v)
			b.nullable = &v
		}
	case Attr_DefaultValue:
		b.defaultText = &value
	case Attr_MaxLength:
		if value == maxLengthLiteral {
			b.RecordFacet(name, edm.Unbounded)
		} else if v, ok := b.parseInt32(name, value); ok {
			b.RecordFacet(name, v)
		}
	case Attr_FixedLength, Attr_Unicode:
		if v, ok := b.parseBool(name, value); ok {
			b.RecordFacet(name, v)
		}
	case Attr_Collation:
		if value != "" {
			b.RecordFacet(name, value)
		}
	case Attr_Precision, Attr_Scale:
		if v, ok := b.parseByte(name, value); ok {
			b.RecordFacet(name, v)
		}
	case Attr_SRID:
		if value == variableSRIDLiteral {
			b.RecordFacet(name, edm.Variable)
		} else if v, ok := b.parseInt32(name, value); ok {
			b.RecordFacet(name, v)
		}
	case Attr_StoreGeneratedPattern:
		if p, ok := edm.ParseStoreGeneratedPattern(value); ok {
			b.RecordFacet(name, p)
		}
	case Attr_ConcurrencyMode:
		if m, ok := edm.ParseConcurrencyMode(value); ok {
			b.RecordFacet(name, m)
		}
	default:
		return false
	}
	return true
}

// Records facet value. Previous value of facet, if any, is replaced.
func (b *Builder) RecordFacet(name string, value any) {
	b.facets[name] = value
	if isUserDefinedFacet(name) {
		b.userFacets = true
	}
	if logger.IsTrace() {
		logger.Trace(b.elem, "facet", edm.Facet{Name: name, Value: value})
	}
}

// Returns value of Nullable attribute. Returns false if attribute was not handled.
func (b *Builder) Nullable() (bool, bool) {
	if b.nullable == nil {
		return true, false
	}
	return *b.nullable, true
}

// Returns immutable snapshot of collected facets.
func (b *Builder) Draft() Draft {
	d := NewDraft(b.elem, b.facets)
	d.userFacets = b.userFacets
	if b.defaultText != nil {
		d = d.WithDefault(*b.defaultText)
	}
	return d
}

// Builds type usage of specified type from collected facets.
//
// Facet descriptions are taken from catalog. All errors are added to builder sink and returned in result.
//
// # Panics:
//   - if type is nil.
func (b *Builder) Build(t edm.IType, cat edm.ICatalog, opts Options) Result {
	if t == nil {
		panic(edm.ErrInvalid("nil type for %v", b.elem))
	}

	d := b.Draft()
	res := b.result(d)

	def, errs := ValidateDefault(d, t)
	res.Default = def

	switch t.Kind() {
	case edm.TypeKind_Primitive:
		descs := cat.FacetDescriptions(t)
		if !opts.UseStrongSpatialTypes && edm.PrimitiveKindOf(t).IsSpatial() {
			d = synthesizeIsStrict(d, descs)
		}
		u, ee := Resolve(d, t, descs, opts.ComplainOnMissingFacet)
		if len(ee) == 0 {
			ee = ValidateFacets(d, u, descs, opts.DataModel)
		}
		errs = append(errs, ee...)
		if def != nil {
			if _, ok := descs[edm.FacetName_DefaultValue]; ok {
				u = u.With(edm.Facet{Name: edm.FacetName_DefaultValue, Value: def})
			}
		}
		res.Usage = u
	case edm.TypeKind_Enum:
		u, ee := ValidateEnumFacets(d, t.(edm.IEnumType))
		errs = append(errs, ee...)
		res.Usage = u
	default:
		u, ee := validateNonScalar(d, t)
		errs = append(errs, ee...)
		res.Usage = u
	}

	b.sink.Add(errs...)
	res.Errors = errs

	if logger.IsVerbose() {
		logger.Verbose(b.elem, "→", res.Usage, "errors:", len(errs))
	}
	return res
}

func (b *Builder) result(d Draft) Result {
	res := Result{Nullable: true}
	if v, ok := b.Nullable(); ok {
		res.Nullable = v
	}
	res.DefaultText, _ = d.DefaultText()
	if v, ok := d.Facet(edm.FacetName_StoreGeneratedPattern); ok {
		res.StoreGeneratedPattern = v.(edm.StoreGeneratedPattern)
	}
	if v, ok := d.Facet(edm.FacetName_ConcurrencyMode); ok {
		res.ConcurrencyMode = v.(edm.ConcurrencyMode)
	}
	if v, ok := d.Facet(edm.FacetName_Collation); ok {
		res.Collation, _ = v.(string)
	}
	return res
}

// Adds IsStrict=false facet if type describes IsStrict facet and it was not supplied
func synthesizeIsStrict(d Draft, descs map[string]edm.FacetDescription) Draft {
	if _, ok := descs[edm.FacetName_IsStrict]; !ok {
		return d
	}
	if _, ok := d.Facet(edm.FacetName_IsStrict); ok {
		return d
	}
	return d.With(edm.FacetName_IsStrict, false)
}

func (b *Builder) parseBool(name, value string) (bool, bool) {
	switch strings.TrimSpace(value) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	b.sink.Add(diag.NewError(diag.ErrorCode_BoolValueExpected, b.elem, msgBoolValueExpected, name, value))
	return false, false
}

func (b *Builder) parseInt32(name, value string) (int32, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil {
		b.sink.Add(diag.NewError(diag.ErrorCode_IntegerExpected, b.elem, msgIntegerExpected, name, value, math.MinInt32, math.MaxInt32))
		return 0, false
	}
	return int32(v), true
}

func (b *Builder) parseByte(name, value string) (byte, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(value), 10, 8)
	if err != nil {
		b.sink.Add(diag.NewError(diag.ErrorCode_ByteValueExpected, b.elem, msgByteValueExpected, name, value))
		return 0, false
	}
	return byte(v), true
}
