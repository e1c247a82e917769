/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typeusage

import (
	"errors"

	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/edm"
	"github.com/voedger/edmfacets/pkg/literal"
)

// Parser of default value literal of primitive kind
type defaultParser struct {
	code  diag.ErrorCode
	parse func(string) (any, error)

	// range or format, used to render message
	min, max string
	format   string
}

func parser[T any](code diag.ErrorCode, parse func(string) (T, error)) defaultParser {
	return defaultParser{
		code:  code,
		parse: func(s string) (any, error) { return parse(s) },
	}
}

func (p defaultParser) withRange(min, max string) defaultParser {
	p.min, p.max = min, max
	return p
}

func (p defaultParser) withFormat(f string) defaultParser {
	p.format = f
	return p
}

var defaultParsers = map[edm.PrimitiveTypeKind]defaultParser{
	edm.PrimitiveTypeKind_Binary: parser(diag.ErrorCode_InvalidDefaultBinaryWithNoMaxLength, literal.ParseBinary).
		withFormat(literal.BinaryFormat),
	edm.PrimitiveTypeKind_Boolean: parser(diag.ErrorCode_InvalidDefaultBoolean, literal.ParseBoolean),
	edm.PrimitiveTypeKind_Byte: parser(diag.ErrorCode_InvalidDefaultByte, literal.ParseByte).
		withRange(literal.MinByte, literal.MaxByte),
	edm.PrimitiveTypeKind_SByte: parser(diag.ErrorCode_InvalidDefaultSByte, literal.ParseSByte).
		withRange(literal.MinSByte, literal.MaxSByte),
	edm.PrimitiveTypeKind_Int16: parser(diag.ErrorCode_InvalidDefaultInt16, literal.ParseInt16).
		withRange(literal.MinInt16, literal.MaxInt16),
	edm.PrimitiveTypeKind_Int32: parser(diag.ErrorCode_InvalidDefaultInt32, literal.ParseInt32).
		withRange(literal.MinInt32, literal.MaxInt32),
	edm.PrimitiveTypeKind_Int64: parser(diag.ErrorCode_InvalidDefaultInt64, literal.ParseInt64).
		withRange(literal.MinInt64, literal.MaxInt64),
	edm.PrimitiveTypeKind_Single: parser(diag.ErrorCode_InvalidDefaultSingle, literal.ParseSingle).
		withRange(literal.MinSingle, literal.MaxSingle),
	edm.PrimitiveTypeKind_Double: parser(diag.ErrorCode_InvalidDefaultDouble, literal.ParseDouble).
		withRange(literal.MinDouble, literal.MaxDouble),
	edm.PrimitiveTypeKind_Decimal: parser(diag.ErrorCode_InvalidDefaultDecimal, literal.ParseDecimal).
		withRange(literal.MinDecimal, literal.MaxDecimal),
	edm.PrimitiveTypeKind_Guid: parser(diag.ErrorCode_InvalidDefaultGuid, literal.ParseGuid).
		withFormat(literal.GuidFormat),
	edm.PrimitiveTypeKind_DateTime: parser(diag.ErrorCode_InvalidDefaultDateTime, literal.ParseDateTime).
		withFormat(literal.DateTimeFormat),
	edm.PrimitiveTypeKind_Time: parser(diag.ErrorCode_InvalidDefaultTime, literal.ParseTime).
		withFormat(literal.TimeFormat),
	edm.PrimitiveTypeKind_DateTimeOffset: parser(diag.ErrorCode_InvalidDefaultDateTimeOffset, literal.ParseDateTimeOffset).
		withFormat(literal.DateTimeOffsetFormat),
	edm.PrimitiveTypeKind_String: parser(0, func(s string) (string, error) { return s, nil }),
}

// Validates default value text of draft against type.
//
// Returns typed default value, or nil if default was not supplied or is invalid.
// Default is allowed only for primitive non-spatial types.
func ValidateDefault(d Draft, t edm.IType) (any, []diag.Error) {
	text, ok := d.DefaultText()
	if !ok {
		return nil, nil
	}

	p, ok := defaultParsers[edm.PrimitiveKindOf(t)]
	if !ok {
		return nil, []diag.Error{diag.NewError(diag.ErrorCode_DefaultNotAllowed, d.Element(), msgDefaultNotAllowed, t.FullName())}
	}

	v, err := p.parse(text)
	if err == nil {
		return v, nil
	}

	var e diag.Error
	switch {
	case p.format != "":
		e = diag.NewError(p.code, d.Element(), msgInvalidDefaultForm, text, t.FullName(), p.format)
	case p.min != "" && errors.Is(err, literal.ErrOutOfRange):
		e = diag.NewError(p.code, d.Element(), msgInvalidDefaultRange, text, t.FullName(), p.min, p.max)
	default:
		e = diag.NewError(p.code, d.Element(), msgInvalidDefault, text, t.FullName(), err)
	}
	return nil, []diag.Error{e}
}
