/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package literal

import (
	"encoding/hex"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	floatRx   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	decimalRx = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)
	binaryRx  = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
)

var maxDecimal = decimal.RequireFromString(MaxDecimal)

// Parses boolean literal: «true», «false» (case insensitive), «1» or «0».
func ParseBoolean(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, errInvalid("Boolean", s, nil)
}

func parseInt(kind, s string, bits int, min, max string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errOutOfRange(kind, s, min, max)
		}
		return 0, errInvalid(kind, s, nil)
	}
	return v, nil
}

// Parses unsigned 8-bit integer literal.
func ParseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errOutOfRange("Byte", s, MinByte, MaxByte)
		}
		return 0, errInvalid("Byte", s, nil)
	}
	return byte(v), nil
}

func ParseSByte(s string) (int8, error) {
	v, err := parseInt("SByte", s, 8, MinSByte, MaxSByte)
	return int8(v), err
}

func ParseInt16(s string) (int16, error) {
	v, err := parseInt("Int16", s, 16, MinInt16, MaxInt16)
	return int16(v), err
}

func ParseInt32(s string) (int32, error) {
	v, err := parseInt("Int32", s, 32, MinInt32, MaxInt32)
	return int32(v), err
}

func ParseInt64(s string) (int64, error) {
	return parseInt("Int64", s, 64, MinInt64, MaxInt64)
}

func parseFloat(kind, s string, bits int, min, max string) (float64, error) {
	t := strings.TrimSpace(s)
	if !floatRx.MatchString(t) {
		return 0, errInvalid(kind, s, nil)
	}
	v, err := strconv.ParseFloat(t, bits)
	if err != nil || math.IsInf(v, 0) {
		return 0, errOutOfRange(kind, s, min, max)
	}
	return v, nil
}

// Parses single precision floating point literal. Infinities and NaN are not allowed.
func ParseSingle(s string) (float32, error) {
	v, err := parseFloat("Single", s, 32, MinSingle, MaxSingle)
	return float32(v), err
}

// Parses double precision floating point literal. Infinities and NaN are not allowed.
func ParseDouble(s string) (float64, error) {
	return parseFloat("Double", s, 64, MinDouble, MaxDouble)
}

// Parses decimal literal without exponent.
//
// Absolute value must not exceed 79228162514264337593543950335.
func ParseDecimal(s string) (decimal.Decimal, error) {
	t := strings.TrimSpace(s)
	if !decimalRx.MatchString(t) {
		return decimal.Zero, errInvalid("Decimal", s, nil)
	}
	v, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, errInvalid("Decimal", s, err)
	}
	if v.Abs().GreaterThan(maxDecimal) {
		return decimal.Zero, errOutOfRange("Decimal", s, MinDecimal, MaxDecimal)
	}
	return v, nil
}

// Parses GUID literal, e.g. «6ba7b810-9dad-11d1-80b4-00c04fd430c8».
//
// Braced, URN and 32 hex digits forms are accepted too.
func ParseGuid(s string) (uuid.UUID, error) {
	v, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, errInvalid("Guid", s, err)
	}
	return v, nil
}

// Parses binary literal «0x» followed by hex digits.
//
// Odd count of digits is padded with leading zero.
func ParseBinary(s string) ([]byte, error) {
	t := strings.TrimSpace(s)
	if !binaryRx.MatchString(t) {
		return nil, errInvalid("Binary", s, nil)
	}
	digits := t[2:]
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, errInvalid("Binary", s, err)
	}
	return b, nil
}
