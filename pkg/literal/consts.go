/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package literal

// Range literals, used to render error messages
const (
	MinByte    = "0"
	MaxByte    = "255"
	MinSByte   = "-128"
	MaxSByte   = "127"
	MinInt16   = "-32768"
	MaxInt16   = "32767"
	MinInt32   = "-2147483648"
	MaxInt32   = "2147483647"
	MinInt64   = "-9223372036854775808"
	MaxInt64   = "9223372036854775807"
	MinSingle  = "-3.40282347E+38"
	MaxSingle  = "3.40282347E+38"
	MinDouble  = "-1.7976931348623157E+308"
	MaxDouble  = "1.7976931348623157E+308"
	MinDecimal = "-79228162514264337593543950335"
	MaxDecimal = "79228162514264337593543950335"
)

// Formats of literals, used to render error messages
const (
	BinaryFormat         = "0x1234567890ABCDEF"
	DateTimeFormat       = "yyyy-MM-dd HH:mm:ss.fffZ"
	TimeFormat           = "HH:mm:ss.fffffff"
	DateTimeOffsetFormat = "yyyy-MM-dd HH:mm:ss.fffffff+HH:mm"
	GuidFormat           = "dddddddd-dddd-dddd-dddd-dddddddddddd"
)

const (
	maxFractionDigits = 7
	maxOffsetMinutes  = 14 * 60
)
