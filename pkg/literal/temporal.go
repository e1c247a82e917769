/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package literal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type dateAST struct {
	Year  string `parser:"@Digits '-'"`
	Month string `parser:"@Digits '-'"`
	Day   string `parser:"@Digits"`
}

type clockAST struct {
	Hour     string `parser:"@Digits ':'"`
	Minute   string `parser:"@Digits ':'"`
	Second   string `parser:"@Digits"`
	Fraction string `parser:"( '.' @Digits )?"`
}

type offsetAST struct {
	Zulu   string `parser:"@Zulu"`
	Sign   string `parser:"| @Sign"`
	Hour   string `parser:"@Digits ':'"`
	Minute string `parser:"@Digits"`
}

type dateTimeAST struct {
	Date   dateAST    `parser:"@@ Sep"`
	Clock  clockAST   `parser:"@@"`
	Offset *offsetAST `parser:"@@?"`
}

type timeAST struct {
	Clock clockAST `parser:"@@"`
}

var temporalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Digits", Pattern: `\d+`},
	{Name: "Zulu", Pattern: `[Zz]`},
	{Name: "Sep", Pattern: `[ Tt]`},
	{Name: "Sign", Pattern: `[-+]`},
	{Name: "Punct", Pattern: `[:.]`},
})

var (
	dateTimeParser = participle.MustBuild[dateTimeAST](participle.Lexer(temporalLexer))
	timeParser     = participle.MustBuild[timeAST](participle.Lexer(temporalLexer))
)

// Returns decimal number of exactly width digits
func digits(s string, width int) (int, error) {
	if len(s) != width {
		return 0, fmt.Errorf("«%s» must be %d digits", s, width)
	}
	return strconv.Atoi(s)
}

func (c clockAST) duration() (time.Duration, error) {
	h, err := digits(c.Hour, 2)
	if err != nil {
		return 0, err
	}
	m, err := digits(c.Minute, 2)
	if err != nil {
		return 0, err
	}
	s, err := digits(c.Second, 2)
	if err != nil {
		return 0, err
	}
	if h > 23 || m > 59 || s > 59 {
		return 0, fmt.Errorf("time %02d:%02d:%02d is out of range", h, m, s)
	}
	ns, err := c.nanoseconds()
	if err != nil {
		return 0, err
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second + time.Duration(ns), nil
}

func (c clockAST) nanoseconds() (int, error) {
	if c.Fraction == "" {
		return 0, nil
	}
	if len(c.Fraction) > maxFractionDigits {
		return 0, fmt.Errorf("fraction «%s» exceeds %d digits", c.Fraction, maxFractionDigits)
	}
	return strconv.Atoi(c.Fraction + strings.Repeat("0", 9-len(c.Fraction)))
}

func (o *offsetAST) location() (*time.Location, error) {
	if o.Zulu != "" {
		return time.UTC, nil
	}
	h, err := digits(o.Hour, 2)
	if err != nil {
		return nil, err
	}
	m, err := digits(o.Minute, 2)
	if err != nil {
		return nil, err
	}
	if m > 59 || h*60+m > maxOffsetMinutes {
		return nil, fmt.Errorf("offset %s%02d:%02d is out of range", o.Sign, h, m)
	}
	secs := (h*60 + m) * 60
	if o.Sign == "-" {
		secs = -secs
	}
	return time.FixedZone("", secs), nil
}

func (a *dateTimeAST) toTime() (time.Time, error) {
	y, err := digits(a.Date.Year, 4)
	if err != nil {
		return time.Time{}, err
	}
	mon, err := digits(a.Date.Month, 2)
	if err != nil {
		return time.Time{}, err
	}
	d, err := digits(a.Date.Day, 2)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := a.Clock.duration()
	if err != nil {
		return time.Time{}, err
	}
	loc := time.UTC
	if a.Offset != nil {
		if loc, err = a.Offset.location(); err != nil {
			return time.Time{}, err
		}
	}
	date := time.Date(y, time.Month(mon), d, 0, 0, 0, 0, loc)
	if date.Year() != y || int(date.Month()) != mon || date.Day() != d || y < 1 {
		return time.Time{}, fmt.Errorf("date %04d-%02d-%02d does not exist", y, mon, d)
	}
	return date.Add(clock), nil
}

func parseDateTime(kind, s string) (*dateTimeAST, error) {
	ast, err := dateTimeParser.ParseString(kind, strings.TrimSpace(s))
	if err != nil {
		return nil, errInvalid(kind, s, err)
	}
	return ast, nil
}

// Parses date and time literal «yyyy-MM-dd HH:mm:ss[.fffffff][Z]».
//
// Date and time may be separated by «T». Returned time is in UTC.
func ParseDateTime(s string) (time.Time, error) {
	const kind = "DateTime"
	ast, err := parseDateTime(kind, s)
	if err != nil {
		return time.Time{}, err
	}
	if ast.Offset != nil && ast.Offset.Zulu == "" {
		return time.Time{}, errInvalid(kind, s, fmt.Errorf("offset is not allowed"))
	}
	t, err := ast.toTime()
	if err != nil {
		return time.Time{}, errInvalid(kind, s, err)
	}
	return t, nil
}

// Parses time of day literal «HH:mm:ss[.fffffff]» into duration since midnight.
func ParseTime(s string) (time.Duration, error) {
	const kind = "Time"
	ast, err := timeParser.ParseString(kind, strings.TrimSpace(s))
	if err != nil {
		return 0, errInvalid(kind, s, err)
	}
	d, err := ast.Clock.duration()
	if err != nil {
		return 0, errInvalid(kind, s, err)
	}
	return d, nil
}

// Parses date and time with offset literal «yyyy-MM-dd HH:mm:ss[.fffffff](Z|±HH:mm)».
//
// Offset is required and must be within ±14:00.
func ParseDateTimeOffset(s string) (time.Time, error) {
	const kind = "DateTimeOffset"
	ast, err := parseDateTime(kind, s)
	if err != nil {
		return time.Time{}, err
	}
	if ast.Offset == nil {
		return time.Time{}, errInvalid(kind, s, fmt.Errorf("offset is required"))
	}
	t, err := ast.toTime()
	if err != nil {
		return time.Time{}, errInvalid(kind, s, err)
	}
	return t, nil
}
