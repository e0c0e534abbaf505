// Copyright (C) 2024 C. J. Harris. All Rights Reserved.

package jvalue

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/cjharris/jvalue/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	esc := escape.Quote(mem.S(src))
	buf := make([]byte, 0, len(esc)+2)
	buf = append(buf, '"')
	buf = append(buf, esc...)
	buf = append(buf, '"')
	return string(buf)
}

// Unquote decodes a JSON string value. Double quotation marks are removed
// and escape sequences are replaced with their decoded equivalents. It
// uses the same string grammar as Parse, so errors have concrete type
// [*ParseError] with exact offsets.
func Unquote(src string) (string, error) {
	ps := &parser{c: NewCursor(src), limit: DefaultMaxDepth}
	ch, ok := ps.c.Peek()
	if !ok {
		return "", parseError(UnexpectedEndOfInput, 0)
	} else if ch != '"' {
		return "", parseErrorf(UnexpectedCharacter, 0, "unexpected character %q", ch)
	}
	s, err := ps.parseStringText()
	if err != nil {
		return "", err
	}
	if !ps.c.AtEnd() {
		return "", parseError(TrailingCharacters, ps.c.Pos())
	}
	return s, nil
}

// JSON returns the canonical encoding "null".
func (Null) JSON() string { return "null" }

// JSON returns the canonical encoding "true" or "false".
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// JSON returns the shortest decimal encoding that reparses to the same
// 64-bit float.
func (n Number) JSON() string {
	f := float64(n)

	// Use exponent form only outside the range where plain decimal stays
	// readable, as encoding/json does.
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.FormatFloat(f, format, -1, 64)
}

// JSON returns the quoted, escaped encoding of the string.
func (s String) JSON() string { return Quote(string(s)) }

// JSON returns the encoding of the array with elements in order.
func (a Array) JSON() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(v.JSON())
	}
	buf.WriteByte(']')
	return buf.String()
}

// JSON returns the encoding of the object with members in sorted key
// order, so that canonical output is deterministic.
func (o Object) JSON() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, key := range slices.Sorted(maps.Keys(o)) {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(Quote(key))
		buf.WriteByte(':')
		buf.WriteString(o[key].JSON())
	}
	buf.WriteByte('}')
	return buf.String()
}
