// Copyright (C) 2024 C. J. Harris. All Rights Reserved.

package jvalue

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// DefaultMaxDepth is the nesting limit used by a Parser whose MaxDepth
// field is zero or negative.
const DefaultMaxDepth = 256

// A Parser parses complete JSON documents into value trees. The zero
// value is ready for use. Each call to Parse uses its own cursor state,
// so a single Parser may be shared freely among goroutines.
type Parser struct {
	// MaxDepth is the maximum number of nested arrays and objects the
	// parser will enter before failing with MaxDepthExceeded. If it is
	// zero or negative, DefaultMaxDepth is used.
	MaxDepth int
}

// Parse parses src as a single JSON value followed by optional
// whitespace. In case of error, the returned error has concrete type
// [*ParseError] and no value is returned.
func (p *Parser) Parse(src string) (Value, error) {
	limit := p.MaxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}
	ps := &parser{c: NewCursor(src), limit: limit}
	v, err := ps.parseValue(0)
	if err != nil {
		return nil, err
	}
	ps.c.SkipWhitespace()
	if !ps.c.AtEnd() {
		return nil, parseError(TrailingCharacters, ps.c.Pos())
	}
	return v, nil
}

// Parse parses src as a single JSON value using a default Parser.
func Parse(src string) (Value, error) {
	var p Parser
	return p.Parse(src)
}

// MustParse parses src as a single JSON value, and panics if parsing
// fails. This is intended for static data and tests, where an error
// means the input itself is broken.
func MustParse(src string) Value {
	v, err := Parse(src)
	if err != nil {
		panic("jvalue: " + err.Error())
	}
	return v
}

// parser is the ephemeral state of one Parse call: a cursor over the
// input and the configured nesting limit.
type parser struct {
	c     *Cursor
	limit int
}

// parseValue skips leading whitespace, then dispatches on the next
// character to the matching literal or structural production. depth is
// the number of enclosing arrays and objects.
func (p *parser) parseValue(depth int) (Value, error) {
	p.c.SkipWhitespace()
	ch, ok := p.c.Peek()
	if !ok {
		return nil, parseError(UnexpectedEndOfInput, p.c.Pos())
	}
	switch {
	case ch == 'n':
		return p.parseLiteral("null", Null{})
	case ch == 't':
		return p.parseLiteral("true", Bool(true))
	case ch == 'f':
		return p.parseLiteral("false", Bool(false))
	case ch == '"':
		return p.parseString()
	case ch == '[':
		return p.parseArray(depth)
	case ch == '{':
		return p.parseObject(depth)
	case ch == '-' || isDigit(ch):
		return p.parseNumber()
	default:
		return nil, parseErrorf(UnexpectedCharacter, p.c.Pos(), "unexpected character %q", ch)
	}
}

// parseLiteral consumes the exact characters of want and returns v.
// A partial match is an error at the position of the mismatch, never a
// fallthrough to another production.
func (p *parser) parseLiteral(want string, v Value) (Value, error) {
	for _, w := range want {
		pos := p.c.Pos()
		ch, ok := p.c.Advance()
		if !ok {
			return nil, parseError(UnexpectedEndOfInput, pos)
		} else if ch != w {
			return nil, parseErrorf(UnexpectedCharacter, pos, "unexpected character %q in %q", ch, want)
		}
	}
	return v, nil
}

func (p *parser) parseString() (Value, error) {
	s, err := p.parseStringText()
	if err != nil {
		return nil, err
	}
	return String(s), nil
}

// parseStringText consumes a quoted string and returns its decoded text.
// Precondition: the cursor is at the opening quote.
func (p *parser) parseStringText() (string, error) {
	start := p.c.Pos()
	p.c.Advance() // consume '"'

	var buf strings.Builder
	for {
		ch, ok := p.c.Advance()
		if !ok {
			return "", parseError(UnterminatedString, start)
		}
		switch ch {
		case '"':
			return buf.String(), nil
		case '\\':
			dec, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			buf.WriteRune(dec)
		default:
			buf.WriteRune(ch)
		}
	}
}

// parseEscape consumes the remainder of a backslash escape, whose
// backslash has already been consumed, and returns the decoded rune.
func (p *parser) parseEscape() (rune, error) {
	pos := p.c.Pos()
	sel, ok := p.c.Advance()
	if !ok {
		return 0, parseError(UnexpectedEndOfInput, pos)
	}
	switch sel {
	case '"', '\\', '/':
		return sel, nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		return p.parseUnicodeEscape(pos)
	default:
		return 0, parseErrorf(InvalidEscapeSequence, pos, "invalid escape %q", sel)
	}
}

// parseUnicodeEscape consumes the four hex digits of a \uXXXX escape.
// A high surrogate must be immediately followed by a \uXXXX low
// surrogate, and the pair is combined into a single rune; a lone or
// misordered surrogate is an error. escPos is the position of the "u"
// selector, used for diagnostics.
func (p *parser) parseUnicodeEscape(escPos int) (rune, error) {
	hi, err := p.readHex4()
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(hi) {
		return hi, nil
	}
	if hi >= 0xDC00 {
		return 0, parseErrorf(InvalidEscapeSequence, escPos, "unpaired low surrogate %04X", hi)
	}

	// A high surrogate requires a \uXXXX low surrogate right behind it.
	pos := p.c.Pos()
	if ch, ok := p.c.Advance(); !ok {
		return 0, parseError(UnexpectedEndOfInput, pos)
	} else if ch != '\\' {
		return 0, parseErrorf(InvalidEscapeSequence, escPos, "unpaired high surrogate %04X", hi)
	}
	pos = p.c.Pos()
	if ch, ok := p.c.Advance(); !ok {
		return 0, parseError(UnexpectedEndOfInput, pos)
	} else if ch != 'u' {
		return 0, parseErrorf(InvalidEscapeSequence, escPos, "unpaired high surrogate %04X", hi)
	}
	lo, err := p.readHex4()
	if err != nil {
		return 0, err
	}
	dec := utf16.DecodeRune(hi, lo)
	if dec == 0xFFFD {
		return 0, parseErrorf(InvalidEscapeSequence, escPos, "invalid surrogate pair %04X %04X", hi, lo)
	}
	return dec, nil
}

// readHex4 reads exactly 4 hexadecimal digits and returns their value.
func (p *parser) readHex4() (rune, error) {
	var v rune
	for i := 0; i < 4; i++ {
		pos := p.c.Pos()
		ch, ok := p.c.Advance()
		if !ok {
			return 0, parseError(UnexpectedEndOfInput, pos)
		}
		switch {
		case ch >= '0' && ch <= '9':
			v = v<<4 + (ch - '0')
		case ch >= 'a' && ch <= 'f':
			v = v<<4 + (ch - 'a' + 10)
		case ch >= 'A' && ch <= 'F':
			v = v<<4 + (ch - 'A' + 10)
		default:
			return 0, parseErrorf(InvalidEscapeSequence, pos, "invalid hex digit %q in Unicode escape", ch)
		}
	}
	return v, nil
}

// parseNumber consumes a number literal and converts it to a 64-bit
// float. Precondition: the cursor is at a digit or "-".
func (p *parser) parseNumber() (Value, error) {
	start := p.c.Pos()
	fail := func() (Value, error) {
		return nil, parseErrorf(InvalidNumberFormat, start, "invalid number %q", p.c.Text(start, p.c.Pos()))
	}

	if ch, ok := p.c.Peek(); ok && ch == '-' {
		p.c.Advance()
	}
	if p.digits() == 0 {
		return fail()
	}

	var hasDot, hasExp bool
	if ch, ok := p.c.Peek(); ok && ch == '.' {
		p.c.Advance()
		hasDot = true
		if p.digits() == 0 {
			return fail()
		}
	}
	if ch, ok := p.c.Peek(); ok && (ch == 'e' || ch == 'E') {
		p.c.Advance()
		hasExp = true
		if ch, ok := p.c.Peek(); ok && (ch == '+' || ch == '-') {
			p.c.Advance()
		}
		if p.digits() == 0 {
			return fail()
		}
	}

	// A second fraction or exponent marker belongs to the malformed
	// literal, not to whatever follows it.
	if ch, ok := p.c.Peek(); ok {
		if (ch == '.' && (hasDot || hasExp)) || ((ch == 'e' || ch == 'E') && hasExp) {
			p.c.Advance()
			return fail()
		}
	}

	text := p.c.Text(start, p.c.Pos())
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fail()
	}
	return Number(f), nil
}

// digits consumes a run of decimal digits and reports how many.
func (p *parser) digits() int {
	var n int
	for {
		ch, ok := p.c.Peek()
		if !ok || !isDigit(ch) {
			return n
		}
		p.c.Advance()
		n++
	}
}

// parseArray consumes an array. Precondition: the cursor is at "[".
func (p *parser) parseArray(depth int) (Value, error) {
	if depth >= p.limit {
		return nil, parseError(MaxDepthExceeded, p.c.Pos())
	}
	p.c.Advance() // consume '['
	p.c.SkipWhitespace()
	if ch, ok := p.c.Peek(); ok && ch == ']' {
		p.c.Advance()
		return Array{}, nil
	}

	arr := Array{}
	for {
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		p.c.SkipWhitespace()
		pos := p.c.Pos()
		ch, ok := p.c.Advance()
		if !ok {
			return nil, parseError(ExpectedCommaOrBracket, pos)
		}
		switch ch {
		case ']':
			return arr, nil
		case ',':
			p.c.SkipWhitespace()
			if ch, ok := p.c.Peek(); ok && ch == ']' {
				// no trailing commas
				return nil, parseErrorf(ExpectedCommaOrBracket, p.c.Pos(), `unexpected "]" after ","`)
			}
		default:
			return nil, parseErrorf(ExpectedCommaOrBracket, pos, `expected "," or "]", got %q`, ch)
		}
	}
}

// parseObject consumes an object. Duplicate keys are legal; the later
// occurrence replaces the earlier one. Precondition: the cursor is at "{".
func (p *parser) parseObject(depth int) (Value, error) {
	if depth >= p.limit {
		return nil, parseError(MaxDepthExceeded, p.c.Pos())
	}
	p.c.Advance() // consume '{'
	p.c.SkipWhitespace()
	if ch, ok := p.c.Peek(); ok && ch == '}' {
		p.c.Advance()
		return Object{}, nil
	}

	obj := Object{}
	for {
		p.c.SkipWhitespace()
		keyPos := p.c.Pos()
		ch, ok := p.c.Peek()
		if !ok {
			return nil, parseError(UnexpectedEndOfInput, keyPos)
		} else if ch != '"' {
			return nil, parseErrorf(ObjectKeyMustBeString, keyPos, "object key must be a string, got %q", ch)
		}
		key, err := p.parseStringText()
		if err != nil {
			return nil, err
		}

		p.c.SkipWhitespace()
		pos := p.c.Pos()
		ch, ok = p.c.Advance()
		if !ok {
			return nil, parseError(UnexpectedEndOfInput, pos)
		} else if ch != ':' {
			return nil, parseErrorf(ExpectedColon, pos, `expected ":", got %q`, ch)
		}

		v, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		obj[key] = v

		p.c.SkipWhitespace()
		pos = p.c.Pos()
		ch, ok = p.c.Advance()
		if !ok {
			return nil, parseError(ExpectedCommaOrBrace, pos)
		}
		switch ch {
		case '}':
			return obj, nil
		case ',':
			p.c.SkipWhitespace()
			if ch, ok := p.c.Peek(); ok && ch == '}' {
				// no trailing commas
				return nil, parseErrorf(ExpectedCommaOrBrace, p.c.Pos(), `unexpected "}" after ","`)
			}
		default:
			return nil, parseErrorf(ExpectedCommaOrBrace, pos, `expected "," or "}", got %q`, ch)
		}
	}
}
