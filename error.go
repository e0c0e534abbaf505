// Copyright (C) 2024 C. J. Harris. All Rights Reserved.

package jvalue

import "fmt"

// ErrKind enumerates the grammar violations reported by the parser.
type ErrKind byte

// Constants defining the valid ErrKind values.
const (
	NoError                ErrKind = iota // no error
	UnexpectedEndOfInput                  // input ended inside a value
	UnexpectedCharacter                   // character does not begin or continue a value
	InvalidNumberFormat                   // malformed number literal
	UnterminatedString                    // string missing its closing quote
	InvalidEscapeSequence                 // invalid escape in a string
	ExpectedColon                         // object member missing ":"
	ExpectedCommaOrBracket                // array missing "," or "]"
	ExpectedCommaOrBrace                  // object missing "," or "}"
	ObjectKeyMustBeString                 // object key is not a quoted string
	TrailingCharacters                    // non-whitespace input after the value
	MaxDepthExceeded                      // nesting exceeds the configured limit
)

var kindStr = [...]string{
	NoError:                "no error",
	UnexpectedEndOfInput:   "unexpected end of input",
	UnexpectedCharacter:    "unexpected character",
	InvalidNumberFormat:    "invalid number format",
	UnterminatedString:     "unterminated string",
	InvalidEscapeSequence:  "invalid escape sequence",
	ExpectedColon:          `expected ":"`,
	ExpectedCommaOrBracket: `expected "," or "]"`,
	ExpectedCommaOrBrace:   `expected "," or "}"`,
	ObjectKeyMustBeString:  "object key must be a string",
	TrailingCharacters:     "trailing characters after value",
	MaxDepthExceeded:       "maximum nesting depth exceeded",
}

func (k ErrKind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return "invalid error kind"
	}
	return kindStr[v]
}

// ParseError is the concrete type of errors reported by the parser. It
// records the kind of grammar violation and the position at which it was
// detected. Positions are rune offsets into the input, not byte offsets.
type ParseError struct {
	Kind ErrKind
	Pos  int

	msg string
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.msg, e.Pos)
}

func parseErrorf(kind ErrKind, pos int, msg string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Pos: pos, msg: fmt.Sprintf(msg, args...)}
}

func parseError(kind ErrKind, pos int) *ParseError {
	return &ParseError{Kind: kind, Pos: pos, msg: kind.String()}
}
