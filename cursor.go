// Copyright (C) 2024 C. J. Harris. All Rights Reserved.

package jvalue

// A Cursor tracks a position in a sequence of Unicode scalar values.  The
// input is decoded up front so that every position is a rune offset and a
// multi-byte encoded character can never be split. A Cursor is single-use
// parse state: it is mutated in place and must not be shared between
// goroutines.
type Cursor struct {
	src []rune
	pos int
}

// NewCursor constructs a Cursor positioned at the start of src.
func NewCursor(src string) *Cursor { return &Cursor{src: []rune(src)} }

// Peek returns the rune at the current position without consuming it.
// It reports false at the end of input.
func (c *Cursor) Peek() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos], true
}

// Advance returns and consumes the rune at the current position.
// It reports false at the end of input.
func (c *Cursor) Advance() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	ch := c.src[c.pos]
	c.pos++
	return ch, true
}

// SkipWhitespace consumes zero or more JSON whitespace characters: space,
// tab, line feed, and carriage return. No other characters are skipped.
func (c *Cursor) SkipWhitespace() {
	for c.pos < len(c.src) && isSpace(c.src[c.pos]) {
		c.pos++
	}
}

// AtEnd reports whether the position has reached the end of input.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.src) }

// Pos returns the current position as a rune offset.
func (c *Cursor) Pos() int { return c.pos }

// Text returns the input between the rune offsets pos and end.
func (c *Cursor) Text(pos, end int) string { return string(c.src[pos:end]) }

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
