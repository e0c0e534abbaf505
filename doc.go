// Copyright (C) 2024 C. J. Harris. All Rights Reserved.

// Package jvalue implements a strict recursive-descent JSON parser that
// converts a complete text document into a tree of typed values.
//
// # Parsing
//
// Call Parse with a fully-decoded input string. The result is a Value
// whose concrete type is one of Null, Bool, Number, String, Array, or
// Object:
//
//	v, err := jvalue.Parse(`{"name": "aki", "age": 9}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	obj := v.(jvalue.Object)
//
// The input must contain exactly one value, optionally surrounded by
// whitespace. Reading the document from a file or stream, and decoding
// its bytes to text, are the caller's concern; the parser only consumes
// an in-memory buffer.
//
// Parsing is strict: the first grammar violation aborts the parse and is
// returned as a *ParseError carrying the kind of violation and the rune
// offset at which it was detected. There is no error recovery and no
// partial result. Non-standard extensions such as comments and trailing
// commas are rejected.
//
// Nesting of arrays and objects is bounded. The default bound suits
// ordinary documents; construct a Parser to change it:
//
//	p := jvalue.Parser{MaxDepth: 10000}
//	v, err := p.Parse(deeplyNested)
//
// # Values
//
// Escape sequences in strings, including \uXXXX escapes and surrogate
// pairs, are decoded during parsing; a String holds plain text. Numbers
// are 64-bit floats. Objects are maps with unique keys; if a document
// repeats a key, the later value wins.
//
// Every Value has a canonical encoding available from its JSON method.
// Reparsing a value's canonical encoding yields an equal value.
//
// The subpackages cursor and tq provide traversal and structural queries
// over parsed trees.
package jvalue
