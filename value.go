// Copyright (C) 2024 C. J. Harris. All Rights Reserved.

package jvalue

// A Value is a parsed JSON value. The concrete type of a Value is one of
// Null, Bool, Number, String, Array, or Object. A value tree returned by
// Parse is owned by the caller; the parser retains no references to it.
type Value interface {
	// JSON returns the canonical JSON encoding of the value.
	JSON() string

	value() // seals the set of implementations
}

// Null represents the JSON null constant.
type Null struct{}

// Bool is a JSON boolean value.
type Bool bool

// Number is a JSON number. All numbers, integer or fractional, are
// represented as 64-bit floats; integers of magnitude beyond 2^53 lose
// exact fidelity.
type Number float64

// String is a JSON string with all escape sequences already decoded.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Object maps member keys to values. Keys are unique; when a document
// repeats a key, the later occurrence wins. Iteration order is not a
// property of the document.
type Object map[string]Value

func (Null) value()   {}
func (Bool) value()   {}
func (Number) value() {}
func (String) value() {}
func (Array) value()  {}
func (Object) value() {}

// Len reports the length of the string in bytes of its UTF-8 encoding.
func (s String) Len() int { return len(s) }

// Len reports the number of elements in the array.
func (a Array) Len() int { return len(a) }

// Len reports the number of members in the object.
func (o Object) Len() int { return len(o) }

// Len returns 0, the length of the null value.
func (Null) Len() int { return 0 }

// Find returns the value of the member of o with the given key, or nil if
// no such member exists.
func (o Object) Find(key string) Value {
	if v, ok := o[key]; ok {
		return v
	}
	return nil
}
