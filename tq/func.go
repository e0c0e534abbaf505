// Copyright (C) 2024 C. J. Harris. All Rights Reserved.

package tq

import "github.com/cjharris/jvalue"

// Exists returns a selection that reports true if its argument satisfies
// the specified query. The arguments have the same constraints as Path.
func Exists(keys ...any) Selection {
	q := Path(keys...)
	return func(v jvalue.Value) bool {
		_, err := q.eval(v)
		return err == nil
	}
}

// Is returns a selection that reports true if its argument is of type T.
func Is[T jvalue.Value]() Selection {
	return func(v jvalue.Value) bool { _, ok := v.(T); return ok }
}

// IsNot returns a selection that reports true if its argument is not of
// type T.
func IsNot[T jvalue.Value]() Selection {
	return func(v jvalue.Value) bool { _, ok := v.(T); return !ok }
}

// Filter constructs a selection from the given function. The resulting
// selection discards any value whose type does not match T.
func Filter[T jvalue.Value](f func(T) bool) Selection {
	return func(v jvalue.Value) bool { w, ok := v.(T); return ok && f(w) }
}
