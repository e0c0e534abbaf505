// Copyright (C) 2024 C. J. Harris. All Rights Reserved.

package tq

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/cjharris/jvalue"
)

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return objKey(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	case jvalue.Value:
		return Value(t)
	default:
		panic(fmt.Sprintf("invalid path element %T", key))
	}
}

type objKey string

func (o objKey) eval(v jvalue.Value) (jvalue.Value, error) {
	return with(v, func(obj jvalue.Object) (jvalue.Value, error) {
		w := obj.Find(string(o))
		if w == nil {
			return nil, fmt.Errorf("key %q not found", o)
		}
		return w, nil
	})
}

type nthQuery int

func (nq nthQuery) eval(v jvalue.Value) (jvalue.Value, error) {
	return with(v, func(a jvalue.Array) (jvalue.Value, error) {
		idx := int(nq)
		if idx < 0 {
			idx += len(a)
		}
		if idx < 0 || idx >= len(a) {
			return nil, fmt.Errorf("index %d out of range (0..%d)", nq, len(a))
		}
		return a[idx], nil
	})
}

type sliceQuery struct{ lo, hi int }

func (q sliceQuery) eval(v jvalue.Value) (jvalue.Value, error) {
	return with(v, func(arr jvalue.Array) (jvalue.Value, error) {
		lox := q.lo
		if lox < 0 {
			lox += len(arr)
		}
		hix := q.hi
		if hix <= 0 {
			hix += len(arr)
		}
		if lox < 0 || lox >= len(arr) {
			return nil, fmt.Errorf("index %d out of range (0..%d)", q.lo, len(arr))
		} else if hix < 0 || hix > len(arr) {
			return nil, fmt.Errorf("index %d out of range (0..%d)", q.hi, len(arr))
		} else if lox > hix {
			return nil, fmt.Errorf("index start %d > end %d", q.lo, q.hi)
		}
		return arr[lox:hix], nil
	})
}

type pickQuery []int

func (q pickQuery) eval(v jvalue.Value) (jvalue.Value, error) {
	return with(v, func(arr jvalue.Array) (jvalue.Value, error) {
		out := jvalue.Array{}
		for _, off := range q {
			if off < 0 {
				off += len(arr)
			}
			if off < 0 || off >= len(arr) {
				return nil, fmt.Errorf("index %d out of range (0..%d)", off, len(arr))
			}
			out = append(out, arr[off])
		}
		return out, nil
	})
}

type eachQuery struct{ Query }

func (q eachQuery) eval(v jvalue.Value) (jvalue.Value, error) {
	return with(v, func(a jvalue.Array) (jvalue.Value, error) {
		out := jvalue.Array{}
		for i, elt := range a {
			w, err := q.Query.eval(elt)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out = append(out, w)
		}
		return out, nil
	})
}

type lenQuery struct{}

func (lenQuery) eval(v jvalue.Value) (jvalue.Value, error) {
	if t, ok := v.(interface {
		Len() int
	}); ok {
		return jvalue.Number(t.Len()), nil
	}
	return nil, fmt.Errorf("cannot take length of %T", v)
}

type recQuery struct{ Query }

func (q recQuery) eval(v jvalue.Value) (jvalue.Value, error) {
	var out jvalue.Array

	stk := []jvalue.Value{v}
	for len(stk) != 0 {
		next := stk[len(stk)-1]
		stk = stk[:len(stk)-1]

		r, err := q.Query.eval(next)
		if err == nil {
			if a, ok := r.(jvalue.Array); ok {
				out = append(out, a...)
			} else {
				out = append(out, r)
			}
		}

		// N.B. Push in reverse order, so we visit in lexical order.
		switch t := next.(type) {
		case jvalue.Object:
			keys := slices.Sorted(maps.Keys(t))
			for i := len(keys) - 1; i >= 0; i-- {
				stk = append(stk, t[keys[i]])
			}
		case jvalue.Array:
			for i := len(t) - 1; i >= 0; i-- {
				stk = append(stk, t[i])
			}
		}
	}

	if len(out) == 0 {
		return nil, errors.New("no matches")
	}
	return out, nil
}

type constQuery struct{ jvalue.Value }

func (c constQuery) eval(jvalue.Value) (jvalue.Value, error) {
	return c.Value, nil
}

type globQuery struct{}

func (globQuery) eval(v jvalue.Value) (jvalue.Value, error) {
	switch t := v.(type) {
	case jvalue.Object:
		out := make(jvalue.Array, 0, len(t))
		for _, key := range slices.Sorted(maps.Keys(t)) {
			out = append(out, t[key])
		}
		return out, nil
	case jvalue.Array:
		return t, nil
	default:
		return nil, errors.New("no matching values")
	}
}

type keysQuery struct{}

func (keysQuery) eval(v jvalue.Value) (jvalue.Value, error) {
	switch t := v.(type) {
	case jvalue.Object:
		out := jvalue.Array{}
		for _, key := range slices.Sorted(maps.Keys(t)) {
			out = append(out, jvalue.String(key))
		}
		return out, nil
	case jvalue.Null:
		return jvalue.Array{}, nil
	default:
		return nil, fmt.Errorf("cannot list keys of %T", v)
	}
}

func with[T jvalue.Value](v jvalue.Value, f func(T) (jvalue.Value, error)) (jvalue.Value, error) {
	if w, ok := v.(T); ok {
		return f(w)
	}
	var zero T
	return nil, fmt.Errorf("got %T, want %T", v, zero)
}
