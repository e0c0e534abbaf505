// Copyright (C) 2024 C. J. Harris. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/cjharris/jvalue"
	"github.com/cjharris/jvalue/cursor"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

// testPathFunc reports the length of an array or object value.
func testPathFunc(v jvalue.Value) (jvalue.Value, error) {
	switch t := v.(type) {
	case jvalue.Array:
		return jvalue.Number(t.Len()), nil
	case jvalue.Object:
		return jvalue.Number(t.Len()), nil
	default:
		return nil, errors.New("not a collection")
	}
}

func TestCursor(t *testing.T) {
	v := jvalue.MustParse(testJSON)

	tests := []struct {
		name string
		path []any
		want jvalue.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, nil, true},
		{"WrongType", []any{11}, nil, true},

		{"ArrayPos", []any{"list", 1},
			jvalue.Object{"x": jvalue.Number(2)},
			false,
		},
		{"ArrayNeg", []any{"list", -1},
			jvalue.Object{"x": jvalue.Number(2)},
			false,
		},
		{"ArrayRange", []any{"o", 25}, nil, true},
		{"ObjPath", []any{"xyz", "d"}, jvalue.Bool(true), false},
		{"DeepPath", []any{"list", 0, "x"}, jvalue.Number(1), false},

		{"FuncArray", []any{"o", testPathFunc}, jvalue.Number(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, jvalue.Number(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			if err := c.Err(); err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
					return
				}
				t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
			} else if tc.fail {
				t.Fatalf("Down %+v: got %+v, want error", tc.path, c.Value())
			}
			if diff := cmp.Diff(tc.want, c.Value()); diff != "" {
				t.Errorf("Down %+v: (-want, +got)\n%s", tc.path, diff)
			}
		})
	}
}

func TestCursorMovement(t *testing.T) {
	v := jvalue.MustParse(testJSON)
	c := cursor.New(v)

	if !c.AtOrigin() {
		t.Error("New cursor is not at origin")
	}
	if got := c.Origin(); !cmp.Equal(got, v) {
		t.Errorf("Origin: got %+v, want root", got)
	}

	c.Down("list", 0, "x")
	if err := c.Err(); err != nil {
		t.Fatalf("Down: unexpected error: %v", err)
	}
	if got := len(c.Path()); got != 4 {
		t.Errorf("Path length: got %d, want 4", got)
	}

	c.Up()
	if diff := cmp.Diff(jvalue.Value(jvalue.Object{"x": jvalue.Number(1)}), c.Value()); diff != "" {
		t.Errorf("Value after Up: (-want, +got)\n%s", diff)
	}

	c.Reset()
	if !c.AtOrigin() {
		t.Error("Reset did not return to origin")
	}

	// A failed Down records an error; a later Down clears it.
	c.Down("nonesuch")
	if c.Err() == nil {
		t.Error("Down nonesuch: expected error")
	}
	c.Reset()
	c.Down("y", "hello")
	if err := c.Err(); err != nil {
		t.Errorf("Down after Reset: unexpected error: %v", err)
	}
	if diff := cmp.Diff(jvalue.Value(jvalue.String("there")), c.Value()); diff != "" {
		t.Errorf("Value: (-want, +got)\n%s", diff)
	}
}

func TestPath(t *testing.T) {
	v := jvalue.MustParse(testJSON)

	s, err := cursor.Path[jvalue.String](v, "o", -1)
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	}
	if s != "yourself" {
		t.Errorf("Path: got %q, want \"yourself\"", s)
	}

	if _, err := cursor.Path[jvalue.Number](v, "y", "hello"); err == nil {
		t.Error("Path with wrong type: expected error")
	}
	if _, err := cursor.Path[jvalue.String](v, "missing"); err == nil {
		t.Error("Path with missing key: expected error")
	}
}
