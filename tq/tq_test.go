// Copyright (C) 2024 C. J. Harris. All Rights Reserved.

package tq_test

import (
	"testing"

	"github.com/cjharris/jvalue"
	"github.com/cjharris/jvalue/tq"
	"github.com/google/go-cmp/cmp"
)

const storeJSON = `{
  "store": {
    "book": [
      {"category": "reference", "author": "Nigel Rees", "title": "Sayings of the Century", "price": 8.95},
      {"category": "fiction", "author": "Evelyn Waugh", "title": "Sword of Honour", "price": 12.99},
      {"category": "fiction", "author": "Herman Melville", "title": "Moby Dick", "isbn": "0-553-21311-3", "price": 8.99},
      {"category": "fiction", "author": "J. R. R. Tolkien", "title": "The Lord of the Rings", "isbn": "0-395-19395-8", "price": 22.99}
    ],
    "bicycle": {"color": "red", "price": 19.95}
  }
}`

func TestQueries(t *testing.T) {
	val := jvalue.MustParse(storeJSON)

	tests := []struct {
		name  string
		query tq.Query
		want  string // canonical JSON
	}{
		{
			"AllAuthors",
			tq.Path("store", "book", tq.Each("author")),
			`["Nigel Rees","Evelyn Waugh","Herman Melville","J. R. R. Tolkien"]`,
		},
		{
			"AllAuthorsRecur",
			tq.Recur("author"),
			`["Nigel Rees","Evelyn Waugh","Herman Melville","J. R. R. Tolkien"]`,
		},
		{
			"AllPrices",
			tq.Path("store", tq.Recur("price")),
			// bicycle sorts before book
			`[19.95,8.95,12.99,8.99,22.99]`,
		},
		{
			"Book2",
			tq.Path("store", "book", 2, "title"),
			`"Moby Dick"`,
		},
		{
			"LastBook",
			tq.Path("store", "book", -1, "title"),
			`"The Lord of the Rings"`,
		},
		{
			"FirstTwoBooks",
			tq.Path("store", "book", tq.Slice(0, 2), tq.Each("title")),
			`["Sayings of the Century","Sword of Honour"]`,
		},
		{
			"PickEnds",
			tq.Path("store", "book", tq.Pick(0, -1), tq.Each("price")),
			`[8.95,22.99]`,
		},
		{
			"BookCount",
			tq.Path("store", "book", tq.Len()),
			`4`,
		},
		{
			"StoreKeys",
			tq.Path("store", tq.Keys()),
			`["bicycle","book"]`,
		},
		{
			"StoreGlob",
			tq.Path("store", tq.Glob(), tq.Len()),
			`2`,
		},
		{
			"BooksWithISBN",
			tq.Path("store", "book", tq.Exists("isbn"), tq.Each("title")),
			`["Moby Dick","The Lord of the Rings"]`,
		},
		{
			"CheapBooks",
			tq.Path("store", "book",
				tq.Filter(func(o jvalue.Object) bool {
					p, ok := o.Find("price").(jvalue.Number)
					return ok && p < 10
				}),
				tq.Each("title")),
			`["Sayings of the Century","Moby Dick"]`,
		},
		{
			"OnlyObjects",
			tq.Path("store", "book", tq.Is[jvalue.Object](), tq.Len()),
			`4`,
		},
		{
			"Titles",
			tq.Path("store", "book", tq.Mapping(func(v jvalue.Value) jvalue.Value {
				return v.(jvalue.Object).Find("title")
			}), 0),
			`"Sayings of the Century"`,
		},
		{
			"AltFallback",
			tq.Alt{tq.Path("nonesuch"), tq.Path("store", "bicycle", "color")},
			`"red"`,
		},
		{
			"Const",
			tq.Value("hello"),
			`"hello"`,
		},
		{
			"BuildObject",
			tq.Object{
				"n":     tq.Path("store", "book", tq.Len()),
				"cheap": tq.Path("store", "bicycle", "price"),
			},
			`{"cheap":19.95,"n":4}`,
		},
		{
			"BuildArray",
			tq.Array{
				tq.Path("store", "bicycle", "color"),
				tq.Value(nil),
				tq.Value(3),
			},
			`["red",null,3]`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tq.Eval(val, tc.query)
			if err != nil {
				t.Fatalf("Eval: unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got.JSON()); diff != "" {
				t.Errorf("Result: (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestQueryErrors(t *testing.T) {
	val := jvalue.MustParse(storeJSON)

	tests := []struct {
		name  string
		query tq.Query
	}{
		{"MissingKey", tq.Path("store", "nonesuch")},
		{"KeyOfArray", tq.Path("store", "book", "title")},
		{"IndexOfObject", tq.Path("store", 0)},
		{"IndexRange", tq.Path("store", "book", 9)},
		{"IndexRangeNeg", tq.Path("store", "book", -9)},
		{"SliceRange", tq.Path("store", "book", tq.Slice(2, 1))},
		{"PickRange", tq.Path("store", "book", tq.Pick(0, 17))},
		{"IndexOfString", tq.Path("store", "bicycle", "color", 0)},
		{"EmptyAlt", tq.Alt{}},
		{"RecurNoMatch", tq.Recur("zz-none")},
		{"EachOfObject", tq.Each("x")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got, err := tq.Eval(val, tc.query); err == nil {
				t.Errorf("Eval: got %+v, want error", got)
			} else {
				t.Logf("Got expected error: %v", err)
			}
		})
	}
}

func TestSelection(t *testing.T) {
	val := jvalue.MustParse(`[1, "two", 3, null, "five", false]`)

	got, err := tq.Eval(val, tq.Seq{tq.Is[jvalue.String](), tq.Len()})
	if err != nil {
		t.Fatalf("Eval: unexpected error: %v", err)
	}
	if diff := cmp.Diff(jvalue.Value(jvalue.Number(2)), got); diff != "" {
		t.Errorf("Result: (-want, +got)\n%s", diff)
	}

	got, err = tq.Eval(val, tq.IsNot[jvalue.Null]())
	if err != nil {
		t.Fatalf("Eval: unexpected error: %v", err)
	}
	if got.(jvalue.Array).Len() != 5 {
		t.Errorf("Result: got %s, want 5 elements", got.JSON())
	}
}
