package jdoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/signadot/jdoc"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
)

func sample() *ir.Value {
	return jdoc.MustDocument(func(b *jdoc.Builder) {
		b.Assign("string", "string value")
		b.AssignArray("array",
			func(b *jdoc.Builder) { b.Assign("stringElement", "value of an element") },
			func(b *jdoc.Builder) { b.Assign("intKey", 42).Assign("floatKey", 3.14) },
			func(b *jdoc.Builder) { b.Assign("boolTrue", true) },
		)
	})
}

func ExampleDocument() {
	doc := jdoc.MustDocument(func(b *jdoc.Builder) {
		b.Assign("name", "jdoc")
		b.AssignBlock("limits", func(b *jdoc.Builder) {
			b.Assign("max", 10)
			b.Assign("ratio", 0.5)
		})
		b.Assign("tags", nil)
	})
	fmt.Println(encode.Render(doc, "\n", "  "))
	// Output:
	// {
	//   "name": "jdoc",
	//   "limits": {
	//     "max": 10,
	//     "ratio": 0.5
	//   },
	//   "tags": null
	// }
}

func ExampleBuilder_AssignArray() {
	doc := jdoc.MustDocument(func(b *jdoc.Builder) {
		b.AssignArray("xs",
			func(b *jdoc.Builder) { b.Assign("x", 1) },
			func(b *jdoc.Builder) { b.Assign("x", 2) },
		)
	})
	fmt.Println(encode.Render(doc, "", ""))
	x, ok := ir.ExtractAs[int](doc, "xs", "1", "x")
	fmt.Println(x, ok)
	// Output:
	// {"xs": [{"x": 1},{"x": 2}]}
	// 2 true
}

func TestPathScenario(t *testing.T) {
	doc := sample()
	v, err := doc.Get("array", "1", "intKey")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := v.AsInt(); !ok || n != 42 {
		t.Errorf("got %v", v.Native())
	}
	if doc.Contains("array", "9", "x") {
		t.Error("contains out of range path")
	}
	if n, ok := ir.ExtractAs[int](doc, "array", "1", "intKey"); !ok || n != 42 {
		t.Errorf("ExtractAs[int] = %d, %t", n, ok)
	}
	if s, ok := ir.ExtractAs[string](doc, "array", "1", "intKey"); ok {
		t.Errorf("ExtractAs[string] = %q, want no value", s)
	}
	if f, ok := ir.ExtractAs[float64](doc, "array", "1", "floatKey"); !ok || f != 3.14 {
		t.Errorf("ExtractAs[float64] = %v, %t", f, ok)
	}
	same, err := doc.GetPath("$.array[1].intKey")
	if err != nil || !ir.Equal(same, v) {
		t.Errorf("GetPath = %v, %v", same.Native(), err)
	}
}

func TestUnsupportedAccessScenario(t *testing.T) {
	scalar, err := jdoc.ScalarValue("x")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := scalar.Field("x"); !errors.Is(err, ir.ErrUnsupportedAccess) {
		t.Errorf("field on scalar: %v", err)
	}
	if _, err := sample().At(0); !errors.Is(err, ir.ErrUnsupportedAccess) {
		t.Errorf("at on object: %v", err)
	}
}

func TestBuildThenRender(t *testing.T) {
	doc := sample()
	want := `{"string": "string value","array": [{"stringElement": "value of an element"},` +
		`{"intKey": 42,"floatKey": 3.14},{"boolTrue": true}]}`
	if got := encode.MustString(doc); got != want {
		t.Errorf("got %s", got)
	}
	if got := encode.Render(doc, "", ""); got != want {
		t.Errorf("Render got %s", got)
	}
}
