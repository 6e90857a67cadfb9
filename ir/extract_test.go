package ir

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type label string

func TestExtractAs(t *testing.T) {
	doc := testDoc()

	if got, ok := ExtractAs[int](doc, "array", "1", "intKey"); !ok || got != 42 {
		t.Errorf("ExtractAs[int] = %v, %v", got, ok)
	}
	if got, ok := ExtractAs[string](doc, "array", "1", "intKey"); ok {
		t.Errorf("ExtractAs[string] of an int = %q, want no value", got)
	}
	if got, ok := ExtractAs[float64](doc, "array", "1", "intKey"); !ok || got != 42 {
		t.Errorf("ExtractAs[float64] of an int = %v, %v", got, ok)
	}
	if got, ok := ExtractAs[float64](doc, "array", "1", "floatKey"); !ok || got != 3.14 {
		t.Errorf("ExtractAs[float64] = %v, %v", got, ok)
	}
	if _, ok := ExtractAs[int](doc, "array", "1", "floatKey"); ok {
		t.Errorf("ExtractAs[int] of a float should fail")
	}
	if got, ok := ExtractAs[bool](doc, "array", "2", "boolTrue"); !ok || !got {
		t.Errorf("ExtractAs[bool] = %v, %v", got, ok)
	}
	if got, ok := ExtractAs[label](doc, "string"); !ok || got != "string value" {
		t.Errorf("ExtractAs[label] = %q, %v", got, ok)
	}
	if got, ok := ExtractAs[uint8](doc, "array", "1", "intKey"); !ok || got != 42 {
		t.Errorf("ExtractAs[uint8] = %v, %v", got, ok)
	}
}

func TestExtractAsNoValue(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{Key: "big", Val: FromInt(math.MaxInt32 + 1)},
		{Key: "neg", Val: FromInt(-1)},
		{Key: "null", Val: Null()},
		{Key: "obj", Val: FromKeyVals(nil)},
		{Key: "arr", Val: FromSlice(nil)},
	})
	check := func(name string, ok bool) {
		t.Helper()
		if ok {
			t.Errorf("%s: expected no value", name)
		}
	}
	_, ok := ExtractAs[int32](doc, "big")
	check("int32 overflow", ok)
	_, ok = ExtractAs[uint](doc, "neg")
	check("negative to uint", ok)
	_, ok = ExtractAs[int](doc, "null")
	check("null", ok)
	_, ok = ExtractAs[string](doc, "obj")
	check("object", ok)
	_, ok = ExtractAs[bool](doc, "arr")
	check("array", ok)
	_, ok = ExtractAs[int](doc, "missing")
	check("missing", ok)
	_, ok = ExtractAs[int](doc, "big", "deeper")
	check("through scalar", ok)

	if got, ok := ExtractAs[int64](doc, "big"); !ok || got != math.MaxInt32+1 {
		t.Errorf("ExtractAs[int64] = %v, %v", got, ok)
	}
}

func TestExtractAny(t *testing.T) {
	doc := testDoc()
	got, ok := ExtractAny(doc, "array", "1")
	if !ok {
		t.Fatal("expected a value")
	}
	want := map[string]any{"intKey": int64(42), "floatKey": 3.14}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractAny (-want +got):\n%s", diff)
	}
	if got, ok := ExtractAny(doc, "string"); !ok || got != "string value" {
		t.Errorf("ExtractAny(string) = %v, %v", got, ok)
	}
	if _, ok := ExtractAny(doc, "array", "2", "nothing"); ok {
		t.Errorf("ExtractAny of Null should report no value")
	}
	if _, ok := ExtractAny(doc, "array", "9"); ok {
		t.Errorf("ExtractAny of a missing path should report no value")
	}
	if v, ok := ExtractValue(doc, "array"); !ok || v.Size() != 3 {
		t.Errorf("ExtractValue(array) = %v, %v", v, ok)
	}
}
