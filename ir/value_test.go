package ir

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type myInt int

func TestScalar(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    *Value
	}{
		{"nil", nil, Null()},
		{"true", true, FromBool(true)},
		{"string", "s", FromString("s")},
		{"int", 42, FromInt(42)},
		{"int8", int8(-3), FromInt(-3)},
		{"uint64", uint64(7), FromInt(7)},
		{"named int", myInt(9), FromInt(9)},
		{"float32", float32(0.5), FromFloat(0.5)},
		{"float32 shortest", float32(3.14), FromFloat(3.14)},
		{"float32 small", float32(1e-7), FromFloat(1e-7)},
		{"float64", 3.14, FromFloat(3.14)},
		{"nil pointer", (*int)(nil), Null()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scalar(tt.payload)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Scalar(%v) mismatch (-want +got):\n%s", tt.payload, diff)
			}
		})
	}
}

func TestScalarUnsupported(t *testing.T) {
	x := 1
	for _, payload := range []any{
		[]int{1},
		map[string]any{},
		struct{}{},
		&x,
		uint64(math.MaxUint64),
		math.NaN(),
		math.Inf(1),
		FromInt(1),
	} {
		_, err := Scalar(payload)
		if !errors.Is(err, ErrUnsupportedPayload) {
			t.Errorf("Scalar(%#v): expected ErrUnsupportedPayload, got %v", payload, err)
		}
	}
}

func TestSize(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromSlice([]*Value{FromInt(1), FromInt(2), FromInt(3)})},
	})
	tests := []struct {
		name string
		v    *Value
		want int
	}{
		{"null", Null(), 1},
		{"nil", nil, 1},
		{"scalar", FromString("abc"), 1},
		{"empty array", FromSlice(nil), 0},
		{"empty object", FromKeyVals(nil), 0},
		{"object", obj, 2},
		{"array", FromSlice([]*Value{obj, obj}), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFromKeyValsOverwrite(t *testing.T) {
	v := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
		{Key: "a", Val: FromInt(3)},
	})
	if v.Size() != 2 {
		t.Fatalf("expected 2 entries, got %d", v.Size())
	}
	if diff := cmp.Diff([]string{"a", "b"}, v.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	a, err := v.Field("a")
	if err != nil {
		t.Fatal(err)
	}
	if i, _ := a.AsInt(); i != 3 {
		t.Errorf("expected last write to win, got %d", i)
	}
}

func TestAccessorsCopy(t *testing.T) {
	arr := FromSlice([]*Value{FromInt(1), FromInt(2)})
	items := arr.Items()
	items[0] = FromString("changed")
	first, err := arr.At(0)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(first, FromInt(1)) {
		t.Errorf("mutating Items() result changed the array")
	}

	src := []*Value{FromInt(1)}
	arr = FromSlice(src)
	src[0] = FromInt(2)
	first, _ = arr.At(0)
	if !Equal(first, FromInt(1)) {
		t.Errorf("mutating the FromSlice argument changed the array")
	}
}

func TestNative(t *testing.T) {
	v := FromKeyVals([]KeyVal{
		{Key: "s", Val: FromString("x")},
		{Key: "i", Val: FromInt(1)},
		{Key: "f", Val: FromFloat(1.5)},
		{Key: "n", Val: Null()},
		{Key: "a", Val: FromSlice([]*Value{FromBool(true)})},
	})
	want := map[string]any{
		"s": "x",
		"i": int64(1),
		"f": 1.5,
		"n": nil,
		"a": []any{true},
	}
	if diff := cmp.Diff(want, v.Native()); diff != "" {
		t.Errorf("Native() (-want +got):\n%s", diff)
	}
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(map[string]any{
		"b": []any{1, "two", nil},
		"a": map[string]any{"x": 1.5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, v.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	want := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromKeyVals([]KeyVal{{Key: "x", Val: FromFloat(1.5)}})},
		{Key: "b", Val: FromSlice([]*Value{FromInt(1), FromString("two"), Null()})},
	})
	if !Equal(want, v) {
		t.Errorf("FromAny mismatch")
	}

	_, err = FromAny(map[string]any{"bad": []any{struct{}{}}})
	if !errors.Is(err, ErrUnsupportedPayload) {
		t.Errorf("expected ErrUnsupportedPayload, got %v", err)
	}
}

func TestVisit(t *testing.T) {
	v := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Value{FromInt(1), FromInt(2)})},
		{Key: "b", Val: FromString("x")},
	})
	var paths []string
	err := v.Visit(func(_ *Value, p Path, isPost bool) (bool, error) {
		if !isPost {
			paths = append(paths, p.String())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"$", "$.a", "$.a[0]", "$.a[1]", "$.b"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("visit order (-want +got):\n%s", diff)
	}
}
