package ir

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	ab := FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}})
	ba := FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(2)}, {Key: "a", Val: FromInt(1)}})
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"null null", Null(), Null(), true},
		{"nil null", nil, Null(), true},
		{"null false", Null(), FromBool(false), false},
		{"int int", FromInt(1), FromInt(1), true},
		{"int float", FromInt(1), FromFloat(1), false},
		{"float float", FromFloat(0.5), FromFloat(0.5), true},
		{"nan nan", FromFloat(math.NaN()), FromFloat(math.NaN()), true},
		{"nan float", FromFloat(math.NaN()), FromFloat(0), false},
		{"string", FromString("a"), FromString("a"), true},
		{"string differs", FromString("a"), FromString("b"), false},
		{"object order", ab, ba, true},
		{"object value", ab, FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(3)}}), false},
		{"object keys", ab, FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "c", Val: FromInt(2)}}), false},
		{"object size", ab, FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}), false},
		{"array", FromSlice([]*Value{ab, FromInt(1)}), FromSlice([]*Value{ba, FromInt(1)}), true},
		{"array order", FromSlice([]*Value{FromInt(1), FromInt(2)}), FromSlice([]*Value{FromInt(2), FromInt(1)}), false},
		{"array length", FromSlice([]*Value{FromInt(1)}), FromSlice(nil), false},
		{"array object", FromSlice(nil), FromKeyVals(nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		v    *Value
		want bool
	}{
		{Null(), false},
		{FromBool(true), true},
		{FromBool(false), false},
		{FromInt(0), false},
		{FromInt(2), true},
		{FromFloat(0), false},
		{FromString(""), false},
		{FromString("x"), true},
		{FromSlice(nil), false},
		{FromKeyVals([]KeyVal{{Key: "a", Val: Null()}}), true},
	}
	for i, tt := range tests {
		if got := Truth(tt.v); got != tt.want {
			t.Errorf("%d: Truth(%s) = %v, want %v", i, tt.v.Type(), got, tt.want)
		}
	}
}
