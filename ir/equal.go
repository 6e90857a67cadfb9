package ir

import "math"

// Equal reports whether a and b are structurally equal.  Arrays are compared
// element by element; objects are compared as sets of entries, ignoring
// insertion order.  Integer and float payloads are never equal to each
// other.  NaN payloads are equal to each other.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Type() {
	case NullType:
		return true
	case BoolType:
		return a.b == b.b
	case StringType:
		return a.s == b.s
	case NumberType:
		if a.IsInt() != b.IsInt() {
			return false
		}
		if a.IsInt() {
			return *a.i64 == *b.i64
		}
		if math.IsNaN(*a.f64) && math.IsNaN(*b.f64) {
			return true
		}
		return *a.f64 == *b.f64
	case ArrayType:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i, k := range a.keys {
			j, ok := b.index[k]
			if !ok {
				return false
			}
			if !Equal(a.items[i], b.items[j]) {
				return false
			}
		}
		return true
	}
	return false
}

// Equal is a method form of Equal, usable with go-cmp.
func (v *Value) Equal(o *Value) bool {
	return Equal(v, o)
}
