package ir

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
)

// Value is a node of a document tree.  Values are immutable once
// constructed: accessors return copies of any internal slices.
//
// A nil *Value behaves as Null.
type Value struct {
	typ Type

	b   bool
	s   string
	i64 *int64
	f64 *float64

	// ObjectType: keys[i] is the key of items[i].
	// ArrayType: items only.
	keys  []string
	items []*Value
	index map[string]int
}

type KeyVal struct {
	Key string
	Val *Value
}

func Null() *Value {
	return &Value{typ: NullType}
}

func FromBool(v bool) *Value {
	return &Value{typ: BoolType, b: v}
}

func FromInt(v int64) *Value {
	return &Value{typ: NumberType, i64: &v}
}

func FromFloat(f float64) *Value {
	return &Value{typ: NumberType, f64: &f}
}

func FromString(v string) *Value {
	return &Value{typ: StringType, s: v}
}

// FromSlice creates an array.  nil elements are stored as Null.
func FromSlice(vs []*Value) *Value {
	res := &Value{typ: ArrayType, items: make([]*Value, len(vs))}
	for i, v := range vs {
		if v == nil {
			v = Null()
		}
		res.items[i] = v
	}
	return res
}

// FromKeyVals creates an object preserving the order of first insertion of
// each key.  When a key occurs more than once the last value wins.
func FromKeyVals(kvs []KeyVal) *Value {
	res := &Value{
		typ:   ObjectType,
		keys:  make([]string, 0, len(kvs)),
		items: make([]*Value, 0, len(kvs)),
		index: make(map[string]int, len(kvs)),
	}
	for _, kv := range kvs {
		v := kv.Val
		if v == nil {
			v = Null()
		}
		if i, ok := res.index[kv.Key]; ok {
			res.items[i] = v
			continue
		}
		res.index[kv.Key] = len(res.keys)
		res.keys = append(res.keys, kv.Key)
		res.items = append(res.items, v)
	}
	return res
}

// FromMap creates an object with keys in sorted order.
func FromMap(m map[string]*Value) *Value {
	keys := slices.Sorted(maps.Keys(m))
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: k, Val: m[k]}
	}
	return FromKeyVals(kvs)
}

// Scalar wraps a boolean, integer, float or string payload.  A nil payload
// gives Null.  Any other payload, including non-finite floats, results in
// ErrUnsupportedPayload.
func Scalar(payload any) (*Value, error) {
	switch x := payload.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: non-finite float %v", ErrUnsupportedPayload, x)
		}
		return FromFloat(x), nil
	}
	rv := reflect.ValueOf(payload)
	switch rv.Kind() {
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows int64", ErrUnsupportedPayload, u)
		}
		return FromInt(int64(u)), nil
	case reflect.Float32:
		// shortest form which reads back as the same float32
		f, err := strconv.ParseFloat(strconv.FormatFloat(rv.Float(), 'g', -1, 32), 64)
		if err != nil {
			return Scalar(rv.Float())
		}
		return Scalar(f)
	case reflect.Float64:
		return Scalar(rv.Float())
	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedPayload, payload)
}

// FromAny converts native Go data, as produced by Native or by typical
// decoders, into a Value.  Maps produce objects with sorted keys.
func FromAny(v any) (*Value, error) {
	switch x := v.(type) {
	case *Value:
		if x == nil {
			return Null(), nil
		}
		return x, nil
	case []*Value:
		return FromSlice(x), nil
	case map[string]*Value:
		return FromMap(x), nil
	case []any:
		vs := make([]*Value, len(x))
		for i, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vs[i] = ev
		}
		return FromSlice(vs), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]KeyVal, len(keys))
		for i, k := range keys {
			ev, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			kvs[i] = KeyVal{Key: k, Val: ev}
		}
		return FromKeyVals(kvs), nil
	case []KeyVal:
		return FromKeyVals(x), nil
	}
	return Scalar(v)
}

func (v *Value) Type() Type {
	if v == nil {
		return NullType
	}
	return v.typ
}

func (v *Value) IsNull() bool {
	return v.Type() == NullType
}

// Size is the number of immediate children of an array or object, and 1
// for any other value.
func (v *Value) Size() int {
	switch v.Type() {
	case ArrayType, ObjectType:
		return len(v.items)
	default:
		return 1
	}
}

// IsInt reports whether v is a number holding an integer payload.
func (v *Value) IsInt() bool {
	return v.Type() == NumberType && v.i64 != nil
}

func (v *Value) AsBool() (bool, bool) {
	if v.Type() != BoolType {
		return false, false
	}
	return v.b, true
}

func (v *Value) AsInt() (int64, bool) {
	if !v.IsInt() {
		return 0, false
	}
	return *v.i64, true
}

// AsFloat returns the float payload of v.  Integer payloads are widened.
func (v *Value) AsFloat() (float64, bool) {
	if v.Type() != NumberType {
		return 0, false
	}
	if v.f64 != nil {
		return *v.f64, true
	}
	return float64(*v.i64), true
}

func (v *Value) AsString() (string, bool) {
	if v.Type() != StringType {
		return "", false
	}
	return v.s, true
}

// Payload returns the scalar payload of v, nil for Null and composites.
func (v *Value) Payload() any {
	switch v.Type() {
	case BoolType:
		return v.b
	case StringType:
		return v.s
	case NumberType:
		if v.i64 != nil {
			return *v.i64
		}
		return *v.f64
	}
	return nil
}

// Keys returns the keys of an object in insertion order.
func (v *Value) Keys() []string {
	if v.Type() != ObjectType {
		return nil
	}
	return slices.Clone(v.keys)
}

// Items returns the elements of an array, or the values of an object in key
// order.
func (v *Value) Items() []*Value {
	if v.Type().IsLeaf() {
		return nil
	}
	return slices.Clone(v.items)
}

// KeyVals returns the entries of an object in insertion order.
func (v *Value) KeyVals() []KeyVal {
	if v.Type() != ObjectType {
		return nil
	}
	res := make([]KeyVal, len(v.keys))
	for i, k := range v.keys {
		res[i] = KeyVal{Key: k, Val: v.items[i]}
	}
	return res
}

// Native converts v to nil, bool, int64, float64, string, []any or
// map[string]any.
func (v *Value) Native() any {
	switch v.Type() {
	case ArrayType:
		res := make([]any, len(v.items))
		for i, e := range v.items {
			res[i] = e.Native()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(v.keys))
		for i, k := range v.keys {
			res[k] = v.items[i].Native()
		}
		return res
	default:
		return v.Payload()
	}
}

// Visit walks v depth first.  f is called on each value with its path from
// v and isPost false; if it returns true the children of an array or object
// are visited in order.  f is then called again on the same value with
// isPost true, whatever it returned before.  The first error stops the walk
// and is returned.
func (v *Value) Visit(f func(v *Value, p Path, isPost bool) (bool, error)) error {
	return v.visit(nil, f)
}

func (v *Value) visit(p Path, f func(v *Value, p Path, isPost bool) (bool, error)) error {
	dive, err := f(v, p, false)
	if err != nil {
		return err
	}
	if dive {
		switch v.Type() {
		case ArrayType:
			for i, e := range v.items {
				if err := e.visit(p.Index(i), f); err != nil {
					return err
				}
			}
		case ObjectType:
			for i, k := range v.keys {
				if err := v.items[i].visit(p.Field(k), f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(v, p, true); err != nil {
		return err
	}
	return nil
}
