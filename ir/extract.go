package ir

import "reflect"

// Payload is the set of Go types a scalar payload can be extracted as.
type Payload interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ExtractAs resolves path from v and converts the resulting scalar to T.
//
// The boolean result is false when the path does not resolve, when the
// value found is Null or a composite, or when its payload does not fit T.
// These cases are not distinguished.  Integer payloads convert to any
// integer type they fit in and to floating point types; float payloads
// convert only to floating point types.
func ExtractAs[T Payload](v *Value, path ...string) (T, bool) {
	var res T
	node, err := v.Get(path...)
	if err != nil {
		return res, false
	}
	if !node.Type().IsLeaf() {
		return res, false
	}
	rv := reflect.ValueOf(&res).Elem()
	switch rv.Kind() {
	case reflect.Bool:
		b, ok := node.AsBool()
		if !ok {
			return res, false
		}
		rv.SetBool(b)
	case reflect.String:
		s, ok := node.AsString()
		if !ok {
			return res, false
		}
		rv.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := node.AsInt()
		if !ok || rv.OverflowInt(i) {
			return res, false
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, ok := node.AsInt()
		if !ok || i < 0 || rv.OverflowUint(uint64(i)) {
			return res, false
		}
		rv.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		f, ok := node.AsFloat()
		if !ok || rv.OverflowFloat(f) {
			return res, false
		}
		rv.SetFloat(f)
	default:
		return res, false
	}
	return res, true
}

// ExtractAny resolves path from v and returns the native form of the value
// found (see Value.Native).  It returns false when the path does not resolve
// or resolves to Null.
func ExtractAny(v *Value, path ...string) (any, bool) {
	node, ok := ExtractValue(v, path...)
	if !ok {
		return nil, false
	}
	return node.Native(), true
}

// ExtractValue is like ExtractAny but returns the Value itself.
func ExtractValue(v *Value, path ...string) (*Value, bool) {
	node, err := v.Get(path...)
	if err != nil || node.IsNull() {
		return nil, false
	}
	return node, true
}
