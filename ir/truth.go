package ir

// Truth reports whether v is non-empty: a non-empty object, array or
// string, a non-zero number, or true.
func Truth(v *Value) bool {
	switch v.Type() {
	case ObjectType, ArrayType:
		return len(v.items) != 0
	case StringType:
		return v.s != ""
	case NumberType:
		if v.i64 != nil {
			return *v.i64 != 0
		}
		return *v.f64 != 0.0
	case BoolType:
		return v.b
	case NullType:
		return false
	default:
		panic("type")
	}
}
