// Package ir provides the in-memory document tree used throughout jdoc.
//
// # Overview
//
// A document is a tree of *Value nodes.  A Value is a closed tagged union
// of exactly four shapes:
//
//   - Null: the absence of a value, distinct from a missing key
//   - Scalar: a boolean, integer, float or string payload
//   - Array: an ordered sequence of values
//   - Object: string keys mapped to values, in insertion order
//
// The Type method tells them apart.  Scalars are further split into
// BoolType, NumberType and StringType; a number holds either an int64 or a
// float64 payload and IsInt reports which.
//
// Values are immutable.  Constructors copy their arguments and accessors such
// as Keys and Items return copies, so a Value may be shared and read from
// many goroutines without synchronization.
//
// # Creating Values
//
//	s := ir.FromString("hello")
//	n := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "key", Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)})
//
// Scalar wraps an arbitrary Go payload, failing with ErrUnsupportedPayload
// for anything but booleans, integers, floats, strings and nil.  Most
// programs build documents with the jdoc package's Builder instead.
//
// # Paths
//
// A Path is a sequence of tokens.  On an object a token is a key; on an
// array it is the base 10 text of an index.
//
//	v, err := doc.Get("array", "1", "intKey")
//	v, err = doc.GetPath("$.array[1].intKey")
//
// Get, At and Field fail fast with errors wrapping ErrUnsupportedAccess,
// ErrMissingValue or ErrOutOfRange.  Contains, ExtractAs and ExtractAny
// never fail: they report a missing path, a Null value and a type mismatch
// all the same way.
//
//	n, ok := ir.ExtractAs[int](doc, "array", "1", "intKey")
//
// # Equality
//
// Equal compares arrays in order and objects as unordered sets of entries.
package ir
