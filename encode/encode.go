package encode

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jdoc/ir"
)

type EncState struct {
	sep, inc string

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes v to w as JSON.
//
// Layout is controlled by the separator and increment options.  Each
// element of an array and entry of an object is preceded by the separator
// of its depth, which is the top level separator with one increment
// appended per level, and the closing bracket is preceded by the separator
// of the enclosing level.  With both empty the output is compact.
//
// Null renders as null, including Null children.  Non-finite floats also
// render as null.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	bw := bufio.NewWriter(w)
	if err := encode(v, bw, es.sep, es); err != nil {
		return err
	}
	return bw.Flush()
}

// Render returns the JSON text of v using separator sep and increment inc.
// Render(v, "", "") is compact JSON.
func Render(v *ir.Value, sep, inc string) string {
	var buf strings.Builder
	es := &EncState{sep: sep, inc: inc}
	// strings.Builder never fails to write.
	_ = encode(v, &buf, sep, es)
	return buf.String()
}

func encode(v *ir.Value, w io.Writer, sep string, es *EncState) error {
	switch v.Type() {
	case ir.NullType:
		return writeValue(w, es, ir.NullType, "null")
	case ir.BoolType:
		b, _ := v.AsBool()
		return writeValue(w, es, ir.BoolType, strconv.FormatBool(b))
	case ir.NumberType:
		return encodeNumber(v, w, es)
	case ir.StringType:
		s, _ := v.AsString()
		return writeValue(w, es, ir.StringType, quote(s))
	case ir.ArrayType:
		return encodeArray(v, w, sep, es)
	case ir.ObjectType:
		return encodeObject(v, w, sep, es)
	default:
		panic("type")
	}
}

func encodeNumber(v *ir.Value, w io.Writer, es *EncState) error {
	if i, ok := v.AsInt(); ok {
		return writeValue(w, es, ir.NumberType, strconv.FormatInt(i, 10))
	}
	f, _ := v.AsFloat()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return writeValue(w, es, ir.NullType, "null")
	}
	return writeValue(w, es, ir.NumberType, formatFloat(f))
}

// formatFloat formats f with the fewest digits that represent it exactly,
// keeping a decimal point so floats stay distinguishable from integers.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func encodeArray(v *ir.Value, w io.Writer, sep string, es *EncState) error {
	items := v.Items()
	if len(items) == 0 {
		return writeSep(w, es, ir.ArrayType, "[]")
	}
	inner := sep + es.inc
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	for i, item := range items {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeString(w, inner); err != nil {
			return err
		}
		if err := encode(item, w, inner, es); err != nil {
			return err
		}
	}
	if err := writeString(w, sep); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeObject(v *ir.Value, w io.Writer, sep string, es *EncState) error {
	kvs := v.KeyVals()
	if len(kvs) == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	inner := sep + es.inc
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	for i := range kvs {
		kv := &kvs[i]
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeString(w, inner); err != nil {
			return err
		}
		if err := writeField(w, es, kv.Key); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.ObjectType, ": "); err != nil {
			return err
		}
		if err := encode(kv.Val, w, inner, es); err != nil {
			return err
		}
	}
	if err := writeString(w, sep); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeField(w io.Writer, es *EncState, key string) error {
	s := quote(key)
	if es.Color != nil {
		s = es.Color(ir.ObjectType, FieldColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	return writeString(w, s)
}
