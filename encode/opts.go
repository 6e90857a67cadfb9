package encode

import "strings"

type EncodeOption func(*EncState)

// Separator sets the string written before each element of an array or
// entry of an object, and before the closing bracket.
func Separator(s string) EncodeOption {
	return func(es *EncState) { es.sep = s }
}

// Increment sets the string appended to the separator for each level of
// nesting.
func Increment(s string) EncodeOption {
	return func(es *EncState) { es.inc = s }
}

// Indent is short for a newline separator and an increment of n spaces.
// Indent(0) gives compact output.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n <= 0 {
			es.sep, es.inc = "", ""
			return
		}
		es.sep = "\n"
		es.inc = strings.Repeat(" ", n)
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
