package encode

import "strings"

// escapes maps each byte needing an escape to its two byte replacement.
// Only these seven characters are escaped.
var escapes = [256]string{
	'\\': `\\`,
	'"':  `\"`,
	'\r': `\r`,
	'\t': `\t`,
	'\n': `\n`,
	'\f': `\f`,
	'\b': `\b`,
}

// Escape escapes backslash, double quote, carriage return, tab, newline,
// form feed and backspace in s.  All other characters, including other
// control characters, are left as is.
func Escape(s string) string {
	n := 0
	for n < len(s) && escapes[s[n]] == "" {
		n++
	}
	if n == len(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:n])
	for i := n; i < len(s); i++ {
		c := s[i]
		if e := escapes[c]; e != "" {
			b.WriteString(e)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func quote(s string) string {
	return `"` + Escape(s) + `"`
}
