// Package encode renders ir values as JSON text.
//
// # Usage
//
//	// compact
//	s := encode.Render(doc, "", "")
//
//	// one entry per line, indented by two spaces
//	s = encode.Render(doc, "\n", "  ")
//
//	// to a writer, with options
//	err := encode.Encode(doc, w, encode.Indent(2), encode.EncodeColors(encode.NewColors()))
//
// Object keys and string payloads are escaped with Escape.  Object entries
// are written in insertion order.
package encode
