// Package gomap maps documents to and from other Go representations:
// YAML, BSON, and YAML statement files which drive a jdoc.Builder.
package gomap
