// Package jdoc builds JSON-like documents declaratively.
//
// A document is assembled by running a block of statements against a
// Builder and is returned as an immutable *ir.Value:
//
//	doc, err := jdoc.Document(func(b *jdoc.Builder) {
//	    b.Assign("string", "string value")
//	    b.Assign("integer", 42)
//	    b.AssignArray("array",
//	        func(b *jdoc.Builder) { b.Assign("stringElement", "value of an element") },
//	        func(b *jdoc.Builder) { b.Assign("intKey", 42).Assign("floatKey", 3.14) },
//	    )
//	    b.AssignBlock("subStruct", func(b *jdoc.Builder) {
//	        b.Assign("subinteger", 42)
//	    })
//	})
//
// The result is rendered with package encode or queried with the methods of
// ir.Value and ir.ExtractAs.  Match compares documents against patterns.
package jdoc
