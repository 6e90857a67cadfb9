package jdoc

import (
	"github.com/signadot/jdoc/ir"
)

// Match reports whether doc matches pattern.
//
// A Null pattern matches anything.  An object pattern matches an object
// having every key of the pattern with a matching value; other keys of doc
// are ignored.  An array pattern matches an array of the same length whose
// elements match pairwise.  Scalar patterns match equal scalars.
func Match(doc, pattern *ir.Value) bool {
	if pattern.IsNull() {
		return true
	}
	if doc.Type() != pattern.Type() {
		return false
	}
	switch pattern.Type() {
	case ir.ObjectType:
		return matchObj(doc, pattern)
	case ir.ArrayType:
		return matchArray(doc, pattern)
	default:
		return ir.Equal(doc, pattern)
	}
}

func matchObj(doc, pattern *ir.Value) bool {
	for _, kv := range pattern.KeyVals() {
		child, err := doc.Field(kv.Key)
		if err != nil {
			return false
		}
		if !Match(child, kv.Val) {
			return false
		}
	}
	return true
}

func matchArray(doc, pattern *ir.Value) bool {
	if doc.Size() != pattern.Size() {
		return false
	}
	docItems := doc.Items()
	for i, p := range pattern.Items() {
		if !Match(docItems[i], p) {
			return false
		}
	}
	return true
}

// Trim filters doc to the keys present in pattern, recursively.  Array
// elements are paired with the first unused matching element of doc.
func Trim(pattern, doc *ir.Value) *ir.Value {
	switch pattern.Type() {
	case ir.ObjectType:
		if doc.Type() != ir.ObjectType {
			return doc
		}
		var kvs []ir.KeyVal
		for _, kv := range doc.KeyVals() {
			p, err := pattern.Field(kv.Key)
			if err != nil {
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: kv.Key, Val: Trim(p, kv.Val)})
		}
		return ir.FromKeyVals(kvs)
	case ir.ArrayType:
		if doc.Type() != ir.ArrayType {
			return doc
		}
		var res []*ir.Value
		docItems := doc.Items()
		used := make([]bool, len(docItems))
		for _, p := range pattern.Items() {
			for i, d := range docItems {
				if used[i] || !Match(d, p) {
					continue
				}
				res = append(res, Trim(p, d))
				used[i] = true
				break
			}
		}
		return ir.FromSlice(res)
	default:
		return doc
	}
}
