// Package libdiff computes differences between documents.
package libdiff

import (
	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns nil if from and to are equal.  Otherwise it returns an
// object keyed by the textual path of each changed location, in document
// order.  Each entry is an object with an "op" of "add", "remove" or
// "replace" and the "from" and/or "to" values.  Replacements of one
// string by another also carry a "patch" in diff-match-patch text form.
func Diff(from, to *ir.Value) *ir.Value {
	var kvs []ir.KeyVal
	diff(ir.Path{}, from, to, &kvs)
	if len(kvs) == 0 {
		return nil
	}
	return ir.FromKeyVals(kvs)
}

func diff(p ir.Path, from, to *ir.Value, dst *[]ir.KeyVal) {
	if ir.Equal(from, to) {
		return
	}
	if debug.Diff() {
		debug.Logf("diff at %s: %s -> %s\n", p, from.Type(), to.Type())
	}
	switch {
	case from.Type() == ir.ObjectType && to.Type() == ir.ObjectType:
		diffObject(p, from, to, dst)
	case from.Type() == ir.ArrayType && to.Type() == ir.ArrayType:
		diffArray(p, from, to, dst)
	default:
		*dst = append(*dst, ir.KeyVal{Key: p.String(), Val: replace(from, to)})
	}
}

func diffObject(p ir.Path, from, to *ir.Value, dst *[]ir.KeyVal) {
	for _, kv := range from.KeyVals() {
		toVal, err := to.Field(kv.Key)
		if err != nil {
			*dst = append(*dst, ir.KeyVal{Key: p.Field(kv.Key).String(), Val: remove(kv.Val)})
			continue
		}
		diff(p.Field(kv.Key), kv.Val, toVal, dst)
	}
	for _, kv := range to.KeyVals() {
		if from.Contains(kv.Key) {
			continue
		}
		*dst = append(*dst, ir.KeyVal{Key: p.Field(kv.Key).String(), Val: add(kv.Val)})
	}
}

func diffArray(p ir.Path, from, to *ir.Value, dst *[]ir.KeyVal) {
	fromItems, toItems := from.Items(), to.Items()
	n := min(len(fromItems), len(toItems))
	for i := range n {
		diff(p.Index(i), fromItems[i], toItems[i], dst)
	}
	for i := n; i < len(fromItems); i++ {
		*dst = append(*dst, ir.KeyVal{Key: p.Index(i).String(), Val: remove(fromItems[i])})
	}
	for i := n; i < len(toItems); i++ {
		*dst = append(*dst, ir.KeyVal{Key: p.Index(i).String(), Val: add(toItems[i])})
	}
}

func add(to *ir.Value) *ir.Value {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: OpKey, Val: ir.FromString(AddOp)},
		{Key: ToKey, Val: to},
	})
}

func remove(from *ir.Value) *ir.Value {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: OpKey, Val: ir.FromString(RemoveOp)},
		{Key: FromKey, Val: from},
	})
}

func replace(from, to *ir.Value) *ir.Value {
	kvs := []ir.KeyVal{
		{Key: OpKey, Val: ir.FromString(ReplaceOp)},
		{Key: FromKey, Val: from},
		{Key: ToKey, Val: to},
	}
	fromStr, fromOK := from.AsString()
	toStr, toOK := to.AsString()
	if fromOK && toOK {
		kvs = append(kvs, ir.KeyVal{Key: PatchKey, Val: ir.FromString(StringPatch(fromStr, toStr))})
	}
	return ir.FromKeyVals(kvs)
}

// StringPatch returns the diff-match-patch patch text turning from into to.
func StringPatch(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	return dmp.PatchToText(dmp.PatchMake(from, diffs))
}
