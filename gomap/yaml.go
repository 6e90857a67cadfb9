package gomap

import (
	"github.com/signadot/jdoc/ir"

	"github.com/goccy/go-yaml"
)

// ToYAMLAny converts v to a form YAML encoders accept while keeping object
// key order: objects become yaml.MapSlice and arrays []any.
func ToYAMLAny(v *ir.Value) any {
	switch v.Type() {
	case ir.ObjectType:
		kvs := v.KeyVals()
		res := make(yaml.MapSlice, len(kvs))
		for i, kv := range kvs {
			res[i] = yaml.MapItem{Key: kv.Key, Value: ToYAMLAny(kv.Val)}
		}
		return res
	case ir.ArrayType:
		items := v.Items()
		res := make([]any, len(items))
		for i, item := range items {
			res[i] = ToYAMLAny(item)
		}
		return res
	default:
		return v.Payload()
	}
}

// ToYAML encodes v as YAML.
func ToYAML(v *ir.Value) ([]byte, error) {
	return yaml.Marshal(ToYAMLAny(v))
}
