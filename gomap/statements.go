package gomap

import (
	"fmt"

	"github.com/signadot/jdoc"
	"github.com/signadot/jdoc/ir"

	"github.com/goccy/go-yaml"
)

// BuildYAML runs the statements of a YAML mapping against a jdoc.Builder.
// Each entry is a statement in file order:
//
//	name: value          # scalar, Assign
//	block:               # mapping, AssignBlock
//	  key: value
//	list:                # sequence of mappings, AssignArray
//	- key: value
//	- key: value
//
// Sequences of anything but mappings are rejected.  An empty input builds
// an empty object.
func BuildYAML(data []byte) (*ir.Value, error) {
	var ms yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &ms, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("could not decode statements: %w", err)
	}
	b := jdoc.NewBuilder()
	if err := runStatements(b, ms); err != nil {
		return nil, err
	}
	return b.Build()
}

func runStatements(b *jdoc.Builder, ms yaml.MapSlice) error {
	for _, item := range ms {
		key := keyString(item.Key)
		switch x := item.Value.(type) {
		case yaml.MapSlice:
			var err error
			b.AssignBlock(key, func(nb *jdoc.Builder) {
				err = runStatements(nb, x)
			})
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		case []any:
			var err error
			blocks := make([]jdoc.Block, len(x))
			for i, elt := range x {
				eltMS, ok := elt.(yaml.MapSlice)
				if !ok {
					return fmt.Errorf("%s[%d]: %w: array elements must be mappings, got %T", key, i, ir.ErrUnsupportedPayload, elt)
				}
				blocks[i] = func(nb *jdoc.Builder) {
					if e := runStatements(nb, eltMS); e != nil && err == nil {
						err = fmt.Errorf("%s[%d]: %w", key, i, e)
					}
				}
			}
			b.AssignArray(key, blocks...)
			if err != nil {
				return err
			}
		default:
			b.Assign(key, x)
		}
	}
	return b.Err()
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
