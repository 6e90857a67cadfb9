package jdoc

import (
	"fmt"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"
)

// Block is a sequence of statements run against a Builder.
type Block func(b *Builder)

// Builder accumulates the entries of one object.  Assigning a key which is
// already present replaces its value but keeps its position.
//
// A Builder is not safe for concurrent use.  The values it builds are.
type Builder struct {
	keys   []string
	values map[string]*ir.Value
	err    error
}

func NewBuilder() *Builder {
	return &Builder{values: map[string]*ir.Value{}}
}

// Assign stores a scalar payload under key.  A nil payload stores Null.
// Unsupported payloads are recorded as the Builder's error.
func (b *Builder) Assign(key string, payload any) *Builder {
	v, err := ir.Scalar(payload)
	if err != nil {
		b.fail(key, err)
		return b
	}
	return b.set(key, v)
}

// AssignValue stores an already built value under key.
func (b *Builder) AssignValue(key string, v *ir.Value) *Builder {
	if v == nil {
		v = ir.Null()
	}
	return b.set(key, v)
}

// AssignBlock runs block against a fresh Builder and stores the resulting
// object under key.
func (b *Builder) AssignBlock(key string, block Block) *Builder {
	v, err := Document(block)
	if err != nil {
		b.fail(key, err)
		return b
	}
	return b.set(key, v)
}

// AssignArray runs each block against its own fresh Builder and stores the
// array of resulting objects under key.
func (b *Builder) AssignArray(key string, blocks ...Block) *Builder {
	v, err := DocumentArray(blocks...)
	if err != nil {
		b.fail(key, err)
		return b
	}
	return b.set(key, v)
}

func (b *Builder) set(key string, v *ir.Value) *Builder {
	if debug.Build() {
		debug.Logf("build %q = %s\n", key, v.Type())
	}
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = v
	return b
}

func (b *Builder) fail(key string, err error) {
	if b.err != nil {
		return
	}
	b.err = fmt.Errorf("%s: %w", key, err)
}

// Err returns the first error recorded by an assignment.
func (b *Builder) Err() error {
	return b.err
}

// Build snapshots the accumulated entries as an object.  Later assignments
// do not affect values already built.
func (b *Builder) Build() (*ir.Value, error) {
	if b.err != nil {
		return nil, b.err
	}
	kvs := make([]ir.KeyVal, len(b.keys))
	for i, k := range b.keys {
		kvs[i] = ir.KeyVal{Key: k, Val: b.values[k]}
	}
	return ir.FromKeyVals(kvs), nil
}

// Document runs block against a fresh Builder and builds it.  A nil block
// gives an empty object.
func Document(block Block) (*ir.Value, error) {
	b := NewBuilder()
	if block != nil {
		block(b)
	}
	return b.Build()
}

// MustDocument is Document, panicking on error.
func MustDocument(block Block) *ir.Value {
	v, err := Document(block)
	if err != nil {
		panic(err)
	}
	return v
}

// DocumentArray builds one object per block and returns them as an array.
func DocumentArray(blocks ...Block) (*ir.Value, error) {
	items := make([]*ir.Value, len(blocks))
	for i, block := range blocks {
		v, err := Document(block)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		items[i] = v
	}
	return ir.FromSlice(items), nil
}

// ScalarValue wraps a single payload with no enclosing object.
func ScalarValue(payload any) (*ir.Value, error) {
	return ir.Scalar(payload)
}
