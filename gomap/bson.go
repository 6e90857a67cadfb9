package gomap

import (
	"fmt"

	"github.com/signadot/jdoc/ir"

	"go.mongodb.org/mongo-driver/bson"
)

// ToBSON converts v to the bson package's ordered representation: objects
// become bson.D, arrays bson.A and Null nil.
func ToBSON(v *ir.Value) any {
	switch v.Type() {
	case ir.ObjectType:
		kvs := v.KeyVals()
		res := make(bson.D, len(kvs))
		for i, kv := range kvs {
			res[i] = bson.E{Key: kv.Key, Value: ToBSON(kv.Val)}
		}
		return res
	case ir.ArrayType:
		items := v.Items()
		res := make(bson.A, len(items))
		for i, item := range items {
			res[i] = ToBSON(item)
		}
		return res
	default:
		return v.Payload()
	}
}

// MarshalBSON encodes an object as a BSON document.
func MarshalBSON(v *ir.Value) ([]byte, error) {
	if v.Type() != ir.ObjectType {
		return nil, fmt.Errorf("%w: bson document from %s", ir.ErrUnsupportedPayload, v.Type())
	}
	return bson.Marshal(ToBSON(v))
}
