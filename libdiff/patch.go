package libdiff

import (
	"fmt"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the RFC 7386 merge patch turning the compact rendering
// of from into that of to.  Both must be objects.
func MergePatch(from, to *ir.Value) ([]byte, error) {
	if from.Type() != ir.ObjectType || to.Type() != ir.ObjectType {
		return nil, fmt.Errorf("%w: merge patch of %s and %s", ir.ErrUnsupportedAccess, from.Type(), to.Type())
	}
	return jsonpatch.CreateMergePatch(
		[]byte(encode.Render(from, "", "")),
		[]byte(encode.Render(to, "", "")))
}

// ApplyPatch applies an RFC 6902 JSON patch to the compact rendering of v
// and returns the resulting JSON text.
func ApplyPatch(v *ir.Value, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	res, err := ops.Apply([]byte(encode.Render(v, "", "")))
	if err != nil {
		return nil, fmt.Errorf("could not apply patch: %w", err)
	}
	return res, nil
}

// ApplyMergePatch applies an RFC 7386 merge patch to the compact rendering
// of v.
func ApplyMergePatch(v *ir.Value, patch []byte) ([]byte, error) {
	res, err := jsonpatch.MergePatch([]byte(encode.Render(v, "", "")), patch)
	if err != nil {
		return nil, fmt.Errorf("could not apply merge patch: %w", err)
	}
	return res, nil
}
