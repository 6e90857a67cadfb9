package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/libdiff"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch: %w", err)
	}
	return forEachDoc(cc.In, args[1:], func(_ string, doc *ir.Value) error {
		return patchDoc(cfg, cc.Out, doc, p)
	})
}

// patchDoc writes the patched JSON text.  The result is not a document
// and is written as produced by the patch library.
func patchDoc(cfg *PatchConfig, w io.Writer, doc *ir.Value, p []byte) error {
	var (
		res []byte
		err error
	)
	if cfg.Merge {
		res, err = libdiff.ApplyMergePatch(doc, p)
	} else {
		res, err = libdiff.ApplyPatch(doc, p)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", res)
	return err
}
