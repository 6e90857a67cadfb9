package main

import (
	"io"

	"github.com/signadot/jdoc/gomap"
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachDoc(cc.In, args, func(_ string, doc *ir.Value) error {
		return dumpDoc(cc.Out, doc)
	})
}

// dumpDoc writes doc as a BSON document.  Successive documents are simply
// concatenated, as each carries its own length.
func dumpDoc(w io.Writer, doc *ir.Value) error {
	d, err := gomap.MarshalBSON(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
