package main

import (
	"fmt"
	"io"

	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := checkDiffArgs(args); err != nil {
		return err
	}
	from, err := readDoc(cc.In, args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(cc.In, args[1])
	if err != nil {
		return err
	}
	return diffDocs(cfg, cc.Out, from, to)
}

func checkDiffArgs(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: only one diff argument may be stdin", cli.ErrUsage)
	}
	return nil
}

func diffDocs(cfg *DiffConfig, w io.Writer, from, to *ir.Value) error {
	if cfg.Merge {
		d, err := libdiff.MergePatch(from, to)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return err
	}
	d := libdiff.Diff(from, to)
	if d == nil {
		return nil
	}
	return writeDoc(cfg.MainConfig, w, d)
}
