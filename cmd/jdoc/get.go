package main

import (
	"fmt"
	"io"

	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return forEachDoc(cc.In, args[1:], func(_ string, doc *ir.Value) error {
		return getPath(cfg.MainConfig, cc.Out, doc, path)
	})
}

func getPath(cfg *MainConfig, w io.Writer, doc *ir.Value, path ir.Path) error {
	v, err := doc.Get(path...)
	if err != nil {
		return err
	}
	theLog.Debug("resolved", "path", path, "type", v.Type())
	return writeDoc(cfg, w, v)
}
