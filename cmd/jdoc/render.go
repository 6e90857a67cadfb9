package main

import (
	"io"

	"github.com/signadot/jdoc/gomap"
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachDoc(cc.In, args, func(_ string, doc *ir.Value) error {
		return renderDoc(cfg, cc.Out, doc)
	})
}

func renderDoc(cfg *RenderConfig, w io.Writer, doc *ir.Value) error {
	if !cfg.YAML {
		return writeDoc(cfg.MainConfig, w, doc)
	}
	d, err := gomap.ToYAML(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
