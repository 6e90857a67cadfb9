package main

import (
	"fmt"
	"io"

	"github.com/signadot/jdoc"
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a pattern file", cli.ErrUsage)
	}
	pattern, err := readDoc(cc.In, args[0])
	if err != nil {
		return err
	}
	return forEachDoc(cc.In, args[1:], func(file string, doc *ir.Value) error {
		return matchDoc(cfg, cc.Out, file, doc, pattern)
	})
}

func matchDoc(cfg *MatchConfig, w io.Writer, file string, doc, pattern *ir.Value) error {
	if !jdoc.Match(doc, pattern) {
		theLog.Debug("no match", "file", file)
		return nil
	}
	if cfg.Trim {
		doc = jdoc.Trim(pattern, doc)
	}
	return writeDoc(cfg.MainConfig, w, doc)
}
