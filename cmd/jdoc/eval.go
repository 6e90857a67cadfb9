package main

import (
	"fmt"
	"io"

	"github.com/signadot/jdoc/eval"
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	expression := args[0]
	env, err := eval.LoadEnv()
	if err != nil {
		return err
	}
	cfg.env = env
	return forEachDoc(cc.In, args[1:], func(file string, doc *ir.Value) error {
		return evalDoc(cfg, cc.Out, file, doc, expression)
	})
}

func evalDoc(cfg *EvalConfig, w io.Writer, file string, doc *ir.Value, expression string) error {
	opts := []eval.Option{eval.Vars(cfg.env), eval.Var("file", file)}
	if !cfg.Filter {
		v, err := eval.Eval(doc, expression, opts...)
		if err != nil {
			return err
		}
		return writeDoc(cfg.MainConfig, w, v)
	}
	ok, err := eval.Filter(doc, expression, opts...)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return writeDoc(cfg.MainConfig, w, doc)
}
