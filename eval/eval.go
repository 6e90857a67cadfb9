// Package eval evaluates expressions over documents.
//
// Expressions use the expr language (https://expr-lang.org).  The native
// form of the document is available as the variable doc, and when the
// document is an object each of its keys is also a variable:
//
//	v, err := eval.Eval(doc, `integer * 2`)
//	ok, err := eval.Filter(doc, `len(array) > 2 && doc.subStruct.subinteger == 42`)
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"
)

type Option func(*evalConfig)

type evalConfig struct {
	vars map[string]any
}

// Var makes an additional variable available to expressions.  Variables
// take precedence over document keys but not over doc.
func Var(name string, v any) Option {
	return func(c *evalConfig) { c.vars[name] = v }
}

// Env returns the variables expressions see for doc.
func Env(doc *ir.Value, opts ...Option) map[string]any {
	cfg := &evalConfig{vars: map[string]any{}}
	for _, opt := range opts {
		opt(cfg)
	}
	native := doc.Native()
	env := map[string]any{}
	if m, ok := native.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	for k, v := range cfg.vars {
		env[k] = v
	}
	env["doc"] = native
	return env
}

// Eval evaluates expression against doc and converts the result to a
// value.
func Eval(doc *ir.Value, expression string, opts ...Option) (*ir.Value, error) {
	env := Env(doc, opts...)
	prg, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", expression, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q: %w", expression, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %v (%T)\n", expression, res, res)
	}
	v, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("result of %q: %w", expression, err)
	}
	return v, nil
}

// Filter evaluates expression against doc and reports the truth of the
// result as defined by ir.Truth.
func Filter(doc *ir.Value, expression string, opts ...Option) (bool, error) {
	v, err := Eval(doc, expression, opts...)
	if err != nil {
		return false, err
	}
	return ir.Truth(v), nil
}
