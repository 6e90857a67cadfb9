package eval

import (
	"fmt"
	"os"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/gomap"
)

const (
	EnvEnv = "JDOC_ENV"
)

// LoadEnv reads expression variables from the YAML mapping in $JDOC_ENV.
// It returns nil when the variable is unset.
func LoadEnv() (map[string]any, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	doc, err := gomap.BuildYAML([]byte(envEnv))
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	env, ok := doc.Native().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error decoding env $%s: wrong type %s", EnvEnv, doc.Type())
	}
	if debug.Eval() {
		debug.Logf("loaded env from $%s: %s\n", EnvEnv, env)
	}
	return env, nil
}

// Vars makes each entry of vars a variable, as Var does.
func Vars(vars map[string]any) Option {
	return func(c *evalConfig) {
		for k, v := range vars {
			c.vars[k] = v
		}
	}
}
