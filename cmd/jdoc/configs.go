package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/signadot/jdoc/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Indent  int    `cli:"name=indent desc='indent output by this many spaces per level'"`
	Sep     string `cli:"name=sep desc='separator written before each element, overrides -indent'"`
	Inc     string `cli:"name=inc desc='separator increment per level, used with -sep'"`
	Color   bool   `cli:"name=color desc='encode with color'"`
	Verbose bool   `cli:"name=v desc='verbose logging'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) setupLog() {
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.Indent(cfg.Indent)}
	if cfg.Sep != "" || cfg.Inc != "" {
		res = append(res, encode.Separator(cfg.Sep), encode.Increment(cfg.Inc))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return res
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type RenderConfig struct {
	*MainConfig
	YAML bool `cli:"name=yaml aliases=y desc='output yaml'"`

	Render *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Trim bool `cli:"name=trim desc='trim the results to the match'"`

	Match *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Filter bool `cli:"name=filter aliases=f desc='print documents for which the expression is true'"`

	env  map[string]any
	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='output an RFC 7386 merge patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='patch is an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}
