package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Build bool
	Path  bool
	Eval  bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Build = boolEnv("JDOC_DEBUG_BUILD")
	d.Path = boolEnv("JDOC_DEBUG_PATH")
	d.Eval = boolEnv("JDOC_DEBUG_EVAL")
	d.Diff = boolEnv("JDOC_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Build() bool {
	return d.Build
}
func Path() bool {
	return d.Path
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}
