package debug

import (
	"bytes"
	"io"
	"testing"
)

type native struct{}

func (native) Native() any { return map[string]any{"k": []any{1, "x"}} }

type path []string

func (p path) String() string { return "$.a" }

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	defer func(w io.Writer) { out = w }(out)
	out = &buf
	Logf("%s %s %s %d\n", map[string]any{"a": 1}, native{}, path{"a"}, 3)
	want := `{"a":1} {"k":[1,"x"]} $.a 3` + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("JDOC_TEST_FLAG", "true")
	if !boolEnv("JDOC_TEST_FLAG") {
		t.Error("true not parsed")
	}
	t.Setenv("JDOC_TEST_FLAG", "nope")
	if boolEnv("JDOC_TEST_FLAG") {
		t.Error("invalid value parsed as true")
	}
	if boolEnv("JDOC_TEST_UNSET") {
		t.Error("unset is true")
	}
}
