package encode

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a\\b\"c\rd\te\nf\u000Cg\bh", `a\\b\"c\rd\te\nf\fg\bh`},
		{"back\\slash", `back\\slash`},
		{"double\"quote", `double\"quote`},
		{"carriage\rreturn", `carriage\rreturn`},
		{"tab\tchar", `tab\tchar`},
		{"new\nline", `new\nline`},
		{"form\u000Cforward", `form\fforward`},
		{"back\bward", `back\bward`},
		{`\n`, `\\n`},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeSafeUnchanged(t *testing.T) {
	for _, s := range []string{
		"plain",
		"with spaces and punctuation: {}[],'",
		"unicode ☃ é 日本",
		"other controls \x01\x1f\x7f",
		"/slashes/",
	} {
		if got := Escape(s); got != s {
			t.Errorf("Escape(%q) = %q, want it unchanged", s, got)
		}
	}
}
