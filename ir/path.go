package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jdoc/debug"
)

// Path is an ordered sequence of tokens locating a descendant of a value.
// Each token is either an object key or the base 10 text of an array index.
type Path []string

// Field returns a copy of p extended with an object key.
func (p Path) Field(key string) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, key)
}

// Index returns a copy of p extended with an array index.
func (p Path) Index(i int) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, strconv.Itoa(i))
}

func (p Path) String() string {
	var buf strings.Builder
	buf.WriteByte('$')
	for _, tok := range p {
		if isIndexToken(tok) {
			buf.WriteString("[" + tok + "]")
			continue
		}
		buf.WriteString("." + pathString(tok))
	}
	return buf.String()
}

func isIndexToken(tok string) bool {
	i, err := strconv.Atoi(tok)
	return err == nil && i >= 0 && strconv.Itoa(i) == tok
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// ParsePath parses a textual path such as
//
//	$.array[1].'key.with.dots'
//
// The leading '$' is optional.
func ParsePath(p string) (Path, error) {
	if len(p) != 0 && p[0] == '$' {
		p = p[1:]
	}
	res := Path{}
	for len(p) != 0 {
		switch p[0] {
		case '.':
			field, rest, err := parseField(p[1:])
			if err != nil {
				return nil, err
			}
			res = append(res, field)
			p = rest
		case '[':
			i := strings.IndexByte(p[1:], ']')
			if i == -1 {
				return nil, fmt.Errorf("%w: expected '[' <index> ']'", ErrParse)
			}
			index, err := strconv.ParseUint(p[1:i+1], 10, 63)
			if err != nil {
				return nil, fmt.Errorf("%w: index %q: %w", ErrParse, p[1:i+1], err)
			}
			res = append(res, strconv.FormatUint(index, 10))
			p = p[i+2:]
		default:
			return nil, fmt.Errorf("%w: expected '.' or '[' at %q", ErrParse, p)
		}
	}
	return res, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("%w: expected field at end of string", ErrParse)
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("%w: empty field", ErrParse)
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("%w: end of string scanning for \"'\"", ErrParse)
}

// Field returns the value stored under key in an object.
func (v *Value) Field(key string) (*Value, error) {
	if v.Type() != ObjectType {
		return nil, fmt.Errorf("%w: key %q on %s", ErrUnsupportedAccess, key, v.Type())
	}
	i, ok := v.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: key %q", ErrMissingValue, key)
	}
	return v.items[i], nil
}

// At returns the element at index i of an array.
func (v *Value) At(i int) (*Value, error) {
	if v.Type() != ArrayType {
		return nil, fmt.Errorf("%w: index %d on %s", ErrUnsupportedAccess, i, v.Type())
	}
	if i < 0 || i >= len(v.items) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, len(v.items))
	}
	return v.items[i], nil
}

// Get resolves path from v.  String tokens select object keys and numeric
// tokens select array elements.  The empty path resolves to v.
//
// Errors are *PathError wrapping ErrUnsupportedAccess, ErrMissingValue or
// ErrOutOfRange.
func (v *Value) Get(path ...string) (*Value, error) {
	res := v
	for i, tok := range path {
		next, err := res.step(tok)
		if err != nil {
			if debug.Path() {
				debug.Logf("get %s failed at %s: %v\n", Path(path), Path(path[:i+1]), err)
			}
			return nil, &PathError{Path: Path(path[:i+1]), Err: err}
		}
		res = next
	}
	if res == nil {
		res = Null()
	}
	return res, nil
}

func (v *Value) step(tok string) (*Value, error) {
	switch v.Type() {
	case ObjectType:
		return v.Field(tok)
	case ArrayType:
		i, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q on %s", ErrUnsupportedAccess, tok, ArrayType)
		}
		return v.At(i)
	default:
		return nil, fmt.Errorf("%w: %q on %s", ErrUnsupportedAccess, tok, v.Type())
	}
}

// GetPath parses p with ParsePath and resolves it.
func (v *Value) GetPath(p string) (*Value, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return v.Get(path...)
}

// Contains reports whether Get(path...) succeeds.
func (v *Value) Contains(path ...string) bool {
	_, err := v.Get(path...)
	return err == nil
}
