package builtins

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/amake/pkg/pipeline"
	"github.com/arthur-debert/amake/pkg/value"
)

func pathFunctions() []pipeline.Function {
	return []pipeline.Function{
		{Name: "asbpath", Params: params(), Call: unary(blankAware("asbpath", absPath)), Doc: "Make the path absolute. Blank input gives the empty string."},
		{Name: "normpath", Params: params(), Call: unary(blankAware("normpath", normPath)), Doc: "Normalize the path. Blank input gives the empty string."},
		{Name: "posixpath", Params: params(), Call: unary(blankAware("posixpath", PosixPath)), Doc: "Normalize the path with '/' separators. Blank input gives the empty string."},
		{Name: "abspath_each", Params: params(), Call: unary(pathEach("abspath_each", absPath)), Doc: "Make every path absolute."},
		{Name: "normpath_each", Params: params(), Call: unary(pathEach("normpath_each", normPath)), Doc: "Normalize every path."},
		{Name: "posixpath_each", Params: params(), Call: unary(pathEach("posixpath_each", PosixPath)), Doc: "Normalize every path with '/' separators."},
	}
}

// blankAware returns "" for falsy or whitespace-only input instead of normalizing it
func blankAware(name string, f func(string) string) func(value.Value) (value.Value, error) {
	return func(input value.Value) (value.Value, error) {
		if !input.Truthy() {
			return value.String(""), nil
		}
		s, err := requireStr(name, input)
		if err != nil {
			return value.None(), err
		}
		if strings.TrimSpace(s) == "" {
			return value.String(""), nil
		}
		return value.String(f(s)), nil
	}
}

// pathEach maps f over a list of paths. Falsy input gives an empty list.
func pathEach(name string, f func(string) string) func(value.Value) (value.Value, error) {
	return func(input value.Value) (value.Value, error) {
		if !input.Truthy() {
			return value.List(), nil
		}
		items, err := iterate(input)
		if err != nil {
			return value.None(), err
		}
		out := make([]value.Value, len(items))
		for i, item := range items {
			s, err := requireStr(name, item)
			if err != nil {
				return value.None(), err
			}
			out[i] = value.String(f(s))
		}
		return value.List(out...), nil
	}
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

func normPath(p string) string {
	return filepath.Clean(p)
}

// PosixPath converts backslashes to '/' and normalizes the result the way a
// pure path does: repeated and trailing separators and "." parts are dropped,
// ".." is kept. A leading "//" is preserved. Empty input gives ".".
func PosixPath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")

	root := ""
	switch {
	case strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "///"):
		root = "//"
	case strings.HasPrefix(p, "/"):
		root = "/"
	}

	var parts []string
	for _, part := range strings.Split(p, "/") {
		if part == "" || part == "." {
			continue
		}
		parts = append(parts, part)
	}

	out := root + strings.Join(parts, "/")
	if out == "" {
		return "."
	}
	return out
}
