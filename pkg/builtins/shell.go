package builtins

import (
	"github.com/kballard/go-shellquote"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/pipeline"
	"github.com/arthur-debert/amake/pkg/value"
)

func shellFunctions() []pipeline.Function {
	return []pipeline.Function{
		{Name: "shlex_split", Params: params(), Call: unary(shlexSplit), Doc: "Split text into words using shell quoting rules. Blank input gives an empty list."},
		{Name: "shlex_join", Params: params(), Call: unary(shlexJoin), Doc: "Join a list of words into one shell-quoted string."},
	}
}

func shlexSplit(input value.Value) (value.Value, error) {
	if input.IsNone() {
		return value.List(), nil
	}
	s, err := requireStr("shlex_split", input)
	if err != nil {
		return value.None(), err
	}
	words, err := shellquote.Split(s)
	if err != nil {
		return value.None(), errors.Wrap(err, errors.ErrInvalidArgument, "shlex_split(): cannot split input")
	}
	return value.Strings(words...), nil
}

func shlexJoin(input value.Value) (value.Value, error) {
	items, err := iterate(input)
	if err != nil {
		return value.None(), err
	}
	words := make([]string, len(items))
	for i, item := range items {
		if words[i], err = requireStr("shlex_join", item); err != nil {
			return value.None(), err
		}
	}
	return value.String(shellquote.Join(words...)), nil
}
