package builtins

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/amake/pkg/pipeline"
	"github.com/arthur-debert/amake/pkg/value"
)

func stringFunctions() []pipeline.Function {
	return []pipeline.Function{
		{Name: "upper", Params: params(), Call: unary(mapStr("upper", strings.ToUpper)), Doc: "Convert to upper case."},
		{Name: "lower", Params: params(), Call: unary(mapStr("lower", strings.ToLower)), Doc: "Convert to lower case."},
		{Name: "capitalize", Params: params(), Call: unary(mapStr("capitalize", capitalize)), Doc: "Upper-case the first character and lower-case the rest."},
		{Name: "title", Params: params(), Call: unary(mapStr("title", title)), Doc: "Upper-case the first letter of every word."},
		{
			Name:   "split",
			Params: params(pipeline.Optional("separator", value.String(" "))),
			Call:   split,
			Doc:    "Split text on separator. A None separator splits on runs of whitespace.",
		},
		{
			Name:   "replace",
			Params: params(pipeline.Required("old"), pipeline.Required("new"), pipeline.Optional("count", value.Int(-1))),
			Call:   replace,
			Doc:    "Replace occurrences of old with new, at most count times when count is not negative.",
		},
		{Name: "strip", Params: params(pipeline.Optional("chars", value.None())), Call: stripWith("strip", strings.Trim, strings.TrimFunc), Doc: "Remove leading and trailing whitespace, or the given chars."},
		{Name: "lstrip", Params: params(pipeline.Optional("chars", value.None())), Call: stripWith("lstrip", strings.TrimLeft, strings.TrimLeftFunc), Doc: "Remove leading whitespace, or the given chars."},
		{Name: "rstrip", Params: params(pipeline.Optional("chars", value.None())), Call: stripWith("rstrip", strings.TrimRight, strings.TrimRightFunc), Doc: "Remove trailing whitespace, or the given chars."},
		{
			Name:   "strslice",
			Params: params(pipeline.Required("start"), pipeline.Optional("end", value.None())),
			Call: func(input value.Value, args []value.Value) (value.Value, error) {
				return slice("strslice", input, args[0], args[1])
			},
			Doc: "Slice input[start:end]. Negative indices count from the end.",
		},
		{
			Name:   "join",
			Params: params(pipeline.Optional("separator", value.String(" "))),
			Call:   join,
			Doc:    "Join a list of strings with separator.",
		},
		{
			Name:   "prefix",
			Params: params(pipeline.Required("pre")),
			Call: func(input value.Value, args []value.Value) (value.Value, error) {
				return add(args[0], input)
			},
			Doc: "Prepend pre to the input.",
		},
		{
			Name:   "suffix",
			Params: params(pipeline.Required("suf")),
			Call: func(input value.Value, args []value.Value) (value.Value, error) {
				return add(input, args[0])
			},
			Doc: "Append suf to the input.",
		},
		{
			Name:   "left",
			Params: params(pipeline.Required("length")),
			Call: func(input value.Value, args []value.Value) (value.Value, error) {
				return slice("left", input, value.None(), args[0])
			},
			Doc: "Keep the first length characters or items.",
		},
		{
			Name:   "right",
			Params: params(pipeline.Required("length")),
			Call:   right,
			Doc:    "Keep the last length characters or items. right 0 keeps everything.",
		},
	}
}

func mapStr(name string, f func(string) string) func(value.Value) (value.Value, error) {
	return func(input value.Value) (value.Value, error) {
		s, err := requireStr(name, input)
		if err != nil {
			return value.None(), err
		}
		return value.String(f(s)), nil
	}
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) > 0 {
		runes[0] = unicode.ToTitle(runes[0])
	}
	return string(runes)
}

// title upper-cases the first letter of each run of letters and lower-cases the rest
func title(s string) string {
	var b strings.Builder
	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if inWord {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			inWord = true
			continue
		}
		inWord = false
		b.WriteRune(r)
	}
	return b.String()
}

func split(input value.Value, args []value.Value) (value.Value, error) {
	s, err := requireStr("split", input)
	if err != nil {
		return value.None(), err
	}
	sep, ok, err := optionalStr("split", args[0])
	if err != nil {
		return value.None(), err
	}
	if !ok {
		return value.Strings(strings.Fields(s)...), nil
	}
	if sep == "" {
		return value.None(), valueError("split(): empty separator")
	}
	return value.Strings(strings.Split(s, sep)...), nil
}

func replace(input value.Value, args []value.Value) (value.Value, error) {
	s, err := requireStr("replace", input)
	if err != nil {
		return value.None(), err
	}
	old, err := requireStr("replace", args[0])
	if err != nil {
		return value.None(), err
	}
	repl, err := requireStr("replace", args[1])
	if err != nil {
		return value.None(), err
	}
	if k := args[2].Kind(); k != value.KindInt && k != value.KindBool {
		return value.None(), typeError("replace(): count must be an int, got %s", args[2].TypeName())
	}
	n := int(asInt(args[2]))
	if n < 0 {
		n = -1
	}
	return value.String(strings.Replace(s, old, repl, n)), nil
}

type trimChars func(s, cutset string) string
type trimFunc func(s string, f func(rune) bool) string

func stripWith(name string, withChars trimChars, withSpace trimFunc) pipeline.Func {
	return func(input value.Value, args []value.Value) (value.Value, error) {
		s, err := requireStr(name, input)
		if err != nil {
			return value.None(), err
		}
		chars, ok, err := optionalStr(name, args[0])
		if err != nil {
			return value.None(), err
		}
		if !ok {
			return value.String(withSpace(s, unicode.IsSpace)), nil
		}
		return value.String(withChars(s, chars)), nil
	}
}

func join(input value.Value, args []value.Value) (value.Value, error) {
	sep, err := requireStr("join", args[0])
	if err != nil {
		return value.None(), err
	}
	items, err := iterate(input)
	if err != nil {
		return value.None(), typeError("join() can only join an iterable")
	}
	parts := make([]string, len(items))
	for i, item := range items {
		if item.Kind() != value.KindString {
			return value.None(), typeError("join(): sequence item %d: expected str instance, %s found", i, item.TypeName())
		}
		parts[i] = item.StringValue()
	}
	return value.String(strings.Join(parts, sep)), nil
}

// right keeps input[-length:], so a length of 0 keeps the whole input
func right(input value.Value, args []value.Value) (value.Value, error) {
	length := args[0]
	if k := length.Kind(); k != value.KindInt && k != value.KindBool {
		return value.None(), typeError("right(): length must be an int, got %s", length.TypeName())
	}
	return slice("right", input, value.Int(-asInt(length)), value.None())
}
