package builtins

import (
	"strings"

	"github.com/arthur-debert/amake/pkg/pipeline"
	"github.com/arthur-debert/amake/pkg/value"
)

func listFunctions() []pipeline.Function {
	return []pipeline.Function{
		{Name: "reverse", Params: params(), Call: unary(reverse), Doc: "Reverse a str or list. Other values pass through."},
		{Name: "distinct", Params: params(), Call: unary(distinct), Doc: "Drop repeated items, keeping the first occurrence of each."},
		{Name: "dedup", Params: params(), Call: unary(dedup), Doc: "Drop items equal to the item just before them."},
		{Name: "no_empty", Params: params(), Call: unary(noEmpty), Doc: "Drop falsy items (empty strings, None, 0, empty lists)."},
		{
			Name:   "prefix_each",
			Params: params(pipeline.Required("prefix")),
			Call: eachWith(func(item value.Value, args []value.Value) (value.Value, error) {
				return add(args[0], item)
			}),
			Doc: "Prepend prefix to every item.",
		},
		{
			Name:   "suffix_each",
			Params: params(pipeline.Required("suffix")),
			Call: eachWith(func(item value.Value, args []value.Value) (value.Value, error) {
				return add(item, args[0])
			}),
			Doc: "Append suffix to every item.",
		},
		{
			Name:   "replace_each",
			Params: params(pipeline.Required("old"), pipeline.Required("new")),
			Call: eachWith(func(item value.Value, args []value.Value) (value.Value, error) {
				return replace(item, []value.Value{args[0], args[1], value.Int(-1)})
			}),
			Doc: "Replace old with new in every item.",
		},
		{
			Name:   "strip_each",
			Params: params(pipeline.Optional("chars", value.None())),
			Call:   eachWith(stripWith("strip_each", strings.Trim, strings.TrimFunc)),
			Doc:    "Strip whitespace, or the given chars, from every item.",
		},
		{
			Name:   "pretend_each",
			Params: params(pipeline.Required("value")),
			Call:   interleave(true),
			Doc:    "Insert value before every item: [a, b] -> [value, a, value, b].",
		},
		{
			Name:   "extend_each",
			Params: params(pipeline.Required("value")),
			Call:   interleave(false),
			Doc:    "Insert value after every item: [a, b] -> [a, value, b, value].",
		},
	}
}

func reverse(input value.Value) (value.Value, error) {
	switch input.Kind() {
	case value.KindString:
		runes := []rune(input.StringValue())
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return value.String(string(runes)), nil
	case value.KindList:
		items := input.Items()
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
		return value.List(items...), nil
	}
	return input, nil
}

func distinct(input value.Value) (value.Value, error) {
	items, err := iterate(input)
	if err != nil {
		return value.None(), err
	}
	out := make([]value.Value, 0, len(items))
	for _, item := range items {
		if item.Kind() == value.KindList {
			return value.None(), typeError("unhashable type: 'list'")
		}
		seen := false
		for _, kept := range out {
			if kept.Equal(item) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, item)
		}
	}
	return value.List(out...), nil
}

func dedup(input value.Value) (value.Value, error) {
	items, err := iterate(input)
	if err != nil {
		return value.None(), err
	}
	out := make([]value.Value, 0, len(items))
	for i, item := range items {
		if i > 0 && item.Equal(items[i-1]) {
			continue
		}
		out = append(out, item)
	}
	return value.List(out...), nil
}

func noEmpty(input value.Value) (value.Value, error) {
	items, err := iterate(input)
	if err != nil {
		return value.None(), err
	}
	out := make([]value.Value, 0, len(items))
	for _, item := range items {
		if item.Truthy() {
			out = append(out, item)
		}
	}
	return value.List(out...), nil
}

// eachWith applies f to every item of the input and collects a list
func eachWith(f pipeline.Func) pipeline.Func {
	return func(input value.Value, args []value.Value) (value.Value, error) {
		items, err := iterate(input)
		if err != nil {
			return value.None(), err
		}
		out := make([]value.Value, len(items))
		for i, item := range items {
			if out[i], err = f(item, args); err != nil {
				return value.None(), err
			}
		}
		return value.List(out...), nil
	}
}

func interleave(before bool) pipeline.Func {
	return func(input value.Value, args []value.Value) (value.Value, error) {
		items, err := iterate(input)
		if err != nil {
			return value.None(), err
		}
		out := make([]value.Value, 0, 2*len(items))
		for _, item := range items {
			if before {
				out = append(out, args[0], item)
			} else {
				out = append(out, item, args[0])
			}
		}
		return value.List(out...), nil
	}
}
