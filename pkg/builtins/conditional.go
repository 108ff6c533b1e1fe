package builtins

import (
	"github.com/arthur-debert/amake/pkg/pipeline"
	"github.com/arthur-debert/amake/pkg/value"
)

func conditionalFunctions() []pipeline.Function {
	return []pipeline.Function{
		{
			Name:   "ifelse",
			Params: params(pipeline.Required("true_value"), pipeline.Required("false_value")),
			Call: func(input value.Value, args []value.Value) (value.Value, error) {
				if input.Truthy() {
					return args[0], nil
				}
				return args[1], nil
			},
			Doc: "Return true_value when the input is truthy, otherwise false_value.",
		},
		{
			Name:   "ifeq",
			Params: params(pipeline.Required("value"), pipeline.Required("true_value"), pipeline.Variadic("else")),
			Call:   choose(true),
			Doc:    "Return true_value when the input equals value, otherwise the optional else value or the input.",
		},
		{
			Name:   "ifneq",
			Params: params(pipeline.Required("value"), pipeline.Required("true_value"), pipeline.Variadic("else")),
			Call:   choose(false),
			Doc:    "Return true_value when the input differs from value, otherwise the optional else value or the input.",
		},
		{
			Name:   "prefix_ifeq",
			Params: params(pipeline.Required("value"), pipeline.Required("prefix")),
			Call:   affixIf(true, true),
			Doc:    "Prepend prefix when the input equals value.",
		},
		{
			Name:   "prefix_ifneq",
			Params: params(pipeline.Required("value"), pipeline.Required("prefix")),
			Call:   affixIf(true, false),
			Doc:    "Prepend prefix when the input differs from value.",
		},
		{
			Name:   "suffix_ifeq",
			Params: params(pipeline.Required("value"), pipeline.Required("suffix")),
			Call:   affixIf(false, true),
			Doc:    "Append suffix when the input equals value.",
		},
		{
			Name:   "suffix_ifneq",
			Params: params(pipeline.Required("value"), pipeline.Required("suffix")),
			Call:   affixIf(false, false),
			Doc:    "Append suffix when the input differs from value.",
		},
	}
}

// choose builds ifeq (equal=true) and ifneq. Only the first else value is used.
func choose(equal bool) pipeline.Func {
	return func(input value.Value, args []value.Value) (value.Value, error) {
		if input.Equal(args[0]) == equal {
			return args[1], nil
		}
		if len(args) > 2 {
			return args[2], nil
		}
		return input, nil
	}
}

func affixIf(prefix, equal bool) pipeline.Func {
	return func(input value.Value, args []value.Value) (value.Value, error) {
		if input.Equal(args[0]) != equal {
			return input, nil
		}
		if prefix {
			return add(args[1], input)
		}
		return add(input, args[1])
	}
}
