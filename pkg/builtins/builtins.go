package builtins

import (
	"github.com/arthur-debert/amake/pkg/pipeline"
	"github.com/arthur-debert/amake/pkg/value"
)

// aliases maps alternate names to the function they share an implementation with
var aliases = map[string]string{
	"str":   "to_str",
	"int":   "to_int",
	"bool":  "to_bool",
	"float": "to_float",
	"ifne":  "ifneq",
	"slice": "strslice",
}

// Functions returns the built-in functions, aliases excluded
func Functions() []pipeline.Function {
	var fns []pipeline.Function
	fns = append(fns, conversionFunctions()...)
	fns = append(fns, stringFunctions()...)
	fns = append(fns, conditionalFunctions()...)
	fns = append(fns, listFunctions()...)
	fns = append(fns, pathFunctions()...)
	fns = append(fns, shellFunctions()...)
	return fns
}

// Aliases returns alias -> target function name
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

// Register adds every built-in function and alias to r
func Register(r *pipeline.FunctionRegistry) error {
	byName := make(map[string]pipeline.Function)
	for _, fn := range Functions() {
		if err := r.Register(fn); err != nil {
			return err
		}
		byName[fn.Name] = fn
	}
	for alias, target := range aliases {
		fn := byName[target]
		fn.Doc = "Alias of " + target + ". " + fn.Doc
		if err := r.RegisterAs(alias, fn); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding the built-in set. Callers may add
// their own functions before handing it to an executor.
func NewRegistry() *pipeline.FunctionRegistry {
	r := pipeline.NewFunctionRegistry()
	if err := Register(r); err != nil {
		panic(err)
	}
	return r
}

// NewExecutor returns an executor over a fresh built-in registry
func NewExecutor(opts pipeline.ExecutorOptions) *pipeline.Executor {
	return pipeline.NewExecutor(NewRegistry(), opts)
}

// params prepends the input parameter
func params(rest ...pipeline.Param) []pipeline.Param {
	return append([]pipeline.Param{pipeline.Required("input_data")}, rest...)
}

// unary wraps a function of the input only
func unary(f func(value.Value) (value.Value, error)) pipeline.Func {
	return func(input value.Value, _ []value.Value) (value.Value, error) {
		return f(input)
	}
}
