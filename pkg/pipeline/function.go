package pipeline

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/value"
)

// Func is the signature every stage function implements. The input is the
// previous stage's output; args are already bound to the declared parameters,
// with defaults filled in and any variadic tail appended.
type Func func(input value.Value, args []value.Value) (value.Value, error)

// Param describes one positional parameter of a stage function
type Param struct {
	Name     string
	Default  *value.Value
	Variadic bool
}

// Required declares a parameter without a default
func Required(name string) Param {
	return Param{Name: name}
}

// Optional declares a parameter that falls back to def when omitted
func Optional(name string, def value.Value) Param {
	return Param{Name: name, Default: &def}
}

// Variadic declares a trailing parameter that absorbs the remaining arguments
func Variadic(name string) Param {
	return Param{Name: name, Variadic: true}
}

// Function is a named stage function. Params[0] is always the input value.
// A function with only the input parameter ignores stage arguments.
type Function struct {
	Name   string
	Params []Param
	Call   Func
	Doc    string
}

// InputOnly reports whether the function takes no stage arguments
func (f Function) InputOnly() bool {
	return len(f.Params) == 1
}

// Signature renders the parameter list, e.g. "replace(input_data, old, new, count=-1)"
func (f Function) Signature() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		switch {
		case p.Variadic:
			parts[i] = "*" + p.Name
		case p.Default != nil:
			parts[i] = fmt.Sprintf("%s=%s", p.Name, p.Default.Repr())
		default:
			parts[i] = p.Name
		}
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(parts, ", "))
}

// validate checks the parameter list is callable: at least the input, an
// input without default, no required parameter after an optional one and a
// variadic parameter only in last position.
func (f Function) validate() error {
	if f.Call == nil {
		return errors.Newf(errors.ErrInvalidFunction, "function '%s' has no implementation", f.Name)
	}
	if len(f.Params) == 0 {
		return errors.Newf(errors.ErrInvalidFunction, "function '%s': at least one parameter is required", f.Name)
	}
	if f.Params[0].Default != nil || f.Params[0].Variadic {
		return errors.Newf(errors.ErrInvalidFunction, "function '%s': the input parameter cannot be optional", f.Name)
	}

	optional := false
	for i, p := range f.Params {
		if p.Variadic && i != len(f.Params)-1 {
			return errors.Newf(errors.ErrInvalidFunction, "function '%s': variadic parameter '%s' must be last", f.Name, p.Name)
		}
		if p.Default != nil {
			optional = true
		} else if optional && !p.Variadic {
			return errors.Newf(errors.ErrInvalidFunction, "function '%s': required parameter '%s' follows an optional one", f.Name, p.Name)
		}
	}
	return nil
}

// bind matches stage arguments to the declared parameters. Input-only
// functions drop their arguments.
func (f Function) bind(args []value.Value) ([]value.Value, error) {
	params := f.Params[1:]
	if len(params) == 0 {
		return nil, nil
	}

	fixed := params
	variadic := false
	if params[len(params)-1].Variadic {
		fixed = params[:len(params)-1]
		variadic = true
	}

	required := 0
	for _, p := range fixed {
		if p.Default == nil {
			required++
		}
	}

	if len(args) < required {
		missing := make([]string, 0, required-len(args))
		for _, p := range fixed[len(args):required] {
			missing = append(missing, "'"+p.Name+"'")
		}
		return nil, errors.Newf(errors.ErrArity, "%s() missing %d required positional argument(s): %s",
			f.Name, len(missing), strings.Join(missing, ", ")).
			WithDetail("given", len(args)).
			WithDetail("required", required)
	}
	if !variadic && len(args) > len(fixed) {
		return nil, errors.Newf(errors.ErrArity, "%s() takes %d argument(s) but %d were given",
			f.Name, len(fixed), len(args)).
			WithDetail("given", len(args)).
			WithDetail("max", len(fixed))
	}

	bound := make([]value.Value, 0, len(args)+len(fixed))
	for i, p := range fixed {
		if i < len(args) {
			bound = append(bound, args[i])
		} else {
			bound = append(bound, *p.Default)
		}
	}
	if variadic && len(args) > len(fixed) {
		bound = append(bound, args[len(fixed):]...)
	}
	return bound, nil
}

// Invoke binds args and calls the function
func (f Function) Invoke(input value.Value, args []value.Value) (value.Value, error) {
	bound, err := f.bind(args)
	if err != nil {
		return value.None(), err
	}
	return f.Call(input, bound)
}
