package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/value"
)

func echoArgs(input value.Value, args []value.Value) (value.Value, error) {
	return value.List(append([]value.Value{input}, args...)...), nil
}

func TestFunctionValidate(t *testing.T) {
	in := Required("input_data")

	tests := []struct {
		name    string
		fn      Function
		wantErr bool
	}{
		{"input only", Function{Name: "f", Params: []Param{in}, Call: echoArgs}, false},
		{"with optional", Function{Name: "f", Params: []Param{in, Optional("sep", value.String(" "))}, Call: echoArgs}, false},
		{"with variadic", Function{Name: "f", Params: []Param{in, Required("a"), Variadic("rest")}, Call: echoArgs}, false},
		{"no params", Function{Name: "f", Call: echoArgs}, true},
		{"no call", Function{Name: "f", Params: []Param{in}}, true},
		{"optional input", Function{Name: "f", Params: []Param{Optional("in", value.None())}, Call: echoArgs}, true},
		{"variadic input", Function{Name: "f", Params: []Param{Variadic("in")}, Call: echoArgs}, true},
		{"variadic not last", Function{Name: "f", Params: []Param{in, Variadic("rest"), Required("a")}, Call: echoArgs}, true},
		{"required after optional", Function{Name: "f", Params: []Param{in, Optional("a", value.None()), Required("b")}, Call: echoArgs}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn.validate()
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidFunction), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFunctionInvoke(t *testing.T) {
	fn := Function{
		Name:   "ifeq",
		Params: []Param{Required("input_data"), Required("value"), Optional("true_value", value.String("t")), Variadic("else")},
		Call:   echoArgs,
	}

	t.Run("defaults filled", func(t *testing.T) {
		out, err := fn.Invoke(value.String("x"), []value.Value{value.Int(1)})
		require.NoError(t, err)
		assert.Equal(t, "['x', 1, 't']", out.Repr())
	})

	t.Run("variadic tail appended", func(t *testing.T) {
		out, err := fn.Invoke(value.String("x"), []value.Value{value.Int(1), value.Int(2), value.Int(3), value.Int(4)})
		require.NoError(t, err)
		assert.Equal(t, "['x', 1, 2, 3, 4]", out.Repr())
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := fn.Invoke(value.String("x"), nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrArity))
		assert.Contains(t, err.Error(), "'value'")
	})

	t.Run("too many arguments", func(t *testing.T) {
		fixed := Function{Name: "prefix", Params: []Param{Required("input_data"), Required("pre")}, Call: echoArgs}
		_, err := fixed.Invoke(value.String("x"), []value.Value{value.Int(1), value.Int(2)})
		assert.True(t, errors.IsErrorCode(err, errors.ErrArity))
		assert.Contains(t, err.Error(), "takes 1 argument(s) but 2 were given")
	})

	t.Run("input only drops arguments", func(t *testing.T) {
		unary := Function{Name: "upper", Params: []Param{Required("input_data")}, Call: echoArgs}
		out, err := unary.Invoke(value.String("x"), []value.Value{value.Int(1)})
		require.NoError(t, err)
		assert.Equal(t, "['x']", out.Repr())
		assert.True(t, unary.InputOnly())
	})
}

func TestFunctionSignature(t *testing.T) {
	fn := Function{
		Name:   "replace",
		Params: []Param{Required("input_data"), Required("old"), Required("new"), Optional("count", value.Int(-1)), Variadic("rest")},
		Call:   echoArgs,
	}
	assert.Equal(t, "replace(input_data, old, new, count=-1, *rest)", fn.Signature())
}
