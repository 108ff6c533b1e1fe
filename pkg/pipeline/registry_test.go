package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/amake/pkg/errors"
)

func unaryFunction(name string) Function {
	return Function{Name: name, Params: []Param{Required("input_data")}, Call: echoArgs}
}

func TestFunctionRegistry(t *testing.T) {
	r := NewFunctionRegistry()
	require.NoError(t, r.Register(unaryFunction("join")))
	require.NoError(t, r.Register(unaryFunction("strip")))

	t.Run("duplicate registration", func(t *testing.T) {
		err := r.Register(unaryFunction("join"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
		assert.Equal(t, 2, r.Len())
	})

	t.Run("zero parameters rejected", func(t *testing.T) {
		err := r.Register(Function{Name: "bad", Call: echoArgs})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidFunction))
		assert.False(t, r.Has("bad"))
	})

	t.Run("resolve", func(t *testing.T) {
		fn, err := r.Resolve("join")
		require.NoError(t, err)
		assert.Equal(t, "join", fn.Name)
	})

	t.Run("resolve unknown", func(t *testing.T) {
		_, err := r.Resolve("JOIN")
		assert.True(t, errors.IsErrorCode(err, errors.ErrStageNotFound))
		assert.Equal(t, "JOIN", errors.GetErrorDetails(err)["stage"])
	})

	t.Run("register as alias", func(t *testing.T) {
		require.NoError(t, r.RegisterAs("trim", unaryFunction("strip")))
		fn, err := r.Resolve("trim")
		require.NoError(t, err)
		assert.Equal(t, "trim", fn.Name)
	})

	t.Run("names sorted", func(t *testing.T) {
		assert.Equal(t, []string{"join", "strip", "trim"}, r.Names())
		assert.Len(t, r.Functions(), 3)
	})

	t.Run("unregister", func(t *testing.T) {
		require.NoError(t, r.Unregister("trim"))
		err := r.Unregister("trim")
		assert.True(t, errors.IsErrorCode(err, errors.ErrStageNotFound))
	})

	t.Run("frozen", func(t *testing.T) {
		r.Freeze()
		assert.True(t, r.Frozen())
		err := r.Register(unaryFunction("upper"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrRegistryFrozen))
		err = r.Unregister("join")
		assert.True(t, errors.IsErrorCode(err, errors.ErrRegistryFrozen))
	})
}

func TestSuggest(t *testing.T) {
	r := NewFunctionRegistry()
	for _, name := range []string{"join", "prefix_each", "posixpath", "posixpath_each", "normpath_each"} {
		r.MustRegister(unaryFunction(name))
	}

	assert.Equal(t, "prefix_each", r.Suggest("pfx_each"))
	assert.Equal(t, "join", r.Suggest("jion"))
	assert.Equal(t, "", r.Suggest("completely_different"))
	assert.Equal(t, "", r.Suggest("nope"), "subsequence matches far from the name are not suggested")
	assert.Equal(t, "", r.Suggest(""))
}
