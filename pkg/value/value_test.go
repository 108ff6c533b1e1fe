package value

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/amake/pkg/errors"
)

func TestZeroValueIsNone(t *testing.T) {
	var v Value
	assert.True(t, v.IsNone())
	assert.Equal(t, "NoneType", v.TypeName())
	assert.Equal(t, "None", v.String())
}

func TestTypeNames(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{None(), "NoneType"},
		{Bool(true), "bool"},
		{Int(1), "int"},
		{Float(1.5), "float"},
		{String("a"), "str"},
		{List(), "list"},
		{Tuple(), "tuple"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.TypeName())
			k, ok := KindFromName(tt.want)
			require.True(t, ok)
			assert.Equal(t, tt.v.Kind(), k)
		})
	}

	_, ok := KindFromName("dict")
	assert.False(t, ok)
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"none", None(), false},
		{"true", Bool(true), true},
		{"false", Bool(false), false},
		{"zero", Int(0), false},
		{"int", Int(-3), true},
		{"zero float", Float(0), false},
		{"float", Float(0.1), true},
		{"empty string", String(""), false},
		{"space", String(" "), true},
		{"empty list", List(), false},
		{"list", Strings(""), true},
		{"empty tuple", Tuple(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Truthy())
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"none", None(), None(), true},
		{"none vs empty", None(), String(""), false},
		{"int vs float", Int(1), Float(1.0), true},
		{"bool vs int", Bool(true), Int(1), true},
		{"false vs zero float", Bool(false), Float(0), true},
		{"strings", String("a"), String("a"), true},
		{"string vs int", String("1"), Int(1), false},
		{"lists", Strings("a", "b"), Strings("a", "b"), true},
		{"list order", Strings("a", "b"), Strings("b", "a"), false},
		{"list vs tuple", List(Int(1)), Tuple(Int(1)), false},
		{"nested", List(Tuple(Int(1), String("x"))), List(Tuple(Float(1), String("x"))), true},
		{"nan", Float(math.NaN()), Float(math.NaN()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestStringAndRepr(t *testing.T) {
	tests := []struct {
		name     string
		v        Value
		wantStr  string
		wantRepr string
	}{
		{"none", None(), "None", "None"},
		{"true", Bool(true), "True", "True"},
		{"int", Int(-42), "-42", "-42"},
		{"integral float", Float(1), "1.0", "1.0"},
		{"float", Float(2.5), "2.5", "2.5"},
		{"small float", Float(0.00001), "1e-05", "1e-05"},
		{"large float", Float(1e16), "1e+16", "1e+16"},
		{"below large float", Float(1e15), "1000000000000000.0", "1000000000000000.0"},
		{"inf", Float(math.Inf(-1)), "-inf", "-inf"},
		{"string", String("a b"), "a b", "'a b'"},
		{"string with single quote", String("it's"), "it's", `"it's"`},
		{"string with both quotes", String(`it's "x"`), `it's "x"`, `'it\'s "x"'`},
		{"escapes", String("a\\b\n"), "a\\b\n", `'a\\b\n'`},
		{"list", List(String("src"), Int(1), None()), "['src', 1, None]", "['src', 1, None]"},
		{"empty list", List(), "[]", "[]"},
		{"single tuple", Tuple(Int(1)), "(1,)", "(1,)"},
		{"tuple", Tuple(Int(1), Bool(false)), "(1, False)", "(1, False)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStr, tt.v.String())
			assert.Equal(t, tt.wantRepr, tt.v.Repr())
		})
	}
}

func TestItemsAreCopied(t *testing.T) {
	src := []Value{String("a")}
	v := List(src...)
	src[0] = String("changed")
	assert.Equal(t, "a", v.Items()[0].StringValue())

	items := v.Items()
	items[0] = String("changed")
	assert.Equal(t, "a", v.Items()[0].StringValue())
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want Value
	}{
		{"nil", nil, None()},
		{"bool", true, Bool(true)},
		{"int", 3, Int(3)},
		{"json int", json.Number("7"), Int(7)},
		{"json float", json.Number("7.5"), Float(7.5)},
		{"float", 2.0, Float(2)},
		{"string", "x", String("x")},
		{"list", []interface{}{"a", json.Number("1"), nil}, List(String("a"), Int(1), None())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind(), got.Kind())
			assert.True(t, tt.want.Equal(got), "got %s", got.Repr())
		})
	}

	t.Run("objects are rejected", func(t *testing.T) {
		_, err := FromAny(map[string]interface{}{"a": 1})
		assert.True(t, errors.IsErrorCode(err, errors.ErrTypeMismatch))
	})
}

func TestJSONRoundTrip(t *testing.T) {
	v := List(String("a"), Int(2), Float(2.5), Bool(true), None(), Tuple(String("t")))
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `["a", 2, 2.5, true, null, ["t"]]`, string(data))

	var back Value
	require.NoError(t, json.Unmarshal([]byte(`["a", 2, 2.5]`), &back))
	assert.Equal(t, "['a', 2, 2.5]", back.Repr())
	assert.Equal(t, KindInt, back.Items()[1].Kind())

	data, err = json.Marshal(List(Float(1), Float(1e21)))
	require.NoError(t, err)
	assert.Equal(t, `[1.0,1e+21]`, string(data))
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, KindFloat, back.Items()[0].Kind())

	_, err = json.Marshal(Float(math.Inf(1)))
	assert.Error(t, err)
}

func TestMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]Value{"x": Strings("a", "b")})
	require.NoError(t, err)
	assert.Equal(t, "x:\n    - a\n    - b\n", string(out))
}
