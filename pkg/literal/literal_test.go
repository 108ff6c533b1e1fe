package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/value"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  value.Value
	}{
		// shortcuts
		{"empty", "", value.String("")},
		{"none", "None", value.None()},
		{"none lower", "none", value.None()},
		{"null", "NULL", value.None()},
		{"true", "true", value.Bool(true)},
		{"true title", "True", value.Bool(true)},
		{"false upper", "FALSE", value.Bool(false)},

		// numbers
		{"int", "42", value.Int(42)},
		{"negative int", "-1", value.Int(-1)},
		{"plus int", "+7", value.Int(7)},
		{"hex", "0x1F", value.Int(31)},
		{"octal", "0o17", value.Int(15)},
		{"binary", "0b101", value.Int(5)},
		{"underscores", "1_000", value.Int(1000)},
		{"zeros", "00", value.Int(0)},
		{"float", "3.14", value.Float(3.14)},
		{"leading dot", ".5", value.Float(0.5)},
		{"trailing dot", "5.", value.Float(5)},
		{"exponent", "1e3", value.Float(1000)},
		{"negative exponent", "-2.5e-1", value.Float(-0.25)},
		{"parenthesized sign", "-(1)", value.Int(-1)},

		// strings
		{"single quoted", "'a b'", value.String("a b")},
		{"double quoted", `"--jobs="`, value.String("--jobs=")},
		{"empty quoted", "''", value.String("")},
		{"escaped quote", `'it\'s'`, value.String("it's")},
		{"newline escape", `'a\nb'`, value.String("a\nb")},
		{"hex escape", `'\x41'`, value.String("A")},
		{"unicode escape", `'é'`, value.String("é")},
		{"octal escape", `'\101'`, value.String("A")},
		{"unknown escape kept", `'\d'`, value.String(`\d`)},
		{"raw string", `r'\n'`, value.String(`\n`)},
		{"unicode prefix", `u'x'`, value.String("x")},
		{"triple quoted", `'''a'b'''`, value.String("a'b")},
		{"concatenation", `'a' "b"`, value.String("ab")},

		// containers
		{"list", "[1, 'a', None]", value.List(value.Int(1), value.String("a"), value.None())},
		{"empty list", "[]", value.List()},
		{"trailing comma list", "['-I',]", value.Strings("-I")},
		{"nested list", "[[1], (2, 3)]", value.List(value.List(value.Int(1)), value.Tuple(value.Int(2), value.Int(3)))},
		{"bools in list", "[True,False]", value.List(value.Bool(true), value.Bool(false))},
		{"single tuple", "(1,)", value.Tuple(value.Int(1))},
		{"empty tuple", "()", value.Tuple()},
		{"parenthesized value", "('x')", value.String("x")},
		{"bare tuple", "1,2", value.Tuple(value.Int(1), value.Int(2))},
		{"bare single tuple", "'a',", value.Tuple(value.String("a"))},
		{"multiline list", "[1,\n 2]", value.List(value.Int(1), value.Int(2))},

		// fallbacks
		{"bare words in list", "[a, b]", value.String("[a, b]")},
		{"bare word", "src", value.String("src")},
		{"lowercase none in list", "[none]", value.String("[none]")},
		{"dict", "{'a': 1}", value.String("{'a': 1}")},
		{"set", "{1}", value.String("{1}")},
		{"bytes", "b'x'", value.String("b'x'")},
		{"f-string", "f'x'", value.String("f'x'")},
		{"complex", "1j", value.String("1j")},
		{"leading zeros", "007", value.String("007")},
		{"overflow", "99999999999999999999", value.String("99999999999999999999")},
		{"double sign", "--1", value.String("--1")},
		{"signed string", "-'a'", value.String("-'a'")},
		{"signed bool", "-True", value.String("-True")},
		{"plus bool", "+False", value.String("+False")},
		{"signed parenthesized bool", "-(True)", value.String("-(True)")},
		{"call", "print(1)", value.String("print(1)")},
		{"expression", "1+2", value.String("1+2")},
		{"unterminated string", "'abc", value.String("'abc")},
		{"unterminated list", "[1, 2", value.String("[1, 2")},
		{"path", "--directory=", value.String("--directory=")},
		{"flag", "-I", value.String("-I")},
		{"number suffix", "1abc", value.String("1abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.token)
			assert.Equal(t, tt.want.Kind(), got.Kind(), "kind of %q", tt.token)
			assert.True(t, tt.want.Equal(got), "Parse(%q) = %s, want %s", tt.token, got.Repr(), tt.want.Repr())
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	for _, token := range []string{"[1, (2,), 'x']", "[a, b]", "0x10", "'a' 'b'"} {
		first := Parse(token)
		for i := 0; i < 3; i++ {
			assert.True(t, first.Equal(Parse(token)), "token %q", token)
		}
	}
}

func TestParseWithStrictFallback(t *testing.T) {
	t.Run("valid literal", func(t *testing.T) {
		v, err := ParseWith("[1]", nil)
		require.NoError(t, err)
		assert.Equal(t, "[1]", v.Repr())
	})

	t.Run("invalid literal", func(t *testing.T) {
		_, err := ParseWith("[a, b]", nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrLiteralParse))
		assert.Equal(t, "[a, b]", errors.GetErrorDetails(err)["token"])
	})

	t.Run("shortcuts never fail", func(t *testing.T) {
		v, err := ParseWith("null", nil)
		require.NoError(t, err)
		assert.True(t, v.IsNone())
	})
}

func TestParseWithCustomFallback(t *testing.T) {
	v, err := ParseWith("oops", func(token string) value.Value {
		return value.Strings(token)
	})
	require.NoError(t, err)
	assert.Equal(t, "['oops']", v.Repr())
}

func TestEvalRejectsTrailingInput(t *testing.T) {
	_, err := Eval("1 2")
	assert.Error(t, err)

	_, err = Eval("[1] x")
	assert.Error(t, err)

	v, err := Eval("1 # comment")
	require.NoError(t, err)
	assert.True(t, value.Int(1).Equal(v))
}
