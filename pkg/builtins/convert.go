package builtins

import (
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/amake/pkg/pipeline"
	"github.com/arthur-debert/amake/pkg/value"
)

func conversionFunctions() []pipeline.Function {
	return []pipeline.Function{
		{
			Name:   "ensure_type",
			Params: params(pipeline.Required("expected_type"), pipeline.Optional("failure_value", value.String(""))),
			Call:   ensureType,
			Doc:    "Return the input if its type name (str, int, list, ...) equals expected_type, otherwise failure_value.",
		},
		{
			Name:   "ensure_str",
			Params: params(pipeline.Optional("failure_value", value.String(""))),
			Call: func(input value.Value, args []value.Value) (value.Value, error) {
				return ensureType(input, []value.Value{value.String("str"), args[0]})
			},
			Doc: "Return the input if it is a str, otherwise failure_value.",
		},
		{Name: "to_str", Params: params(), Call: unary(toStr), Doc: "Render the input as text. None becomes the empty string."},
		{Name: "to_int", Params: params(), Call: unary(toInt), Doc: "Convert to int. Falsy input becomes 0."},
		{Name: "to_bool", Params: params(), Call: unary(toBool), Doc: "Convert to bool using truthiness."},
		{Name: "to_float", Params: params(), Call: unary(toFloat), Doc: "Convert to float. Falsy input becomes 0.0."},
	}
}

func ensureType(input value.Value, args []value.Value) (value.Value, error) {
	expected := args[0]
	if expected.Kind() == value.KindString && input.TypeName() == expected.StringValue() {
		return input, nil
	}
	return args[1], nil
}

func toStr(input value.Value) (value.Value, error) {
	if input.IsNone() {
		return value.String(""), nil
	}
	return value.String(input.String()), nil
}

func toBool(input value.Value) (value.Value, error) {
	return value.Bool(input.Truthy()), nil
}

func toInt(input value.Value) (value.Value, error) {
	if !input.Truthy() {
		return value.Int(0), nil
	}

	switch input.Kind() {
	case value.KindBool, value.KindInt:
		return value.Int(asInt(input)), nil
	case value.KindFloat:
		f := input.FloatValue()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return value.None(), valueError("cannot convert float %s to integer", input.String())
		}
		if f >= math.MaxInt64 || f < math.MinInt64 {
			return value.None(), valueError("float %s is out of integer range", input.String())
		}
		return value.Int(int64(f)), nil
	case value.KindString:
		n, err := parseIntText(input.StringValue())
		if err != nil {
			return value.None(), valueError("invalid literal for int() with base 10: %s", input.Repr())
		}
		return value.Int(n), nil
	}
	return value.None(), typeError("int() argument must be a string or a number, not '%s'", input.TypeName())
}

func toFloat(input value.Value) (value.Value, error) {
	if !input.Truthy() {
		return value.Float(0), nil
	}

	switch input.Kind() {
	case value.KindBool, value.KindInt, value.KindFloat:
		return value.Float(asFloat(input)), nil
	case value.KindString:
		text := strings.TrimSpace(input.StringValue())
		if digits, ok := stripUnderscores(text); ok {
			text = digits
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil && !isRangeError(err) {
			return value.None(), valueError("could not convert string to float: %s", input.Repr())
		}
		if strings.HasPrefix(strings.ToLower(strings.TrimLeft(text, "+-")), "0x") {
			return value.None(), valueError("could not convert string to float: %s", input.Repr())
		}
		return value.Float(f), nil
	}
	return value.None(), typeError("float() argument must be a string or a number, not '%s'", input.TypeName())
}

// parseIntText parses a base 10 integer with optional sign, surrounding
// whitespace and single underscores between digits
func parseIntText(s string) (int64, error) {
	s = strings.TrimSpace(s)
	sign := ""
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		sign, s = s[:1], s[1:]
	}
	digits, ok := stripUnderscores(s)
	if !ok || digits == "" {
		return 0, strconv.ErrSyntax
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseInt(sign+digits, 10, 64)
}

// stripUnderscores removes underscores that sit between two digits. ok is
// false when an underscore is misplaced.
func stripUnderscores(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return s, false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
