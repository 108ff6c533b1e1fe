package builtins

import (
	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/value"
)

func typeError(format string, args ...interface{}) error {
	return errors.Newf(errors.ErrTypeMismatch, format, args...)
}

func valueError(format string, args ...interface{}) error {
	return errors.Newf(errors.ErrInvalidArgument, format, args...)
}

// requireStr returns the text of a str value
func requireStr(fn string, v value.Value) (string, error) {
	if v.Kind() != value.KindString {
		return "", typeError("%s() expects str, got %s", fn, v.TypeName())
	}
	return v.StringValue(), nil
}

// optionalStr returns the text of a str value, or ok=false for None
func optionalStr(fn string, v value.Value) (s string, ok bool, err error) {
	if v.IsNone() {
		return "", false, nil
	}
	s, err = requireStr(fn, v)
	return s, err == nil, err
}

// iterate yields the items of a list or tuple, or the characters of a str
func iterate(v value.Value) ([]value.Value, error) {
	switch v.Kind() {
	case value.KindList, value.KindTuple:
		return v.Items(), nil
	case value.KindString:
		var items []value.Value
		for _, r := range v.StringValue() {
			items = append(items, value.String(string(r)))
		}
		return items, nil
	}
	return nil, typeError("'%s' object is not iterable", v.TypeName())
}

// add implements '+': str and sequence concatenation and numeric addition
func add(a, b value.Value) (value.Value, error) {
	switch {
	case a.Kind() == value.KindString && b.Kind() == value.KindString:
		return value.String(a.StringValue() + b.StringValue()), nil
	case a.Kind() == value.KindList && b.Kind() == value.KindList:
		return value.List(append(a.Items(), b.Items()...)...), nil
	case a.Kind() == value.KindTuple && b.Kind() == value.KindTuple:
		return value.Tuple(append(a.Items(), b.Items()...)...), nil
	case a.IsNumber() && b.IsNumber():
		if a.Kind() == value.KindFloat || b.Kind() == value.KindFloat {
			return value.Float(asFloat(a) + asFloat(b)), nil
		}
		return value.Int(asInt(a) + asInt(b)), nil
	}
	return value.None(), typeError("unsupported operand type(s) for +: '%s' and '%s'", a.TypeName(), b.TypeName())
}

func asInt(v value.Value) int64 {
	switch v.Kind() {
	case value.KindBool:
		if v.BoolValue() {
			return 1
		}
		return 0
	case value.KindFloat:
		return int64(v.FloatValue())
	}
	return v.IntValue()
}

func asFloat(v value.Value) float64 {
	if v.Kind() == value.KindFloat {
		return v.FloatValue()
	}
	return float64(asInt(v))
}

// sliceIndex converts a slice bound. None means "open".
func sliceIndex(fn string, v value.Value) (int, bool, error) {
	switch v.Kind() {
	case value.KindNone:
		return 0, false, nil
	case value.KindInt, value.KindBool:
		return int(asInt(v)), true, nil
	}
	return 0, false, typeError("%s(): slice indices must be integers or None, got %s", fn, v.TypeName())
}

// slice applies Python's v[start:end] to a str, list or tuple
func slice(fn string, v value.Value, start, end value.Value) (value.Value, error) {
	lo, hasLo, err := sliceIndex(fn, start)
	if err != nil {
		return value.None(), err
	}
	hi, hasHi, err := sliceIndex(fn, end)
	if err != nil {
		return value.None(), err
	}

	var n int
	var runes []rune
	switch v.Kind() {
	case value.KindString:
		runes = []rune(v.StringValue())
		n = len(runes)
	case value.KindList, value.KindTuple:
		n = v.Len()
	default:
		return value.None(), typeError("'%s' object is not subscriptable", v.TypeName())
	}

	if !hasLo {
		lo = 0
	}
	if !hasHi {
		hi = n
	}
	lo, hi = clampIndex(lo, n), clampIndex(hi, n)
	if hi < lo {
		hi = lo
	}

	switch v.Kind() {
	case value.KindString:
		return value.String(string(runes[lo:hi])), nil
	case value.KindList:
		return value.List(v.Items()[lo:hi]...), nil
	default:
		return value.Tuple(v.Items()[lo:hi]...), nil
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}
