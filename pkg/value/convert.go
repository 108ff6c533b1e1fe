package value

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/amake/pkg/errors"
)

// FromAny converts a decoded JSON, YAML or TOML value into a Value.
// Integral json.Numbers become ints and the rest floats. Objects are rejected.
func FromAny(raw interface{}) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return None(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case float64:
		return Float(x), nil
	case json.Number:
		if i, err := strconv.ParseInt(x.String(), 10, 64); err == nil {
			return Int(i), nil
		}
		f, err := strconv.ParseFloat(x.String(), 64)
		if err != nil {
			return None(), errors.Wrapf(err, errors.ErrTypeMismatch, "invalid number %q", x.String())
		}
		return Float(f), nil
	case string:
		return String(x), nil
	case []string:
		return Strings(x...), nil
	case []interface{}:
		items := make([]Value, len(x))
		for i, item := range x {
			v, err := FromAny(item)
			if err != nil {
				return None(), err
			}
			items[i] = v
		}
		return Value{kind: KindList, items: items}, nil
	}
	return None(), errors.Newf(errors.ErrTypeMismatch, "unsupported value of type %T", raw)
}

// MustFromAny is FromAny for values known to be convertible
func MustFromAny(raw interface{}) Value {
	v, err := FromAny(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Any converts v back into plain Go values. Tuples become slices.
func (v Value) Any() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList, KindTuple:
		out := make([]interface{}, len(v.items))
		for i, item := range v.items {
			out[i] = item.Any()
		}
		return out
	}
	return nil
}

// MarshalJSON keeps floats distinguishable from ints ("1.0", not "1")
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindFloat:
		if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
			return nil, errors.Newf(errors.ErrTypeMismatch, "cannot encode %s as JSON", v.Repr())
		}
		s := strconv.FormatFloat(v.f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return []byte(s), nil
	case KindList, KindTuple:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			data, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			b.Write(data)
		}
		b.WriteByte(']')
		return []byte(b.String()), nil
	}
	return json.Marshal(v.Any())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Value) MarshalYAML() (interface{}, error) {
	return v.Any(), nil
}
