// Package literal turns pipeline argument tokens into typed values.
//
// Only literal syntax is understood: numbers, quoted strings, True/False/None
// and lists or tuples built from those. Names, calls, operators and any other
// expression syntax are rejected, so a token can never run code.
package literal

import (
	"strings"

	"github.com/arthur-debert/amake/pkg/errors"
	"github.com/arthur-debert/amake/pkg/value"
)

// Fallback produces a value for a token that is not a valid literal
type Fallback func(token string) value.Value

// AsString is the default fallback: the token is kept verbatim as a str
func AsString(token string) value.Value {
	return value.String(token)
}

// Parse converts a token using the AsString fallback. It never fails.
func Parse(token string) value.Value {
	v, _ := ParseWith(token, AsString)
	return v
}

// ParseWith converts a token into a value. The rules are applied in order:
//
//	""                    -> ""
//	none, null (any case) -> None
//	true, false (any case) -> True, False
//	literal syntax        -> the evaluated literal
//
// When evaluation fails the fallback decides the result. A nil fallback makes
// the parser strict and the failure is returned as ErrLiteralParse.
func ParseWith(token string, fallback Fallback) (value.Value, error) {
	if token == "" {
		return value.String(""), nil
	}

	switch strings.ToLower(token) {
	case "none", "null":
		return value.None(), nil
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	}

	v, err := Eval(token)
	if err == nil {
		return v, nil
	}
	if fallback == nil {
		return value.None(), errors.Wrapf(err, errors.ErrLiteralParse, "invalid argument: %s", token).
			WithDetail("token", token)
	}
	return fallback(token), nil
}
