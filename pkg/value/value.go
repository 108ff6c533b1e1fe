package value

import (
	"math"
)

// Kind identifies the variant held by a Value
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindTuple
)

var kindNames = map[Kind]string{
	KindNone:   "NoneType",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "str",
	KindList:   "list",
	KindTuple:  "tuple",
}

// String returns the runtime type name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindFromName resolves a runtime type name such as "str" or "list"
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindNone, false
}

// Value is a typed pipeline value. The zero Value is None.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	items []Value
}

func None() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func String(s string) Value { return Value{kind: KindString, s: s} }

// List builds a list value holding a copy of items
func List(items ...Value) Value {
	return Value{kind: KindList, items: copyItems(items)}
}

// Tuple builds a tuple value holding a copy of items
func Tuple(items ...Value) Value {
	return Value{kind: KindTuple, items: copyItems(items)}
}

// Strings builds a list of string values
func Strings(ss ...string) Value {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = String(s)
	}
	return Value{kind: KindList, items: items}
}

func copyItems(items []Value) []Value {
	out := make([]Value, len(items))
	copy(out, items)
	return out
}

func (v Value) Kind() Kind { return v.kind }

// TypeName returns the runtime type name, e.g. "str" or "NoneType"
func (v Value) TypeName() string { return v.kind.String() }

func (v Value) IsNone() bool { return v.kind == KindNone }

// IsSequence reports whether v is a list or a tuple
func (v Value) IsSequence() bool { return v.kind == KindList || v.kind == KindTuple }

// IsNumber reports whether v is a bool, int or float
func (v Value) IsNumber() bool {
	return v.kind == KindBool || v.kind == KindInt || v.kind == KindFloat
}

func (v Value) BoolValue() bool { return v.b }

func (v Value) IntValue() int64 { return v.i }

func (v Value) FloatValue() float64 { return v.f }

// StringValue returns the text of a str value. It does not render other kinds; use String for that.
func (v Value) StringValue() string { return v.s }

// Items returns a copy of the elements of a list or tuple
func (v Value) Items() []Value { return copyItems(v.items) }

// Len returns the number of elements of a sequence or the byte length of a str
func (v Value) Len() int {
	switch v.kind {
	case KindString:
		return len(v.s)
	case KindList, KindTuple:
		return len(v.items)
	}
	return 0
}

// Truthy applies Python truthiness: None, False, zero and empty values are false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindString:
		return v.s != ""
	case KindList, KindTuple:
		return len(v.items) > 0
	}
	return false
}

// number returns v as a float64 and whether it is numeric. Bools count as 0 and 1.
func (v Value) number() (float64, bool) {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// Equal compares values the way Python's == does: numbers compare across
// bool/int/float, lists only equal lists and tuples only equal tuples.
func (v Value) Equal(o Value) bool {
	if v.IsNumber() && o.IsNumber() {
		if v.kind != KindFloat && o.kind != KindFloat {
			return v.integer() == o.integer()
		}
		a, _ := v.number()
		b, _ := o.number()
		if math.IsNaN(a) || math.IsNaN(b) {
			return false
		}
		return a == b
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindString:
		return v.s == o.s
	case KindList, KindTuple:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func (v Value) integer() int64 {
	if v.kind == KindBool {
		if v.b {
			return 1
		}
		return 0
	}
	return v.i
}
