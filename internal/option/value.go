package option

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind is the dynamic type carried by a Value.
type Kind int

const (
	// KindInvalid is the zero Kind; the zero Value has it.
	KindInvalid Kind = iota
	KindBool
	KindString
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "invalid"
	}
}

// Value is a boolean, string or number option value.
type Value struct {
	kind Kind
	b    bool
	s    string
	n    float64
}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Kind returns the dynamic type of v.
func (v Value) Kind() Kind { return v.kind }

// Truthy follows JavaScript truthiness: false, "", 0 and NaN are falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s != ""
	case KindNumber:
		return v.n != 0 && !math.IsNaN(v.n)
	default:
		return false
	}
}

// Equal is strict equality: same kind and same value. The number 4 and
// the string "4" are not equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindNumber:
		return v.n == o.n
	default:
		return true
	}
}

// String renders v the way JavaScript's toString does for the same value.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	case KindNumber:
		switch {
		case math.IsNaN(v.n):
			return "NaN"
		case math.IsInf(v.n, 1):
			return "Infinity"
		case math.IsInf(v.n, -1):
			return "-Infinity"
		case v.n == 0:
			return "0"
		case math.Abs(v.n) >= 1e21, math.Abs(v.n) < 1e-6:
			return exponential(v.n)
		}
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	default:
		return "undefined"
	}
}

// exponential formats n as JavaScript does outside the fixed-notation
// range: shortest mantissa, explicit exponent sign, no exponent padding.
func exponential(n float64) string {
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(n, 'e', -1, 64), "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

// Any returns the native Go value: bool, string, float64, or nil.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindNumber:
		return v.n
	default:
		return nil
	}
}

// MarshalJSON encodes v as a JSON boolean, string or number.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindNumber && (math.IsNaN(v.n) || math.IsInf(v.n, 0)) {
		return []byte("null"), nil
	}
	return json.Marshal(v.Any())
}

// FromAny converts a decoded scalar into a Value. Every integer and float
// width is accepted as a number.
func FromAny(x any) (Value, bool) {
	switch t := x.(type) {
	case bool:
		return Bool(t), true
	case string:
		return String(t), true
	case float64:
		return Number(t), true
	case float32:
		return Number(float64(t)), true
	case int:
		return Number(float64(t)), true
	case int64:
		return Number(float64(t)), true
	case uint64:
		return Number(float64(t)), true
	case int32:
		return Number(float64(t)), true
	default:
		return Value{}, false
	}
}
