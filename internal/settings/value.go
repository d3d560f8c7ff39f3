package settings

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindBool
	kindStrings
)

// Value is a configuration value accepted by [Store.UpdateSearchCriteria].
// The overlay schema is open on keys but closed on shapes: a value is a
// string, an integer, a boolean, or a sequence of strings. Restricting the
// shapes keeps arbitrary caller input from planting structures the
// accessors cannot read back.
type Value struct {
	kind valueKind
	str  string
	num  int64
	b    bool
	list []string
}

// String wraps a string value.
func String(s string) Value {
	return Value{kind: kindString, str: s}
}

// Int wraps an integer value.
func Int(n int) Value {
	return Value{kind: kindInt, num: int64(n)}
}

// Bool wraps a boolean value.
func Bool(b bool) Value {
	return Value{kind: kindBool, b: b}
}

// Strings wraps a sequence of strings.
func Strings(items ...string) Value {
	return Value{kind: kindStrings, list: slices.Clone(items)}
}

// ValueOf converts a decoded JSON value into a Value. It accepts strings,
// booleans, integral numbers (json.Number or float64, depending on how the
// caller decoded), []string, and []any holding only strings. Anything else
// — objects, fractional numbers, mixed arrays — is rejected.
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return Value{}, fmt.Errorf("unsupported numeric value %q: only integers are allowed", t.String())
		}
		return Value{kind: kindInt, num: n}, nil
	case float64:
		if t != math.Trunc(t) {
			return Value{}, fmt.Errorf("unsupported numeric value %v: only integers are allowed", t)
		}
		return Value{kind: kindInt, num: int64(t)}, nil
	case int:
		return Int(t), nil
	case int64:
		return Value{kind: kindInt, num: t}, nil
	case []string:
		return Strings(t...), nil
	case []any:
		list := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("unsupported list element of type %T: only strings are allowed", item)
			}
			list = append(list, s)
		}
		return Value{kind: kindStrings, list: list}, nil
	default:
		return Value{}, fmt.Errorf("unsupported value of type %T", v)
	}
}

// raw returns the plain Go value written into the document.
func (v Value) raw() any {
	switch v.kind {
	case kindInt:
		return v.num
	case kindBool:
		return v.b
	case kindStrings:
		return slices.Clone(v.list)
	default:
		return v.str
	}
}
