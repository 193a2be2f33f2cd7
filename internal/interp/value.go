package interp

import (
	"fmt"
	"strconv"
)

// Value is anything the evaluator can produce or bind: nil, a bool, a
// float64 number, a string, or a Callable. Go's untyped nil, bool,
// float64, and string stand in directly for the first four; Callable
// covers native and user-defined functions. There is no wrapper type —
// evaluate() works with `any` (aliased here as Value) and type-switches
// where behavior differs per kind.
type Value = any

// IsTruthy applies the language's truthiness rule: nil and false are
// falsey, everything else (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements value equality: nil only equals nil, and values of
// different underlying Go types are never equal (so 1 != "1").
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a Value the way `print` does: numbers drop a trailing ".0" for whole values, nil prints as "nil", and
// callables print their own description.
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case float64:
		return formatNumber(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return ""
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
