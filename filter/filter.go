package filter

import (
	"encoding/json"
	"fmt"
)

// Filter is a pure predicate over a JSON value tree. Check reports whether
// the value is accepted; the reason is empty exactly when it is, and names
// the offending location for nested failures ("key: reason", "index: reason").
//
// Filters are immutable once built. The same instance may be shared by any
// number of concurrent validations and always returns the same result for the
// same value.
type Filter interface {
	Check(value any) (ok bool, reason string)
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(value any) (bool, string)

// Check implements Filter.
func (f FilterFunc) Check(value any) (bool, string) {
	return f(value)
}

// kindName classifies a JSON value for failure reasons.
func kindName(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		if isInt, isNumber := numberKind(v); isNumber {
			if isInt {
				return "int"
			}
			return "float"
		}
		return fmt.Sprintf("%T", value)
	}
}

// numberKind classifies a numeric value. JSON decoded with UseNumber yields
// json.Number, whose literal text decides between int and float; native Go
// ints and floats are accepted so value trees can be built by hand.
func numberKind(value any) (isInt, isNumber bool) {
	switch v := value.(type) {
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return true, true
		}
		if _, err := v.Float64(); err == nil {
			return false, true
		}
		return false, false
	case int, int64:
		return true, true
	case float64:
		return false, true
	default:
		return false, false
	}
}

// numberValue returns the value as a float64 for range checks. Only call
// after numberKind reported a number.
func numberValue(value any) float64 {
	switch v := value.(type) {
	case json.Number:
		f, _ := v.Float64()
		return f
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

func typeReason(expected string, value any) string {
	return fmt.Sprintf("expected %s, found '%v' of type %s", expected, value, kindName(value))
}

// Predeclared leaf filters with an exact-kind check only.
var (
	// String accepts JSON strings.
	String Filter = FilterFunc(func(value any) (bool, string) {
		if _, ok := value.(string); ok {
			return true, ""
		}
		return false, typeReason("string", value)
	})

	// Boolean accepts JSON booleans.
	Boolean Filter = FilterFunc(func(value any) (bool, string) {
		if _, ok := value.(bool); ok {
			return true, ""
		}
		return false, typeReason("boolean", value)
	})

	// Null accepts only JSON null.
	Null Filter = FilterFunc(func(value any) (bool, string) {
		if value == nil {
			return true, ""
		}
		return false, typeReason("null", value)
	})
)

type numericKind int

const (
	anyNumber numericKind = iota
	intOnly
	floatOnly
)

func (k numericKind) name() string {
	switch k {
	case intOnly:
		return "int"
	case floatOnly:
		return "float"
	default:
		return "number"
	}
}

// NumberOption bounds a numeric filter.
type NumberOption func(*numberFilter)

// Min sets the inclusive lower bound.
func Min(min float64) NumberOption {
	return func(f *numberFilter) {
		f.min = &min
	}
}

// Max sets the inclusive upper bound.
func Max(max float64) NumberOption {
	return func(f *numberFilter) {
		f.max = &max
	}
}

type numberFilter struct {
	kind numericKind
	min  *float64
	max  *float64
}

// Number accepts ints and floats, optionally within inclusive bounds.
func Number(opts ...NumberOption) Filter {
	return newNumberFilter(anyNumber, opts)
}

// Int accepts only integral numbers: 5 passes, 5.0 does not. There is no
// coercion between the numeric kinds.
func Int(opts ...NumberOption) Filter {
	return newNumberFilter(intOnly, opts)
}

// Float accepts only non-integral numeric literals: 5.0 passes, 5 does not.
func Float(opts ...NumberOption) Filter {
	return newNumberFilter(floatOnly, opts)
}

func newNumberFilter(kind numericKind, opts []NumberOption) Filter {
	f := &numberFilter{kind: kind}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Check implements Filter.
func (f *numberFilter) Check(value any) (bool, string) {
	isInt, isNumber := numberKind(value)
	switch {
	case !isNumber,
		f.kind == intOnly && !isInt,
		f.kind == floatOnly && isInt:
		return false, typeReason(f.kind.name(), value)
	}

	n := numberValue(value)
	if f.min != nil && n < *f.min {
		return false, fmt.Sprintf("expected %s bigger than %v, found %v", f.kind.name(), *f.min, value)
	}
	if f.max != nil && n > *f.max {
		return false, fmt.Sprintf("expected %s smaller than %v, found %v", f.kind.name(), *f.max, value)
	}
	return true, ""
}
