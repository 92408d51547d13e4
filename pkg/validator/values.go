package validator

import (
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"
)

// truthy reports whether v counts as filled in. nil, nil pointers, false,
// numeric zero, NaN, empty strings and empty collections are not.
func truthy(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return truthy(rv.Elem().Interface())
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Func:
		return !rv.IsNil()
	default:
		return true
	}
}

// measure returns the length of v: runes for strings, elements for collections.
func measure(v any) (int, bool) {
	switch x := v.(type) {
	case string:
		return utf8.RuneCountInString(x), true
	case []byte:
		return utf8.RuneCount(x), true
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// stringify renders v the way it is matched against patterns.
// A nil value, typed nil pointers included, renders as "".
func stringify(v any) string {
	if v == nil {
		return ""
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}

	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		return stringify(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// looseEqual compares two submitted values. Scalars of different types are
// equal when they render to the same text, so "42" matches 42. Booleans only
// equal booleans.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.DeepEqual(a, b) {
		return true
	}
	if isBool(a) != isBool(b) {
		return false
	}
	if isScalar(a) && isScalar(b) {
		return stringify(a) == stringify(b)
	}
	return false
}

func isBool(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Bool
}

func isScalar(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
