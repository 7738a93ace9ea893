package gocomp

import (
	"encoding/json"
	"reflect"
	"strconv"
)

// plain reduces a bag value to string, bool or float64. Named types with a
// string, boolean or numeric kind are accepted, so a typed constant such as
// a WeaponType can be placed in a bag directly. ok is false for anything
// else (nil, slices, maps, structs, ...).
func plain(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case string, bool, float64:
		return x, true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return rv.Bool(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return nil, false
}

// typeOf classifies a bag value. ok is false for values outside the three
// supported kinds.
func typeOf(v any) (t PropertyType, ok bool) {
	p, ok := plain(v)
	if !ok {
		return "", false
	}
	switch p.(type) {
	case string:
		return TypeString, true
	case bool:
		return TypeBoolean, true
	}
	return TypeNumber, true
}

// typeName renders the runtime kind of v for issue params.
func typeName(v any) string {
	if t, ok := typeOf(v); ok {
		return string(t)
	}
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return "unsupported"
}

func toFloat(v any) (float64, bool) {
	p, _ := plain(v)
	f, ok := p.(float64)
	return f, ok
}

// sameLiteral compares two literals of the same declared type. Numbers are
// compared by value so that 3, 3.0 and json.Number("3") are equal.
func sameLiteral(a, b any) bool {
	pa, okA := plain(a)
	pb, okB := plain(b)
	return okA && okB && pa == pb
}

// formatNumber renders a number the way a JSON encoder would (5, 0.1, 2.5).
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// LiteralEqual reports whether two property literals are equal under the
// validator's rules: numbers by value across Go kinds and json.Number,
// strings and booleans by value, named types by their underlying kind.
func LiteralEqual(a, b any) bool { return sameLiteral(a, b) }
