// Package merge implements the deep merge and deep copy used to fold
// emitted patches into target documents.
package merge

import "reflect"

// Into merges src into dst in place. Overlapping keys whose values are both
// non-nil objects merge recursively; any other overlap takes src's value. Keys present
// in only one side are kept. Values copied from src are deep copies, so dst
// never aliases src.
func Into(dst, src map[string]any) {
	for k, sv := range src {
		sm, srcIsObj := Normalize(sv).(map[string]any)
		if dm, dstIsObj := dst[k].(map[string]any); dstIsObj && srcIsObj && sm != nil && dm != nil {
			Into(dm, sm)
			continue
		}
		dst[k] = Clone(sv)
	}
}

// Merge returns a new object holding base with overlay merged on top.
// Neither argument is modified.
func Merge(base, overlay map[string]any) map[string]any {
	out := Object(base)
	Into(out, overlay)
	return out
}

// Object deep-copies m into a fresh map[string]any. A nil m gives an empty map.
func Object(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Clone(v)
	}
	return out
}

// Clone deep-copies a JSON-compatible value. Objects become map[string]any
// and sequences become []any regardless of their static Go type; scalars are
// returned as is. Nil maps and slices become nil so they still encode as null.
func Clone(v any) any {
	switch x := v.(type) {
	case nil, string, bool, float64, int:
		return x
	case map[string]any:
		if x == nil {
			return nil
		}
		return Object(x)
	case []any:
		if x == nil {
			return nil
		}
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Clone(e)
		}
		return out
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Clone(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Clone(rv.Index(i).Interface())
		}
		return out
	}
	return v
}

// Normalize returns v with string-keyed maps of any named or element type
// presented as map[string]any, without copying values that already are.
func Normalize(v any) any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return Clone(v)
	}
	return v
}
