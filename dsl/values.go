package dsl

import (
	"reflect"
	"sort"
)

// arrayItems views v as a generic item slice. Typed slices (the output of a
// previous parse) are widened through reflection so re-parsing parsed
// values works.
func arrayItems(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// objectValue views v as a string-keyed map. Typed maps are widened through
// reflection for the same re-parse reason as arrayItems.
func objectValue(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// sortedKeys returns m's keys in ascending order for deterministic
// diagnostics.
func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// asT narrows an erased check result to T; nil lands on the zero value.
func asT[T any](v any) T {
	t, _ := v.(T)
	return t
}
