package dsl

import (
	katachi "github.com/katachi-dev/katachi"
)

// Record matches non-null, non-array objects, validating every property
// value against value. Keys pass through unchanged and are not validated.
// Non-object inputs report through the same diagnostic convention as
// Object: a collected invalid_type issue, never a raised error. The
// diagnostic pass walks keys in sorted order so issue order is
// deterministic.
func Record[V any](value katachi.Schema[V]) katachi.Schema[map[string]V] {
	return katachi.New[map[string]V](func(v any, ctx *katachi.Context) (any, bool) {
		src, ok := objectValue(v)
		if !ok {
			typeIssue(ctx, "object", v)
			return nil, false
		}
		out := make(map[string]V, len(src))
		valid := true
		for _, k := range sortedKeys(src) {
			var child *katachi.Context
			if ctx != nil {
				child = ctx.WithField(k)
			}
			ev, ok := value.Check(src[k], child)
			if !ok {
				if ctx == nil {
					return nil, false
				}
				valid = false
				continue
			}
			out[k] = asT[V](ev)
		}
		if !valid {
			return nil, false
		}
		return out, true
	})
}
