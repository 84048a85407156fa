package dsl

import (
	"strconv"

	katachi "github.com/katachi-dev/katachi"
	"github.com/katachi-dev/katachi/i18n"
)

// Array matches arrays whose every element matches elem. The fast pass
// stops at the first failing element; the diagnostic pass walks all of
// them, recording issues at their indices. The result is a fresh slice in
// input order.
func Array[E any](elem katachi.Schema[E]) katachi.Schema[[]E] {
	return katachi.New[[]E](func(v any, ctx *katachi.Context) (any, bool) {
		items, ok := arrayItems(v)
		if !ok {
			typeIssue(ctx, "array", v)
			return nil, false
		}
		out := make([]E, 0, len(items))
		valid := true
		for i, item := range items {
			var child *katachi.Context
			if ctx != nil {
				child = ctx.WithIndex(i)
			}
			ev, ok := elem.Check(item, child)
			if !ok {
				if ctx == nil {
					return nil, false
				}
				valid = false
				continue
			}
			out = append(out, asT[E](ev))
		}
		if !valid {
			return nil, false
		}
		return out, true
	})
}

// Tuple matches arrays of exactly len(items) elements, validating each
// position against its own schema. A length mismatch is a single issue at
// the tuple's own path, with no per-index diagnostics.
func Tuple(items ...katachi.AnySchema) katachi.Schema[[]any] {
	return katachi.New[[]any](func(v any, ctx *katachi.Context) (any, bool) {
		vals, ok := arrayItems(v)
		if !ok {
			typeIssue(ctx, "array", v)
			return nil, false
		}
		if len(vals) != len(items) {
			if ctx != nil {
				ctx.AddIssue(katachi.CodeInvalidLength, i18n.T(katachi.CodeInvalidLength, map[string]string{
					"expected": strconv.Itoa(len(items)),
					"got":      strconv.Itoa(len(vals)),
				}))
			}
			return nil, false
		}
		out := make([]any, 0, len(items))
		valid := true
		for i, s := range items {
			var child *katachi.Context
			if ctx != nil {
				child = ctx.WithIndex(i)
			}
			ev, ok := s.Check(vals[i], child)
			if !ok {
				if ctx == nil {
					return nil, false
				}
				valid = false
				continue
			}
			out = append(out, ev)
		}
		if !valid {
			return nil, false
		}
		return out, true
	})
}
