package dsl

import (
	katachi "github.com/katachi-dev/katachi"
	"github.com/katachi-dev/katachi/i18n"
)

// Union tries each branch in declaration order and yields the first
// success. When every branch fails, the diagnostic pass re-runs all of them
// at the same path, so the failures of every branch are reported together.
func Union(branches ...katachi.AnySchema) katachi.Schema[any] {
	return katachi.New[any](func(v any, ctx *katachi.Context) (any, bool) {
		for _, b := range branches {
			if out, ok := b.Check(v, nil); ok {
				return out, true
			}
		}
		if ctx != nil {
			for _, b := range branches {
				b.Check(v, ctx)
			}
			if len(branches) == 0 {
				ctx.AddIssue(katachi.CodeInvalidUnion, i18n.T(katachi.CodeInvalidUnion, nil))
			}
		}
		return nil, false
	})
}

// literalValues is implemented by LiteralSchema; discriminated unions use
// it to read the scalar values a branch declares for its discriminator
// field.
type literalValues interface {
	Values() []any
}

// DiscriminatedUnion dispatches on the literal value of key. The input must
// be a non-null, non-array object; the branch whose key field declares the
// input's discriminator value then validates the whole object,
// discriminator included, so inner failures surface at their natural
// sub-paths. Zero matching branches reject the discriminator value; more
// than one is reported as ambiguous. Both are per-input-value runtime
// checks, not construction-time guarantees.
func DiscriminatedUnion(key string, branches ...*ObjectSchema) katachi.Schema[map[string]any] {
	return katachi.New[map[string]any](func(v any, ctx *katachi.Context) (any, bool) {
		src, ok := objectValue(v)
		if !ok {
			typeIssue(ctx, "object", v)
			return nil, false
		}
		dv, present := src[key]
		if !present {
			dv = katachi.Absent
		}
		var matched []*ObjectSchema
		for _, b := range branches {
			if branchMatches(b, key, dv) {
				matched = append(matched, b)
			}
		}
		switch len(matched) {
		case 1:
			return matched[0].Check(v, ctx)
		case 0:
			if ctx != nil {
				ctx.WithField(key).AddIssue(katachi.CodeDiscriminatorUnknown,
					i18n.T(katachi.CodeDiscriminatorUnknown, map[string]string{"value": katachi.Inspect(dv)}))
			}
			return nil, false
		default:
			if ctx != nil {
				ctx.WithField(key).AddIssue(katachi.CodeDiscriminatorAmbiguous,
					i18n.T(katachi.CodeDiscriminatorAmbiguous, map[string]string{"value": katachi.Inspect(dv)}))
			}
			return nil, false
		}
	})
}

// branchMatches reports whether the branch declares dv as a literal value
// of its key field. Branches without a literal key field never match.
func branchMatches(b *ObjectSchema, key string, dv any) bool {
	fs, ok := b.FieldSchema(key)
	if !ok {
		return false
	}
	lv, ok := fs.(literalValues)
	if !ok {
		return false
	}
	for _, w := range lv.Values() {
		if literalEqual(w, dv) {
			return true
		}
	}
	return false
}
