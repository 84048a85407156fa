package katachi

// absent is the unexported type behind Absent.
type absent struct{}

// Absent marks a value missing from the input, the counterpart of an
// omitted object key. Object schemas feed it to field schemas for omitted
// fields; Optional/Nullish-derived schemas accept it and yield it back, at
// which point object schemas leave the key out of their output.
var Absent any = absent{}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absent)
	return ok
}

// CheckFunc is the universal validation contract shared by every schema
// kind. A nil ctx requests the fast pass: implementations stop at the first
// failure and record nothing. A non-nil ctx requests the diagnostic pass:
// implementations walk every child and record each failure with its path
// before reporting the overall outcome.
type CheckFunc func(v any, ctx *Context) (any, bool)

// AnySchema is the type-erased view of a Schema, the currency of
// heterogeneous composites (tuples, object fields, union branches). Every
// Schema[T] satisfies it.
type AnySchema interface {
	Check(v any, ctx *Context) (any, bool)
}

// Schema is an immutable validation rule over a target type T. A Schema
// holds no per-call state, so one instance is safely shared and reused by
// concurrent validation calls. Input values are never mutated; composite
// results are newly allocated.
type Schema[T any] struct {
	check CheckFunc
}

// New wraps a CheckFunc as a Schema[T].
func New[T any](check CheckFunc) Schema[T] { return Schema[T]{check: check} }

// Check runs the underlying validation function. It implements AnySchema.
func (s Schema[T]) Check(v any, ctx *Context) (any, bool) { return s.check(v, ctx) }

// Result is the outcome of SafeParse: either Success with Data, or a failed
// result carrying the aggregate Message and the structured issue list.
type Result[T any] struct {
	Success bool
	Data    T
	Message string
	Issues  Issues
}

// SafeParse validates v without ever raising. The fast pass runs first with
// no diagnostic context; only when it fails is the value re-walked with a
// fresh Context so every issue is collected, not just the first.
func (s Schema[T]) SafeParse(v any) Result[T] {
	if out, ok := s.check(v, nil); ok {
		return Result[T]{Success: true, Data: as[T](out)}
	}
	ctx := NewContext()
	s.check(v, ctx)
	iss := ctx.Issues()
	if len(iss) == 0 {
		// A diagnostic pass over a failing value must surface something.
		iss = Issues{{Code: CodeParseError, Message: "invalid input"}}
	}
	return Result[T]{Message: iss.Summary(), Issues: iss}
}

// Parse validates v, returning the typed value or an Issues error whose
// message is the aggregate summary.
func (s Schema[T]) Parse(v any) (T, error) {
	res := s.SafeParse(v)
	if !res.Success {
		var zero T
		return zero, res.Issues
	}
	return res.Data, nil
}

// MustParse is Parse that panics on failure. Intended for fixtures and
// tests.
func (s Schema[T]) MustParse(v any) T {
	out, err := s.Parse(v)
	if err != nil {
		panic(err)
	}
	return out
}

// Optional derives a schema that additionally accepts a missing value (the
// Absent sentinel), equivalent to prepending an absent-only branch to a
// union over s.
func (s Schema[T]) Optional() Schema[T] {
	inner := s.check
	return New[T](func(v any, ctx *Context) (any, bool) {
		if IsAbsent(v) {
			return Absent, true
		}
		return inner(v, ctx)
	})
}

// Nullable derives a schema that additionally accepts null (Go nil).
func (s Schema[T]) Nullable() Schema[T] {
	inner := s.check
	return New[T](func(v any, ctx *Context) (any, bool) {
		if v == nil {
			return nil, true
		}
		return inner(v, ctx)
	})
}

// Nullish derives a schema accepting both missing values and null.
func (s Schema[T]) Nullish() Schema[T] {
	inner := s.check
	return New[T](func(v any, ctx *Context) (any, bool) {
		if IsAbsent(v) {
			return Absent, true
		}
		if v == nil {
			return nil, true
		}
		return inner(v, ctx)
	})
}

// as narrows an erased check result to T. Nil and Absent results (null and
// optional schemas) land on the zero value.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}
