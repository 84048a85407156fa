package katachi

import "fmt"

// Transform derives a schema that validates with s and then maps the value
// through fn. A returned error or a panic inside fn is reported as a
// transform_failed issue at the current path, exactly like a structural
// failure. Free function because Go methods cannot introduce the extra type
// parameter.
func Transform[T, U any](s Schema[T], fn func(T) (U, error)) Schema[U] {
	inner := s.check
	return New[U](func(v any, ctx *Context) (any, bool) {
		out, ok := inner(v, ctx)
		if !ok {
			return nil, false
		}
		u, err := applyTransform(fn, as[T](out))
		if err != nil {
			if ctx != nil {
				ctx.Add(Issue{Code: CodeTransformFailed, Message: err.Error(), Cause: err})
			}
			return nil, false
		}
		return u, true
	})
}

// applyTransform runs fn, converting panics into errors so non-error
// panic values are stringified instead of unwinding the pass.
func applyTransform[T, U any](fn func(T) (U, error), v T) (out U, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, isErr := r.(error); isErr {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return fn(v)
}
