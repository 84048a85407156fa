package dsl

import (
	katachi "github.com/katachi-dev/katachi"
)

// Lazy defers schema construction until validation, breaking the
// circular-definition problem for self- or mutually-referential schemas:
// the referenced variable only has to be initialized by the time validation
// runs. The thunk executes on every validation call, so it must be cheap
// and idempotent; the definition graph must be finite even though input
// values may nest arbitrarily deep.
func Lazy[T any](thunk func() katachi.Schema[T]) katachi.Schema[T] {
	return katachi.New[T](func(v any, ctx *katachi.Context) (any, bool) {
		return thunk().Check(v, ctx)
	})
}
