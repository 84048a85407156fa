package dsl

import (
	"encoding/json"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	katachi "github.com/katachi-dev/katachi"
	"github.com/katachi-dev/katachi/i18n"
)

// typeIssue records an invalid_type issue naming the expected kind and the
// inspected actual. No-op on the fast pass.
func typeIssue(ctx *katachi.Context, expected string, got any) {
	if ctx == nil {
		return
	}
	ctx.AddIssue(katachi.CodeInvalidType, i18n.T(katachi.CodeInvalidType, map[string]string{
		"expected": expected,
		"got":      katachi.Inspect(got),
	}))
}

// String matches string values and returns them unchanged.
func String() katachi.Schema[string] {
	return katachi.New[string](func(v any, ctx *katachi.Context) (any, bool) {
		if s, ok := v.(string); ok {
			return s, true
		}
		typeIssue(ctx, "string", v)
		return nil, false
	})
}

// Bool matches boolean values.
func Bool() katachi.Schema[bool] {
	return katachi.New[bool](func(v any, ctx *katachi.Context) (any, bool) {
		if b, ok := v.(bool); ok {
			return b, true
		}
		typeIssue(ctx, "boolean", v)
		return nil, false
	})
}

// Number matches runtime numbers and normalizes them to float64. JSON
// decoding feeds json.Number here; hand-built values may use Go ints or
// floats. Strings are never accepted: there is no coercion.
func Number() katachi.Schema[float64] {
	return katachi.New[float64](func(v any, ctx *katachi.Context) (any, bool) {
		if f, ok := numberValue(v); ok {
			return f, true
		}
		typeIssue(ctx, "number", v)
		return nil, false
	})
}

// numberValue widens any Go numeric kind (plus json.Number) to float64.
func numberValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8, int16, int32, int64:
		return float64(reflect.ValueOf(t).Int()), true
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(t).Uint()), true
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		return f, err == nil
	}
	return 0, false
}

// BigInt matches arbitrary-precision integers: *big.Int values, Go integer
// kinds, and integral json.Number values. The result is always a fresh
// *big.Int.
func BigInt() katachi.Schema[*big.Int] {
	return katachi.New[*big.Int](func(v any, ctx *katachi.Context) (any, bool) {
		if b, ok := bigintValue(v); ok {
			return b, true
		}
		typeIssue(ctx, "bigint", v)
		return nil, false
	})
}

func bigintValue(v any) (*big.Int, bool) {
	switch t := v.(type) {
	case *big.Int:
		return new(big.Int).Set(t), true
	case int, int8, int16, int32, int64:
		return big.NewInt(reflect.ValueOf(t).Int()), true
	case uint, uint8, uint16, uint32, uint64:
		return new(big.Int).SetUint64(reflect.ValueOf(t).Uint()), true
	case json.Number:
		if b, ok := new(big.Int).SetString(t.String(), 10); ok {
			return b, true
		}
	}
	return nil, false
}

// Null matches exactly the null value (Go nil).
func Null() katachi.Schema[any] {
	return katachi.New[any](func(v any, ctx *katachi.Context) (any, bool) {
		if v == nil {
			return nil, true
		}
		typeIssue(ctx, "null", v)
		return nil, false
	})
}

// Absent matches only a missing value, the undefined counterpart. Mostly
// useful as a union branch; Optional() is the common way to consume it.
func Absent() katachi.Schema[any] {
	return katachi.New[any](func(v any, ctx *katachi.Context) (any, bool) {
		if katachi.IsAbsent(v) {
			return katachi.Absent, true
		}
		typeIssue(ctx, "undefined", v)
		return nil, false
	})
}

// Unknown accepts any value unchanged.
func Unknown() katachi.Schema[any] {
	return katachi.New[any](func(v any, _ *katachi.Context) (any, bool) {
		return v, true
	})
}

// LiteralSchema retains the scalar set it accepts so discriminated unions
// can introspect branch discriminator values.
type LiteralSchema[T any] struct {
	katachi.Schema[T]
	values []any
}

// Values returns the scalars this schema accepts, in declaration order.
func (l LiteralSchema[T]) Values() []any {
	out := make([]any, len(l.values))
	copy(out, l.values)
	return out
}

// Literal matches exactly the given scalar under strict equality. Numeric
// literals bridge Go's numeric kinds, so a JSON-decoded 5 matches
// Literal(5).
func Literal[T comparable](want T) LiteralSchema[T] {
	return literals[T](katachi.CodeInvalidLiteral, []any{want})
}

// Enum matches any member of the given scalar set, behaving like a union of
// single-value literals.
func Enum[T comparable](want ...T) LiteralSchema[T] {
	vs := make([]any, len(want))
	for i, w := range want {
		vs[i] = w
	}
	return literals[T](katachi.CodeInvalidEnum, vs)
}

// Literals is the untyped form used by the descriptor compiler, where the
// scalar set comes from decoded configuration rather than Go constants.
func Literals(want ...any) LiteralSchema[any] {
	return literals[any](katachi.CodeInvalidEnum, want)
}

func literals[T any](code string, values []any) LiteralSchema[T] {
	check := func(v any, ctx *katachi.Context) (any, bool) {
		for _, w := range values {
			if literalEqual(w, v) {
				return w, true
			}
		}
		if ctx != nil {
			ctx.AddIssue(code, i18n.T(code, map[string]string{
				"expected": renderScalars(values),
				"got":      katachi.Inspect(v),
			}))
		}
		return nil, false
	}
	return LiteralSchema[T]{Schema: katachi.New[T](check), values: values}
}

// literalEqual applies strict scalar equality, bridging numeric kinds so a
// JSON-decoded number matches an int literal. Non-scalar values never
// match.
func literalEqual(want, got any) bool {
	if want == nil || got == nil {
		return want == nil && got == nil
	}
	if katachi.IsAbsent(want) || katachi.IsAbsent(got) {
		return katachi.IsAbsent(want) && katachi.IsAbsent(got)
	}
	if wf, ok := numberValue(want); ok {
		gf, gok := numberValue(got)
		return gok && wf == gf
	}
	switch g := got.(type) {
	case string:
		w, ok := want.(string)
		return ok && w == g
	case bool:
		w, ok := want.(bool)
		return ok && w == g
	}
	return false
}

func renderScalars(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = katachi.Inspect(v)
	}
	return strings.Join(parts, " or ")
}

// InstanceOf matches values whose dynamic type is T (or implements T when T
// is an interface). The failure message names the Go type.
func InstanceOf[T any]() katachi.Schema[T] {
	name := reflect.TypeOf((*T)(nil)).Elem().String()
	return katachi.New[T](func(v any, ctx *katachi.Context) (any, bool) {
		if t, ok := v.(T); ok {
			return t, true
		}
		typeIssue(ctx, name+" instance", v)
		return nil, false
	})
}

// Time matches time.Time values, the date-schema counterpart.
func Time() katachi.Schema[time.Time] { return InstanceOf[time.Time]() }
