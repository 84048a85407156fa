package dsl_test

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"
	"time"

	katachi "github.com/katachi-dev/katachi"
	"github.com/katachi-dev/katachi/dsl"
)

func TestString(t *testing.T) {
	v, err := dsl.String().Parse("hello")
	if err != nil || v != "hello" {
		t.Fatalf("got %q err=%v", v, err)
	}
	res := dsl.String().SafeParse(1)
	if res.Success {
		t.Fatalf("expected failure")
	}
	if got := res.Issues[0].Message; got != "Expected string, got number 1" {
		t.Fatalf("message %q", got)
	}
}

func TestBool(t *testing.T) {
	v, err := dsl.Bool().Parse(true)
	if err != nil || v != true {
		t.Fatalf("got %v err=%v", v, err)
	}
	res := dsl.Bool().SafeParse("true")
	if res.Success || res.Issues[0].Message != `Expected boolean, got string "true"` {
		t.Fatalf("got %+v", res)
	}
}

func TestNumber(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"float64", 1.5, 1.5},
		{"int", 5, 5},
		{"json number", json.Number("2.5"), 2.5},
		{"uint8", uint8(7), 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := dsl.Number().Parse(tc.in)
			if err != nil || v != tc.want {
				t.Fatalf("got %v err=%v", v, err)
			}
		})
	}

	// no string coercion
	res := dsl.Number().SafeParse("5")
	if res.Success || res.Issues[0].Message != `Expected number, got string "5"` {
		t.Fatalf("got %+v", res)
	}
}

func TestBigInt(t *testing.T) {
	big30 := "123456789012345678901234567890"
	v, err := dsl.BigInt().Parse(json.Number(big30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := new(big.Int).SetString(big30, 10)
	if v.Cmp(want) != 0 {
		t.Fatalf("got %s want %s", v, want)
	}

	// result is a fresh value, never an alias of the input
	in := big.NewInt(7)
	out, err := dsl.BigInt().Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out.Add(out, big.NewInt(1))
	if in.Int64() != 7 {
		t.Fatalf("input mutated to %s", in)
	}

	res := dsl.BigInt().SafeParse(1.5)
	if res.Success || res.Issues[0].Message != "Expected bigint, got number 1.5" {
		t.Fatalf("got %+v", res)
	}
}

func TestNullAndAbsent(t *testing.T) {
	if _, err := dsl.Null().Parse(nil); err != nil {
		t.Fatalf("null must accept nil: %v", err)
	}
	res := dsl.Null().SafeParse(false)
	if res.Success || res.Issues[0].Message != "Expected null, got boolean false" {
		t.Fatalf("got %+v", res)
	}

	if _, err := dsl.Absent().Parse(katachi.Absent); err != nil {
		t.Fatalf("absent must accept the sentinel: %v", err)
	}
	res = dsl.Absent().SafeParse(nil)
	if res.Success || res.Issues[0].Message != "Expected undefined, got null" {
		t.Fatalf("got %+v", res)
	}
}

func TestUnknown(t *testing.T) {
	for _, in := range []any{nil, katachi.Absent, "x", 1, []any{1}, map[string]any{}} {
		v, err := dsl.Unknown().Parse(in)
		if err != nil {
			t.Fatalf("unknown rejected %v: %v", in, err)
		}
		if !katachi.IsAbsent(in) && !katachi.IsAbsent(v) && katachi.Inspect(v) != katachi.Inspect(in) {
			t.Fatalf("unknown changed %v to %v", in, v)
		}
	}
}

func TestLiteral(t *testing.T) {
	if _, err := dsl.Literal("hello").Parse("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := dsl.Literal("hello").SafeParse("world")
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Issues[0].Code != katachi.CodeInvalidLiteral {
		t.Fatalf("code %q", res.Issues[0].Code)
	}
	if got := res.Issues[0].Message; got != `Expected literal string "hello", got string "world"` {
		t.Fatalf("message %q", got)
	}
}

// Numeric literals bridge numeric kinds: a JSON-decoded 5 matches the Go
// literal 5, and the canonical literal comes back typed.
func TestLiteral_NumericBridging(t *testing.T) {
	v, err := dsl.Literal(5).Parse(json.Number("5"))
	if err != nil || v != 5 {
		t.Fatalf("got %v err=%v", v, err)
	}
	if res := dsl.Literal(5).SafeParse("5"); res.Success {
		t.Fatalf("strings must never match numeric literals")
	}
}

func TestEnum(t *testing.T) {
	s := dsl.Enum("a", "b")
	if v, err := s.Parse("b"); err != nil || v != "b" {
		t.Fatalf("got %v err=%v", v, err)
	}
	res := s.SafeParse("c")
	if res.Success || res.Issues[0].Code != katachi.CodeInvalidEnum {
		t.Fatalf("got %+v", res)
	}
	want := `Expected one of string "a" or string "b", got string "c"`
	if res.Issues[0].Message != want {
		t.Fatalf("message %q", res.Issues[0].Message)
	}
}

func TestLiteralValuesIntrospection(t *testing.T) {
	s := dsl.Enum("a", "b")
	vs := s.Values()
	if len(vs) != 2 || vs[0] != "a" || vs[1] != "b" {
		t.Fatalf("got %v", vs)
	}
	vs[0] = "mutated"
	if s.Values()[0] != "a" {
		t.Fatalf("Values must return a copy")
	}
}

func TestInstanceOf(t *testing.T) {
	now := time.Now()
	v, err := dsl.Time().Parse(now)
	if err != nil || !v.Equal(now) {
		t.Fatalf("got %v err=%v", v, err)
	}
	res := dsl.Time().SafeParse("2020-01-01")
	if res.Success {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(res.Issues[0].Message, "time.Time instance") {
		t.Fatalf("message %q", res.Issues[0].Message)
	}
}
