package katachi_test

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	katachi "github.com/katachi-dev/katachi"
)

func TestInspect(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"null", nil, "null"},
		{"undefined", katachi.Absent, "undefined"},
		{"string", "hello", `string "hello"`},
		{"bool", true, "boolean true"},
		{"int", 123, "number 123"},
		{"float", 1.5, "number 1.5"},
		{"json number", json.Number("123"), "number 123"},
		{"big number", json.Number("123456789012345678901234567890"), "number 123456789012345678901234567890"},
		{"bigint", big.NewInt(123), "bigint 123"},
		{"slice", []any{1, 2}, "array"},
		{"typed slice", []string{"a"}, "array"},
		{"map", map[string]any{}, "object"},
		{"struct", time.Time{}, "object"},
		{"pointer", &struct{}{}, "object"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := katachi.Inspect(tc.in); got != tc.want {
				t.Fatalf("Inspect(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
