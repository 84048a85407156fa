package katachi

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"

	gojson "github.com/goccy/go-json"
)

// Inspect renders a runtime value for error messages: "null", "undefined",
// "array" and "object" for non-scalars, otherwise "<kind> <literal>", for
// example `string "hello"`, `number 123`, `bigint 123`, `boolean true`.
func Inspect(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case absent:
		return "undefined"
	case string:
		return "string " + renderLiteral(t)
	case bool:
		return "boolean " + renderLiteral(t)
	case json.Number:
		return "number " + t.String()
	case float32, float64, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number " + renderLiteral(t)
	case *big.Int:
		return "bigint " + t.String()
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct, reflect.Pointer:
		return "object"
	}
	return fmt.Sprintf("%T %v", v, v)
}

// renderLiteral marshals a scalar the way it would appear in a JSON
// document.
func renderLiteral(v any) string {
	b, err := gojson.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
