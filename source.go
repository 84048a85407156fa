package katachi

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseJSON decodes data with goccy/go-json (UseNumber, so numbers keep
// full precision as json.Number) and validates the result against s in one
// call.
func ParseJSON[T any](s Schema[T], data []byte) (T, error) {
	return ParseJSONReader(s, bytes.NewReader(data))
}

// ParseJSONReader streams JSON from r and validates the decoded value.
func ParseJSONReader[T any](s Schema[T], r io.Reader) (T, error) {
	res := SafeParseJSONReader(s, r)
	if !res.Success {
		var zero T
		return zero, res.Issues
	}
	return res.Data, nil
}

// SafeParseJSON is the Result-returning form of ParseJSON.
func SafeParseJSON[T any](s Schema[T], data []byte) Result[T] {
	return SafeParseJSONReader(s, bytes.NewReader(data))
}

// SafeParseJSONReader decodes JSON from r and runs SafeParse. Malformed
// documents fail with a single parse_error issue at the root.
func SafeParseJSONReader[T any](s Schema[T], r io.Reader) Result[T] {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		iss := Issues{{Code: CodeParseError, Message: "malformed JSON: " + err.Error(), Cause: err}}
		return Result[T]{Message: iss.Summary(), Issues: iss}
	}
	return s.SafeParse(v)
}

// ParseYAML decodes data with yaml.v3 and validates against s. YAML
// scalars arrive as Go ints, float64s, bools and strings, all of which the
// corresponding schemas accept.
func ParseYAML[T any](s Schema[T], data []byte) (T, error) {
	res := SafeParseYAML(s, data)
	if !res.Success {
		var zero T
		return zero, res.Issues
	}
	return res.Data, nil
}

// SafeParseYAML is the Result-returning form of ParseYAML.
func SafeParseYAML[T any](s Schema[T], data []byte) Result[T] {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		iss := Issues{{Code: CodeParseError, Message: "malformed YAML: " + err.Error(), Cause: err}}
		return Result[T]{Message: iss.Summary(), Issues: iss}
	}
	return s.SafeParse(v)
}
