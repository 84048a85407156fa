// Package descriptor compiles a declarative schema description, written in
// JSON or YAML, into a runtime schema. A descriptor is a mapping with a
// "type" discriminator:
//
//	type: object            # string number boolean bigint null unknown date
//	strict: true            #   literal enum array tuple record union discriminated
//	fields:
//	  name: {type: string}
//	  age:  {type: number, optional: true}
//
// Composites nest: arrays and records take "of", tuples take "items",
// unions and discriminated unions take "variants" (the latter plus
// "discriminator"), literals take "value", enums take "values". Any
// descriptor may set "optional" and/or "nullable".
package descriptor

import (
	"fmt"
	"sort"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	katachi "github.com/katachi-dev/katachi"
	"github.com/katachi-dev/katachi/dsl"
)

// CompileJSON decodes a JSON descriptor and compiles it.
func CompileJSON(data []byte) (katachi.AnySchema, error) {
	var doc any
	if err := gojson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("descriptor: malformed JSON: %w", err)
	}
	return Compile(doc)
}

// CompileYAML decodes a YAML descriptor and compiles it.
func CompileYAML(data []byte) (katachi.AnySchema, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("descriptor: malformed YAML: %w", err)
	}
	return Compile(doc)
}

// Compile turns an already-decoded descriptor document into a schema.
func Compile(doc any) (katachi.AnySchema, error) {
	return compile(doc, "$")
}

func compile(doc any, at string) (katachi.AnySchema, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("descriptor: %s: expected mapping, got %s", at, katachi.Inspect(doc))
	}
	typ, _ := m["type"].(string)
	s, err := compileKind(m, typ, at)
	if err != nil {
		return nil, err
	}
	if b, _ := m["nullable"].(bool); b {
		s = katachi.New[any](s.Check).Nullable()
	}
	if b, _ := m["optional"].(bool); b {
		s = katachi.New[any](s.Check).Optional()
	}
	return s, nil
}

func compileKind(m map[string]any, typ, at string) (katachi.AnySchema, error) {
	switch typ {
	case "string":
		return dsl.String(), nil
	case "number":
		return dsl.Number(), nil
	case "boolean":
		return dsl.Bool(), nil
	case "bigint":
		return dsl.BigInt(), nil
	case "null":
		return dsl.Null(), nil
	case "unknown":
		return dsl.Unknown(), nil
	case "date":
		return dsl.Time(), nil
	case "literal":
		v, ok := m["value"]
		if !ok {
			return nil, fmt.Errorf("descriptor: %s: literal requires value", at)
		}
		return dsl.Literals(v), nil
	case "enum":
		vs, ok := m["values"].([]any)
		if !ok || len(vs) == 0 {
			return nil, fmt.Errorf("descriptor: %s: enum requires non-empty values", at)
		}
		return dsl.Literals(vs...), nil
	case "array":
		elem, err := compile(m["of"], at+".of")
		if err != nil {
			return nil, err
		}
		return dsl.Array(katachi.New[any](elem.Check)), nil
	case "record":
		value, err := compile(m["of"], at+".of")
		if err != nil {
			return nil, err
		}
		return dsl.Record(katachi.New[any](value.Check)), nil
	case "tuple":
		docs, ok := m["items"].([]any)
		if !ok {
			return nil, fmt.Errorf("descriptor: %s: tuple requires items", at)
		}
		items := make([]katachi.AnySchema, len(docs))
		for i, d := range docs {
			s, err := compile(d, fmt.Sprintf("%s.items[%d]", at, i))
			if err != nil {
				return nil, err
			}
			items[i] = s
		}
		return dsl.Tuple(items...), nil
	case "object":
		return compileObject(m, at)
	case "union":
		docs, ok := m["variants"].([]any)
		if !ok || len(docs) == 0 {
			return nil, fmt.Errorf("descriptor: %s: union requires variants", at)
		}
		branches := make([]katachi.AnySchema, len(docs))
		for i, d := range docs {
			s, err := compile(d, fmt.Sprintf("%s.variants[%d]", at, i))
			if err != nil {
				return nil, err
			}
			branches[i] = s
		}
		return dsl.Union(branches...), nil
	case "discriminated":
		key, _ := m["discriminator"].(string)
		if key == "" {
			return nil, fmt.Errorf("descriptor: %s: discriminated requires discriminator", at)
		}
		docs, ok := m["variants"].([]any)
		if !ok || len(docs) == 0 {
			return nil, fmt.Errorf("descriptor: %s: discriminated requires variants", at)
		}
		branches := make([]*dsl.ObjectSchema, len(docs))
		for i, d := range docs {
			vat := fmt.Sprintf("%s.variants[%d]", at, i)
			dm, ok := d.(map[string]any)
			if !ok || dm["type"] != "object" {
				return nil, fmt.Errorf("descriptor: %s: discriminated variants must be objects", vat)
			}
			obj, err := compileObject(dm, vat)
			if err != nil {
				return nil, err
			}
			branches[i] = obj
		}
		return dsl.DiscriminatedUnion(key, branches...), nil
	case "":
		return nil, fmt.Errorf("descriptor: %s: missing type", at)
	default:
		return nil, fmt.Errorf("descriptor: %s: unknown type %q", at, typ)
	}
}

// compileObject builds an ObjectSchema. Field order inside a descriptor
// mapping is not preserved by decoding, so fields sort by name for
// deterministic diagnostics.
func compileObject(m map[string]any, at string) (*dsl.ObjectSchema, error) {
	var fields []dsl.Field
	if fm, ok := m["fields"].(map[string]any); ok {
		names := make([]string, 0, len(fm))
		for name := range fm {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fs, err := compile(fm[name], at+".fields."+name)
			if err != nil {
				return nil, err
			}
			f := dsl.F(name, fs)
			if fd, ok := fm[name].(map[string]any); ok {
				if dv, has := fd["default"]; has {
					f = f.WithDefault(dv)
				}
			}
			fields = append(fields, f)
		}
	}
	if strict, _ := m["strict"].(bool); strict {
		return dsl.StrictObject(fields...), nil
	}
	return dsl.Object(fields...), nil
}
