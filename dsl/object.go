package dsl

import (
	"sort"
	"strings"

	katachi "github.com/katachi-dev/katachi"
	"github.com/katachi-dev/katachi/i18n"
)

// Field pairs a property name with its schema. Declaration order drives the
// validation and diagnostic traversal order.
type Field struct {
	Name   string
	Schema katachi.AnySchema

	defaultValue any
	hasDefault   bool
}

// F is shorthand for building a Field.
func F(name string, s katachi.AnySchema) Field { return Field{Name: name, Schema: s} }

// WithDefault supplies a value used when the key is missing from the input.
// The default is parsed through the field schema, so an invalid default
// fails exactly like invalid input.
func (f Field) WithDefault(v any) Field {
	f.defaultValue = v
	f.hasDefault = true
	return f
}

type objRefine struct {
	name string
	fn   func(map[string]any) error
}

// ObjectSchema validates objects against a declared shape. It retains the
// field mapping for introspection (Shape, FieldSchema) and downstream
// derivation (Extend, Partial); this is part of the contract, not an
// implementation detail.
type ObjectSchema struct {
	katachi.Schema[map[string]any]
	fields  []Field
	byName  map[string]katachi.AnySchema
	strict  bool
	refines []objRefine
}

// Object builds a permissive object schema: undeclared input keys are
// ignored and never copied into the result.
func Object(fields ...Field) *ObjectSchema { return newObject(fields, false, nil) }

// StrictObject additionally rejects undeclared input keys, reported as one
// aggregate issue at the object's own path.
func StrictObject(fields ...Field) *ObjectSchema { return newObject(fields, true, nil) }

func newObject(fields []Field, strict bool, refines []objRefine) *ObjectSchema {
	o := &ObjectSchema{
		strict:  strict,
		byName:  make(map[string]katachi.AnySchema, len(fields)),
		refines: refines,
	}
	for _, f := range fields {
		if _, dup := o.byName[f.Name]; dup {
			// Redeclaration replaces the schema but keeps the original position.
			for i := range o.fields {
				if o.fields[i].Name == f.Name {
					o.fields[i] = f
					break
				}
			}
		} else {
			o.fields = append(o.fields, f)
		}
		o.byName[f.Name] = f.Schema
	}
	o.Schema = katachi.New[map[string]any](o.checkObject)
	return o
}

func (o *ObjectSchema) checkObject(v any, ctx *katachi.Context) (any, bool) {
	src, ok := objectValue(v)
	if !ok {
		typeIssue(ctx, "object", v)
		return nil, false
	}
	out := make(map[string]any, len(o.fields))
	valid := true
	for _, f := range o.fields {
		val, present := src[f.Name]
		if !present {
			if f.hasDefault {
				val = f.defaultValue
			} else {
				val = katachi.Absent
			}
		}
		var child *katachi.Context
		if ctx != nil {
			child = ctx.WithField(f.Name)
		}
		pv, ok := f.Schema.Check(val, child)
		if !ok {
			if ctx == nil {
				return nil, false
			}
			valid = false
			continue
		}
		if katachi.IsAbsent(pv) {
			// Optional field omitted from the input stays omitted in the output.
			continue
		}
		out[f.Name] = pv
	}
	if o.strict {
		if unknown := o.unknownKeys(src); len(unknown) > 0 {
			if ctx != nil {
				ctx.AddIssue(katachi.CodeUnrecognizedKeys, i18n.T(katachi.CodeUnrecognizedKeys, map[string]string{
					"keys": strings.Join(unknown, ", "),
				}))
			}
			valid = false
		}
	}
	if !valid {
		return nil, false
	}
	for _, r := range o.refines {
		if err := r.fn(out); err != nil {
			if ctx != nil {
				ctx.Add(katachi.Issue{Code: katachi.CodeCustom, Message: err.Error(), Hint: r.name, Cause: err})
			}
			return nil, false
		}
	}
	return out, true
}

// unknownKeys returns undeclared input keys in sorted order.
func (o *ObjectSchema) unknownKeys(src map[string]any) []string {
	var out []string
	for k := range src {
		if _, known := o.byName[k]; !known {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Shape returns the declared fields in declaration order.
func (o *ObjectSchema) Shape() []Field {
	out := make([]Field, len(o.fields))
	copy(out, o.fields)
	return out
}

// FieldSchema returns the schema declared for name.
func (o *ObjectSchema) FieldSchema(name string) (katachi.AnySchema, bool) {
	s, ok := o.byName[name]
	return s, ok
}

// Strict reports whether undeclared keys are rejected.
func (o *ObjectSchema) Strict() bool { return o.strict }

// Refine derives an object schema with an added named cross-field rule,
// evaluated after the shape validates; a returned error surfaces at the
// object's own path.
func (o *ObjectSchema) Refine(name string, fn func(map[string]any) error) *ObjectSchema {
	if fn == nil {
		return o
	}
	refines := make([]objRefine, len(o.refines), len(o.refines)+1)
	copy(refines, o.refines)
	refines = append(refines, objRefine{name: name, fn: fn})
	return newObject(o.fields, o.strict, refines)
}

// Extend derives a new object schema with base's fields plus the given
// ones; a field redeclaring an existing name replaces its schema in place.
// Cross-field rules are not carried over, since they may reference fields
// the extension replaced.
func Extend(base *ObjectSchema, fields ...Field) *ObjectSchema {
	merged := append(base.Shape(), fields...)
	return newObject(merged, base.strict, nil)
}

// Partial derives an object schema whose every field additionally accepts
// a missing value.
func Partial(base *ObjectSchema) *ObjectSchema {
	fields := base.Shape()
	for i := range fields {
		fields[i].Schema = optionalAny(fields[i].Schema)
	}
	return newObject(fields, base.strict, nil)
}

// optionalAny wraps an erased schema to also accept a missing value.
func optionalAny(s katachi.AnySchema) katachi.AnySchema {
	return katachi.New[any](s.Check).Optional()
}
