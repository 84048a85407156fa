// Package dsl provides the schema constructors: primitives (String, Number,
// Bool, BigInt, Null, Absent, Literal, Enum, Unknown, InstanceOf, Time) and
// composites (Array, Tuple, Object, StrictObject, Record, Union,
// DiscriminatedUnion, Lazy), plus the object derivation helpers Extend and
// Partial.
//
// Every constructor returns an immutable katachi.Schema; heterogeneous
// composites accept the type-erased katachi.AnySchema, which every schema
// satisfies, so constructors compose directly:
//
//	shape := dsl.StrictObject(
//		dsl.F("kind", dsl.Literal("circle")),
//		dsl.F("radius", dsl.Number()),
//	)
package dsl
