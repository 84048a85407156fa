// Package katachi validates untyped runtime values — the kind produced by
// deserializing JSON, YAML or form data — against declarative, composable
// schemas, producing either a typed value or a precise multi-location error
// report.
//
// Design policy:
//   - Keep only the public contract in the root package (Schema, Context,
//     Issues, Result, Path); put constructors under dsl/, messages under
//     i18n/, HTTP integration under middleware/, the descriptor compiler
//     under descriptor/, and the CLI under cmd/katachi.
//   - Validation is two-phase: a fast pass with no diagnostic context stops
//     at the first failure; only failing inputs are re-walked with a Context
//     so every issue is collected with its path.
//   - Schemas are immutable after construction and safe to share across
//     goroutines; all per-call mutable state lives in the Context.
//
// Typical usage:
//
//	user := dsl.Object(
//		dsl.F("name", dsl.String()),
//		dsl.F("age", dsl.Number().Optional()),
//	)
//	v, err := katachi.ParseJSON(user.Schema, data)
//	res := user.SafeParse(map[string]any{"name": "a"})
package katachi
