package treedec

// Package treedec provides:
//
// - Typed decoding of untyped JSON-like trees (tree.Value) via Decoder[A]
// - A stable error model: Outcome[A] with path-qualified ValidationError
//   entries (ErrorList) that accumulate instead of short-circuiting
// - Combinators (Map, FlatMap, Filter, Collect, OrElse) and applicative
//   composition (Map2..Map6, Seq) that report every defect at once
// - An explicit decoder Registry replacing implicit per-type resolution
//
// Design policy:
// - Keep only public APIs in the root package; decoder constructors live in
//   dsl/, date codecs in codec/, input adapters under source/.
// - Message keys are identifiers rendered by i18n/ or an external
//   translator; the core never produces user-facing text.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	type User struct{ Name string; Age int64 }
//	d := treedec.Map2(func(n string, a int64) User { return User{n, a} },
//	    treedec.At(treedec.AtField("name"), dsl.String()),
//	    treedec.At(treedec.AtField("age"), dsl.Int64()))
//	u, err := treedec.Decode(d, doc)
