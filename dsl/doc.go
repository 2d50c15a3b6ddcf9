// Package dsl provides the decoder constructors: primitives (Bool, String,
// Number, Int64, Float64...), collections (Slice, StringMap), optionality
// (Optional, OptionalStrict) and the object builder with struct binding.
//
// All constructors return shareable, state-free decoders; see the root
// package for the composition algebra.
package dsl
