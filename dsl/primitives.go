package dsl

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"

	treedec "github.com/reoring/treedec"
	"github.com/reoring/treedec/tree"
)

// Value returns the raw passthrough decoder: it succeeds with the input
// tree unchanged. Useful for deferring interpretation of a fragment.
func Value() treedec.Decoder[tree.Value] {
	return treedec.DecoderFunc[tree.Value](func(v tree.Value) treedec.Outcome[tree.Value] {
		return treedec.Success(v)
	})
}

// Bool decodes a boolean node.
func Bool() treedec.Decoder[bool] {
	return treedec.DecoderFunc[bool](func(v tree.Value) treedec.Outcome[bool] {
		if b, ok := v.BoolVal(); ok {
			return treedec.Success(b)
		}
		return treedec.FailureAt[bool](treedec.Root, treedec.NewError(treedec.KeyExpectedBool))
	})
}

// String decodes a string node.
func String() treedec.Decoder[string] {
	return treedec.DecoderFunc[string](func(v tree.Value) treedec.Outcome[string] {
		if s, ok := v.StringVal(); ok {
			return treedec.Success(s)
		}
		return treedec.FailureAt[string](treedec.Root, treedec.NewError(treedec.KeyExpectedString))
	})
}

// StringAs decodes a string node into a domain type with underlying string.
func StringAs[T ~string]() treedec.Decoder[T] {
	return treedec.Map(String(), func(s string) T { return T(s) })
}

// Number decodes a numeric node as its exact literal.
func Number() treedec.Decoder[json.Number] {
	return treedec.DecoderFunc[json.Number](func(v tree.Value) treedec.Outcome[json.Number] {
		if n, ok := v.NumberVal(); ok {
			return treedec.Success(n)
		}
		return treedec.FailureAt[json.Number](treedec.Root, treedec.NewError(treedec.KeyExpectedNumber))
	})
}

// Int64 decodes a numeric node into int64. Narrowing is exact-or-error:
// a fractional literal fails with error.expected.int, and an integral
// literal outside the int64 range fails with error.overflow. Nothing is
// silently truncated.
func Int64() treedec.Decoder[int64] {
	return treedec.DecoderFunc[int64](func(v tree.Value) treedec.Outcome[int64] {
		n, ok := v.NumberVal()
		if !ok {
			return treedec.FailureAt[int64](treedec.Root, treedec.NewError(treedec.KeyExpectedNumber))
		}
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return treedec.Success(i)
		}
		f, _, err := big.ParseFloat(string(n), 10, 256, big.ToNearestEven)
		if err != nil {
			return treedec.FailureAt[int64](treedec.Root, treedec.NewError(treedec.KeyExpectedNumber))
		}
		if !f.IsInt() {
			return treedec.FailureAt[int64](treedec.Root, treedec.NewError(treedec.KeyExpectedInt))
		}
		i, acc := f.Int64()
		if acc != big.Exact {
			return treedec.FailureAt[int64](treedec.Root, treedec.NewError(treedec.KeyOverflow))
		}
		return treedec.Success(i)
	})
}

// Int decodes a numeric node into the platform int with the same
// exact-or-error policy as Int64.
func Int() treedec.Decoder[int] {
	return treedec.Collect(Int64(), treedec.NewError(treedec.KeyOverflow), func(i int64) (int, bool) {
		if i < math.MinInt || i > math.MaxInt {
			return 0, false
		}
		return int(i), true
	})
}

// Float64 decodes a numeric node into float64. Unlike the integer decoders
// this follows IEEE semantics: literals beyond float64 precision round to
// nearest rather than failing.
func Float64() treedec.Decoder[float64] {
	return treedec.DecoderFunc[float64](func(v tree.Value) treedec.Outcome[float64] {
		n, ok := v.NumberVal()
		if !ok {
			return treedec.FailureAt[float64](treedec.Root, treedec.NewError(treedec.KeyExpectedNumber))
		}
		f, err := n.Float64()
		if err != nil {
			return treedec.FailureAt[float64](treedec.Root, treedec.NewError(treedec.KeyExpectedNumber))
		}
		return treedec.Success(f)
	})
}

// Null decodes a null node, yielding the null tree value itself.
func Null() treedec.Decoder[tree.Value] {
	return treedec.DecoderFunc[tree.Value](func(v tree.Value) treedec.Outcome[tree.Value] {
		if v.IsNull() {
			return treedec.Success(v)
		}
		return treedec.FailureAt[tree.Value](treedec.Root, treedec.NewError(treedec.KeyExpectedNull))
	})
}
