package dsl

import (
	treedec "github.com/reoring/treedec"
	"github.com/reoring/treedec/tree"
)

// Slice decodes an array node element-by-element with elem. Every element is
// evaluated before the outcome is decided: failures are collected with
// Index(i) prepended to each child path and concatenated in index order.
// When any element fails, the successfully decoded ones are discarded.
func Slice[E any](elem treedec.Decoder[E]) treedec.Decoder[[]E] {
	return treedec.DecoderFunc[[]E](func(v tree.Value) treedec.Outcome[[]E] {
		items, ok := v.Items()
		if !ok {
			return treedec.FailureAt[[]E](treedec.Root, treedec.NewError(treedec.KeyExpectedArray))
		}
		out := make([]E, 0, len(items))
		var errs treedec.ErrorList
		for i, item := range items {
			o := elem.Decode(item)
			if e, ok := o.Get(); ok {
				out = append(out, e)
				continue
			}
			errs = treedec.MergeErrors(errs, o.Errors().Rebase(treedec.AtIndex(i)))
		}
		if len(errs) > 0 {
			return treedec.Failure[[]E](errs)
		}
		return treedec.Success(out)
	})
}

// StringMap decodes an object node into map[string]V, decoding every member
// value with elem. Members are visited in stored key order so the error
// report is deterministic; failures get Field(key) prepended and are
// concatenated, and as with Slice the partial result is discarded on any
// failure.
func StringMap[V any](elem treedec.Decoder[V]) treedec.Decoder[map[string]V] {
	return treedec.DecoderFunc[map[string]V](func(v tree.Value) treedec.Outcome[map[string]V] {
		members, ok := v.Members()
		if !ok {
			return treedec.FailureAt[map[string]V](treedec.Root, treedec.NewError(treedec.KeyExpectedObject))
		}
		out := make(map[string]V, len(members))
		var errs treedec.ErrorList
		for _, m := range members {
			o := elem.Decode(m.Value)
			if val, ok := o.Get(); ok {
				out[m.Key] = val
				continue
			}
			errs = treedec.MergeErrors(errs, o.Errors().Rebase(treedec.AtField(m.Key)))
		}
		if len(errs) > 0 {
			return treedec.Failure[map[string]V](errs)
		}
		return treedec.Success(out)
	})
}

// Optional wraps elem so the decoder always succeeds: any failure of elem,
// shape mismatch and validation failure alike, is reported as absence. This
// lenient policy matches the historical behavior; it cannot distinguish
// "field was null" from "field was present but invalid". Use OptionalStrict
// when invalid-but-present must surface.
func Optional[T any](elem treedec.Decoder[T]) treedec.Decoder[treedec.Option[T]] {
	return treedec.DecoderFunc[treedec.Option[T]](func(v tree.Value) treedec.Outcome[treedec.Option[T]] {
		if o, ok := elem.Decode(v).Get(); ok {
			return treedec.Success(treedec.Some(o))
		}
		return treedec.Success(treedec.None[T]())
	})
}

// OptionalStrict treats only null as absence; every other input must decode
// with elem, and elem's failures propagate unchanged.
func OptionalStrict[T any](elem treedec.Decoder[T]) treedec.Decoder[treedec.Option[T]] {
	return treedec.DecoderFunc[treedec.Option[T]](func(v tree.Value) treedec.Outcome[treedec.Option[T]] {
		if v.IsNull() {
			return treedec.Success(treedec.None[T]())
		}
		return treedec.MapOutcome(elem.Decode(v), treedec.Some[T])
	})
}
