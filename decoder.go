package treedec

import (
	"github.com/reoring/treedec/tree"
)

// Decoder converts an untyped document value into a typed A, reporting every
// validation failure it can find rather than stopping at the first one.
//
// Decoders are pure: they hold no per-call mutable state, so one decoder may
// be built once and shared across concurrent callers. Anything wrapping a
// non-reentrant resource (see codec) must acquire it per call.
type Decoder[A any] interface {
	Decode(v tree.Value) Outcome[A]
}

// DecoderFunc adapts an ordinary function to the Decoder interface.
type DecoderFunc[A any] func(v tree.Value) Outcome[A]

// Decode implements Decoder.
func (f DecoderFunc[A]) Decode(v tree.Value) Outcome[A] { return f(v) }

// Pure returns a decoder that ignores its input and always succeeds with v.
func Pure[A any](v A) Decoder[A] {
	return DecoderFunc[A](func(tree.Value) Outcome[A] { return Success(v) })
}

// Fail returns a decoder that always fails with the given errors at the
// root path.
func Fail[A any](errs ...ValidationError) Decoder[A] {
	return DecoderFunc[A](func(tree.Value) Outcome[A] {
		return FailureAt[A](Root, errs...)
	})
}

// Map transforms a decoder's result.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return DecoderFunc[B](func(v tree.Value) Outcome[B] {
		return MapOutcome(d.Decode(v), f)
	})
}

// FlatMap derives a second decoder from the first decoder's value and runs
// it against the same original input, not a sub-tree. This lets a later
// decoder choose its shape from an earlier field (tagged-union dispatch);
// failures of d short-circuit.
func FlatMap[A, B any](d Decoder[A], f func(A) Decoder[B]) Decoder[B] {
	return DecoderFunc[B](func(v tree.Value) Outcome[B] {
		return FlatMapOutcome(d.Decode(v), func(a A) Outcome[B] {
			return f(a).Decode(v)
		})
	})
}

// Filter rejects decoded values failing pred with a generic error.
func Filter[A any](d Decoder[A], pred func(A) bool) Decoder[A] {
	return FilterErr(d, NewError(KeyInvalid), pred)
}

// FilterErr rejects decoded values failing pred with the supplied error.
func FilterErr[A any](d Decoder[A], e ValidationError, pred func(A) bool) Decoder[A] {
	return DecoderFunc[A](func(v tree.Value) Outcome[A] {
		return d.Decode(v).Filter(pred, e)
	})
}

// Collect applies a partial mapping to the decoded value: when f reports the
// value as outside its domain, the decoder fails with e.
func Collect[A, B any](d Decoder[A], e ValidationError, f func(A) (B, bool)) Decoder[B] {
	return DecoderFunc[B](func(v tree.Value) Outcome[B] {
		return FlatMapOutcome(d.Decode(v), func(a A) Outcome[B] {
			if b, ok := f(a); ok {
				return Success(b)
			}
			return FailureAt[B](Root, e)
		})
	})
}

// OrElse tries primary and falls back to fallback against the same input.
// The first success wins; when both fail the reports are concatenated,
// primary's entries first. Fallback is only evaluated when primary fails.
func OrElse[A any](primary, fallback Decoder[A]) Decoder[A] {
	return DecoderFunc[A](func(v tree.Value) Outcome[A] {
		out := primary.Decode(v)
		if out.IsSuccess() {
			return out
		}
		return out.OrElse(fallback.Decode(v))
	})
}

// At navigates to the location named by p before decoding. A missing
// location fails with error.path.missing at p itself; intermediate
// non-containers report the shape they hit. This is the path-accessor
// boundary: decoders handed to At always receive a present value.
func At[A any](p Path, d Decoder[A]) Decoder[A] {
	return DecoderFunc[A](func(v tree.Value) Outcome[A] {
		steps := p.Steps()
		cur := v
		for i, s := range steps {
			if key, ok := s.Key(); ok {
				if cur.Kind() != tree.KindObject {
					return FailureAt[A](NewPath(steps[:i]...), NewError(KeyExpectedObject))
				}
				next, found := cur.Get(key)
				if !found {
					return FailureAt[A](NewPath(steps[:i+1]...), NewError(KeyPathMissing))
				}
				cur = next
				continue
			}
			idx, _ := s.Pos()
			if cur.Kind() != tree.KindArray {
				return FailureAt[A](NewPath(steps[:i]...), NewError(KeyExpectedArray))
			}
			next, found := cur.Index(idx)
			if !found {
				return FailureAt[A](NewPath(steps[:i+1]...), NewError(KeyPathMissing))
			}
			cur = next
		}
		return d.Decode(cur).Rebase(p)
	})
}

// Decode runs d against v and returns the conventional (value, error) pair;
// the error, when non-nil, is an ErrorList.
func Decode[A any](d Decoder[A], v tree.Value) (A, error) {
	return d.Decode(v).Unpack()
}
