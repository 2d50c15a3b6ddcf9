package treedec

import (
	"github.com/reoring/treedec/tree"
)

// Applicative composition: run several independent decoders against the same
// input and either combine all values through a constructor function, or
// fail with every sub-decoder's report concatenated in declaration order.
//
// This is deliberately not built on FlatMap — FlatMap short-circuits on the
// first failure, which would reduce a full validation report to its first
// defect.

// applied accumulates one sub-decoder's outcome into the running state.
func applied[A any](v tree.Value, d Decoder[A], errs ErrorList) (A, ErrorList) {
	out := d.Decode(v)
	if a, ok := out.Get(); ok {
		return a, errs
	}
	var zero A
	return zero, MergeErrors(errs, out.Errors())
}

// Map2 combines two independent decoders through f, accumulating failures.
func Map2[A, B, R any](f func(A, B) R, da Decoder[A], db Decoder[B]) Decoder[R] {
	return DecoderFunc[R](func(v tree.Value) Outcome[R] {
		var errs ErrorList
		a, errs := applied(v, da, errs)
		b, errs := applied(v, db, errs)
		if len(errs) > 0 {
			return Failure[R](errs)
		}
		return Success(f(a, b))
	})
}

// Map3 combines three independent decoders through f, accumulating failures.
func Map3[A, B, C, R any](f func(A, B, C) R, da Decoder[A], db Decoder[B], dc Decoder[C]) Decoder[R] {
	return DecoderFunc[R](func(v tree.Value) Outcome[R] {
		var errs ErrorList
		a, errs := applied(v, da, errs)
		b, errs := applied(v, db, errs)
		c, errs := applied(v, dc, errs)
		if len(errs) > 0 {
			return Failure[R](errs)
		}
		return Success(f(a, b, c))
	})
}

// Map4 combines four independent decoders through f, accumulating failures.
func Map4[A, B, C, D, R any](f func(A, B, C, D) R, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D]) Decoder[R] {
	return DecoderFunc[R](func(v tree.Value) Outcome[R] {
		var errs ErrorList
		a, errs := applied(v, da, errs)
		b, errs := applied(v, db, errs)
		c, errs := applied(v, dc, errs)
		d, errs := applied(v, dd, errs)
		if len(errs) > 0 {
			return Failure[R](errs)
		}
		return Success(f(a, b, c, d))
	})
}

// Map5 combines five independent decoders through f, accumulating failures.
func Map5[A, B, C, D, E, R any](f func(A, B, C, D, E) R, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E]) Decoder[R] {
	return DecoderFunc[R](func(v tree.Value) Outcome[R] {
		var errs ErrorList
		a, errs := applied(v, da, errs)
		b, errs := applied(v, db, errs)
		c, errs := applied(v, dc, errs)
		d, errs := applied(v, dd, errs)
		e, errs := applied(v, de, errs)
		if len(errs) > 0 {
			return Failure[R](errs)
		}
		return Success(f(a, b, c, d, e))
	})
}

// Map6 combines six independent decoders through f, accumulating failures.
func Map6[A, B, C, D, E, F, R any](f func(A, B, C, D, E, F) R, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F]) Decoder[R] {
	return DecoderFunc[R](func(v tree.Value) Outcome[R] {
		var errs ErrorList
		a, errs := applied(v, da, errs)
		b, errs := applied(v, db, errs)
		c, errs := applied(v, dc, errs)
		d, errs := applied(v, dd, errs)
		e, errs := applied(v, de, errs)
		fv, errs := applied(v, df, errs)
		if len(errs) > 0 {
			return Failure[R](errs)
		}
		return Success(f(a, b, c, d, e, fv))
	})
}

// Seq runs every decoder against the same input in declaration order. On
// total success it yields all values in order; otherwise the concatenated
// report. It is the untyped building block behind dynamic compositions
// (the dsl object builder uses it per-field).
func Seq[A any](ds ...Decoder[A]) Decoder[[]A] {
	return DecoderFunc[[]A](func(v tree.Value) Outcome[[]A] {
		out := make([]A, 0, len(ds))
		var errs ErrorList
		for _, d := range ds {
			o := d.Decode(v)
			if a, ok := o.Get(); ok {
				out = append(out, a)
				continue
			}
			errs = MergeErrors(errs, o.Errors())
		}
		if len(errs) > 0 {
			return Failure[[]A](errs)
		}
		return Success(out)
	})
}
