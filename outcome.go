package treedec

// Outcome is the two-variant result of a decode: either exactly one typed
// value, or a non-empty failure report. The zero value is not meaningful;
// construct through Success and Failure.
type Outcome[A any] struct {
	value A
	errs  ErrorList
	ok    bool
}

// Success wraps a decoded value.
func Success[A any](v A) Outcome[A] { return Outcome[A]{value: v, ok: true} }

// Failure wraps a failure report. An empty report would violate the Outcome
// invariant, so it is replaced with a single generic error rather than
// letting an empty Failure escape.
func Failure[A any](errs ErrorList) Outcome[A] {
	if len(errs) == 0 {
		errs = singleError(Root, NewError(KeyInvalid))
	}
	return Outcome[A]{errs: errs}
}

// FailureAt is shorthand for a single-location failure.
func FailureAt[A any](p Path, errs ...ValidationError) Outcome[A] {
	return Failure[A](singleError(p, errs...))
}

// IsSuccess reports whether the outcome carries a value.
func (o Outcome[A]) IsSuccess() bool { return o.ok }

// Get returns the value; ok is false for failures.
func (o Outcome[A]) Get() (A, bool) { return o.value, o.ok }

// Errors returns the failure report, or nil for successes.
func (o Outcome[A]) Errors() ErrorList {
	if o.ok {
		return nil
	}
	return o.errs
}

// Unpack converts the outcome into the conventional (value, error) pair.
func (o Outcome[A]) Unpack() (A, error) {
	if o.ok {
		return o.value, nil
	}
	var zero A
	return zero, o.errs
}

// GetOrElse returns the value, or fallback on failure.
func (o Outcome[A]) GetOrElse(fallback A) A {
	if o.ok {
		return o.value
	}
	return fallback
}

// Filter keeps a success only when pred holds; otherwise it fails with e at
// the root path. Failures pass through untouched.
func (o Outcome[A]) Filter(pred func(A) bool, e ValidationError) Outcome[A] {
	if !o.ok || pred(o.value) {
		return o
	}
	return FailureAt[A](Root, e)
}

// OrElse returns o when it is a success; otherwise fallback when that is a
// success; otherwise the concatenation of both failure reports, o's entries
// first. Keeping both sides' diagnostics is what makes alternatives
// debuggable: a reader sees why every branch was rejected.
func (o Outcome[A]) OrElse(fallback Outcome[A]) Outcome[A] {
	if o.ok || fallback.ok {
		if o.ok {
			return o
		}
		return fallback
	}
	return Failure[A](MergeErrors(o.errs, fallback.errs))
}

// Rebase prefixes every error path with parent. Successes pass through.
func (o Outcome[A]) Rebase(parent Path) Outcome[A] {
	if o.ok {
		return o
	}
	return Failure[A](o.errs.Rebase(parent))
}

// Equal reports equality of two outcomes given a value comparator.
func (o Outcome[A]) Equal(other Outcome[A], eq func(A, A) bool) bool {
	if o.ok != other.ok {
		return false
	}
	if o.ok {
		return eq(o.value, other.value)
	}
	if len(o.errs) != len(other.errs) {
		return false
	}
	for i, pe := range o.errs {
		ope := other.errs[i]
		if !pe.Path.Equal(ope.Path) || len(pe.Errors) != len(ope.Errors) {
			return false
		}
		for j := range pe.Errors {
			if !pe.Errors[j].Equal(ope.Errors[j]) {
				return false
			}
		}
	}
	return true
}

// MapOutcome applies f to a success; failures pass through unchanged.
func MapOutcome[A, B any](o Outcome[A], f func(A) B) Outcome[B] {
	if !o.ok {
		return Failure[B](o.errs)
	}
	return Success(f(o.value))
}

// FlatMapOutcome sequences a dependent computation. A failure
// short-circuits: f never runs, and the report passes through unchanged.
// Accumulation across independent computations is Applied's job, not this
// one's.
func FlatMapOutcome[A, B any](o Outcome[A], f func(A) Outcome[B]) Outcome[B] {
	if !o.ok {
		return Failure[B](o.errs)
	}
	return f(o.value)
}
