package treedec

// Option carries a value that may be absent. It exists so optional decoders
// can distinguish "nothing there" from a zero value without resorting to
// pointers.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{value: v, some: true} }

// None is the absent value.
func None[T any]() Option[T] { return Option[T]{} }

// IsSome reports presence.
func (o Option[T]) IsSome() bool { return o.some }

// Get returns the value; ok is false when absent.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// GetOrElse returns the value, or fallback when absent.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}
