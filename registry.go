package treedec

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry resolves decoders by target type at composition time. It replaces
// implicit resolution with explicit registration: callers register the
// decoder for each Go type once, then look it up where a composed decoder
// needs it. Lookups after setup are read-locked only, so a registry is safe
// to share across concurrent decode paths.
type Registry struct {
	mu       sync.RWMutex
	decoders map[reflect.Type]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: map[reflect.Type]any{}}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register records d as the decoder for T, replacing any previous entry.
func Register[T any](r *Registry, d Decoder[T]) {
	r.mu.Lock()
	r.decoders[typeOf[T]()] = d
	r.mu.Unlock()
}

// Lookup returns the decoder registered for T.
func Lookup[T any](r *Registry) (Decoder[T], bool) {
	r.mu.RLock()
	raw, ok := r.decoders[typeOf[T]()]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	d, ok := raw.(Decoder[T])
	return d, ok
}

// MustLookup is Lookup panicking when T has no registered decoder. Intended
// for composition-time wiring where a missing entry is a programming error.
func MustLookup[T any](r *Registry) Decoder[T] {
	d, ok := Lookup[T](r)
	if !ok {
		panic(fmt.Sprintf("treedec: no decoder registered for %s", typeOf[T]()))
	}
	return d
}

var defaultRegistry = NewRegistry()

// RegisterDefault records d in the package-level registry.
func RegisterDefault[T any](d Decoder[T]) { Register(defaultRegistry, d) }

// LookupDefault resolves T from the package-level registry.
func LookupDefault[T any]() (Decoder[T], bool) { return Lookup[T](defaultRegistry) }
