package dsl

import (
	treedec "github.com/reoring/treedec"
	"github.com/reoring/treedec/tree"
)

// AnyDecoder adapts a strongly typed Decoder[T] to the any-typed form the
// object builder stores per field.
type AnyDecoder struct {
	decode     func(tree.Value) treedec.Outcome[any]
	whenAbsent func() (any, bool)
}

// Of wraps a typed decoder for use with Field.
func Of[T any](d treedec.Decoder[T]) AnyDecoder {
	return AnyDecoder{
		decode: func(v tree.Value) treedec.Outcome[any] {
			return treedec.MapOutcome(d.Decode(v), func(t T) any { return any(t) })
		},
	}
}

// OfOptional wraps a typed decoder so that a missing field decodes to
// None[T] instead of being skipped, and a present field decodes leniently.
func OfOptional[T any](d treedec.Decoder[T]) AnyDecoder {
	ad := Of(Optional(d))
	ad.whenAbsent = func() (any, bool) { return any(treedec.None[T]()), true }
	return ad
}

// WithDefault supplies a value used when the field is missing.
func (ad AnyDecoder) WithDefault(v any) AnyDecoder {
	out := ad
	out.whenAbsent = func() (any, bool) { return v, true }
	return out
}

type objectField struct {
	name     string
	dec      AnyDecoder
	required bool
}

// ObjectBuilder assembles a Decoder[map[string]any] field by field.
// Fields decode independently against their own sub-values and every
// failing field contributes its full, path-rebased report, in the order
// fields were declared.
type ObjectBuilder struct {
	fields []objectField
	byName map[string]int
}

type fieldStep struct {
	b    *ObjectBuilder
	name string
}

// Object creates an empty object builder.
func Object() *ObjectBuilder {
	return &ObjectBuilder{byName: map[string]int{}}
}

// Field registers a field with its decoder. Registration order is the
// error-report order. Fields are required unless marked Optional or given
// an absence behavior.
func (b *ObjectBuilder) Field(name string, dec AnyDecoder) *fieldStep {
	if i, dup := b.byName[name]; dup {
		b.fields[i].dec = dec
		return &fieldStep{b: b, name: name}
	}
	b.byName[name] = len(b.fields)
	b.fields = append(b.fields, objectField{name: name, dec: dec, required: true})
	return &fieldStep{b: b, name: name}
}

// Required marks the field required (the default) and returns the builder.
func (f *fieldStep) Required() *ObjectBuilder {
	f.b.fields[f.b.byName[f.name]].required = true
	return f.b
}

// Optional marks the field optional: a missing field is simply skipped
// unless its decoder defines an absence value.
func (f *fieldStep) Optional() *ObjectBuilder {
	f.b.fields[f.b.byName[f.name]].required = false
	return f.b
}

func (f *fieldStep) Field(name string, dec AnyDecoder) *fieldStep { return f.b.Field(name, dec) }
func (f *fieldStep) Build() treedec.Decoder[map[string]any]       { return f.b.Build() }

// Require marks one or more fields as required.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	for _, n := range names {
		if i, ok := b.byName[n]; ok {
			b.fields[i].required = true
		}
	}
	return b
}

// Build finalizes the builder into a decoder. The builder must not be
// mutated afterwards; the returned decoder snapshots the field list.
func (b *ObjectBuilder) Build() treedec.Decoder[map[string]any] {
	fields := make([]objectField, len(b.fields))
	copy(fields, b.fields)
	return treedec.DecoderFunc[map[string]any](func(v tree.Value) treedec.Outcome[map[string]any] {
		if v.Kind() != tree.KindObject {
			return treedec.FailureAt[map[string]any](treedec.Root, treedec.NewError(treedec.KeyExpectedObject))
		}
		out := make(map[string]any, len(fields))
		var errs treedec.ErrorList
		for _, f := range fields {
			fv, present := v.Get(f.name)
			if !present {
				if f.dec.whenAbsent != nil {
					if dv, ok := f.dec.whenAbsent(); ok {
						out[f.name] = dv
					}
					continue
				}
				if f.required {
					errs = treedec.MergeErrors(errs, treedec.ErrorList{{
						Path:   treedec.AtField(f.name),
						Errors: []treedec.ValidationError{treedec.NewError(treedec.KeyPathMissing)},
					}})
				}
				continue
			}
			o := f.dec.decode(fv)
			if val, ok := o.Get(); ok {
				out[f.name] = val
				continue
			}
			errs = treedec.MergeErrors(errs, o.Errors().Rebase(treedec.AtField(f.name)))
		}
		if len(errs) > 0 {
			return treedec.Failure[map[string]any](errs)
		}
		return treedec.Success(out)
	})
}
