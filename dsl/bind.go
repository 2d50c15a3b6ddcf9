package dsl

import (
	"reflect"
	"strings"

	treedec "github.com/reoring/treedec"
	"github.com/reoring/treedec/tree"
)

// Bind builds the object decoder and binds it to struct type T. Decoded
// field values are assigned to struct fields by json tag (falling back to
// the field name). Bind panics when T is not a struct; binding happens at
// composition time, so this is a programming error, not input data.
func Bind[T any](b *ObjectBuilder) treedec.Decoder[T] {
	var probe T
	rt := reflect.TypeOf(probe)
	if rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		panic("dsl: Bind[T] requires struct T")
	}
	idxByKey := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := resolveStructKey(sf)
		if key == "-" || key == "" {
			continue
		}
		idxByKey[key] = i
	}
	inner := b.Build()
	return treedec.DecoderFunc[T](func(v tree.Value) treedec.Outcome[T] {
		return treedec.FlatMapOutcome(inner.Decode(v), func(m map[string]any) treedec.Outcome[T] {
			rv := reflect.New(rt).Elem()
			for key, val := range m {
				idx, ok := idxByKey[key]
				if !ok {
					continue
				}
				fv := rv.Field(idx)
				if !fv.CanSet() {
					continue
				}
				if val == nil {
					fv.Set(reflect.Zero(fv.Type()))
					continue
				}
				vv := reflect.ValueOf(val)
				switch {
				case vv.Type().AssignableTo(fv.Type()):
					fv.Set(vv)
				case vv.Type().ConvertibleTo(fv.Type()):
					fv.Set(vv.Convert(fv.Type()))
				default:
					return treedec.FailureAt[T](treedec.AtField(key), treedec.NewError(treedec.KeyInvalid))
				}
			}
			return treedec.Success(rv.Interface().(T))
		})
	})
}

// resolveStructKey picks the wire key for a struct field: json tag first,
// then the field name.
func resolveStructKey(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}
