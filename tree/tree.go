package tree

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is the parsed, in-memory representation of a JSON-like document.
// A Value is immutable by contract: nothing in this module mutates one after
// construction, so a single tree may be shared across concurrent decodes.
//
// Numbers are carried as json.Number to preserve the exact source literal;
// interpretation (float vs exact integer) is left to the consumer.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  json.Number
	strVal  string
	arr     []Value
	members []Member
}

// Member is a single key/value entry of an object. Objects keep their
// members in source order; keys are unique.
type Member struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Number wraps a numeric literal.
func Number(n json.Number) Value { return Value{kind: KindNumber, numVal: n} }

// NumberInt wraps an integer as a numeric literal.
func NumberInt(i int64) Value {
	return Value{kind: KindNumber, numVal: json.Number(strconv.FormatInt(i, 10))}
}

// NumberFloat wraps a float as a numeric literal using the shortest
// round-trippable representation.
func NumberFloat(f float64) Value {
	return Value{kind: KindNumber, numVal: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}
}

// String wraps a text value.
func String(s string) Value { return Value{kind: KindString, strVal: s} }

// Array wraps an ordered sequence of values.
func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// Object builds an object from members, keeping the given order. If a key
// repeats, the last occurrence wins and earlier ones are dropped, matching
// the usual JSON object semantics.
func Object(members ...Member) Value {
	out := make([]Member, 0, len(members))
	seen := make(map[string]int, len(members))
	for _, m := range members {
		if i, dup := seen[m.Key]; dup {
			out[i] = m
			continue
		}
		seen[m.Key] = len(out)
		out = append(out, m)
	}
	return Value{kind: KindObject, members: out}
}

// Field is a convenience constructor for an object member.
func Field(key string, v Value) Member { return Member{Key: key, Value: v} }

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// BoolVal returns the boolean payload; ok is false for other kinds.
func (v Value) BoolVal() (b bool, ok bool) { return v.boolVal, v.kind == KindBool }

// NumberVal returns the numeric literal; ok is false for other kinds.
func (v Value) NumberVal() (n json.Number, ok bool) { return v.numVal, v.kind == KindNumber }

// StringVal returns the text payload; ok is false for other kinds.
func (v Value) StringVal() (s string, ok bool) { return v.strVal, v.kind == KindString }

// Items returns the array elements in order; ok is false for other kinds.
// The returned slice must not be mutated.
func (v Value) Items() (items []Value, ok bool) { return v.arr, v.kind == KindArray }

// Members returns the object entries in stored order; ok is false for other
// kinds. The returned slice must not be mutated.
func (v Value) Members() (members []Member, ok bool) { return v.members, v.kind == KindObject }

// Get looks up an object member by key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Index returns the i-th array element.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Len returns the number of elements (array) or members (object), and 0 for
// every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.members)
	}
	return 0
}

// Equal reports structural equality. Object member order is ignored; numbers
// compare by literal text.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == o.boolVal
	case KindNumber:
		return v.numVal == o.numVal
	case KindString:
		return v.strVal == o.strVal
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(o.members) {
			return false
		}
		for _, m := range v.members {
			ov, ok := o.Get(m.Key)
			if !ok || !m.Value.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders v as compact JSON. Intended for diagnostics and the CLI;
// it is not a streaming encoder.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.boolVal {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(string(v.numVal))
	case KindString:
		writeQuoted(b, v.strVal)
	case KindArray:
		b.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				b.WriteByte(',')
			}
			e.write(b)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				b.WriteByte(',')
			}
			writeQuoted(b, m.Key)
			b.WriteByte(':')
			m.Value.write(b)
		}
		b.WriteByte('}')
	}
}

func writeQuoted(b *strings.Builder, s string) {
	q, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail; keep the fallback cheap.
		b.WriteString(strconv.Quote(s))
		return
	}
	b.Write(q)
}

// SortedKeys returns the object's keys in ascending order, or nil for other
// kinds. Useful when deterministic non-source ordering is wanted.
func (v Value) SortedKeys() []string {
	if v.kind != KindObject {
		return nil
	}
	ks := make([]string, 0, len(v.members))
	for _, m := range v.members {
		ks = append(ks, m.Key)
	}
	sort.Strings(ks)
	return ks
}
