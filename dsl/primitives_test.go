package dsl_test

import (
	"encoding/json"
	"testing"

	treedec "github.com/reoring/treedec"
	"github.com/reoring/treedec/dsl"
	"github.com/reoring/treedec/tree"
)

// oneRootError asserts the failure shape shared by every primitive: exactly
// one entry, at the root path, with the given key.
func oneRootError(t *testing.T, err error, key string) {
	t.Helper()
	el, ok := treedec.AsErrorList(err)
	if !ok {
		t.Fatalf("expected ErrorList, got %v", err)
	}
	if len(el) != 1 || !el[0].Path.IsRoot() {
		t.Fatalf("expected one root entry, got %v", el)
	}
	if len(el[0].Errors) != 1 || el[0].Errors[0].Key != key {
		t.Fatalf("expected %s, got %v", key, el[0].Errors)
	}
}

func TestBool_Basic(t *testing.T) {
	if got, err := treedec.Decode(dsl.Bool(), tree.Bool(true)); err != nil || !got {
		t.Fatalf("got %v err=%v", got, err)
	}
	_, err := treedec.Decode(dsl.Bool(), tree.String("true"))
	oneRootError(t, err, treedec.KeyExpectedBool)
}

func TestString_Basic(t *testing.T) {
	if got, err := treedec.Decode(dsl.String(), tree.String("hi")); err != nil || got != "hi" {
		t.Fatalf("got %q err=%v", got, err)
	}
	_, err := treedec.Decode(dsl.String(), tree.Null())
	oneRootError(t, err, treedec.KeyExpectedString)
}

func TestNumber_RoundTripsLiteral(t *testing.T) {
	lit := json.Number("12345678901234567890.5")
	got, err := treedec.Decode(dsl.Number(), tree.Number(lit))
	if err != nil || got != lit {
		t.Fatalf("got %v err=%v", got, err)
	}
	_, err = treedec.Decode(dsl.Number(), tree.Bool(false))
	oneRootError(t, err, treedec.KeyExpectedNumber)
}

func TestInt64_ExactNarrowing(t *testing.T) {
	if got, err := treedec.Decode(dsl.Int64(), tree.NumberInt(3)); err != nil || got != 3 {
		t.Fatalf("got %d err=%v", got, err)
	}
	// integral-valued literals with exponent or fraction still narrow exactly
	if got, err := treedec.Decode(dsl.Int64(), tree.Number(json.Number("3.0"))); err != nil || got != 3 {
		t.Fatalf("3.0 should be integral: got %d err=%v", got, err)
	}
	if got, err := treedec.Decode(dsl.Int64(), tree.Number(json.Number("1e3"))); err != nil || got != 1000 {
		t.Fatalf("1e3 should be integral: got %d err=%v", got, err)
	}

	_, err := treedec.Decode(dsl.Int64(), tree.Number(json.Number("3.5")))
	oneRootError(t, err, treedec.KeyExpectedInt)

	_, err = treedec.Decode(dsl.Int64(), tree.Number(json.Number("9223372036854775808")))
	oneRootError(t, err, treedec.KeyOverflow)

	_, err = treedec.Decode(dsl.Int64(), tree.String("3"))
	oneRootError(t, err, treedec.KeyExpectedNumber)
}

func TestFloat64_Basic(t *testing.T) {
	got, err := treedec.Decode(dsl.Float64(), tree.Number(json.Number("2.5")))
	if err != nil || got != 2.5 {
		t.Fatalf("got %v err=%v", got, err)
	}
	_, err = treedec.Decode(dsl.Float64(), tree.Array())
	oneRootError(t, err, treedec.KeyExpectedNumber)
}

func TestNull_Basic(t *testing.T) {
	got, err := treedec.Decode(dsl.Null(), tree.Null())
	if err != nil || !got.IsNull() {
		t.Fatalf("got %v err=%v", got, err)
	}
	_, err = treedec.Decode(dsl.Null(), tree.NumberInt(0))
	oneRootError(t, err, treedec.KeyExpectedNull)
}

func TestValue_Passthrough(t *testing.T) {
	doc := tree.Object(tree.Field("anything", tree.Array(tree.Null())))
	got, err := treedec.Decode(dsl.Value(), doc)
	if err != nil || !got.Equal(doc) {
		t.Fatalf("passthrough must return the input unchanged: %v err=%v", got, err)
	}
}

func TestStringAs_DomainType(t *testing.T) {
	type userID string
	got, err := treedec.Decode(dsl.StringAs[userID](), tree.String("u-1"))
	if err != nil || got != userID("u-1") {
		t.Fatalf("got %v err=%v", got, err)
	}
}
