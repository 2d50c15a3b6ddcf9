package treedec_test

import (
	"testing"

	treedec "github.com/reoring/treedec"
	"github.com/reoring/treedec/dsl"
	"github.com/reoring/treedec/tree"
)

type account struct {
	Name   string
	Age    int64
	Active bool
}

func accountDecoder() treedec.Decoder[account] {
	return treedec.Map3(
		func(name string, age int64, active bool) account {
			return account{Name: name, Age: age, Active: active}
		},
		treedec.At(treedec.AtField("name"), dsl.String()),
		treedec.At(treedec.AtField("age"), dsl.Int64()),
		treedec.At(treedec.AtField("active"), dsl.Bool()),
	)
}

func TestMap3_AllSucceed(t *testing.T) {
	doc := tree.Object(
		tree.Field("name", tree.String("ada")),
		tree.Field("age", tree.NumberInt(36)),
		tree.Field("active", tree.Bool(true)),
	)
	got, err := treedec.Decode(accountDecoder(), doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != (account{Name: "ada", Age: 36, Active: true}) {
		t.Fatalf("value mismatch: %+v", got)
	}
}

func TestMap3_AccumulatesAllFailures(t *testing.T) {
	// name has the wrong shape and active is missing; age is fine
	doc := tree.Object(
		tree.Field("name", tree.NumberInt(1)),
		tree.Field("age", tree.NumberInt(36)),
	)
	_, err := treedec.Decode(accountDecoder(), doc)
	el, ok := treedec.AsErrorList(err)
	if !ok {
		t.Fatalf("expected ErrorList, got %v", err)
	}
	if len(el) != 2 {
		t.Fatalf("expected both defects, got %v", el)
	}
	// declaration order: name before active
	if !el[0].Path.Equal(treedec.AtField("name")) || el[0].Errors[0].Key != treedec.KeyExpectedString {
		t.Fatalf("first entry wrong: %+v", el[0])
	}
	if !el[1].Path.Equal(treedec.AtField("active")) || el[1].Errors[0].Key != treedec.KeyPathMissing {
		t.Fatalf("second entry wrong: %+v", el[1])
	}
}

func TestMap2_BothFailuresInDeclarationOrder(t *testing.T) {
	d := treedec.Map2(
		func(a int64, b string) struct{} { return struct{}{} },
		treedec.At(treedec.AtField("a"), dsl.Int64()),
		treedec.At(treedec.AtField("b"), dsl.String()),
	)
	doc := tree.Object(
		tree.Field("a", tree.String("nope")),
		tree.Field("b", tree.NumberInt(0)),
	)
	_, err := treedec.Decode(d, doc)
	el, _ := treedec.AsErrorList(err)
	if len(el) != 2 {
		t.Fatalf("expected 2 entries: %v", el)
	}
	if !el[0].Path.Equal(treedec.AtField("a")) || !el[1].Path.Equal(treedec.AtField("b")) {
		t.Fatalf("declaration order not preserved: %v", el)
	}
}

func TestSeq_CollectsAcrossDecoders(t *testing.T) {
	d := treedec.Seq(
		treedec.At(treedec.AtField("x"), dsl.Int64()),
		treedec.At(treedec.AtField("y"), dsl.Int64()),
	)
	doc := tree.Object(
		tree.Field("x", tree.NumberInt(1)),
		tree.Field("y", tree.NumberInt(2)),
	)
	got, err := treedec.Decode(d, doc)
	if err != nil || len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("got %v err=%v", got, err)
	}

	bad := tree.Object(tree.Field("x", tree.Bool(false)))
	_, err = treedec.Decode(d, bad)
	el, _ := treedec.AsErrorList(err)
	if len(el) != 2 {
		t.Fatalf("expected failures from both decoders: %v", el)
	}
}

func TestRegistry_ExplicitResolution(t *testing.T) {
	r := treedec.NewRegistry()
	treedec.Register(r, dsl.Int64())
	treedec.Register(r, dsl.String())

	di := treedec.MustLookup[int64](r)
	if got, err := treedec.Decode(di, tree.NumberInt(5)); err != nil || got != 5 {
		t.Fatalf("got %d err=%v", got, err)
	}
	if _, ok := treedec.Lookup[bool](r); ok {
		t.Fatalf("bool was never registered")
	}

	// registration replaces
	treedec.Register(r, treedec.Pure[int64](99))
	if got, _ := treedec.Decode(treedec.MustLookup[int64](r), tree.Null()); got != 99 {
		t.Fatalf("replacement not visible: %d", got)
	}
}
