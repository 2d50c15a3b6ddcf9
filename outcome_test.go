package treedec_test

import (
	"strconv"
	"testing"

	treedec "github.com/reoring/treedec"
)

func intEq(a, b int) bool { return a == b }

func TestOutcome_MapAndFlatMap(t *testing.T) {
	s := treedec.Success(2)
	if got, _ := treedec.MapOutcome(s, strconv.Itoa).Get(); got != "2" {
		t.Fatalf("map on success: %q", got)
	}

	f := treedec.FailureAt[int](treedec.AtField("n"), treedec.NewError(treedec.KeyExpectedNumber))
	mapped := treedec.MapOutcome(f, strconv.Itoa)
	if mapped.IsSuccess() {
		t.Fatalf("map must pass failures through")
	}
	if len(mapped.Errors()) != 1 || !mapped.Errors()[0].Path.Equal(treedec.AtField("n")) {
		t.Fatalf("failure not preserved: %v", mapped.Errors())
	}

	// flatMap short-circuits: f never runs on failure
	ran := false
	out := treedec.FlatMapOutcome(f, func(int) treedec.Outcome[string] {
		ran = true
		return treedec.Success("x")
	})
	if ran || out.IsSuccess() {
		t.Fatalf("flatMap must short-circuit on failure")
	}
}

func TestOutcome_Filter(t *testing.T) {
	e := treedec.NewError(treedec.KeyInvalid)
	ok := treedec.Success(5).Filter(func(i int) bool { return i > 0 }, e)
	if !ok.IsSuccess() {
		t.Fatalf("passing predicate must keep success")
	}
	bad := treedec.Success(-5).Filter(func(i int) bool { return i > 0 }, e)
	errs := bad.Errors()
	if len(errs) != 1 || !errs[0].Path.IsRoot() || errs[0].Errors[0].Key != treedec.KeyInvalid {
		t.Fatalf("failing predicate must fail at root with the supplied error: %v", errs)
	}
	// failures pass through untouched
	f := treedec.FailureAt[int](treedec.AtIndex(3), treedec.NewError(treedec.KeyExpectedNumber))
	if !f.Filter(func(int) bool { return true }, e).Equal(f, intEq) {
		t.Fatalf("filter must not touch failures")
	}
}

func TestOutcome_OrElse(t *testing.T) {
	success := treedec.Success(1)
	failA := treedec.FailureAt[int](treedec.AtField("a"), treedec.NewError(treedec.KeyExpectedNumber))
	failB := treedec.FailureAt[int](treedec.AtField("b"), treedec.NewError(treedec.KeyExpectedString))

	if got := failA.OrElse(success); !got.Equal(success, intEq) {
		t.Fatalf("fallback success must win")
	}
	if got := success.OrElse(failA); !got.Equal(success, intEq) {
		t.Fatalf("primary success must win")
	}

	merged := failA.OrElse(failB).Errors()
	if len(merged) != 2 {
		t.Fatalf("both reports must survive: %v", merged)
	}
	if !merged[0].Path.Equal(treedec.AtField("a")) || !merged[1].Path.Equal(treedec.AtField("b")) {
		t.Fatalf("primary errors must come first: %v", merged)
	}
}

func TestMergeErrors_ConcatenatesWithoutDedup(t *testing.T) {
	e := treedec.NewError(treedec.KeyInvalid)
	a := treedec.ErrorList{{Path: treedec.AtField("x"), Errors: []treedec.ValidationError{e}}}
	merged := treedec.MergeErrors(a, a)
	if len(merged) != 2 {
		t.Fatalf("merge must not deduplicate: %v", merged)
	}
	if !merged[0].Path.Equal(merged[1].Path) {
		t.Fatalf("repeated paths must be kept: %v", merged)
	}
}

func TestFailure_NeverEmpty(t *testing.T) {
	f := treedec.Failure[int](nil)
	if f.IsSuccess() || len(f.Errors()) == 0 {
		t.Fatalf("empty failure reports are not allowed to escape")
	}
}

func TestErrorList_ErrorSummary(t *testing.T) {
	e := treedec.NewError(treedec.KeyExpectedNumber)
	el := treedec.ErrorList{
		{Path: treedec.AtIndex(0), Errors: []treedec.ValidationError{e}},
		{Path: treedec.AtIndex(1), Errors: []treedec.ValidationError{e}},
		{Path: treedec.AtIndex(2), Errors: []treedec.ValidationError{e}},
		{Path: treedec.AtIndex(3), Errors: []treedec.ValidationError{e}},
	}
	got := el.Error()
	want := "error.expected.jsnumber at /0; error.expected.jsnumber at /1; error.expected.jsnumber at /2; ... (total 4)"
	if got != want {
		t.Fatalf("summary mismatch:\n got %s\nwant %s", got, want)
	}
}
