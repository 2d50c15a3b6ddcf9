package codec_test

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	treedec "github.com/reoring/treedec"
	"github.com/reoring/treedec/codec"
	"github.com/reoring/treedec/tree"
)

func TestDate_NumberIsEpochMillis(t *testing.T) {
	d := codec.Date("2006-01-02")
	got, err := treedec.Decode(d, tree.NumberInt(0))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Equal(time.UnixMilli(0)) {
		t.Fatalf("Number(0) must be the epoch regardless of layout, got %v", got)
	}

	got, err = treedec.Decode(d, tree.NumberInt(1500))
	if err != nil || !got.Equal(time.UnixMilli(1500)) {
		t.Fatalf("got %v err=%v", got, err)
	}
}

func TestDate_StringParsesWithLayout(t *testing.T) {
	d := codec.Date("2006-01-02")
	got, err := treedec.Decode(d, tree.String("2024-05-01"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDate_FailureCarriesLayoutArgument(t *testing.T) {
	const layout = "2006-01-02"
	_, err := treedec.Decode(codec.Date(layout), tree.String("01/05/2024"))
	el, ok := treedec.AsErrorList(err)
	if !ok || len(el) != 1 {
		t.Fatalf("expected one entry: %v", err)
	}
	ve := el[0].Errors[0]
	if ve.Key != treedec.KeyExpectedFormat {
		t.Fatalf("key wrong: %s", ve.Key)
	}
	if len(ve.Args) != 1 || !ve.Args[0].Equal(tree.String(layout)) {
		t.Fatalf("layout must travel as an argument: %v", ve.Args)
	}
}

func TestDate_WrongKind(t *testing.T) {
	_, err := treedec.Decode(codec.Date(time.RFC3339), tree.Bool(true))
	el, _ := treedec.AsErrorList(err)
	if len(el) != 1 || el[0].Errors[0].Key != treedec.KeyExpectedDate {
		t.Fatalf("expected error.expected.date: %v", el)
	}
}

func TestDate_Corrector(t *testing.T) {
	// patch a legacy feed that writes "UTC" instead of "Z"
	d := codec.ISO8601(codec.WithCorrector(func(s string) string {
		return strings.Replace(s, " UTC", "Z", 1)
	}))
	got, err := treedec.Decode(d, tree.String("2024-05-01T10:00:00 UTC"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Hour() != 10 {
		t.Fatalf("got %v", got)
	}
}

// countingParser counts constructions so tests can observe pooling.
type countingParser struct {
	layout string
}

func (p *countingParser) Parse(s string) (time.Time, error) { return time.Parse(p.layout, s) }
func (p *countingParser) Layout() string                    { return p.layout }

func TestDate_PooledFactoryIsConcurrencySafe(t *testing.T) {
	var constructed int
	var mu sync.Mutex
	factory := codec.Pooled(func() codec.FormatParser {
		mu.Lock()
		constructed++
		mu.Unlock()
		return &countingParser{layout: "2006-01-02"}
	})
	d := codec.Date("2006-01-02", codec.WithParserFactory(factory))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := treedec.Decode(d, tree.String("2024-05-01")); err != nil {
					t.Errorf("decode: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	mu.Lock()
	defer mu.Unlock()
	if constructed == 0 {
		t.Fatalf("factory never ran")
	}
}

func TestUnixSeconds(t *testing.T) {
	got, err := treedec.Decode(codec.UnixSeconds(), tree.Number(json.Number("120")))
	if err != nil || !got.Equal(time.Unix(120, 0)) {
		t.Fatalf("got %v err=%v", got, err)
	}
	if _, err := treedec.Decode(codec.UnixSeconds(), tree.String("120")); err == nil {
		t.Fatalf("strings are not accepted")
	}
}
