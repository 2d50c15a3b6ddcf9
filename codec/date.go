// Package codec provides decoders for external wire formats, currently
// date/time. Parsing is delegated to a FormatParser capability that is not
// assumed to be safe for concurrent use: every decode acquires its own
// parser through a ParserFactory, so a shared decoder never holds one.
package codec

import (
	"sync"
	"time"

	treedec "github.com/reoring/treedec"
	"github.com/reoring/treedec/tree"
)

// FormatParser turns text into an instant according to some format
// specification. Implementations may be stateful and non-reentrant; the
// date decoder never shares one across calls.
type FormatParser interface {
	Parse(s string) (time.Time, error)
	Layout() string
}

// ParserFactory acquires a parser for a single decode call.
type ParserFactory func() FormatParser

// layoutParser is the stdlib-backed default.
type layoutParser struct{ layout string }

func (p layoutParser) Parse(s string) (time.Time, error) { return time.Parse(p.layout, s) }
func (p layoutParser) Layout() string                    { return p.layout }

// LayoutFactory returns a factory producing time.Parse-backed parsers for
// the given reference layout.
func LayoutFactory(layout string) ParserFactory {
	return func() FormatParser { return layoutParser{layout: layout} }
}

// Pooled wraps a factory in a sync.Pool for parsers that are expensive to
// construct. Each call checks out a private instance, which restores safe
// concurrent use for non-reentrant parsers; the instance returns to the
// pool once the decode releases it.
func Pooled(newParser func() FormatParser) ParserFactory {
	pool := &sync.Pool{New: func() any { return newParser() }}
	return func() FormatParser {
		return &pooledParser{pool: pool, inner: pool.Get().(FormatParser)}
	}
}

type pooledParser struct {
	pool  *sync.Pool
	inner FormatParser
}

func (p *pooledParser) Parse(s string) (time.Time, error) { return p.inner.Parse(s) }
func (p *pooledParser) Layout() string                    { return p.inner.Layout() }

// Release returns the checked-out parser to the pool. The pooledParser must
// not be used afterwards.
func (p *pooledParser) Release() {
	if p.inner != nil {
		p.pool.Put(p.inner)
		p.inner = nil
	}
}

// releaser is implemented by parsers that must be given back after use.
type releaser interface{ Release() }

// DateOpt configures the date decoder.
type DateOpt func(*dateConfig)

type dateConfig struct {
	corrector func(string) string
	factory   ParserFactory
}

// WithCorrector installs a text transform applied before parsing, used to
// patch known format deviations such as unsupported timezone notation.
func WithCorrector(f func(string) string) DateOpt {
	return func(c *dateConfig) { c.corrector = f }
}

// WithParserFactory replaces the stdlib parser acquisition.
func WithParserFactory(f ParserFactory) DateOpt {
	return func(c *dateConfig) { c.factory = f }
}

// Date decodes an instant. A numeric node is interpreted as epoch
// milliseconds and succeeds unconditionally, whatever the layout. A string
// node runs through the corrector (when configured) and then a freshly
// acquired parser; a parse failure reports error.expected.date.isoformat
// carrying the layout so the report can name the expected format. Any
// other node kind fails with error.expected.date.
func Date(layout string, opts ...DateOpt) treedec.Decoder[time.Time] {
	cfg := dateConfig{factory: LayoutFactory(layout)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return treedec.DecoderFunc[time.Time](func(v tree.Value) treedec.Outcome[time.Time] {
		switch v.Kind() {
		case tree.KindNumber:
			n, _ := v.NumberVal()
			ms, err := n.Int64()
			if err != nil {
				f, ferr := n.Float64()
				if ferr != nil {
					return treedec.FailureAt[time.Time](treedec.Root, treedec.NewError(treedec.KeyExpectedDate))
				}
				ms = int64(f)
			}
			return treedec.Success(time.UnixMilli(ms).UTC())
		case tree.KindString:
			s, _ := v.StringVal()
			if cfg.corrector != nil {
				s = cfg.corrector(s)
			}
			p := cfg.factory()
			t, err := p.Parse(s)
			layout := p.Layout()
			if r, ok := p.(releaser); ok {
				r.Release()
			}
			if err != nil {
				return treedec.FailureAt[time.Time](treedec.Root,
					treedec.NewError(treedec.KeyExpectedFormat, tree.String(layout)))
			}
			return treedec.Success(t)
		default:
			return treedec.FailureAt[time.Time](treedec.Root, treedec.NewError(treedec.KeyExpectedDate))
		}
	})
}

// ISO8601 decodes RFC 3339 / ISO 8601 timestamps.
func ISO8601(opts ...DateOpt) treedec.Decoder[time.Time] {
	return Date(time.RFC3339, opts...)
}

// UnixSeconds decodes a numeric node as epoch seconds. Strings are not
// accepted; use Date for formatted text.
func UnixSeconds() treedec.Decoder[time.Time] {
	return treedec.DecoderFunc[time.Time](func(v tree.Value) treedec.Outcome[time.Time] {
		n, ok := v.NumberVal()
		if !ok {
			return treedec.FailureAt[time.Time](treedec.Root, treedec.NewError(treedec.KeyExpectedDate))
		}
		sec, err := n.Int64()
		if err != nil {
			return treedec.FailureAt[time.Time](treedec.Root, treedec.NewError(treedec.KeyExpectedDate))
		}
		return treedec.Success(time.Unix(sec, 0).UTC())
	})
}
