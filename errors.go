package treedec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/treedec/tree"
)

// Message keys (exported consts for IDE completion and type safety by
// convention). Keys are identifiers, not user-facing text; rendering is the
// job of the i18n package or another external translator.
const (
	KeyExpectedBool   = "error.expected.jsboolean"
	KeyExpectedNumber = "error.expected.jsnumber"
	KeyExpectedString = "error.expected.jsstring"
	KeyExpectedArray  = "error.expected.jsarray"
	KeyExpectedObject = "error.expected.jsobject"
	KeyExpectedNull   = "error.expected.jsnull"
	KeyExpectedInt    = "error.expected.int"
	KeyExpectedDate   = "error.expected.date"
	KeyExpectedFormat = "error.expected.date.isoformat"
	KeyPathMissing    = "error.path.missing"
	KeyInvalid        = "error.invalid"
	KeyOverflow       = "error.overflow"
)

// ValidationError identifies a single validation failure: a message key plus
// ordered arguments for downstream interpolation. It is deliberately not a
// rendered string; the decoding core only tags and carries failures.
type ValidationError struct {
	Key  string
	Args []tree.Value
}

// NewError builds a ValidationError from a key and arguments.
func NewError(key string, args ...tree.Value) ValidationError {
	return ValidationError{Key: key, Args: args}
}

// Equal reports equality of key and arguments.
func (e ValidationError) Equal(o ValidationError) bool {
	if e.Key != o.Key || len(e.Args) != len(o.Args) {
		return false
	}
	for i := range e.Args {
		if !e.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// PathError is one entry of a failure report: the validation errors raised
// at a single location. Errors is never empty.
type PathError struct {
	Path   Path
	Errors []ValidationError
}

// ErrorList is the full failure report of a decode. The same path may appear
// more than once; merging concatenates and never coalesces entries, so the
// order in which sub-decoders reported is preserved exactly.
//
// ErrorList implements error so failures travel through ordinary Go error
// plumbing when callers prefer that over inspecting the Outcome.
type ErrorList []PathError

// Error summarizes the first few entries.
func (el ErrorList) Error() string {
	if len(el) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(el)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		pe := el[i]
		key := "error.invalid"
		if len(pe.Errors) > 0 {
			key = pe.Errors[0].Key
		}
		fmt.Fprintf(b, "%s at %s", key, pe.Path.String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// MergeErrors concatenates two reports in order. No deduplication, no
// sorting: both sides' diagnostics survive verbatim.
func MergeErrors(a, b ErrorList) ErrorList {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(ErrorList, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Rebase prefixes every path in el with parent, returning a fresh report.
func (el ErrorList) Rebase(parent Path) ErrorList {
	if parent.IsRoot() || len(el) == 0 {
		return el
	}
	out := make(ErrorList, len(el))
	for i, pe := range el {
		out[i] = PathError{Path: parent.Join(pe.Path), Errors: pe.Errors}
	}
	return out
}

// AsErrorList extracts an ErrorList from an error using errors.As.
func AsErrorList(err error) (ErrorList, bool) {
	if err == nil {
		return nil, false
	}
	var el ErrorList
	if errors.As(err, &el) {
		return el, true
	}
	return nil, false
}

// singleError builds the common one-location report.
func singleError(p Path, errs ...ValidationError) ErrorList {
	return ErrorList{{Path: p, Errors: errs}}
}
