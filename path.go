package treedec

import (
	"strconv"
	"strings"
)

// Step is a single navigation step inside a document: either an object field
// selected by name or an array element selected by position.
type Step struct {
	key   string
	index int
	field bool
}

// Field selects the object member named key.
func Field(key string) Step { return Step{key: key, field: true} }

// Index selects the i-th array element. Negative indices are not valid
// navigation targets; they only ever appear if a caller constructs one.
func Index(i int) Step { return Step{index: i} }

// IsField reports whether s selects by name.
func (s Step) IsField() bool { return s.field }

// Key returns the field name; ok is false for index steps.
func (s Step) Key() (string, bool) { return s.key, s.field }

// Pos returns the element position; ok is false for field steps.
func (s Step) Pos() (int, bool) { return s.index, !s.field }

// String renders the step in JSON-Pointer style ("/name" or "/3").
func (s Step) String() string {
	if s.field {
		return "/" + escapePointer(s.key)
	}
	return "/" + strconv.Itoa(s.index)
}

// Compare orders steps: fields before indices, then by key or position.
func (s Step) Compare(o Step) int {
	if s.field != o.field {
		if s.field {
			return -1
		}
		return 1
	}
	if s.field {
		return strings.Compare(s.key, o.key)
	}
	switch {
	case s.index < o.index:
		return -1
	case s.index > o.index:
		return 1
	}
	return 0
}

// Path identifies a location within a document as an ordered sequence of
// steps. The zero value is the root path. Paths are immutable: every
// operation returns a fresh path and never aliases the receiver's backing
// array in a way a later Append could observe.
type Path struct {
	steps []Step
}

// Root is the empty path designating the whole input.
var Root = Path{}

// NewPath builds a path from steps.
func NewPath(steps ...Step) Path {
	if len(steps) == 0 {
		return Path{}
	}
	cp := make([]Step, len(steps))
	copy(cp, steps)
	return Path{steps: cp}
}

// AtField returns the root path extended by a field step.
func AtField(key string) Path { return NewPath(Field(key)) }

// AtIndex returns the root path extended by an index step.
func AtIndex(i int) Path { return NewPath(Index(i)) }

// IsRoot reports whether p has no steps.
func (p Path) IsRoot() bool { return len(p.steps) == 0 }

// Len returns the number of steps.
func (p Path) Len() int { return len(p.steps) }

// Steps returns a copy of the step sequence.
func (p Path) Steps() []Step {
	if len(p.steps) == 0 {
		return nil
	}
	cp := make([]Step, len(p.steps))
	copy(cp, p.steps)
	return cp
}

// Join concatenates p with child: the result navigates p first, then child.
func (p Path) Join(child Path) Path {
	if len(p.steps) == 0 {
		return child
	}
	if len(child.steps) == 0 {
		return p
	}
	out := make([]Step, 0, len(p.steps)+len(child.steps))
	out = append(out, p.steps...)
	out = append(out, child.steps...)
	return Path{steps: out}
}

// Child extends p by one step.
func (p Path) Child(s Step) Path {
	out := make([]Step, 0, len(p.steps)+1)
	out = append(out, p.steps...)
	out = append(out, s)
	return Path{steps: out}
}

// Equal reports structural equality of the step sequences.
func (p Path) Equal(o Path) bool {
	if len(p.steps) != len(o.steps) {
		return false
	}
	for i := range p.steps {
		if p.steps[i] != o.steps[i] {
			return false
		}
	}
	return true
}

// Compare orders paths lexicographically by step, shorter prefixes first.
func (p Path) Compare(o Path) int {
	n := len(p.steps)
	if len(o.steps) < n {
		n = len(o.steps)
	}
	for i := 0; i < n; i++ {
		if c := p.steps[i].Compare(o.steps[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.steps) < len(o.steps):
		return -1
	case len(p.steps) > len(o.steps):
		return 1
	}
	return 0
}

// String renders the path as a JSON Pointer ("/" for the root). Rendering is
// for diagnostics only; the structural form is authoritative.
func (p Path) String() string {
	if len(p.steps) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range p.steps {
		b.WriteString(s.String())
	}
	return b.String()
}

// escapePointer applies RFC 6901 escaping to a reference token.
func escapePointer(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
