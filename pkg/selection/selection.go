// Package selection models host-editor selections and the LIFO history
// that makes structural growth reversible.
package selection

import (
	"github.com/yaklabco/structsel/pkg/textspan"
)

// Selection is one anchor/active offset pair as reported by the host.
// Anchor is where the selection started; Active is the moving end.
// Direction is preserved for reapplication but irrelevant to growth,
// which always operates on the ordered span.
// Selection is an immutable value type.
type Selection struct {
	Anchor int
	Active int
}

// New creates a selection from anchor to active.
func New(anchor, active int) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// Cursor creates a selection with no extent at the given offset.
func Cursor(offset int) Selection {
	return Selection{Anchor: offset, Active: offset}
}

// FromSpan creates a forward selection covering the span.
func FromSpan(s textspan.Span) Selection {
	return Selection{Anchor: s.Start, Active: s.End}
}

// Empty returns true if the selection has no extent.
func (s Selection) Empty() bool {
	return s.Anchor == s.Active
}

// Span returns the unordered extent of the selection as a span.
func (s Selection) Span() textspan.Span {
	return textspan.New(s.Anchor, s.Active)
}

// Set is the ordered sequence of all simultaneous selections in the
// host at one point in time. Order matters only for deterministic
// reapplication.
type Set []Selection

// NewSet creates a set from the given selections.
func NewSet(sels ...Selection) Set {
	return Set(sels)
}

// FromSpans creates a set of forward selections, one per span.
func FromSpans(spans []textspan.Span) Set {
	set := make(Set, 0, len(spans))
	for _, span := range spans {
		set = append(set, FromSpan(span))
	}
	return set
}

// Spans returns the ordered spans of all selections in the set.
func (s Set) Spans() []textspan.Span {
	spans := make([]textspan.Span, 0, len(s))
	for _, sel := range s {
		spans = append(spans, sel.Span())
	}
	return spans
}

// Equal reports pairwise equality of corresponding selections,
// including direction and order.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}
