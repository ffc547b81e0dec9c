// Package textspan defines half-open byte spans into document text and
// the whitespace normalization applied to candidate selections.
package textspan

import "unicode"

// Span is a half-open [Start, End) byte range into document text.
// A valid span satisfies 0 <= Start <= End <= len(text).
type Span struct {
	Start int
	End   int
}

// New creates a span, swapping the endpoints if they arrive reversed.
func New(start, end int) Span {
	if end < start {
		start, end = end, start
	}
	return Span{Start: start, End: end}
}

// Empty returns true if the span covers no text (a cursor position).
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns true if s fully contains other.
// An empty span sitting exactly on a boundary of s is contained.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Covers returns true if the byte offset lies within the span,
// counting both boundaries (so a cursor at either edge is covered).
func (s Span) Covers(offset int) bool {
	return offset >= s.Start && offset <= s.End
}

// StrictlyExtends returns true if s is a superset of inner that is
// strictly larger on at least one side without retracting on the other.
func (s Span) StrictlyExtends(inner Span) bool {
	growsLeft := s.Start < inner.Start && s.End >= inner.End
	growsRight := s.End > inner.End && s.Start <= inner.Start
	return growsLeft || growsRight
}

// Clamp restricts the span to [0, limit].
func (s Span) Clamp(limit int) Span {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > limit {
		s.End = limit
	}
	if s.Start > s.End {
		s.Start = s.End
	}
	return s
}

// Valid reports whether the span is well-formed for text of the given length.
func (s Span) Valid(length int) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= length
}

// TrimSpace shrinks the span so it neither starts nor ends on whitespace.
// It scans forward from Start and backward from End, never crossing the
// endpoints past each other. TrimSpace is idempotent.
func TrimSpace(text []byte, s Span) Span {
	s = s.Clamp(len(text))
	for s.Start < s.End && isSpace(text[s.Start]) {
		s.Start++
	}
	for s.End > s.Start && isSpace(text[s.End-1]) {
		s.End--
	}
	return s
}

func isSpace(b byte) bool {
	return unicode.IsSpace(rune(b))
}
