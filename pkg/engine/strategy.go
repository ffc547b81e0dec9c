package engine

import (
	"context"
	"fmt"

	"github.com/yaklabco/structsel/pkg/grow"
	"github.com/yaklabco/structsel/pkg/syntax"
	"github.com/yaklabco/structsel/pkg/textspan"
)

// Document is one host-document snapshot handed to a grow or shrink
// invocation. Path selects the grammar dialect; Language selects the
// strategy.
type Document struct {
	Path     string
	Language string
	Content  []byte
}

// Parser turns document text into a syntax tree. The tree is rebuilt
// fresh for every operation and discarded after use.
type Parser interface {
	Parse(ctx context.Context, path string, content []byte) (*syntax.Tree, error)
}

// Strategy is one grow capability for a language family.
// Implementations either grow structurally or fan selections out into
// attribute names, depending on the strategy's mode.
type Strategy interface {
	// Name identifies the strategy in logs and diagnostics.
	Name() string

	// Grow computes the next selection spans for the given inputs.
	// An empty result means no selection could grow; it is not an error.
	Grow(ctx context.Context, doc Document, spans []textspan.Span) ([]textspan.Span, error)
}

// Structural grows each selection to its smallest enclosing syntactic
// unit.
type Structural struct {
	name   string
	parser Parser
	grower *grow.Grower
}

// NewStructural creates a structural growth strategy over the parser.
func NewStructural(name string, parser Parser, grower *grow.Grower) *Structural {
	return &Structural{name: name, parser: parser, grower: grower}
}

// Name implements Strategy.
func (s *Structural) Name() string {
	return s.name
}

// Grow implements Strategy.
func (s *Structural) Grow(ctx context.Context, doc Document, spans []textspan.Span) ([]textspan.Span, error) {
	tree, err := s.parser.Parse(ctx, doc.Path, doc.Content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", doc.Path, err)
	}
	return s.grower.Many(tree, spans), nil
}

// AttributeFanOut grows each selection to its nearest markup element
// and fans it into one selection per attribute name.
type AttributeFanOut struct {
	name   string
	parser Parser
	grower *grow.Grower
}

// NewAttributeFanOut creates an attribute fan-out strategy over the parser.
func NewAttributeFanOut(name string, parser Parser, grower *grow.Grower) *AttributeFanOut {
	return &AttributeFanOut{name: name, parser: parser, grower: grower}
}

// Name implements Strategy.
func (s *AttributeFanOut) Name() string {
	return s.name
}

// Grow implements Strategy.
func (s *AttributeFanOut) Grow(ctx context.Context, doc Document, spans []textspan.Span) ([]textspan.Span, error) {
	tree, err := s.parser.Parse(ctx, doc.Path, doc.Content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", doc.Path, err)
	}
	return s.grower.AttributeNames(tree, spans), nil
}
