// Package markdown provides a Parser implementation for Markdown using
// the goldmark library. Markdown has no markup-element class here, so
// the attribute fan-out mode finds nothing to do; structural growth
// walks text, inline spans, blocks, and finally the document.
package markdown

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/structsel/pkg/syntax"
)

// Parser parses Markdown documents.
type Parser struct {
	md goldmark.Markdown
}

// New creates a goldmark-backed parser.
func New() *Parser {
	return &Parser{md: goldmark.New()}
}

// Parse converts Markdown text into a syntax tree. path is accepted
// for interface symmetry; Markdown has a single dialect here.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*syntax.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}
	_ = path

	reader := text.NewReader(content)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	root := newMapper(content).mapDocument(gmDoc)
	return &syntax.Tree{Root: root, Source: content}, nil
}
