package markdown

import (
	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/structsel/pkg/syntax"
)

// mapper converts a goldmark AST into the engine's syntax tree.
type mapper struct {
	content []byte
}

func newMapper(content []byte) *mapper {
	return &mapper{content: content}
}

// mapDocument converts the goldmark document into a syntax tree rooted
// at a document node spanning the whole source. Block children are
// assigned full starts so that leading trivia (blank lines, markers)
// attaches to the following block.
func (m *mapper) mapDocument(gmDoc ast.Node) *syntax.Node {
	doc := syntax.NewDocument(len(m.content))
	m.mapChildren(gmDoc, doc)
	assignFullStarts(doc)
	return doc
}

func (m *mapper) mapChildren(gmParent ast.Node, parent *syntax.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if node := m.mapNode(child); node != nil {
			syntax.AppendChild(parent, node)
		}
	}
}

// mapNode converts one goldmark node, or returns nil for nodes whose
// byte range cannot be resolved (they would be unselectable anyway).
func (m *mapper) mapNode(gmNode ast.Node) *syntax.Node {
	node := syntax.NewNode(gmNode.Kind().String(), classify(gmNode))
	m.mapChildren(gmNode, node)

	start, end := byteRange(gmNode)
	if start < 0 || end < 0 {
		// Fall back to the children's extent.
		start, end = childExtent(node)
	}
	if start < 0 || end < start {
		return nil
	}

	node.FullStart, node.End = start, end
	return node
}

func classify(gmNode ast.Node) syntax.Class {
	switch {
	case gmNode.Kind() == ast.KindDocument:
		return syntax.ClassDocument
	case gmNode.Kind() == ast.KindText, gmNode.Kind() == ast.KindString:
		return syntax.ClassToken
	case gmNode.Type() == ast.TypeBlock:
		return syntax.ClassStatement
	default:
		return syntax.ClassExpression
	}
}

// byteRange extracts the byte range for a goldmark node. Block nodes
// carry line segments; inline nodes carry text segments, possibly only
// on their children.
func byteRange(gmNode ast.Node) (int, int) {
	if gmNode.Type() == ast.TypeInline {
		return inlineByteRange(gmNode)
	}

	lines := gmNode.Lines()
	if lines.Len() == 0 {
		return -1, -1
	}
	return lines.At(0).Start, lines.At(lines.Len() - 1).Stop
}

func inlineByteRange(gmNode ast.Node) (int, int) {
	if t, ok := gmNode.(*ast.Text); ok {
		return t.Segment.Start, t.Segment.Stop
	}
	if raw, ok := gmNode.(*ast.RawHTML); ok {
		if raw.Segments.Len() == 0 {
			return -1, -1
		}
		return raw.Segments.At(0).Start, raw.Segments.At(raw.Segments.Len() - 1).Stop
	}

	start, end := -1, -1
	for child := gmNode.FirstChild(); child != nil; child = child.NextSibling() {
		cs, ce := inlineByteRange(child)
		if cs < 0 {
			continue
		}
		if start < 0 || cs < start {
			start = cs
		}
		if ce > end {
			end = ce
		}
	}
	return start, end
}

func childExtent(node *syntax.Node) (int, int) {
	start, end := -1, -1
	for child := node.FirstChild; child != nil; child = child.Next {
		if start < 0 || child.FullStart < start {
			start = child.FullStart
		}
		if child.End > end {
			end = child.End
		}
	}
	return start, end
}

// assignFullStarts attaches leading trivia to block nodes: the first
// block inherits its parent's full start, each later block starts where
// the previous sibling ended, so blank lines and block markers ("# ",
// "- ", "> ") belong to the block they introduce. Inline nodes keep
// their content spans: goldmark does not represent emphasis and link
// delimiters as nodes, and folding them into the neighboring text
// would make a grown selection start on a delimiter.
func assignFullStarts(parent *syntax.Node) {
	prevEnd := parent.FullStart
	for child := parent.FirstChild; child != nil; child = child.Next {
		if prevEnd < child.FullStart && child.Class == syntax.ClassStatement {
			child.FullStart = prevEnd
		}
		prevEnd = child.End
		assignFullStarts(child)
	}
}
