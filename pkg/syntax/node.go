// Package syntax defines the parser-independent syntax tree consumed by
// the growth engine. Parser adapters build these trees; the engine only
// reads them. Trees are built fresh per operation and never mutated
// after construction.
package syntax

import "github.com/yaklabco/structsel/pkg/textspan"

// Class is the grammar category of a node as seen by the growth engine.
// Parser adapters map their dialect-specific kinds onto these classes;
// the raw kind string is kept on the node for display and diagnostics.
type Class uint8

const (
	// ClassUnknown is the zero value for nodes the adapter did not classify.
	ClassUnknown Class = iota

	ClassDocument
	ClassToken
	ClassExpression
	ClassStatement

	// Markup classes drive the attribute fan-out mode.
	ClassMarkupElement
	ClassAttributeList
	ClassAttribute

	// Template-literal classes drive the delimiter-trimming adjustments.
	ClassTemplateString
	ClassTemplateSubstitution
)

// String returns the class name without the Class prefix.
func (c Class) String() string {
	switch c {
	case ClassDocument:
		return "Document"
	case ClassToken:
		return "Token"
	case ClassExpression:
		return "Expression"
	case ClassStatement:
		return "Statement"
	case ClassMarkupElement:
		return "MarkupElement"
	case ClassAttributeList:
		return "AttributeList"
	case ClassAttribute:
		return "Attribute"
	case ClassTemplateString:
		return "TemplateString"
	case ClassTemplateSubstitution:
		return "TemplateSubstitution"
	default:
		return "Unknown"
	}
}

// Node represents a single node in the syntax tree.
// The parent exclusively owns its children; parent lookup is a derived
// relation (see PathTo), not a stored pointer.
type Node struct {
	// Kind is the dialect-specific grammar tag, e.g. "jsx_attribute".
	Kind string

	// Class is the engine-facing grammar category.
	Class Class

	// FullStart is the byte offset including leading trivia attached to
	// this node. End excludes trailing trivia.
	FullStart int
	End       int

	// Tree structure pointers.
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node
}

// RawSpan returns the node's unadjusted [FullStart, End) span.
func (n *Node) RawSpan() textspan.Span {
	return textspan.Span{Start: n.FullStart, End: n.End}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Tree pairs a root node with the source text it was parsed from.
// The root spans the whole source.
type Tree struct {
	Root   *Node
	Source []byte
}

// Text returns the source text covered by the span, clamped to bounds.
func (t *Tree) Text(s textspan.Span) string {
	s = s.Clamp(len(t.Source))
	return string(t.Source[s.Start:s.End])
}
