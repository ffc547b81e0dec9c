package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/structsel/pkg/syntax"
)

// attributesKind is the kind of the synthetic container grouping the
// attributes of one markup element. Tree-sitter keeps jsx_attribute
// nodes as direct children of the opening tag; the engine expects an
// attribute-list container, so conversion inserts one.
const attributesKind = "jsx_attributes"

// convertTree converts a sitter tree into the engine's syntax tree.
// FullStart includes leading trivia: the first child inherits its
// parent's full start, every later child starts where its previous
// sibling ended, and the root spans the whole source.
func convertTree(root *sitter.Node, sourceLen int) *syntax.Node {
	doc := syntax.NewDocument(sourceLen)
	doc.Kind = root.Type()
	convertChildren(root, doc)
	return doc
}

func convertChildren(from *sitter.Node, to *syntax.Node) {
	first, last := attributeRun(from)

	var list *syntax.Node
	prevEnd := to.FullStart

	for i := 0; i < int(from.ChildCount()); i++ {
		child := from.Child(i)
		node := convertNode(child, prevEnd)
		prevEnd = node.End

		if first >= 0 && i >= first && i <= last {
			if list == nil {
				list = syntax.NewNode(attributesKind, syntax.ClassAttributeList)
				list.FullStart = node.FullStart
				syntax.AppendChild(to, list)
			}
			list.End = node.End
			syntax.AppendChild(list, node)
			continue
		}
		syntax.AppendChild(to, node)
	}
}

func convertNode(from *sitter.Node, fullStart int) *syntax.Node {
	kind := from.Type()
	node := syntax.NewNode(kind, classify(from))
	node.FullStart = fullStart
	node.End = int(from.EndByte())

	// A node's end never precedes its full start; guard against
	// zero-width error nodes the grammar may emit.
	if node.End < node.FullStart {
		node.End = node.FullStart
	}

	convertChildren(from, node)
	return node
}

// attributeRun returns the child index range [first, last] covering the
// element's attributes, or (-1, -1) when the node has none. The range
// is contiguous for well-formed tags; anything sitting between two
// attributes (a spread expression, an error node) is folded into the
// container so sibling spans stay ordered.
func attributeRun(n *sitter.Node) (first, last int) {
	first, last = -1, -1
	if kind := n.Type(); kind != "jsx_opening_element" && kind != "jsx_self_closing_element" {
		return first, last
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "jsx_attribute" {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	return first, last
}
