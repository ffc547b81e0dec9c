package grow

import (
	"github.com/yaklabco/structsel/pkg/syntax"
	"github.com/yaklabco/structsel/pkg/textspan"
)

// AttributeNames grows each span out to its nearest enclosing markup
// element, then fans it into one span per attribute name on that
// element. Results across inputs are concatenated in input order.
//
// A span with no reachable markup element, an element with no attribute
// list, or a malformed attribute node contributes nothing; other spans
// in the batch are unaffected.
func (g *Grower) AttributeNames(tree *syntax.Tree, spans []textspan.Span) []textspan.Span {
	var out []textspan.Span
	for _, span := range spans {
		_, element, ok := g.until(tree, span, isMarkupElement)
		if !ok {
			g.logger.Debug("no markup element reachable, span skipped",
				"start", span.Start, "end", span.End)
			continue
		}
		out = append(out, g.attributeNames(tree, element)...)
	}
	return out
}

// attributeNames returns one whitespace-collapsed span per attribute
// name under the element's first attribute-list container.
func (g *Grower) attributeNames(tree *syntax.Tree, element *syntax.Node) []textspan.Span {
	list := syntax.FindFirstByClass(element, syntax.ClassAttributeList)
	if list == nil {
		return nil
	}

	var out []textspan.Span
	for attr := list.FirstChild; attr != nil; attr = attr.Next {
		if attr.Class != syntax.ClassAttribute {
			continue
		}
		name := attr.FirstChild
		if name == nil {
			// Should not occur for well-formed trees; skip rather
			// than abort the batch.
			g.logger.Debug("attribute without a name node skipped",
				"kind", attr.Kind, "start", attr.FullStart)
			continue
		}
		out = append(out, textspan.TrimSpace(tree.Source, g.NodeSpan(name)))
	}
	return out
}

func isMarkupElement(n *syntax.Node) bool {
	return n.Class == syntax.ClassMarkupElement
}
