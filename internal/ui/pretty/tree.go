package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/structsel/pkg/syntax"
)

// FormatTree renders the syntax tree with indentation, one node per
// line: kind, class, and span.
func (s *Styles) FormatTree(tree *syntax.Tree) string {
	var builder strings.Builder
	s.formatNode(&builder, tree.Root, 0)
	return builder.String()
}

func (s *Styles) formatNode(builder *strings.Builder, n *syntax.Node, depth int) {
	builder.WriteString(strings.Repeat("  ", depth))
	builder.WriteString(s.TreeKind.Render(n.Kind))
	builder.WriteString(" " + s.TreeClass.Render(n.Class.String()))
	builder.WriteString(s.Dim.Render(fmt.Sprintf(" [%d-%d)", n.FullStart, n.End)))
	builder.WriteString("\n")

	for child := n.FirstChild; child != nil; child = child.Next {
		s.formatNode(builder, child, depth+1)
	}
}
