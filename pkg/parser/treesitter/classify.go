package treesitter

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/structsel/pkg/syntax"
)

// classify maps a tree-sitter grammar kind onto the engine's node
// classes. Unrecognized interior nodes default to expressions, which
// gives them no special treatment beyond ordinary growth.
func classify(n *sitter.Node) syntax.Class {
	switch kind := n.Type(); kind {
	case "program":
		return syntax.ClassDocument

	case "jsx_element", "jsx_opening_element", "jsx_self_closing_element", "jsx_fragment":
		return syntax.ClassMarkupElement

	case "jsx_attribute":
		return syntax.ClassAttribute

	case "template_string":
		return syntax.ClassTemplateString

	case "template_substitution":
		return syntax.ClassTemplateSubstitution

	case "statement_block", "class_body":
		return syntax.ClassStatement

	default:
		if strings.HasSuffix(kind, "_statement") || strings.HasSuffix(kind, "_declaration") {
			return syntax.ClassStatement
		}
		if n.ChildCount() == 0 {
			return syntax.ClassToken
		}
		return syntax.ClassExpression
	}
}
