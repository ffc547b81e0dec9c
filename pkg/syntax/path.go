package syntax

import "github.com/yaklabco/structsel/pkg/textspan"

// PathTo returns the chain of ancestor nodes whose spans all contain
// the given span, ordered shallow to deep (root first, innermost last).
//
// A node is included, and its children examined, only while the span
// lies within [FullStart, End]; the moment a node fails containment its
// whole subtree is pruned. Containment is monotonically nested in a
// well-formed tree, so the result is exactly one root-to-innermost
// chain. An empty span (a cursor) uses the same inequalities, so a
// cursor sitting exactly on a node boundary is included in that node.
//
// Returns nil if the span lies outside the root entirely.
func PathTo(root *Node, span textspan.Span) []*Node {
	if root == nil || !root.RawSpan().Contains(span) {
		return nil
	}

	var path []*Node
	node := root
	for node != nil {
		path = append(path, node)

		var next *Node
		for child := node.FirstChild; child != nil; child = child.Next {
			if child.RawSpan().Contains(span) {
				next = child
				break
			}
		}
		node = next
	}

	return path
}
