package grow

import (
	"github.com/yaklabco/structsel/pkg/syntax"
)

// Adjustment trims delimiter bytes off a node's raw span so the
// selectable text is the content only, not the syntax markers.
type Adjustment struct {
	TrimStart int
	TrimEnd   int
}

// AdjustTable maps node classes to boundary adjustments. Adjustments
// are a pure function of the node's class; they never inspect siblings.
type AdjustTable map[syntax.Class]Adjustment

// TemplateAdjustments trims template-literal delimiters: the backtick
// pair around a template string and the interpolation markers around a
// substitution span ("${" and "}"). Opt-in; by default growth selects
// the raw node span, delimiters included.
func TemplateAdjustments() AdjustTable {
	return AdjustTable{
		syntax.ClassTemplateString:       {TrimStart: 1, TrimEnd: 1},
		syntax.ClassTemplateSubstitution: {TrimStart: 2, TrimEnd: 1},
	}
}

// apply returns the node's span with any class adjustment applied.
// An adjustment that would invert the span is ignored.
func (t AdjustTable) apply(n *syntax.Node) (start, end int) {
	start, end = n.FullStart, n.End
	adj, ok := t[n.Class]
	if !ok {
		return start, end
	}
	if start+adj.TrimStart > end-adj.TrimEnd {
		return start, end
	}
	return start + adj.TrimStart, end - adj.TrimEnd
}
