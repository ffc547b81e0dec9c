// Package grow implements structural selection growth: expanding a byte
// span to the smallest enclosing syntactic unit, iterating that step
// toward a target node class, and fanning a span out into the attribute
// names of its nearest markup element.
package grow

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/structsel/pkg/syntax"
	"github.com/yaklabco/structsel/pkg/textspan"
)

// DefaultMaxSteps bounds the iterative walk in Until. It is a safety
// bound against unexpected tree shapes, not a semantic constant.
const DefaultMaxSteps = 100

// Option configures a Grower.
type Option func(*Grower)

// WithMaxSteps sets the bound on iterative growth in Until.
// Non-positive values are ignored.
func WithMaxSteps(n int) Option {
	return func(g *Grower) {
		if n > 0 {
			g.maxSteps = n
		}
	}
}

// WithAdjustments sets the boundary-adjustment table applied when
// mapping nodes to spans. Nil means no adjustments.
func WithAdjustments(table AdjustTable) Option {
	return func(g *Grower) {
		g.adjust = table
	}
}

// WithLogger sets the logger used for skip diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(g *Grower) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Grower computes growth steps over a syntax tree.
// The zero options produce a grower with no boundary adjustments and
// the default step bound.
type Grower struct {
	maxSteps int
	adjust   AdjustTable
	logger   *log.Logger
}

// New creates a Grower with the given options.
func New(opts ...Option) *Grower {
	g := &Grower{
		maxSteps: DefaultMaxSteps,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NodeSpan converts a node into its candidate selectable span,
// applying any per-class boundary adjustment. The result is not yet
// whitespace collapsed.
func (g *Grower) NodeSpan(n *syntax.Node) textspan.Span {
	start, end := g.adjust.apply(n)
	return textspan.Span{Start: start, End: end}
}

// Once computes one growth step for the span: the innermost ancestor
// whose whitespace-collapsed span strictly extends the input while not
// retracting on either side. Returns ok=false when no ancestor can
// grow the span any further (already at the document root, or the span
// lies outside the tree).
func (g *Grower) Once(tree *syntax.Tree, span textspan.Span) (textspan.Span, bool) {
	grown, _, ok := g.once(tree, span)
	return grown, ok
}

// once is Once plus the accepted node, needed by Until and the
// attribute fan-out.
func (g *Grower) once(tree *syntax.Tree, span textspan.Span) (textspan.Span, *syntax.Node, bool) {
	path := syntax.PathTo(tree.Root, span)

	// Deepest first: prefer minimal growth.
	for i := len(path) - 1; i >= 0; i-- {
		node := path[i]
		candidate := textspan.TrimSpace(tree.Source, g.NodeSpan(node))
		if candidate.StrictlyExtends(span) {
			return candidate, node, true
		}
	}

	return textspan.Span{}, nil, false
}

// Many applies Once to each span independently, in input order. Spans
// that cannot grow are dropped from the result; one failing span never
// affects the rest of the batch.
func (g *Grower) Many(tree *syntax.Tree, spans []textspan.Span) []textspan.Span {
	var out []textspan.Span
	for _, span := range spans {
		grown, ok := g.Once(tree, span)
		if !ok {
			g.logger.Debug("span cannot grow, dropped from batch",
				"start", span.Start, "end", span.End)
			continue
		}
		out = append(out, grown)
	}
	return out
}

// Until repeatedly applies Once until the accepted node satisfies the
// predicate, growth stops, or the step bound is exceeded. The predicate
// is tested after each step. Returns ok=false on any of the failure
// paths so the caller can skip that span.
func (g *Grower) Until(tree *syntax.Tree, span textspan.Span, pred func(n *syntax.Node) bool) (textspan.Span, bool) {
	grown, _, ok := g.until(tree, span, pred)
	return grown, ok
}

func (g *Grower) until(tree *syntax.Tree, span textspan.Span, pred func(n *syntax.Node) bool) (textspan.Span, *syntax.Node, bool) {
	current := span
	for step := 0; step < g.maxSteps; step++ {
		grown, node, ok := g.once(tree, current)
		if !ok {
			return textspan.Span{}, nil, false
		}
		if pred(node) {
			return grown, node, true
		}
		current = grown
	}

	g.logger.Debug("growth step bound exceeded",
		"start", span.Start, "end", span.End, "max_steps", g.maxSteps)
	return textspan.Span{}, nil, false
}
