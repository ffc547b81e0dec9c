package grow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/structsel/pkg/grow"
	"github.com/yaklabco/structsel/pkg/syntax"
	"github.com/yaklabco/structsel/pkg/textspan"
)

// statementTree builds the tree for `const x = { a: 1, b: 2 };` with
// full starts including leading trivia:
//
//	document            [0,25)
//	  statement         [0,25)
//	    object          [10,24)
//	      pair "a: 1"   [11,16)  name [11,13)  value [13,16)
//	      pair "b: 2"   [17,22)  name [17,19)  value [19,22)
func statementTree(t *testing.T) *syntax.Tree {
	t.Helper()

	source := []byte("const x = { a: 1, b: 2 };")
	doc := syntax.NewDocument(len(source))

	stmt := syntax.NewNode("lexical_declaration", syntax.ClassStatement)
	stmt.FullStart, stmt.End = 0, 25
	syntax.AppendChild(doc, stmt)

	obj := syntax.NewNode("object", syntax.ClassExpression)
	obj.FullStart, obj.End = 10, 24
	syntax.AppendChild(stmt, obj)

	addPair := func(fullStart, end, nameEnd int) {
		pair := syntax.NewNode("pair", syntax.ClassExpression)
		pair.FullStart, pair.End = fullStart, end
		syntax.AppendChild(obj, pair)

		name := syntax.NewNode("property_identifier", syntax.ClassToken)
		name.FullStart, name.End = fullStart, nameEnd
		syntax.AppendChild(pair, name)

		value := syntax.NewNode("number", syntax.ClassToken)
		value.FullStart, value.End = nameEnd, end
		syntax.AppendChild(pair, value)
	}
	addPair(11, 16, 13)
	addPair(17, 22, 19)

	return &syntax.Tree{Root: doc, Source: source}
}

func TestOnceGrowthSequenceFromCursor(t *testing.T) {
	t.Parallel()

	tree := statementTree(t)
	g := grow.New()

	// Cursor immediately after `a`.
	span := textspan.Span{Start: 13, End: 13}

	want := []string{
		"a",
		"a: 1",
		"{ a: 1, b: 2 }",
		"const x = { a: 1, b: 2 };",
	}
	for _, text := range want {
		grown, ok := g.Once(tree, span)
		require.True(t, ok, "growth stopped before reaching %q", text)
		assert.Equal(t, text, tree.Text(grown))
		assert.True(t, grown.StrictlyExtends(span) || span.Empty(),
			"growth not monotonic: %v -> %v", span, grown)
		span = grown
	}

	// The full statement is the document; no further step exists.
	_, ok := g.Once(tree, span)
	assert.False(t, ok, "expected no growth past the document root")
}

func TestOnceMonotonic(t *testing.T) {
	t.Parallel()

	tree := statementTree(t)
	g := grow.New()

	for offset := 0; offset <= len(tree.Source); offset++ {
		span := textspan.Span{Start: offset, End: offset}
		for {
			grown, ok := g.Once(tree, span)
			if !ok {
				break
			}
			require.LessOrEqual(t, grown.Start, span.Start,
				"start retracted at offset %d", offset)
			require.GreaterOrEqual(t, grown.End, span.End,
				"end retracted at offset %d", offset)
			require.True(t, grown.Start < span.Start || grown.End > span.End,
				"no strict growth at offset %d", offset)
			span = grown
		}
	}
}

func TestOnceNeverStartsOrEndsOnWhitespace(t *testing.T) {
	t.Parallel()

	tree := statementTree(t)
	g := grow.New()

	span := textspan.Span{Start: 21, End: 21}
	for {
		grown, ok := g.Once(tree, span)
		if !ok {
			break
		}
		text := tree.Text(grown)
		require.NotEmpty(t, text)
		assert.NotContains(t, " \t\n", text[:1], "selection starts on whitespace: %q", text)
		assert.NotContains(t, " \t\n", text[len(text)-1:], "selection ends on whitespace: %q", text)
		span = grown
	}
}

func TestManyDropsFailuresIndependently(t *testing.T) {
	t.Parallel()

	tree := statementTree(t)
	g := grow.New()

	spans := []textspan.Span{
		{Start: 13, End: 13},  // grows to `a`
		{Start: 99, End: 120}, // out of range, dropped
		{Start: 18, End: 19},  // `b`, grows to `b: 2`
	}

	out := g.Many(tree, spans)
	require.Len(t, out, 2)
	assert.Equal(t, "a", tree.Text(out[0]))
	assert.Equal(t, "b: 2", tree.Text(out[1]))
}

func TestManyEmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()

	tree := statementTree(t)
	g := grow.New()

	out := g.Many(tree, []textspan.Span{{Start: 0, End: 25}})
	assert.Empty(t, out, "document-wide span has no growth step")
}

func TestUntilReachesTargetClass(t *testing.T) {
	t.Parallel()

	tree := statementTree(t)
	g := grow.New()

	grown, ok := g.Until(tree, textspan.Span{Start: 13, End: 13}, func(n *syntax.Node) bool {
		return n.Class == syntax.ClassStatement
	})
	require.True(t, ok)
	assert.Equal(t, "const x = { a: 1, b: 2 };", tree.Text(grown))
}

func TestUntilAlwaysFalsePredicateTerminates(t *testing.T) {
	t.Parallel()

	tree := statementTree(t)
	g := grow.New()

	steps := 0
	_, ok := g.Until(tree, textspan.Span{Start: 13, End: 13}, func(*syntax.Node) bool {
		steps++
		return false
	})

	assert.False(t, ok)
	assert.LessOrEqual(t, steps, grow.DefaultMaxSteps)
}

func TestUntilRespectsConfiguredBound(t *testing.T) {
	t.Parallel()

	tree := statementTree(t)
	g := grow.New(grow.WithMaxSteps(1))

	// Statement is three steps away from the cursor; a bound of one
	// step cannot reach it.
	_, ok := g.Until(tree, textspan.Span{Start: 13, End: 13}, func(n *syntax.Node) bool {
		return n.Class == syntax.ClassStatement
	})
	assert.False(t, ok)
}

func TestNodeSpanTemplateAdjustments(t *testing.T) {
	t.Parallel()

	source := []byte("`hi ${name}!`")
	tmpl := syntax.NewNode("template_string", syntax.ClassTemplateString)
	tmpl.FullStart, tmpl.End = 0, len(source)

	sub := syntax.NewNode("template_substitution", syntax.ClassTemplateSubstitution)
	sub.FullStart, sub.End = 4, 11 // ${name}

	t.Run("adjustments off by default", func(t *testing.T) {
		t.Parallel()
		g := grow.New()
		assert.Equal(t, textspan.Span{Start: 0, End: 13}, g.NodeSpan(tmpl))
		assert.Equal(t, textspan.Span{Start: 4, End: 11}, g.NodeSpan(sub))
	})

	t.Run("table trims delimiters", func(t *testing.T) {
		t.Parallel()
		g := grow.New(grow.WithAdjustments(grow.TemplateAdjustments()))
		assert.Equal(t, textspan.Span{Start: 1, End: 12}, g.NodeSpan(tmpl))
		assert.Equal(t, textspan.Span{Start: 6, End: 10}, g.NodeSpan(sub))
	})

	t.Run("adjustment never inverts a tiny span", func(t *testing.T) {
		t.Parallel()
		tiny := syntax.NewNode("template_string", syntax.ClassTemplateString)
		tiny.FullStart, tiny.End = 0, 1
		g := grow.New(grow.WithAdjustments(grow.TemplateAdjustments()))
		assert.Equal(t, textspan.Span{Start: 0, End: 1}, g.NodeSpan(tiny))
	})
}
