package markdown_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/structsel/pkg/grow"
	"github.com/yaklabco/structsel/pkg/parser/markdown"
	"github.com/yaklabco/structsel/pkg/syntax"
	"github.com/yaklabco/structsel/pkg/textspan"
)

func TestParseRootSpansWholeSource(t *testing.T) {
	t.Parallel()

	source := []byte("# Title\n\nSome *text* here.\n")
	tree, err := markdown.New().Parse(context.Background(), "doc.md", source)
	require.NoError(t, err)

	assert.Equal(t, syntax.ClassDocument, tree.Root.Class)
	assert.Equal(t, 0, tree.Root.FullStart)
	assert.Equal(t, len(source), tree.Root.End)
}

func TestParseTreeIsNested(t *testing.T) {
	t.Parallel()

	source := []byte("# Title\n\n- one\n- two\n\n> quoted\n")
	tree, err := markdown.New().Parse(context.Background(), "doc.md", source)
	require.NoError(t, err)

	err = syntax.Walk(tree.Root, func(n *syntax.Node) error {
		for child := n.FirstChild; child != nil; child = child.Next {
			assert.True(t, n.RawSpan().Contains(child.RawSpan()),
				"%q %v does not contain %q %v", n.Kind, n.RawSpan(), child.Kind, child.RawSpan())
		}
		return nil
	})
	require.NoError(t, err)
}

func TestGrowthThroughInlineAndBlock(t *testing.T) {
	t.Parallel()

	source := []byte("# Title\n\nSome *text* here.\n")
	tree, err := markdown.New().Parse(context.Background(), "doc.md", source)
	require.NoError(t, err)

	g := grow.New()

	// Cursor inside the emphasized word.
	span := textspan.Span{Start: 17, End: 17}
	var seen []string
	for {
		grown, ok := g.Once(tree, span)
		if !ok {
			break
		}
		seen = append(seen, tree.Text(grown))
		span = grown
	}

	assert.Contains(t, seen, "text")
	assert.Contains(t, seen, "Some *text* here.")
}

func TestAttributeModeFindsNothing(t *testing.T) {
	t.Parallel()

	source := []byte("plain paragraph\n")
	tree, err := markdown.New().Parse(context.Background(), "doc.md", source)
	require.NoError(t, err)

	out := grow.New().AttributeNames(tree, []textspan.Span{{Start: 3, End: 3}})
	assert.Empty(t, out, "markdown has no markup elements to fan out")
}

func TestParseCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := markdown.New().Parse(ctx, "doc.md", []byte("# x\n"))
	assert.Error(t, err)
}
