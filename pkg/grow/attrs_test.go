package grow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/structsel/pkg/grow"
	"github.com/yaklabco/structsel/pkg/syntax"
	"github.com/yaklabco/structsel/pkg/textspan"
)

// elementTree builds the tree for `<Foo bar={1} baz="x" />`:
//
//	document                    [0,23)
//	  expression                [0,23)
//	    markup element          [0,23)
//	      tag name "Foo"        [1,4)
//	      attribute list        [4,20)
//	        attribute bar={1}   [4,12)   name [4,8)
//	        attribute baz="x"   [12,20)  name [12,16)
func elementTree(t *testing.T) *syntax.Tree {
	t.Helper()

	source := []byte(`<Foo bar={1} baz="x" />`)
	doc := syntax.NewDocument(len(source))

	expr := syntax.NewNode("expression_statement", syntax.ClassStatement)
	expr.FullStart, expr.End = 0, 23
	syntax.AppendChild(doc, expr)

	element := syntax.NewNode("jsx_self_closing_element", syntax.ClassMarkupElement)
	element.FullStart, element.End = 0, 23
	syntax.AppendChild(expr, element)

	tag := syntax.NewNode("identifier", syntax.ClassToken)
	tag.FullStart, tag.End = 1, 4
	syntax.AppendChild(element, tag)

	list := syntax.NewNode("jsx_attributes", syntax.ClassAttributeList)
	list.FullStart, list.End = 4, 20
	syntax.AppendChild(element, list)

	addAttr := func(fullStart, end, nameEnd, valueEnd int) {
		attr := syntax.NewNode("jsx_attribute", syntax.ClassAttribute)
		attr.FullStart, attr.End = fullStart, end
		syntax.AppendChild(list, attr)

		name := syntax.NewNode("property_identifier", syntax.ClassToken)
		name.FullStart, name.End = fullStart, nameEnd
		syntax.AppendChild(attr, name)

		value := syntax.NewNode("jsx_expression", syntax.ClassExpression)
		value.FullStart, value.End = nameEnd, valueEnd
		syntax.AppendChild(attr, value)
	}
	addAttr(4, 12, 8, 12)
	addAttr(12, 20, 16, 20)

	return &syntax.Tree{Root: doc, Source: source}
}

func TestAttributeNamesFanOut(t *testing.T) {
	t.Parallel()

	tree := elementTree(t)
	g := grow.New()

	// Cursor inside bar={1}.
	out := g.AttributeNames(tree, []textspan.Span{{Start: 10, End: 10}})

	require.Len(t, out, 2)
	assert.Equal(t, "bar", tree.Text(out[0]))
	assert.Equal(t, "baz", tree.Text(out[1]))
}

func TestAttributeNamesNoElementReachable(t *testing.T) {
	t.Parallel()

	tree := statementTree(t)
	g := grow.New()

	out := g.AttributeNames(tree, []textspan.Span{{Start: 13, End: 13}})
	assert.Empty(t, out)
}

func TestAttributeNamesElementWithoutAttributeList(t *testing.T) {
	t.Parallel()

	source := []byte("<Foo />")
	doc := syntax.NewDocument(len(source))
	element := syntax.NewNode("jsx_self_closing_element", syntax.ClassMarkupElement)
	element.FullStart, element.End = 0, 7
	syntax.AppendChild(doc, element)
	tag := syntax.NewNode("identifier", syntax.ClassToken)
	tag.FullStart, tag.End = 1, 4
	syntax.AppendChild(element, tag)
	tree := &syntax.Tree{Root: doc, Source: source}

	out := grow.New().AttributeNames(tree, []textspan.Span{{Start: 2, End: 2}})
	assert.Empty(t, out)
}

func TestAttributeNamesSkipsMalformedAttribute(t *testing.T) {
	t.Parallel()

	tree := elementTree(t)

	// Degenerate attribute with no children, inserted between the two
	// well-formed ones.
	list := syntax.FindFirstByClass(tree.Root, syntax.ClassAttributeList)
	require.NotNil(t, list)
	broken := syntax.NewNode("jsx_attribute", syntax.ClassAttribute)
	broken.FullStart, broken.End = 20, 20
	syntax.AppendChild(list, broken)

	g := grow.New()
	out := g.AttributeNames(tree, []textspan.Span{{Start: 10, End: 10}})

	require.Len(t, out, 2)
	assert.Equal(t, "bar", tree.Text(out[0]))
	assert.Equal(t, "baz", tree.Text(out[1]))
}

func TestAttributeNamesBatchConcatenatesInInputOrder(t *testing.T) {
	t.Parallel()

	tree := elementTree(t)
	g := grow.New()

	out := g.AttributeNames(tree, []textspan.Span{
		{Start: 18, End: 18}, // inside baz="x"
		{Start: 99, End: 99}, // out of range, contributes nothing
		{Start: 6, End: 6},   // inside bar
	})

	require.Len(t, out, 4)
	assert.Equal(t, "bar", tree.Text(out[0]))
	assert.Equal(t, "baz", tree.Text(out[1]))
	assert.Equal(t, "bar", tree.Text(out[2]))
	assert.Equal(t, "baz", tree.Text(out[3]))
}
