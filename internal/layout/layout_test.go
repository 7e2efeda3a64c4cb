package layout

import (
	"testing"

	"github.com/MeKo-Christian/JustGoHTML/internal/config"
	"github.com/MeKo-Christian/JustGoHTML/internal/cssom"
	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
	"github.com/MeKo-Christian/JustGoHTML/internal/htmltree"
	"github.com/stretchr/testify/require"
)

func TestBuildFromDocumentReturnsNilWithoutBody(t *testing.T) {
	doc := dom.NewDocument()
	require.Nil(t, BuildFromDocument(doc, &cssom.StyleSheet{}))
}

func TestBuildFromDocumentEmptyBody(t *testing.T) {
	doc := htmltree.Build("<html><head></head><body></body></html>")
	root := BuildFromDocument(doc, &cssom.StyleSheet{})
	require.NotNil(t, root)
	require.Equal(t, Block, root.Kind)
	require.Nil(t, root.FirstChild())
}

// spec.md §4.5 stage 1's recognized property list has no `display`
// entry, so a stylesheet can never drive an element to display:none
// in this model — only the defaulting stage assigns Display, and it
// only ever chooses block or inline (spec.md §4.5 stage 2). The "drop
// a display:none node and adopt the first surviving sibling" rule in
// buildChildren is unreachable through the public Build API as a
// result; this instead pins down the ordinary case it generalizes —
// every child surviving Build relinks into a single sibling chain in
// order — which buildChildren's nil-filtering would also preserve if
// a display:none child were ever present.
func TestBuildChildrenRelinksAllSurvivingChildrenInOrder(t *testing.T) {
	container := dom.NewElement(dom.Div, nil)
	first := dom.NewElement(dom.P, nil)
	first.AppendChild(dom.NewText("one"))
	second := dom.NewElement(dom.P, nil)
	second.AppendChild(dom.NewText("two"))
	container.AppendChild(first)
	container.AppendChild(second)

	obj := &Object{DOMNode: container, Kind: Block}
	obj.buildChildren(&cssom.StyleSheet{})

	firstChild := obj.FirstChild()
	require.NotNil(t, firstChild)
	require.Equal(t, dom.P, firstChild.DOMNode.Tag)
	secondChild := firstChild.NextSibling()
	require.NotNil(t, secondChild)
	require.Equal(t, dom.P, secondChild.DOMNode.Tag)
	require.Nil(t, secondChild.NextSibling())
}

func TestLayoutSizesBlockToContentWidth(t *testing.T) {
	doc := htmltree.Build("<html><body><p>hi</p></body></html>")
	root := BuildFromDocument(doc, &cssom.StyleSheet{})
	cfg := config.New()

	Layout(root, cfg)

	require.Equal(t, cfg.ContentWidth, root.Size.Width)
	// body's height is the sum of its children's heights; a single
	// line of "hi" at the default line height.
	require.Equal(t, float64(cfg.LineHeight), root.Size.Height)
}

func TestLayoutPositionsStackedBlockSiblings(t *testing.T) {
	doc := htmltree.Build("<html><body><p>a</p><p>b</p></body></html>")
	root := BuildFromDocument(doc, &cssom.StyleSheet{})
	cfg := config.New()
	Layout(root, cfg)

	first := root.FirstChild()
	second := first.NextSibling()
	require.Equal(t, 0.0, first.Point.Y)
	require.Equal(t, first.Size.Height, second.Point.Y)
}

func TestLayoutRootIsPinnedAtOrigin(t *testing.T) {
	doc := htmltree.Build("<html><body></body></html>")
	root := BuildFromDocument(doc, &cssom.StyleSheet{})
	Layout(root, config.New())

	require.Equal(t, Point{X: 0, Y: 0}, root.Point)
}

func TestTextWrapsWhenWiderThanContentWidth(t *testing.T) {
	doc := htmltree.Build("<html><body><p>hello world</p></body></html>")
	root := BuildFromDocument(doc, &cssom.StyleSheet{})
	cfg := config.New(config.WithContentWidth(20), config.WithFontMetrics(8, 16))
	Layout(root, cfg)

	text := root.FirstChild().FirstChild()
	require.Equal(t, Text, text.Kind)
	// "hello world" is 11 chars * 8px = 88px, wider than the 20px
	// content width, so it wraps onto multiple lines.
	require.Greater(t, text.Size.Height, float64(cfg.LineHeight))
	require.Equal(t, cfg.ContentWidth, text.Size.Width)
}

func TestPreTextSizesToExplicitLinesNotContentWidth(t *testing.T) {
	doc := htmltree.Build("<html><body><pre>ab\ncdefgh</pre></body></html>")
	root := BuildFromDocument(doc, &cssom.StyleSheet{})
	cfg := config.New(config.WithContentWidth(10), config.WithFontMetrics(8, 16))
	Layout(root, cfg)

	text := root.FirstChild().FirstChild()
	require.Equal(t, Text, text.Kind)
	// "cdefgh" (6 chars) at 8px/char is 48px, far past the 10px content
	// width, but pre must not reflow it: width tracks the widest literal
	// line, height is two lines regardless of width.
	require.Equal(t, float64(6*8), text.Size.Width)
	require.Equal(t, float64(2*16), text.Size.Height)
}

func TestKindForNodePanicsOnDocument(t *testing.T) {
	require.Panics(t, func() {
		kindForNode(dom.NewDocument())
	})
}

func TestKindForNodeInlineForNonBlockElements(t *testing.T) {
	require.Equal(t, Inline, kindForNode(dom.NewElement(dom.A, nil)))
	require.Equal(t, Block, kindForNode(dom.NewElement(dom.Div, nil)))
	require.Equal(t, Text, kindForNode(dom.NewText("x")))
}
