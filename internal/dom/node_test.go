package dom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendChildWiresAllLinks(t *testing.T) {
	doc := NewDocument()
	html := NewElement(Html, nil)
	head := NewElement(Head, nil)
	body := NewElement(Body, nil)

	doc.AppendChild(html)
	html.AppendChild(head)
	html.AppendChild(body)

	require.Nil(t, doc.Parent())
	require.Equal(t, html, head.Parent())
	require.Equal(t, html, body.Parent())
	require.Equal(t, head, html.FirstChild())
	require.Equal(t, body, html.LastChild())
	require.Equal(t, body, head.NextSibling())
	require.Equal(t, head, body.PrevSibling())
}

func TestReplaceChildrenInstallsSingleChild(t *testing.T) {
	p := NewElement(P, []Attribute{{Name: "id", Value: "t"}})
	p.AppendChild(NewText("a"))
	p.ReplaceChildren(NewText("b"))

	require.Equal(t, "b", p.FirstChild().Text)
	require.Nil(t, p.FirstChild().NextSibling())
	require.Equal(t, p, p.FirstChild().Parent())
}

func TestGetElementByIDReturnsFirstInTreeOrder(t *testing.T) {
	doc := NewDocument()
	body := NewElement(Body, nil)
	first := NewElement(Div, []Attribute{{Name: "id", Value: "x"}})
	second := NewElement(Div, []Attribute{{Name: "id", Value: "x"}})
	doc.AppendChild(body)
	body.AppendChild(first)
	body.AppendChild(second)

	require.Equal(t, first, doc.GetElementByID("x"))
	require.Nil(t, doc.GetElementByID("missing"))
}

func TestAnchorWithHrefGetsActivationBehavior(t *testing.T) {
	withHref := NewElement(A, []Attribute{{Name: "href", Value: "http://x"}})
	withoutHref := NewElement(A, nil)

	require.Equal(t, FollowHyperlink, withHref.Activation)
	require.Equal(t, NoActivation, withoutHref.Activation)
}

func TestTextContentConcatenatesDescendants(t *testing.T) {
	p := NewElement(P, nil)
	div := NewElement(Div, nil)
	p.AppendChild(div)
	div.AppendChild(NewText("hello "))
	p.AppendChild(NewText("world"))

	require.Equal(t, "hello world", p.TextContent())
}

func TestLookupElementTagRejectsUnknownTags(t *testing.T) {
	_, ok := LookupElementTag("marquee")
	require.False(t, ok)

	tag, ok := LookupElementTag("h1")
	require.True(t, ok)
	require.True(t, tag.IsBlock())
}
