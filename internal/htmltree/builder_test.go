package htmltree

import (
	"testing"

	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
	"github.com/stretchr/testify/require"
)

func TestEmptyInputProducesDocumentWithNoChildren(t *testing.T) {
	doc := Build("")
	require.Nil(t, doc.FirstChild())
}

func TestMinimalDocumentBuildsHtmlHeadBody(t *testing.T) {
	doc := Build("<html><head></head><body></body></html>")
	html := doc.FirstChild()
	require.NotNil(t, html)
	require.Equal(t, dom.Html, html.Tag)
	require.Equal(t, dom.Head, html.FirstChild().Tag)
	require.Equal(t, dom.Body, html.LastChild().Tag)
}

func TestImplicitHtmlHeadBodyAreSynthesized(t *testing.T) {
	doc := Build("<p>hi</p>")
	html := doc.FirstChild()
	require.Equal(t, dom.Html, html.Tag)
	body := html.FirstElementByTag(dom.Body)
	require.NotNil(t, body)
	p := body.FirstChild()
	require.Equal(t, dom.P, p.Tag)
	require.Equal(t, "hi", p.FirstChild().Text)
}

func TestUnknownTagIsSkippedNotInserted(t *testing.T) {
	doc := Build("<html><body><marquee>x</marquee></body></html>")
	body := doc.FirstChild().FirstElementByTag(dom.Body)
	// The unknown <marquee> element itself must not appear in the tree;
	// its text content still lands under body.
	require.Equal(t, "x", body.TextContent())
	require.Equal(t, dom.TextKind, body.FirstChild().Kind)
}

func TestStrayEndTagIsIgnored(t *testing.T) {
	doc := Build("<html><body></div>hi</body></html>")
	body := doc.FirstChild().FirstElementByTag(dom.Body)
	require.Equal(t, "hi", body.TextContent())
}

func TestScriptContentIsCapturedAsRawText(t *testing.T) {
	doc := Build(`<html><head><script>var x = "<p>not html</p>";</script></head></html>`)
	script := doc.FirstChild().FirstElementByTag(dom.ScriptTag)
	require.NotNil(t, script)
	require.Equal(t, `var x = "<p>not html</p>";`, script.TextContent())
}

func TestAnchorWithHrefActivationBehaviorSurvivesTreeConstruction(t *testing.T) {
	doc := Build(`<body><a href="http://x">go</a></body>`)
	a := doc.FirstChild().FirstElementByTag(dom.A)
	require.Equal(t, dom.FollowHyperlink, a.Activation)
}

func TestImgIsPoppedImmediately(t *testing.T) {
	doc := Build(`<body><img src="x.png"><p>after</p></body>`)
	body := doc.FirstChild().FirstElementByTag(dom.Body)
	img := body.FirstChild()
	require.Equal(t, dom.Img, img.Tag)
	p := img.NextSibling()
	require.Equal(t, dom.P, p.Tag)
}

func TestNestedPImplicitlyClosesTheOpenOne(t *testing.T) {
	doc := Build(`<body><p>one<p>two</p></body>`)
	body := doc.FirstChild().FirstElementByTag(dom.Body)

	first := body.FirstChild()
	require.Equal(t, dom.P, first.Tag)
	require.Equal(t, "one", first.TextContent())

	second := first.NextSibling()
	require.NotNil(t, second)
	require.Equal(t, dom.P, second.Tag)
	require.Equal(t, "two", second.TextContent())
	require.Nil(t, second.NextSibling())
}
