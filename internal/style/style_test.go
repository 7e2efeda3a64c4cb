package style

import (
	"testing"

	"github.com/MeKo-Christian/JustGoHTML/internal/cssom"
	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
	"github.com/stretchr/testify/require"
)

func TestResolveAppliesCascadeOverDefaults(t *testing.T) {
	node := dom.NewElement(dom.Div, []dom.Attribute{{Name: "id", Value: "x"}})
	sheet := cssom.ParseStylesheet("#x{background-color:red;width:10;margin-left:3;}")

	c := Resolve(node, nil, sheet)

	require.Equal(t, colorKeywords["red"], c.BackgroundColorOr(White))
	require.Equal(t, 10.0, c.WidthOr(0))
	require.Equal(t, 3.0, c.MarginLeft())
	// height was never declared, so it falls back to the stage-2 default.
	require.Equal(t, 0.0, c.HeightOr(-1))
}

func TestResolveLaterRuleWinsForSameProperty(t *testing.T) {
	node := dom.NewElement(dom.Div, nil)
	sheet := cssom.ParseStylesheet("div{color:red;} div{color:blue;}")

	c := Resolve(node, nil, sheet)
	require.Equal(t, colorKeywords["blue"], c.ForegroundColorOr(Black))
}

func TestResolveDefaultsDisplayByTag(t *testing.T) {
	div := Resolve(dom.NewElement(dom.Div, nil), nil, &cssom.StyleSheet{})
	require.Equal(t, DisplayBlock, div.DisplayOr(DisplayInline))

	a := Resolve(dom.NewElement(dom.A, nil), nil, &cssom.StyleSheet{})
	require.Equal(t, DisplayInline, a.DisplayOr(DisplayBlock))
}

func TestResolveDefaultsFontSizeByHeadingTag(t *testing.T) {
	h1 := Resolve(dom.NewElement(dom.H1, nil), nil, &cssom.StyleSheet{})
	require.Equal(t, FontXXLarge, h1.FontSizeOr(FontMedium))

	h2 := Resolve(dom.NewElement(dom.H2, nil), nil, &cssom.StyleSheet{})
	require.Equal(t, FontXLarge, h2.FontSizeOr(FontMedium))

	p := Resolve(dom.NewElement(dom.P, nil), nil, &cssom.StyleSheet{})
	require.Equal(t, FontMedium, p.FontSizeOr(FontXXLarge))
}

func TestResolveDefaultsTextDecorationAndWhiteSpace(t *testing.T) {
	a := Resolve(dom.NewElement(dom.A, nil), nil, &cssom.StyleSheet{})
	require.Equal(t, DecorationUnderline, a.TextDecorationOr(DecorationNone))

	div := Resolve(dom.NewElement(dom.Div, nil), nil, &cssom.StyleSheet{})
	require.Equal(t, DecorationNone, div.TextDecorationOr(DecorationUnderline))

	pre := Resolve(dom.NewElement(dom.Pre, nil), nil, &cssom.StyleSheet{})
	require.Equal(t, WhiteSpacePre, pre.WhiteSpaceOr(WhiteSpaceNormal))
}

func TestResolveTextInheritsParentWholesale(t *testing.T) {
	parentNode := dom.NewElement(dom.Div, []dom.Attribute{{Name: "id", Value: "p"}})
	sheet := cssom.ParseStylesheet("#p{color:red;}")
	parent := Resolve(parentNode, nil, sheet)

	text := dom.NewText("hi")
	c := Resolve(text, &parent, sheet)

	require.Equal(t, parent, c)
}

func TestResolveUnknownPropertyIsIgnored(t *testing.T) {
	node := dom.NewElement(dom.Div, nil)
	sheet := cssom.ParseStylesheet("div{text-transform:uppercase;}")

	c := Resolve(node, nil, sheet)
	require.Equal(t, White, c.BackgroundColorOr(White))
}

func TestResolveClassAndIDSelectorsMatch(t *testing.T) {
	node := dom.NewElement(dom.Div, []dom.Attribute{
		{Name: "class", Value: "a b"},
		{Name: "id", Value: "main"},
	})
	byClass := cssom.ParseStylesheet(".a{color:red;}")
	require.Equal(t, colorKeywords["red"], Resolve(node, nil, byClass).ForegroundColorOr(Black))

	byID := cssom.ParseStylesheet("#main{color:blue;}")
	require.Equal(t, colorKeywords["blue"], Resolve(node, nil, byID).ForegroundColorOr(Black))
}

func TestColorStringRendersLowercaseHex(t *testing.T) {
	require.Equal(t, "#ff0000", colorKeywords["red"].String())
}

func TestParseHexColorRejectsMalformedHash(t *testing.T) {
	node := dom.NewElement(dom.Div, nil)
	sheet := cssom.ParseStylesheet("div{background-color:#zz0000;}")
	c := Resolve(node, nil, sheet)
	require.Equal(t, White, c.BackgroundColorOr(White))
}
