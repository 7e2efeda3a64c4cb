package style

import (
	"strings"

	"github.com/MeKo-Christian/JustGoHTML/internal/cssom"
	"github.com/MeKo-Christian/JustGoHTML/internal/csstok"
	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
	"github.com/MeKo-Christian/JustGoHTML/internal/tracing"
)

// matches implements spec.md §4.5 stage 1's "matching is single-selector
// only": a type selector compares tag names, a class selector checks
// membership in the node's space-separated class list, an id selector
// compares the "id" attribute, and UnknownSelector never matches.
func matches(sel cssom.Selector, node *dom.Node) bool {
	if node.Kind != dom.ElementKind {
		return false
	}
	switch sel.Kind {
	case cssom.TypeSelector:
		return node.Tag.String() == sel.Name
	case cssom.ClassSelector:
		return hasClass(node, sel.Name)
	case cssom.IDSelector:
		v, ok := node.Attr("id")
		return ok && v == sel.Name
	default:
		return false
	}
}

func hasClass(node *dom.Node, name string) bool {
	v, ok := node.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}

// cascade implements spec.md §4.5 stage 1: walk the stylesheet in
// order, and for each rule whose selector matches node, apply its
// declarations into an accumulating Cascaded value. Later rules
// override earlier ones for the same property, matching "for each
// rule in stylesheet order... apply each declaration".
func cascade(sheet *cssom.StyleSheet, node *dom.Node) Cascaded {
	var c Cascaded
	if sheet == nil {
		return c
	}
	for _, rule := range sheet.Rules {
		if !matches(rule.Selector, node) {
			continue
		}
		for _, decl := range rule.Declarations {
			applyDeclaration(&c.props, decl)
		}
	}
	return c
}

// applyDeclaration implements spec.md §4.5 stage 1's recognized
// property list. Unrecognized properties, and the not-yet-supported
// `padding` shorthand/longhands, are logged and ignored.
func applyDeclaration(p *props, decl cssom.Declaration) {
	switch decl.Property {
	case "background-color":
		if c, ok := parseColor(decl.Value); ok {
			p.BackgroundColor = Some(c)
		}
	case "color":
		if c, ok := parseColor(decl.Value); ok {
			p.ForegroundColor = Some(c)
		}
	case "width":
		if n, ok := parseNumber(decl.Value); ok {
			p.Width = Some(n)
		}
	case "height":
		if n, ok := parseNumber(decl.Value); ok {
			p.Height = Some(n)
		}
	case "margin":
		if n, ok := parseNumber(decl.Value); ok {
			p.Margin.Top = Some(n)
			p.Margin.Right = Some(n)
			p.Margin.Bottom = Some(n)
			p.Margin.Left = Some(n)
		}
	case "margin-top":
		setSide(&p.Margin.Top, decl.Value)
	case "margin-right":
		setSide(&p.Margin.Right, decl.Value)
	case "margin-bottom":
		setSide(&p.Margin.Bottom, decl.Value)
	case "margin-left":
		setSide(&p.Margin.Left, decl.Value)
	case "padding", "padding-top", "padding-right", "padding-bottom", "padding-left":
		tracing.T().Infof("style: %q is not yet supported, ignoring", decl.Property)
	default:
		tracing.T().Infof("style: unknown property %q, ignoring", decl.Property)
	}
}

func setSide(side *Option[float64], tok csstok.Token) {
	if n, ok := parseNumber(tok); ok {
		*side = Some(n)
	}
}

// parseNumber resolves a cascade value token to a float64, per
// spec.md §4.5's "height (number), width (number), margin... (number)".
func parseNumber(tok csstok.Token) (float64, bool) {
	if tok.Kind != csstok.Number {
		return 0, false
	}
	return tok.Num, true
}
