package style

import "github.com/MeKo-Christian/JustGoHTML/internal/dom"

// applyDefaults implements spec.md §4.5 stage 2: fill in any property
// the cascade stage left unset. Grounded on npillmayer-tyse's
// GetDefaultProperty / DisplayPropertyForHTMLNode pattern
// (engine/dom/style/defaults.go), narrowed to spec.md's exact
// defaulting table.
func applyDefaults(c Cascaded, node *dom.Node) Computed {
	p := c.props

	if !p.BackgroundColor.IsSet() {
		p.BackgroundColor = Some(White)
	}
	if !p.ForegroundColor.IsSet() {
		p.ForegroundColor = Some(Black)
	}
	if !p.Display.IsSet() {
		p.Display = Some(defaultDisplay(node))
	}
	if !p.Width.IsSet() {
		p.Width = Some(0)
	}
	if !p.Height.IsSet() {
		p.Height = Some(0)
	}
	zeroUnsetSides(&p.Margin)
	zeroUnsetSides(&p.Padding)
	if !p.FontSize.IsSet() {
		p.FontSize = Some(defaultFontSize(node))
	}
	if !p.TextDecoration.IsSet() {
		p.TextDecoration = Some(defaultTextDecoration(node))
	}
	if !p.WhiteSpace.IsSet() {
		p.WhiteSpace = Some(defaultWhiteSpace(node))
	}

	return Computed{props: p}
}

func zeroUnsetSides(s *Sides) {
	if !s.Top.IsSet() {
		s.Top = Some(0)
	}
	if !s.Right.IsSet() {
		s.Right = Some(0)
	}
	if !s.Bottom.IsSet() {
		s.Bottom = Some(0)
	}
	if !s.Left.IsSet() {
		s.Left = Some(0)
	}
}

// defaultDisplay implements "display = block if element is a block
// element or body else inline (text is inline)".
func defaultDisplay(node *dom.Node) Display {
	if node.Kind == dom.TextKind {
		return DisplayInline
	}
	if isBlockElement(node) {
		return DisplayBlock
	}
	return DisplayInline
}

// defaultFontSize implements "font-size depends on tag (h1 -> xxlarge,
// h2 -> xlarge, else medium)".
func defaultFontSize(node *dom.Node) FontSize {
	if node.Kind != dom.ElementKind {
		return FontMedium
	}
	switch node.Tag {
	case dom.H1:
		return FontXXLarge
	case dom.H2:
		return FontXLarge
	default:
		return FontMedium
	}
}

// defaultTextDecoration implements "underline iff element is <a> else none".
func defaultTextDecoration(node *dom.Node) TextDecoration {
	if node.Kind == dom.ElementKind && node.Tag == dom.A {
		return DecorationUnderline
	}
	return DecorationNone
}

// defaultWhiteSpace implements "pre iff element is <pre> else normal".
func defaultWhiteSpace(node *dom.Node) WhiteSpace {
	if node.Kind == dom.ElementKind && node.Tag == dom.Pre {
		return WhiteSpacePre
	}
	return WhiteSpaceNormal
}
