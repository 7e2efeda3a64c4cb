// Package style implements the style resolver of spec.md §4.5: three
// ordered stages (Cascade → Default → Inherit) that turn a DOM node plus
// a stylesheet into a Computed style for layout.
//
// Grounded on npillmayer-tyse's engine/dom/style package: an Option-valued
// property set (tyse's DimenT bit-flag option, here a generic Option[T])
// defaulted via a GetDefaultProperty-style table keyed on tag name
// (tyse's DisplayPropertyForHTMLNode), applied in cascade-then-default
// order (tyse's styler.go). Simplified relative to tyse's full CSS-unit
// DimenT system since spec.md's property set is much narrower (plain
// floats and a closed set of keyword enums, not arbitrary CSS units).
// Declared, Cascaded and Computed are distinct named types rather than
// aliases of a single struct, per spec.md §9's Open Question guidance
// ("model the pipeline as three distinct types... to make the
// defaulting-then-inheritance order enforceable by construction").
package style

import "github.com/MeKo-Christian/JustGoHTML/internal/dom"

// Option is a minimal optional value, standing in for tyse's bespoke
// DimenT bit-flag "is this set" encoding with a generic equivalent
// suited to spec.md's plain (non-CSS-unit) property values.
type Option[T any] struct {
	value T
	set   bool
}

// Some wraps a set value.
func Some[T any](v T) Option[T] { return Option[T]{value: v, set: true} }

// IsSet reports whether the option carries a value.
func (o Option[T]) IsSet() bool { return o.set }

// Value returns the wrapped value and whether it was set.
func (o Option[T]) Value() (T, bool) { return o.value, o.set }

// OrElse returns the wrapped value, or fallback if unset.
func (o Option[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// Display is the computed `display` keyword, per spec.md §4.5.
type Display int

const (
	DisplayBlock Display = iota
	DisplayInline
	DisplayNone
)

// FontSize is the computed `font-size` keyword, per spec.md §4.5.
type FontSize int

const (
	FontMedium FontSize = iota
	FontXLarge
	FontXXLarge
)

// TextDecoration is the computed `text-decoration` keyword.
type TextDecoration int

const (
	DecorationNone TextDecoration = iota
	DecorationUnderline
)

// WhiteSpace is the computed `white-space` keyword.
type WhiteSpace int

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpacePre
)

// Sides groups the four box-edge values spec.md §4.5 names for margin
// and padding.
type Sides struct {
	Top, Right, Bottom, Left Option[float64]
}

// props is the Option-valued property set shared by all three pipeline
// stages, per spec.md §4.1's Computed-style glossary entry. Every
// field is unset until its owning stage fills it in.
type props struct {
	BackgroundColor Option[Color]
	ForegroundColor Option[Color]
	Display         Option[Display]
	FontSize        Option[FontSize]
	Width           Option[float64]
	Height          Option[float64]
	Margin          Sides
	Padding         Sides
	TextDecoration  Option[TextDecoration]
	WhiteSpace      Option[WhiteSpace]
}

// Declared is a single declaration's worth of properties before it is
// folded into the cascade (spec.md §4.5 stage 1, one rule at a time).
type Declared struct{ props }

// Cascaded is the property set after every matching rule in stylesheet
// order has been folded in (spec.md §4.5, end of stage 1): some
// properties may still be unset.
type Cascaded struct{ props }

// Computed is the fully-resolved style spec.md §4.5 hands to layout:
// every property is set, by cascade, default or inheritance.
type Computed struct{ props }

// BackgroundColorOr returns the resolved background color, or fallback
// if it is unset (which does not happen after Resolve).
func (c Computed) BackgroundColorOr(fallback Color) Color {
	return c.props.BackgroundColor.OrElse(fallback)
}
func (c Computed) ForegroundColorOr(fallback Color) Color {
	return c.props.ForegroundColor.OrElse(fallback)
}
func (c Computed) DisplayOr(fallback Display) Display { return c.props.Display.OrElse(fallback) }
func (c Computed) FontSizeOr(fallback FontSize) FontSize {
	return c.props.FontSize.OrElse(fallback)
}
func (c Computed) WidthOr(fallback float64) float64   { return c.props.Width.OrElse(fallback) }
func (c Computed) HeightOr(fallback float64) float64  { return c.props.Height.OrElse(fallback) }
func (c Computed) MarginTop() float64                 { return c.props.Margin.Top.OrElse(0) }
func (c Computed) MarginRight() float64               { return c.props.Margin.Right.OrElse(0) }
func (c Computed) MarginBottom() float64              { return c.props.Margin.Bottom.OrElse(0) }
func (c Computed) MarginLeft() float64                { return c.props.Margin.Left.OrElse(0) }
func (c Computed) PaddingTop() float64                { return c.props.Padding.Top.OrElse(0) }
func (c Computed) PaddingRight() float64              { return c.props.Padding.Right.OrElse(0) }
func (c Computed) PaddingBottom() float64              { return c.props.Padding.Bottom.OrElse(0) }
func (c Computed) PaddingLeft() float64               { return c.props.Padding.Left.OrElse(0) }
func (c Computed) TextDecorationOr(fallback TextDecoration) TextDecoration {
	return c.props.TextDecoration.OrElse(fallback)
}
func (c Computed) WhiteSpaceOr(fallback WhiteSpace) WhiteSpace {
	return c.props.WhiteSpace.OrElse(fallback)
}

// isBlockElement reports whether node is a DOM element tag spec.md
// §4.5 stage 2 treats as block-level ("block element or body"); used
// by defaults.go. Text and Document nodes are never block.
func isBlockElement(node *dom.Node) bool {
	return node.Kind == dom.ElementKind && node.Tag.IsBlock()
}
