// Package paint implements the painter of spec.md §4.6 "Paint": a
// pre-order walk of the layout tree producing an ordered list of
// display items.
//
// Grounded on original_source/core/src/renderer/layout/layout_object.rs's
// paint() method: the same block->Rect, inline-<a>->Link (with its text
// child pruned from the walk after emission), inline-<img>->Img
// (dropped silently if `src` is absent), text->Text mapping. The
// Box->display-item field shape (point/size/style alongside the
// triggering element) also matches iansmith-louis14's pkg/layout.Box
// (other_examples/b55cc906_iansmith-louis14__pkg-layout-types.go.go),
// narrowed to spec.md's four item kinds.
package paint

import (
	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
	"github.com/MeKo-Christian/JustGoHTML/internal/layout"
	"github.com/MeKo-Christian/JustGoHTML/internal/style"
)

// Kind discriminates the four display-item variants of spec.md §3.
type Kind int

const (
	RectItem Kind = iota
	TextItem
	LinkItem
	ImgItem
)

func (k Kind) String() string {
	switch k {
	case RectItem:
		return "Rect"
	case TextItem:
		return "Text"
	case LinkItem:
		return "Link"
	case ImgItem:
		return "Img"
	default:
		return "Unknown"
	}
}

// Item is a single paint-time primitive, per spec.md §3's DisplayItem.
// Only the fields relevant to Kind are populated, mirroring
// internal/dom.Node and internal/script/ast.Node's single-tagged-
// struct shape.
type Item struct {
	Kind        Kind
	Text        string
	Destination string
	Src         string
	Style       style.Computed
	Point       layout.Point
	Size        layout.Size // RectItem only
}

// Paint walks root in pre-order (tree order: a node's own item, then
// its children, then its next sibling) and returns the display items
// it emits, per spec.md §5's ordering guarantee "Display items are
// emitted in a pre-order walk of the layout tree; within a node, Rect
// is emitted before children are visited." A nil root yields no items.
func Paint(root *layout.Object) []Item {
	var items []Item
	walk(root, &items)
	return items
}

func walk(obj *layout.Object, items *[]Item) {
	if obj == nil {
		return
	}

	item, pruneChildren := paintObject(obj)
	if item != nil {
		*items = append(*items, *item)
	}
	if !pruneChildren {
		walk(obj.FirstChild(), items)
	}
	walk(obj.NextSibling(), items)
}

// paintObject implements spec.md §4.6 Paint's per-kind dispatch.
// pruneChildren reports whether the object's own subtree was already
// fully accounted for by the emitted item (true only for <a>, whose
// text child is folded into the Link item rather than painted again).
func paintObject(obj *layout.Object) (item *Item, pruneChildren bool) {
	if obj.Style.DisplayOr(style.DisplayBlock) == style.DisplayNone {
		return nil, false
	}

	switch obj.Kind {
	case layout.Block:
		if obj.DOMNode.Kind == dom.ElementKind {
			return &Item{Kind: RectItem, Style: obj.Style, Point: obj.Point, Size: obj.Size}, false
		}

	case layout.Inline:
		if obj.DOMNode.Kind == dom.ElementKind {
			switch obj.DOMNode.Tag {
			case dom.A:
				return paintLink(obj)
			case dom.Img:
				return paintImg(obj)
			}
		}

	case layout.Text:
		return &Item{Kind: TextItem, Text: obj.DOMNode.Text, Style: obj.Style, Point: obj.Point}, false
	}

	return nil, false
}

// paintLink implements spec.md §8's worked scenario: "<a href="http://x">go</a>:
// ... paint emits a Link{text:"go", destination:"http://x"}; the text
// child is not separately emitted." An <a> with a non-text first child
// paints nothing (spec.md does not define nested-markup links); an
// <a> with no children at all still emits a Link with empty text, per
// the same "child is pruned after emission" shape
// layout_object.rs's paint() uses (it defaults link_text to "" when
// first_child is None rather than refusing to paint).
func paintLink(obj *layout.Object) (*Item, bool) {
	child := obj.FirstChild()
	text := ""
	if child != nil {
		if child.DOMNode.Kind != dom.TextKind {
			return nil, false
		}
		text = child.DOMNode.Text
	}
	href, _ := obj.DOMNode.Attr("href")
	return &Item{Kind: LinkItem, Text: text, Destination: href, Style: obj.Style, Point: obj.Point}, true
}

// paintImg implements spec.md §8's boundary behavior: "<img> without
// src is dropped during paint (no Img item emitted)."
func paintImg(obj *layout.Object) (*Item, bool) {
	src, ok := obj.DOMNode.Attr("src")
	if !ok {
		return nil, false
	}
	return &Item{Kind: ImgItem, Src: src, Style: obj.Style, Point: obj.Point}, false
}
