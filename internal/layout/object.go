// Package layout implements the layout builder and engine of spec.md
// §4.6: building a layout tree rooted at <body> from the DOM and a
// stylesheet, then sizing and positioning it in two further passes.
//
// Grounded on original_source/core/src/renderer/layout/layout_object.rs
// and layout_view.rs (the "toy browser" this spec is distilled from):
// the same Block/Inline/Text kind-by-DOM-node rule, the same
// build/size/position recursion shape, and the same paint-time
// pruning of an <a>'s text child. Re-expressed in the teacher's
// single-tagged-struct idiom (matching internal/dom.Node and
// internal/script/ast.Node) rather than the Rust Rc<RefCell<>> graph.
package layout

import (
	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
	"github.com/MeKo-Christian/JustGoHTML/internal/style"
)

// Kind discriminates the three layout-object variants of spec.md §3.
type Kind int

const (
	Block Kind = iota
	Inline
	Text
)

func (k Kind) String() string {
	switch k {
	case Block:
		return "Block"
	case Inline:
		return "Inline"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Point is a layout-space coordinate, per spec.md §6's "i64 pixels"
// wire format (kept as float64 internally, matching the Computed
// style's float fields it is built from; painters round at the
// display-item boundary).
type Point struct {
	X, Y float64
}

// Size is a layout object's content box dimensions.
type Size struct {
	Width, Height float64
}

// Object is a single node in the layout tree: a non-owning handle to
// its DOM node, a kind, a computed style, a position, a size, and
// owning first-child/next-sibling links (internal/dom.Node's
// owning/non-owning split applies here too, per spec.md §9).
type Object struct {
	DOMNode *dom.Node
	Kind    Kind
	Style   style.Computed
	Point   Point
	Size    Size

	firstChild  *Object
	nextSibling *Object
}

// FirstChild returns the owning first-child link, or nil.
func (o *Object) FirstChild() *Object { return o.firstChild }

// NextSibling returns the owning next-sibling link, or nil.
func (o *Object) NextSibling() *Object { return o.nextSibling }

// kindForNode implements spec.md §4.6 Build's "A DOM node whose
// element is a block element or <body> becomes a block layout object;
// Text becomes a text layout object; every other element becomes
// inline." A Document node should never reach here: the builder always
// starts from the <body> element (spec.md §4.6 "Start from the DOM
// subtree rooted at <body>"), mirroring
// layout_object.rs's layout_object_kind_by_node, which panics on
// NodeKind::Document for the same reason.
func kindForNode(node *dom.Node) Kind {
	switch node.Kind {
	case dom.DocumentKind:
		panic("layout: should not create a layout object for a Document node")
	case dom.ElementKind:
		if node.Tag.IsBlock() {
			return Block
		}
		return Inline
	default:
		return Text
	}
}
