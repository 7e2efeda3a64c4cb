package layout

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/MeKo-Christian/JustGoHTML/internal/cssom"
	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
	"github.com/MeKo-Christian/JustGoHTML/internal/style"
)

// BuildFromDocument locates the <body> element in doc and builds a
// layout tree from it, per spec.md §4.6 Build: "Start from the DOM
// subtree rooted at <body>". Returns nil if the document has no body
// (e.g. empty input, per spec.md §8's boundary behavior).
func BuildFromDocument(doc *dom.Node, sheet *cssom.StyleSheet) *Object {
	body := doc.FirstElementByTag(dom.Body)
	if body == nil {
		return nil
	}
	return Build(body, nil, sheet)
}

// Build resolves node's computed style against sheet and parentStyle
// (see style.Resolve), and recursively constructs its subtree. It
// returns nil if node's resolved display is `none` — the caller is
// responsible for "adopting the first survivor" among node's siblings,
// which buildChildren below does by simply skipping nil results, per
// spec.md §4.6's "no display:none gaps" guarantee.
func Build(node *dom.Node, parentStyle *style.Computed, sheet *cssom.StyleSheet) *Object {
	if node == nil {
		return nil
	}
	resolved := style.Resolve(node, parentStyle, sheet)
	if resolved.DisplayOr(style.DisplayBlock) == style.DisplayNone {
		return nil
	}

	obj := &Object{DOMNode: node, Kind: kindForNode(node), Style: resolved}
	obj.buildChildren(sheet)
	return obj
}

// buildChildren walks node's DOM children in order, builds a layout
// object for each (dropping display:none survivors and their
// subtrees), and chains the survivors as obj's first-child/next-
// sibling list. Uses an arraylist as the accumulation buffer instead
// of a bare slice, matching npillmayer-tyse's dependency set (gods is
// one of its requires) the way internal/script/runtime's flat function
// table and internal/dom's children slice accessor do not need to.
func (obj *Object) buildChildren(sheet *cssom.StyleSheet) {
	survivors := arraylist.New()
	for c := obj.DOMNode.FirstChild(); c != nil; c = c.NextSibling() {
		if child := Build(c, &obj.Style, sheet); child != nil {
			survivors.Add(child)
		}
	}

	var prev *Object
	survivors.Each(func(_ int, value interface{}) {
		child := value.(*Object)
		if prev == nil {
			obj.firstChild = child
		} else {
			prev.nextSibling = child
		}
		prev = child
	})
}
