// Package style's resolver.go is the top-level entry point spec.md
// §4.5 describes as "for each DOM node, create a computed style by
// three stages in order". internal/layout's builder (spec.md §4.6)
// calls Resolve once per DOM node as it walks the tree, in the same
// pre-order the layout tree is built in, so a parent's just-computed
// Computed style is always available when its children are resolved.
package style

import (
	"github.com/MeKo-Christian/JustGoHTML/internal/cssom"
	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
)

// Resolve computes node's style against sheet. parent is the already-
// resolved Computed style of node's DOM parent, or nil at the root of
// the subtree being styled (the <body> element, per spec.md §4.6's
// Build algorithm); it is used only by stage 3, and only when node is
// a text node.
func Resolve(node *dom.Node, parent *Computed, sheet *cssom.StyleSheet) Computed {
	if node.Kind == dom.TextKind && parent != nil {
		return inheritForText(*parent)
	}
	cascaded := cascade(sheet, node)
	return applyDefaults(cascaded, node)
}
