// Package htmlserialize serializes a DOM tree back to HTML source, the
// operation spec.md §4.7's page orchestrator needs for its
// DOM-mutation re-run loop ("serialize the current DOM back to HTML,
// discard stylesheet and script side-effects, and repeat").
//
// Grounded on original_source/core/src/renderer/html/html_builder.rs's
// dom_to_html: an open-tag/children/close-tag recursion over the same
// first-child/next-sibling shape, re-expressed in the teacher's
// serialize/ package idiom (a strings.Builder accumulator driven by a
// small switch over node kind, rather than the teacher's deeper
// Options/pretty-printing machinery, which spec.md has no use for: the
// re-run loop needs a faithful round-trip, not a pretty-printer).
package htmlserialize

import (
	"strings"

	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
)

// ToHTML serializes node and its descendants, depth-first, the same
// shape the HTML tokenizer consumes: an element's open tag followed by
// its attributes, its children, and its close tag; a text node's raw
// character data; nothing for the Document node itself.
func ToHTML(node *dom.Node) string {
	var sb strings.Builder
	writeNode(&sb, node)
	return sb.String()
}

func writeNode(sb *strings.Builder, node *dom.Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case dom.ElementKind:
		sb.WriteByte('<')
		sb.WriteString(node.Tag.String())
		for _, a := range node.Attrs {
			sb.WriteByte(' ')
			sb.WriteString(a.Name)
			sb.WriteByte('=')
			sb.WriteByte('"')
			sb.WriteString(a.Value)
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
	case dom.TextKind:
		sb.WriteString(node.Text)
	}

	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		writeNode(sb, c)
	}

	if node.Kind == dom.ElementKind {
		sb.WriteString("</")
		sb.WriteString(node.Tag.String())
		sb.WriteByte('>')
	}
}
