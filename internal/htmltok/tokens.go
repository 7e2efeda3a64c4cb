// Package htmltok implements the HTML tokenizer of spec.md §4.1: a
// state machine turning a byte/character stream into a lazy sequence of
// {StartTag, EndTag, Char, Eof} tokens.
//
// Grounded on the teacher's tokenizer/ package (MeKo-Christian/JustGoHTML):
// same State-enum-plus-transition-table shape, same lowercasing of tag
// and attribute names, the same SwitchTo(ScriptData) escape hatch the
// tree constructor uses for <script> content. Narrowed to exactly the
// states spec.md §4.1 names; the teacher's RCDATA/comment/DOCTYPE/
// foreign-content states are out of scope (full HTML5 conformance is an
// explicit Non-goal) and are not ported.
package htmltok

import "github.com/MeKo-Christian/JustGoHTML/internal/dom"

// Kind discriminates the four token variants spec.md §4.1 specifies.
type Kind int

const (
	StartTag Kind = iota
	EndTag
	Char
	Eof
)

// Token is the tagged union produced by the tokenizer.
type Token struct {
	Kind Kind

	// Tag name, for StartTag/EndTag.
	Name string
	// Attrs holds the ordered attributes of a StartTag token.
	Attrs []dom.Attribute
	// SelfClosing is true when a StartTag was written as <tag/>.
	SelfClosing bool
	// Char holds the single character of a Char token.
	Char rune
}
