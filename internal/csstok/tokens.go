// Package csstok implements the CSS tokenizer of spec.md §4.3, narrowed
// to the token set the spec names: hash, delimiter, number, colon,
// semicolon, parens, curlies, identifier, string, at-keyword.
//
// Grounded structurally on npillmayer-tyse's CSSOM package design
// notes (engine/dom/cssom/doc.go) and, for the concrete tokenizer
// grammar, on the other_examples port of lukehoban's browser CSS
// tokenizer (css-tokenizer.go.go), which implements the same
// identifier/number/hash/delimiter token set over a byte cursor.
package csstok

// Kind discriminates the CSS token variants of spec.md §4.3.
type Kind int

const (
	Hash Kind = iota
	Delim
	Number
	Colon
	SemiColon
	OpenParen
	CloseParen
	OpenCurly
	CloseCurly
	Ident
	StringTok
	AtKeyword
	EOF
)

// Token is a single CSS token.
type Token struct {
	Kind  Kind
	Ident string  // Ident, AtKeyword (without '@'), Hash (without '#'), StringTok
	Num   float64 // Number
	Delim rune    // Delim
}
