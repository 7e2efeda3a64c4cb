// Package cssom implements the CSS parser of spec.md §4.3: a
// StyleSheet is an ordered list of qualified rules, each with one
// selector and an ordered list of declarations.
//
// Grounded on the other_examples port of lukehoban-browser's CSS
// parser (css-parser.go.go): same rule/selector/declaration shape, the
// same "skip unsupported at-rule by brace-depth tracking" recovery
// strategy, and the same descendant-combinator-free simple-selector
// model. Narrowed to the selector variants spec.md §4.3 names (type,
// class, id, unknown) and to a single component value per declaration
// (spec.md §9 names broader value grammars as future scope).
package cssom

import "github.com/MeKo-Christian/JustGoHTML/internal/csstok"

// SelectorKind discriminates the selector variants of spec.md §4.3.
type SelectorKind int

const (
	TypeSelector SelectorKind = iota
	ClassSelector
	IDSelector
	UnknownSelector
)

// Selector is a single simple selector. Name holds the tag name, class
// name or id, depending on Kind (it is empty for UnknownSelector);
// Pseudo carries an optional trailing ":pseudo" ident for a TypeSelector.
type Selector struct {
	Kind   SelectorKind
	Name   string
	Pseudo string
}

// Declaration is a property name paired with a single CSS token value,
// per spec.md §4.3 "current scope is one value per declaration".
type Declaration struct {
	Property string
	Value    csstok.Token
}

// Rule is a qualified rule: one selector and its declarations.
type Rule struct {
	Selector     Selector
	Declarations []Declaration
}

// StyleSheet is an ordered list of qualified rules. At-rules are
// recognized and discarded, per spec.md §4.3.
type StyleSheet struct {
	Rules []Rule
}
