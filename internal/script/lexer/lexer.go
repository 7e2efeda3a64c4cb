// Package lexer implements the script lexer of spec.md §4.4: a narrow
// EcmaScript-style token stream of identifiers, the three reserved
// keywords the spec names, single-character punctuators, double-quoted
// strings, and integer literals.
//
// Grounded on original_source/core/src/renderer/js/token.rs's
// JsLexer (reserved-word lookahead, single-rune punctuator set,
// digit-only number literal, no escape sequences in strings), adapted
// to Go idiom in the style of CWBudde-go-dws's token package
// (other_examples/28088f69_CWBudde-go-dws__pkg-token-token.go.go): a
// TokenKind enum plus a flat Token struct, rather than the Rust
// source's tagged-union Token enum.
package lexer

// Kind discriminates the token variants of spec.md §4.4.
type Kind int

const (
	Identifier Kind = iota
	Keyword
	Punctuator
	StringLiteral
	Number
)

// Token is a single script token.
type Token struct {
	Kind  Kind
	Ident string // Identifier, Keyword, StringLiteral
	Punct rune   // Punctuator
	Num   uint64 // Number
}

var reservedWords = map[string]bool{"var": true, "function": true, "return": true}

// Lexer produces a sequence of Tokens over a rune stream. Next
// returns ok=false once input is exhausted.
type Lexer struct {
	input []rune
	pos   int
}

// New creates a lexer over src.
func New(src string) *Lexer {
	return &Lexer{input: []rune(src)}
}

func (l *Lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos], true
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (l *Lexer) skipWhitespace() {
	for {
		r, ok := l.peekRune()
		if !ok || (r != ' ' && r != '\n' && r != '\t' && r != '\r') {
			return
		}
		l.pos++
	}
}

// checkReservedWord reports whether one of spec.md's three keywords
// begins at the current position, as a whole word (not a prefix of a
// longer identifier).
func (l *Lexer) checkReservedWord() (string, bool) {
	for word := range reservedWords {
		end := l.pos + len(word)
		if end > len(l.input) {
			continue
		}
		if string(l.input[l.pos:end]) != word {
			continue
		}
		if end < len(l.input) && isIdentPart(l.input[end]) {
			continue
		}
		return word, true
	}
	return "", false
}

func (l *Lexer) consumeNumber() uint64 {
	var n uint64
	for {
		r, ok := l.peekRune()
		if !ok || !isDigit(r) {
			return n
		}
		n = n*10 + uint64(r-'0')
		l.pos++
	}
}

func (l *Lexer) consumeString() string {
	l.pos++ // opening quote
	var out []rune
	for {
		r, ok := l.peekRune()
		if !ok {
			return string(out)
		}
		if r == '"' {
			l.pos++
			return string(out)
		}
		out = append(out, r)
		l.pos++
	}
}

func (l *Lexer) consumeIdentifier() string {
	var out []rune
	for {
		r, ok := l.peekRune()
		if !ok || !isIdentPart(r) {
			return string(out)
		}
		out = append(out, r)
		l.pos++
	}
}

const punctuators = "+-;=(){},."

func isPunctuator(r rune) bool {
	for _, p := range punctuators {
		if p == r {
			return true
		}
	}
	return false
}

// Next returns the next token, or ok=false at end of input.
func (l *Lexer) Next() (Token, bool) {
	l.skipWhitespace()
	r, ok := l.peekRune()
	if !ok {
		return Token{}, false
	}

	if word, ok := l.checkReservedWord(); ok {
		l.pos += len(word)
		return Token{Kind: Keyword, Ident: word}, true
	}

	switch {
	case isPunctuator(r):
		l.pos++
		return Token{Kind: Punctuator, Punct: r}, true
	case r == '"':
		return Token{Kind: StringLiteral, Ident: l.consumeString()}, true
	case isDigit(r):
		return Token{Kind: Number, Num: l.consumeNumber()}, true
	case isIdentStart(r):
		return Token{Kind: Identifier, Ident: l.consumeIdentifier()}, true
	default:
		panic("lexer: unsupported character in script source")
	}
}
