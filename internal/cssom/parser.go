package cssom

import (
	"github.com/MeKo-Christian/JustGoHTML/internal/csstok"
	"github.com/MeKo-Christian/JustGoHTML/internal/tracing"
)

// Parser consumes a csstok token stream into a StyleSheet, per
// spec.md §4.3's consume_list_of_rules / consume_qualified_rule /
// consume_selector / consume_list_of_declarations.
type Parser struct {
	tok       *csstok.Tokenizer
	lookahead *csstok.Token
}

// New creates a parser over css.
func New(css string) *Parser {
	return &Parser{tok: csstok.New(css)}
}

// ParseStylesheet parses css into a StyleSheet. This is the
// parse_stylesheet entry point of spec.md §4.3.
func ParseStylesheet(css string) *StyleSheet {
	return New(css).parseStylesheet()
}

func (p *Parser) peek() csstok.Token {
	if p.lookahead == nil {
		t := p.tok.Next()
		p.lookahead = &t
	}
	return *p.lookahead
}

func (p *Parser) next() csstok.Token {
	t := p.peek()
	p.lookahead = nil
	return t
}

// parseStylesheet implements consume_list_of_rules: for each
// at-keyword, consume and discard an at-rule; otherwise consume a
// qualified rule and append it.
func (p *Parser) parseStylesheet() *StyleSheet {
	sheet := &StyleSheet{}
	for {
		t := p.peek()
		if t.Kind == csstok.EOF {
			return sheet
		}
		if t.Kind == csstok.AtKeyword {
			p.skipAtRule()
			continue
		}
		rule, ok := p.consumeQualifiedRule()
		if !ok {
			continue
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
}

// skipAtRule consumes an at-keyword and everything up to the matching
// ';' (no block) or the closing '}' of its block, tracking brace depth
// so nested blocks don't terminate the skip early.
func (p *Parser) skipAtRule() {
	p.next() // the at-keyword itself
	depth := 0
	for {
		t := p.next()
		switch t.Kind {
		case csstok.EOF:
			return
		case csstok.SemiColon:
			if depth == 0 {
				return
			}
		case csstok.OpenCurly:
			depth++
		case csstok.CloseCurly:
			depth--
			if depth <= 0 {
				return
			}
		}
	}
}

// consumeQualifiedRule implements spec.md §4.3's consume_qualified_rule:
// accumulate selector tokens up to the first '{', then consume the
// declaration block. Only the first simple selector is kept; the rest
// of the selector text (e.g. the ".intro" of "p.intro") is discarded.
// A ';', '}' or EOF before the '{' makes the rule malformed.
func (p *Parser) consumeQualifiedRule() (Rule, bool) {
	sel, ok := p.consumeSelector()
	if !ok {
		tracing.T().Infof("cssom: malformed rule, no selector found, skipped")
		p.recoverToNextRule()
		return Rule{}, false
	}
	for t := p.peek(); t.Kind != csstok.OpenCurly; t = p.peek() {
		if t.Kind == csstok.SemiColon || t.Kind == csstok.CloseCurly || t.Kind == csstok.EOF {
			tracing.T().Infof("cssom: malformed rule, expected '{' after selector, skipped")
			p.recoverToNextRule()
			return Rule{}, false
		}
		p.next()
	}
	p.next() // consume '{'
	decls := p.consumeListOfDeclarations()
	return Rule{Selector: sel, Declarations: decls}, true
}

// consumeSelector implements spec.md §4.3's consume_selector.
func (p *Parser) consumeSelector() (Selector, bool) {
	t := p.peek()
	switch t.Kind {
	case csstok.Hash:
		p.next()
		return Selector{Kind: IDSelector, Name: t.Ident}, true
	case csstok.Delim:
		if t.Delim == '.' {
			p.next()
			name := p.peek()
			if name.Kind != csstok.Ident {
				return Selector{}, false
			}
			p.next()
			return Selector{Kind: ClassSelector, Name: name.Ident}, true
		}
		return Selector{}, false
	case csstok.Ident:
		p.next()
		sel := Selector{Kind: TypeSelector, Name: t.Ident}
		if colon := p.peek(); colon.Kind == csstok.Colon {
			p.next()
			if pseudo := p.peek(); pseudo.Kind == csstok.Ident {
				p.next()
				sel.Pseudo = pseudo.Ident
			}
		}
		return sel, true
	case csstok.AtKeyword:
		p.next()
		p.skipToOpenCurlyKeepingIt()
		return Selector{Kind: UnknownSelector}, true
	default:
		return Selector{}, false
	}
}

// skipToOpenCurlyKeepingIt discards tokens until the next '{', leaving
// it unconsumed so consumeQualifiedRule's own '{' check still holds.
func (p *Parser) skipToOpenCurlyKeepingIt() {
	for {
		t := p.peek()
		if t.Kind == csstok.OpenCurly || t.Kind == csstok.EOF {
			return
		}
		p.next()
	}
}

// consumeListOfDeclarations implements spec.md §4.3's
// consume_list_of_declarations: each "ident:" begins a declaration
// whose value is a single component value; ';' separates; '}' ends.
// EOF inside the block returns what has been accumulated.
func (p *Parser) consumeListOfDeclarations() []Declaration {
	var decls []Declaration
	for {
		t := p.peek()
		switch t.Kind {
		case csstok.CloseCurly:
			p.next()
			return decls
		case csstok.EOF:
			tracing.T().Infof("cssom: EOF inside declaration block, returning accumulated declarations")
			return decls
		case csstok.SemiColon:
			p.next()
			continue
		case csstok.Ident:
			decl, ok := p.consumeDeclaration()
			if ok {
				decls = append(decls, decl)
			}
		default:
			tracing.T().Infof("cssom: unexpected token in declaration block, skipped")
			p.next()
		}
	}
}

func (p *Parser) consumeDeclaration() (Declaration, bool) {
	name := p.next() // ident
	if p.peek().Kind != csstok.Colon {
		tracing.T().Infof("cssom: declaration %q missing ':', skipped", name.Ident)
		p.recoverToDeclarationBoundary()
		return Declaration{}, false
	}
	p.next() // ':'
	value := p.next()
	return Declaration{Property: name.Ident, Value: value}, true
}

// recoverToDeclarationBoundary discards tokens until ';' or '}',
// without consuming the terminator, so the caller's loop handles it.
func (p *Parser) recoverToDeclarationBoundary() {
	for {
		t := p.peek()
		if t.Kind == csstok.SemiColon || t.Kind == csstok.CloseCurly || t.Kind == csstok.EOF {
			return
		}
		p.next()
	}
}

// recoverToNextRule discards tokens through the next '}' (or EOF) so
// a malformed rule doesn't desynchronize the rest of the stylesheet.
func (p *Parser) recoverToNextRule() {
	for {
		t := p.next()
		if t.Kind == csstok.CloseCurly || t.Kind == csstok.EOF {
			return
		}
	}
}
