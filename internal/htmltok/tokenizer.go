package htmltok

import (
	"strings"

	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
	"github.com/MeKo-Christian/JustGoHTML/internal/tracing"
)

// Tokenizer turns a character stream into a lazy token sequence, as
// specified in spec.md §4.1. Errors are never fatal: malformed input
// yields best-effort tokens and a Warning trace, matching spec.md §7's
// propagation policy for tokenizer-level errors.
type Tokenizer struct {
	input []rune
	pos   int
	state State

	tagName     []rune
	isEndTag    bool
	attrs       []dom.Attribute
	selfClosing bool

	curAttrName  []rune
	curAttrValue []rune

	lastStartTagName string
	tempBuffer       []rune
	tempPos          int

	eofEmitted bool
}

// New creates a tokenizer over html, starting in the Data state.
func New(html string) *Tokenizer {
	return &Tokenizer{input: []rune(html), state: Data}
}

// SwitchTo forces the tokenizer into the given state. The tree
// constructor calls this with ScriptData right after opening a <script>
// or <style> element, per spec.md §4.2.
func (t *Tokenizer) SwitchTo(s State) {
	t.state = s
}

func (t *Tokenizer) next() (rune, bool) {
	if t.pos >= len(t.input) {
		return 0, false
	}
	r := t.input[t.pos]
	t.pos++
	return r, true
}

func (t *Tokenizer) reconsume() {
	if t.pos > 0 {
		t.pos--
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\f' || r == '\r'
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func (t *Tokenizer) beginTag(isEnd bool, first rune) {
	t.isEndTag = isEnd
	t.tagName = []rune{lower(first)}
	t.attrs = nil
	t.selfClosing = false
}

func (t *Tokenizer) finalizeAttr() {
	if len(t.curAttrName) == 0 {
		return
	}
	name := string(t.curAttrName)
	for _, a := range t.attrs {
		if a.Name == name {
			// Duplicate attribute: HTML5 keeps the first; silently drop.
			t.curAttrName, t.curAttrValue = nil, nil
			return
		}
	}
	t.attrs = append(t.attrs, dom.Attribute{Name: name, Value: string(t.curAttrValue)})
	t.curAttrName, t.curAttrValue = nil, nil
}

func (t *Tokenizer) emitTagToken() Token {
	name := string(t.tagName)
	if !t.isEndTag {
		t.lastStartTagName = name
		return Token{Kind: StartTag, Name: name, Attrs: t.attrs, SelfClosing: t.selfClosing}
	}
	return Token{Kind: EndTag, Name: name}
}

// Next returns the next token in the stream. After the first Eof token,
// every subsequent call returns Eof again.
func (t *Tokenizer) Next() Token { //nolint:gocyclo
	if t.eofEmitted {
		return Token{Kind: Eof}
	}

	for {
		switch t.state {
		case Data:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			if r == '<' {
				t.state = TagOpen
				continue
			}
			return Token{Kind: Char, Char: r}

		case TagOpen:
			r, ok := t.next()
			if !ok {
				tracing.T().Infof("html tokenizer: eof-before-tag-name")
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			switch {
			case r == '/':
				t.state = EndTagOpen
			case isASCIILetter(r):
				t.beginTag(false, r)
				t.state = TagName
			default:
				tracing.T().Infof("html tokenizer: invalid-first-character-of-tag-name %q", r)
				t.state = Data
				return Token{Kind: Char, Char: '<'}
			}

		case EndTagOpen:
			r, ok := t.next()
			if !ok {
				tracing.T().Infof("html tokenizer: eof-before-tag-name")
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			if isASCIILetter(r) {
				t.beginTag(true, r)
				t.state = TagName
				continue
			}
			tracing.T().Infof("html tokenizer: missing-end-tag-name")
			t.state = Data

		case TagName:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			switch {
			case isSpace(r):
				t.state = BeforeAttributeName
			case r == '/':
				t.state = SelfClosingStartTag
			case r == '>':
				t.state = Data
				return t.emitTagToken()
			default:
				t.tagName = append(t.tagName, lower(r))
			}

		case BeforeAttributeName:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			switch {
			case isSpace(r):
				// stay
			case r == '/':
				t.state = SelfClosingStartTag
			case r == '>':
				t.state = Data
				return t.emitTagToken()
			default:
				t.curAttrName = []rune{lower(r)}
				t.curAttrValue = nil
				t.state = AttributeName
			}

		case AttributeName:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			switch {
			case isSpace(r):
				t.finalizeAttr()
				t.state = AfterAttributeName
			case r == '/':
				t.finalizeAttr()
				t.state = SelfClosingStartTag
			case r == '=':
				t.state = BeforeAttributeValue
			case r == '>':
				t.finalizeAttr()
				t.state = Data
				return t.emitTagToken()
			default:
				t.curAttrName = append(t.curAttrName, lower(r))
			}

		case AfterAttributeName:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			switch {
			case isSpace(r):
				// stay
			case r == '/':
				t.state = SelfClosingStartTag
			case r == '=':
				t.state = BeforeAttributeValue
			case r == '>':
				t.state = Data
				return t.emitTagToken()
			default:
				t.curAttrName = []rune{lower(r)}
				t.curAttrValue = nil
				t.state = AttributeName
			}

		case BeforeAttributeValue:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			switch {
			case isSpace(r):
				// stay
			case r == '"':
				t.state = AttributeValueDouble
			case r == '\'':
				t.state = AttributeValueSingle
			case r == '>':
				tracing.T().Infof("html tokenizer: missing-attribute-value")
				t.finalizeAttr()
				t.state = Data
				return t.emitTagToken()
			default:
				t.reconsume()
				t.state = AttributeValueUnquoted
			}

		case AttributeValueDouble:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			if r == '"' {
				t.finalizeAttr()
				t.state = AfterAttributeValueQuoted
				continue
			}
			t.curAttrValue = append(t.curAttrValue, r)

		case AttributeValueSingle:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			if r == '\'' {
				t.finalizeAttr()
				t.state = AfterAttributeValueQuoted
				continue
			}
			t.curAttrValue = append(t.curAttrValue, r)

		case AttributeValueUnquoted:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			switch {
			case isSpace(r):
				t.finalizeAttr()
				t.state = BeforeAttributeName
			case r == '>':
				t.finalizeAttr()
				t.state = Data
				return t.emitTagToken()
			default:
				t.curAttrValue = append(t.curAttrValue, r)
			}

		case AfterAttributeValueQuoted:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			switch {
			case isSpace(r):
				t.state = BeforeAttributeName
			case r == '/':
				t.state = SelfClosingStartTag
			case r == '>':
				t.state = Data
				return t.emitTagToken()
			default:
				tracing.T().Infof("html tokenizer: missing-whitespace-between-attributes")
				t.reconsume()
				t.state = BeforeAttributeName
			}

		case SelfClosingStartTag:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			if r == '>' {
				t.selfClosing = true
				t.state = Data
				return t.emitTagToken()
			}
			tracing.T().Infof("html tokenizer: unexpected-solidus-in-tag")
			t.reconsume()
			t.state = BeforeAttributeName

		case ScriptData:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			if r == '<' {
				t.state = ScriptDataLessThanSign
				continue
			}
			return Token{Kind: Char, Char: r}

		case ScriptDataLessThanSign:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			if r == '/' {
				t.tagName = nil
				t.state = ScriptDataEndTagOpen
				continue
			}
			t.reconsume()
			t.state = ScriptData
			return Token{Kind: Char, Char: '<'}

		case ScriptDataEndTagOpen:
			r, ok := t.next()
			if !ok {
				t.eofEmitted = true
				return Token{Kind: Eof}
			}
			if isASCIILetter(r) {
				t.tagName = []rune{lower(r)}
				t.state = ScriptDataEndTagName
				continue
			}
			t.reconsume()
			t.tempBuffer = []rune{'<', '/'}
			t.tempPos = 0
			t.state = TemporaryBuffer
			continue

		case ScriptDataEndTagName:
			r, ok := t.next()
			appropriate := strings.EqualFold(string(t.tagName), t.lastStartTagName)
			if ok && isASCIILetter(r) {
				t.tagName = append(t.tagName, lower(r))
				continue
			}
			if ok && appropriate && isSpace(r) {
				t.isEndTag = true
				t.state = BeforeAttributeName
				continue
			}
			if ok && appropriate && r == '/' {
				t.isEndTag = true
				t.state = SelfClosingStartTag
				continue
			}
			if ok && appropriate && r == '>' {
				t.isEndTag = true
				t.state = Data
				return t.emitTagToken()
			}
			// Not an appropriate end tag (or EOF): replay "</" + buffered
			// letters as character data, then resume ScriptData.
			if ok {
				t.reconsume()
			}
			t.tempBuffer = append([]rune{'<', '/'}, t.tagName...)
			t.tempPos = 0
			t.state = TemporaryBuffer

		case TemporaryBuffer:
			if t.tempPos < len(t.tempBuffer) {
				c := t.tempBuffer[t.tempPos]
				t.tempPos++
				return Token{Kind: Char, Char: c}
			}
			t.tempBuffer = nil
			t.state = ScriptData

		default:
			// Unreachable for the closed state set above.
			t.state = Data
		}
	}
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
