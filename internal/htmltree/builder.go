package htmltree

import (
	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
	"github.com/MeKo-Christian/JustGoHTML/internal/htmltok"
	"github.com/MeKo-Christian/JustGoHTML/internal/tracing"
)

// Builder is the insertion-mode state machine of spec.md §4.2. It owns
// the stack of open elements and the document under construction.
type Builder struct {
	tok  *htmltok.Tokenizer
	doc  *dom.Node
	mode Mode

	// originalMode is restored when the Text mode (entered for <style>
	// and <script>) closes.
	originalMode Mode

	// stack is the stack of open elements; index 0 is the bottommost.
	stack []*dom.Node
}

// New creates a tree constructor reading tokens from tok.
func New(tok *htmltok.Tokenizer) *Builder {
	return &Builder{tok: tok, doc: dom.NewDocument(), mode: Initial}
}

// Build drives the tokenizer to completion and returns the resulting
// Document-rooted tree. EOF at any point terminates construction and
// returns whatever has been built so far, per spec.md §4.2 "Failure
// semantics".
func Build(html string) *dom.Node {
	tok := htmltok.New(html)
	b := New(tok)
	for {
		t := tok.Next()
		b.ProcessToken(t)
		if t.Kind == htmltok.Eof {
			return b.doc
		}
	}
}

// Document returns the tree built so far.
func (b *Builder) Document() *dom.Node { return b.doc }

func (b *Builder) currentNode() *dom.Node {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) push(n *dom.Node) {
	b.stack = append(b.stack, n)
}

func (b *Builder) pop() *dom.Node {
	if len(b.stack) == 0 {
		return nil
	}
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return n
}

func (b *Builder) containsOpen(tag dom.ElementTag) bool {
	for _, n := range b.stack {
		if n.Kind == dom.ElementKind && n.Tag == tag {
			return true
		}
	}
	return false
}

// popUntil pops the stack of open elements until an element of the
// given kind has been popped. Callers must only call this once
// containsOpen(tag) has been verified; spec.md §4.2 describes it as
// asserting the precondition, so a caller that violates it indicates an
// internal bug, not malformed input (spec.md §7: the orchestrator only
// panics on internal invariant violations).
func (b *Builder) popUntil(tag dom.ElementTag) {
	for len(b.stack) > 0 {
		n := b.pop()
		if n.Kind == dom.ElementKind && n.Tag == tag {
			return
		}
	}
	panic("htmltree: popUntil precondition violated: tag not on stack")
}

// popCurrentIfTag pops the stack top only if it is an element of the
// given tag.
func (b *Builder) popCurrentIfTag(tag dom.ElementTag) bool {
	cur := b.currentNode()
	if cur != nil && cur.Kind == dom.ElementKind && cur.Tag == tag {
		b.pop()
		return true
	}
	return false
}

// popCurrentIfText pops the stack top only if it is a Text node,
// matching spec.md §4.2's pop_current_if(kind) used to close out the
// implicit text node accumulated while in the Text insertion mode.
func (b *Builder) popCurrentIfText() bool {
	cur := b.currentNode()
	if cur != nil && cur.Kind == dom.TextKind {
		b.pop()
		return true
	}
	return false
}

// insertElement implements spec.md §4.2's insert_element operation.
func (b *Builder) insertElement(tag dom.ElementTag, attrs []dom.Attribute) *dom.Node {
	el := dom.NewElement(tag, attrs)
	parent := b.currentNode()
	if parent == nil {
		parent = b.doc
	}
	parent.AppendChild(el)
	b.push(el)
	return el
}

// insertChar implements spec.md §4.2's insert_char operation.
func (b *Builder) insertChar(c rune) {
	cur := b.currentNode()
	if cur != nil && cur.Kind == dom.TextKind {
		cur.Text += string(c)
		return
	}
	if isWhitespace(c) {
		return
	}
	parent := cur
	if parent == nil {
		parent = b.doc
	}
	text := dom.NewText(string(c))
	parent.AppendChild(text)
	b.push(text)
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}

// ProcessToken advances the state machine by one token, per spec.md
// §4.2's per-insertion-mode behavior.
func (b *Builder) ProcessToken(t htmltok.Token) {
	if t.Kind == htmltok.Eof {
		return
	}
	for {
		switch b.mode {
		case Initial:
			if t.Kind == htmltok.Char && isWhitespace(t.Char) {
				return
			}
			b.mode = BeforeHtml
			continue

		case BeforeHtml:
			if t.Kind == htmltok.Char && isWhitespace(t.Char) {
				return
			}
			if t.Kind == htmltok.StartTag && t.Name == "html" {
				b.insertElement(dom.Html, t.Attrs)
				b.mode = BeforeHead
				return
			}
			b.insertElement(dom.Html, nil)
			b.mode = BeforeHead
			continue

		case BeforeHead:
			if t.Kind == htmltok.Char && isWhitespace(t.Char) {
				return
			}
			if t.Kind == htmltok.StartTag && t.Name == "head" {
				b.insertElement(dom.Head, t.Attrs)
				b.mode = InHead
				return
			}
			b.insertElement(dom.Head, nil)
			b.mode = InHead
			continue

		case InHead:
			switch {
			case t.Kind == htmltok.Char && isWhitespace(t.Char):
				b.insertChar(t.Char)
				return
			case t.Kind == htmltok.StartTag && t.Name == "style":
				b.insertElement(dom.StyleTag, t.Attrs)
				b.tok.SwitchTo(htmltok.ScriptData)
				b.originalMode = InHead
				b.mode = Text
				return
			case t.Kind == htmltok.StartTag && t.Name == "script":
				b.insertElement(dom.ScriptTag, t.Attrs)
				b.tok.SwitchTo(htmltok.ScriptData)
				b.originalMode = InHead
				b.mode = Text
				return
			case t.Kind == htmltok.EndTag && t.Name == "head":
				b.popCurrentIfTag(dom.Head)
				b.mode = AfterHead
				return
			default:
				b.popCurrentIfTag(dom.Head)
				b.mode = AfterHead
				continue
			}

		case AfterHead:
			if t.Kind == htmltok.Char && isWhitespace(t.Char) {
				b.insertChar(t.Char)
				return
			}
			if t.Kind == htmltok.StartTag && t.Name == "body" {
				b.insertElement(dom.Body, t.Attrs)
				b.mode = InBody
				return
			}
			b.insertElement(dom.Body, nil)
			b.mode = InBody
			continue

		case InBody:
			b.handleInBody(t)
			return

		case Text:
			switch {
			case t.Kind == htmltok.Char:
				b.insertChar(t.Char)
				return
			case t.Kind == htmltok.EndTag:
				b.popCurrentIfText()
				b.popCurrentIfTag(dom.ScriptTag)
				b.popCurrentIfTag(dom.StyleTag)
				b.mode = b.originalMode
				return
			default:
				b.mode = b.originalMode
				continue
			}

		case AfterBody:
			if t.Kind == htmltok.Char && isWhitespace(t.Char) {
				b.insertChar(t.Char)
				return
			}
			if t.Kind == htmltok.EndTag && t.Name == "html" {
				b.mode = AfterAfterBody
				return
			}
			b.mode = InBody
			continue

		case AfterAfterBody:
			if t.Kind == htmltok.Char && isWhitespace(t.Char) {
				return
			}
			b.mode = InBody
			continue
		}
	}
}

func (b *Builder) handleInBody(t htmltok.Token) {
	switch t.Kind {
	case htmltok.Char:
		b.insertChar(t.Char)
		return

	case htmltok.StartTag:
		switch t.Name {
		case "style":
			b.insertElement(dom.StyleTag, t.Attrs)
			b.tok.SwitchTo(htmltok.ScriptData)
			b.originalMode = InBody
			b.mode = Text
			return
		case "script":
			b.insertElement(dom.ScriptTag, t.Attrs)
			b.tok.SwitchTo(htmltok.ScriptData)
			b.originalMode = InBody
			b.mode = Text
			return
		case "img":
			b.insertElement(dom.Img, t.Attrs)
			b.pop()
			return
		case "html", "head", "body":
			tracing.T().Infof("html tree constructor: unexpected start tag %q in body, ignored", t.Name)
			return
		case "p":
			// spec.md §9's open question on nested <p>: decided to
			// implement the HTML5 "close a p element" rule (a new <p>
			// implicitly closes an already-open one) rather than leave
			// it unhandled, since an unterminated nested <p> would
			// silently misshape every later sibling's ancestry.
			if b.containsOpen(dom.P) {
				b.popUntil(dom.P)
			}
			b.insertElement(dom.P, t.Attrs)
			return
		}
		tag, ok := dom.LookupElementTag(t.Name)
		if !ok {
			tracing.T().Infof("html tree constructor: unknown tag %q skipped", t.Name)
			return
		}
		b.insertElement(tag, t.Attrs)
		return

	case htmltok.EndTag:
		switch t.Name {
		case "body":
			b.mode = AfterBody
			return
		case "html":
			b.mode = AfterBody
			return
		}
		tag, ok := dom.LookupElementTag(t.Name)
		if !ok {
			tracing.T().Infof("html tree constructor: unknown end tag %q skipped", t.Name)
			return
		}
		if !b.containsOpen(tag) {
			tracing.T().Infof("html tree constructor: stray end tag %q ignored", t.Name)
			return
		}
		b.popUntil(tag)
		return
	}
}
