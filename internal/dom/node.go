// Package dom implements the document tree data model of spec.md §3: a
// tree of Document/Element/Text nodes linked by owning first-child /
// next-sibling pointers and non-owning parent / previous-sibling /
// last-child back-references.
//
// The teacher repo (MeKo-Christian/JustGoHTML) models this as an
// interface (Node) implemented by three concrete types, each holding a
// slice of children. That shape does not give the owning/non-owning
// split spec.md §9 requires ("Cyclic parent/child graphs... model as:
// each tree has a single owner; parent/previous/last links are
// non-owning handles"), so this package collapses the three node kinds
// into a single tagged struct — the same single-struct-with-NodeType
// shape golang.org/x/net/html uses, one of this corpus's most widely
// vendored HTML data models — and wires the sibling pointers explicitly
// instead of a backing slice.
package dom

import "fmt"

// Kind discriminates the three node variants of spec.md §3.
type Kind int

const (
	// DocumentKind is the tree root. A tree has exactly one.
	DocumentKind Kind = iota
	// ElementKind is an element node; see ElementTag for the closed tag set.
	ElementKind
	// TextKind is a text node carrying a mutable character buffer.
	TextKind
)

func (k Kind) String() string {
	switch k {
	case DocumentKind:
		return "Document"
	case ElementKind:
		return "Element"
	case TextKind:
		return "Text"
	default:
		return "Unknown"
	}
}

// ElementTag is the closed set of element kinds spec.md §3 allows.
// Any tag name outside this set is not representable; the tree
// constructor logs a warning and skips it (spec.md §4.2).
type ElementTag int

const (
	Html ElementTag = iota
	Head
	StyleTag
	ScriptTag
	Body
	H1
	H2
	P
	Pre
	Ul
	Li
	Div
	A
	Img
)

var tagNames = map[ElementTag]string{
	Html: "html", Head: "head", StyleTag: "style", ScriptTag: "script",
	Body: "body", H1: "h1", H2: "h2", P: "p", Pre: "pre", Ul: "ul",
	Li: "li", Div: "div", A: "a", Img: "img",
}

var namesToTags = func() map[string]ElementTag {
	m := make(map[string]ElementTag, len(tagNames))
	for tag, name := range tagNames {
		m[name] = tag
	}
	return m
}()

// String renders the lowercase HTML tag name.
func (t ElementTag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ElementTag(%d)", int(t))
}

// LookupElementTag resolves a lowercased tag name to its ElementTag. It
// reports ok=false for any tag outside the closed set, which callers
// (the tree constructor) treat as "unknown tag, log and skip".
func LookupElementTag(name string) (ElementTag, bool) {
	t, ok := namesToTags[name]
	return t, ok
}

// IsBlock reports whether a tag is a block-level element per spec.md
// §4.5 stage 2 ("display = block if element is a block element or
// body"). Everything else in the closed tag set is inline.
func (t ElementTag) IsBlock() bool {
	switch t {
	case Html, Body, Div, P, Pre, Ul, Li, H1, H2:
		return true
	default:
		return false
	}
}

// Attribute is an ordered (name, value) pair, per spec.md §3.
type Attribute struct {
	Name  string
	Value string
}

// ActivationBehavior is the tagged variant spec.md §9 specifies in place
// of a stored function pointer: "model as a tagged variant on the
// element, dispatch by match, not by storing function pointers".
type ActivationBehavior int

const (
	// NoActivation is the default: the element has no click behavior.
	NoActivation ActivationBehavior = iota
	// FollowHyperlink is assigned to <a href=...> at node-creation time.
	FollowHyperlink
)

// EventListener records a single addEventListener-style registration.
type EventListener struct {
	Type     string
	Callback func(*Node)
	Capture  bool
}

// Node is a single node in a document tree. Depending on Kind, only a
// subset of fields is meaningful:
//   - DocumentKind: none of Tag/Attrs/Text/Activation apply.
//   - ElementKind: Tag and Attrs apply.
//   - TextKind: Text applies.
//
// Sibling/child linkage follows spec.md §9: firstChild and nextSibling
// are owning references (a Node is reachable from the tree root through
// exactly one chain of these), parent, prevSibling and lastChild are
// non-owning back-pointers used for traversal only. Callers must never
// free or otherwise treat a non-owning pointer as conferring ownership.
type Node struct {
	Kind Kind
	Tag  ElementTag
	Attrs []Attribute
	Text string

	Window *Window

	Activation ActivationBehavior
	Listeners  []EventListener

	parent      *Node
	prevSibling *Node
	lastChild   *Node

	firstChild  *Node
	nextSibling *Node
}

// NewDocument creates an empty Document node.
func NewDocument() *Node {
	return &Node{Kind: DocumentKind}
}

// NewElement creates a detached element node of the given tag.
func NewElement(tag ElementTag, attrs []Attribute) *Node {
	n := &Node{Kind: ElementKind, Tag: tag, Attrs: attrs}
	if tag == A {
		if _, ok := n.Attr("href"); ok {
			n.Activation = FollowHyperlink
		}
	}
	return n
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Kind: TextKind, Text: text}
}

// Parent returns the non-owning parent back-reference, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// FirstChild returns the first child, or nil if n has no children.
func (n *Node) FirstChild() *Node { return n.firstChild }

// LastChild returns the last child via the non-owning back-reference.
func (n *Node) LastChild() *Node { return n.lastChild }

// NextSibling returns the next sibling owned by the parent's chain.
func (n *Node) NextSibling() *Node { return n.nextSibling }

// PrevSibling returns the non-owning previous-sibling back-reference.
func (n *Node) PrevSibling() *Node { return n.prevSibling }

// AppendChild appends child as the new last child of n, wiring all four
// sibling/parent links. This is the sole mutation primitive; the tree
// constructor's insertElement/insertChar (§4.2) and the script runtime's
// innerHTML assignment (§4.4) are both built on it.
func (n *Node) AppendChild(child *Node) {
	child.parent = n
	child.prevSibling = n.lastChild
	child.nextSibling = nil
	if n.lastChild != nil {
		n.lastChild.nextSibling = child
	} else {
		n.firstChild = child
	}
	n.lastChild = child
}

// ReplaceChildren detaches every existing child of n and installs a
// single new child in their place. Used by the script runtime's
// innerHTML setter (spec.md §4.4: "replace the referenced node's first
// child with a fresh text node").
func (n *Node) ReplaceChildren(child *Node) {
	n.firstChild = nil
	n.lastChild = nil
	if child != nil {
		n.AppendChild(child)
	}
}

// Attr looks up an attribute by name, returning ok=false if absent.
// Spec.md does not specify duplicate-attribute handling; this returns
// the first match, consistent with insertion order being preserved.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Children returns the node's children in tree order. Provided for
// callers that want a slice view; the canonical representation remains
// the linked chain.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		out = append(out, c)
	}
	return out
}

// TextContent concatenates the character data of all Text descendants
// in tree order, used to collect the contents of <style> and <script>
// elements (spec.md §4.7 steps 2-3).
func (n *Node) TextContent() string {
	var buf []byte
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur.Kind == TextKind {
			buf = append(buf, cur.Text...)
		}
		for c := cur.firstChild; c != nil; c = c.nextSibling {
			walk(c)
		}
	}
	walk(n)
	return string(buf)
}

// FirstElementByTag returns the first descendant (tree order, n
// included) with the given tag, or nil.
func (n *Node) FirstElementByTag(tag ElementTag) *Node {
	if n.Kind == ElementKind && n.Tag == tag {
		return n
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if found := c.FirstElementByTag(tag); found != nil {
			return found
		}
	}
	return nil
}

// GetElementByID returns the first element in tree order whose "id"
// attribute equals id, or nil — spec.md §8: "document.getElementById(id)
// returns the first DOM element in tree order... or a null reference".
func (n *Node) GetElementByID(id string) *Node {
	if n.Kind == ElementKind {
		if v, ok := n.Attr("id"); ok && v == id {
			return n
		}
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if found := c.GetElementByID(id); found != nil {
			return found
		}
	}
	return nil
}

// Window is the owning context of a document: the page URL and (a
// non-owning handle back to) the document root, used by the script
// runtime's location.href / location.hash (spec.md §4.4).
type Window struct {
	Document *Node
	URL      string
}

// NewWindow creates a window for doc at the given page URL and wires
// doc.Window to point back at it.
func NewWindow(doc *Node, url string) *Window {
	w := &Window{Document: doc, URL: url}
	doc.Window = w
	return w
}
