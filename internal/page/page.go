// Package page implements the orchestrator of spec.md §4.7: the seven
// steps from HTML bytes to a painted display-item list, including the
// script-mutates-DOM re-run loop.
//
// Grounded on the teacher's top-level justhtml.go (a facade function
// wiring tokenizer -> tree builder -> DOM behind a small Options
// struct) and on original_source/core/src/renderer/page.rs's Page:
// the same set_dom_root/set_style/execute_js/set_layout_view/paint_tree
// sequencing and the same "while modified, re-serialize and reparse"
// loop, here bounded per spec.md §9 REDESIGN FLAGS instead of looping
// unconditionally.
package page

import (
	"github.com/MeKo-Christian/JustGoHTML/browsererr"
	"github.com/MeKo-Christian/JustGoHTML/internal/config"
	"github.com/MeKo-Christian/JustGoHTML/internal/cssom"
	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
	"github.com/MeKo-Christian/JustGoHTML/internal/htmlserialize"
	"github.com/MeKo-Christian/JustGoHTML/internal/htmltree"
	"github.com/MeKo-Christian/JustGoHTML/internal/layout"
	"github.com/MeKo-Christian/JustGoHTML/internal/paint"
	"github.com/MeKo-Christian/JustGoHTML/internal/script/parser"
	"github.com/MeKo-Christian/JustGoHTML/internal/script/runtime"
	"github.com/MeKo-Christian/JustGoHTML/internal/tracing"
)

// Page owns at most one DOM tree, one stylesheet, and one layout tree
// at a time, per spec.md §3's Lifecycles: ReceiveResponse discards
// whatever a previous call built before constructing fresh state.
type Page struct {
	cfg *config.Options

	url        string
	domRoot    *dom.Node
	sheet      *cssom.StyleSheet
	layoutRoot *layout.Object
}

// New creates a Page with the given configuration (font metrics,
// content width, re-run cap); see internal/config.
func New(opts ...config.Option) *Page {
	return &Page{cfg: config.New(opts...)}
}

// DOM returns the stabilized DOM tree from the most recent
// ReceiveResponse call, or nil before the first call.
func (p *Page) DOM() *dom.Node { return p.domRoot }

// StyleSheet returns the parsed stylesheet from the most recent
// ReceiveResponse call.
func (p *Page) StyleSheet() *cssom.StyleSheet { return p.sheet }

// LayoutRoot returns the laid-out tree's <body> root from the most
// recent ReceiveResponse call, or nil if the document had no body.
func (p *Page) LayoutRoot() *layout.Object { return p.layoutRoot }

// ReceiveResponse runs the full rendering pipeline over body (spec.md
// §4.7): parse HTML, parse the embedded stylesheet, run the embedded
// script, re-run while the script keeps mutating the DOM (bounded by
// cfg.MaxRerunIterations), then build, size, position and paint the
// layout tree. It is a pure function of its inputs, per spec.md §1:
// "tests run it as a pure function from input bytes to a display-item
// list."
func (p *Page) ReceiveResponse(body []byte, url string) ([]paint.Item, error) {
	p.url = url
	html := string(body)

	for iteration := 0; ; iteration++ {
		p.domRoot = htmltree.Build(html)
		p.sheet = p.parseStyle()

		modified, err := p.executeScript()
		if err != nil {
			// spec.md §7: runtime failures abort the script pass,
			// leaving the DOM as it was parsed this iteration.
			tracing.T().Errorf("page: %v", err)
			break
		}
		if !modified {
			break
		}
		if iteration+1 >= p.cfg.MaxRerunIterations {
			tracing.T().Infof("page: dom-mutation re-run loop did not converge after %d iterations", p.cfg.MaxRerunIterations)
			break
		}
		html = htmlserialize.ToHTML(p.domRoot)
	}

	p.layoutRoot = layout.BuildFromDocument(p.domRoot, p.sheet)
	layout.Layout(p.layoutRoot, p.cfg)

	return paint.Paint(p.layoutRoot), nil
}

// parseStyle implements spec.md §4.7 step 2: "Collect the concatenated
// text content of the first <style> element; parse as CSS ->
// stylesheet." A document with no <style> element gets an empty
// stylesheet, so cascade simply never matches anything.
func (p *Page) parseStyle() *cssom.StyleSheet {
	styleEl := p.domRoot.FirstElementByTag(dom.StyleTag)
	if styleEl == nil {
		return &cssom.StyleSheet{}
	}
	return cssom.ParseStylesheet(styleEl.TextContent())
}

// executeScript implements spec.md §4.7 step 3: "Collect the
// concatenated text content of the first <script> element; parse as
// AST; run the runtime with the DOM and the page URL." A document with
// no <script> element is a no-op.
//
// spec.md §7 names runtime failures (unknown identifier invoked as a
// function, unsupported operator) as fatal in the reference
// implementation, recommending a production port "surface
// UnexpectedInput and abort the script pass, leaving the DOM as it
// was" instead — exactly what the recover here does, converting the
// runtime's panics into a returned error instead of taking the whole
// orchestrator down.
func (p *Page) executeScript() (modified bool, err error) {
	scriptEl := p.domRoot.FirstElementByTag(dom.ScriptTag)
	if scriptEl == nil {
		return false, nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = browsererr.Newf(browsererr.UnexpectedInput, "script runtime: %v", r)
			modified = false
		}
	}()

	program := parser.Parse(scriptEl.TextContent())
	rt := runtime.New(p.domRoot, p.url)
	rt.Execute(program)
	return rt.DOMModified(), nil
}

// SubResources implements spec.md §6's "a set of sub-resource URLs
// (currently only <img src>)": every distinct, non-empty `src`
// attribute on an <img> element in the stabilized DOM, in tree order.
func (p *Page) SubResources() []string {
	if p.domRoot == nil {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	var walk func(*dom.Node)
	walk = func(n *dom.Node) {
		if n.Kind == dom.ElementKind && n.Tag == dom.Img {
			if src, ok := n.Attr("src"); ok && src != "" && !seen[src] {
				seen[src] = true
				out = append(out, src)
			}
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(p.domRoot)
	return out
}
