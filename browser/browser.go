// Package browser implements the host-facing façade of spec.md §5
// "Shared resources" and §6 "External interfaces": the one stateful
// object that owns a display-item list, a log buffer, and a
// sub-resource set, and that drives internal/page.Page against a
// host-supplied fetch function.
//
// Kept separate from internal/page.Page deliberately: the page
// orchestrator stays a pure function from bytes to display items
// (spec.md §1), and Browser is the single mutable, host-visible
// object spec.md §5 describes as "not safe for concurrent use by
// design... no locking discipline because there is no sharing across
// threads." Grounded on the teacher's top-level JustGoHTML.Parse
// facade for the "one entry point wraps the pipeline" shape, and on
// original_source/core/src/browser.rs for the log-buffer/display-list
// ownership split (HTTP, URL parsing and windowing remain external
// collaborators per spec.md §1, so Browser only ever calls the
// FetchFunc hook, never a concrete HTTP client).
package browser

import (
	"github.com/MeKo-Christian/JustGoHTML/browsererr"
	"github.com/MeKo-Christian/JustGoHTML/internal/config"
	"github.com/MeKo-Christian/JustGoHTML/internal/page"
	"github.com/MeKo-Christian/JustGoHTML/internal/paint"
)

// LogLevel is one of the three levels spec.md §6 names for the log
// channel.
type LogLevel int

const (
	Debug LogLevel = iota
	Warning
	Error
)

func (l LogLevel) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogEntry is a single log-channel record, per spec.md §6 "a list of
// log entries at levels {Debug, Warning, Error}."
type LogEntry struct {
	Level   LogLevel
	Message string
}

// Response is the host-supplied fetch result spec.md §6 describes:
// "Response carries a status code, headers, and body."
type Response struct {
	Status  int
	Headers map[string]string
	Body    []byte
}

// FetchFunc is the host-supplied response provider of spec.md §6:
// "a synchronous function fetch(url) -> Response | Error".
type FetchFunc func(url string) (*Response, error)

// Browser is the thin façade a host embeds: it owns the display-item
// list and log buffer (spec.md §5) and drives a single internal
// Page through FetchFunc-backed navigation.
type Browser struct {
	fetch FetchFunc
	cfg   *config.Options
	page  *page.Page

	displayItems []paint.Item
	logs         []LogEntry
	subResources []string
}

// New creates a Browser that fetches responses via fetch.
func New(fetch FetchFunc, opts ...config.Option) *Browser {
	return &Browser{
		fetch: fetch,
		cfg:   config.New(opts...),
		page:  page.New(opts...),
	}
}

// Navigate fetches url, runs it through the rendering pipeline, and
// replaces the browser's display-item list and sub-resource set with
// the result. A fetch failure is logged at Error and surfaced as a
// Network-class error, per spec.md §7: "Orchestrator failures (fetch
// error): fatal for the current navigation; the page discards partial
// state and exposes the error via the log channel."
func (b *Browser) Navigate(url string) error {
	b.log(Debug, "navigate: "+url)

	resp, err := b.fetch(url)
	if err != nil {
		wrapped := browsererr.Wrap(browsererr.Network, err, "fetch failed for "+url)
		b.log(Error, wrapped.Error())
		return wrapped
	}

	items, err := b.page.ReceiveResponse(resp.Body, url)
	if err != nil {
		b.log(Error, err.Error())
		return err
	}

	b.displayItems = items
	b.subResources = b.page.SubResources()
	return nil
}

// DisplayItems returns the display items produced by the most recent
// successful Navigate call, in paint order.
func (b *Browser) DisplayItems() []paint.Item { return b.displayItems }

// Logs returns every log entry recorded so far, oldest first.
func (b *Browser) Logs() []LogEntry { return b.logs }

// SubResources returns the sub-resource URLs (currently only <img
// src>) collected from the most recently rendered page.
func (b *Browser) SubResources() []string { return b.subResources }

// Page exposes the underlying orchestrator for callers that need
// lower-level access (e.g. the DOM tree for a getElementById probe)
// without re-running the pipeline.
func (b *Browser) Page() *page.Page { return b.page }

func (b *Browser) log(level LogLevel, message string) {
	b.logs = append(b.logs, LogEntry{Level: level, Message: message})
}
