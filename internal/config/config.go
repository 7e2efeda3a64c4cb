// Package config carries the small set of host-tunable knobs the
// rendering pipeline needs: font metrics, the orchestrator's re-run
// iteration cap, and a few other constants §6/§9 call out as owned by
// the host. Built as a functional-options struct in the same shape as
// the teacher's tokenizer/options.go and stream/options.go.
package config

// Default font metrics, named by spec.md §4.6 as "constants exposed by
// the host (default 8 x 16)".
const (
	DefaultCharWidth  = 8
	DefaultLineHeight = 16
)

// DefaultMaxRerunIterations bounds the page orchestrator's DOM-mutation
// re-run loop (spec.md §9 REDESIGN FLAGS: "a faithful implementation
// should cap iterations (e.g., 8) and log divergence at Warning").
const DefaultMaxRerunIterations = 8

// DefaultContentWidth is the layout engine's root content width, named
// CONTENT_AREA_WIDTH in original_source/core/src/constants.rs (there
// derived from a 600px window); the host's viewport width stands in
// for it here since windowing itself is out of scope (spec.md §1).
const DefaultContentWidth = 600

// Options holds the resolved configuration for a rendering pipeline run.
type Options struct {
	CharWidth          int
	LineHeight         int
	MaxRerunIterations int
	ContentWidth       float64
}

// Option configures an Options value.
type Option func(*Options)

// New builds an Options value with defaults, applying opts in order.
func New(opts ...Option) *Options {
	o := &Options{
		CharWidth:          DefaultCharWidth,
		LineHeight:         DefaultLineHeight,
		MaxRerunIterations: DefaultMaxRerunIterations,
		ContentWidth:       DefaultContentWidth,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFontMetrics overrides the character cell width and line height
// used by the layout engine's text sizing pass.
func WithFontMetrics(charWidth, lineHeight int) Option {
	return func(o *Options) {
		o.CharWidth = charWidth
		o.LineHeight = lineHeight
	}
}

// WithMaxRerunIterations overrides the DOM-mutation re-run cap.
func WithMaxRerunIterations(n int) Option {
	return func(o *Options) {
		o.MaxRerunIterations = n
	}
}

// WithContentWidth overrides the root content width the layout engine
// sizes the body's block box against.
func WithContentWidth(width float64) Option {
	return func(o *Options) {
		o.ContentWidth = width
	}
}
