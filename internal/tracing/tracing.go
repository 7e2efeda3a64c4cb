// Package tracing wires the rendering pipeline's packages to a shared
// trace front-end, the way github.com/npillmayer/schuko/gtrace exposes a
// package-scoped T() accessor for tyse's engine packages.
package tracing

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the shared engine tracer, mirroring tyse's per-package T()
// convention (e.g. engine/dom/style.T()). No package in this module,
// test or command, installs an adapter: T returns whatever
// gtrace.EngineTracer currently holds.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
