// Package browsererr implements the four-class error taxonomy of
// spec.md §7: Network, UnexpectedInput, InvalidUI, Other. The core only
// ever surfaces UnexpectedInput and Other; Network and InvalidUI exist
// for host collaborators (fetch, UI) to report through the same shape.
//
// Grounded on the teacher's errors/ package, which is a flat WHATWG
// parse-error catalog (a code constant plus a message table). That
// catalog is too narrow and too HTML-specific for a whole-pipeline error
// type, so it is generalized here into a class + message + optional
// wrapped cause, using github.com/pkg/errors for stack-carrying wraps at
// the boundaries (the orchestrator, the fetch hook) the way several pack
// repos wrap sentinel errors before logging them.
package browsererr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Class identifies which of the four error categories an Error belongs
// to.
type Class int

const (
	// Network covers host-side fetch failures; the core never produces
	// these itself.
	Network Class = iota
	// UnexpectedInput covers malformed responses, URLs, or documents
	// that the core's own invariants reject.
	UnexpectedInput
	// InvalidUI covers host UI/terminal failures; the core never
	// produces these itself.
	InvalidUI
	// Other covers internal logic failures (invariant violations).
	Other
)

// String renders the class name.
func (c Class) String() string {
	switch c {
	case Network:
		return "Network"
	case UnexpectedInput:
		return "UnexpectedInput"
	case InvalidUI:
		return "InvalidUI"
	case Other:
		return "Other"
	default:
		return "Unknown"
	}
}

// Error is a classified, human-readable browser error.
type Error struct {
	class   Class
	message string
	cause   error
}

// New constructs a classified error with a message.
func New(class Class, message string) *Error {
	return &Error{class: class, message: message}
}

// Newf constructs a classified error with a formatted message.
func Newf(class Class, format string, args ...interface{}) *Error {
	return &Error{class: class, message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a class and a stack trace to an existing error.
func Wrap(class Class, err error, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{class: class, message: message, cause: errors.WithStack(err)}
}

// Class reports which of the four categories this error belongs to.
func (e *Error) Class() Class {
	return e.class
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.class, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.class, e.message)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsClass reports whether err is a *Error of the given class.
func IsClass(err error, class Class) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.class == class
	}
	return false
}
