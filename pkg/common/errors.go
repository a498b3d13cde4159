package common

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes the failure classes this core can report.
type ErrorKind string

const (
	// KindNotFound means a component or token could not be resolved, or a
	// requested graph has no members.
	KindNotFound ErrorKind = "not_found"
	// KindInvalidArgument means the caller supplied a malformed request,
	// such as an empty required list or an unknown relationship type.
	KindInvalidArgument ErrorKind = "invalid_argument"
	// KindUpstream means the storage collaborator failed. Reads are assumed
	// idempotent, so the failure is propagated without retry.
	KindUpstream ErrorKind = "upstream_read_failure"
)

// Error is a structured failure result: a kind, a human-readable message,
// and optional context for the caller (for example near-miss suggestions
// on a failed resolution).
type Error struct {
	Kind    ErrorKind
	Message string
	Context map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// With attaches a context key to the error and returns it.
func (e *Error) With(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NotFoundf builds a NotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgumentf builds an InvalidArgument error.
func InvalidArgumentf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// UpstreamError wraps a storage collaborator failure.
func UpstreamError(err error, message string) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// KindOf returns the kind of err, or "" when err carries no kind.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ErrorContext returns the structured context of err, or nil.
func ErrorContext(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Context
	}
	return nil
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
