package core

import (
	"errors"
	"fmt"
)

// Describer is anything that can render its current state for diagnostics,
// typically an element, a query or the application under test.
type Describer interface {
	DebugDescription() string
}

// TestingError is the domain error of the toolkit. Retry loops only retry
// failures of this kind; anything else is wrapped and reported immediately.
type TestingError struct {
	Message  string // Human-readable message
	Snapshot string // Optional query/element/tree state captured at failure time
	Cause    error  // Underlying foreign error, if any
}

// Error implements the error interface
func (e *TestingError) Error() string {
	msg := e.Message + e.Snapshot
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *TestingError) Unwrap() error {
	return e.Cause
}

// WithCause returns a copy of the error with the given cause
func (e *TestingError) WithCause(cause error) *TestingError {
	return &TestingError{
		Message:  e.Message,
		Snapshot: e.Snapshot,
		Cause:    cause,
	}
}

// WithSnapshot returns a copy of the error with the given diagnostic snapshot
func (e *TestingError) WithSnapshot(snapshot string) *TestingError {
	return &TestingError{
		Message:  e.Message,
		Snapshot: snapshot,
		Cause:    e.Cause,
	}
}

// Fail reports the error to sink at loc and returns the error unchanged.
// A nil sink panics with the located message so the failure cannot pass unseen.
func (e *TestingError) Fail(sink FailureSink, loc Location) *TestingError {
	if sink == nil {
		panic(fmt.Sprintf("%s: %s", loc, e.Error()))
	}
	sink.Fail(e.Error(), loc)
	return e
}

// NewTestingError creates a domain error with a plain message.
func NewTestingError(format string, args ...interface{}) *TestingError {
	return &TestingError{Message: fmt.Sprintf(format, args...)}
}

// NewQueryError creates a domain error enriched with the query and the full UI tree.
func NewQueryError(message string, query, app Describer) *TestingError {
	return &TestingError{
		Message:  message,
		Snapshot: fmt.Sprintf(" - query: [%s]. Full UI Tree: %s", describe(query), describe(app)),
	}
}

// NewElementError creates a domain error enriched with the element and the full UI tree.
func NewElementError(message string, element, app Describer) *TestingError {
	return &TestingError{
		Message:  message,
		Snapshot: fmt.Sprintf(" - element: [%s]. Full UI Tree: %s", describe(element), describe(app)),
	}
}

// WrapError converts any error into a *TestingError. Domain errors are
// returned as-is; foreign errors become "Unexpected error: <original>".
func WrapError(err error) *TestingError {
	if err == nil {
		return nil
	}
	var te *TestingError
	if errors.As(err, &te) {
		return te
	}
	return &TestingError{Message: "Unexpected error", Cause: err}
}

// IsTestingError reports whether err is (or wraps) a *TestingError.
func IsTestingError(err error) bool {
	var te *TestingError
	return errors.As(err, &te)
}

func describe(d Describer) string {
	if d == nil {
		return "nil"
	}
	return d.DebugDescription()
}
