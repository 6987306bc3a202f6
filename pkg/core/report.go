package core

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Location attributes a failure to a source position, usually the test line
// that called an assertion helper.
type Location struct {
	File string
	Line int
}

// String returns "file:line", or "unknown" for the zero Location.
func (l Location) String() string {
	if l.File == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(l.File), l.Line)
}

// Caller returns the Location skip frames above the line calling it.
// Caller(0) is that line itself; helpers use Caller(1) to blame their caller.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}

// FailureSink receives test failures. It replaces a global test-framework
// failure recorder so helpers can be driven by any reporter.
type FailureSink interface {
	Fail(message string, loc Location)
}

// SinkFunc adapts a function to FailureSink.
type SinkFunc func(message string, loc Location)

// Fail calls f(message, loc).
func (f SinkFunc) Fail(message string, loc Location) {
	f(message, loc)
}

// TestReporter is the part of testing.TB that TB needs.
type TestReporter interface {
	Helper()
	Errorf(format string, args ...interface{})
}

type tbSink struct {
	t TestReporter
}

// TB returns a FailureSink that marks t as failed without stopping it.
func TB(t TestReporter) FailureSink {
	return tbSink{t: t}
}

func (s tbSink) Fail(message string, loc Location) {
	s.t.Helper()
	s.t.Errorf("%s: %s", loc, message)
}

// Recorder is a FailureSink that keeps every reported failure in memory.
type Recorder struct {
	Failures []Failure
}

// Failure is one reported (message, location) pair.
type Failure struct {
	Message  string
	Location Location
}

// Fail records the failure.
func (r *Recorder) Fail(message string, loc Location) {
	r.Failures = append(r.Failures, Failure{Message: message, Location: loc})
}
