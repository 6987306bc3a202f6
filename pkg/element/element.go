// Package element provides retrying assertions and actions over UI elements
// exposed by an automation host (an XCTest bridge, WebDriverAgent, a fake).
//
// Every assertion attributes its failure to the line that called it, so a
// test reads like a list of expectations without any file/line plumbing.
package element

import (
	"fmt"

	"github.com/devicelab-dev/xcuikit/pkg/core"
	"github.com/devicelab-dev/xcuikit/pkg/waitfor"
)

// Element is a single UI element as seen by the automation host.
type Element interface {
	core.Describer
	fmt.Stringer

	Exists() bool
	IsHittable() bool
	HasKeyboardFocus() bool

	Label() string
	Identifier() string
	// Value returns the element's value when it is a string.
	Value() (string, bool)
	Frame() core.Rect

	Tap() error
	// TapAt taps at offset points from the element's top-left corner.
	TapAt(offset core.Point) error
	// TapNormalized taps at a fraction of the element's size, (0,0) being
	// the top-left corner and (1,1) the bottom-right one.
	TapNormalized(dx, dy float64) error
	TypeText(text string) error
	AdjustPicker(value string) error

	Buttons() Query
	NavigationBars() Query
	PickerWheels() Query
}

// Query is a lazily evaluated set of elements.
type Query interface {
	core.Describer

	Count() int
	FirstMatch() Element
	// Matching returns the first element whose identifier or label is key.
	Matching(key string) Element
	// ContainingLabel narrows the query to labels containing text,
	// ignoring case.
	ContainingLabel(text string) Query
	All() []Element
	Buttons() Query
}

// App is the application under test.
type App interface {
	Element
	Windows() Query
}

// Helper runs element assertions against App, reporting to Sink.
type Helper struct {
	App   App
	Sink  core.FailureSink
	Retry waitfor.Config
}

// New creates a Helper with the default retry budget. With a nil sink every
// reported failure panics.
func New(app App, sink core.FailureSink) *Helper {
	return &Helper{
		App:   app,
		Sink:  sink,
		Retry: waitfor.DefaultConfig(),
	}
}

// WithRetry returns a copy of h using cfg for every retried call.
func (h *Helper) WithRetry(cfg waitfor.Config) *Helper {
	c := *h
	c.Retry = cfg
	return &c
}

func (h *Helper) try(loc core.Location, attempt func() error) {
	waitfor.TryThrows(h.Retry, h.Sink, loc, attempt)
}

// report sends err to the sink unless it is nil.
func (h *Helper) report(err error, loc core.Location) {
	if te := core.WrapError(err); te != nil {
		te.Fail(h.Sink, loc)
	}
}

func (h *Helper) elementError(format string, elem Element, args ...interface{}) *core.TestingError {
	return core.NewElementError(fmt.Sprintf(format, args...), elem, h.app())
}

// app returns App as a Describer, keeping a nil App printable.
func (h *Helper) app() core.Describer {
	if h.App == nil {
		return nil
	}
	return h.App
}
