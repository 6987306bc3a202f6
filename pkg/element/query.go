package element

import (
	"github.com/devicelab-dev/xcuikit/pkg/core"
	"github.com/devicelab-dev/xcuikit/pkg/waitfor"
)

// TapOptions tunes TapLabel. The zero value records failures and waits
// for the element to be hittable.
type TapOptions struct {
	// SkipRecording returns the failure without reporting it.
	SkipRecording bool
	// SkipHittableCheck only waits for existence; tapping an offscreen
	// element in a scroll view scrolls to it.
	SkipHittableCheck bool
}

// WaitOptions tunes WaitForContains.
type WaitOptions struct {
	SkipRecording bool
	// Description is appended to the failure message.
	Description string
}

// TapLabel waits for the element of q matching label and taps it.
func (h *Helper) TapLabel(q Query, label string, opts TapOptions) error {
	loc := core.Caller(1)
	outcome := waitfor.Result(h.Retry, func() (struct{}, error) {
		elem := q.Matching(label)
		if opts.SkipHittableCheck {
			if !elem.Exists() {
				return struct{}{}, core.NewQueryError("Label ["+label+"] doesn't exist", q, h.app())
			}
		} else if !elem.IsHittable() {
			return struct{}{}, core.NewQueryError("Label ["+label+"] not hittable", q, h.app())
		}
		return struct{}{}, elem.Tap()
	})
	return h.settle(outcome.Err(), !opts.SkipRecording, loc)
}

// WaitForContains waits for an element of q whose label contains text,
// ignoring case.
func (h *Helper) WaitForContains(q Query, text string, opts WaitOptions) error {
	loc := core.Caller(1)
	outcome := waitfor.Result(h.Retry, func() (struct{}, error) {
		if q.ContainingLabel(text).FirstMatch().Exists() {
			return struct{}{}, nil
		}
		err := core.NewTestingError("Text [%s] not found in query: \n[%s]", text, q.DebugDescription())
		if opts.Description != "" {
			err.Message += " " + opts.Description
		}
		return struct{}{}, err
	})
	return h.settle(outcome.Err(), !opts.SkipRecording, loc)
}

// WaitForNotEmpty waits for q to match at least one element, failing with
// message otherwise.
func (h *Helper) WaitForNotEmpty(q Query, message string) {
	loc := core.Caller(1)
	h.try(loc, func() error {
		if q.Count() == 0 {
			return core.NewTestingError("%s", message)
		}
		return nil
	})
}

// Placeholders snapshots the label and frame of every element in q.
func (h *Helper) Placeholders(q Query) []Placeholder {
	return Placeholders(q.All())
}

func (h *Helper) settle(err *core.TestingError, record bool, loc core.Location) error {
	if err == nil {
		return nil
	}
	if record {
		err.Fail(h.Sink, loc)
	}
	return err
}
