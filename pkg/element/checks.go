package element

import (
	"github.com/devicelab-dev/xcuikit/pkg/core"
	"github.com/devicelab-dev/xcuikit/pkg/waitfor"
)

// AssertExists waits for elem to exist.
func (h *Helper) AssertExists(elem Element) {
	h.assertExists(elem, core.Caller(1))
}

func (h *Helper) assertExists(elem Element, loc core.Location) {
	h.try(loc, func() error {
		if !elem.Exists() {
			return h.elementError("Does not exist", elem)
		}
		return nil
	})
}

// CheckExists waits for elem to exist and reports whether it did. Nothing
// is recorded on failure.
func (h *Helper) CheckExists(elem Element) bool {
	return waitfor.Bool(h.Retry, func() error {
		if !elem.Exists() {
			return h.elementError("Does not exist", elem)
		}
		return nil
	})
}

// AssertNotExists waits for elem to disappear.
func (h *Helper) AssertNotExists(elem Element) {
	loc := core.Caller(1)
	h.try(loc, func() error {
		if elem.Exists() {
			return h.elementError("Element %s exists", elem, elem)
		}
		return nil
	})
}

// AssertHittable waits for elem to exist and accept taps at its current
// location. Offscreen elements in a scroll view are not hittable.
func (h *Helper) AssertHittable(elem Element) {
	h.assertHittable(elem, core.Caller(1))
}

func (h *Helper) assertHittable(elem Element, loc core.Location) {
	h.try(loc, func() error {
		if !elem.Exists() {
			return h.elementError("Doesn't exist", elem)
		}
		if !elem.IsHittable() {
			return h.elementError("Not hittable", elem)
		}
		return nil
	})
}

// AssertFrameSizeEquals waits for elem to exist with the given frame size.
func (h *Helper) AssertFrameSizeEquals(elem Element, size core.Size) {
	loc := core.Caller(1)
	h.try(loc, func() error {
		if !elem.Exists() {
			return h.elementError("Element %s does not exist", elem, elem)
		}
		if actual := elem.Frame().Size(); actual != size {
			return h.elementError("Element size of %s is not equal to expected size of %s", elem, actual, size)
		}
		return nil
	})
}

// AssertHasKeyboardFocus waits for elem to own the keyboard.
func (h *Helper) AssertHasKeyboardFocus(elem Element) {
	h.assertHasKeyboardFocus(elem, core.Caller(1))
}

func (h *Helper) assertHasKeyboardFocus(elem Element, loc core.Location) {
	h.try(loc, func() error {
		if !elem.HasKeyboardFocus() {
			return h.elementError("Element %s does not have keyboard focus", elem, elem)
		}
		return nil
	})
}
