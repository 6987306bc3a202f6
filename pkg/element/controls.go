package element

import (
	"github.com/devicelab-dev/xcuikit/pkg/core"
)

// IsOn reports whether a switch is on. Switches expose "1" when on.
func (h *Helper) IsOn(elem Element) bool {
	return h.isOn(elem, core.Caller(1))
}

func (h *Helper) isOn(elem Element, loc core.Location) bool {
	state, ok := elem.Value()
	if !ok {
		core.NewTestingError("Unable to determine state of switch: %s", elem).Fail(h.Sink, loc)
		return false
	}
	return state == "1"
}

// SetOn taps a switch if it is not already in the wanted state.
func (h *Helper) SetOn(elem Element, on bool) {
	loc := core.Caller(1)
	if h.isOn(elem, loc) == on {
		return
	}
	h.report(elem.Tap(), loc)
}

// SetPicker spins elem's picker wheel to value. The host gives no way to
// check beforehand that the wheel offers value.
func (h *Helper) SetPicker(elem Element, value string) {
	loc := core.Caller(1)
	h.assertExists(elem, loc)
	wheel := elem.PickerWheels().FirstMatch()
	h.assertHittable(wheel, loc)
	h.report(wheel.AdjustPicker(value), loc)
}

// TapPoint taps p, relative to elem's top-left corner. It reaches targets
// that are covered or hidden from accessibility.
func (h *Helper) TapPoint(elem Element, p core.Point) error {
	return elem.TapAt(p)
}

// TapPlaceholder taps the center of a recorded placeholder.
func (h *Helper) TapPlaceholder(elem Element, ph Placeholder) error {
	return h.TapPoint(elem, ph.Frame.Center())
}

// ScreenFrame returns the frame of the application's first window.
func (h *Helper) ScreenFrame() core.Rect {
	return h.App.Windows().FirstMatch().Frame()
}
