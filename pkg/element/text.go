package element

import (
	"strings"
	"unicode/utf8"

	"github.com/devicelab-dev/xcuikit/pkg/core"
)

// DeleteKey is the keyboard delete key as typed text.
const DeleteKey = "\b"

// StringValue returns elem's string value, failing when it has none.
func (h *Helper) StringValue(elem Element) string {
	v, ok := elem.Value()
	if !ok {
		core.NewTestingError("Value is nil").Fail(h.Sink, core.Caller(1))
		return ""
	}
	return v
}

// ClearAndEnterText replaces the text of a field with text and submits it.
// With tapClearButton set, the field's own clear button is used when it has
// one; otherwise the old text is deleted key by key.
func (h *Helper) ClearAndEnterText(elem Element, text string, tapClearButton bool) {
	loc := core.Caller(1)
	h.assertExists(elem, loc)

	current, ok := elem.Value()
	if !ok {
		core.NewTestingError("Tried to clear and enter text into a non string value: %s", elem).Fail(h.Sink, loc)
		return
	}
	if current == text {
		return
	}

	if current == "" {
		// Tapping scrolls the field into view.
		if err := elem.Tap(); err != nil {
			h.report(err, loc)
			return
		}
		h.report(elem.TypeText(text+"\n"), loc)
		return
	}

	if tapClearButton {
		if clear := elem.Buttons().FirstMatch(); clear.Exists() {
			if err := clear.Tap(); err != nil {
				h.report(err, loc)
				return
			}
			h.report(elem.TypeText(text+"\n"), loc)
			return
		}
	}

	deletes := strings.Repeat(DeleteKey, utf8.RuneCountInString(current))

	h.assertHittable(elem, loc)
	// Lower right corner puts the cursor after the last character.
	if err := elem.TapNormalized(0.9, 0.9); err != nil {
		h.report(err, loc)
		return
	}
	h.assertHasKeyboardFocus(elem, loc)
	h.report(elem.TypeText(deletes+text+"\n"), loc)
}
