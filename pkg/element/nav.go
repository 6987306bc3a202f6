package element

import (
	"github.com/devicelab-dev/xcuikit/pkg/core"
)

// TapBackButton taps the first button of elem's navigation bar.
func (h *Helper) TapBackButton(elem Element) {
	loc := core.Caller(1)
	h.try(loc, func() error {
		query := elem.NavigationBars().Buttons()
		back := query.FirstMatch()
		if !back.IsHittable() {
			return core.NewTestingError("Back button not hittable for query: %s", query.DebugDescription())
		}
		return back.Tap()
	})
}

// ExpectNavBar waits for a navigation bar. A non-empty title must equal
// the bar's identifier.
func (h *Helper) ExpectNavBar(elem Element, title string) {
	loc := core.Caller(1)
	h.try(loc, func() error {
		query := elem.NavigationBars()
		bar := query.FirstMatch()
		if !bar.Exists() {
			return core.NewTestingError("Nav bar does not exist for query: %s", query.DebugDescription())
		}
		if title == "" {
			return nil
		}
		if actual := bar.Identifier(); actual != title {
			return core.NewTestingError("Expected nav bar title to be [%s], got [%s] for query: %s",
				title, actual, query.DebugDescription())
		}
		return nil
	})
}

// ExpectNoNavBar waits for every navigation bar to go away.
func (h *Helper) ExpectNoNavBar(elem Element) {
	loc := core.Caller(1)
	h.try(loc, func() error {
		if elem.NavigationBars().FirstMatch().Exists() {
			return core.NewTestingError("Nav bar exists!")
		}
		return nil
	})
}

// ExpectNoBackButton waits for the "Back" navigation button to go away.
func (h *Helper) ExpectNoBackButton(elem Element) {
	loc := core.Caller(1)
	h.try(loc, func() error {
		if elem.NavigationBars().Buttons().Matching("Back").Exists() {
			return core.NewTestingError("Back Button exists!")
		}
		return nil
	})
}
