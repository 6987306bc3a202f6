package element

import "github.com/devicelab-dev/xcuikit/pkg/core"

// Placeholder is a detached copy of an element's label and frame, kept to
// tap the same spot after the element itself is gone.
type Placeholder struct {
	Label string    `json:"label" yaml:"label"`
	Frame core.Rect `json:"frame" yaml:"frame"`
}

// NewPlaceholder captures elem.
func NewPlaceholder(elem Element) Placeholder {
	return Placeholder{Label: elem.Label(), Frame: elem.Frame()}
}

// Placeholders captures every element.
func Placeholders(elems []Element) []Placeholder {
	out := make([]Placeholder, 0, len(elems))
	for _, e := range elems {
		out = append(out, NewPlaceholder(e))
	}
	return out
}
