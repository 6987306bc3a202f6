// Package mock provides scripted fake elements, queries and applications
// for driving element helpers without a device.
package mock

import (
	"fmt"
	"strings"

	"github.com/devicelab-dev/xcuikit/pkg/core"
	"github.com/devicelab-dev/xcuikit/pkg/element"
)

// Gate scripts a boolean property over successive reads: the first reads
// return Sequence in order, every later read returns Then.
type Gate struct {
	Sequence []bool
	Then     bool

	reads int
}

// Always returns a Gate that always reads v.
func Always(v bool) Gate {
	return Gate{Then: v}
}

// After returns a Gate that reads !v for the first n reads, then v.
func After(n int, v bool) Gate {
	seq := make([]bool, n)
	for i := range seq {
		seq[i] = !v
	}
	return Gate{Sequence: seq, Then: v}
}

// Read returns the next scripted value.
func (g *Gate) Read() bool {
	defer func() { g.reads++ }()
	if g.reads < len(g.Sequence) {
		return g.Sequence[g.reads]
	}
	return g.Then
}

// Reads returns how many times the gate was read.
func (g *Gate) Reads() int {
	return g.reads
}

// Element is a fake element.Element. Script its state through the exported
// fields; actions performed on it are recorded for inspection.
type Element struct {
	Name         string
	LabelText    string
	ID           string
	Text         *string // nil when the element has no string value
	Rect         core.Rect
	Tree         string // debug description
	ExistsGate   Gate
	HittableGate Gate
	FocusGate    Gate

	// TapErr is returned by every tap.
	TapErr error
	// OnTap runs after each successful tap.
	OnTap func(e *Element)

	ButtonQuery *Query
	NavBarQuery *Query
	WheelQuery  *Query

	// Recorded interactions
	Taps           int
	TapPoints      []core.Point
	NormalizedTaps []core.Point
	Typed          []string
	Picked         []string
}

// NewElement returns an element that exists and is hittable.
func NewElement(label string) *Element {
	return &Element{
		Name:         label,
		LabelText:    label,
		ExistsGate:   Always(true),
		HittableGate: Always(true),
		Rect:         core.Rect{Width: 100, Height: 44},
	}
}

// Missing returns an element that never exists.
func Missing(name string) *Element {
	return &Element{Name: name, Rect: core.NullRect}
}

// WithValue sets the string value and returns e.
func (e *Element) WithValue(v string) *Element {
	e.Text = &v
	return e
}

func (e *Element) String() string {
	return fmt.Sprintf("Element(%s)", e.Name)
}

func (e *Element) DebugDescription() string {
	if e.Tree != "" {
		return e.Tree
	}
	return e.String()
}

func (e *Element) Exists() bool           { return e.ExistsGate.Read() }
func (e *Element) IsHittable() bool       { return e.HittableGate.Read() }
func (e *Element) HasKeyboardFocus() bool { return e.FocusGate.Read() }
func (e *Element) Label() string          { return e.LabelText }
func (e *Element) Identifier() string     { return e.ID }
func (e *Element) Frame() core.Rect       { return e.Rect }

func (e *Element) Value() (string, bool) {
	if e.Text == nil {
		return "", false
	}
	return *e.Text, true
}

func (e *Element) Tap() error {
	return e.tap()
}

func (e *Element) TapAt(offset core.Point) error {
	e.TapPoints = append(e.TapPoints, offset)
	return e.tap()
}

func (e *Element) TapNormalized(dx, dy float64) error {
	e.NormalizedTaps = append(e.NormalizedTaps, core.Point{X: dx, Y: dy})
	return e.tap()
}

func (e *Element) tap() error {
	if e.TapErr != nil {
		return e.TapErr
	}
	e.Taps++
	if e.OnTap != nil {
		e.OnTap(e)
	}
	return nil
}

// TypeText records text and applies it to the value, honouring delete keys.
func (e *Element) TypeText(text string) error {
	e.Typed = append(e.Typed, text)
	current := []rune("")
	if e.Text != nil {
		current = []rune(*e.Text)
	}
	for _, r := range strings.TrimSuffix(text, "\n") {
		if string(r) == element.DeleteKey {
			if len(current) > 0 {
				current = current[:len(current)-1]
			}
			continue
		}
		current = append(current, r)
	}
	v := string(current)
	e.Text = &v
	return nil
}

func (e *Element) AdjustPicker(value string) error {
	e.Picked = append(e.Picked, value)
	e.Text = &value
	return nil
}

func (e *Element) Buttons() element.Query        { return orEmpty(e.ButtonQuery) }
func (e *Element) NavigationBars() element.Query { return orEmpty(e.NavBarQuery) }
func (e *Element) PickerWheels() element.Query   { return orEmpty(e.WheelQuery) }

// Query is a fake element.Query over a fixed element list.
type Query struct {
	Name     string
	Elements []*Element
	// Counts scripts Count over successive calls; the last entry repeats.
	// Empty means len(Elements).
	Counts      []int
	ButtonQuery *Query

	countCalls int
}

// NewQuery returns a query over elems.
func NewQuery(name string, elems ...*Element) *Query {
	return &Query{Name: name, Elements: elems}
}

func orEmpty(q *Query) *Query {
	if q == nil {
		return &Query{Name: "empty"}
	}
	return q
}

func (q *Query) DebugDescription() string {
	labels := make([]string, 0, len(q.Elements))
	for _, e := range q.Elements {
		labels = append(labels, e.String())
	}
	return fmt.Sprintf("Query(%s): [%s]", q.Name, strings.Join(labels, ", "))
}

func (q *Query) Count() int {
	defer func() { q.countCalls++ }()
	if len(q.Counts) == 0 {
		return len(q.Elements)
	}
	if q.countCalls < len(q.Counts) {
		return q.Counts[q.countCalls]
	}
	return q.Counts[len(q.Counts)-1]
}

func (q *Query) FirstMatch() element.Element {
	if len(q.Elements) == 0 {
		return Missing(q.Name + ".firstMatch")
	}
	return q.Elements[0]
}

func (q *Query) Matching(key string) element.Element {
	for _, e := range q.Elements {
		if e.ID == key || e.LabelText == key {
			return e
		}
	}
	return Missing(key)
}

func (q *Query) ContainingLabel(text string) element.Query {
	sub := &Query{Name: fmt.Sprintf("%s containing %q", q.Name, text)}
	for _, e := range q.Elements {
		if strings.Contains(strings.ToLower(e.LabelText), strings.ToLower(text)) {
			sub.Elements = append(sub.Elements, e)
		}
	}
	return sub
}

func (q *Query) All() []element.Element {
	out := make([]element.Element, 0, len(q.Elements))
	for _, e := range q.Elements {
		out = append(out, e)
	}
	return out
}

func (q *Query) Buttons() element.Query { return orEmpty(q.ButtonQuery) }

// App is a fake element.App.
type App struct {
	*Element
	WindowQuery *Query
}

// NewApp returns an application whose debug description is tree.
func NewApp(tree string) *App {
	root := NewElement("Application")
	root.Tree = tree
	return &App{Element: root}
}

func (a *App) Windows() element.Query { return orEmpty(a.WindowQuery) }
