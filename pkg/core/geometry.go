package core

import (
	"encoding/json"
	"fmt"
	"math"
)

// Point is a position in screen points.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// String formats the size as "{w, h}".
func (s Size) String() string {
	return fmt.Sprintf("{%.1f, %.1f}", s.Width, s.Height)
}

// Rect represents element position and size
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NullRect marks an absent or unparseable frame. Like CGRectNull its origin
// is at positive infinity, so it never contains or intersects anything.
var NullRect = Rect{X: math.Inf(1), Y: math.Inf(1)}

// IsNull reports whether r is the null rectangle.
func (r Rect) IsNull() bool {
	return math.IsInf(r.X, 1) || math.IsInf(r.Y, 1)
}

// Center returns the center point of the rect
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Size returns the rect's size.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// Contains checks if a point is within the rect
func (r Rect) Contains(p Point) bool {
	if r.IsNull() {
		return false
	}
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// ContainsRect checks if inner lies entirely within r (edges inclusive).
func (r Rect) ContainsRect(inner Rect) bool {
	if r.IsNull() || inner.IsNull() {
		return false
	}
	return inner.X >= r.X &&
		inner.Y >= r.Y &&
		inner.MaxX() <= r.MaxX() &&
		inner.MaxY() <= r.MaxY()
}

// String renders the rect the way the automation framework prints frames.
func (r Rect) String() string {
	if r.IsNull() {
		return "{null}"
	}
	return fmt.Sprintf("{{%.1f, %.1f}, {%.1f, %.1f}}", r.X, r.Y, r.Width, r.Height)
}

type rectFields struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// MarshalJSON encodes the null rect as null; JSON has no infinity.
func (r Rect) MarshalJSON() ([]byte, error) {
	if r.IsNull() {
		return []byte("null"), nil
	}
	return json.Marshal(rectFields(r))
}

// MarshalYAML encodes the null rect as null.
func (r Rect) MarshalYAML() (interface{}, error) {
	if r.IsNull() {
		return nil, nil
	}
	return rectFields(r), nil
}
