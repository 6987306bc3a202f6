package core

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRect_Center(t *testing.T) {
	tests := []struct {
		rect Rect
		want Point
	}{
		{Rect{X: 0, Y: 0, Width: 100, Height: 100}, Point{50, 50}},
		{Rect{X: 10, Y: 20, Width: 100, Height: 200}, Point{60, 120}},
		{Rect{X: 20, Y: 452, Width: 334, Height: 357}, Point{187, 630.5}},
		{Rect{}, Point{0, 0}},
	}

	for _, tt := range tests {
		if got := tt.rect.Center(); got != tt.want {
			t.Errorf("Rect%+v.Center() = %+v, want %+v", tt.rect, got, tt.want)
		}
	}
}

func TestRect_Contains(t *testing.T) {
	rect := Rect{X: 10, Y: 10, Width: 100, Height: 100}

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{50, 50}, true},    // Center
		{Point{10, 10}, true},    // Top-left corner
		{Point{109, 109}, true},  // Just inside bottom-right
		{Point{110, 110}, false}, // Exactly at boundary (exclusive)
		{Point{0, 0}, false},     // Outside
	}

	for _, tt := range tests {
		if got := rect.Contains(tt.p); got != tt.want {
			t.Errorf("Rect.Contains(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if NullRect.Contains(Point{}) {
		t.Error("NullRect should not contain any point")
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 390, Height: 844}

	if !outer.ContainsRect(Rect{X: 50, Y: 100, Width: 290, Height: 50}) {
		t.Error("expected inner rect to be contained")
	}
	if !outer.ContainsRect(outer) {
		t.Error("a rect contains itself")
	}
	if outer.ContainsRect(Rect{X: 300, Y: 100, Width: 100, Height: 50}) {
		t.Error("overflowing rect should not be contained")
	}
	if outer.ContainsRect(NullRect) || NullRect.ContainsRect(outer) {
		t.Error("null rect never participates in containment")
	}
}

func TestRect_IsNull(t *testing.T) {
	if !NullRect.IsNull() {
		t.Error("NullRect.IsNull() = false")
	}
	if (Rect{}).IsNull() {
		t.Error("zero Rect is not null")
	}
}

func TestRect_String(t *testing.T) {
	r := Rect{X: 20, Y: 452, Width: 334, Height: 357}
	if got := r.String(); got != "{{20.0, 452.0}, {334.0, 357.0}}" {
		t.Errorf("String() = %q", got)
	}
	if got := NullRect.String(); got != "{null}" {
		t.Errorf("NullRect.String() = %q", got)
	}
}

func TestSize_String(t *testing.T) {
	if got := (Size{Width: 44, Height: 30.5}).String(); got != "{44.0, 30.5}" {
		t.Errorf("String() = %q", got)
	}
}

func TestRect_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Rect{X: 1, Y: 2, Width: 3, Height: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"x":1,"y":2,"width":3,"height":4}` {
		t.Errorf("Marshal = %s", data)
	}

	data, err = json.Marshal(NullRect)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Marshal(NullRect) = %s, want null", data)
	}
}

func TestRect_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]Rect{"frame": NullRect})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "frame: null\n" {
		t.Errorf("Marshal(NullRect) = %q", out)
	}

	out, err = yaml.Marshal(Rect{X: 1, Y: 2, Width: 3, Height: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back map[string]float64
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back["x"] != 1 || back["y"] != 2 || back["width"] != 3 || back["height"] != 4 {
		t.Errorf("round trip = %v", back)
	}
}
