package uitree

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/devicelab-dev/xcuikit/pkg/core"
)

func wrap(subtree string) string {
	return "Attributes: Application\n" + SubtreeStart + subtree + SubtreeEnd + "\n →Application"
}

func TestParse_SampleDump(t *testing.T) {
	nodes := Parse(sampleDebugDescription)

	if len(nodes) != 11 {
		t.Fatalf("expected 11 nodes, got %d:\n%s", len(nodes), Describe(nodes))
	}

	tests := []struct {
		i          int
		typ        string
		depth      int
		label      string
		identifier string
		value      string
	}{
		{0, "Application", 0, "Demo", "", ""},
		{1, "Window (Main)", 1, "", "", ""},
		{2, "Other", 2, "", "", ""},
		{3, "NavigationBar", 3, "", "Settings", ""},
		{4, "Button", 4, "Back", "", ""},
		{5, "StaticText", 4, "Settings", "", ""},
		{6, "Switch", 3, "Wi-Fi", "wifiSwitch", "1"},
		{7, "StaticText", 3, `Line one\nLine two`, "", ""},
		{8, "TextField", 3, "", "emailField", "user@example.com"},
		{9, "Button", 3, "Cancel", "cancelButton", ""},
		{10, "Button", 3, "Save", "saveButton", ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%s", tt.i, tt.typ), func(t *testing.T) {
			n := nodes[tt.i]
			if n.ElementType != tt.typ {
				t.Errorf("ElementType = %q, want %q", n.ElementType, tt.typ)
			}
			if n.Depth != tt.depth {
				t.Errorf("Depth = %d, want %d", n.Depth, tt.depth)
			}
			if n.LabelText() != tt.label {
				t.Errorf("Label = %q, want %q", n.LabelText(), tt.label)
			}
			if n.IdentifierText() != tt.identifier {
				t.Errorf("Identifier = %q, want %q", n.IdentifierText(), tt.identifier)
			}
			if n.ValueText() != tt.value {
				t.Errorf("Value = %q, want %q", n.ValueText(), tt.value)
			}
		})
	}

	if nodes[0].HasFrame() {
		t.Errorf("application node should have a null frame, got %v", nodes[0].Frame)
	}
	want := core.Rect{X: 20, Y: 120, Width: 350, Height: 44}
	if nodes[6].Frame != want {
		t.Errorf("switch frame = %v, want %v", nodes[6].Frame, want)
	}
}

func TestParse_SingleRecord(t *testing.T) {
	in := wrap("0, Button, {{10.0, 20.0}, {30.0, 40.0}}, identifier: 'btn1', label: 'OK'\n")

	nodes := Parse(in)
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}

	n := nodes[0]
	if n.Depth != 0 {
		t.Errorf("Depth = %d, want 0", n.Depth)
	}
	if n.ElementType != "Button" {
		t.Errorf("ElementType = %q, want Button", n.ElementType)
	}
	if n.Frame != (core.Rect{X: 10, Y: 20, Width: 30, Height: 40}) {
		t.Errorf("Frame = %v", n.Frame)
	}
	if n.Identifier == nil || *n.Identifier != "btn1" {
		t.Errorf("Identifier = %v, want btn1", n.Identifier)
	}
	if n.Label == nil || *n.Label != "OK" {
		t.Errorf("Label = %v, want OK", n.Label)
	}
	if n.Value != nil {
		t.Errorf("Value = %q, want absent", *n.Value)
	}
}

func TestParse_EmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty string", ""},
		{"no start marker", "Attributes: Application\n  Button, {{1, 2}, {3, 4}}\nPath to element:"},
		{"no end marker", "Element subtree:\n  Button, 0x1, {{1, 2}, {3, 4}}\n"},
		{"empty subtree", wrap("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if nodes := Parse(tt.in); len(nodes) != 0 {
				t.Errorf("expected no nodes, got %d", len(nodes))
			}
		})
	}
}

func TestParse_MalformedFrame(t *testing.T) {
	nodes := Parse(wrap("0, Button, {{10.0, 20.0}, {30.0}}, label: 'x'"))
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	if !nodes[0].Frame.IsNull() {
		t.Errorf("Frame = %v, want null", nodes[0].Frame)
	}
	if nodes[0].LabelText() != "x" {
		t.Errorf("Label = %q, want x", nodes[0].LabelText())
	}
}

func TestParse_MultilineLabel(t *testing.T) {
	in := wrap("  StaticText, 0x1, {{0.0, 0.0}, {10.0, 10.0}}, label: 'first\nsecond\nthird', identifier: 'x'\n  Button, 0x2, label: 'OK'")

	nodes := Parse(in)
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d:\n%s", len(nodes), Describe(nodes))
	}
	if got := nodes[0].LabelText(); got != `first\nsecond\nthird` {
		t.Errorf("Label = %q", got)
	}
	if strings.Contains(nodes[0].LabelText(), "\n") {
		t.Error("label should not contain a real line break")
	}
	if nodes[1].ElementType != "Button" {
		t.Errorf("second node type = %q", nodes[1].ElementType)
	}
}

func TestParse_CRLFLabel(t *testing.T) {
	in := wrap("  StaticText, 0x1, label: 'a\r\nb'")

	nodes := Parse(in)
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d:\n%s", len(nodes), Describe(nodes))
	}
	if got := nodes[0].LabelText(); got != `a\nb` {
		t.Errorf("Label = %q, want %q", got, `a\nb`)
	}
}

func TestParse_IndentationDepth(t *testing.T) {
	in := wrap("  Application, 0x1, label: 'A'\n    Window, 0x2, {{0, 0}, {1, 1}}\n      Other, 0x3, label: 'deep'\n\tCell, 0x4, label: 'tab'")

	nodes := Parse(in)
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d:\n%s", len(nodes), Describe(nodes))
	}
	for i, want := range []int{0, 1, 2} {
		if nodes[i].Depth != want {
			t.Errorf("nodes[%d].Depth = %d, want %d", i, nodes[i].Depth, want)
		}
	}
}

func TestParse_DropsUnparseableLines(t *testing.T) {
	in := wrap("  Button, 0x1, label: 'ok'\nno depth here\n  Broken\n  Cell, 0x2, label: 'still here'")

	nodes := Parse(in)
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d:\n%s", len(nodes), Describe(nodes))
	}
	if nodes[1].LabelText() != "still here" {
		t.Errorf("Label = %q", nodes[1].LabelText())
	}
}

func TestParse_EmptyQuotedFields(t *testing.T) {
	nodes := Parse(wrap("  Button, 0x1, identifier: '', label: '', value: 0"))
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	n := nodes[0]
	if n.Label == nil || *n.Label != "" {
		t.Errorf("Label = %v, want empty string", n.Label)
	}
	if n.Identifier == nil || *n.Identifier != "" {
		t.Errorf("Identifier = %v, want empty string", n.Identifier)
	}
	if n.ValueText() != "0" {
		t.Errorf("Value = %q, want 0", n.ValueText())
	}
}

func TestIndentDepth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, -1},
		{1, -1},
		{2, 0},
		{3, 0},
		{4, 1},
		{10, 4},
	}
	for _, tt := range tests {
		if got := IndentDepth(tt.width); got != tt.want {
			t.Errorf("IndentDepth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestParseFrame(t *testing.T) {
	tests := []struct {
		in   string
		want core.Rect
	}{
		{"{{20.0, 452.0}, {334.0, 357.0}}", core.Rect{X: 20, Y: 452, Width: 334, Height: 357}},
		{"{{-1.5, 0}, {3e2, 4}}", core.Rect{X: -1.5, Y: 0, Width: 300, Height: 4}},
		{"{{10.0, 20.0}, {30.0}}", core.NullRect},
		{"{{a, 1}, {2, 3}}", core.NullRect},
		{"{{1, 2}, {3, 4}, {5, 6}}", core.NullRect},
		{"", core.NullRect},
	}
	for _, tt := range tests {
		got := ParseFrame(tt.in)
		if got.IsNull() != tt.want.IsNull() || (!got.IsNull() && got != tt.want) {
			t.Errorf("ParseFrame(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLine(t *testing.T) {
	p := NewParser(nil)

	n, ok := p.ParseLine("2, Cell, 0x1, {{0.0, 100.0}, {390.0, 44.0}}, identifier: 'row', label: 'Row 1', value: 3 of 5")
	if !ok {
		t.Fatal("expected line to parse")
	}
	if n.Depth != 2 || n.ElementType != "Cell" || n.ValueText() != "3 of 5" {
		t.Errorf("ParseLine() = %s", n)
	}

	if _, ok := p.ParseLine("Cell, 0x1"); ok {
		t.Error("line without depth should not parse")
	}
	if _, ok := p.ParseLine("-1, Cell, 0x1"); ok {
		t.Error("negative depth marker should not parse")
	}
}

func TestDefaultPatterns_Shared(t *testing.T) {
	if DefaultPatterns() != DefaultPatterns() {
		t.Error("DefaultPatterns() should return the same instance")
	}
	if NewPatterns() == DefaultPatterns() {
		t.Error("NewPatterns() should compile a fresh set")
	}
}

func TestParse_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	counts := make([]int, 8)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			counts[i] = len(Parse(sampleDebugDescription))
		}(i)
	}
	wg.Wait()

	for i, c := range counts {
		if c != 11 {
			t.Errorf("goroutine %d parsed %d nodes, want 11", i, c)
		}
	}
}
