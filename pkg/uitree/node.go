// Package uitree parses the textual element tree that XCUITest prints for
// an element's debugDescription into flat, depth-tagged node records.
package uitree

import (
	"fmt"
	"strings"

	"github.com/devicelab-dev/xcuikit/pkg/core"
)

// Node is one line of the debug dump.
type Node struct {
	Identifier  *string   `json:"identifier,omitempty" yaml:"identifier,omitempty"` // accessibility identifier
	Label       *string   `json:"label,omitempty" yaml:"label,omitempty"`           // accessibility label
	Value       *string   `json:"value,omitempty" yaml:"value,omitempty"`           // raw value text
	ElementType string    `json:"elementType" yaml:"elementType"`                   // e.g. "Button", "Window (Main)"
	Frame       core.Rect `json:"frame" yaml:"frame"`                               // core.NullRect when absent
	Depth       int       `json:"depth" yaml:"depth"`                               // 0 for the application node
}

// LabelText returns the label or "" when absent.
func (n Node) LabelText() string {
	return deref(n.Label)
}

// IdentifierText returns the identifier or "" when absent.
func (n Node) IdentifierText() string {
	return deref(n.Identifier)
}

// ValueText returns the value or "" when absent.
func (n Node) ValueText() string {
	return deref(n.Value)
}

// HasFrame reports whether the node carried a parseable frame.
func (n Node) HasFrame() bool {
	return !n.Frame.IsNull()
}

// String renders the node as a single diagnostic line.
func (n Node) String() string {
	parts := []string{fmt.Sprintf("depth: %d", n.Depth), fmt.Sprintf("type: %s", n.ElementType)}
	if n.HasFrame() {
		parts = append(parts, "frame: "+n.Frame.String())
	}
	if n.Identifier != nil {
		parts = append(parts, fmt.Sprintf("identifier: '%s'", *n.Identifier))
	}
	if n.Label != nil {
		parts = append(parts, fmt.Sprintf("label: '%s'", *n.Label))
	}
	if n.Value != nil {
		parts = append(parts, "value: "+*n.Value)
	}
	return "Node(" + strings.Join(parts, ", ") + ")"
}

// Describe renders one node per line.
func Describe(nodes []Node) string {
	lines := make([]string, len(nodes))
	for i, n := range nodes {
		lines[i] = n.String()
	}
	return strings.Join(lines, "\n")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
