package uitree

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
)

// Selector describes which nodes to pick. Empty fields match anything.
type Selector struct {
	Label      string `yaml:"label"`      // Regex or case-insensitive substring
	Identifier string `yaml:"identifier"` // Regex or case-insensitive substring
	Value      string `yaml:"value"`      // Regex or case-insensitive substring
	Type       string `yaml:"type"`       // Exact element type, or a glob such as "*Field"
	Depth      *int   `yaml:"depth"`
}

// IsEmpty reports whether the selector has no criteria.
func (s Selector) IsEmpty() bool {
	return s.Label == "" && s.Identifier == "" && s.Value == "" && s.Type == "" && s.Depth == nil
}

// Describe returns a short human-readable form of the selector.
func (s Selector) Describe() string {
	var parts []string
	if s.Label != "" {
		parts = append(parts, "label="+s.Label)
	}
	if s.Identifier != "" {
		parts = append(parts, "identifier="+s.Identifier)
	}
	if s.Value != "" {
		parts = append(parts, "value="+s.Value)
	}
	if s.Type != "" {
		parts = append(parts, "type="+s.Type)
	}
	if s.Depth != nil {
		parts = append(parts, "depth="+strconv.Itoa(*s.Depth))
	}
	if len(parts) == 0 {
		return "any"
	}
	return strings.Join(parts, ", ")
}

// Filter returns the nodes matching sel, preserving order.
func Filter(nodes []Node, sel Selector) []Node {
	m := newMatcher(sel)
	var result []Node
	for _, n := range nodes {
		if m.matches(n) {
			result = append(result, n)
		}
	}
	return result
}

// First returns the first node matching sel.
func First(nodes []Node, sel Selector) (Node, bool) {
	m := newMatcher(sel)
	for _, n := range nodes {
		if m.matches(n) {
			return n, true
		}
	}
	return Node{}, false
}

type matcher struct {
	sel      Selector
	typeGlob glob.Glob
}

func newMatcher(sel Selector) *matcher {
	m := &matcher{sel: sel}
	if strings.ContainsAny(sel.Type, "*?[{") {
		if g, err := glob.Compile(sel.Type); err == nil {
			m.typeGlob = g
		}
	}
	return m
}

func (m *matcher) matches(n Node) bool {
	sel := m.sel

	if sel.Label != "" && !matchesText(sel.Label, n.LabelText()) {
		return false
	}
	if sel.Identifier != "" && !matchesText(sel.Identifier, n.IdentifierText()) {
		return false
	}
	if sel.Value != "" && !matchesText(sel.Value, n.ValueText()) {
		return false
	}
	if sel.Type != "" {
		if m.typeGlob != nil {
			if !m.typeGlob.Match(n.ElementType) {
				return false
			}
		} else if n.ElementType != sel.Type {
			return false
		}
	}
	if sel.Depth != nil && n.Depth != *sel.Depth {
		return false
	}
	return true
}

// matchesText checks if pattern matches any of the text fields.
func matchesText(pattern string, texts ...string) bool {
	if looksLikeRegex(pattern) {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			// Invalid regex - fall back to contains
			for _, text := range texts {
				if containsIgnoreCase(text, pattern) {
					return true
				}
			}
			return false
		}

		for _, text := range texts {
			if text == "" {
				continue
			}
			// Labels spanning lines arrive with escaped newlines.
			unescaped := strings.ReplaceAll(text, `\n`, " ")
			if re.MatchString(text) || re.MatchString(unescaped) || pattern == text {
				return true
			}
		}
		return false
	}

	for _, text := range texts {
		if containsIgnoreCase(text, pattern) {
			return true
		}
	}
	return false
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// looksLikeRegex checks if text contains regex metacharacters.
// A standalone period (like in "mastodon.social") is NOT treated as regex.
func looksLikeRegex(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if i > 0 && text[i-1] == '\\' {
			continue
		}
		switch c {
		case '.':
			// Only a '.' followed by a quantifier counts
			if i+1 < len(text) {
				next := text[i+1]
				if next == '*' || next == '+' || next == '?' {
					return true
				}
			}
		case '*', '+', '?', '[', ']', '{', '}', '|', '(', ')':
			return true
		case '^':
			if i == 0 {
				return true
			}
		case '$':
			if i == len(text)-1 {
				return true
			}
		}
	}
	return false
}
