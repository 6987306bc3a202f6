package uitree

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/devicelab-dev/xcuikit/pkg/core"
	"github.com/devicelab-dev/xcuikit/pkg/logger"
	"github.com/devicelab-dev/xcuikit/pkg/textutil"
)

// Lexical anchors of the framework's debugDescription format.
const (
	SubtreeStart = "Element subtree:\n"
	SubtreeEnd   = "\nPath to element:"
	appArrow     = "→"
)

// Patterns holds every compiled expression the parser needs. It is read-only
// after construction and safe to share between goroutines.
type Patterns struct {
	LeadingWhitespace *regexp.Regexp
	LabelSpan         *regexp.Regexp
	DepthAndType      *regexp.Regexp
	Frame             *regexp.Regexp
	Label             *regexp.Regexp
	Identifier        *regexp.Regexp
	Value             *regexp.Regexp
}

// NewPatterns compiles a fresh pattern set.
func NewPatterns() *Patterns {
	return &Patterns{
		LeadingWhitespace: regexp.MustCompile(`(?m)^[\t\f\v\p{Zs}]+`),
		LabelSpan:         regexp.MustCompile(`(?s)label: '(.*?)'`),
		DepthAndType:      regexp.MustCompile(`^(\d+), (.+?), `),
		Frame:             regexp.MustCompile(`(\{\{.+?\}\})`),
		Label:             regexp.MustCompile(`label: '(.*?)'`),
		Identifier:        regexp.MustCompile(`, identifier: '(.*?)'`),
		Value:             regexp.MustCompile(`value: (.+)$`),
	}
}

var (
	defaultPatterns *Patterns
	patternsOnce    sync.Once
)

// DefaultPatterns returns the shared pattern set, compiling it on first use.
func DefaultPatterns() *Patterns {
	patternsOnce.Do(func() {
		defaultPatterns = NewPatterns()
	})
	return defaultPatterns
}

// fieldExtractor pulls one optional field out of a normalized line.
type fieldExtractor struct {
	name  string
	re    *regexp.Regexp
	apply func(n *Node, match string)
}

// Parser turns debug dumps into node records.
type Parser struct {
	patterns   *Patterns
	extractors []fieldExtractor
}

// NewParser creates a parser over p. A nil p uses DefaultPatterns.
func NewParser(p *Patterns) *Parser {
	if p == nil {
		p = DefaultPatterns()
	}
	return &Parser{
		patterns: p,
		extractors: []fieldExtractor{
			{"frame", p.Frame, func(n *Node, m string) { n.Frame = ParseFrame(m) }},
			{"label", p.Label, func(n *Node, m string) { n.Label = &m }},
			{"identifier", p.Identifier, func(n *Node, m string) { n.Identifier = &m }},
			{"value", p.Value, func(n *Node, m string) { n.Value = &m }},
		},
	}
}

// Parse parses a dump with the default parser.
func Parse(debugDescription string) []Node {
	return NewParser(nil).Parse(debugDescription)
}

// Parse returns one Node per parseable line of the element subtree, in dump
// order. A dump without the subtree markers yields no nodes; lines that lack
// the depth/type prefix are logged and skipped.
func (p *Parser) Parse(debugDescription string) []Node {
	subtree, ok := textutil.Between(debugDescription, SubtreeStart, SubtreeEnd)
	if !ok {
		subtree = ""
	}

	subtree = strings.ReplaceAll(subtree, appArrow, " ")

	// Labels may span lines; keep each node on one line.
	subtree = textutil.ReplaceSubmatch(p.patterns.LabelSpan, subtree, textutil.EscapeNewlines)

	subtree = p.patterns.LeadingWhitespace.ReplaceAllStringFunc(subtree, func(ws string) string {
		return strconv.Itoa(IndentDepth(utf8.RuneCountInString(ws))) + ", "
	})

	var nodes []Node
	for _, line := range strings.Split(subtree, "\n") {
		if line == "" {
			continue
		}
		if n, ok := p.ParseLine(line); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// ParseLine parses one normalized line ("<depth>, <type>, ...").
func (p *Parser) ParseLine(line string) (Node, bool) {
	m := p.patterns.DepthAndType.FindStringSubmatch(line)
	if m == nil {
		logger.Warn("could not parse line: %s", line)
		return Node{}, false
	}

	depth, err := strconv.Atoi(m[1])
	if err != nil {
		depth = 0
	}

	n := Node{
		ElementType: m[2],
		Frame:       core.NullRect,
		Depth:       depth,
	}
	for _, ex := range p.extractors {
		if fm := ex.re.FindStringSubmatch(line); fm != nil {
			ex.apply(&n, fm[1])
		}
	}
	return n, true
}

// IndentDepth converts a leading-whitespace width into a nesting depth.
// The application node is printed with two characters of indent.
func IndentDepth(width int) int {
	return width/2 - 1
}

// ParseFrame converts "{{x, y}, {width, height}}" into a Rect. Anything that
// does not yield exactly four numbers becomes core.NullRect.
func ParseFrame(s string) core.Rect {
	stripped := strings.NewReplacer("{", "", "}", "").Replace(s)

	var nums []float64
	for _, tok := range strings.Split(stripped, ", ") {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}
		nums = append(nums, f)
	}

	if len(nums) != 4 {
		return core.NullRect
	}
	return core.Rect{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}
}
