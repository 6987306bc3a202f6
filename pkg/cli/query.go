package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/xcuikit/pkg/jsengine"
	"github.com/devicelab-dev/xcuikit/pkg/uitree"
)

// queryFlags select nodes; shared by find and wait.
var queryFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "label",
		Aliases: []string{"l"},
		Usage:   "Label (case-insensitive substring or regex)",
	},
	&cli.StringFlag{
		Name:  "id",
		Usage: "Identifier (case-insensitive substring or regex)",
	},
	&cli.StringFlag{
		Name:  "value",
		Usage: "Value (case-insensitive substring or regex)",
	},
	&cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "Element type, globs allowed (e.g. '*Field')",
	},
	&cli.IntFlag{
		Name:  "depth",
		Usage: "Exact nesting depth",
		Value: -1,
	},
	&cli.StringFlag{
		Name:  "where",
		Usage: "JavaScript predicate over `node`",
	},
	&cli.StringFlag{
		Name:  "below",
		Usage: "Only nodes below the first node with this label",
	},
	&cli.StringFlag{
		Name:  "above",
		Usage: "Only nodes above the first node with this label",
	},
}

// nodeQuery is a selector plus the optional predicate and anchors.
type nodeQuery struct {
	Selector uitree.Selector
	Where    string
	Below    string
	Above    string
}

// queryFromFlags reads the query flags, expanding ${...} expressions.
func queryFromFlags(c *cli.Context, engine *jsengine.Engine) (nodeQuery, error) {
	var q nodeQuery
	fields := []struct {
		flag string
		dst  *string
	}{
		{"label", &q.Selector.Label},
		{"id", &q.Selector.Identifier},
		{"value", &q.Selector.Value},
		{"type", &q.Selector.Type},
		{"below", &q.Below},
		{"above", &q.Above},
	}
	for _, f := range fields {
		v, err := engine.ExpandVariables(c.String(f.flag))
		if err != nil {
			return q, err
		}
		*f.dst = v
	}

	if d := c.Int("depth"); d >= 0 {
		q.Selector.Depth = &d
	}
	q.Where = c.String("where")
	return q, nil
}

// Describe names the query in errors.
func (q nodeQuery) Describe() string {
	desc := q.Selector.Describe()
	if q.Where != "" {
		desc += fmt.Sprintf(" where %q", q.Where)
	}
	if q.Below != "" {
		desc += fmt.Sprintf(" below %q", q.Below)
	}
	if q.Above != "" {
		desc += fmt.Sprintf(" above %q", q.Above)
	}
	return desc
}

// apply runs the query over nodes. A missing anchor matches nothing.
func (q nodeQuery) apply(engine *jsengine.Engine, nodes []uitree.Node) ([]uitree.Node, error) {
	matched := nodes
	if !q.Selector.IsEmpty() {
		matched = uitree.Filter(nodes, q.Selector)
	}

	if q.Where != "" {
		var err error
		if matched, err = engine.Filter(matched, q.Where); err != nil {
			return nil, err
		}
	}

	for _, anchored := range []struct {
		label string
		pick  func([]uitree.Node, uitree.Node) []uitree.Node
	}{
		{q.Below, uitree.Below},
		{q.Above, uitree.Above},
	} {
		if anchored.label == "" {
			continue
		}
		anchor, ok := uitree.First(nodes, uitree.Selector{Label: anchored.label})
		if !ok {
			return nil, nil
		}
		matched = anchored.pick(matched, anchor)
	}
	return matched, nil
}

// newEngine returns a JS engine holding the configured variables.
func newEngine(vars map[string]string) *jsengine.Engine {
	engine := jsengine.New()
	for k, v := range vars {
		engine.SetVariable(k, v)
	}
	return engine
}
