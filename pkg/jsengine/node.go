package jsengine

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/devicelab-dev/xcuikit/pkg/uitree"
)

// NodeVariable is the global a predicate sees the current node as.
const NodeVariable = "node"

// NodeObject converts n into the plain object predicates receive. Absent
// attributes are null; frame and center are null for frameless nodes.
func NodeObject(n uitree.Node) map[string]interface{} {
	obj := map[string]interface{}{
		"type":       n.ElementType,
		"depth":      n.Depth,
		"identifier": optional(n.Identifier),
		"label":      optional(n.Label),
		"value":      optional(n.Value),
		"hasFrame":   n.HasFrame(),
		"frame":      nil,
		"center":     nil,
	}
	if n.HasFrame() {
		c := n.Frame.Center()
		obj["frame"] = map[string]interface{}{
			"x":      n.Frame.X,
			"y":      n.Frame.Y,
			"width":  n.Frame.Width,
			"height": n.Frame.Height,
		}
		obj["center"] = map[string]interface{}{"x": c.X, "y": c.Y}
	}
	return obj
}

func optional(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// SetNode exposes n to scripts as the global node.
func (e *Engine) SetNode(n uitree.Node) {
	e.SetVariable(NodeVariable, NodeObject(n))
}

// Match evaluates expr against n and reports its truthiness.
func (e *Engine) Match(expr string, n uitree.Node) (bool, error) {
	prog, err := compile(expr)
	if err != nil {
		return false, err
	}
	return e.match(prog, n)
}

// Filter returns the nodes for which expr is truthy, in order. The first
// evaluation error aborts the filter.
func (e *Engine) Filter(nodes []uitree.Node, expr string) ([]uitree.Node, error) {
	prog, err := compile(expr)
	if err != nil {
		return nil, err
	}

	var out []uitree.Node
	for i, n := range nodes {
		ok, err := e.match(prog, n)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		if ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func compile(expr string) (*goja.Program, error) {
	prog, err := goja.Compile("where", expr, false)
	if err != nil {
		return nil, fmt.Errorf("JS compile error: %w", err)
	}
	return prog, nil
}

func (e *Engine) match(prog *goja.Program, n uitree.Node) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false, ErrClosed
	}
	e.runtime.Set(NodeVariable, NodeObject(n))
	v, err := e.runtime.RunProgram(prog)
	if err != nil {
		return false, fmt.Errorf("JS eval error: %w", err)
	}
	return v.ToBoolean(), nil
}
