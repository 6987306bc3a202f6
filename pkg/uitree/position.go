package uitree

import (
	"sort"
)

// Below returns framed nodes whose top edge is at or below anchor's bottom
// edge, nearest first.
func Below(nodes []Node, anchor Node) []Node {
	if !anchor.HasFrame() {
		return nil
	}
	ref := anchor.Frame.MaxY()
	result := framed(nodes, func(n Node) bool { return n.Frame.Y >= ref })
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Frame.Y-ref < result[j].Frame.Y-ref
	})
	return result
}

// Above returns framed nodes whose bottom edge is at or above anchor's top
// edge, nearest first.
func Above(nodes []Node, anchor Node) []Node {
	if !anchor.HasFrame() {
		return nil
	}
	ref := anchor.Frame.Y
	result := framed(nodes, func(n Node) bool { return n.Frame.MaxY() <= ref })
	sort.SliceStable(result, func(i, j int) bool {
		return ref-result[i].Frame.MaxY() < ref-result[j].Frame.MaxY()
	})
	return result
}

// LeftOf returns framed nodes entirely left of anchor, nearest first.
func LeftOf(nodes []Node, anchor Node) []Node {
	if !anchor.HasFrame() {
		return nil
	}
	ref := anchor.Frame.X
	result := framed(nodes, func(n Node) bool { return n.Frame.MaxX() <= ref })
	sort.SliceStable(result, func(i, j int) bool {
		return ref-result[i].Frame.MaxX() < ref-result[j].Frame.MaxX()
	})
	return result
}

// RightOf returns framed nodes entirely right of anchor, nearest first.
func RightOf(nodes []Node, anchor Node) []Node {
	if !anchor.HasFrame() {
		return nil
	}
	ref := anchor.Frame.MaxX()
	result := framed(nodes, func(n Node) bool { return n.Frame.X >= ref })
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Frame.X-ref < result[j].Frame.X-ref
	})
	return result
}

// ChildrenOf returns nodes whose frame lies within anchor's frame.
func ChildrenOf(nodes []Node, anchor Node) []Node {
	return framed(nodes, func(n Node) bool { return anchor.Frame.ContainsRect(n.Frame) })
}

// InsideOf returns nodes whose center point is inside anchor's frame.
// Different from ChildrenOf - uses visual center containment, not full bounds.
func InsideOf(nodes []Node, anchor Node) []Node {
	return framed(nodes, func(n Node) bool { return anchor.Frame.Contains(n.Frame.Center()) })
}

// Deepest returns the node with the highest depth; the first one wins ties.
func Deepest(nodes []Node) (Node, bool) {
	if len(nodes) == 0 {
		return Node{}, false
	}
	deepest := nodes[0]
	for _, n := range nodes[1:] {
		if n.Depth > deepest.Depth {
			deepest = n
		}
	}
	return deepest, true
}

// Children returns the direct children of nodes[i], relying on the dump
// being in depth-first order.
func Children(nodes []Node, i int) []Node {
	if i < 0 || i >= len(nodes) {
		return nil
	}
	parentDepth := nodes[i].Depth
	var result []Node
	for _, n := range nodes[i+1:] {
		if n.Depth <= parentDepth {
			break
		}
		if n.Depth == parentDepth+1 {
			result = append(result, n)
		}
	}
	return result
}

// Parent returns the index of the nearest preceding node that is shallower
// than nodes[i].
func Parent(nodes []Node, i int) (int, bool) {
	if i <= 0 || i >= len(nodes) {
		return 0, false
	}
	for j := i - 1; j >= 0; j-- {
		if nodes[j].Depth < nodes[i].Depth {
			return j, true
		}
	}
	return 0, false
}

func framed(nodes []Node, keep func(Node) bool) []Node {
	var result []Node
	for _, n := range nodes {
		if n.HasFrame() && keep(n) {
			result = append(result, n)
		}
	}
	return result
}
