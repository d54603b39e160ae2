package mtree

// Returns the nodes of the tree grouped by layer, breadth first, starting with the root. Returns nil for a nil root.
func Levels(root *Node) [][]*Node {
	if root == nil {
		return nil
	}
	var out [][]*Node
	layer := []*Node{root}
	for len(layer) > 0 {
		out = append(out, layer)
		var next []*Node
		for _, n := range layer {
			next = append(next, n.Children...)
		}
		layer = next
	}
	return out
}

// Calls fn for every node in breadth-first order, with its depth (root is zero). Stops early if fn returns false.
func Walk(root *Node, fn func(n *Node, depth int) bool) {
	for depth, layer := range Levels(root) {
		for _, n := range layer {
			if !fn(n, depth) {
				return
			}
		}
	}
}

// Returns the leaf nodes, left to right.
func Leaves(root *Node) []*Node {
	levels := Levels(root)
	if len(levels) == 0 {
		return nil
	}
	return levels[len(levels)-1]
}
