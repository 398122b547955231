package vdom

// NodeIdx addresses a node by its depth-first pre-order position
// within one tree snapshot: the root is 0, a parent always precedes
// its children, and a sibling's subtree begins only after the prior
// sibling's entire subtree has been indexed.
type NodeIdx int

// cursor hands out depth-first pre-order indices. The differ and the
// applier both draw indices from a cursor, so the two traversals can
// never disagree on assignment.
type cursor struct {
	next NodeIdx
}

// take returns the index for the node currently being visited.
func (c *cursor) take() NodeIdx {
	idx := c.next
	c.next++
	return idx
}

// skip advances past every node of a subtree without visiting it.
// Used when a subtree is pruned from recursion but its nodes still
// occupy indices in the old tree's numbering.
func (c *cursor) skip(n *Node) {
	c.next += NodeIdx(Count(n))
}

// Count returns the number of nodes in the subtree rooted at n,
// including n itself and all text leaves.
func Count(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += Count(child)
	}
	return total
}

// Walk visits every node of the snapshot in depth-first pre-order,
// calling fn with the node's index. This is the indexing contract:
// any patch addressed to index i targets the node Walk visits as i.
func Walk(root *Node, fn func(idx NodeIdx, n *Node)) {
	cur := &cursor{}
	walk(root, cur, fn)
}

func walk(n *Node, cur *cursor, fn func(NodeIdx, *Node)) {
	if n == nil {
		return
	}
	fn(cur.take(), n)
	for _, child := range n.Children {
		walk(child, cur, fn)
	}
}
