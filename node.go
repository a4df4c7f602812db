package ordtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Node is one element of an order-maintenance tree.
//
// A node carries an opaque value, structural links (parent and children),
// order-threading links (successor and predecessor, together forming a
// doubly-linked list equal to the in-order traversal of the tree), and
// cached subtree aggregates.
//
// Nodes are created by a tree's insertion operations and handed back to the
// caller. A handle stays valid after the node has been detached by a removal
// or split; the detached node is fully unlinked and may be passed into later
// operations. Clients must never mutate a node's links directly — all
// structural changes go through Tree operations.
type Node[T any] struct {
	value T

	parent *Node[T]
	left   *Node[T]
	right  *Node[T]

	succ *Node[T]
	pred *Node[T]

	height int
	size   int
	min    *Node[T]
	max    *Node[T]
}

func newNode[T any](value T) *Node[T] {
	n := &Node[T]{value: value}
	n.singleton()
	return n
}

// singleton restores the aggregates of an unlinked node.
func (n *Node[T]) singleton() {
	n.height = 1
	n.size = 1
	n.min = n
	n.max = n
}

// The sentinel is the only node that is its own parent.
func (n *Node[T]) isSentinel() bool {
	return n.parent == n
}

// Value returns the element stored in n.
func (n *Node[T]) Value() T {
	return n.value
}

// Height returns the height of the subtree rooted at n; 1 for a leaf,
// 0 for a nil node.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Size returns the number of nodes in the subtree rooted at n, including
// n itself.
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Successor returns the next node in the maintained order, or nil if n is
// the maximum.
func (n *Node[T]) Successor() *Node[T] {
	if n == nil || n.succ == nil || n.succ.isSentinel() {
		return nil
	}
	return n.succ
}

// Predecessor returns the previous node in the maintained order, or nil if
// n is the minimum.
func (n *Node[T]) Predecessor() *Node[T] {
	if n == nil || n.pred == nil || n.pred.isSentinel() {
		return nil
	}
	return n.pred
}

// --- Order threading ---------------------------------------------------

// Setting one side of an order link always sets the reciprocal link on the
// other node; clearing severs the reciprocal link only if it still points
// back here.

func (n *Node[T]) setSuccessor(s *Node[T]) {
	n.succ = s
	if s != nil {
		s.pred = n
	}
}

func (n *Node[T]) clearSuccessor() {
	if n.succ != nil && n.succ.pred == n {
		n.succ.pred = nil
	}
	n.succ = nil
}

func (n *Node[T]) setPredecessor(p *Node[T]) {
	n.pred = p
	if p != nil {
		p.succ = n
	}
}

func (n *Node[T]) clearPredecessor() {
	if n.pred != nil && n.pred.succ == n {
		n.pred.succ = nil
	}
	n.pred = nil
}

// --- Link primitives ---------------------------------------------------

// setLeftChild replaces the left child of n with c (which may be nil).
//
// The child is reparented, n's predecessor link is threaded to the maximum
// of c's subtree, and n's cached subtree minimum is copied from c. With a
// nil child, n becomes its own subtree minimum and the predecessor link is
// cleared. Heights and sizes are not touched here; callers recompute them
// bottom-up.
func (n *Node[T]) setLeftChild(c *Node[T]) {
	n.left = c
	if c == nil {
		n.min = n
		n.clearPredecessor()
		return
	}
	c.parent = n
	n.min = c.min
	n.setPredecessor(c.max)
}

// setRightChild is the mirror image of setLeftChild, affecting n's
// successor link and cached subtree maximum.
func (n *Node[T]) setRightChild(c *Node[T]) {
	n.right = c
	if c == nil {
		n.max = n
		n.clearSuccessor()
		return
	}
	c.parent = n
	n.max = c.max
	n.setSuccessor(c.min)
}

// substituteChild replaces whichever child slot old currently occupies
// with repl. Calling it with a node that is no child of n is a programming
// error.
func (n *Node[T]) substituteChild(old, repl *Node[T]) {
	assert(old != nil, "substituteChild: old child is nil")
	switch {
	case n.left == old:
		n.setLeftChild(repl)
	case n.right == old:
		n.setRightChild(repl)
	default:
		assert(false, "substituteChild: node is not a child of this node")
	}
}

// updateAggregates recomputes height and subtree size from the children's
// cached aggregates. It never descends into the subtree.
func (n *Node[T]) updateAggregates() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
	n.size = 1 + n.left.Size() + n.right.Size()
}

// Reset returns n to an unlinked singleton state: no parent, children or
// order links, height 1, size 1, min/max referencing n itself. Reciprocal
// order links still pointing at n are severed first, so the detached node
// carries no references into the tree it came from.
func (n *Node[T]) Reset() {
	n.clearSuccessor()
	n.clearPredecessor()
	n.parent = nil
	n.left = nil
	n.right = nil
	n.singleton()
}
