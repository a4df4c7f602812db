package ordtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// AVL rebalancing on top of the link primitives of Node. Rotations re-hang
// subtrees through setLeftChild/setRightChild, which keeps the order
// threading and the min/max caches consistent as a side effect; only the
// height and size caches of the two touched nodes need explicit repair.

// rotateLeft rotates n with its right child and returns the new subtree
// root. The caller re-attaches the returned node to n's former parent.
func rotateLeft[T any](n *Node[T]) *Node[T] {
	pivot := n.right
	assert(pivot != nil, "rotateLeft: no right child to rotate")
	n.setRightChild(pivot.left)
	pivot.setLeftChild(n)
	n.updateAggregates()
	pivot.updateAggregates()
	return pivot
}

// rotateRight rotates n with its left child and returns the new subtree
// root.
func rotateRight[T any](n *Node[T]) *Node[T] {
	pivot := n.left
	assert(pivot != nil, "rotateRight: no left child to rotate")
	n.setLeftChild(pivot.right)
	pivot.setRightChild(n)
	n.updateAggregates()
	pivot.updateAggregates()
	return pivot
}

// balanceNode recomputes n's aggregates and resolves a double-heavy
// imbalance at n, pre-rotating a zig-zag child where necessary. It returns
// the (possibly new) root of the subtree, not yet attached to n's former
// parent.
func balanceNode[T any](n *Node[T]) *Node[T] {
	n.updateAggregates()
	lh, rh := n.left.Height(), n.right.Height()
	switch {
	case lh > rh+1:
		l := n.left
		if l.right.Height() > l.left.Height() {
			n.setLeftChild(rotateLeft(l))
		}
		return rotateRight(n)
	case rh > lh+1:
		r := n.right
		if r.left.Height() > r.right.Height() {
			n.setRightChild(rotateRight(r))
		}
		return rotateLeft(n)
	}
	return n
}

// balance restores the AVL invariant on the path from n up to the
// sentinel. Every step substitutes the possibly rotated subtree root back
// into the parent, which also refreshes the parent's min/max caches and
// order threading along the path.
func (t *Tree[T]) balance(n *Node[T]) {
	for n != nil && !n.isSentinel() {
		parent := n.parent
		sub := balanceNode(n)
		parent.substituteChild(n, sub)
		n = parent
	}
}
