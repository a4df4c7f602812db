package ordtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// SplitAfter partitions the tree in place right after node n: this tree
// retains the elements up to and including n, the returned tree holds the
// elements after n, in order. The returned tree is freshly created with
// its own sentinel and a modification count of zero.
//
// The algorithm walks from n's former parent up to the sentinel and
// consumes each ancestor as a junction for one merge call, accumulating a
// left and a right part depending on which side the walk ascends from —
// O(log n) overall.
//
// A nil node handle is an illegal argument, as is splitting an empty tree.
// Passing a node that belongs to a different tree is a caller error the
// tree cannot afford to detect; the result is undefined.
func (t *Tree[T]) SplitAfter(n *Node[T]) (*Tree[T], error) {
	if n == nil || t.IsEmpty() {
		return nil, ErrIllegalArguments
	}
	tracer().Debugf("ordtree: split tree of size %d", t.Size())
	t.modCount++
	result := New[T]()

	parent := n.parent
	fromLeft := parent.left == n

	// Detach n's subtrees; n itself becomes the maximum of the left part.
	leftSub := n.left
	rightSub := n.right
	n.setLeftChild(nil)
	n.setRightChild(nil)
	n.updateAggregates()
	left := merge(n, leftSub, nil)
	right := rightSub

	for !parent.isSentinel() {
		ancestor := parent.parent
		ancestorFromLeft := ancestor.left == parent
		if fromLeft {
			// ascended from a left child: parent and its right subtree
			// are greater than n
			right = merge(parent, right, parent.right)
		} else {
			// ascended from a right child: parent and its left subtree
			// are less than n
			left = merge(parent, parent.left, left)
		}
		parent, fromLeft = ancestor, ancestorFromLeft
	}

	t.sentinel.setLeftChild(left)
	result.sentinel.setLeftChild(right)
	return result, nil
}

// SplitBefore partitions the tree in place right before node n: this tree
// retains the elements preceding n, the returned tree holds n and all
// elements after it. If n is the current minimum, the entire content is
// handed to the result and this tree becomes empty.
func (t *Tree[T]) SplitBefore(n *Node[T]) (*Tree[T], error) {
	if n == nil || t.IsEmpty() {
		return nil, ErrIllegalArguments
	}
	pred := n.Predecessor()
	if pred == nil {
		result := New[T]()
		root := t.root()
		t.modCount++
		t.sentinel.setLeftChild(nil)
		result.sentinel.setLeftChild(root)
		return result, nil
	}
	return t.SplitAfter(pred)
}
