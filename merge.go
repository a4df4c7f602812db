package ordtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// MergeAfter appends all elements of other after this tree's elements,
// consuming other: afterwards other is empty and this tree holds the
// concatenated order. Cost is O(log n) in the height difference of the two
// trees (the classic AVL join).
//
// A nil tree handle and merging a tree with itself are illegal arguments.
func (t *Tree[T]) MergeAfter(other *Tree[T]) error {
	if other == nil || other == t {
		return ErrIllegalArguments
	}
	tracer().Debugf("ordtree: merge tree of size %d after tree of size %d", other.Size(), t.Size())
	t.modCount++
	other.modCount++
	if other.IsEmpty() {
		return nil
	}
	if t.IsEmpty() {
		root := other.root()
		other.sentinel.setLeftChild(nil)
		t.sentinel.setLeftChild(root)
		return nil
	}
	if other.Size() == 1 {
		// trivial max-insertion of the single existing node
		n, _ := other.RemoveMin()
		t.addMaxNode(n)
		return nil
	}
	// other's minimum becomes the junction between the two structures
	junction, _ := other.RemoveMin()
	left := t.root()
	right := other.root()
	t.sentinel.setLeftChild(nil)
	other.sentinel.setLeftChild(nil)
	t.sentinel.setLeftChild(merge(junction, left, right))
	return nil
}

// MergeBefore prepends all elements of other before this tree's elements,
// consuming other. It is the mirror of MergeAfter, implemented by joining
// in the other direction and swapping the resulting content between the
// two tree handles.
func (t *Tree[T]) MergeBefore(other *Tree[T]) error {
	if other == nil || other == t {
		return ErrIllegalArguments
	}
	if err := other.MergeAfter(t); err != nil {
		return err
	}
	t.sentinel, other.sentinel = other.sentinel, t.sentinel
	t.modCount++
	other.modCount++
	return nil
}

// merge joins two subtrees around an unattached junction node, with every
// element of left preceding junction and every element of right following
// it. It descends the spine of the taller side until the height difference
// permits attaching the junction directly, then rebalances on the way back
// up. The returned subtree root is not attached to any parent.
func merge[T any](junction, left, right *Node[T]) *Node[T] {
	lh, rh := left.Height(), right.Height()
	switch {
	case lh > rh+1:
		sub := merge(junction, left.right, right)
		left.setRightChild(sub)
		return balanceNode(left)
	case rh > lh+1:
		sub := merge(junction, left, right.left)
		right.setLeftChild(sub)
		return balanceNode(right)
	default:
		junction.setLeftChild(left)
		junction.setRightChild(right)
		junction.updateAggregates()
		return junction
	}
}
