package ordtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - sentinel: exactly one self-parented sentinel, real root as its left
//     child, no right child;
//   - structure: parent back-references match child links;
//   - balance: sibling subtree heights differ by at most one;
//   - aggregates: cached height, size, min and max agree with a fresh
//     recursive recomputation;
//   - order: the successor chain from the minimum equals the in-order
//     traversal, predecessor/successor are exact inverses, and the chain
//     terminates at the sentinel.
//
// This checker is intentionally strict and is meant for tests and
// debugging; it traverses the whole tree.
func (t *Tree[T]) Check() error {
	if t == nil || t.sentinel == nil {
		return fmt.Errorf("%w: tree has no sentinel", ErrInvariantViolation)
	}
	s := t.sentinel
	if s.parent != s {
		return fmt.Errorf("%w: sentinel is not its own parent", ErrInvariantViolation)
	}
	if s.right != nil {
		return fmt.Errorf("%w: sentinel must not have a right child", ErrInvariantViolation)
	}
	root := s.left
	if root == nil {
		if s.pred != nil {
			return fmt.Errorf("%w: empty tree sentinel has a predecessor link", ErrInvariantViolation)
		}
		return nil
	}
	if root.parent != s {
		return fmt.Errorf("%w: root parent is not the sentinel", ErrInvariantViolation)
	}
	if err := t.checkNode(root); err != nil {
		return err
	}
	return t.checkThreading(root)
}

func (t *Tree[T]) checkNode(n *Node[T]) error {
	if n.left != nil {
		if n.left.parent != n {
			return fmt.Errorf("%w: left child has wrong parent", ErrInvariantViolation)
		}
		if err := t.checkNode(n.left); err != nil {
			return err
		}
	}
	if n.right != nil {
		if n.right.parent != n {
			return fmt.Errorf("%w: right child has wrong parent", ErrInvariantViolation)
		}
		if err := t.checkNode(n.right); err != nil {
			return err
		}
	}
	lh, rh := n.left.Height(), n.right.Height()
	if lh-rh > 1 || rh-lh > 1 {
		return fmt.Errorf("%w: node out of balance (left height %d, right height %d)",
			ErrInvariantViolation, lh, rh)
	}
	if n.height != 1+max(lh, rh) {
		return fmt.Errorf("%w: cached height %d, expected %d",
			ErrInvariantViolation, n.height, 1+max(lh, rh))
	}
	if n.size != 1+n.left.Size()+n.right.Size() {
		return fmt.Errorf("%w: cached size %d, expected %d",
			ErrInvariantViolation, n.size, 1+n.left.Size()+n.right.Size())
	}
	wantMin, wantMax := n, n
	if n.left != nil {
		wantMin = n.left.min
	}
	if n.right != nil {
		wantMax = n.right.max
	}
	if n.min != wantMin {
		return fmt.Errorf("%w: cached subtree minimum is wrong", ErrInvariantViolation)
	}
	if n.max != wantMax {
		return fmt.Errorf("%w: cached subtree maximum is wrong", ErrInvariantViolation)
	}
	return nil
}

// checkThreading compares the successor chain against the in-order
// traversal of the structural links.
func (t *Tree[T]) checkThreading(root *Node[T]) error {
	var inorder []*Node[T]
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		inorder = append(inorder, n)
		walk(n.right)
	}
	walk(root)

	if root.min != inorder[0] {
		return fmt.Errorf("%w: tree minimum does not start the in-order sequence", ErrInvariantViolation)
	}
	if root.max != inorder[len(inorder)-1] {
		return fmt.Errorf("%w: tree maximum does not end the in-order sequence", ErrInvariantViolation)
	}
	if inorder[0].pred != nil {
		return fmt.Errorf("%w: minimum has a predecessor", ErrInvariantViolation)
	}
	if inorder[len(inorder)-1].succ != t.sentinel {
		return fmt.Errorf("%w: maximum successor link does not terminate at the sentinel", ErrInvariantViolation)
	}
	if t.sentinel.pred != inorder[len(inorder)-1] {
		return fmt.Errorf("%w: sentinel predecessor is not the maximum", ErrInvariantViolation)
	}
	for i := 0; i < len(inorder)-1; i++ {
		p, s := inorder[i], inorder[i+1]
		if p.succ != s {
			return fmt.Errorf("%w: successor link broken at order position %d", ErrInvariantViolation, i)
		}
		if s.pred != p {
			return fmt.Errorf("%w: predecessor link broken at order position %d", ErrInvariantViolation, i+1)
		}
	}
	return nil
}
