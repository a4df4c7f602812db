package ordtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// Tree is an order-maintenance balanced binary tree.
//
// A tree owns a single sentinel node whose left child is the real root.
// The sentinel never surfaces through the API; internally it terminates
// every upward walk and lets rotation and balance code treat the root like
// any other child.
//
// The zero value of Tree is not usable; create trees with New.
type Tree[T any] struct {
	sentinel *Node[T]
	modCount uint64 // bumped by every mutating operation; observed by iterators
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	s := &Node[T]{}
	s.singleton()
	s.parent = s
	return &Tree[T]{sentinel: s}
}

func (t *Tree[T]) root() *Node[T] {
	return t.sentinel.left
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.sentinel.left == nil
}

// Size returns the number of elements in the tree.
func (t *Tree[T]) Size() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root().size
}

// Height returns the height of the tree, with 0 meaning empty and 1 a
// single element.
func (t *Tree[T]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root().height
}

// Min returns the minimum node of the maintained order, or nil for an
// empty tree. O(1) via the root's cached subtree minimum.
func (t *Tree[T]) Min() *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return t.root().min
}

// Max returns the maximum node of the maintained order, or nil for an
// empty tree.
func (t *Tree[T]) Max() *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return t.root().max
}

// Successor returns the node following n in the maintained order, or nil
// if n is the maximum. A nil node handle is an illegal argument.
func (t *Tree[T]) Successor(n *Node[T]) (*Node[T], error) {
	if n == nil {
		return nil, ErrIllegalArguments
	}
	return n.Successor(), nil
}

// Predecessor returns the node preceding n in the maintained order, or nil
// if n is the minimum. A nil node handle is an illegal argument.
func (t *Tree[T]) Predecessor(n *Node[T]) (*Node[T], error) {
	if n == nil {
		return nil, ErrIllegalArguments
	}
	return n.Predecessor(), nil
}

// AddMax appends a value at the maximum position of the order and returns
// the new node. The attach point is found in O(1) through the cached
// subtree maximum; rebalancing walks the right spine, amortized O(1).
func (t *Tree[T]) AddMax(value T) *Node[T] {
	n := newNode(value)
	t.addMaxNode(n)
	return n
}

// AddMin prepends a value at the minimum position of the order and returns
// the new node.
func (t *Tree[T]) AddMin(value T) *Node[T] {
	n := newNode(value)
	t.addMinNode(n)
	return n
}

// addMaxNode attaches an unlinked node as the new maximum leaf.
func (t *Tree[T]) addMaxNode(n *Node[T]) {
	t.modCount++
	if t.IsEmpty() {
		t.sentinel.setLeftChild(n)
		return
	}
	m := t.root().max
	m.setRightChild(n)
	t.balance(m)
}

// addMinNode attaches an unlinked node as the new minimum leaf.
func (t *Tree[T]) addMinNode(n *Node[T]) {
	t.modCount++
	if t.IsEmpty() {
		t.sentinel.setLeftChild(n)
		return
	}
	m := t.root().min
	m.setLeftChild(n)
	t.balance(m)
}

// RemoveMin detaches the minimum node and returns it in reset state. On an
// empty tree nothing is removed and ok is false.
func (t *Tree[T]) RemoveMin() (n *Node[T], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	t.modCount++
	n = t.root().min
	parent := n.parent // the minimum has no left child
	parent.substituteChild(n, n.right)
	n.Reset()
	if !parent.isSentinel() {
		t.balance(parent)
	}
	return n, true
}

// RemoveMax detaches the maximum node and returns it in reset state. On an
// empty tree nothing is removed and ok is false.
func (t *Tree[T]) RemoveMax() (n *Node[T], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	t.modCount++
	n = t.root().max
	parent := n.parent // the maximum has no right child
	parent.substituteChild(n, n.left)
	n.Reset()
	if !parent.isSentinel() {
		t.balance(parent)
	}
	return n, true
}

// Values collects all element values in order. Mainly a convenience for
// tests and debugging; prefer RangeValues for lazy traversal.
func (t *Tree[T]) Values() []T {
	if t.IsEmpty() {
		return nil
	}
	values := make([]T, 0, t.Size())
	t.EachValue(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// String renders the element sequence for debugging.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	sb.WriteString("⟨")
	first := true
	t.EachValue(func(v T) bool {
		if !first {
			sb.WriteString(" ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
		return true
	})
	sb.WriteString("⟩")
	return sb.String()
}
