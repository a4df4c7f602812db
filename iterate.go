package ordtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Iterator walks the elements of a tree in the maintained order by
// following successor links from the minimum.
//
// Iterators are fail-fast: the tree's modification count is captured when
// the iterator is created and compared on every step. A structural change
// made through the tree's API mid-iteration surfaces as
// ErrConcurrentModification from Err. Detection is best-effort — it is not
// a synchronization mechanism — but any mutation performed through the
// tree's own operations between steps is caught.
//
// Usage follows the scanner pattern:
//
//	it := tree.Iterator()
//	for it.Next() {
//		use(it.Value())
//	}
//	if it.Err() != nil { … }
type Iterator[T any] struct {
	tree  *Tree[T]
	next  *Node[T]
	cur   *Node[T]
	stamp uint64
	err   error
}

// Iterator creates a new iterator positioned before the minimum element.
// A nil tree yields an exhausted iterator.
func (t *Tree[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{tree: t}
	if t != nil {
		it.next = t.Min()
		it.stamp = t.modCount
	}
	return it
}

// Next advances to the next element. It returns false when the sequence is
// exhausted or when iteration failed; the two cases are told apart by Err.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.tree != nil && it.stamp != it.tree.modCount {
		it.err = ErrConcurrentModification
		it.cur = nil
		return false
	}
	if it.next == nil {
		it.cur = nil
		return false
	}
	it.cur = it.next
	it.next = it.next.Successor()
	return true
}

// Value returns the element at the current position. Calling Value before
// the first Next or after Next returned false is a programming error.
func (it *Iterator[T]) Value() T {
	assert(it.cur != nil, "Iterator.Value called outside a successful Next")
	return it.cur.value
}

// Node returns the node at the current position, or nil outside a
// successful Next.
func (it *Iterator[T]) Node() *Node[T] {
	return it.cur
}

// Err returns the error that stopped iteration, or nil after a normal end.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Reset is not supported: an iterator is forward-only and single-use.
// It fails unconditionally with ErrUnsupported.
func (it *Iterator[T]) Reset() error {
	return ErrUnsupported
}

// RangeValues returns a range function over the element values in order.
// A structural change to the tree during the range panics with
// ErrConcurrentModification; use Iterator to handle that condition as an
// error instead.
func (t *Tree[T]) RangeValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
		if it.Err() != nil {
			panic(it.Err())
		}
	}
}

// RangeNodes returns a range function over the nodes in order, with the
// same fail-fast behavior as RangeValues.
func (t *Tree[T]) RangeNodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Node()) {
				return
			}
		}
		if it.Err() != nil {
			panic(it.Err())
		}
	}
}

// EachValue calls fn for every element value in order. Iteration stops
// early if fn returns false.
func (t *Tree[T]) EachValue(fn func(value T) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for n := t.Min(); n != nil; n = n.Successor() {
		if !fn(n.value) {
			return
		}
	}
}
