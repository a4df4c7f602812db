/*
Package ordtree implements an order-maintenance balanced binary tree.

Order-Maintenance Trees

An order-maintenance tree is a self-balancing binary tree which never
compares keys. Instead it maintains an explicit left-to-right order over
its elements, defined purely by structural position. Clients append
elements at the current minimum or maximum of the order, navigate in
O(1) between neighbouring elements through threaded successor links,
and split or join whole trees in O(log n).

This combination of operations is the backbone of a family of
sequence and order algorithms: interval structures, planarity tests,
sequence maintenance for editors, and similar order-bookkeeping tasks.
All of them need an orderable, appendable-at-both-ends sequence with a
cheap splice, and none of them can express their order as a comparable
key.

A tree is created empty and filled through AddMin and AddMax:

	tree := ordtree.New[string]()
	tree.AddMax("b")
	tree.AddMax("c")
	tree.AddMin("a")

Iteration always reflects the maintained order, not any value order:

	for v := range tree.RangeValues() {
		fmt.Println(v) // "a", "b", "c"
	}

Splitting and joining are in-place surgery on the participating trees:

	right, err := tree.SplitAfter(node)   // tree keeps "≤ node"
	err = tree.MergeAfter(right)          // and takes it back

Internally the tree is an AVL tree with parent pointers, augmented by a
doubly-linked successor/predecessor overlay equal to the in-order
traversal at all times, and by cached subtree aggregates (height, size,
minimum, maximum). A single sentinel node at the top, its own parent,
unifies the root and non-root code paths of the rebalancing machinery.

The tree is not a general binary search tree: it performs no key
comparison and cannot search by value. Callers are responsible for
knowing where in the order an element belongs.

A tree is not safe for concurrent mutation from multiple goroutines;
wrap access in a mutex if you need that. Iterators are fail-fast: they
detect structural changes made through the tree's API between iteration
steps and surface them as ErrConcurrentModification.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is the alias for use inside generic methods, where the identifier T
// denotes the receiver's type parameter and would shadow the T func.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the ordtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// e.g. a nil node handle where a node is required.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrConcurrentModification signals that the tree structure changed while an
// iteration over it was in progress.
const ErrConcurrentModification = TreeError("tree structure changed during iteration")

// ErrUnsupported signals an operation the tree does not support, e.g.
// resetting a live iterator.
const ErrUnsupported = TreeError("unsupported operation")

// ErrInvariantViolation is returned by Check whenever a structural invariant
// of the tree does not hold.
const ErrInvariantViolation = TreeError("tree invariant violated")

// assert guards internal invariants. Violations are programming errors, not
// recoverable conditions.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
