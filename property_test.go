package ordtree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// Model-based checking: every tree operation is mirrored on a plain slice
// and the tree is validated against the model and against Check after each
// step.

func TestRandomOperationsAgainstModel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	defer func() { gtrace.CoreTracer = gtrace.NoOpTrace }()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	rng := rand.New(rand.NewSource(42))
	tree := New[int]()
	model := []int{}
	next := 0

	for step := 0; step < 2000; step++ {
		switch rng.Intn(4) {
		case 0:
			tree.AddMax(next)
			model = append(model, next)
			next++
		case 1:
			tree.AddMin(next)
			model = append([]int{next}, model...)
			next++
		case 2:
			n, ok := tree.RemoveMin()
			if len(model) == 0 {
				require.False(t, ok, "step %d: removal on empty tree succeeded", step)
			} else {
				require.True(t, ok, "step %d: RemoveMin failed", step)
				require.Equal(t, model[0], n.Value(), "step %d: wrong minimum removed", step)
				model = model[1:]
			}
		case 3:
			n, ok := tree.RemoveMax()
			if len(model) == 0 {
				require.False(t, ok, "step %d: removal on empty tree succeeded", step)
			} else {
				require.True(t, ok, "step %d: RemoveMax failed", step)
				require.Equal(t, model[len(model)-1], n.Value(), "step %d: wrong maximum removed", step)
				model = model[:len(model)-1]
			}
		}
		require.NoError(t, tree.Check(), "step %d", step)
		require.Equal(t, len(model), tree.Size(), "step %d", step)
	}
	require.Equal(t, model, treeContent(tree))
}

func TestRandomSplitMergeAgainstModel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	defer func() { gtrace.CoreTracer = gtrace.NoOpTrace }()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		size := 1 + rng.Intn(120)
		tree := New[int]()
		var nodes []*Node[int]
		model := make([]int, 0, size)
		for i := 0; i < size; i++ {
			nodes = append(nodes, tree.AddMax(i))
			model = append(model, i)
		}
		at := rng.Intn(size)
		right, err := tree.SplitAfter(nodes[at])
		require.NoError(t, err, "round %d", round)
		require.NoError(t, tree.Check(), "round %d left", round)
		require.NoError(t, right.Check(), "round %d right", round)
		require.Equal(t, model[:at+1], treeContent(tree), "round %d left content", round)
		require.Equal(t, model[at+1:], treeContent(right), "round %d right content", round)

		// merging back is the identity on content and order
		require.NoError(t, tree.MergeAfter(right))
		require.NoError(t, tree.Check(), "round %d merged", round)
		require.Equal(t, model, treeContent(tree), "round %d merged content", round)
		require.True(t, right.IsEmpty())
	}
}

func TestSuccessorPredecessorInverse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	defer func() { gtrace.CoreTracer = gtrace.NoOpTrace }()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	rng := rand.New(rand.NewSource(99))
	tree := New[int]()
	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			tree.AddMax(i)
		} else {
			tree.AddMin(i)
		}
	}
	var prev *Node[int]
	for n := tree.Min(); n != nil; n = n.Successor() {
		require.Equal(t, prev, n.Predecessor())
		if prev != nil {
			require.Equal(t, n, prev.Successor())
		}
		prev = n
	}
	require.Equal(t, tree.Max(), prev)
	require.Nil(t, tree.Min().Predecessor())
	require.Nil(t, tree.Max().Successor())
}

func TestHeightBoundOnLargeAppend(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	defer func() { gtrace.CoreTracer = gtrace.NoOpTrace }()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New[int]()
	for i := 0; i < 1000; i++ {
		tree.AddMax(i)
	}
	bound := 1.44 * math.Log2(1001)
	require.LessOrEqual(t, float64(tree.Height()), bound,
		"height %d exceeds the AVL bound %.2f", tree.Height(), bound)
	// Check recomputes every cached subtree size bottom-up
	require.NoError(t, tree.Check())
	require.Equal(t, 1000, tree.Size())
}

func treeContent(tree *Tree[int]) []int {
	values := make([]int, 0, tree.Size())
	for v := range tree.RangeValues() {
		values = append(values, v)
	}
	return values
}
