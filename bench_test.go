package ordtree

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	gbtree "github.com/google/btree"
)

var rg = rand.New(rand.NewSource(0))

func BenchmarkAddMax(b *testing.B) {
	tree := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.AddMax(i)
	}
}

func BenchmarkAddMin(b *testing.B) {
	tree := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.AddMin(i)
	}
}

func BenchmarkAddBothEnds(b *testing.B) {
	tree := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i&1 == 0 {
			tree.AddMax(i)
		} else {
			tree.AddMin(i)
		}
	}
}

func BenchmarkRemoveMin(b *testing.B) {
	tree := New[int]()
	for i := 0; i < b.N; i++ {
		tree.AddMax(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.RemoveMin()
	}
}

func BenchmarkSplitMerge(b *testing.B) {
	const size = 1024
	tree := New[int]()
	nodes := make([]*Node[int], 0, size)
	for i := 0; i < size; i++ {
		nodes = append(nodes, tree.AddMax(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		right, err := tree.SplitAfter(nodes[rg.Intn(size)])
		if err != nil {
			b.Fatal(err)
		}
		if err := tree.MergeAfter(right); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	const size = 4096
	tree := New[int]()
	for i := 0; i < size; i++ {
		tree.AddMax(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := tree.Iterator()
		for it.Next() {
			_ = it.Value()
		}
	}
}

// Baselines: sequential appends into key-comparing containers. These pay
// for a comparison-based descent on every insert, where AddMax attaches in
// O(1) at the cached maximum.

func BenchmarkBaselineGoogleBTreeAppend(b *testing.B) {
	tr := gbtree.New(32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.ReplaceOrInsert(gbtree.Int(i))
	}
}

func BenchmarkBaselineGodsAVLAppend(b *testing.B) {
	tr := avltree.NewWithIntComparator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Put(i, i)
	}
}
