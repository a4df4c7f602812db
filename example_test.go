package ordtree_test

import (
	"fmt"

	"github.com/npillmayer/ordtree"
)

func Example() {
	tree := ordtree.New[string]()
	tree.AddMax("world")
	tree.AddMin("hello")
	mid := tree.AddMax("!")

	right, _ := tree.SplitBefore(mid)
	fmt.Println(tree.Values())
	fmt.Println(right.Values())

	_ = tree.MergeAfter(right)
	fmt.Println(tree.Values())
	// Output:
	// [hello world]
	// [!]
	// [hello world !]
}

func ExampleTree_Iterator() {
	tree := ordtree.New[int]()
	for i := 1; i <= 4; i++ {
		tree.AddMax(i * i)
	}
	it := tree.Iterator()
	for it.Next() {
		fmt.Print(it.Value(), " ")
	}
	fmt.Println(it.Err())
	// Output:
	// 1 4 9 16 <nil>
}
