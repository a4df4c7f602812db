package ordtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Structural child links are drawn as solid
// edges, successor threading as dashed edges.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=box];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	for n := range tree.RangeNodes() {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%v\\nh=%d #%d", n.value, n.height, n.size)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"];\n", ID, label)
	}
	for n := range tree.RangeNodes() {
		ID := ids.find(n)
		if n.left != nil {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(n.left))
		}
		if n.right != nil {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(n.right))
		}
		if s := n.Successor(); s != nil {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed,color=gray,constraint=false];\n",
				ID, ids.find(s))
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}
