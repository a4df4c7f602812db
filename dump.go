package ordtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dumper writes an indented, optionally colored structure dump of a tree,
// one node per line, right subtree above the left one so that the output
// reads top-to-bottom as max-to-min.
type Dumper struct {
	valueColor *color.Color
	aggrColor  *color.Color
	linewidth  int // clamp for long value renderings
}

// NewDumper creates a dumper for console output. When stdout is a
// terminal, values are colored and lines are clamped to the terminal
// width; otherwise the dump is plain and unclamped.
func NewDumper() *Dumper {
	d := &Dumper{linewidth: 0}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		d.valueColor = color.New(color.FgBlue, color.Bold)
		d.aggrColor = color.New(color.FgHiBlack)
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			d.linewidth = w
		}
	}
	return d
}

// Dump writes the structure of tree to w.
func Dump[T any](d *Dumper, tree *Tree[T], w io.Writer) {
	if tree.IsEmpty() {
		fmt.Fprintln(w, "·")
		return
	}
	dumpNode(d, tree.root(), 0, w)
}

func dumpNode[T any](d *Dumper, n *Node[T], depth int, w io.Writer) {
	if n == nil {
		return
	}
	dumpNode(d, n.right, depth+1, w)
	value := fmt.Sprintf("%v", n.value)
	aggr := fmt.Sprintf("  (h=%d #%d)", n.height, n.size)
	indent := strings.Repeat("   ", depth)
	if d.linewidth > 0 && len(indent)+utf8.RuneCountInString(value)+len(aggr) > d.linewidth {
		// clamp on runes, never inside a multibyte sequence
		keep := d.linewidth - len(indent) - len(aggr) - 1
		if keep > 0 {
			if runes := []rune(value); keep < len(runes) {
				value = string(runes[:keep]) + "…"
			}
		}
	}
	if d.valueColor != nil {
		value = d.valueColor.Sprint(value)
		aggr = d.aggrColor.Sprint(aggr)
	}
	fmt.Fprintf(w, "%s%s%s\n", indent, value, aggr)
	dumpNode(d, n.left, depth+1, w)
}
