// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree
//
// render converts a value to its display text; returns the maximum
// depth of the tree
func (tree *Tree[T]) Print(w io.Writer, render func(*T) string) int {
	return printTree(w, tree.origin.left, "", root, render)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, tree *Link[T], prefix string, br branch, render func(*T) string) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, render)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%q %+2d\n", render(tree.item), tree.balance)
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, render)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}

// Graphviz - write the tree as a dot format graph
//
// nodes are coloured by balance factor: black when even, blue when
// leaning left, orange when leaning right
func (tree *Tree[T]) Graphviz(w io.Writer, render func(*T) string) {
	fmt.Fprintf(w, "digraph {\n")
	fmt.Fprintf(w, "node[style=filled,fontcolor=white];\n")

	end := tree.End()
	for curr := tree.Begin(); curr != end; curr = curr.Next() {
		colour := "black"
		if bf := curr.BalanceFactor(); bf < 0 {
			colour = "blue"
		} else if bf > 0 {
			colour = "orange"
		}
		fmt.Fprintf(w, "%q[fillcolor=%s];", render(curr.Item()), colour)
	}
	fmt.Fprintf(w, "\n")
	for curr := tree.Begin(); curr != end; curr = curr.Next() {
		if child := curr.Child(false); child.HasValue() {
			fmt.Fprintf(w, "%q:sw->%q:n;", render(curr.Item()), render(child.Item()))
		}
		if child := curr.Child(true); child.HasValue() {
			fmt.Fprintf(w, "%q:se->%q:n;", render(curr.Item()), render(child.Item()))
		}
	}
	fmt.Fprintf(w, "\n}\n")
}
