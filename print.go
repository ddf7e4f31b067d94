// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

import (
	"fmt"
	"io"
	"strings"
)

// one step of indentation per level of depth
const printIndent = "       "

// Fprint - write an ASCII graphic rendering of the tree to w
//
// nodes appear top to bottom in descending key order, indented by
// depth, with a branch mark on the line above ('\', node is a left
// child) or below ('/', node is a right child); the layout is for
// visual debugging only and is not a serialization format
func (tree *Tree[K, V]) Fprint(w io.Writer, showValues bool) {
	for node := tree.root.last(); nil != node; node = node.prev() {
		indent := strings.Repeat(printIndent, node.Depth())
		switch {
		case nil == node.parent: // root
			node.fprint(w, indent, showValues)
		case node.isLeftChild():
			fmt.Fprintf(w, "%s\\\n", indent)
			node.fprint(w, indent, showValues)
		default: // right child
			node.fprint(w, indent, showValues)
			fmt.Fprintf(w, "%s/\n", indent)
		}
	}
	fmt.Fprintln(w)
}

// String - rendering of the keys only, using Fprint
func (tree *Tree[K, V]) String() string {
	var b strings.Builder
	tree.Fprint(&b, false)
	return b.String()
}

// internal: one node line
func (p *Node[K, V]) fprint(w io.Writer, indent string, showValues bool) {
	if showValues {
		fmt.Fprintf(w, "%s%v -> %v\n", indent, p.key, p.value)
	} else {
		fmt.Fprintf(w, "%s%v\n", indent, p.key)
	}
}
