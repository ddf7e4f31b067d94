// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

import (
	"golang.org/x/exp/constraints"
)

// Tree - type to hold the root node of a tree
//
// the zero value is not usable, call New
type Tree[K constraints.Ordered, V any] struct {
	root  *Node[K, V]
	count int

	pool       *Node[K, V] // linked list of reclaimed nodes
	totalNodes int         // total nodes created by this tree
	freeNodes  int         // number of nodes in the pool
}

// New - create an initially empty tree
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}
