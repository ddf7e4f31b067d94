// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

import (
	"github.com/phf/go-queue/queue"
)

// Clone - deep copy of a tree
//
// the copy shares no nodes with the original; pairs are re-inserted
// breadth first so the copy also comes out freshly balanced
func (tree *Tree[K, V]) Clone() *Tree[K, V] {
	result := New[K, V]()
	result.CopyFrom(tree)
	return result
}

// CopyFrom - replace the contents with a deep copy of src
//
// assigning a tree to itself leaves it unchanged
func (tree *Tree[K, V]) CopyFrom(src *Tree[K, V]) {
	if tree == src {
		return
	}

	tree.Clear()
	if nil == src.root {
		return
	}

	q := queue.New()
	q.PushBack(src.root)

	for q.Len() > 0 {
		node := q.PopFront().(*Node[K, V])
		*tree.Index(node.key) = node.value
		if nil != node.left {
			q.PushBack(node.left)
		}
		if nil != node.right {
			q.PushBack(node.right)
		}
	}
}

// MoveFrom - take over the whole node graph of src leaving src empty
//
// no nodes are allocated or copied, previous contents of the
// receiver are destroyed
func (tree *Tree[K, V]) MoveFrom(src *Tree[K, V]) {
	if tree == src {
		return
	}
	tree.Clear()
	tree.root = src.root
	tree.count = src.count
	src.root = nil
	src.count = 0
}
