// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

import (
	"github.com/phf/go-queue/queue"
)

// Clear - destroy every node leaving an empty tree
//
// teardown is breadth first through an explicit work queue so stack
// use does not grow with the height of the tree
func (tree *Tree[K, V]) Clear() {
	if nil == tree.root {
		return
	}

	q := queue.New()
	q.PushBack(tree.root)
	tree.root = nil

	for q.Len() > 0 {
		node := q.PopFront().(*Node[K, V])
		if nil != node.left {
			q.PushBack(node.left)
		}
		if nil != node.right {
			q.PushBack(node.right)
		}
		tree.count -= 1
		tree.freeNode(node)
	}
}
