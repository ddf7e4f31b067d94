// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

// allocate a new leaf node, reusing reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K) *Node[K, V] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		tree.totalNodes += 1
		return &Node[K, V]{
			key:    key,
			height: 1,
		}
	}
	p := tree.pool
	tree.pool = p.parent
	var value V
	p.key = key
	p.value = value
	p.height = 1
	p.balance = 0
	p.left = nil
	p.right = nil
	p.parent = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the tree's pool
func (tree *Tree[K, V]) freeNode(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V
	node.parent = tree.pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = zeroKey
	node.value = zeroValue
	node.height = 0
	node.balance = 0
	tree.freeNodes += 1

	tree.pool = node
}
