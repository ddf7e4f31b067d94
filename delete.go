// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

// Erase - remove the node a cursor references
//
// erasing the end cursor is a no-op; the cursor must belong to this
// tree and is invalidated by the erase, stepping it afterwards is
// undefined
//
// removal splices without any rebalancing rotation, the AVL height
// bound is only restored along insertion paths (see package comment)
func (tree *Tree[K, V]) Erase(c Cursor[K, V]) {
	node := c.node
	if nil == node {
		return
	}
	parent := node.parent

	// leaf: detach from the parent
	if !node.hasChildren() {
		if node.isLeftChild() {
			parent.left = nil
		}
		if node.isRightChild() {
			parent.right = nil
		}
		if tree.root == node {
			tree.root = nil
		}
		tree.count -= 1
		tree.freeNode(node)
		return
	}

	// one child: splice it into the parent's slot
	if child, ok := node.onlyChild(); ok {
		if node.isLeftChild() {
			parent.left = child
		}
		if node.isRightChild() {
			parent.right = child
		}
		if tree.root == node {
			tree.root = child
		}
		child.parent = parent
		tree.count -= 1
		tree.freeNode(node)
		return
	}

	// two children: overwrite with the in-order predecessor then
	// remove that node instead, it has at most a left child
	predecessor := node.left.last()
	node.key = predecessor.key
	node.value = predecessor.value
	tree.Erase(Cursor[K, V]{node: predecessor})
}
