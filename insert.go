// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

// Index - find the value slot for a key, inserting a new node with a
// zero value when the key is not present
//
// this operation never fails; the returned pointer stays valid until
// the node is erased or the tree is cleared
func (tree *Tree[K, V]) Index(key K) *V {
	if nil == tree.root {
		tree.root = tree.newNode(key)
		tree.count += 1
		return &tree.root.value
	}

	current := tree.root
descent:
	for {
		switch {
		case key == current.key:
			return &current.value
		case key < current.key:
			if nil == current.left {
				break descent
			}
			current = current.left
		default: // key > current.key
			if nil == current.right {
				break descent
			}
			current = current.right
		}
	}

	// not present: current is the last node visited and its child
	// slot on the key's side is empty
	node := tree.newNode(key)
	current.addChild(node)
	node.insertBalance(nil, node, &tree.root)
	tree.count += 1
	return &node.value
}
