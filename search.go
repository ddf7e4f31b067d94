// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

// Find - locate a key, returning the end cursor when absent
//
// never modifies the tree, repeated lookups of an absent key keep
// returning the end cursor
func (tree *Tree[K, V]) Find(key K) Cursor[K, V] {
	if node, ok := tree.searchNode(key); ok {
		return Cursor[K, V]{node: node}
	}
	return Cursor[K, V]{}
}

// internal: iterative descent with an explicit found flag
func (tree *Tree[K, V]) searchNode(key K) (*Node[K, V], bool) {
	current := tree.root
	for nil != current {
		switch {
		case key == current.key:
			return current, true
		case key < current.key:
			current = current.left
		default:
			current = current.right
		}
	}
	return nil, false
}
