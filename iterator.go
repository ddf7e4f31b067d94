// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

import (
	"golang.org/x/exp/constraints"
)

// Cursor - a position inside a tree
//
// the zero value is the end cursor, it is the same for every tree and
// cursors are comparable with ==
//
// a cursor holds no validity across structural mutation of its tree:
// erasing the referenced node invalidates the cursor and stepping it
// afterwards is undefined
type Cursor[K constraints.Ordered, V any] struct {
	node *Node[K, V]
}

// First - cursor on the node with the lowest key value, the end
// cursor when the tree is empty
func (tree *Tree[K, V]) First() Cursor[K, V] {
	return Cursor[K, V]{node: tree.root.first()}
}

// Last - cursor on the node with the highest key value, the end
// cursor when the tree is empty
func (tree *Tree[K, V]) Last() Cursor[K, V] {
	return Cursor[K, V]{node: tree.root.last()}
}

// End - the cursor one past the highest key, never dereferenceable
func (tree *Tree[K, V]) End() Cursor[K, V] {
	return Cursor[K, V]{}
}

// IsEnd - true for the end cursor
func (c Cursor[K, V]) IsEnd() bool {
	return nil == c.node
}

// Node - the underlying node, nil for the end cursor
func (c Cursor[K, V]) Node() *Node[K, V] {
	return c.node
}

// Key - the key at the cursor, must not be called on the end cursor
func (c Cursor[K, V]) Key() K {
	return c.node.key
}

// Value - pointer to the value at the cursor for reading or updating,
// must not be called on the end cursor
func (c Cursor[K, V]) Value() *V {
	return &c.node.value
}

// Next - cursor on the node with the next highest key, the end cursor
// after the last node; stepping the end cursor stays at the end
func (c Cursor[K, V]) Next() Cursor[K, V] {
	if nil == c.node {
		return c
	}
	return Cursor[K, V]{node: c.node.next()}
}

// Prev - cursor on the node with the next lowest key, the end cursor
// before the first node; stepping the end cursor stays at the end
func (c Cursor[K, V]) Prev() Cursor[K, V] {
	if nil == c.node {
		return c
	}
	return Cursor[K, V]{node: c.node.prev()}
}

// internal: successor through the parent links
// either the lowest node of the right sub-tree or the first ancestor
// reached from the left side
func (p *Node[K, V]) next() *Node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p {
		if p.isLeftChild() {
			return p.parent
		}
		p = p.parent
	}
	return nil
}

// internal: predecessor through the parent links, mirror of next
func (p *Node[K, V]) prev() *Node[K, V] {
	if nil != p.left {
		return p.left.last()
	}
	for nil != p {
		if p.isRightChild() {
			return p.parent
		}
		p = p.parent
	}
	return nil
}
