// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

import (
	"golang.org/x/exp/constraints"
)

// Node - a single key to value binding inside a tree
//
// a node never moves once created, its address stays valid until it
// is erased or the tree is cleared
type Node[K constraints.Ordered, V any] struct {
	left    *Node[K, V] // owned left sub-tree
	right   *Node[K, V] // owned right sub-tree
	parent  *Node[K, V] // back link, nil only for the root
	key     K
	value   V
	height  int // longest path down to a leaf, a leaf is 1
	balance int // right height - left height, advisory
}

// Key - read the key from a node
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - pointer to the value part for reading or updating in place
func (p *Node[K, V]) Value() *V {
	return &p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.parent
}

// Depth - number of links between a node and the root
func (p *Node[K, V]) Depth() int {
	count := 0
	parent := p.parent
	for nil != parent {
		count += 1
		parent = parent.parent
	}
	return count
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

func (p *Node[K, V]) isLeftChild() bool {
	return nil != p.parent && p.parent.left == p
}

func (p *Node[K, V]) isRightChild() bool {
	return nil != p.parent && p.parent.right == p
}

func (p *Node[K, V]) hasChildren() bool {
	return nil != p.left || nil != p.right
}

// link node below p on the side its key sorts to
// the child slot on that side must be empty
func (p *Node[K, V]) addChild(node *Node[K, V]) {
	node.parent = p
	if node.key > p.key {
		p.right = node
	}
	if node.key < p.key {
		p.left = node
	}
}

// swap a direct child for a replacement sub-tree, relinking both ways
// no-op unless old is a direct child of p
func (p *Node[K, V]) replaceChild(old, replacement *Node[K, V]) {
	if nil == old || nil == replacement {
		return
	}
	if old == p.left {
		p.left = replacement
		p.left.parent = p
		old.parent = nil
	}
	if old == p.right {
		p.right = replacement
		p.right.parent = p
		old.parent = nil
	}
}

// the sole child of a node, ok is false for zero or two children
func (p *Node[K, V]) onlyChild() (*Node[K, V], bool) {
	if nil != p.left && nil == p.right {
		return p.left, true
	}
	if nil == p.left && nil != p.right {
		return p.right, true
	}
	return nil, false
}
