// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

// outcome of a rebalancing attempt
type rotation int

const (
	rotatedNone rotation = iota
	rotatedLeft
	rotatedRight
)

// rotate about p promoting the right child
//
// rotation only rewrites node links; when p is the tree root the
// caller must move the root pointer to the promoted child first
func (p *Node[K, V]) rotateLeft() {
	if nil == p.right {
		return
	}
	promote := p.right
	p.right = nil
	if nil != p.parent {
		p.parent.replaceChild(p, promote)
	}
	p.parent = promote
	if nil != promote.left {
		p.right = promote.left
		p.right.parent = p
		promote.left = nil
	}
	promote.left = p
}

// rotate about p promoting the left child, mirror of rotateLeft
func (p *Node[K, V]) rotateRight() {
	if nil == p.left {
		return
	}
	promote := p.left
	p.left = nil
	if nil != p.parent {
		p.parent.replaceChild(p, promote)
	}
	p.parent = promote
	if nil != promote.right {
		p.left = promote.right
		p.left.parent = p
		promote.right = nil
	}
	promote.right = p
}

// recompute the balance of p from its children's heights and rotate
// when the bound is exceeded
//
// previous is the child of p on the descent path of the inserted key:
// when the inserted key lies on the inner side of previous a rotation
// about previous turns the double rotation case into the single one
// before p itself is rotated; root is rewritten when p was the root
func (p *Node[K, V]) tryFixBalance(previous, inserted *Node[K, V], root **Node[K, V]) rotation {
	heightL := 0
	heightR := 0
	if nil != p.left {
		heightL = p.left.height
	}
	if nil != p.right {
		heightR = p.right.height
	}
	p.balance = heightR - heightL

	switch {
	case p.balance > 1:
		if nil != previous && inserted.key < previous.key {
			previous.rotateRight()
		}
		if p == *root {
			*root = p.right
			p.right.parent = nil
		}
		p.rotateLeft()
		return rotatedLeft

	case p.balance < -1:
		if nil != previous && inserted.key > previous.key {
			previous.rotateLeft()
		}
		if p == *root {
			*root = p.left
			p.left.parent = nil
		}
		p.rotateRight()
		return rotatedRight
	}
	return rotatedNone
}

// walk from the inserted leaf up to the root refreshing cached
// heights and rotating wherever the balance bound is exceeded
func (p *Node[K, V]) insertBalance(previous, inserted *Node[K, V], root **Node[K, V]) {
	if p.hasChildren() {
		heightL := 0
		heightR := 0
		if nil != p.left {
			heightL = p.left.height
		}
		if nil != p.right {
			heightR = p.right.height
		}
		if heightL > heightR {
			p.height = heightL + 1
		} else {
			p.height = heightR + 1
		}
	}

	rotated := p.tryFixBalance(previous, inserted, root)

	// a rotation reshapes the sub-tree now rooted at the promoted
	// node, its cached heights must be rebuilt before the walk
	// continues upward
	if rotatedNone != rotated && nil != p.parent {
		p.parent.recomputeHeight()
	}

	if nil != p.parent {
		p.parent.insertBalance(p, inserted, root)
	}
}

// internal: rebuild the cached heights of a whole sub-tree
func (p *Node[K, V]) recomputeHeight() int {
	if nil == p {
		return 0
	}
	heightL := p.left.recomputeHeight()
	heightR := p.right.recomputeHeight()
	if heightL > heightR {
		p.height = heightL + 1
	} else {
		p.height = heightR + 1
	}
	return p.height
}
