// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

import (
	"fmt"

	"github.com/phf/go-queue/queue"
	"golang.org/x/exp/constraints"
)

// SanityCheck - read-only structural integrity probe
//
// walks the tree breadth first verifying that no key occurs twice,
// that every node orders correctly against its direct children, that
// no node is reachable through two paths and that the reachable node
// count equals Count
//
// prints a diagnostic for the first violation found and returns
// false; it never repairs anything, a false result means the tree's
// invariants are already broken
func (tree *Tree[K, V]) SanityCheck() bool {
	if nil == tree.root {
		if 0 != tree.count {
			fmt.Printf("avlmap: empty tree has count: %d\n", tree.count)
			return false
		}
		return true
	}

	seen := make(map[K]struct{})
	enqueued := make(map[*Node[K, V]]struct{})

	q := queue.New()
	q.PushBack(tree.root)
	enqueued[tree.root] = struct{}{}

	measured := 0

	for q.Len() > 0 {
		current := q.PopFront().(*Node[K, V])

		if _, ok := seen[current.key]; ok {
			fmt.Printf("avlmap: duplicate key: %v\n", current.key)
			return false
		}
		seen[current.key] = struct{}{}

		if nil != current.left {
			if current.key <= current.left.key {
				fmt.Printf("avlmap: order violation: %v has left child: %v\n", current.key, current.left.key)
				return false
			}
			if _, ok := enqueued[current.left]; ok {
				fmt.Printf("avlmap: circular reference at key: %v\n", current.left.key)
				return false
			}
			enqueued[current.left] = struct{}{}
			q.PushBack(current.left)
		}

		if nil != current.right {
			if current.key >= current.right.key {
				fmt.Printf("avlmap: order violation: %v has right child: %v\n", current.key, current.right.key)
				return false
			}
			if _, ok := enqueued[current.right]; ok {
				fmt.Printf("avlmap: circular reference at key: %v\n", current.right.key)
				return false
			}
			enqueued[current.right] = struct{}{}
			q.PushBack(current.right)
		}

		measured += 1
	}

	if measured != tree.count {
		fmt.Printf("avlmap: node count: %d  expected: %d\n", measured, tree.count)
		return false
	}
	return true
}

// CheckUp - check the parent pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp[K constraints.Ordered, V any](p *Node[K, V], parent *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.parent != parent {
		fmt.Printf("avlmap: fail at node: %v  bad parent link\n", p.key)
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}
