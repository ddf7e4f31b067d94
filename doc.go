// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avlmap - an ordered map from unique keys to values backed
// by an AVL balanced tree with parent pointers, so that cursors can
// step through the nodes in key order without an auxiliary stack
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Insertion keeps every node's balance factor within {-1, 0, +1}.
// Erase splices nodes out without any rebalancing pass, so a long run
// of deletions can degrade the shape of the tree while key ordering
// stays correct; a caller that deletes heavily and cares about worst
// case search depth can rebuild a balanced tree with Clone.
package avlmap
