// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap"
)

func TestSortedTraversal(t *testing.T) {
	tree := avlmap.New[int, string]()
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		*tree.Index(key) = "x"
	}

	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, keysOf(tree))
}

func TestBackwardTraversal(t *testing.T) {
	tree := avlmap.New[int, string]()
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		*tree.Index(key) = "x"
	}

	keys := []int{}
	for cursor := tree.Last(); !cursor.IsEnd(); cursor = cursor.Prev() {
		keys = append(keys, cursor.Key())
	}
	assert.Equal(t, []int{9, 8, 7, 5, 4, 3, 1}, keys)
}

func TestFindMissIsIdempotent(t *testing.T) {
	tree := avlmap.New[int, string]()
	for _, key := range []int{5, 3, 8} {
		*tree.Index(key) = "x"
	}

	for i := 0; i < 5; i += 1 {
		cursor := tree.Find(4)
		assert.True(t, cursor.IsEnd(), "lookup of absent key")
		assert.Equal(t, tree.End(), cursor)
		assert.Equal(t, 3, tree.Count(), "find must not insert")
	}
}

func TestCursorEquality(t *testing.T) {
	tree := avlmap.New[int, string]()
	for _, key := range []int{5, 3, 8} {
		*tree.Index(key) = "x"
	}

	assert.Equal(t, tree.Find(3), tree.Find(3))
	assert.Equal(t, tree.Find(3), tree.First())
	assert.Equal(t, tree.Find(5), tree.First().Next())
	assert.Equal(t, tree.Find(8), tree.Last())
	assert.Equal(t, tree.End(), tree.Last().Next())
	assert.Equal(t, tree.End(), tree.First().Prev())
}

func TestEndCursorStepping(t *testing.T) {
	tree := avlmap.New[int, string]()
	*tree.Index(1) = "x"

	end := tree.End()
	assert.Equal(t, end, end.Next())
	assert.Equal(t, end, end.Prev())
	assert.True(t, end.IsEnd())
	assert.Nil(t, end.Node())

	empty := avlmap.New[int, string]()
	assert.True(t, empty.First().IsEnd())
	assert.True(t, empty.Last().IsEnd())
}

func TestValueUpdateThroughCursor(t *testing.T) {
	tree := avlmap.New[string, int]()
	*tree.Index("a") = 1
	*tree.Index("b") = 2

	cursor := tree.Find("b")
	*cursor.Value() += 40

	assert.Equal(t, 42, *tree.Index("b"))
	assert.Equal(t, "b", cursor.Key())
}

func TestNodeAccessors(t *testing.T) {
	tree := avlmap.New[int, string]()
	for _, key := range []int{50, 30, 80, 20, 40, 70, 90} {
		*tree.Index(key) = "x"
	}

	root := tree.Root()
	assert.NotNil(t, root)
	assert.Nil(t, root.Parent())
	assert.Equal(t, 0, root.Depth())

	leaf := tree.Find(20).Node()
	assert.Equal(t, 2, leaf.Depth())
	assert.Equal(t, 30, leaf.Parent().Key())
	assert.Equal(t, "x", *leaf.Value())
}
