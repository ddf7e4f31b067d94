// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/btree"

	"github.com/bitmark-inc/avlmap"
)

// drive the tree and a reference ordered map through the same random
// operation sequence and require identical observable behaviour
func TestAgainstReferenceMap(t *testing.T) {
	r := rand.New(rand.NewSource(20200819))

	tree := avlmap.New[int, int]()
	ref := btree.NewMap[int, int](32)

	for op := 0; op < 20000; op += 1 {
		key := r.Intn(500)

		switch r.Intn(10) {
		case 0, 1, 2: // erase
			cursor := tree.Find(key)
			_, present := ref.Get(key)
			assert.Equal(t, present, !cursor.IsEnd(), "presence mismatch for key %d", key)
			tree.Erase(cursor)
			ref.Delete(key)

		case 3: // lookup
			cursor := tree.Find(key)
			value, present := ref.Get(key)
			assert.Equal(t, present, !cursor.IsEnd(), "presence mismatch for key %d", key)
			if present {
				assert.Equal(t, value, *cursor.Value(), "value mismatch for key %d", key)
			}

		default: // insert or overwrite
			value := r.Int()
			*tree.Index(key) = value
			ref.Set(key, value)
		}

		assert.Equal(t, ref.Len(), tree.Count())
	}

	// identical contents in ascending order
	keys := make([]int, 0, ref.Len())
	values := make([]int, 0, ref.Len())
	ref.Scan(func(key int, value int) bool {
		keys = append(keys, key)
		values = append(values, value)
		return true
	})

	i := 0
	for cursor := tree.First(); !cursor.IsEnd(); cursor = cursor.Next() {
		assert.Equal(t, keys[i], cursor.Key())
		assert.Equal(t, values[i], *cursor.Value())
		i += 1
	}
	assert.Equal(t, len(keys), i)

	// and in descending order
	i = len(keys) - 1
	for cursor := tree.Last(); !cursor.IsEnd(); cursor = cursor.Prev() {
		assert.Equal(t, keys[i], cursor.Key())
		i -= 1
	}
	assert.Equal(t, -1, i)

	assert.True(t, tree.SanityCheck())
	assert.True(t, tree.CheckUp())
}
