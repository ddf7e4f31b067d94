// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap"
)

func TestFprintLayout(t *testing.T) {
	tree := avlmap.New[int, string]()
	*tree.Index(2) = "two"
	*tree.Index(1) = "one"
	*tree.Index(3) = "three"

	expected := "" +
		"       3\n" +
		"       /\n" +
		"2\n" +
		"       \\\n" +
		"       1\n" +
		"\n"
	assert.Equal(t, expected, tree.String())

	var b strings.Builder
	tree.Fprint(&b, true)
	expectedValues := "" +
		"       3 -> three\n" +
		"       /\n" +
		"2 -> two\n" +
		"       \\\n" +
		"       1 -> one\n" +
		"\n"
	assert.Equal(t, expectedValues, b.String())
}

func TestFprintEmpty(t *testing.T) {
	tree := avlmap.New[int, string]()
	assert.Equal(t, "\n", tree.String())
}

func TestFprintLineCount(t *testing.T) {
	tree := avlmap.New[int, string]()
	for _, key := range []int{50, 30, 80, 20, 40, 70, 90} {
		*tree.Index(key) = "x"
	}

	// one line per root, two per other node, one trailing blank
	out := tree.String()
	assert.Equal(t, 2*tree.Count(), strings.Count(out, "\n"))
	for _, key := range []string{"20", "30", "40", "50", "70", "80", "90"} {
		assert.Contains(t, out, key)
	}
}
