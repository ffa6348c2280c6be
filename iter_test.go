// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package suffixtree

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuffixesYieldsEveryStartExactlyOnce(t *testing.T) {
	tree, err := Build([]byte("mississippi"), '$')
	require.NoError(t, err)

	seen := make(map[int]bool)
	for start := range tree.Suffixes() {
		seen[start] = true
	}
	assert.Len(t, seen, tree.Len())
}

func TestSuffixesStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	tree, err := Build([]byte("mississippi"), '$')
	require.NoError(t, err)

	var visited int
	for range tree.Suffixes() {
		visited++
		if visited == 2 {
			break
		}
	}
	assert.Equal(t, 2, visited)
}

func TestLengthCandidatesMatchesTopK(t *testing.T) {
	tree, err := Build([]byte("banana"), '$')
	require.NoError(t, err)

	type pair struct {
		start, freq int
	}
	var got []pair
	for start, freq := range tree.LengthCandidates(2) {
		got = append(got, pair{start, freq})
	}
	require.NotEmpty(t, got)

	sort.Slice(got, func(i, j int) bool { return got[i].freq > got[j].freq })
	want, err := tree.TopK(2, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got[0].start)
}

func TestLengthCandidatesOutOfRangeYieldsNothing(t *testing.T) {
	tree, err := Build([]byte("banana"), '$')
	require.NoError(t, err)

	var count int
	for range tree.LengthCandidates(0) {
		count++
	}
	assert.Zero(t, count)

	for range tree.LengthCandidates(tree.Len()) {
		count++
	}
	assert.Zero(t, count)
}

func TestStartsMatchesLengthCandidatesKeys(t *testing.T) {
	tree, err := Build([]byte("banana"), '$')
	require.NoError(t, err)

	var fromStarts []int
	for start := range tree.Starts(3) {
		fromStarts = append(fromStarts, start)
	}

	var fromCandidates []int
	for start := range tree.LengthCandidates(3) {
		fromCandidates = append(fromCandidates, start)
	}

	assert.Equal(t, fromCandidates, fromStarts)
}
