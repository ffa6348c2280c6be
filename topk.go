// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package suffixtree

import "sort"

// lengthCandidate is one distinct substring of a fixed length, found by
// walking the tree down to the first point (explicit node or mid-edge
// position) at that string depth.
type lengthCandidate struct {
	start int32 // offset of a representative occurrence in the text
	freq  int32 // number of occurrences, i.e. the subtree's leaf count
}

// TopK returns the start offset of the k-th most frequent distinct
// substring of the given length (1-based rank, most frequent first),
// breaking ties lexicographically ascending. length must be in
// [1, t.Len()); k must be in [1, number of distinct length-candidates].
//
// TopK never calls a clock and never logs: timing and logging are
// concerns of the caller (the reference CLI), not of the core (§5, §9
// "profiling as a driver-only concern").
func (t *Tree) TopK(length, k int) (int, error) {
	n := t.Len()
	if length < 1 || length >= n {
		return 0, newRangeError(length, n)
	}

	candidates := t.lengthCandidates(int32(length))

	if k < 1 || k > len(candidates) {
		return 0, newRankError(k, len(candidates))
	}

	// A stable sort keeps the lexicographic (DFS discovery) order of
	// lengthCandidates as the tie-break among equally frequent candidates.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].freq > candidates[j].freq
	})

	return int(candidates[k-1].start), nil
}

// lengthCandidates enumerates every distinct substring of the given
// string depth by walking the tree with an explicit handle stack,
// descending children in ascending key order. Whenever a node's own
// string depth reaches or exceeds length, the root-to-node path has just
// crossed that depth: the node's subtree shares this length-prefix, so
// it contributes exactly one candidate and its own children are not
// explored further. Because children are always pushed in descending
// order (so the smallest key pops first) and the stack is LIFO, a
// subtree is always fully resolved - including every deeper candidate it
// contains - before its next sibling is even considered, which makes the
// resulting slice a true lexicographic (pre-order) enumeration.
func (t *Tree) lengthCandidates(length int32) []lengthCandidate {
	a := t.arena
	var candidates []lengthCandidate

	stack := make([]int32, 0, 64)
	stack = append(stack, rootIdx)
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := a.get(idx)
		if idx != rootIdx && n.stringDepth >= length {
			candidates = append(candidates, lengthCandidate{start: n.reprSuffix, freq: n.numLeaves})
			continue
		}

		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}

	return candidates
}
