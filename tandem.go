// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package suffixtree

import "github.com/arborio/suffixtree/internal/slicesutil"

// LongestTandemRepeat returns the start offset and total length of the
// longest substring of the form αα (two adjacent, identical copies of
// some non-empty α) occurring in the indexed text, breaking ties by
// earliest start offset. If no tandem repeat exists, it returns (0, 0).
//
// The search relies on a classical suffix-tree property: a repeat of
// length 2d at position i exists exactly when suffix i and suffix i+d
// share a common ancestor at string depth >= d, i.e. when both i and
// i+d appear in the same node's leaf set at a depth that covers the
// gap between them. Walking the tree bottom-up, merging each node's
// children's sorted leaf-position lists into its own, and two-finger
// scanning the merged list for the widest gap not exceeding the node's
// own string depth yields that node's longest repeat; the widest gap over
// all nodes, earliest start on ties, is the answer.
//
// LongestTandemRepeat never calls a clock and never logs: timing and
// logging are concerns of the caller (the reference CLI), not of the
// core (§5, §9 "profiling as a driver-only concern").
func (t *Tree) LongestTandemRepeat() (start, length int) {
	a := t.arena

	order := make([]int32, 0, len(a.nodes))
	pending := make([]int32, 0, len(a.nodes))
	pending = append(pending, rootIdx)
	for len(pending) > 0 {
		idx := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		order = append(order, idx)
		n := a.get(idx)
		for _, c := range n.children {
			pending = append(pending, c)
		}
	}

	// leafLists[idx] holds the ascending-sorted suffix-start positions of
	// every leaf in idx's subtree. Entries are released (set to nil) as
	// soon as a parent has merged them in, so that peak memory stays O(n)
	// rather than O(n) per tree level.
	leafLists := make([][]int32, len(a.nodes))

	var bestStart, bestGap int32

	for k := len(order) - 1; k >= 0; k-- {
		idx := order[k]
		n := a.get(idx)

		if n.isLeaf() {
			leafLists[idx] = []int32{n.reprSuffix}
			continue
		}

		var merged []int32
		for _, c := range n.children {
			merged = slicesutil.MergeSorted(nil, merged, leafLists[c])
			leafLists[c] = nil
		}
		leafLists[idx] = merged

		if len(merged) < 2 {
			continue
		}

		gap, pos := widestGapWithin(merged, n.stringDepth)
		if gap == 0 {
			continue
		}
		if gap > bestGap || (gap == bestGap && pos < bestStart) {
			bestGap = gap
			bestStart = pos
		}
	}

	start, length = int(bestStart), int(2*bestGap)

	return start, length
}

// widestGapWithin finds, within an ascending-sorted slice of distinct
// positions, the pair (l, r) maximizing list[r]-list[l] subject to
// list[r]-list[l] <= maxGap, returning that gap and list[l] (the earlier
// of the two positions). It returns (0, 0) if no pair satisfies the
// bound.
//
// The left finger only ever advances, never retreats, as the right
// finger sweeps forward: once list[l] is the leftmost position still
// within maxGap of list[r], it remains admissible (or is advanced past)
// for every later r, since positions only grow. That makes the whole
// scan O(len(list)).
func widestGapWithin(list []int32, maxGap int32) (gap, start int32) {
	l := 0
	for r := 1; r < len(list); r++ {
		for list[r]-list[l] > maxGap {
			l++
		}
		g := list[r] - list[l]
		if g > gap {
			gap = g
			start = list[l]
		}
	}
	return gap, start
}
