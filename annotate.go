// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package suffixtree

// annotate performs the single O(n) post-order pass (§4.3) that every
// query later relies on: each node's string_depth, num_leaves and
// repr_suffix are computed exactly once, here, and never touched again.
//
// Rather than recurse, it uses an explicit int32 handle stack in the
// manner of fox's iter.go traversal stack, generalized from a stack of
// *node edge-groups down to a stack of bare arena handles, since our
// nodes need no per-kind (static/param/wildcard) grouping.
//
// The traversal runs in two linear sweeps over one materialized visit
// order:
//
//  1. A DFS from the root, pushing handles onto order as they're popped.
//     Because a parent is always popped (and its string_depth finalized)
//     before any of its children are pushed, string_depth can be filled
//     in top-down during this same sweep.
//  2. A walk of order back-to-front. Reversing a "parent before every
//     descendant" order yields a valid post-order (every descendant
//     before its parent), which is exactly what aggregating num_leaves
//     and repr_suffix bottom-up requires.
func annotate(a *arena, textLen int32) {
	root := a.get(rootIdx)
	root.stringDepth = 0

	order := make([]int32, 0, len(a.nodes))
	pending := make([]int32, 0, len(a.nodes))
	pending = append(pending, rootIdx)

	for len(pending) > 0 {
		idx := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		order = append(order, idx)

		n := a.get(idx)
		for _, c := range n.children {
			child := a.get(c)
			child.stringDepth = n.stringDepth + a.edgeLength(child)
			pending = append(pending, c)
		}
	}

	for k := len(order) - 1; k >= 0; k-- {
		n := a.get(order[k])

		if n.isLeaf() {
			// A leaf's path from the root spells out a full suffix, so
			// its starting position in the text is recovered directly
			// from the suffix's length: text length minus string depth.
			n.numLeaves = 1
			n.reprSuffix = textLen - n.stringDepth
			continue
		}

		// repr_suffix is the smallest suffix start in the subtree, i.e. the
		// first occurrence of this node's path label in the text.
		var leaves, repr int32
		repr = nilIdx
		for _, c := range n.children {
			child := a.get(c)
			leaves += child.numLeaves
			if repr == nilIdx || child.reprSuffix < repr {
				repr = child.reprSuffix
			}
		}
		n.numLeaves = leaves
		n.reprSuffix = repr
	}
}
