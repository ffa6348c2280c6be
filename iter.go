// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package suffixtree

import (
	"iter"

	"github.com/arborio/suffixtree/internal/iterutil"
)

// Suffixes returns a range iterator over every suffix start offset of the
// indexed text, in lexicographic order of the suffixes themselves. It
// walks the tree depth-first with an explicit handle stack (mirroring
// fox's iter.go traversal stack, generalized from a stack of edge groups
// down to a stack of bare arena handles), descending children in
// ascending key order so that leaves are visited in exactly the order
// they'd appear in the tree's left-to-right layout: lexicographic order
// of the suffixes they represent.
func (t *Tree) Suffixes() iter.Seq[int] {
	return func(yield func(int) bool) {
		a := t.arena
		stack := make([]int32, 0, 64)
		stack = append(stack, rootIdx)
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			n := a.get(idx)
			if n.isLeaf() {
				if !yield(int(n.reprSuffix)) {
					return
				}
				continue
			}
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i])
			}
		}
	}
}

// LengthCandidates returns a range iterator over every distinct substring
// of the given length, in lexicographic order, yielding its start offset
// and occurrence count. An out-of-range length (outside [1, t.Len()))
// yields nothing rather than erroring, since an iterator has no error
// return; callers that need the range validated should use TopK.
func (t *Tree) LengthCandidates(length int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if length < 1 || length >= t.Len() {
			return
		}
		for _, c := range t.lengthCandidates(int32(length)) {
			if !yield(int(c.start), int(c.freq)) {
				return
			}
		}
	}
}

// Starts is like LengthCandidates but yields only the start offsets,
// dropping the occurrence counts.
func (t *Tree) Starts(length int) iter.Seq[int] {
	return iterutil.Left(t.LengthCandidates(length))
}
