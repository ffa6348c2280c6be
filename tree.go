// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package suffixtree

// Tree is an immutable suffix-tree index over a fixed text, built once by
// Build and safe for concurrent read-only use by any number of goroutines
// afterward: every query only reads arena fields written during
// construction and annotation, never mutates them (§3 Ownership,
// §5 Concurrency).
type Tree struct {
	arena  *arena
	txt    text
	thresh int
}

// Build constructs a Tree over input using Ukkonen's algorithm, then runs
// the post-order annotation pass every query depends on. sentinel is
// appended to input exactly once and must not already occur in it; it is
// what turns every suffix into a distinct leaf by guaranteeing no suffix
// is a prefix of another.
//
// Build runs in O(n) time and space, where n = len(input)+1, and is the
// only mutating operation in the package: once it returns, the resulting
// Tree never changes. Build never calls a clock and never logs: timing
// and logging are concerns of the caller (the reference CLI), not of the
// core (§5, §9 "profiling as a driver-only concern").
func Build(input []byte, sentinel byte, opts ...Option) (*Tree, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt.apply(cfg)
	}

	txt, err := newText(input, sentinel)
	if err != nil {
		return nil, err
	}

	b := newBuilder(txt, cfg.linearThresh)
	a := b.build()
	annotate(a, int32(len(txt)))

	return &Tree{arena: a, txt: txt, thresh: cfg.linearThresh}, nil
}

// Len returns the length of the indexed text, sentinel included.
func (t *Tree) Len() int {
	return len(t.txt)
}

// NodeCount returns the number of nodes allocated in the tree's arena,
// sentinel leaf included. Exposed for callers (the reference CLI's
// diagnostic logging) that want construction-size detail beyond Len.
func (t *Tree) NodeCount() int {
	return len(t.arena.nodes)
}

// Substring returns the length bytes of the indexed text starting at
// start, without copying. The returned slice aliases the Tree's internal
// buffer and must not be mutated or retained past the Tree's lifetime.
func (t *Tree) Substring(start, length int) []byte {
	return t.txt.sliceOf(start, length)
}

// SubstringString is like Substring but returns a zero-copy string view.
func (t *Tree) SubstringString(start, length int) string {
	return t.txt.stringOf(start, length)
}
