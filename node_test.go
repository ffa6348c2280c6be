package suffixtree

import (
	"sort"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaRootIsFirstNode(t *testing.T) {
	a := newArena(16)
	require.Len(t, a.nodes, 1)
	root := a.get(rootIdx)
	assert.True(t, root.isLeaf())
	assert.Equal(t, rootIdx, root.suffixLink)
}

func TestArenaAddChildKeepsAscendingOrder(t *testing.T) {
	a := newArena(16)
	c := a.allocLeaf(0)
	b := a.allocLeaf(1)
	z := a.allocLeaf(2)

	a.addChild(rootIdx, 'c', c)
	a.addChild(rootIdx, 'b', b)
	a.addChild(rootIdx, 'z', z)

	root := a.get(rootIdx)
	assert.Equal(t, []byte{'b', 'c', 'z'}, root.childKeys)
	assert.Equal(t, []int32{b, c, z}, root.children)
}

func TestArenaGetChildLinearAndBinary(t *testing.T) {
	a := newArena(16)
	var handles []int32
	for s := byte('a'); s < 'z'; s++ {
		handles = append(handles, a.allocLeaf(0))
	}
	for i, s := 0, byte('a'); s < 'z'; i, s = i+1, s+1 {
		a.addChild(rootIdx, s, handles[i])
	}

	// Below the threshold: linear scan.
	assert.Equal(t, handles[0], a.getChild(rootIdx, 'a', 50))
	assert.Equal(t, nilIdx, a.getChild(rootIdx, 'z', 50))

	// Above the threshold: binary search, same answers.
	assert.Equal(t, handles[0], a.getChild(rootIdx, 'a', 1))
	assert.Equal(t, handles[len(handles)-1], a.getChild(rootIdx, 'y', 1))
	assert.Equal(t, nilIdx, a.getChild(rootIdx, 'z', 1))
}

func TestArenaUpdateChildRewiresSameKey(t *testing.T) {
	a := newArena(16)
	leaf := a.allocLeaf(0)
	a.addChild(rootIdx, 'a', leaf)

	internal := a.allocInternal(0, 1)
	a.updateChild(rootIdx, 'a', internal)

	assert.Equal(t, internal, a.getChild(rootIdx, 'a', 50))
}

func TestArenaEdgeLengthResolvesOpenEnd(t *testing.T) {
	a := newArena(16)
	a.frontier = 5
	leaf := a.get(a.allocLeaf(2))
	assert.Equal(t, int32(3), a.edgeLength(leaf))

	internal := a.get(a.allocInternal(1, 4))
	assert.Equal(t, int32(3), a.edgeLength(internal))
}

func TestMaxNodesUpperBound(t *testing.T) {
	// A suffix tree over n symbols has at most n leaves and n-1 internal
	// nodes, root included; maxNodes reserves 2n+1 slots, above that count.
	assert.Equal(t, 11, maxNodes(5))
}

// buildAndCollectLeaves builds a tree and returns every leaf's suffix
// start, to cross-check against a trivially-correct sorted suffix list.
func buildAndCollectLeaves(t *testing.T, input string) []int {
	t.Helper()
	tree, err := Build([]byte(input), '$')
	require.NoError(t, err)

	n := tree.Len()
	leaves := make(map[int]bool, n)
	for start := range tree.Suffixes() {
		leaves[start] = true
	}
	require.Len(t, leaves, n, "every suffix must appear exactly once as a leaf")

	starts := make([]int, 0, n)
	for start := range leaves {
		starts = append(starts, start)
	}
	sort.Ints(starts)
	return starts
}

func TestBuilderProducesOneLeafPerSuffix(t *testing.T) {
	for _, input := range []string{"a", "aa", "aaa", "banana", "mississippi", "abcabcabc"} {
		starts := buildAndCollectLeaves(t, input)
		want := make([]int, len(starts))
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, want, starts, "input=%q", input)
	}
}

func TestBuilderEveryLeafSpellsItsSuffix(t *testing.T) {
	for _, input := range []string{"banana", "mississippi", "aaaaaa", "abcabcabc"} {
		buf := append([]byte(input), '$')
		tree, err := Build([]byte(input), '$')
		require.NoError(t, err)

		for start := range tree.Suffixes() {
			got := tree.SubstringString(start, tree.Len()-start)
			assert.Equal(t, string(buf[start:]), got)
		}
	}
}

func TestBuilderFuzzNeverPanicsAndProducesValidTree(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 64)
	for i := 0; i < 50; i++ {
		var raw []byte
		f.Fuzz(&raw)

		// Sanitize: the fuzzer may produce the sentinel byte itself, which
		// Build must reject; strip it so we exercise the happy path here.
		clean := make([]byte, 0, len(raw))
		for _, b := range raw {
			if b != 0xFF {
				clean = append(clean, b)
			}
		}
		if len(clean) == 0 {
			continue
		}

		tree, err := Build(clean, 0xFF)
		require.NoError(t, err)

		n := tree.Len()
		seen := make([]bool, n)
		for start := range tree.Suffixes() {
			require.False(t, seen[start], "duplicate leaf for suffix %d", start)
			seen[start] = true
		}
		for i, ok := range seen {
			require.True(t, ok, "missing leaf for suffix %d", i)
		}
	}
}
