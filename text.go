package suffixtree

import (
	"strconv"

	"github.com/arborio/suffixtree/internal/bytesconv"
)

// text is the immutable byte buffer backing a Tree: the caller-supplied
// input with the sentinel symbol appended exactly once. Positions are
// zero-based indices in [0, len(text)).
type text []byte

// sliceOf returns the text window [start, start+length) without copying.
// Callers must not retain the returned slice past the lifetime of the Tree
// nor mutate it; text is immutable once Build returns.
func (t text) sliceOf(start, length int) []byte {
	return t[start : start+length]
}

// stringOf is like sliceOf but returns a string view without copying the
// backing bytes, mirroring the zero-copy conversion idiom used throughout
// the package for read-only access to immutable buffers.
func (t text) stringOf(start, length int) string {
	return bytesconv.String(t.sliceOf(start, length))
}

// newText validates and builds the immutable buffer for build. The sentinel
// must not occur anywhere in the caller-supplied input; it is appended once
// here. An empty input is rejected since a suffix tree over the empty text
// (besides the sentinel) carries no substrings to query.
func newText(input []byte, sentinel byte) (text, error) {
	if len(input) == 0 {
		return nil, newInvalidInputError("input text must not be empty")
	}
	for i, b := range input {
		if b == sentinel {
			return nil, newInvalidInputError(
				"sentinel byte occurs within the input at position " + strconv.Itoa(i))
		}
	}
	buf := make([]byte, len(input)+1)
	copy(buf, input)
	buf[len(input)] = sentinel
	return text(buf), nil
}

