package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextAppendsSentinel(t *testing.T) {
	txt, err := newText([]byte("abc"), '$')
	require.NoError(t, err)
	assert.Equal(t, text("abc$"), txt)
}

func TestNewTextRejectsEmpty(t *testing.T) {
	_, err := newText(nil, '$')
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewTextRejectsEmbeddedSentinel(t *testing.T) {
	_, err := newText([]byte("a$b"), '$')
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTextSliceOfAndStringOf(t *testing.T) {
	txt, err := newText([]byte("banana"), '$')
	require.NoError(t, err)

	assert.Equal(t, []byte("nan"), txt.sliceOf(2, 3))
	assert.Equal(t, "nan", txt.stringOf(2, 3))
}
