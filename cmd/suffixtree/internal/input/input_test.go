package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadTopKParsesQueriesAndText(t *testing.T) {
	path := writeTemp(t, "2\n3 1\n5 2\nbananabanana")

	queries, text, err := ReadTopK(path)
	require.NoError(t, err)
	assert.Equal(t, []Query{{Length: 3, Rank: 1}, {Length: 5, Rank: 2}}, queries)
	assert.Equal(t, "bananabanana", string(text))
}

func TestReadTopKZeroQueries(t *testing.T) {
	path := writeTemp(t, "0\nbanana")

	queries, text, err := ReadTopK(path)
	require.NoError(t, err)
	assert.Empty(t, queries)
	assert.Equal(t, "banana", string(text))
}

func TestReadTopKRejectsMalformedQueryLine(t *testing.T) {
	path := writeTemp(t, "1\nnotanumber\nbanana")
	_, _, err := ReadTopK(path)
	require.Error(t, err)
}

func TestReadTopKRejectsMissingFile(t *testing.T) {
	_, _, err := ReadTopK(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestReadRepeatReturnsWholeFile(t *testing.T) {
	path := writeTemp(t, "mississippi")

	text, err := ReadRepeat(path)
	require.NoError(t, err)
	assert.Equal(t, "mississippi", string(text))
}
