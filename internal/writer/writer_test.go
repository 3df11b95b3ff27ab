package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scripts/webscraper/internal/types"
)

func TestWriteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.json")

	w, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())

	rec := types.NewRecord("https://example.com", types.Fields{Author: "a"}, []string{"Review"}, "2024-01-01T00:00:00.000Z")
	require.NoError(t, w.WriteRecords([]types.ScrapedRecord{rec}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"author": "a"`)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	w, err := New(path)
	require.NoError(t, err)
	require.NoError(t, w.WriteRecords(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
