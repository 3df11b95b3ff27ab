package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRecordsEmpty(t *testing.T) {
	for _, records := range [][]ScrapedRecord{nil, {}} {
		out, err := MarshalRecords(records)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(out))
	}
}

func TestMarshalRecordsFieldOrder(t *testing.T) {
	rec := NewRecord("https://example.com", Fields{
		Title:       "t",
		ImageURL:    "i",
		Content:     "c",
		Description: "d",
		Author:      "a",
		PublishDate: "2024-01-02",
	}, []string{"Review"}, "2024-01-02T03:04:05.000Z")

	out, err := MarshalRecords([]ScrapedRecord{rec})
	require.NoError(t, err)

	want := `[
  {
    "url": "https://example.com",
    "title": "t",
    "imageUrl": "i",
    "content": "c",
    "description": "d",
    "author": "a",
    "publishDate": "2024-01-02",
    "classification": [
      "Review"
    ],
    "scrapedAt": "2024-01-02T03:04:05.000Z"
  }
]`
	assert.Equal(t, want, string(out))
}

func TestMarshalRecordsOmitsDisabledFields(t *testing.T) {
	rec := NewRecord("https://example.com", Fields{}, nil, "2024-01-02T03:04:05.000Z")

	out, err := MarshalRecords([]ScrapedRecord{rec})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 1)

	keys := make([]string, 0, len(decoded[0]))
	for k := range decoded[0] {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"url", "classification", "scrapedAt"}, keys)
	assert.Equal(t, []any{}, decoded[0]["classification"])
}

func TestNewRecordCopiesClassification(t *testing.T) {
	cls := []string{"Tutorial"}
	rec := NewRecord("https://example.com", Fields{}, cls, "")
	cls[0] = "Review"
	assert.Equal(t, []string{"Tutorial"}, rec.Classification)
}

func TestMarshalRecordsKeepsQueryCharacters(t *testing.T) {
	rec := NewRecord("https://example.com/search?a=1&b=2", Fields{Content: "<p>a & b</p>"}, nil, "")

	out, err := MarshalRecords([]ScrapedRecord{rec})
	require.NoError(t, err)

	assert.Contains(t, string(out), `"url": "https://example.com/search?a=1&b=2"`)
	assert.Contains(t, string(out), `"content": "<p>a & b</p>"`)
	assert.NotContains(t, string(out), `\u0026`)
	assert.False(t, strings.HasSuffix(string(out), "\n"))
}
