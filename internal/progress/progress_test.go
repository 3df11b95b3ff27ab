package progress

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	tr := New(4)
	assert.Equal(t, 0.0, tr.Percent())

	tr.Done("https://a.com", false)
	tr.Done("https://b.com", true)

	processed, failed := tr.Counts()
	assert.Equal(t, 2, processed)
	assert.Equal(t, 1, failed)
	assert.InDelta(t, 0.5, tr.Percent(), 1e-9)

	line := tr.Line()
	assert.Contains(t, line, "2/4")
	assert.Contains(t, line, "(1 failed)")
	assert.True(t, strings.HasSuffix(line, "https://b.com"))
}

func TestTrackerEmpty(t *testing.T) {
	assert.Equal(t, 0.0, New(0).Percent())
}

func TestFormatURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "https://example.com/a", "https://example.com/a"},
		{"long path", "https://example.com/" + strings.Repeat("a", 50), "example.com..." + strings.Repeat("a", 26)},
		{"no host", strings.Repeat("b", 45), "..." + strings.Repeat("b", 40)},
		{"multibyte path", "https://example.com/" + strings.Repeat("é", 50), "example.com..." + strings.Repeat("é", 26)},
		{"multibyte no host", strings.Repeat("ü", 45), "..." + strings.Repeat("ü", 40)},
		{"multibyte fits", "https://example.com/" + strings.Repeat("ç", 15), "https://example.com/" + strings.Repeat("ç", 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatURL(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
