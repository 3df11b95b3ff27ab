package urls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		add     string
		wantErr error
		want    []string
	}{
		{
			name: "append to empty list",
			add:  "https://example.com",
			want: []string{"https://example.com"},
		},
		{
			name:    "append keeps order",
			initial: []string{"https://a.com", "https://b.com"},
			add:     "https://c.com",
			want:    []string{"https://a.com", "https://b.com", "https://c.com"},
		},
		{
			name:    "duplicate is rejected",
			initial: []string{"https://a.com"},
			add:     "https://a.com",
			wantErr: ErrDuplicateURL,
			want:    []string{"https://a.com"},
		},
		{
			name:    "comparison is case sensitive",
			initial: []string{"https://a.com"},
			add:     "https://A.com",
			want:    []string{"https://a.com", "https://A.com"},
		},
		{
			name:    "empty string is rejected",
			initial: []string{"https://a.com"},
			add:     "",
			wantErr: ErrEmptyURL,
			want:    []string{"https://a.com"},
		},
		{
			name: "no well-formedness check",
			add:  "not a url",
			want: []string{"not a url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.initial...)
			err := l.Add(tt.add)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, l.Items())
			assert.Equal(t, len(tt.want), l.Len())
		})
	}
}

func TestRemove(t *testing.T) {
	l := New("https://a.com", "https://b.com", "https://c.com")

	require.NoError(t, l.Remove(1))
	assert.Equal(t, []string{"https://a.com", "https://c.com"}, l.Items())
	assert.False(t, l.Contains("https://b.com"))

	// removed URLs can be added again
	require.NoError(t, l.Add("https://b.com"))
	assert.Equal(t, []string{"https://a.com", "https://c.com", "https://b.com"}, l.Items())

	assert.ErrorIs(t, l.Remove(3), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Remove(-1), ErrIndexOutOfRange)
	assert.Equal(t, 3, l.Len())
}

func TestItemsReturnsCopy(t *testing.T) {
	l := New("https://a.com")
	items := l.Items()
	items[0] = "changed"
	assert.Equal(t, []string{"https://a.com"}, l.Items())
}

func TestNewSkipsInvalidSeeds(t *testing.T) {
	l := New("https://a.com", "", "https://a.com", "https://b.com")
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, l.Items())
}
