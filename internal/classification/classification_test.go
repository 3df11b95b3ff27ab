package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabulary(t *testing.T) {
	assert.Len(t, Vocabulary, 12)
	assert.Equal(t, "Notícia", Vocabulary[0])
}

func TestAddMovesFromOfferableToSelected(t *testing.T) {
	s := NewSelector()
	assert.Equal(t, Vocabulary, s.Offerable())

	assert.True(t, s.Add("Tutorial"))
	assert.True(t, s.Add("Notícia"))

	assert.Equal(t, []string{"Tutorial", "Notícia"}, s.Selected())
	assert.NotContains(t, s.Offerable(), "Tutorial")
	assert.NotContains(t, s.Offerable(), "Notícia")
	assert.Len(t, s.Offerable(), 10)
}

func TestAddIsIdempotent(t *testing.T) {
	s := NewSelector("Review")
	assert.False(t, s.Add("Review"))
	assert.Equal(t, []string{"Review"}, s.Selected())
}

func TestRemove(t *testing.T) {
	s := NewSelector("Review", "Tutorial", "Portfolio")

	assert.True(t, s.Remove("Tutorial"))
	assert.Equal(t, []string{"Review", "Portfolio"}, s.Selected())
	assert.Contains(t, s.Offerable(), "Tutorial")

	assert.False(t, s.Remove("Tutorial"))
	assert.False(t, s.Remove("Unknown"))
	assert.Equal(t, []string{"Review", "Portfolio"}, s.Selected())
}

func TestCustomLabel(t *testing.T) {
	s := NewSelector()
	assert.True(t, s.Add("Podcast"))
	assert.True(t, s.IsSelected("Podcast"))
	assert.Equal(t, Vocabulary, s.Offerable())
}

func TestSelectedNeverNil(t *testing.T) {
	s := NewSelector()
	assert.NotNil(t, s.Selected())
	assert.Empty(t, s.Selected())
}
