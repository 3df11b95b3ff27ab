// Package classification manages the categories attached to every record
// of a run.
package classification

import (
	"slices"
	"sync"
)

// Vocabulary is the fixed list of categories offered to the user
var Vocabulary = []string{
	"Notícia",
	"Blog Post",
	"Artigo Técnico",
	"Tutorial",
	"Review",
	"E-commerce",
	"Documentação",
	"Portfolio",
	"Landing Page",
	"Institucional",
	"Entretenimento",
	"Educacional",
}

// DefaultSelection is the initial selection of a new session
var DefaultSelection = []string{"Notícia"}

// Selector keeps the selected categories in selection order
type Selector struct {
	selected []string
	mu       sync.Mutex
}

// NewSelector returns a Selector with the given labels selected
func NewSelector(initial ...string) *Selector {
	s := &Selector{selected: make([]string, 0, len(initial))}
	for _, label := range initial {
		s.Add(label)
	}
	return s
}

// Add selects label. It reports false when label was already selected.
// Labels outside Vocabulary are accepted.
func (s *Selector) Add(label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.selected, label) {
		return false
	}
	s.selected = append(s.selected, label)
	return true
}

// Remove deselects label and reports whether it was selected
func (s *Selector) Remove(label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.selected, label)
	if i < 0 {
		return false
	}
	s.selected = slices.Delete(s.selected, i, i+1)
	return true
}

// IsSelected reports whether label is selected
func (s *Selector) IsSelected(label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.selected, label)
}

// Selected returns a copy of the selection. The result is never nil.
func (s *Selector) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Offerable returns the vocabulary entries that are not selected yet
func (s *Selector) Offerable() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(Vocabulary))
	for _, label := range Vocabulary {
		if !slices.Contains(s.selected, label) {
			out = append(out, label)
		}
	}
	return out
}
