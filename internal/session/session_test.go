package session

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scripts/webscraper/internal/config"
	"github.com/go-scripts/webscraper/internal/extraction"
	"github.com/go-scripts/webscraper/internal/pipeline"
)

func newSession(cfg config.Config) *Session {
	return New(cfg, pipeline.New(pipeline.Options{Logger: log.New(io.Discard)}))
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.URLs = []string{"https://a.com", "https://a.com", "https://b.com"}

	s := newSession(cfg)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, s.URLs.Items())
	assert.Equal(t, extraction.Default(), *s.Extraction)
	assert.Equal(t, []string{"Notícia"}, s.Classification.Selected())
}

func TestStartRunUsesCurrentState(t *testing.T) {
	s := newSession(config.Default())
	require.NoError(t, s.URLs.Add("https://example.com"))
	require.NoError(t, s.Extraction.Set(extraction.Author, true))
	s.Classification.Add("Tutorial")

	run, err := s.StartRun()
	require.NoError(t, err)

	ev, err := run.Next(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ev.Record)
	assert.Equal(t, pipeline.MockAuthor, ev.Record.Author)
	assert.Equal(t, []string{"Notícia", "Tutorial"}, ev.Record.Classification)
}

func TestStartRunEmpty(t *testing.T) {
	s := newSession(config.Default())
	_, err := s.StartRun()
	assert.ErrorIs(t, err, pipeline.ErrNoURLs)
	assert.Equal(t, pipeline.StateIdle, s.Pipeline.State())
}
