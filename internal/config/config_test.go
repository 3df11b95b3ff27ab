package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scripts/webscraper/internal/extraction"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "webscraper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, []string{"Notícia"}, cfg.Classification)
	assert.Equal(t, extraction.Default(), cfg.Extraction)
	assert.Equal(t, time.Second, cfg.Delay)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
urls:
  - https://example.com
  - https://example.org
extraction:
  title: false
  author: true
classification: [Tutorial, Review]
delay: 250ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com", "https://example.org"}, cfg.URLs)
	assert.Equal(t, extraction.Config{ImageURL: true, Content: true, Author: true}, cfg.Extraction)
	assert.Equal(t, []string{"Tutorial", "Review"}, cfg.Classification)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "urls: [unclosed"},
		{"negative delay", "delay: -1s"},
		{"bad duration", "delay: soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
