package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scripts/webscraper/internal/extraction"
	"github.com/go-scripts/webscraper/internal/pipeline"
	"github.com/go-scripts/webscraper/internal/types"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func testGlobals(t *testing.T, configYAML string) *Globals {
	t.Helper()
	path := filepath.Join(t.TempDir(), "webscraper.yaml")
	if configYAML != "" {
		require.NoError(t, os.WriteFile(path, []byte(configYAML), 0644))
	}
	return &Globals{Config: path}
}

func decodeRecords(t *testing.T, data []byte) []types.ScrapedRecord {
	t.Helper()
	var records []types.ScrapedRecord
	require.NoError(t, json.Unmarshal(data, &records))
	return records
}

func TestRunCmdPrintsJSON(t *testing.T) {
	g := testGlobals(t, "delay: 0s\n")
	cmd := &RunCmd{
		URLs:     []string{"https://example.com"},
		Fields:   []string{"title"},
		Category: []string{"Notícia"},
		Quiet:    true,
	}

	var out bytes.Buffer
	require.NoError(t, cmd.execute(context.Background(), g, log.New(io.Discard), &out, &fakeClipboard{}))

	records := decodeRecords(t, out.Bytes())
	require.Len(t, records, 1)
	assert.Equal(t, "https://example.com", records[0].URL)
	assert.Equal(t, "Título extraído de example.com", records[0].Title)
	assert.Empty(t, records[0].ImageURL)
	assert.Equal(t, []string{"Notícia"}, records[0].Classification)
}

func TestRunCmdUsesConfigFile(t *testing.T) {
	g := testGlobals(t, `
urls: [https://a.com]
extraction: {title: false, imageUrl: false, content: false, author: true}
classification: [Review]
delay: 0s
`)
	cmd := &RunCmd{URLs: []string{"https://b.com"}, Quiet: true}

	var out bytes.Buffer
	require.NoError(t, cmd.execute(context.Background(), g, log.New(io.Discard), &out, &fakeClipboard{}))

	records := decodeRecords(t, out.Bytes())
	require.Len(t, records, 2)
	assert.Equal(t, "https://a.com", records[0].URL)
	assert.Equal(t, "https://b.com", records[1].URL)
	assert.Equal(t, pipeline.MockAuthor, records[1].Author)
	assert.Empty(t, records[1].Title)
	assert.Equal(t, []string{"Review"}, records[1].Classification)
}

func TestRunCmdNoURLs(t *testing.T) {
	g := testGlobals(t, "")
	cmd := &RunCmd{Quiet: true}

	var out bytes.Buffer
	err := cmd.execute(context.Background(), g, log.New(io.Discard), &out, &fakeClipboard{})
	assert.ErrorIs(t, err, pipeline.ErrNoURLs)
	assert.Empty(t, out.String())
}

func TestRunCmdUnknownField(t *testing.T) {
	g := testGlobals(t, "")
	cmd := &RunCmd{URLs: []string{"https://a.com"}, Fields: []string{"html"}, Quiet: true}

	err := cmd.execute(context.Background(), g, log.New(io.Discard), io.Discard, &fakeClipboard{})
	assert.ErrorIs(t, err, extraction.ErrUnknownField)
}

func TestRunCmdOutputAndCopy(t *testing.T) {
	g := testGlobals(t, "delay: 0s\n")
	outPath := filepath.Join(t.TempDir(), "out", "results.json")
	cmd := &RunCmd{
		URLs:     []string{"https://a.com", "bad-url"},
		NoFields: true,
		Output:   outPath,
		Copy:     true,
		Quiet:    true,
	}
	clip := &fakeClipboard{}

	var out bytes.Buffer
	require.NoError(t, cmd.execute(context.Background(), g, log.New(io.Discard), &out, clip))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	records := decodeRecords(t, data)
	require.Len(t, records, 2, "no hostname is needed without title or description")

	assert.JSONEq(t, string(data), clip.text)
}

func TestRunCmdCopyFailureIsNotFatal(t *testing.T) {
	g := testGlobals(t, "delay: 0s\n")
	cmd := &RunCmd{URLs: []string{"https://a.com"}, Copy: true, Quiet: true}

	err := cmd.execute(context.Background(), g, log.New(io.Discard), io.Discard, &fakeClipboard{err: errors.New("no clipboard")})
	assert.NoError(t, err)
}

func TestRunCmdCancelled(t *testing.T) {
	g := testGlobals(t, "delay: 1h\n")
	cmd := &RunCmd{URLs: []string{"https://a.com"}, Quiet: true}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cmd.execute(ctx, g, log.New(io.Discard), io.Discard, &fakeClipboard{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunCmdDelayOverride(t *testing.T) {
	zero, fast := time.Duration(0), 5*time.Millisecond

	tests := []struct {
		name  string
		delay *time.Duration
		want  time.Duration
	}{
		{"unset keeps config", nil, 3 * time.Second},
		{"explicit zero", &zero, 0},
		{"explicit value", &fast, fast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGlobals(t, "delay: 3s\n")
			cmd := &RunCmd{Delay: tt.delay}

			cfg, err := cmd.sessionConfig(g)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Delay)
		})
	}
}
