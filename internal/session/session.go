// Package session is the composition root: it owns the URL list, the
// extraction config, the classification selector and the pipeline.
package session

import (
	"github.com/go-scripts/webscraper/internal/classification"
	"github.com/go-scripts/webscraper/internal/config"
	"github.com/go-scripts/webscraper/internal/extraction"
	"github.com/go-scripts/webscraper/internal/pipeline"
	"github.com/go-scripts/webscraper/internal/urls"
)

// Session holds the state shared by the form panels
type Session struct {
	URLs           *urls.List
	Extraction     *extraction.Config
	Classification *classification.Selector
	Pipeline       *pipeline.Pipeline
}

// New builds a session from cfg around p
func New(cfg config.Config, p *pipeline.Pipeline) *Session {
	ext := cfg.Extraction
	return &Session{
		URLs:           urls.New(cfg.URLs...),
		Extraction:     &ext,
		Classification: classification.NewSelector(cfg.Classification...),
		Pipeline:       p,
	}
}

// StartRun begins a pipeline run with the current form state
func (s *Session) StartRun() (*pipeline.Run, error) {
	return s.Pipeline.Begin(s.URLs.Items(), *s.Extraction, s.Classification.Selected())
}
