package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-scripts/webscraper/internal/extraction"
	"github.com/go-scripts/webscraper/internal/types"
)

// ErrInvalidURL is returned when a hostname cannot be derived from a URL
var ErrInvalidURL = errors.New("invalid url")

const (
	// MockImageURL is the placeholder image shared by every record
	MockImageURL = "https://images.unsplash.com/photo-1557804506-669a67965ba0?w=400"
	// MockAuthor is the placeholder author shared by every record
	MockAuthor = "João Silva"

	dateLayout = "2006-01-02"
)

// Document is the raw material an Extractor works on
type Document struct {
	URL       string
	FetchedAt time.Time
}

// Fetcher retrieves the document behind a URL
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (Document, error)
}

// Extractor derives the enabled record fields from a document
type Extractor interface {
	Extract(doc Document, cfg extraction.Config) (types.Fields, error)
}

// Mock stands in for a real fetcher and extractor. It never touches the
// network and produces placeholder values derived from the URL.
type Mock struct {
	Clock func() time.Time
}

func (m Mock) now() time.Time {
	if m.Clock != nil {
		return m.Clock()
	}
	return time.Now()
}

// Fetch returns a document for rawURL without any I/O
func (m Mock) Fetch(ctx context.Context, rawURL string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	return Document{URL: rawURL, FetchedAt: m.now()}, nil
}

// Extract fills in the fields enabled in cfg. The hostname is only parsed
// when a field needs it.
func (m Mock) Extract(doc Document, cfg extraction.Config) (types.Fields, error) {
	var (
		f    types.Fields
		host string
	)

	if cfg.Title || cfg.Description {
		h, err := hostname(doc.URL)
		if err != nil {
			return types.Fields{}, err
		}
		host = h
	}

	if cfg.Title {
		f.Title = fmt.Sprintf("Título extraído de %s", host)
	}
	if cfg.ImageURL {
		f.ImageURL = MockImageURL
	}
	if cfg.Content {
		f.Content = fmt.Sprintf("Este é o conteúdo principal extraído do site %s. "+
			"Lorem ipsum dolor sit amet, consectetur adipiscing elit. "+
			"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.", doc.URL)
	}
	if cfg.Description {
		f.Description = fmt.Sprintf("Descrição meta do site %s", host)
	}
	if cfg.Author {
		f.Author = MockAuthor
	}
	if cfg.PublishDate {
		f.PublishDate = doc.FetchedAt.UTC().Format(dateLayout)
	}

	return f, nil
}

func hostname(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidURL, rawURL)
	}
	return strings.ToLower(u.Hostname()), nil
}
