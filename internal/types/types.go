package types

import (
	"bytes"
	"encoding/json"
)

// ScrapedRecord is the result for one URL of a run. Optional fields are
// omitted from JSON when their extraction flag is off.
type ScrapedRecord struct {
	URL            string   `json:"url"`
	Title          string   `json:"title,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	Content        string   `json:"content,omitempty"`
	Description    string   `json:"description,omitempty"`
	Author         string   `json:"author,omitempty"`
	PublishDate    string   `json:"publishDate,omitempty"`
	Classification []string `json:"classification"`
	ScrapedAt      string   `json:"scrapedAt"`
}

// Fields holds the optional values produced by an extractor
type Fields struct {
	Title       string
	ImageURL    string
	Content     string
	Description string
	Author      string
	PublishDate string
}

// NewRecord assembles a record from extracted fields and run metadata
func NewRecord(url string, fields Fields, classification []string, scrapedAt string) ScrapedRecord {
	cls := make([]string, len(classification))
	copy(cls, classification)

	return ScrapedRecord{
		URL:            url,
		Title:          fields.Title,
		ImageURL:       fields.ImageURL,
		Content:        fields.Content,
		Description:    fields.Description,
		Author:         fields.Author,
		PublishDate:    fields.PublishDate,
		Classification: cls,
		ScrapedAt:      scrapedAt,
	}
}

// MarshalRecords renders records as a JSON array indented with two
// spaces, leaving &, < and > unescaped. An empty set renders as "[]".
func MarshalRecords(records []ScrapedRecord) ([]byte, error) {
	if len(records) == 0 {
		return []byte("[]"), nil
	}
	out := make([]ScrapedRecord, len(records))
	copy(out, records)
	for i := range out {
		if out[i].Classification == nil {
			out[i].Classification = []string{}
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
