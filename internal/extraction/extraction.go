// Package extraction holds the set of fields a scraping run should produce.
package extraction

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned for a field name outside the six supported ones
var ErrUnknownField = errors.New("unknown extraction field")

// Field names one optional part of a scraped record
type Field string

const (
	Title       Field = "title"
	ImageURL    Field = "imageUrl"
	Content     Field = "content"
	Description Field = "description"
	Author      Field = "author"
	PublishDate Field = "publishDate"
)

// Option describes a field for display
type Option struct {
	Field       Field
	Label       string
	Description string
}

// Options lists every field in display order
var Options = []Option{
	{Title, "Page title", "Title tag or main H1"},
	{ImageURL, "Image URL", "First relevant image found"},
	{Content, "Content", "Main text of the page"},
	{Description, "Description", "Page meta description"},
	{Author, "Author", "Content author when available"},
	{PublishDate, "Publish date", "Date the content was published"},
}

// Config selects which optional fields go into each record. Fields are
// independent of each other.
type Config struct {
	Title       bool `yaml:"title"`
	ImageURL    bool `yaml:"imageUrl"`
	Content     bool `yaml:"content"`
	Description bool `yaml:"description"`
	Author      bool `yaml:"author"`
	PublishDate bool `yaml:"publishDate"`
}

// Default returns the initial selection: title, image and content
func Default() Config {
	return Config{
		Title:    true,
		ImageURL: true,
		Content:  true,
	}
}

// None returns a config with every field disabled
func None() Config {
	return Config{}
}

// All returns a config with every field enabled
func All() Config {
	return Config{
		Title:       true,
		ImageURL:    true,
		Content:     true,
		Description: true,
		Author:      true,
		PublishDate: true,
	}
}

// ParseField converts a field name into a Field
func ParseField(name string) (Field, error) {
	for _, opt := range Options {
		if string(opt.Field) == name {
			return opt.Field, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// FromFields builds a config with exactly the named fields enabled
func FromFields(names []string) (Config, error) {
	var c Config
	for _, name := range names {
		f, err := ParseField(name)
		if err != nil {
			return Config{}, err
		}
		if err := c.Set(f, true); err != nil {
			return Config{}, err
		}
	}
	return c, nil
}

func (c *Config) flag(f Field) (*bool, error) {
	switch f {
	case Title:
		return &c.Title, nil
	case ImageURL:
		return &c.ImageURL, nil
	case Content:
		return &c.Content, nil
	case Description:
		return &c.Description, nil
	case Author:
		return &c.Author, nil
	case PublishDate:
		return &c.PublishDate, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
}

// Set enables or disables a single field
func (c *Config) Set(f Field, enabled bool) error {
	p, err := c.flag(f)
	if err != nil {
		return err
	}
	*p = enabled
	return nil
}

// Flip inverts a single field
func (c *Config) Flip(f Field) error {
	p, err := c.flag(f)
	if err != nil {
		return err
	}
	*p = !*p
	return nil
}

// Enabled reports whether f is selected. Unknown fields are never enabled.
func (c Config) Enabled(f Field) bool {
	p, err := c.flag(f)
	if err != nil {
		return false
	}
	return *p
}

// EnabledFields returns the selected fields in display order
func (c Config) EnabledFields() []Field {
	fields := make([]Field, 0, len(Options))
	for _, opt := range Options {
		if c.Enabled(opt.Field) {
			fields = append(fields, opt.Field)
		}
	}
	return fields
}
