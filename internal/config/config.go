// Package config loads the initial session state from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-scripts/webscraper/internal/classification"
	"github.com/go-scripts/webscraper/internal/extraction"
	"github.com/go-scripts/webscraper/internal/pipeline"
)

// DefaultPath is the config file looked up when none is given
const DefaultPath = "webscraper.yaml"

// Config is the initial state of a session
type Config struct {
	URLs           []string          `yaml:"urls"`
	Extraction     extraction.Config `yaml:"extraction"`
	Classification []string          `yaml:"classification"`
	Delay          time.Duration     `yaml:"delay"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		URLs:           []string{},
		Extraction:     extraction.Default(),
		Classification: append([]string(nil), classification.DefaultSelection...),
		Delay:          pipeline.DefaultDelay,
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values the YAML decoder cannot
func (c Config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	return nil
}
