package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the topics configuration file.
type Loader struct {
	path string
}

// NewLoader creates a configuration loader for the given file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads, parses and validates the topics file.
func (l *Loader) Load() (*TopicsConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topics file: %w", err)
	}

	var config TopicsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.setDefaults(&config)

	if err := l.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid topics file %s: %w", l.path, err)
	}

	return &config, nil
}

func (l *Loader) setDefaults(config *TopicsConfig) {
	for i := range config.Feeds {
		if config.Feeds[i].Timeout == 0 {
			config.Feeds[i].Timeout = 30 // seconds
		}
	}
}

func (l *Loader) validate(config *TopicsConfig) error {
	if len(config.Topics) == 0 {
		return fmt.Errorf("at least one topic is required")
	}
	for i, topic := range config.Topics {
		if strings.TrimSpace(topic) == "" {
			return fmt.Errorf("topic at index %d is blank", i)
		}
	}

	for i, feed := range config.Feeds {
		if feed.Name == "" {
			return fmt.Errorf("feed at index %d: name is required", i)
		}
		if feed.URL == "" {
			return fmt.Errorf("feed at index %d: URL is required", i)
		}
		if feed.Timeout < 0 {
			return fmt.Errorf("feed at index %d: timeout must be non-negative", i)
		}
	}

	return nil
}
