package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config holds defaults applied when the matching flag was not supplied.
type Config struct {
	Types    []string `yaml:"types,omitempty" json:"types,omitempty"`
	Format   string   `yaml:"format,omitempty" json:"format,omitempty"`
	Sort     bool     `yaml:"sort,omitempty" json:"sort,omitempty"`
	FullPath bool     `yaml:"fullPath,omitempty" json:"fullPath,omitempty"`
}

// Load reads config from URL (local path or any afs supported location).
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return &cfg, nil
}

// TypeList returns configured types as comma separated labels, or fallback
// when none are configured.
func (c *Config) TypeList(fallback string) string {
	if c == nil || len(c.Types) == 0 {
		return fallback
	}
	return strings.Join(c.Types, ",")
}

// FormatOr returns configured format or fallback.
func (c *Config) FormatOr(fallback string) string {
	if c == nil || c.Format == "" {
		return fallback
	}
	return c.Format
}
