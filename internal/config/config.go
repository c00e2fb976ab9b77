// Package config provides configuration management for sitecat.
// It defines the crawl configuration structure, defaults, and validation.
package config

import (
	"net/url"
	"regexp"
	"time"
)

// Config holds the crawl configuration.
type Config struct {
	// Crawl scope
	StartURL string `mapstructure:"start_url" yaml:"start_url"` // Starting URL; its host defines the crawl boundary
	MaxPages int    `mapstructure:"max_pages" yaml:"max_pages"` // Stop after N pages (0=unlimited)

	// Request behaviour
	RequestDelay   float64       `mapstructure:"request_delay" yaml:"request_delay"`     // Seconds to pause between requests
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"` // HTTP request timeout
	UserAgent      string        `mapstructure:"user_agent" yaml:"user_agent"`           // HTTP User-Agent header

	// URL filtering
	IncludePatterns []string `mapstructure:"include_patterns" yaml:"include_patterns"` // Regex patterns for URLs to include
	ExcludePatterns []string `mapstructure:"exclude_patterns" yaml:"exclude_patterns"` // Regex patterns for URLs to exclude

	// Output
	OutputPath   string `mapstructure:"output_path" yaml:"output_path"`     // Path of the aggregate text document
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"` // Optional SQLite crawl-index path (empty=disabled)

	// Logging
	LogLevel string `mapstructure:"log_level" yaml:"log_level"` // debug, info, warn or error
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`   // Optional log file path
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		MaxPages:       0, // unlimited
		RequestDelay:   1.0,
		RequestTimeout: 10 * time.Second,
		UserAgent:      "sitecat/1.0",
		OutputPath:     "crawled_text.txt",
		LogLevel:       "info",
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.StartURL == "" {
		return ErrNoStartURL
	}

	u, err := url.Parse(c.StartURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidStartURL
	}

	if c.OutputPath == "" {
		return ErrEmptyOutputPath
	}

	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.RequestDelay < 0 {
		return ErrNegativeDelay
	}

	if c.MaxPages < 0 {
		return ErrNegativeMaxPages
	}

	for _, pattern := range append(append([]string{}, c.IncludePatterns...), c.ExcludePatterns...) {
		if _, err := regexp.Compile(pattern); err != nil {
			return ErrInvalidPattern
		}
	}

	return nil
}

// Delay returns the inter-request delay as a time.Duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.RequestDelay * float64(time.Second))
}
