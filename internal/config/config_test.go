package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxPages != 0 {
		t.Errorf("Expected max pages 0, got %d", cfg.MaxPages)
	}

	if cfg.RequestDelay != 1.0 {
		t.Errorf("Expected request delay 1.0, got %v", cfg.RequestDelay)
	}

	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("Expected request timeout 10s, got %v", cfg.RequestTimeout)
	}

	if cfg.UserAgent != "sitecat/1.0" {
		t.Errorf("Expected user agent 'sitecat/1.0', got %s", cfg.UserAgent)
	}

	if cfg.OutputPath != "crawled_text.txt" {
		t.Errorf("Expected output path 'crawled_text.txt', got %s", cfg.OutputPath)
	}

	if cfg.DatabasePath != "" {
		t.Errorf("Expected empty database path, got %s", cfg.DatabasePath)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.StartURL = "https://docs.example.com/intro"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: nil,
		},
		{
			name:    "missing start URL",
			mutate:  func(c *Config) { c.StartURL = "" },
			wantErr: ErrNoStartURL,
		},
		{
			name:    "relative start URL",
			mutate:  func(c *Config) { c.StartURL = "/intro" },
			wantErr: ErrInvalidStartURL,
		},
		{
			name:    "non-http scheme",
			mutate:  func(c *Config) { c.StartURL = "ftp://example.com/" },
			wantErr: ErrInvalidStartURL,
		},
		{
			name:    "empty output path",
			mutate:  func(c *Config) { c.OutputPath = "" },
			wantErr: ErrEmptyOutputPath,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.RequestTimeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative delay",
			mutate:  func(c *Config) { c.RequestDelay = -1 },
			wantErr: ErrNegativeDelay,
		},
		{
			name:    "negative max pages",
			mutate:  func(c *Config) { c.MaxPages = -1 },
			wantErr: ErrNegativeMaxPages,
		},
		{
			name:    "bad exclude pattern",
			mutate:  func(c *Config) { c.ExcludePatterns = []string{"["} },
			wantErr: ErrInvalidPattern,
		},
		{
			name:    "bad include pattern",
			mutate:  func(c *Config) { c.IncludePatterns = []string{"(unclosed"} },
			wantErr: ErrInvalidPattern,
		},
		{
			name:    "zero delay is allowed",
			mutate:  func(c *Config) { c.RequestDelay = 0 },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDelay(t *testing.T) {
	cfg := &Config{RequestDelay: 0.5}
	if cfg.Delay() != 500*time.Millisecond {
		t.Errorf("Expected 500ms, got %v", cfg.Delay())
	}

	cfg.RequestDelay = 0
	if cfg.Delay() != 0 {
		t.Errorf("Expected 0, got %v", cfg.Delay())
	}
}
