package config

import "errors"

var (
	// ErrNoStartURL is returned when no start URL is provided
	ErrNoStartURL = errors.New("no start URL provided")
	// ErrInvalidStartURL is returned when the start URL is not an absolute http(s) URL
	ErrInvalidStartURL = errors.New("start URL must be an absolute http or https URL")
	// ErrEmptyOutputPath is returned when the output path is empty
	ErrEmptyOutputPath = errors.New("output_path cannot be empty")
	// ErrInvalidTimeout is returned when request timeout is not greater than 0
	ErrInvalidTimeout = errors.New("request_timeout must be greater than 0")
	// ErrNegativeDelay is returned when the request delay is negative
	ErrNegativeDelay = errors.New("request_delay cannot be negative")
	// ErrNegativeMaxPages is returned when max pages is negative
	ErrNegativeMaxPages = errors.New("max_pages cannot be negative")
	// ErrInvalidPattern is returned when an include or exclude pattern does not compile
	ErrInvalidPattern = errors.New("invalid include or exclude pattern")
)
