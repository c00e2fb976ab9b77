package crawler

import (
	"net/url"
	"time"
)

// PageData describes one fetched page.
type PageData struct {
	URL          string
	StatusCode   int           // HTTP status code (200, 404, 500, etc.)
	ContentType  string        // HTTP Content-Type header
	Title        string        // HTML <title> tag content
	Text         string        // Extracted readable text
	ResponseSize int64         // Response body size in bytes
	TTFB         time.Duration // Time to First Byte
	DownloadTime time.Duration // Total download time
	FetchedAt    time.Time     // Timestamp when fetched (UTC)
}

// LinkData represents one resolved link discovered on a page.
type LinkData struct {
	SourceURL string    // URL of the page containing the link
	TargetURL string    // Canonical URL the link points to
	Internal  bool      // Whether the target shares the start URL's host
	FoundAt   time.Time // Timestamp when the link was discovered (UTC)
}

// CrawlError records a per-URL failure. Failures never stop the crawl.
type CrawlError struct {
	URL        string    // URL where the error occurred
	ErrorType  string    // fetch_error, http_error, parse_error
	Message    string    // Detailed error message
	OccurredAt time.Time // Error occurrence timestamp (UTC)
}

// PageResult is the outcome of processing a single URL.
type PageResult struct {
	Page  *PageData   // nil when the fetch itself failed
	Hrefs []string    // Raw anchor hrefs in document order (empty for non-HTML)
	Base  *url.URL    // Resolution base for Hrefs, after redirects and <base href>
	Error *CrawlError // Set on fetch failure
}

// CrawlStats summarizes a finished crawl run.
type CrawlStats struct {
	PagesVisited  int // URLs popped from the frontier and fetched
	BlocksWritten int // Text blocks emitted to the output document
	ErrorCount    int // Fetch and HTTP failures, all skipped
	StartTime     time.Time
	Duration      time.Duration
}
