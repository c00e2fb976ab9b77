package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sitecat/internal/extract"
	"sitecat/internal/parser"
)

// DefaultPageProcessor implements the PageProcessor interface: one fetch,
// then text and link extraction according to the content type.
type DefaultPageProcessor struct {
	client *HTTPClient
}

// NewPageProcessor creates a page processor backed by the given client.
func NewPageProcessor(client *HTTPClient) *DefaultPageProcessor {
	return &DefaultPageProcessor{client: client}
}

// Process fetches a single URL. Fetch failures are reported inside the
// result, never as a returned error; the crawl treats them as skips.
func (p *DefaultPageProcessor) Process(ctx context.Context, pageURL string) (*PageResult, error) {
	resp, err := p.client.Get(ctx, pageURL)
	if err != nil {
		return &PageResult{
			Error: &CrawlError{
				URL:        pageURL,
				ErrorType:  "fetch_error",
				Message:    err.Error(),
				OccurredAt: time.Now().UTC(),
			},
		}, nil
	}

	page := &PageData{
		URL:          pageURL,
		StatusCode:   resp.StatusCode,
		ContentType:  resp.ContentType,
		ResponseSize: int64(len(resp.Body)),
		TTFB:         resp.TTFB,
		DownloadTime: resp.DownloadTime,
		FetchedAt:    time.Now().UTC(),
	}
	result := &PageResult{Page: page}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		result.Error = &CrawlError{
			URL:        pageURL,
			ErrorType:  "http_error",
			Message:    fmt.Sprintf("unexpected status %d", resp.StatusCode),
			OccurredAt: page.FetchedAt,
		}
		return result, nil
	}

	page.Text = extract.FromContent(resp.Body, resp.ContentType)

	// Only HTML contributes new frontier entries.
	if !isHTML(resp.ContentType) {
		slog.Debug("Skipping link extraction", "url", pageURL, "content_type", resp.ContentType)
		return result, nil
	}

	parsed, err := parser.Parse(resp.Body, resp.FinalURL)
	if err != nil {
		// Best effort: a page the parser rejects still contributed its
		// text, it just yields no new URLs.
		slog.Warn("Link extraction failed", "url", pageURL, "error", err)
		return result, nil
	}

	page.Title = parsed.Title
	result.Hrefs = parsed.Hrefs
	result.Base = parsed.Base

	return result, nil
}

func isHTML(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}
