package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"time"
)

// HTTPClient performs single-attempt GET requests with basic timing metrics.
// There are no retries: a failed URL is skipped by the crawl loop.
type HTTPClient struct {
	client    *http.Client
	userAgent string
}

// Response holds a fetched page body together with timing metrics.
type Response struct {
	StatusCode   int
	Body         []byte
	ContentType  string
	FinalURL     string        // URL after following redirects
	TTFB         time.Duration // Time to first byte
	DownloadTime time.Duration // Total fetch time including body read
}

// NewHTTPClient creates a client with the given User-Agent and per-request
// timeout. Redirects are followed up to a fixed cap.
func NewHTTPClient(userAgent string, timeout time.Duration) *HTTPClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
	}

	return &HTTPClient{
		client:    client,
		userAgent: userAgent,
	}
}

// Get performs a single HTTP GET request and reads the full body.
func (h *HTTPClient) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	var firstByte time.Time
	trace := &httptrace.ClientTrace{
		GotFirstResponseByte: func() {
			firstByte = time.Now()
		},
	}
	req = req.WithContext(httptrace.WithClientTrace(req.Context(), trace))

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var ttfb time.Duration
	if !firstByte.IsZero() {
		ttfb = firstByte.Sub(start)
	}

	return &Response{
		StatusCode:   resp.StatusCode,
		Body:         body,
		ContentType:  resp.Header.Get("Content-Type"),
		FinalURL:     resp.Request.URL.String(),
		TTFB:         ttfb,
		DownloadTime: time.Since(start),
	}, nil
}

// Close releases idle connections held by the client.
func (h *HTTPClient) Close() {
	h.client.CloseIdleConnections()
}
