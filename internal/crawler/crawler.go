// Package crawler implements the sequential same-host crawl: a FIFO
// frontier with a visited set, one fetch in flight at a time, a courtesy
// delay between requests, and per-URL failures that never stop the run.
package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"time"

	"sitecat/internal/config"
)

// Controller owns the frontier and visited set and drives the crawl loop.
// One Controller value is constructed per invocation; there is no shared
// package-level state.
type Controller struct {
	cfg        *config.Config
	normalizer *Normalizer
	frontier   *Frontier
	client     *HTTPClient
	processor  PageProcessor
	limiter    *RateLimiter
	doc        DocumentWriter
	index      Index // nil when the crawl index is disabled
	include    []*regexp.Regexp
	exclude    []*regexp.Regexp
	stats      CrawlStats
}

// New creates a controller for one crawl run. The configuration must have
// been validated; pattern compilation errors are still reported here as
// startup errors.
func New(cfg *config.Config, doc DocumentWriter, index Index) (*Controller, error) {
	normalizer, err := NewNormalizer(cfg.StartURL)
	if err != nil {
		return nil, fmt.Errorf("invalid start URL: %w", err)
	}

	include, err := compilePatterns(cfg.IncludePatterns)
	if err != nil {
		return nil, fmt.Errorf("invalid include pattern: %w", err)
	}

	exclude, err := compilePatterns(cfg.ExcludePatterns)
	if err != nil {
		return nil, fmt.Errorf("invalid exclude pattern: %w", err)
	}

	client := NewHTTPClient(cfg.UserAgent, cfg.RequestTimeout)

	return &Controller{
		cfg:        cfg,
		normalizer: normalizer,
		frontier:   NewFrontier(),
		client:     client,
		processor:  NewPageProcessor(client),
		limiter:    NewRateLimiter(cfg.Delay()),
		doc:        doc,
		index:      index,
		include:    include,
		exclude:    exclude,
	}, nil
}

// Run executes the crawl until the frontier is empty, the page limit is
// reached, or the context is cancelled. It returns the run statistics;
// per-page failures are counted, not returned.
func (c *Controller) Run(ctx context.Context) (CrawlStats, error) {
	c.stats.StartTime = time.Now()

	startParsed, err := url.Parse(c.cfg.StartURL)
	if err != nil {
		return c.stats, fmt.Errorf("invalid start URL: %w", err)
	}
	start, ok := c.normalizer.Canonicalize(c.cfg.StartURL, startParsed)
	if !ok {
		return c.stats, fmt.Errorf("start URL is not crawlable: %s", c.cfg.StartURL)
	}

	c.frontier.Push(start)
	slog.Info("Starting crawl", "start_url", start, "delay", c.cfg.Delay(), "max_pages", c.cfg.MaxPages)

	for {
		if err := ctx.Err(); err != nil {
			c.stats.Duration = time.Since(c.stats.StartTime)
			return c.stats, err
		}

		if c.cfg.MaxPages > 0 && c.stats.PagesVisited >= c.cfg.MaxPages {
			slog.Info("Reached page limit", "max_pages", c.cfg.MaxPages)
			break
		}

		pageURL, ok := c.frontier.Pop()
		if !ok {
			break
		}

		if err := c.limiter.Wait(ctx, pageURL); err != nil {
			c.stats.Duration = time.Since(c.stats.StartTime)
			return c.stats, err
		}

		c.visit(ctx, pageURL)
	}

	c.stats.Duration = time.Since(c.stats.StartTime)
	if err := c.doc.Flush(); err != nil {
		slog.Error("Failed to flush output document", "error", err)
	}

	slog.Info("Crawl completed",
		"pages_visited", c.stats.PagesVisited,
		"blocks_written", c.stats.BlocksWritten,
		"errors", c.stats.ErrorCount,
		"duration", c.stats.Duration)

	return c.stats, nil
}

// Close releases resources held by the controller.
func (c *Controller) Close() {
	c.client.Close()
}

// Stats returns the statistics accumulated so far.
func (c *Controller) Stats() CrawlStats {
	return c.stats
}

// visit fetches one URL and handles its text, links, and bookkeeping.
// Every failure path is skip-and-continue.
func (c *Controller) visit(ctx context.Context, pageURL string) {
	c.stats.PagesVisited++
	slog.Info("Crawling", "url", pageURL)

	result, err := c.processor.Process(ctx, pageURL)
	if err != nil {
		slog.Error("Failed to process URL", "url", pageURL, "error", err)
		c.stats.ErrorCount++
		return
	}

	if result.Error != nil {
		slog.Warn("Skipping URL", "url", pageURL,
			"error_type", result.Error.ErrorType, "reason", result.Error.Message)
		c.stats.ErrorCount++
		c.record(func(ix Index) error { return ix.RecordFailure(result.Error) })
		return
	}

	page := result.Page
	if text := strings.TrimSpace(page.Text); text != "" {
		if err := c.doc.WriteBlock(page.URL, text); err != nil {
			slog.Error("Failed to write output block", "url", page.URL, "error", err)
		} else {
			c.stats.BlocksWritten++
		}
	}

	c.record(func(ix Index) error { return ix.RecordPage(page) })
	c.enqueueLinks(page.URL, result)
}

// enqueueLinks normalizes the page's hrefs and pushes the crawlable ones.
// All resolved links, internal and external, go to the index.
func (c *Controller) enqueueLinks(sourceURL string, result *PageResult) {
	if len(result.Hrefs) == 0 || result.Base == nil {
		return
	}

	now := time.Now().UTC()
	var links []*LinkData

	for _, href := range result.Hrefs {
		canonical, ok := c.normalizer.Canonicalize(href, result.Base)
		if !ok {
			continue
		}

		internal := c.normalizer.SameHost(canonical)
		links = append(links, &LinkData{
			SourceURL: sourceURL,
			TargetURL: canonical,
			Internal:  internal,
			FoundAt:   now,
		})

		if !internal || !c.normalizer.Crawlable(canonical) {
			continue
		}
		if !c.allowedByPatterns(canonical) {
			continue
		}

		if c.frontier.Push(canonical) {
			slog.Debug("Enqueued", "url", canonical, "source", sourceURL)
		}
	}

	c.record(func(ix Index) error { return ix.RecordLinks(links) })
}

// allowedByPatterns applies the include/exclude regex filters. A URL must
// match at least one include pattern (when any are set) and no exclude
// pattern.
func (c *Controller) allowedByPatterns(urlStr string) bool {
	if len(c.include) > 0 {
		matched := false
		for _, re := range c.include {
			if re.MatchString(urlStr) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range c.exclude {
		if re.MatchString(urlStr) {
			return false
		}
	}

	return true
}

// record applies an index operation when the index is enabled. Index
// failures are logged and otherwise ignored; the output document is the
// primary artifact.
func (c *Controller) record(op func(Index) error) {
	if c.index == nil {
		return
	}
	if err := op(c.index); err != nil {
		slog.Error("Failed to update crawl index", "error", err)
	}
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	var compiled []*regexp.Regexp
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
