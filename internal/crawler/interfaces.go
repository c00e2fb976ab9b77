package crawler

import "context"

// PageProcessor fetches a URL and turns it into page data and outgoing links.
type PageProcessor interface {
	Process(ctx context.Context, url string) (*PageResult, error)
}

// DocumentWriter appends one delimited text block per crawled page to the
// aggregate output document.
type DocumentWriter interface {
	WriteBlock(pageURL, text string) error
	Flush() error
}

// Index records crawl results for post-run analysis. Implementations are
// write-only from the crawler's point of view; the crawl never reads back.
type Index interface {
	RecordPage(page *PageData) error
	RecordFailure(e *CrawlError) error
	RecordLinks(links []*LinkData) error
	Close() error
}
