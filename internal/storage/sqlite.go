// Package storage provides the optional SQLite crawl index. The index is a
// post-run report of what the crawl saw: page metadata and the link graph.
// It is write-only during a run and never seeds a later crawl.
package storage

import (
	"database/sql"
	"fmt"

	"sitecat/internal/crawler"

	// SQLite database driver (CGO-free)
	_ "modernc.org/sqlite"
)

// CrawlIndex implements the crawler.Index interface on SQLite.
type CrawlIndex struct {
	db *sql.DB
}

// Open opens (or creates) the crawl index database at dbPath.
func Open(dbPath string) (*CrawlIndex, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection keeps SQLite lock handling trivial.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	index := &CrawlIndex{db: db}
	if err := index.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return index, nil
}

func (x *CrawlIndex) initSchema() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 30000",
	}

	for _, pragma := range pragmas {
		if _, err := x.db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
		}
	}

	if _, err := x.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// RecordPage stores one fetched page's metadata. The page body itself is
// never stored; the output document owns the text.
func (x *CrawlIndex) RecordPage(page *crawler.PageData) error {
	_, err := x.db.Exec(`
		INSERT INTO pages (url, status_code, content_type, title, text_bytes,
			response_bytes, ttfb_ms, download_time_ms, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			status_code = excluded.status_code,
			content_type = excluded.content_type,
			title = excluded.title,
			text_bytes = excluded.text_bytes,
			response_bytes = excluded.response_bytes,
			ttfb_ms = excluded.ttfb_ms,
			download_time_ms = excluded.download_time_ms,
			fetched_at = excluded.fetched_at
	`,
		page.URL,
		page.StatusCode,
		page.ContentType,
		page.Title,
		len(page.Text),
		page.ResponseSize,
		page.TTFB.Milliseconds(),
		page.DownloadTime.Milliseconds(),
		page.FetchedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to record page: %w", err)
	}
	return nil
}

// RecordFailure stores a per-URL failure as a page row with error details.
func (x *CrawlIndex) RecordFailure(e *crawler.CrawlError) error {
	_, err := x.db.Exec(`
		INSERT INTO pages (url, error_type, error_message, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			error_type = excluded.error_type,
			error_message = excluded.error_message,
			fetched_at = excluded.fetched_at
	`, e.URL, e.ErrorType, e.Message, e.OccurredAt)

	if err != nil {
		return fmt.Errorf("failed to record failure: %w", err)
	}
	return nil
}

// RecordLinks stores link relationships in a single transaction.
func (x *CrawlIndex) RecordLinks(links []*crawler.LinkData) error {
	if len(links) == 0 {
		return nil
	}

	tx, err := x.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO links (source_url, target_url, internal, found_at)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, link := range links {
		internal := 0
		if link.Internal {
			internal = 1
		}
		if _, err := stmt.Exec(link.SourceURL, link.TargetURL, internal, link.FoundAt); err != nil {
			return fmt.Errorf("failed to insert link %s -> %s: %w", link.SourceURL, link.TargetURL, err)
		}
	}

	return tx.Commit()
}

// PageCount returns the number of recorded pages, failures included.
func (x *CrawlIndex) PageCount() (int, error) {
	var count int
	if err := x.db.QueryRow("SELECT COUNT(*) FROM pages").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return count, nil
}

// LinkCount returns the number of recorded link relationships.
func (x *CrawlIndex) LinkCount() (int, error) {
	var count int
	if err := x.db.QueryRow("SELECT COUNT(*) FROM links").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return count, nil
}

// Close closes the database connection.
func (x *CrawlIndex) Close() error {
	return x.db.Close()
}

// Compile-time check that CrawlIndex satisfies the crawler's Index interface.
var _ crawler.Index = (*CrawlIndex)(nil)
