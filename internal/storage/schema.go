package storage

const schemaSQL = `
-- One row per URL the crawl fetched (or failed to fetch).
CREATE TABLE IF NOT EXISTS pages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT UNIQUE NOT NULL,
    status_code INTEGER,
    content_type TEXT,
    title TEXT,
    text_bytes INTEGER,
    response_bytes INTEGER,
    ttfb_ms INTEGER,
    download_time_ms INTEGER,
    error_type TEXT,
    error_message TEXT,
    fetched_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_pages_status_code ON pages(status_code);
CREATE INDEX IF NOT EXISTS idx_pages_error_type ON pages(error_type) WHERE error_type IS NOT NULL;

-- Link relationships discovered during the crawl.
CREATE TABLE IF NOT EXISTS links (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_url TEXT NOT NULL,
    target_url TEXT NOT NULL,
    internal INTEGER NOT NULL DEFAULT 0,
    found_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(source_url, target_url)
);

CREATE INDEX IF NOT EXISTS idx_links_source ON links(source_url);
CREATE INDEX IF NOT EXISTS idx_links_target ON links(target_url);
`
