// Package writer emits the aggregate output document: one delimited text
// block per crawled page, in visit order.
package writer

import (
	"fmt"
	"os"
)

// Document writes delimited text blocks to a single output file. Each block
// is flushed to disk as it is written, so an interrupted crawl keeps every
// page aggregated up to that point.
type Document struct {
	file   *os.File
	blocks int
}

// New creates (or truncates) the output document at path. An unwritable
// path is a startup error for the caller.
func New(path string) (*Document, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output document: %w", err)
	}
	return &Document{file: file}, nil
}

// WriteBlock appends one page's text, preceded by a delimiter line naming
// the source URL. Blocks are separated by a blank line.
func (d *Document) WriteBlock(pageURL, text string) error {
	if _, err := fmt.Fprintf(d.file, "\n\n=== Content from: %s ===\n", pageURL); err != nil {
		return fmt.Errorf("failed to write block delimiter: %w", err)
	}
	if _, err := d.file.WriteString(text); err != nil {
		return fmt.Errorf("failed to write block text: %w", err)
	}
	d.blocks++
	return d.Flush()
}

// Flush forces buffered data to disk.
func (d *Document) Flush() error {
	return d.file.Sync()
}

// Blocks returns the number of blocks written so far.
func (d *Document) Blocks() int {
	return d.blocks
}

// Close flushes and closes the output file.
func (d *Document) Close() error {
	return d.file.Close()
}
