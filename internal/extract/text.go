// Package extract renders fetched pages as plain text suitable for the
// aggregate output document. Extraction is best-effort: malformed markup
// yields an empty string, never an error that could stop a crawl.
package extract

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// removeSelector matches elements that never carry readable content.
const removeSelector = "script, style, head, noscript, iframe, nav, header, footer"

// contentSelector matches likely main-content containers, tried in order
// before falling back to the whole document.
const contentSelector = `main, article, [class*="content"], [class*="main"], [class*="article"]`

// navTokens are class/id markers of navigation chrome. Elements carrying
// one of these as a class token, or containing one in their id, are
// stripped before text extraction.
var navTokens = map[string]struct{}{
	"nav":        {},
	"navbar":     {},
	"navigation": {},
	"menu":       {},
	"header":     {},
	"footer":     {},
	"bottom":     {},
}

// navLineMarkers flag residual navigation lines in the extracted text.
var navLineMarkers = []string{"menu", "navigation", "skip to content"}

// FromContent extracts readable text according to the content type.
// HTML is boilerplate-stripped; other text/* bodies pass through with
// whitespace normalization; binary content yields an empty string.
func FromContent(body []byte, contentType string) string {
	mediaType := strings.ToLower(contentType)
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.TrimSpace(mediaType)

	switch {
	case mediaType == "text/html" || mediaType == "application/xhtml+xml":
		return FromHTML(body)
	case strings.HasPrefix(mediaType, "text/"):
		return strings.TrimSpace(string(body))
	default:
		return ""
	}
}

// FromHTML extracts the readable text of an HTML document: scripts, styling
// and navigation chrome are removed, a main-content container is preferred
// when one exists, and whitespace is collapsed line by line.
func FromHTML(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	doc.Find(removeSelector).Remove()

	doc.Find("[class], [id]").Each(func(_ int, s *goquery.Selection) {
		if isNavigation(s) {
			s.Remove()
		}
	})

	content := doc.Find(contentSelector).First()
	if content.Length() == 0 {
		content = doc.Selection
	}

	return cleanLines(content.Text())
}

// isNavigation checks class tokens and id substrings against navTokens.
func isNavigation(s *goquery.Selection) bool {
	if class, ok := s.Attr("class"); ok {
		for _, token := range strings.Fields(strings.ToLower(class)) {
			if _, hit := navTokens[token]; hit {
				return true
			}
		}
	}

	if id, ok := s.Attr("id"); ok {
		id = strings.ToLower(id)
		for token := range navTokens {
			if strings.Contains(id, token) {
				return true
			}
		}
	}

	return false
}

// cleanLines collapses whitespace within lines and drops empty lines,
// very short lines, and lines that look like leftover navigation items.
func cleanLines(text string) string {
	var kept []string

	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) <= 3 {
			continue
		}

		line = strings.Join(words, " ")
		lower := strings.ToLower(line)
		navLine := false
		for _, marker := range navLineMarkers {
			if strings.Contains(lower, marker) {
				navLine = true
				break
			}
		}
		if navLine {
			continue
		}

		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}
