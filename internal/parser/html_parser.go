// Package parser extracts structural data from HTML documents: the title,
// the document base, and the outgoing anchor hrefs in document order.
package parser

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Result contains the data extracted from one HTML document.
type Result struct {
	Title string
	Base  *url.URL // Document base after honoring the first <base href>
	Hrefs []string // Raw anchor hrefs in document order

	baseSeen bool
}

// Parse walks an HTML document and collects the title and anchor hrefs.
// docURL is the document's own URL (after redirects); it becomes the
// resolution base unless the document carries a <base href> tag.
func Parse(body []byte, docURL string) (*Result, error) {
	base, err := url.Parse(docURL)
	if err != nil {
		return nil, fmt.Errorf("invalid document URL: %w", err)
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	result := &Result{Base: base}
	traverse(doc, result)
	return result, nil
}

// traverse recursively walks the HTML tree in document order.
func traverse(n *html.Node, result *Result) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "title":
			if result.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				result.Title = strings.TrimSpace(n.FirstChild.Data)
			}

		case "base":
			parseBase(n, result)

		case "a":
			parseAnchor(n, result)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		traverse(c, result)
	}
}

// parseBase rebases the document against the first valid <base href>.
// Later base elements are ignored, as browsers do.
func parseBase(n *html.Node, result *Result) {
	if result.baseSeen {
		return
	}
	for _, attr := range n.Attr {
		if attr.Key != "href" || attr.Val == "" {
			continue
		}
		if u, err := url.Parse(attr.Val); err == nil {
			result.Base = result.Base.ResolveReference(u)
			result.baseSeen = true
		}
		return
	}
}

// parseAnchor collects the href of an anchor tag. Bare fragments are
// dropped here; everything else is left to the normalizer.
func parseAnchor(n *html.Node, result *Result) {
	for _, attr := range n.Attr {
		if attr.Key != "href" {
			continue
		}
		href := strings.TrimSpace(attr.Val)
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		result.Hrefs = append(result.Hrefs, href)
		return
	}
}
