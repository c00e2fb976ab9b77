package crawler

import (
	"net/url"
	"path"
	"strings"
)

// binaryExtensions lists file extensions that never yield text or links.
// Links to these are dropped during normalization.
var binaryExtensions = map[string]struct{}{
	".pdf":  {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".svg":  {},
	".ico":  {},
	".zip":  {},
	".gz":   {},
	".tar":  {},
	".mp3":  {},
	".mp4":  {},
	".webm": {},
	".woff": {},
}

// Normalizer canonicalizes discovered links and decides crawl-scope
// membership against the start URL's host. All methods are pure.
type Normalizer struct {
	host string
}

// NewNormalizer creates a normalizer whose host boundary is taken from
// the given start URL.
func NewNormalizer(startURL string) (*Normalizer, error) {
	u, err := url.Parse(startURL)
	if err != nil {
		return nil, err
	}
	return &Normalizer{host: strings.ToLower(u.Host)}, nil
}

// Canonicalize resolves a raw href against the base URL of the page it was
// found on and returns the canonical absolute form: fragment stripped,
// host lowercased, trailing slash removed from non-root paths. The second
// return value is false when the link cannot become a crawlable http(s)
// URL (mailto:, javascript:, unparseable, and similar).
// Canonicalizing an already-canonical URL returns it unchanged.
func (n *Normalizer) Canonicalize(href string, base *url.URL) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	resolved := base.ResolveReference(u)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	if resolved.Host == "" {
		return "", false
	}

	resolved.Fragment = ""
	resolved.Host = strings.ToLower(resolved.Host)
	if resolved.Path == "" {
		resolved.Path = "/"
	} else if resolved.Path != "/" {
		resolved.Path = strings.TrimSuffix(resolved.Path, "/")
	}

	return resolved.String(), true
}

// SameHost reports whether a canonical URL shares the start URL's host.
func (n *Normalizer) SameHost(canonical string) bool {
	u, err := url.Parse(canonical)
	if err != nil {
		return false
	}
	return strings.ToLower(u.Host) == n.host
}

// Crawlable reports whether a canonical URL belongs in the frontier:
// same host as the start URL and not pointing at a known binary format.
func (n *Normalizer) Crawlable(canonical string) bool {
	if !n.SameHost(canonical) {
		return false
	}

	u, err := url.Parse(canonical)
	if err != nil {
		return false
	}

	ext := strings.ToLower(path.Ext(u.Path))
	_, binary := binaryExtensions[ext]
	return !binary
}
