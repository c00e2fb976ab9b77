package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestProcessor(t *testing.T) *DefaultPageProcessor {
	t.Helper()
	client := NewHTTPClient("sitecat-test/1.0", 5*time.Second)
	t.Cleanup(client.Close)
	return NewPageProcessor(client)
}

func TestProcessHTMLPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`
			<html>
			<head><title>Guide</title></head>
			<body>
				<p>This page explains the guide content in enough words.</p>
				<a href="/install">Install</a>
				<a href="https://external.com/ad">Ad</a>
			</body>
			</html>
		`))
	}))
	defer server.Close()

	p := newTestProcessor(t)

	result, err := p.Process(context.Background(), server.URL+"/guide")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if result.Error != nil {
		t.Fatalf("Unexpected page error: %+v", result.Error)
	}

	page := result.Page
	if page.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", page.StatusCode)
	}
	if page.Title != "Guide" {
		t.Errorf("Expected title 'Guide', got %q", page.Title)
	}
	if !strings.Contains(page.Text, "This page explains the guide content in enough words.") {
		t.Errorf("Expected extracted text, got %q", page.Text)
	}

	if len(result.Hrefs) != 2 {
		t.Fatalf("Expected 2 hrefs, got %v", result.Hrefs)
	}
	if result.Base == nil || result.Base.Host == "" {
		t.Errorf("Expected a resolution base, got %v", result.Base)
	}
}

func TestProcessNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	p := newTestProcessor(t)

	result, err := p.Process(context.Background(), server.URL+"/missing")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if result.Error == nil || result.Error.ErrorType != "http_error" {
		t.Fatalf("Expected http_error, got %+v", result.Error)
	}
	if result.Page == nil || result.Page.StatusCode != http.StatusNotFound {
		t.Errorf("Expected page data with status 404, got %+v", result.Page)
	}
	if len(result.Hrefs) != 0 {
		t.Errorf("Non-2xx page should contribute no hrefs, got %v", result.Hrefs)
	}
}

func TestProcessFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	p := newTestProcessor(t)

	result, err := p.Process(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Process should report fetch failures in-band, got error: %v", err)
	}

	if result.Error == nil || result.Error.ErrorType != "fetch_error" {
		t.Fatalf("Expected fetch_error, got %+v", result.Error)
	}
	if result.Page != nil {
		t.Errorf("Expected no page data on fetch failure, got %+v", result.Page)
	}
}

func TestProcessPlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("plain text body <a href=\"/not-a-link\">literal</a>"))
	}))
	defer server.Close()

	p := newTestProcessor(t)

	result, err := p.Process(context.Background(), server.URL+"/notes.txt")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if result.Error != nil {
		t.Fatalf("Unexpected error: %+v", result.Error)
	}
	if !strings.Contains(result.Page.Text, "plain text body") {
		t.Errorf("Expected raw text passthrough, got %q", result.Page.Text)
	}
	// Non-HTML content contributes text but never links.
	if len(result.Hrefs) != 0 {
		t.Errorf("Expected no hrefs from plain text, got %v", result.Hrefs)
	}
}

func TestProcessFollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new/", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><a href="sibling">S</a></body></html>`))
	})

	p := newTestProcessor(t)

	result, err := p.Process(context.Background(), server.URL+"/old")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if result.Error != nil {
		t.Fatalf("Unexpected error: %+v", result.Error)
	}

	// Relative hrefs must resolve against the post-redirect URL.
	if result.Base.Path != "/new/" {
		t.Errorf("Expected base path /new/, got %q", result.Base.Path)
	}
}
