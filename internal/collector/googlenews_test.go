package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SpdVpr/ainews/internal/classify"
)

const googleNewsRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Search results</title>
<item>
<title>OpenAI releases new model - TechCrunch</title>
<link>https://example.com/openai</link>
<pubDate>Mon, 03 Jun 2024 15:04:05 GMT</pubDate>
<description>&lt;a href="https://example.com/openai"&gt;OpenAI&lt;/a&gt; ships a new machine learning model.</description>
</item>
<item>
<title>Local bakery opens downtown - Gazette</title>
<link>https://example.com/bakery</link>
<pubDate>Mon, 03 Jun 2024 12:00:00 GMT</pubDate>
<description>Fresh bread every morning.</description>
</item>
</channel>
</rss>`

func TestGoogleNewsFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "" {
			t.Errorf("missing q parameter in %s", r.URL.String())
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(googleNewsRSS))
	}))
	defer srv.Close()

	f := NewGoogleNewsFetcher([]string{"artificial intelligence"}, classify.NewAIFilter(), classify.NewCategorizer())
	f.Endpoint = srv.URL

	items, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 relevant item, got %d: %+v", len(items), items)
	}

	it := items[0]
	if it.Title != "OpenAI releases new model" {
		t.Fatalf("title = %q", it.Title)
	}
	if it.Source != "TechCrunch" {
		t.Fatalf("publisher = %q, want TechCrunch", it.Source)
	}
	if it.SourceURL != "https://example.com/openai" {
		t.Fatalf("sourceUrl = %q", it.SourceURL)
	}
	if it.PublishedAt.Year() != 2024 {
		t.Fatalf("publishedAt not parsed: %v", it.PublishedAt)
	}
	if it.Category != classify.CategoryResearch {
		t.Fatalf("category = %q, want research (title contains 'model')", it.Category)
	}
	if it.ID == "" {
		t.Fatalf("item id must be set")
	}
}

// The per-query cap bounds raw volume: only the head of the feed is
// considered at all, so a relevant item past the cap never makes it in.
func TestGoogleNewsFetcherCapsBeforeFiltering(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>Search</title>`)
	for i := 0; i < gnewsPerQueryLimit; i++ {
		fmt.Fprintf(&sb, `<item><title>Garden update %d - Gazette</title><link>https://example.com/%d</link><description>flowers</description></item>`, i, i)
	}
	sb.WriteString(`<item><title>OpenAI ships model - Wire</title><link>https://example.com/late</link><description>machine learning news</description></item>`)
	sb.WriteString(`</channel></rss>`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sb.String()))
	}))
	defer srv.Close()

	f := NewGoogleNewsFetcher([]string{"ai"}, classify.NewAIFilter(), classify.NewCategorizer())
	f.Endpoint = srv.URL

	items, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("item beyond the per-query cap should never be considered, got %d: %+v", len(items), items)
	}
}

func TestGoogleNewsFetcherToleratesFailedQueries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream sad", http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewGoogleNewsFetcher([]string{"a", "b"}, classify.NewAIFilter(), classify.NewCategorizer())
	f.Endpoint = srv.URL

	items, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("per-query failures must not surface as fetch errors: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}
