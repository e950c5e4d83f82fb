package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SpdVpr/ainews/internal/classify"
)

const ghSearchJSON = `{
  "total_count": 1,
  "items": [
    {
      "id": 42,
      "name": "awesome-llm",
      "full_name": "acme/awesome-llm",
      "description": "Curated list of large language model resources",
      "stargazers_count": 1200,
      "forks_count": 34,
      "html_url": "https://github.com/acme/awesome-llm",
      "updated_at": "2024-06-01T12:00:00Z"
    }
  ]
}`

func TestGitHubTrendingFetcher(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		if r.URL.Query().Get("sort") != "updated" {
			t.Errorf("expected sort=updated, got %q", r.URL.Query().Get("sort"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(ghSearchJSON))
	}))
	defer srv.Close()

	f := NewGitHubTrendingFetcher("")
	f.Endpoint = srv.URL

	items, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if gotUA == "" {
		t.Fatalf("the search API requires a User-Agent header")
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	it := items[0]
	if it.Title != "awesome-llm: Curated list of large language model resources" {
		t.Fatalf("title = %q", it.Title)
	}
	if !strings.Contains(it.Summary, "1200 stars") || !strings.Contains(it.Summary, "34 forks") {
		t.Fatalf("summary missing counts: %q", it.Summary)
	}
	if it.Category != classify.CategoryTools {
		t.Fatalf("category = %q, want tools", it.Category)
	}
	if it.Source != "GitHub" {
		t.Fatalf("source = %q", it.Source)
	}
	if it.PublishedAt.Year() != 2024 {
		t.Fatalf("publishedAt not parsed from updated_at: %v", it.PublishedAt)
	}
}

func TestGitHubTrendingFetcherNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewGitHubTrendingFetcher("")
	f.Endpoint = srv.URL

	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error on non-200 status")
	}
}

func TestGitHubTrendingFetcherSendsToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	f := NewGitHubTrendingFetcher("secret-token")
	f.Endpoint = srv.URL

	if _, err := f.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
}
