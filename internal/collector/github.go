package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/SpdVpr/ainews/internal/classify"
	"github.com/SpdVpr/ainews/internal/textutil"
)

const (
	ghSearchEndpoint   = "https://api.github.com/search/repositories"
	ghTopicQuery       = "topic:artificial-intelligence topic:machine-learning"
	ghTopN             = 5
	ghMaxResponseBytes = 1 << 20 // 1MB
	ghClientTimeout    = 10 * time.Second
)

// GitHubTrendingFetcher surfaces recently updated AI/ML repositories via the
// repository-search API. Everything it returns is tagged tools.
type GitHubTrendingFetcher struct {
	// Endpoint is overridable for tests; defaults to the public search API.
	Endpoint string
	// Token is optional; unauthenticated search works within rate limits.
	Token string

	client *http.Client
}

type ghRepo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	HTMLURL         string `json:"html_url"`
	UpdatedAt       string `json:"updated_at"`
}

type ghSearchResponse struct {
	Items []ghRepo `json:"items"`
}

func NewGitHubTrendingFetcher(token string) *GitHubTrendingFetcher {
	return &GitHubTrendingFetcher{
		Endpoint: ghSearchEndpoint,
		Token:    token,
		client:   &http.Client{Timeout: ghClientTimeout},
	}
}

func (g *GitHubTrendingFetcher) Name() string {
	return "github_trending"
}

func (g *GitHubTrendingFetcher) Fetch(ctx context.Context) ([]NewsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.searchURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("github: build request: %w", err)
	}
	// The search API rejects requests without a User-Agent.
	req.Header.Set("User-Agent", collectorUserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if g.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.Token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: search repositories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github: unexpected status %d", resp.StatusCode)
	}

	var search ghSearchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, ghMaxResponseBytes)).Decode(&search); err != nil {
		return nil, fmt.Errorf("github: decode response: %w", err)
	}

	repos := search.Items
	if len(repos) > ghTopN {
		repos = repos[:ghTopN]
	}

	items := make([]NewsItem, 0, len(repos))
	for i, repo := range repos {
		desc := textutil.ExtractCleanText(repo.Description)

		title := repo.Name
		if desc != "" {
			title = fmt.Sprintf("%s: %s", repo.Name, desc)
		}

		summary := fmt.Sprintf("%s ⭐ %d stars · %d forks",
			orFallback(desc, repo.FullName), repo.StargazersCount, repo.ForksCount)

		var published *time.Time
		if t, err := time.Parse(time.RFC3339, repo.UpdatedAt); err == nil {
			published = &t
		}

		items = append(items, NewsItem{
			ID:          itemID("github", i),
			Title:       orFallback(title, fallbackTitle),
			Summary:     textutil.CreateSummary(summary, summaryMaxRunes),
			Source:      "GitHub",
			SourceURL:   orFallback(repo.HTMLURL, fallbackLink),
			PublishedAt: publishedOrNow(published),
			Category:    classify.CategoryTools,
		})
	}

	if len(items) == 0 {
		log.Println("github: no repositories fetched")
	}
	return items, nil
}

func (g *GitHubTrendingFetcher) searchURL() string {
	v := url.Values{}
	v.Set("q", ghTopicQuery)
	v.Set("sort", "updated")
	v.Set("order", "desc")
	v.Set("per_page", fmt.Sprintf("%d", ghTopN))
	return g.Endpoint + "?" + v.Encode()
}
