package collector

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/SpdVpr/ainews/internal/classify"
	"github.com/SpdVpr/ainews/internal/textutil"
)

const (
	gnewsEndpoint      = "https://news.google.com/rss/search"
	gnewsPerQueryLimit = 8
	gnewsConcurrency   = 4
	gnewsClientTimeout = 10 * time.Second
)

// GoogleNewsFetcher runs a fixed list of AI search queries against the
// Google News RSS search endpoint. Queries go out in parallel; a failed
// query only loses its own items.
type GoogleNewsFetcher struct {
	// Endpoint is overridable for tests; defaults to the Google News search feed.
	Endpoint string

	queries     []string
	filter      *classify.KeywordFilter
	categorizer *classify.KeywordCategorizer
	client      *http.Client
}

func NewGoogleNewsFetcher(queries []string, filter *classify.KeywordFilter, categorizer *classify.KeywordCategorizer) *GoogleNewsFetcher {
	return &GoogleNewsFetcher{
		Endpoint:    gnewsEndpoint,
		queries:     queries,
		filter:      filter,
		categorizer: categorizer,
		client:      &http.Client{Timeout: gnewsClientTimeout},
	}
}

func (g *GoogleNewsFetcher) Name() string {
	return "google_news"
}

func (g *GoogleNewsFetcher) Fetch(ctx context.Context) ([]NewsItem, error) {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		sem   = make(chan struct{}, gnewsConcurrency)
		items = make([]NewsItem, 0, gnewsPerQueryLimit*len(g.queries))
	)

	for _, q := range g.queries {
		wg.Add(1)
		sem <- struct{}{}
		go func(query string) {
			defer wg.Done()
			defer func() { <-sem }()

			// gofeed parsers are not safe for concurrent use; one per request.
			parser := gofeed.NewParser()
			parser.Client = g.client
			parser.UserAgent = collectorUserAgent

			feed, err := parser.ParseURLWithContext(g.searchURL(query), ctx)
			if err != nil {
				log.Printf("googlenews: query %q: %v", query, err)
				return
			}
			batch := g.mapItems(feed.Items)

			mu.Lock()
			items = append(items, batch...)
			mu.Unlock()
		}(q)
	}
	wg.Wait()

	// IDs are assigned after the merge so the running index stays unique
	// across queries.
	for i := range items {
		items[i].ID = itemID("gnews", i)
	}

	if len(items) == 0 {
		log.Println("googlenews: no items fetched")
	}
	return items, nil
}

func (g *GoogleNewsFetcher) searchURL(query string) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("hl", "en-US")
	v.Set("gl", "US")
	v.Set("ceid", "US:en")
	return g.Endpoint + "?" + v.Encode()
}

func (g *GoogleNewsFetcher) mapItems(feedItems []*gofeed.Item) []NewsItem {
	// Volume bound comes first: only the head of the feed is considered,
	// relevance then thins it further.
	if len(feedItems) > gnewsPerQueryLimit {
		feedItems = feedItems[:gnewsPerQueryLimit]
	}

	out := make([]NewsItem, 0, len(feedItems))
	for _, it := range feedItems {
		title, publisher := splitPublisher(textutil.ExtractCleanText(it.Title))
		summary := textutil.CreateSummary(textutil.ExtractCleanText(it.Description), summaryMaxRunes)
		if !g.filter.Relevant(title, summary) {
			continue
		}

		published := it.PublishedParsed
		if published == nil {
			published = it.UpdatedParsed
		}

		out = append(out, NewsItem{
			Title:       orFallback(title, fallbackTitle),
			Summary:     orFallback(summary, fallbackSummary),
			Source:      publisher,
			SourceURL:   orFallback(it.Link, fallbackLink),
			PublishedAt: publishedOrNow(published),
			Category:    g.categorizer.Categorize(title, summary),
		})
	}
	return out
}

// splitPublisher peels the publisher off a Google News headline, which
// arrives as "Headline - Publisher".
func splitPublisher(title string) (string, string) {
	if i := strings.LastIndex(title, " - "); i > 0 && i+3 < len(title) {
		return strings.TrimSpace(title[:i]), strings.TrimSpace(title[i+3:])
	}
	return title, "Google News"
}
