package collector

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/SpdVpr/ainews/internal/classify"
	"github.com/SpdVpr/ainews/internal/textutil"
)

const (
	communityPerFeedLimit  = 5
	communityClientTimeout = 10 * time.Second
)

// CommunityFeedFetcher pulls a small fixed list of community RSS/Atom feeds
// (Reddit, Medium tags and the like). The feeds are topic-scoped already, so
// items are categorized but not re-filtered for AI relevance. gofeed handles
// RSS <item> and Atom <entry> containers uniformly, including the
// pubDate/published/updated date fallbacks.
type CommunityFeedFetcher struct {
	feeds       []FeedSource
	categorizer *classify.KeywordCategorizer
	client      *http.Client
}

func NewCommunityFeedFetcher(feeds []FeedSource, categorizer *classify.KeywordCategorizer) *CommunityFeedFetcher {
	return &CommunityFeedFetcher{
		feeds:       feeds,
		categorizer: categorizer,
		client:      &http.Client{Timeout: communityClientTimeout},
	}
}

func (f *CommunityFeedFetcher) Name() string {
	return "community_feeds"
}

func (f *CommunityFeedFetcher) Fetch(ctx context.Context) ([]NewsItem, error) {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		items []NewsItem
	)

	for _, src := range f.feeds {
		wg.Add(1)
		go func(src FeedSource) {
			defer wg.Done()

			parser := gofeed.NewParser()
			parser.Client = f.client
			parser.UserAgent = collectorUserAgent

			feed, err := parser.ParseURLWithContext(src.URL, ctx)
			if err != nil {
				log.Printf("community: feed %s: %v", src.URL, err)
				return
			}

			label := src.Name
			if label == "" {
				label = feed.Title
			}
			batch := f.mapItems(feed.Items, orFallback(label, fallbackSource))

			mu.Lock()
			items = append(items, batch...)
			mu.Unlock()
		}(src)
	}
	wg.Wait()

	for i := range items {
		items[i].ID = itemID("community", i)
	}

	if len(items) == 0 {
		log.Println("community: no items fetched")
	}
	return items, nil
}

func (f *CommunityFeedFetcher) mapItems(feedItems []*gofeed.Item, label string) []NewsItem {
	out := make([]NewsItem, 0, communityPerFeedLimit)
	for _, it := range feedItems {
		if len(out) >= communityPerFeedLimit {
			break
		}

		title := textutil.ExtractCleanText(it.Title)

		// Field fallback: description, then full content.
		body := it.Description
		if body == "" {
			body = it.Content
		}
		summary := textutil.CreateSummary(textutil.ExtractCleanText(body), summaryMaxRunes)

		link := it.Link
		if link == "" {
			link = it.GUID
		}

		published := it.PublishedParsed
		if published == nil {
			published = it.UpdatedParsed
		}

		out = append(out, NewsItem{
			Title:       orFallback(title, fallbackTitle),
			Summary:     orFallback(summary, fallbackSummary),
			Source:      label,
			SourceURL:   orFallback(link, fallbackLink),
			PublishedAt: publishedOrNow(published),
			Category:    f.categorizer.Categorize(title, summary),
		})
	}
	return out
}
