package collector

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/SpdVpr/ainews/internal/classify"
	"github.com/SpdVpr/ainews/internal/textutil"
)

const (
	blogSampleSize    = 2
	blogPerFeedLimit  = 5
	blogClientTimeout = 10 * time.Second
)

// BlogFeedFetcher samples a couple of feeds from a pool of AI blogs on every
// call, so successive aggregations rotate through sources instead of hitting
// the whole pool each time. Blog content is broader than the community feeds,
// so the relevance filter is re-applied as a safety net, and a representative
// image is pulled from the entry's embedded HTML when present.
type BlogFeedFetcher struct {
	pool        []FeedSource
	sampleSize  int
	filter      *classify.KeywordFilter
	categorizer *classify.KeywordCategorizer
	client      *http.Client
}

func NewBlogFeedFetcher(pool []FeedSource, filter *classify.KeywordFilter, categorizer *classify.KeywordCategorizer) *BlogFeedFetcher {
	return &BlogFeedFetcher{
		pool:        pool,
		sampleSize:  blogSampleSize,
		filter:      filter,
		categorizer: categorizer,
		client:      &http.Client{Timeout: blogClientTimeout},
	}
}

func (b *BlogFeedFetcher) Name() string {
	return "ai_blogs"
}

func (b *BlogFeedFetcher) Fetch(ctx context.Context) ([]NewsItem, error) {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		items []NewsItem
	)

	for _, src := range sampleFeeds(b.pool, b.sampleSize) {
		wg.Add(1)
		go func(src FeedSource) {
			defer wg.Done()

			parser := gofeed.NewParser()
			parser.Client = b.client
			parser.UserAgent = collectorUserAgent

			feed, err := parser.ParseURLWithContext(src.URL, ctx)
			if err != nil {
				log.Printf("blogs: feed %s: %v", src.URL, err)
				return
			}

			label := src.Name
			if label == "" {
				label = feed.Title
			}
			batch := b.mapItems(feed.Items, orFallback(label, fallbackSource))

			mu.Lock()
			items = append(items, batch...)
			mu.Unlock()
		}(src)
	}
	wg.Wait()

	for i := range items {
		items[i].ID = itemID("blog", i)
	}

	if len(items) == 0 {
		log.Println("blogs: no items fetched")
	}
	return items, nil
}

func (b *BlogFeedFetcher) mapItems(feedItems []*gofeed.Item, label string) []NewsItem {
	out := make([]NewsItem, 0, blogPerFeedLimit)
	for _, it := range feedItems {
		if len(out) >= blogPerFeedLimit {
			break
		}

		body := it.Content
		if body == "" {
			body = it.Description
		}

		title := textutil.ExtractCleanText(it.Title)
		summary := textutil.CreateSummary(textutil.ExtractCleanText(body), summaryMaxRunes)
		if !b.filter.Relevant(title, summary) {
			continue
		}

		imageURL := ""
		if it.Image != nil {
			imageURL = it.Image.URL
		}
		if imageURL == "" {
			imageURL = extractImageURL(body)
		}

		published := it.PublishedParsed
		if published == nil {
			published = it.UpdatedParsed
		}

		out = append(out, NewsItem{
			Title:       orFallback(title, fallbackTitle),
			Summary:     orFallback(summary, fallbackSummary),
			Source:      label,
			SourceURL:   orFallback(it.Link, fallbackLink),
			PublishedAt: publishedOrNow(published),
			ImageURL:    imageURL,
			Category:    b.categorizer.Categorize(title, summary),
		})
	}
	return out
}

// sampleFeeds returns up to n feeds drawn randomly from the pool.
func sampleFeeds(pool []FeedSource, n int) []FeedSource {
	if n >= len(pool) {
		return pool
	}
	picked := make([]FeedSource, len(pool))
	copy(picked, pool)
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:n]
}

// extractImageURL pulls the first absolute <img src> out of entry HTML.
func extractImageURL(html string) string {
	if !strings.Contains(html, "<img") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img").First().Attr("src")
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return ""
	}
	return src
}
