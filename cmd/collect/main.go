package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/SpdVpr/ainews/internal/aggregator"
	"github.com/SpdVpr/ainews/internal/classify"
	"github.com/SpdVpr/ainews/internal/collector"
	"github.com/SpdVpr/ainews/internal/config"
)

// One-shot aggregation printed as JSON. Handy for checking what the live
// endpoint would serve without running the server.
func main() {
	cfg := config.Load()

	feeds := config.DefaultFeeds()
	if cfg.FeedsConfig != "" {
		loaded, err := config.LoadFeeds(cfg.FeedsConfig)
		if err != nil {
			log.Fatalf("load feeds config failed: %v", err)
		}
		feeds = loaded
	}

	filter := classify.NewAIFilter()
	categorizer := classify.NewCategorizer()

	fetchers := []collector.Fetcher{
		collector.NewGoogleNewsFetcher(feeds.Queries, filter, categorizer),
		collector.NewCommunityFeedFetcher(toFeedSources(feeds.Community), categorizer),
		collector.NewGitHubTrendingFetcher(cfg.GitHubToken),
		collector.NewBlogFeedFetcher(toFeedSources(feeds.Blogs), filter, categorizer),
	}

	agg := aggregator.New(fetchers, filter, aggregator.StaticFallback{}, cfg.FetchTimeout)
	items := agg.Latest(context.Background())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		log.Fatalf("encode items: %v", err)
	}
}

func toFeedSources(feeds []config.Feed) []collector.FeedSource {
	out := make([]collector.FeedSource, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, collector.FeedSource{Name: f.Name, URL: f.URL})
	}
	return out
}
