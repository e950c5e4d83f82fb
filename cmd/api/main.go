package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/SpdVpr/ainews/internal/aggregator"
	"github.com/SpdVpr/ainews/internal/api"
	"github.com/SpdVpr/ainews/internal/cache"
	"github.com/SpdVpr/ainews/internal/classify"
	"github.com/SpdVpr/ainews/internal/collector"
	"github.com/SpdVpr/ainews/internal/config"
	"github.com/SpdVpr/ainews/internal/scheduler"
)

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

	var store cache.Cache
	if cfg.RedisAddr != "" {
		store = cache.NewRedis(cfg.RedisAddr)
	} else {
		store = cache.NewMemory()
		log.Println("no REDIS_ADDR configured, using in-memory cache")
	}

	agg := buildAggregator(cfg, feeds)

	s, err := scheduler.New(cfg.CronSpec, agg, store, cfg.CacheTTL)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	s.Start()

	r := gin.Default()
	apiServer := api.NewServer(agg, aggregator.StaticFallback{}, store, cfg.CacheTTL)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}

func buildAggregator(cfg *config.Config, feeds *config.Feeds) *aggregator.Aggregator {
	filter := classify.NewAIFilter()
	categorizer := classify.NewCategorizer()

	fetchers := []collector.Fetcher{
		collector.NewGoogleNewsFetcher(feeds.Queries, filter, categorizer),
		collector.NewCommunityFeedFetcher(toFeedSources(feeds.Community), categorizer),
		collector.NewGitHubTrendingFetcher(cfg.GitHubToken),
		collector.NewBlogFeedFetcher(toFeedSources(feeds.Blogs), filter, categorizer),
	}

	return aggregator.New(fetchers, filter, aggregator.StaticFallback{}, cfg.FetchTimeout)
}

func toFeedSources(feeds []config.Feed) []collector.FeedSource {
	out := make([]collector.FeedSource, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, collector.FeedSource{Name: f.Name, URL: f.URL})
	}
	return out
}
