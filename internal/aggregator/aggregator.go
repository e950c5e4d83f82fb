// Package aggregator fans out to all source fetchers, merges their output
// and produces the final filtered, sorted, deduplicated list.
package aggregator

import (
	"context"
	"log"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SpdVpr/ainews/internal/classify"
	"github.com/SpdVpr/ainews/internal/collector"
)

const defaultFetchTimeout = 8 * time.Second

// Fallback supplies the dataset served when aggregation comes up empty.
// Injectable so tests can pin their own fixture.
type Fallback interface {
	Items() []collector.NewsItem
}

type Aggregator struct {
	fetchers []collector.Fetcher
	filter   *classify.KeywordFilter
	fallback Fallback
	timeout  time.Duration
}

func New(fetchers []collector.Fetcher, filter *classify.KeywordFilter, fallback Fallback, timeout time.Duration) *Aggregator {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Aggregator{
		fetchers: fetchers,
		filter:   filter,
		fallback: fallback,
		timeout:  timeout,
	}
}

// Latest runs one full aggregation. It never returns an error and never
// returns an empty slice: any failure degrades to the fallback dataset.
// Callers cannot tell degraded output from real output, so every recovery
// point logs.
func (a *Aggregator) Latest(ctx context.Context) (items []collector.NewsItem) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("aggregator: recovered from panic, serving fallback: %v", r)
			items = finalize(a.fallback.Items())
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	merged := a.collect(ctx)

	// Re-filter the merged list even though most fetchers filter already:
	// the community feeds are trusted by topic, not checked.
	relevant := make([]collector.NewsItem, 0, len(merged))
	for _, it := range merged {
		if a.filter.Relevant(it.Title, it.Summary) {
			relevant = append(relevant, it)
		}
	}

	if len(relevant) == 0 {
		log.Printf("aggregator: no relevant items (merged=%d), serving fallback", len(merged))
		relevant = a.fallback.Items()
	}

	return finalize(relevant)
}

// collect runs all fetchers concurrently and merges whatever arrives. Each
// fetcher's error or panic is isolated to its own contribution.
func (a *Aggregator) collect(ctx context.Context) []collector.NewsItem {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		merged []collector.NewsItem
		failed int
	)

	for _, f := range a.fetchers {
		fetcher := f
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("aggregator: fetcher %s panicked: %v", fetcher.Name(), r)
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}()

			items, err := fetcher.Fetch(ctx)
			if err != nil {
				log.Printf("aggregator: fetch %s error: %v", fetcher.Name(), err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}

			mu.Lock()
			merged = append(merged, items...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	log.Printf("aggregator: collected %d items from %d sources (%d failed)",
		len(merged), len(a.fetchers), failed)
	return merged
}

// finalize sorts by publish time descending and drops later items whose
// normalized title was already seen.
func finalize(items []collector.NewsItem) []collector.NewsItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})

	seen := make(map[string]struct{}, len(items))
	out := make([]collector.NewsItem, 0, len(items))
	for _, it := range items {
		key := normalizeTitle(it.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}

var reNonWord = regexp.MustCompile(`\W+`)

// normalizeTitle is the dedup key: lowercase, non-word runs collapsed to a
// single space, trimmed. "AI Model Beats Humans!" and "ai model beats humans"
// collide on purpose.
func normalizeTitle(title string) string {
	return strings.TrimSpace(reNonWord.ReplaceAllString(strings.ToLower(title), " "))
}
