package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/SpdVpr/ainews/internal/classify"
)

// NewsItem is the normalized record every source produces and the API serves.
type NewsItem struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Summary     string            `json:"summary"`
	Source      string            `json:"source"`
	SourceURL   string            `json:"sourceUrl"`
	PublishedAt time.Time         `json:"publishedAt"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	Category    classify.Category `json:"category"`
}

// Fetcher abstracts one upstream source. A fetcher may return an error; the
// aggregator maps it to an empty contribution, so one broken source never
// aborts a run.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]NewsItem, error)
}

// FeedSource names one RSS/Atom feed.
type FeedSource struct {
	Name string
	URL  string
}

const (
	fallbackTitle   = "No title available"
	fallbackSummary = "No summary available"
	fallbackSource  = "Unknown Source"
	fallbackLink    = "#"

	summaryMaxRunes = 200

	collectorUserAgent = "ainews-aggregator/1.0"
)

// itemID builds an id unique within one aggregation run: source tag +
// fetch timestamp + running index. Not stable across runs.
func itemID(tag string, idx int) string {
	return fmt.Sprintf("%s-%d-%d", tag, time.Now().UnixMilli(), idx)
}

// publishedOrNow falls back to the aggregation time when the source carries
// no usable date.
func publishedOrNow(t *time.Time) time.Time {
	if t != nil && !t.IsZero() {
		return *t
	}
	return time.Now()
}

func orFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
