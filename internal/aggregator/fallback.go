package aggregator

import (
	"fmt"
	"time"

	"github.com/SpdVpr/ainews/internal/classify"
	"github.com/SpdVpr/ainews/internal/collector"
)

// StaticFallback is the built-in demo dataset served when every source fails
// or nothing passes the relevance filter. Five items across the category set,
// timestamps offset from the current time so the list is already in publish
// order.
type StaticFallback struct{}

type fallbackSeed struct {
	title    string
	summary  string
	source   string
	category classify.Category
}

var fallbackSeeds = []fallbackSeed{
	{
		title:    "Researchers unveil breakthrough in efficient language model training",
		summary:  "A new training technique cuts the compute needed for large language models by an order of magnitude, according to a peer-reviewed study published this week.",
		source:   "AI Research Weekly",
		category: classify.CategoryResearch,
	},
	{
		title:    "New study measures how AI assistants change developer productivity",
		summary:  "Scientists tracked 2,000 engineers over six months and found measurable speedups on routine tasks, with mixed results on complex design work.",
		source:   "Tech Science Daily",
		category: classify.CategoryResearch,
	},
	{
		title:    "AI infrastructure startup raises $120 million to scale inference platform",
		summary:  "The funding round values the company at over a billion dollars as demand for model-serving capacity keeps climbing.",
		source:   "Venture Wire",
		category: classify.CategoryBusiness,
	},
	{
		title:    "Popular open-source AI toolkit ships major release with new agent features",
		summary:  "The update adds a plugin interface, faster local inference and a revamped CLI, and is available to all users today.",
		source:   "Dev Tools Digest",
		category: classify.CategoryTools,
	},
	{
		title:    "What the latest wave of AI adoption means for everyday software",
		summary:  "A look at how assistants, copilots and generative features are quietly reshaping the applications people already use.",
		source:   "The AI Brief",
		category: classify.CategoryGeneral,
	},
}

func (StaticFallback) Items() []collector.NewsItem {
	now := time.Now()
	items := make([]collector.NewsItem, 0, len(fallbackSeeds))
	for i, seed := range fallbackSeeds {
		items = append(items, collector.NewsItem{
			ID:          fmt.Sprintf("fallback-%d", i+1),
			Title:       seed.title,
			Summary:     seed.summary,
			Source:      seed.source,
			SourceURL:   "#",
			PublishedAt: now.Add(-time.Duration(i) * 2 * time.Hour),
			Category:    seed.category,
		})
	}
	return items
}
