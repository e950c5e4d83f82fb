package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Feed names one RSS/Atom feed in the feeds file.
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Feeds is the YAML feeds-file structure. Sections left empty keep their
// built-in defaults.
type Feeds struct {
	Queries   []string `yaml:"queries"`
	Community []Feed   `yaml:"community"`
	Blogs     []Feed   `yaml:"blogs"`
}

// DefaultFeeds returns the compiled-in source set used when no feeds file is
// configured.
func DefaultFeeds() *Feeds {
	return &Feeds{
		Queries: []string{
			"artificial intelligence",
			"machine learning breakthrough",
			"OpenAI",
			"AI startup funding",
		},
		Community: []Feed{
			{Name: "r/artificial", URL: "https://www.reddit.com/r/artificial/.rss"},
			{Name: "r/MachineLearning", URL: "https://www.reddit.com/r/MachineLearning/.rss"},
			{Name: "Medium AI", URL: "https://medium.com/feed/tag/artificial-intelligence"},
		},
		Blogs: []Feed{
			{Name: "OpenAI Blog", URL: "https://openai.com/blog/rss.xml"},
			{Name: "Google AI Blog", URL: "https://blog.google/technology/ai/rss/"},
			{Name: "MIT Technology Review AI", URL: "https://www.technologyreview.com/topic/artificial-intelligence/feed"},
			{Name: "DeepMind Blog", URL: "https://deepmind.google/blog/rss.xml"},
		},
	}
}

// LoadFeeds reads the source set from a YAML file, filling missing sections
// from the defaults.
func LoadFeeds(path string) (*Feeds, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var feeds Feeds
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&feeds); err != nil {
		return nil, fmt.Errorf("parse feeds file %s: %w", path, err)
	}

	def := DefaultFeeds()
	if len(feeds.Queries) == 0 {
		feeds.Queries = def.Queries
	}
	if len(feeds.Community) == 0 {
		feeds.Community = def.Community
	}
	if len(feeds.Blogs) == 0 {
		feeds.Blogs = def.Blogs
	}
	return &feeds, nil
}
