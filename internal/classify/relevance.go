package classify

import "strings"

// aiKeywords is the default relevance list. Substring match on purpose:
// vendor/product names show up inside longer tokens ("ChatGPT-4o", "GPT4All").
var aiKeywords = []string{
	"artificial intelligence",
	"machine learning",
	"deep learning",
	"neural network",
	"large language model",
	"llm",
	"generative ai",
	"gpt",
	"chatgpt",
	"claude",
	"anthropic",
	"gemini",
	"openai",
	"deepmind",
	"midjourney",
	"stable diffusion",
	"hugging face",
	"copilot",
	"transformer model",
	"computer vision",
}

// KeywordFilter decides whether an item is AI-related by scanning a keyword
// list over the lowercased title + summary. Case-insensitive substring match,
// no stemming.
type KeywordFilter struct {
	keywords []string
}

// NewAIFilter returns a filter loaded with the default AI keyword list.
func NewAIFilter() *KeywordFilter {
	return &KeywordFilter{keywords: aiKeywords}
}

// NewKeywordFilter builds a filter with a custom list, mainly for tests and
// future swaps of the relevance strategy.
func NewKeywordFilter(keywords []string) *KeywordFilter {
	return &KeywordFilter{keywords: keywords}
}

func (f *KeywordFilter) Relevant(title, summary string) bool {
	text := strings.ToLower(title + " " + summary)
	for _, k := range f.keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
