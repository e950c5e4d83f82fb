package classify

import "strings"

// Category is the closed set of topical tags an item can carry.
type Category string

const (
	CategoryResearch Category = "research"
	CategoryBusiness Category = "business"
	CategoryTools    Category = "tools"
	CategoryGeneral  Category = "general"
)

type categoryGroup struct {
	category Category
	keywords []string
}

// KeywordCategorizer assigns one of the fixed categories by walking its
// groups in declaration order and returning the first hit. The order
// (research before business before tools) is a contract: items matching
// several groups must classify the same way across releases.
type KeywordCategorizer struct {
	groups []categoryGroup
}

func NewCategorizer() *KeywordCategorizer {
	return &KeywordCategorizer{
		groups: []categoryGroup{
			{
				category: CategoryResearch,
				keywords: []string{
					"research", "study", "paper", "algorithm", "model",
					"technical", "scientists", "researchers", "breakthrough", "conference",
				},
			},
			{
				category: CategoryBusiness,
				keywords: []string{
					"startup", "funding", "million", "billion", "acquire",
					"market", "investment", "company", "business", "partnership",
					"revenue", "launch", "announce",
				},
			},
			{
				category: CategoryTools,
				keywords: []string{
					"tool", "software", "platform", "product", "app",
					"application", "feature", "release", "update", "version",
					"available", "users", "interface",
				},
			},
		},
	}
}

// Categorize is a cheap heuristic, not ground truth. Empty input lands in
// general.
func (c *KeywordCategorizer) Categorize(title, description string) Category {
	text := strings.ToLower(title + " " + description)
	if strings.TrimSpace(text) == "" {
		return CategoryGeneral
	}
	for _, g := range c.groups {
		for _, k := range g.keywords {
			if strings.Contains(text, k) {
				return g.category
			}
		}
	}
	return CategoryGeneral
}
