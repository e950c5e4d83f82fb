package classify

import "testing"

func TestRelevantMatchesAITerms(t *testing.T) {
	f := NewAIFilter()

	if !f.Relevant("OpenAI releases new model", "") {
		t.Fatalf("expected OpenAI headline to be relevant")
	}
	if !f.Relevant("Weekly roundup", "the latest in machine learning and more") {
		t.Fatalf("expected summary match to count")
	}
	if f.Relevant("Local bakery opens downtown", "") {
		t.Fatalf("bakery news should not be relevant")
	}
}

func TestRelevantIsCaseInsensitive(t *testing.T) {
	f := NewAIFilter()
	if !f.Relevant("STABLE DIFFUSION updates", "") {
		t.Fatalf("matching should ignore case")
	}
}

func TestCustomKeywordList(t *testing.T) {
	f := NewKeywordFilter([]string{"quantum"})
	if !f.Relevant("Quantum leap", "") {
		t.Fatalf("custom keyword should match")
	}
	if f.Relevant("OpenAI releases new model", "") {
		t.Fatalf("custom filter should not use the default list")
	}
}

func TestCategorize(t *testing.T) {
	c := NewCategorizer()

	cases := []struct {
		title string
		desc  string
		want  Category
	}{
		{"Researchers publish new study on neural nets", "", CategoryResearch},
		{"Startup raises $5M in funding", "", CategoryBusiness},
		{"New app update released", "", CategoryTools},
		{"", "", CategoryGeneral},
		{"Quiet weekend in the city", "", CategoryGeneral},
	}

	for _, tc := range cases {
		if got := c.Categorize(tc.title, tc.desc); got != tc.want {
			t.Fatalf("Categorize(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

// Items matching several groups must classify by group order: research wins
// over business, business over tools.
func TestCategorizePrecedence(t *testing.T) {
	c := NewCategorizer()

	if got := c.Categorize("New study examines startup funding", ""); got != CategoryResearch {
		t.Fatalf("research should beat business, got %q", got)
	}
	if got := c.Categorize("Startup launches new software platform", ""); got != CategoryBusiness {
		t.Fatalf("business should beat tools, got %q", got)
	}
}
