// Package textutil turns feed-flavored HTML/Markdown fragments into plain,
// single-line text suitable for titles and summaries.
package textutil

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	reComment      = regexp.MustCompile(`(?s)<!--.*?-->`)
	reTag          = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
	reMarkdownLink = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	reBareURL      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	reAttrLeftover = regexp.MustCompile(`[a-zA-Z-]+="[^"]*"`)
)

// Fixed set of entities feeds keep double-encoding; anything parsed as real
// HTML is already decoded by the parser, this catches the leftovers.
var entityReplacer = strings.NewReplacer(
	"&quot;", `"`,
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&nbsp;", " ",
	"&#39;", "'",
	"&#8216;", "'",
	"&#8217;", "'",
	"&#8220;", `"`,
	"&#8221;", `"`,
	"&lsquo;", "'",
	"&rsquo;", "'",
	"&ldquo;", `"`,
	"&rdquo;", `"`,
)

// Literal junk strings some feeds embed around the actual copy
// (Reddit footers, "read more" stubs and similar).
var junkTokens = []string{
	"[link]",
	"[comments]",
	"submitted by",
	"Continue reading",
	"Read more",
}

// ExtractCleanText converts an arbitrary feed string into readable plain
// text: HTML comments and div/table boilerplate blocks are dropped with
// their content, anchors keep only their text, remaining tags are stripped,
// Markdown links collapse to their label, bare URLs and stray attribute
// fragments are removed, a fixed entity set is decoded and whitespace is
// collapsed. Input without a <...> pair is treated as already-plain text.
// Empty input yields an empty string.
func ExtractCleanText(raw string) string {
	s := raw
	if !strings.Contains(s, "<") || !strings.Contains(s, ">") {
		return collapseWhitespace(s)
	}

	s = reComment.ReplaceAllString(s, " ")

	// Real HTML goes through a parser: entities decode, anchors keep their
	// text, comments vanish. Regex stripping is only the fallback for
	// fragments the parser rejects.
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
		doc.Find("div, table").Remove()
		s = doc.Text()
	} else {
		s = reTag.ReplaceAllString(s, " ")
	}

	s = reMarkdownLink.ReplaceAllString(s, "$1")
	s = reBareURL.ReplaceAllString(s, " ")
	s = reAttrLeftover.ReplaceAllString(s, " ")
	s = entityReplacer.Replace(s)
	for _, junk := range junkTokens {
		s = strings.ReplaceAll(s, junk, " ")
	}

	// Entity decoding can resurrect tag-looking text ("&lt;script&gt;");
	// nothing tag-shaped may survive normalization.
	s = reTag.ReplaceAllString(s, " ")

	return collapseWhitespace(s)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// sentenceWindow is how far back from the limit a period still counts as a
// sentence boundary worth cutting at.
const sentenceWindow = 30

// CreateSummary bounds text to max runes. Within the bound the text is
// returned unchanged; otherwise it is cut at the last sentence-ending period
// near the limit, or at the last space, or hard at max, with an ellipsis
// appended.
func CreateSummary(text string, max int) string {
	rs := []rune(text)
	if len(rs) <= max {
		return text
	}

	cutAt := -1
	for i := max - 1; i >= 0 && i >= max-sentenceWindow; i-- {
		if rs[i] == '.' {
			cutAt = i + 1
			break
		}
	}
	if cutAt == -1 {
		for i := max - 1; i >= 0; i-- {
			if rs[i] == ' ' {
				cutAt = i
				break
			}
		}
	}
	if cutAt <= 0 {
		cutAt = max
	}
	return strings.TrimSpace(string(rs[:cutAt])) + "…"
}
