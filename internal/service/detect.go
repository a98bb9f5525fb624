package service

import (
	"regexp"
	"strings"

	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"
)

// Detection is pattern matching over raw markup and extracted text, never a
// structural parse or a semantic model. Each predicate is independent so a
// heuristic can be swapped for a real parser later without touching the
// scoring tables.

var (
	reByline        = regexp.MustCompile(`(?i)written by|posted by|author:|rel=["']author|class=["'][^"']*(author|byline)`)
	reByName        = regexp.MustCompile(`\b[Bb]y [A-Z][a-zA-Z'-]+ [A-Z][a-zA-Z'-]+`)
	reCitation      = regexp.MustCompile(`(?i)according to|source:|sources:|\[\d+\]|research (by|from|at)|study (by|from|published)`)
	rePublishDate   = regexp.MustCompile(`(?i)published|datetime=|posted on|<time\b`)
	reLastUpdated   = regexp.MustCompile(`(?i)last updated|updated on|last modified|date modified`)
	reQuoteAttrib   = regexp.MustCompile(`(?i)["\x{201C}][^"\x{201D}]+["\x{201D}],?\s+(said|says|according to)`)
	reDefinition    = regexp.MustCompile(`(?i)\b(is|are) (a|an|the)\b|refers to|is defined as|\bmeans\b`)
	reStatistic     = regexp.MustCompile(`\d+(?:\.\d+)?\s?(%|percent)|\b\d+(?:\.\d+)?\s?(million|billion|thousand)\b|[$€£]\s?\d`)
	reComparison    = regexp.MustCompile(`(?i)\bvs\.?\s|\bversus\b|compared (to|with)|difference between`)
	reResearchClaim = regexp.MustCompile(`(?i)\b(we|our team) (found|analyzed|tested|surveyed|measured|discovered)|our (research|study|analysis|data|survey|testing)`)
	reHTMLLang      = regexp.MustCompile(`(?i)<html[^>]*\slang=`)
	reLDJSON        = regexp.MustCompile(`(?is)<script[^>]*type=["']application/ld\+json["'][^>]*>(.*?)</script>`)
	reSchemaType    = regexp.MustCompile(`"@type"\s*:\s*"([^"]+)"`)
	reSentenceEnd   = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
)

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func lowerHTML(p *models.PageInput) string { return strings.ToLower(p.RawHTML) }

// --- SEO predicates ---

func hasHTTPS(p *models.PageInput) bool {
	return strings.HasPrefix(strings.ToLower(p.URL), "https://")
}

func hasStructuredData(p *models.PageInput) bool {
	return len(p.StructuredData) > 0 || reLDJSON.MatchString(p.RawHTML)
}

func hasCanonicalTag(p *models.PageInput) bool {
	return containsAny(lowerHTML(p), `rel="canonical"`, `rel='canonical'`)
}

func hasOpenGraphTags(p *models.PageInput) bool {
	return containsAny(lowerHTML(p), `property="og:`, `property='og:`)
}

func hasViewportTag(p *models.PageInput) bool {
	return containsAny(lowerHTML(p), `name="viewport"`, `name='viewport'`)
}

func hasLangAttribute(p *models.PageInput) bool {
	return reHTMLLang.MatchString(p.RawHTML)
}

func hasARIAMarkup(p *models.PageInput) bool {
	return containsAny(lowerHTML(p), `aria-`, `role="`, `role='`)
}

// titleKeywordInH1 reports whether any significant title word (longer than
// three characters) reappears in an H1.
func titleKeywordInH1(p *models.PageInput) bool {
	if p.Title == "" || len(p.H1s) == 0 {
		return false
	}
	h1 := strings.ToLower(strings.Join(p.H1s, " "))
	for _, w := range strings.Fields(strings.ToLower(p.Title)) {
		w = strings.Trim(w, `.,:;!?"'()|-`)
		if len(w) > 3 && strings.Contains(h1, w) {
			return true
		}
	}
	return false
}

// --- AIO predicates ---

func hasFAQSection(p *models.PageInput) bool {
	body := lowerHTML(p) + " " + strings.ToLower(p.PlainText)
	return containsAny(body, "faq", "frequently asked question", "common questions", "people also ask")
}

func hasListMarkup(p *models.PageInput) bool {
	return containsAny(lowerHTML(p), "<ul", "<ol", "<li")
}

func hasTableMarkup(p *models.PageInput) bool {
	return strings.Contains(lowerHTML(p), "<table")
}

func hasKeyTakeaways(p *models.PageInput) bool {
	body := lowerHTML(p) + " " + strings.ToLower(p.PlainText)
	return containsAny(body, "key takeaway", "tl;dr", "tldr", "in summary", "to summarize", "quick answer")
}

func hasAuthorByline(p *models.PageInput) bool {
	return reByline.MatchString(p.RawHTML) || reByName.MatchString(p.RawHTML) || reByName.MatchString(p.PlainText)
}

func hasCitations(p *models.PageInput) bool {
	return reCitation.MatchString(p.PlainText) || reCitation.MatchString(p.RawHTML)
}

func hasPublishDate(p *models.PageInput) bool {
	return rePublishDate.MatchString(p.RawHTML) || rePublishDate.MatchString(p.PlainText)
}

func hasLastUpdated(p *models.PageInput) bool {
	return reLastUpdated.MatchString(p.RawHTML) || reLastUpdated.MatchString(p.PlainText)
}

func hasAttributedQuote(p *models.PageInput) bool {
	return strings.Contains(lowerHTML(p), "<blockquote") || reQuoteAttrib.MatchString(p.PlainText)
}

func hasDefinitionPattern(p *models.PageInput) bool {
	return reDefinition.MatchString(p.PlainText)
}

func hasStatistics(p *models.PageInput) bool {
	return reStatistic.MatchString(p.PlainText)
}

func hasComparison(p *models.PageInput) bool {
	return reComparison.MatchString(p.PlainText)
}

func hasResearchClaim(p *models.PageInput) bool {
	return reResearchClaim.MatchString(p.PlainText)
}

func hasEmphasisMarkup(p *models.PageInput) bool {
	return containsAny(lowerHTML(p), "<strong", "<b>", "<b ", "**")
}

// hasDirectAnswerOpening reports whether the page opens with a short,
// declarative answer sentence.
func hasDirectAnswerOpening(p *models.PageInput) bool {
	sentences := splitSentences(p.PlainText)
	if len(sentences) == 0 {
		return false
	}
	first := sentences[0]
	words := len(strings.Fields(first))
	if words == 0 || words > 40 {
		return false
	}
	lower := strings.ToLower(first)
	if strings.HasPrefix(lower, "yes,") || strings.HasPrefix(lower, "no,") {
		return true
	}
	return reDefinition.MatchString(first)
}

// schemaBlocks gathers every structured-data payload: the crawler-extracted
// blocks plus any inline JSON-LD scripts still sitting in the raw markup.
func schemaBlocks(p *models.PageInput) []string {
	blocks := append([]string(nil), p.StructuredData...)
	for _, m := range reLDJSON.FindAllStringSubmatch(p.RawHTML, -1) {
		blocks = append(blocks, m[1])
	}
	return blocks
}

func hasSchemaOfType(p *models.PageInput, types ...string) bool {
	for _, block := range schemaBlocks(p) {
		lower := strings.ToLower(block)
		for _, t := range types {
			if strings.Contains(lower, strings.ToLower(t)) {
				return true
			}
		}
	}
	return false
}

// SchemaTypes lists the distinct "@type" values found in structured data,
// in first-seen order.
func SchemaTypes(p *models.PageInput) []string {
	var types []string
	seen := map[string]bool{}
	for _, block := range schemaBlocks(p) {
		for _, m := range reSchemaType.FindAllStringSubmatch(block, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				types = append(types, m[1])
			}
		}
	}
	return types
}

// --- text utilities ---

// splitSentences breaks extracted text on terminal punctuation. Fragments
// without at least one word are dropped.
func splitSentences(text string) []string {
	parts := reSentenceEnd.Split(text, -1)
	var sentences []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" && len(strings.Fields(part)) > 0 {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// quotableSentenceCount counts self-contained sentences of 15-60 words, the
// length band answer engines lift verbatim.
func quotableSentenceCount(text string) int {
	count := 0
	for _, s := range splitSentences(text) {
		if n := len(strings.Fields(s)); n >= 15 && n <= 60 {
			count++
		}
	}
	return count
}

// avgSentenceLength returns mean words per sentence, 0 for empty text.
func avgSentenceLength(text string) float64 {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return 0
	}
	words := 0
	for _, s := range sentences {
		words += len(strings.Fields(s))
	}
	return float64(words) / float64(len(sentences))
}

// firstParagraph returns the opening paragraph of the extracted text, falling
// back to the first two sentences when no blank line separates paragraphs.
func firstParagraph(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if idx := strings.Index(text, "\n\n"); idx > 0 {
		return strings.TrimSpace(text[:idx])
	}
	sentences := splitSentences(text)
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}
	return strings.Join(sentences, ". ")
}
