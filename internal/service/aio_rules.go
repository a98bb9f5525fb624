package service

import (
	"fmt"
	"strings"

	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"
)

// AIO categories: answer-engine readiness. Same 20-point budget per category
// as the SEO table.
const (
	catStructure      = "structure"
	catAuthority      = "authority"
	catSchema         = "schema"
	catContentQuality = "content_quality"
	catQuotability    = "quotability"
)

// Item names the orchestrator reads back to derive boolean factors.
const (
	itemDirectAnswers  = "Direct Answers"
	itemFAQSection     = "FAQ Section"
	itemKeyTakeaways   = "Key Takeaways"
	itemAuthorByline   = "Author Byline"
	itemCitations      = "Citations"
	itemSchemaPresent  = "Structured Data"
	itemFAQSchema      = "FAQ Schema"
	itemSentenceLength = "Sentence Brevity"
)

var aioRules = []rule{
	// --- structure (20) ---
	{
		name: itemDirectAnswers, category: catStructure, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasDirectAnswerOpening(p), 5,
				models.StatusPass, models.StatusFail,
				"Content opens with a direct answer",
				"Content does not open with a direct answer",
				"Open with one short sentence that directly answers the main question")
		},
	},
	{
		name: itemFAQSection, category: catStructure, maxScore: 4,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasFAQSection(p), 4,
				models.StatusPass, models.StatusWarning,
				"FAQ section detected",
				"No FAQ section detected",
				"Add a FAQ section answering common questions about the topic")
		},
	},
	{
		name: "Lists", category: catStructure, maxScore: 4,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasListMarkup(p), 4,
				models.StatusPass, models.StatusWarning,
				"List markup found",
				"No list markup found",
				"Use bulleted or numbered lists for steps and enumerations")
		},
	},
	{
		name: "Tables", category: catStructure, maxScore: 3,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasTableMarkup(p), 3,
				models.StatusPass, models.StatusWarning,
				"Table markup found",
				"No table markup found",
				"Present comparable data in an HTML table")
		},
	},
	{
		name: itemKeyTakeaways, category: catStructure, maxScore: 4,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasKeyTakeaways(p), 4,
				models.StatusPass, models.StatusWarning,
				"Key takeaways or summary section detected",
				"No key takeaways or summary section detected",
				"Add a key takeaways block summarizing the main points")
		},
	},

	// --- authority (20) ---
	{
		name: itemAuthorByline, category: catAuthority, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasAuthorByline(p), 5,
				models.StatusPass, models.StatusWarning,
				"Author byline detected",
				"No author byline detected",
				"Credit a named author with a visible byline")
		},
	},
	{
		name: itemCitations, category: catAuthority, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasCitations(p), 5,
				models.StatusPass, models.StatusWarning,
				"Source citations detected",
				"No source citations detected",
				"Cite sources with phrases like \"according to\" or numbered references")
		},
	},
	{
		name: "Publish Date", category: catAuthority, maxScore: 3,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasPublishDate(p), 3,
				models.StatusPass, models.StatusWarning,
				"Publish date detected",
				"No publish date detected",
				"Show a visible publish date on the page")
		},
	},
	{
		name: "Last Updated", category: catAuthority, maxScore: 4,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasLastUpdated(p), 4,
				models.StatusPass, models.StatusWarning,
				"Last-updated date detected",
				"No last-updated date detected",
				"Show a \"last updated\" date so freshness is verifiable")
		},
	},
	{
		name: "Attributed Quotes", category: catAuthority, maxScore: 3,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasAttributedQuote(p), 3,
				models.StatusPass, models.StatusWarning,
				"Attributed quote detected",
				"No attributed quote detected",
				"Include a quote attributed to a named expert")
		},
	},

	// --- schema (20) ---
	{
		name: itemSchemaPresent, category: catSchema, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasStructuredData(p), 5,
				models.StatusPass, models.StatusFail,
				"Structured data present",
				"No structured data present",
				"Add JSON-LD structured data so answer engines can read the page")
		},
	},
	{
		name: itemFAQSchema, category: catSchema, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasSchemaOfType(p, "FAQPage"), 5,
				models.StatusPass, models.StatusWarning,
				"FAQPage schema present",
				"No FAQPage schema present",
				"Mark up question/answer pairs with FAQPage structured data")
		},
	},
	{
		name: "HowTo Schema", category: catSchema, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasSchemaOfType(p, "HowTo"), 5,
				models.StatusPass, models.StatusWarning,
				"HowTo schema present",
				"No HowTo schema present",
				"Mark up step-by-step instructions with HowTo structured data")
		},
	},
	{
		name: "Article Schema", category: catSchema, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasSchemaOfType(p, "Article", "NewsArticle", "BlogPosting"), 5,
				models.StatusPass, models.StatusWarning,
				"Article schema present",
				"No Article schema present",
				"Mark up the page with Article structured data including author and dates")
		},
	},

	// --- content quality (20) ---
	{
		name: "Definitions", category: catContentQuality, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasDefinitionPattern(p), 5,
				models.StatusPass, models.StatusWarning,
				"Definitional sentences detected",
				"No definitional sentences detected",
				"Define key terms with \"X is ...\" or \"X refers to ...\" sentences")
		},
	},
	{
		name: "Statistics", category: catContentQuality, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasStatistics(p), 5,
				models.StatusPass, models.StatusWarning,
				"Statistics or concrete figures detected",
				"No statistics or concrete figures detected",
				"Back claims with concrete numbers, percentages or amounts")
		},
	},
	{
		name: "Comparisons", category: catContentQuality, maxScore: 4,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasComparison(p), 4,
				models.StatusPass, models.StatusWarning,
				"Comparison phrasing detected",
				"No comparison phrasing detected",
				"Compare alternatives explicitly (\"X vs Y\", \"compared to\")")
		},
	},
	{
		name: "Original Research", category: catContentQuality, maxScore: 6,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasResearchClaim(p), 6,
				models.StatusPass, models.StatusWarning,
				"First-person research claims detected",
				"No first-person research claims detected",
				"Share first-hand findings (\"we tested\", \"our data shows\")")
		},
	},

	// --- quotability (20) ---
	{
		name: "Quotable Sentences", category: catQuotability, maxScore: 6,
		detect: func(p *models.PageInput) ruleResult {
			n := quotableSentenceCount(p.PlainText)
			metric := floatPtr(float64(n))
			switch {
			case n >= 10:
				return ruleResult{score: 6, status: models.StatusPass,
					reason: fmt.Sprintf("%d self-contained quotable sentences", n), metric: metric}
			case n >= 5:
				return ruleResult{score: 4, status: models.StatusWarning,
					reason: fmt.Sprintf("%d self-contained quotable sentences", n),
					fix:    "Write more standalone sentences of 15-60 words that hold up out of context", metric: metric}
			case n >= 2:
				return ruleResult{score: 2, status: models.StatusWarning,
					reason: fmt.Sprintf("Only %d self-contained quotable sentences", n),
					fix:    "Write more standalone sentences of 15-60 words that hold up out of context", metric: metric}
			case n == 1:
				return ruleResult{score: 1, status: models.StatusFail,
					reason: "Only one self-contained quotable sentence",
					fix:    "Write more standalone sentences of 15-60 words that hold up out of context", metric: metric}
			default:
				return ruleResult{score: 0, status: models.StatusFail,
					reason: "No self-contained quotable sentences",
					fix:    "Write more standalone sentences of 15-60 words that hold up out of context", metric: metric}
			}
		},
	},
	{
		name: itemSentenceLength, category: catQuotability, maxScore: 6,
		detect: func(p *models.PageInput) ruleResult {
			avg := avgSentenceLength(p.PlainText)
			metric := floatPtr(avg)
			switch {
			case avg == 0:
				return ruleResult{score: 0, status: models.StatusFail,
					reason: "No sentences to measure",
					fix:    "Add textual content in complete sentences", metric: metric}
			case avg <= 15:
				return ruleResult{score: 6, status: models.StatusPass,
					reason: fmt.Sprintf("Average sentence length %.1f words", avg), metric: metric}
			case avg <= 20:
				return ruleResult{score: 5, status: models.StatusPass,
					reason: fmt.Sprintf("Average sentence length %.1f words", avg), metric: metric}
			case avg <= 25:
				return ruleResult{score: 3, status: models.StatusWarning,
					reason: fmt.Sprintf("Average sentence length %.1f words", avg),
					fix:    "Shorten sentences toward a 15-20 word average", metric: metric}
			case avg <= 35:
				return ruleResult{score: 1, status: models.StatusWarning,
					reason: fmt.Sprintf("Average sentence length %.1f words", avg),
					fix:    "Shorten sentences toward a 15-20 word average", metric: metric}
			default:
				return ruleResult{score: 0, status: models.StatusFail,
					reason: fmt.Sprintf("Average sentence length %.1f words", avg),
					fix:    "Shorten sentences toward a 15-20 word average", metric: metric}
			}
		},
	},
	{
		name: "Opening Paragraph", category: catQuotability, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			para := firstParagraph(p.PlainText)
			words := len(strings.Fields(para))
			score := 0
			if words >= 20 && words <= 120 {
				score += 3
			}
			if para != "" && reDefinition.MatchString(para) {
				score += 2
			}
			switch {
			case score >= 5:
				return ruleResult{score: score, status: models.StatusPass,
					reason: "Opening paragraph is concise and definitional"}
			case score > 0:
				return ruleResult{score: score, status: models.StatusWarning,
					reason: "Opening paragraph could answer the topic more directly",
					fix:    "Rework the first paragraph into a 20-120 word direct answer"}
			default:
				return ruleResult{score: 0, status: models.StatusFail,
					reason: "Opening paragraph is missing or unfocused",
					fix:    "Rework the first paragraph into a 20-120 word direct answer"}
			}
		},
	},
	{
		name: "Emphasis Markup", category: catQuotability, maxScore: 3,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasEmphasisMarkup(p), 3,
				models.StatusPass, models.StatusWarning,
				"Emphasis markup found",
				"No emphasis markup found",
				"Bold the key phrases an answer engine should surface")
		},
	},
}

// EvaluateAIO scores a page against the AIO rule table from raw markup and
// extracted text. Pattern matching only, no semantic parsing.
func EvaluateAIO(p *models.PageInput) models.AIOBreakdown {
	return models.AIOBreakdown{
		Structure:      evaluateCategory(aioRules, catStructure, p),
		Authority:      evaluateCategory(aioRules, catAuthority, p),
		Schema:         evaluateCategory(aioRules, catSchema, p),
		ContentQuality: evaluateCategory(aioRules, catContentQuality, p),
		Quotability:    evaluateCategory(aioRules, catQuotability, p),
	}
}
