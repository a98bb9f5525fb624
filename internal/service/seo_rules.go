package service

import (
	"fmt"
	"math"

	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"
)

// SEO categories. Each carries a 20-point budget; the five together make the
// 0-100 SEO score.
const (
	catTechnical     = "technical"
	catContent       = "content"
	catMeta          = "meta"
	catPerformance   = "performance"
	catAccessibility = "accessibility"
)

var seoRules = []rule{
	// --- technical (20) ---
	{
		name: "HTTPS", category: catTechnical, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasHTTPS(p), 5,
				models.StatusPass, models.StatusFail,
				"Page is served over HTTPS",
				"Page is not served over HTTPS",
				"Install an SSL certificate and redirect all HTTP traffic to HTTPS")
		},
	},
	{
		name: "Structured Data", category: catTechnical, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasStructuredData(p), 5,
				models.StatusPass, models.StatusWarning,
				"Structured data markup found",
				"No structured data markup found",
				"Add JSON-LD structured data describing the page content")
		},
	},
	{
		name: "Internal Links", category: catTechnical, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			n := p.InternalLinkCount()
			switch {
			case n >= 3:
				return ruleResult{score: 5, status: models.StatusPass,
					reason: fmt.Sprintf("Found %d internal links", n)}
			case n > 0:
				return ruleResult{score: n, status: models.StatusWarning,
					reason: fmt.Sprintf("Only %d internal link(s) found", n),
					fix:    "Add at least 3 internal links to related pages"}
			default:
				return ruleResult{score: 0, status: models.StatusFail,
					reason: "No internal links found",
					fix:    "Add at least 3 internal links to related pages"}
			}
		},
	},
	{
		name: "Canonical Tag", category: catTechnical, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			// Absence is a warning, not a failure: search engines pick
			// their own canonical when the tag is missing.
			return binary(hasCanonicalTag(p), 5,
				models.StatusPass, models.StatusWarning,
				"Canonical tag present",
				"No canonical tag found",
				"Add a rel=\"canonical\" link tag pointing at the preferred URL")
		},
	},

	// --- content (20) ---
	{
		name: "H1 Heading", category: catContent, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			switch n := len(p.H1s); {
			case n == 1:
				return ruleResult{score: 5, status: models.StatusPass, reason: "Page has exactly one H1"}
			case n > 1:
				return ruleResult{score: 3, status: models.StatusWarning,
					reason: fmt.Sprintf("Page has %d H1 headings", n),
					fix:    "Keep a single H1 per page and demote the rest to H2"}
			default:
				return ruleResult{score: 0, status: models.StatusFail,
					reason: "Page has no H1 heading",
					fix:    "Add one H1 heading containing the primary topic"}
			}
		},
	},
	{
		name: "Subheadings", category: catContent, maxScore: 3,
		detect: func(p *models.PageInput) ruleResult {
			switch n := len(p.H2s); {
			case n >= 2:
				return ruleResult{score: 3, status: models.StatusPass,
					reason: fmt.Sprintf("Found %d H2 subheadings", n)}
			case n == 1:
				return ruleResult{score: 2, status: models.StatusWarning,
					reason: "Only one H2 subheading found",
					fix:    "Break the content into sections with at least 2 H2 subheadings"}
			default:
				return ruleResult{score: 0, status: models.StatusWarning,
					reason: "No H2 subheadings found",
					fix:    "Break the content into sections with at least 2 H2 subheadings"}
			}
		},
	},
	{
		name: "Content Length", category: catContent, maxScore: 7,
		detect: func(p *models.PageInput) ruleResult {
			wc := p.WordCount
			metric := floatPtr(float64(wc))
			switch {
			case wc >= 1500:
				return ruleResult{score: 7, status: models.StatusPass,
					reason: fmt.Sprintf("Comprehensive content: %d words", wc), metric: metric}
			case wc >= 800:
				return ruleResult{score: 5, status: models.StatusWarning,
					reason: fmt.Sprintf("Solid content length: %d words", wc),
					fix:    "Expand the content toward 1500+ words to cover the topic fully", metric: metric}
			case wc >= 300:
				return ruleResult{score: 3, status: models.StatusWarning,
					reason: fmt.Sprintf("Content is on the short side: %d words", wc),
					fix:    "Expand the content toward 1500+ words to cover the topic fully", metric: metric}
			case wc >= 100:
				return ruleResult{score: 1, status: models.StatusFail,
					reason: fmt.Sprintf("Thin content: %d words", wc),
					fix:    "Expand the content toward 1500+ words to cover the topic fully", metric: metric}
			default:
				return ruleResult{score: 0, status: models.StatusFail,
					reason: fmt.Sprintf("Almost no textual content: %d words", wc),
					fix:    "Write substantive content of at least 300 words", metric: metric}
			}
		},
	},
	{
		name: "Title Keyword in H1", category: catContent, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(titleKeywordInH1(p), 5,
				models.StatusPass, models.StatusWarning,
				"Title keywords reappear in the H1",
				"No overlap between title keywords and the H1",
				"Align the H1 with the main keyword of the title tag")
		},
	},

	// --- meta (20) ---
	{
		name: "Title Tag", category: catMeta, maxScore: 8,
		detect: func(p *models.PageInput) ruleResult {
			n := len(p.Title)
			metric := floatPtr(float64(n))
			switch {
			case n >= 50 && n <= 60:
				return ruleResult{score: 8, status: models.StatusPass,
					reason: fmt.Sprintf("Title length is optimal (%d characters)", n), metric: metric}
			case n >= 30 && n <= 70:
				return ruleResult{score: 6, status: models.StatusWarning,
					reason: fmt.Sprintf("Title length is acceptable (%d characters)", n),
					fix:    "Adjust the title tag to 50-60 characters", metric: metric}
			case n > 0:
				return ruleResult{score: 3, status: models.StatusWarning,
					reason: fmt.Sprintf("Title length is poor (%d characters)", n),
					fix:    "Adjust the title tag to 50-60 characters", metric: metric}
			default:
				return ruleResult{score: 0, status: models.StatusFail,
					reason: "Page has no title tag",
					fix:    "Add a descriptive title tag of 50-60 characters", metric: metric}
			}
		},
	},
	{
		name: "Meta Description", category: catMeta, maxScore: 8,
		detect: func(p *models.PageInput) ruleResult {
			n := len(p.MetaDescription)
			metric := floatPtr(float64(n))
			switch {
			case n >= 120 && n <= 160:
				return ruleResult{score: 8, status: models.StatusPass,
					reason: fmt.Sprintf("Meta description length is optimal (%d characters)", n), metric: metric}
			case n >= 70 && n <= 180:
				return ruleResult{score: 5, status: models.StatusWarning,
					reason: fmt.Sprintf("Meta description length is acceptable (%d characters)", n),
					fix:    "Adjust the meta description to 120-160 characters", metric: metric}
			case n > 0:
				return ruleResult{score: 2, status: models.StatusWarning,
					reason: fmt.Sprintf("Meta description length is poor (%d characters)", n),
					fix:    "Adjust the meta description to 120-160 characters", metric: metric}
			default:
				return ruleResult{score: 0, status: models.StatusFail,
					reason: "Page has no meta description",
					fix:    "Add a meta description of 120-160 characters summarizing the page", metric: metric}
			}
		},
	},
	{
		name: "Open Graph Tags", category: catMeta, maxScore: 4,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasOpenGraphTags(p), 4,
				models.StatusPass, models.StatusWarning,
				"Open Graph tags present",
				"No Open Graph tags found",
				"Add og:title, og:description and og:image meta tags")
		},
	},

	// --- performance (20) ---
	{
		name: "Load Time", category: catPerformance, maxScore: 10,
		detect: func(p *models.PageInput) ruleResult {
			ms := p.LoadTimeMs
			metric := floatPtr(float64(ms))
			// 0 means the crawler did not measure; score worst case.
			switch {
			case ms <= 0:
				return ruleResult{score: 0, status: models.StatusWarning,
					reason: "Load time was not measured",
					fix:    "Re-crawl the page with timing enabled", metric: metric}
			case ms <= 1000:
				return ruleResult{score: 10, status: models.StatusPass,
					reason: fmt.Sprintf("Fast load time: %dms", ms), metric: metric}
			case ms <= 2000:
				return ruleResult{score: 8, status: models.StatusWarning,
					reason: fmt.Sprintf("Decent load time: %dms", ms),
					fix:    "Optimize images and server response time to load under 1 second", metric: metric}
			case ms <= 3000:
				return ruleResult{score: 5, status: models.StatusWarning,
					reason: fmt.Sprintf("Slow load time: %dms", ms),
					fix:    "Optimize images and server response time to load under 1 second", metric: metric}
			case ms <= 5000:
				return ruleResult{score: 2, status: models.StatusFail,
					reason: fmt.Sprintf("Very slow load time: %dms", ms),
					fix:    "Optimize images and server response time to load under 1 second", metric: metric}
			default:
				return ruleResult{score: 0, status: models.StatusFail,
					reason: fmt.Sprintf("Critical load time: %dms", ms),
					fix:    "Optimize images and server response time to load under 1 second", metric: metric}
			}
		},
	},
	{
		name: "Page Size", category: catPerformance, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			kb := p.HTMLSize / 1024
			metric := floatPtr(float64(kb))
			switch {
			case p.HTMLSize <= 0:
				return ruleResult{score: 0, status: models.StatusWarning,
					reason: "Page size was not measured",
					fix:    "Re-crawl the page to capture document size", metric: metric}
			case kb <= 100:
				return ruleResult{score: 5, status: models.StatusPass,
					reason: fmt.Sprintf("Lean HTML document: %dKB", kb), metric: metric}
			case kb <= 200:
				return ruleResult{score: 3, status: models.StatusWarning,
					reason: fmt.Sprintf("HTML document is getting heavy: %dKB", kb),
					fix:    "Minify HTML and trim inline scripts/styles to keep documents under 100KB", metric: metric}
			default:
				return ruleResult{score: 1, status: models.StatusFail,
					reason: fmt.Sprintf("HTML document is too heavy: %dKB", kb),
					fix:    "Minify HTML and trim inline scripts/styles to keep documents under 100KB", metric: metric}
			}
		},
	},
	{
		name: "Mobile Viewport", category: catPerformance, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasViewportTag(p), 5,
				models.StatusPass, models.StatusFail,
				"Mobile viewport tag present",
				"No mobile viewport tag found",
				"Add <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		},
	},

	// --- accessibility (20) ---
	{
		name: "Image Alt Text", category: catAccessibility, maxScore: 10,
		detect: func(p *models.PageInput) ruleResult {
			total := len(p.Images)
			if total == 0 {
				// Nothing to describe: full credit.
				return ruleResult{score: 10, status: models.StatusPass,
					reason: "No images on the page", metric: floatPtr(1)}
			}
			withAlt := 0
			for _, img := range p.Images {
				if img.Alt != "" {
					withAlt++
				}
			}
			coverage := float64(withAlt) / float64(total)
			score := int(math.Round(coverage * 10))
			metric := floatPtr(coverage)
			switch {
			case withAlt == total:
				return ruleResult{score: score, status: models.StatusPass,
					reason: fmt.Sprintf("All %d images have alt text", total), metric: metric}
			case withAlt > 0:
				return ruleResult{score: score, status: models.StatusWarning,
					reason: fmt.Sprintf("%d of %d images have alt text", withAlt, total),
					fix:    "Add descriptive alt text to every content image", metric: metric}
			default:
				return ruleResult{score: 0, status: models.StatusFail,
					reason: fmt.Sprintf("None of the %d images have alt text", total),
					fix:    "Add descriptive alt text to every content image", metric: metric}
			}
		},
	},
	{
		name: "Language Attribute", category: catAccessibility, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasLangAttribute(p), 5,
				models.StatusPass, models.StatusWarning,
				"The html element declares a lang attribute",
				"The html element has no lang attribute",
				"Add a lang attribute to the <html> element")
		},
	},
	{
		name: "ARIA Attributes", category: catAccessibility, maxScore: 5,
		detect: func(p *models.PageInput) ruleResult {
			return binary(hasARIAMarkup(p), 5,
				models.StatusPass, models.StatusWarning,
				"ARIA attributes or roles found",
				"No ARIA attributes or roles found",
				"Add ARIA roles and labels to interactive elements")
		},
	},
}

// EvaluateSEO scores a page against the SEO rule table. It never fails:
// missing input fields score as worst case.
func EvaluateSEO(p *models.PageInput) models.SEOBreakdown {
	return models.SEOBreakdown{
		Technical:     evaluateCategory(seoRules, catTechnical, p),
		Content:       evaluateCategory(seoRules, catContent, p),
		Meta:          evaluateCategory(seoRules, catMeta, p),
		Performance:   evaluateCategory(seoRules, catPerformance, p),
		Accessibility: evaluateCategory(seoRules, catAccessibility, p),
	}
}
