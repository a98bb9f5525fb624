package models

// SEOCategoryScores holds the 0-20 rollup per SEO category.
type SEOCategoryScores struct {
	Technical     int `json:"technical"`
	Content       int `json:"content"`
	Meta          int `json:"meta"`
	Performance   int `json:"performance"`
	Accessibility int `json:"accessibility"`
}

// AIOCategoryScores holds the 0-20 rollup per AIO category.
type AIOCategoryScores struct {
	Structure      int `json:"structure"`
	Authority      int `json:"authority"`
	Schema         int `json:"schema"`
	ContentQuality int `json:"content_quality"`
	Quotability    int `json:"quotability"`
}

// IssueCounts tallies SEO items by status.
type IssueCounts struct {
	Critical int `json:"critical"`
	Warnings int `json:"warnings"`
	Passed   int `json:"passed"`
}

// AIOFactors are the boolean answer-engine readiness signals derived from
// named AIO items' pass/fail status.
type AIOFactors struct {
	HasDirectAnswers bool `json:"has_direct_answers"`
	HasFAQSection    bool `json:"has_faq_section"`
	HasSchema        bool `json:"has_schema"`
	HasAuthorInfo    bool `json:"has_author_info"`
	HasCitations     bool `json:"has_citations"`
	HasKeyTakeaways  bool `json:"has_key_takeaways"`
}

// PageInfo is a compact page summary for dashboards.
type PageInfo struct {
	WordCount          int      `json:"word_count"`
	HasH1              bool     `json:"has_h1"`
	HasMetaDescription bool     `json:"has_meta_description"`
	SchemaTypes        []string `json:"schema_types"`
}

// AnalysisResult is the complete scoring output for one page.
type AnalysisResult struct {
	URL               string            `json:"url"`
	SEOScore          int               `json:"seo_score"`
	AIOScore          int               `json:"aio_score"`
	CombinedScore     int               `json:"combined_score"`
	SEOCategories     SEOCategoryScores `json:"seo_categories"`
	AIOCategories     AIOCategoryScores `json:"aio_categories"`
	SEOBreakdown      SEOBreakdown      `json:"seo_breakdown"`
	AIOBreakdown      AIOBreakdown      `json:"aio_breakdown"`
	SEOIssues         IssueCounts       `json:"seo_issues"`
	AIOFactors        AIOFactors        `json:"aio_factors"`
	AvgSentenceLength float64           `json:"avg_sentence_length"`
	PageInfo          PageInfo          `json:"page_info"`
}

// SiteAnalysisResult aggregates per-page analyses across a site. It is
// derived on demand and never stored by the engine.
type SiteAnalysisResult struct {
	PagesAnalyzed    int               `json:"pages_analyzed"`
	AvgSEOScore      int               `json:"avg_seo_score"`
	AvgAIOScore      int               `json:"avg_aio_score"`
	AvgCombinedScore int               `json:"avg_combined_score"`
	Issues           IssueCounts       `json:"issues"`
	TopSEOFixes      []string          `json:"top_seo_fixes"`
	TopAIOFixes      []string          `json:"top_aio_fixes"`
	Pages            []*AnalysisResult `json:"pages"`
}
