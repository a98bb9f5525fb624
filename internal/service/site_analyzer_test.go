package service

import (
	"testing"

	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSiteZeroPages(t *testing.T) {
	analyzer := newTestAnalyzer()

	result := analyzer.AnalyzeSite(nil)

	require.NotNil(t, result)
	assert.Equal(t, 0, result.PagesAnalyzed)
	assert.Equal(t, 0, result.AvgSEOScore)
	assert.Equal(t, 0, result.AvgAIOScore)
	assert.Equal(t, 0, result.AvgCombinedScore)
	assert.Empty(t, result.TopSEOFixes)
	assert.NotNil(t, result.TopSEOFixes)
	assert.NotNil(t, result.TopAIOFixes)
}

func TestAnalyzeSitePreservesPageOrder(t *testing.T) {
	analyzer := newTestAnalyzer()

	pages := []*models.PageInput{
		{URL: "https://example.com/a"},
		{URL: "https://example.com/b"},
		{URL: "https://example.com/c"},
	}

	result := analyzer.AnalyzeSite(pages)

	require.Len(t, result.Pages, 3)
	assert.Equal(t, "https://example.com/a", result.Pages[0].URL)
	assert.Equal(t, "https://example.com/b", result.Pages[1].URL)
	assert.Equal(t, "https://example.com/c", result.Pages[2].URL)
}

func TestAggregateAveragesScores(t *testing.T) {
	results := []*models.AnalysisResult{
		{URL: "a", SEOScore: 40, AIOScore: 40, CombinedScore: 40},
		{URL: "b", SEOScore: 60, AIOScore: 60, CombinedScore: 60},
		{URL: "c", SEOScore: 80, AIOScore: 80, CombinedScore: 80},
	}

	site := aggregate(results)

	assert.Equal(t, 3, site.PagesAnalyzed)
	assert.Equal(t, 60, site.AvgSEOScore)
	assert.Equal(t, 60, site.AvgAIOScore)
	assert.Equal(t, 60, site.AvgCombinedScore)
}

func TestAggregateRoundsAverages(t *testing.T) {
	results := []*models.AnalysisResult{
		{URL: "a", SEOScore: 50, CombinedScore: 50},
		{URL: "b", SEOScore: 51, CombinedScore: 51},
	}

	site := aggregate(results)

	// 50.5 rounds up.
	assert.Equal(t, 51, site.AvgSEOScore)
}

func TestAggregateSumsIssues(t *testing.T) {
	results := []*models.AnalysisResult{
		{URL: "a", SEOIssues: models.IssueCounts{Critical: 2, Warnings: 1, Passed: 5}},
		{URL: "b", SEOIssues: models.IssueCounts{Critical: 1, Warnings: 4, Passed: 3}},
	}

	site := aggregate(results)

	assert.Equal(t, models.IssueCounts{Critical: 3, Warnings: 5, Passed: 8}, site.Issues)
}

func TestAggregateDeduplicatesFixes(t *testing.T) {
	shared := models.ScoreItem{
		Name: "HTTPS", Score: 0, MaxScore: 5, Status: models.StatusFail,
		HowToFix: "Install an SSL certificate",
	}
	unique := models.ScoreItem{
		Name: "Title Tag", Score: 0, MaxScore: 8, Status: models.StatusFail,
		HowToFix: "Add a descriptive title tag",
	}

	results := []*models.AnalysisResult{
		{URL: "a", SEOBreakdown: models.SEOBreakdown{Technical: []models.ScoreItem{shared}}},
		{URL: "b", SEOBreakdown: models.SEOBreakdown{Technical: []models.ScoreItem{shared}, Meta: []models.ScoreItem{unique}}},
	}

	site := aggregate(results)

	// Every page losing HTTPS points produces the fix once, in the order
	// the pages first surfaced it.
	assert.Equal(t, []string{"Install an SSL certificate", "Add a descriptive title tag"}, site.TopSEOFixes)
}

func TestAggregateCapsPooledFixes(t *testing.T) {
	var results []*models.AnalysisResult
	for i := 0; i < 4; i++ {
		results = append(results, &models.AnalysisResult{
			URL: "page",
			SEOBreakdown: models.SEOBreakdown{Technical: []models.ScoreItem{
				{Name: "a", Score: 0, MaxScore: 5, Status: models.StatusFail, HowToFix: "fix " + string(rune('a'+i*2))},
				{Name: "b", Score: 0, MaxScore: 3, Status: models.StatusFail, HowToFix: "fix " + string(rune('b'+i*2))},
			}},
		})
	}

	site := aggregate(results)

	assert.Len(t, site.TopSEOFixes, 5)
}
