package service

import (
	"math"
	"runtime"

	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"

	"golang.org/x/sync/errgroup"
)

// AnalyzeSite scores every page and reduces the results into a site-level
// aggregate. Pages are analyzed in parallel but results land in input order,
// so averaging and fix pooling stay deterministic. Zero pages yields a zero
// aggregate, not an error.
func (a *Analyzer) AnalyzeSite(pages []*models.PageInput) *models.SiteAnalysisResult {
	results := make([]*models.AnalysisResult, len(pages))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, p := range pages {
		i, p := i, p
		g.Go(func() error {
			results[i] = a.AnalyzePage(p)
			return nil
		})
	}
	// Workers never return errors; Wait is only a barrier here.
	_ = g.Wait()

	return aggregate(results)
}

func aggregate(results []*models.AnalysisResult) *models.SiteAnalysisResult {
	site := &models.SiteAnalysisResult{
		PagesAnalyzed: len(results),
		Pages:         results,
		TopSEOFixes:   []string{},
		TopAIOFixes:   []string{},
	}
	if len(results) == 0 {
		return site
	}

	var seoSum, aioSum, combinedSum int
	for _, r := range results {
		seoSum += r.SEOScore
		aioSum += r.AIOScore
		combinedSum += r.CombinedScore
		site.Issues.Critical += r.SEOIssues.Critical
		site.Issues.Warnings += r.SEOIssues.Warnings
		site.Issues.Passed += r.SEOIssues.Passed
	}
	n := float64(len(results))
	site.AvgSEOScore = int(math.Round(float64(seoSum) / n))
	site.AvgAIOScore = int(math.Round(float64(aioSum) / n))
	site.AvgCombinedScore = int(math.Round(float64(combinedSum) / n))

	site.TopSEOFixes = poolFixes(results, func(r *models.AnalysisResult) []string {
		return TopRecommendations(r.SEOBreakdown.AllItems(), DefaultRecommendationLimit)
	})
	site.TopAIOFixes = poolFixes(results, func(r *models.AnalysisResult) []string {
		return TopRecommendations(r.AIOBreakdown.AllItems(), DefaultRecommendationLimit)
	})
	return site
}

// poolFixes merges per-page fix lists, deduplicating by exact string and
// preserving first-seen order, capped at the recommendation limit.
func poolFixes(results []*models.AnalysisResult, pick func(*models.AnalysisResult) []string) []string {
	seen := map[string]bool{}
	pooled := []string{}
	for _, r := range results {
		for _, fix := range pick(r) {
			if seen[fix] {
				continue
			}
			seen[fix] = true
			pooled = append(pooled, fix)
			if len(pooled) == DefaultRecommendationLimit {
				return pooled
			}
		}
	}
	return pooled
}
