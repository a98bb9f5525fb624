package service

import (
	"math"

	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"

	log "github.com/sirupsen/logrus"
)

// Analyzer scores crawled page snapshots. It holds no mutable state: every
// call builds a fresh result from its input alone, so a single instance is
// safe for concurrent use and callers may memoize results by content hash.
type Analyzer struct {
	log *log.Logger
}

func NewAnalyzer(logger *log.Logger) *Analyzer {
	return &Analyzer{log: logger}
}

// AnalyzePage runs both rule evaluators on one page and derives the combined
// score, issue counts and answer-engine factors. It never fails: sparse
// input yields low scores, not errors.
func (a *Analyzer) AnalyzePage(p *models.PageInput) *models.AnalysisResult {
	a.log.WithField(`url`, p.URL).Debug(`scoring page`)

	seo := EvaluateSEO(p)
	aio := EvaluateAIO(p)

	seoScore := TotalScore(seo.AllItems())
	aioScore := TotalScore(aio.AllItems())

	result := &models.AnalysisResult{
		URL:           p.URL,
		SEOScore:      seoScore,
		AIOScore:      aioScore,
		CombinedScore: int(math.Round(float64(seoScore+aioScore) / 2)),
		SEOCategories: models.SEOCategoryScores{
			Technical:     CategoryScore(seo.Technical),
			Content:       CategoryScore(seo.Content),
			Meta:          CategoryScore(seo.Meta),
			Performance:   CategoryScore(seo.Performance),
			Accessibility: CategoryScore(seo.Accessibility),
		},
		AIOCategories: models.AIOCategoryScores{
			Structure:      CategoryScore(aio.Structure),
			Authority:      CategoryScore(aio.Authority),
			Schema:         CategoryScore(aio.Schema),
			ContentQuality: CategoryScore(aio.ContentQuality),
			Quotability:    CategoryScore(aio.Quotability),
		},
		SEOBreakdown: seo,
		AIOBreakdown: aio,
		SEOIssues:    countIssues(seo.AllItems()),
		AIOFactors:   deriveFactors(&aio),
		PageInfo: models.PageInfo{
			WordCount:          p.WordCount,
			HasH1:              len(p.H1s) > 0,
			HasMetaDescription: p.MetaDescription != "",
			SchemaTypes:        SchemaTypes(p),
		},
	}
	result.AvgSentenceLength = sentenceLengthMetric(&aio)

	a.log.WithFields(log.Fields{
		`url`:      p.URL,
		`seo`:      result.SEOScore,
		`aio`:      result.AIOScore,
		`combined`: result.CombinedScore,
	}).Debug(`page scored`)
	return result
}

// countIssues maps fail to critical and tallies the rest by status.
func countIssues(items []models.ScoreItem) models.IssueCounts {
	var c models.IssueCounts
	for _, it := range items {
		switch it.Status {
		case models.StatusFail:
			c.Critical++
		case models.StatusWarning:
			c.Warnings++
		default:
			c.Passed++
		}
	}
	return c
}

// deriveFactors reads named items' status out of the AIO breakdown. The
// lookup is by item name, not by reason wording.
func deriveFactors(b *models.AIOBreakdown) models.AIOFactors {
	passed := map[string]bool{}
	for _, it := range b.AllItems() {
		if it.Status == models.StatusPass {
			passed[it.Name] = true
		}
	}
	return models.AIOFactors{
		HasDirectAnswers: passed[itemDirectAnswers],
		HasFAQSection:    passed[itemFAQSection] || passed[itemFAQSchema],
		HasSchema:        passed[itemSchemaPresent],
		HasAuthorInfo:    passed[itemAuthorByline],
		HasCitations:     passed[itemCitations],
		HasKeyTakeaways:  passed[itemKeyTakeaways],
	}
}

// sentenceLengthMetric reads the measured average straight off the scored
// item's Metric field.
func sentenceLengthMetric(b *models.AIOBreakdown) float64 {
	for _, it := range b.Quotability {
		if it.Name == itemSentenceLength && it.Metric != nil {
			return *it.Metric
		}
	}
	return 0
}
