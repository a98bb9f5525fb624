package service

import (
	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"
)

// ruleResult is what a detector reports for one rule on one page.
type ruleResult struct {
	score  int
	status models.ItemStatus
	reason string
	fix    string
	metric *float64
}

// rule is one declarative scoring check. Weights live in the tables, not in
// the detection logic, so the 20-points-per-category budget can be verified
// mechanically.
type rule struct {
	name     string
	category string
	maxScore int
	detect   func(p *models.PageInput) ruleResult
}

// evaluate runs a rule and clamps its score into [0, maxScore].
func (r rule) evaluate(p *models.PageInput) models.ScoreItem {
	res := r.detect(p)
	score := res.score
	if score < 0 {
		score = 0
	}
	if score > r.maxScore {
		score = r.maxScore
	}
	return models.ScoreItem{
		Name:     r.name,
		Score:    score,
		MaxScore: r.maxScore,
		Status:   res.status,
		Reason:   res.reason,
		HowToFix: res.fix,
		Metric:   res.metric,
	}
}

func evaluateCategory(rules []rule, category string, p *models.PageInput) []models.ScoreItem {
	var items []models.ScoreItem
	for _, r := range rules {
		if r.category == category {
			items = append(items, r.evaluate(p))
		}
	}
	return items
}

// binary is a helper for pass-or-nothing rules.
func binary(ok bool, points int, passStatus, failStatus models.ItemStatus, passReason, failReason, fix string) ruleResult {
	if ok {
		return ruleResult{score: points, status: passStatus, reason: passReason}
	}
	return ruleResult{score: 0, status: failStatus, reason: failReason, fix: fix}
}

func floatPtr(v float64) *float64 { return &v }
