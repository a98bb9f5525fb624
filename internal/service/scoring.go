package service

import (
	"math"
	"sort"

	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"
)

// DefaultRecommendationLimit caps the fix list returned to callers.
const DefaultRecommendationLimit = 5

// CategoryScore rolls a category's items into its 0-20 score. An empty rule
// list scores 0, never NaN.
func CategoryScore(items []models.ScoreItem) int {
	return scaledScore(items, 20)
}

// TotalScore rolls a full breakdown's items into the 0-100 dimension score.
func TotalScore(items []models.ScoreItem) int {
	return scaledScore(items, 100)
}

func scaledScore(items []models.ScoreItem, scale float64) int {
	score, max := 0, 0
	for _, it := range items {
		score += it.Score
		max += it.MaxScore
	}
	if max == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(max) * scale))
}

// TopRecommendations ranks unresolved items by points lost, keeping the
// first-encountered order on ties, and returns up to limit fix strings.
// Items without a fix or already passing are skipped.
func TopRecommendations(items []models.ScoreItem, limit int) []string {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	var candidates []models.ScoreItem
	for _, it := range items {
		if it.Status != models.StatusPass && it.HowToFix != "" {
			candidates = append(candidates, it)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PointsLost() > candidates[j].PointsLost()
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	fixes := make([]string, 0, len(candidates))
	for _, it := range candidates {
		fixes = append(fixes, it.HowToFix)
	}
	return fixes
}
