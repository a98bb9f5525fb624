package service

import (
	"testing"

	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestCategoryScore(t *testing.T) {
	cases := []struct {
		name  string
		items []models.ScoreItem
		want  int
	}{
		{
			name:  "empty list scores zero",
			items: nil,
			want:  0,
		},
		{
			name: "full marks",
			items: []models.ScoreItem{
				{Score: 10, MaxScore: 10},
				{Score: 10, MaxScore: 10},
			},
			want: 20,
		},
		{
			name: "half marks",
			items: []models.ScoreItem{
				{Score: 5, MaxScore: 10},
				{Score: 5, MaxScore: 10},
			},
			want: 10,
		},
		{
			name: "rounds to nearest",
			items: []models.ScoreItem{
				{Score: 1, MaxScore: 3},
			},
			want: 7, // 1/3 * 20 = 6.67
		},
		{
			name: "zero max scores zero",
			items: []models.ScoreItem{
				{Score: 0, MaxScore: 0},
			},
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CategoryScore(tc.items))
		})
	}
}

func TestTotalScore(t *testing.T) {
	items := []models.ScoreItem{
		{Score: 3, MaxScore: 10},
		{Score: 4, MaxScore: 10},
	}
	// 7/20 * 100 = 35
	assert.Equal(t, 35, TotalScore(items))
	assert.Equal(t, 0, TotalScore(nil))
}

func TestTopRecommendations(t *testing.T) {
	items := []models.ScoreItem{
		{Name: "small", Score: 2, MaxScore: 5, Status: models.StatusWarning, HowToFix: "fix small"},
		{Name: "passing", Score: 10, MaxScore: 10, Status: models.StatusPass, HowToFix: "should never appear"},
		{Name: "big", Score: 0, MaxScore: 10, Status: models.StatusFail, HowToFix: "fix big"},
		{Name: "no fix", Score: 0, MaxScore: 8, Status: models.StatusFail},
	}

	fixes := TopRecommendations(items, 5)

	// Biggest points lost first; pass and fix-less items never surface.
	assert.Equal(t, []string{"fix big", "fix small"}, fixes)
}

func TestTopRecommendationsStableTies(t *testing.T) {
	items := []models.ScoreItem{
		{Name: "first", Score: 0, MaxScore: 4, Status: models.StatusFail, HowToFix: "fix first"},
		{Name: "second", Score: 0, MaxScore: 4, Status: models.StatusFail, HowToFix: "fix second"},
		{Name: "third", Score: 0, MaxScore: 4, Status: models.StatusFail, HowToFix: "fix third"},
	}

	fixes := TopRecommendations(items, 5)

	assert.Equal(t, []string{"fix first", "fix second", "fix third"}, fixes)
}

func TestTopRecommendationsLimit(t *testing.T) {
	var items []models.ScoreItem
	for i := 0; i < 8; i++ {
		items = append(items, models.ScoreItem{
			Score: 0, MaxScore: 8 - i, Status: models.StatusFail,
			HowToFix: "fix " + string(rune('a'+i)),
		})
	}

	fixes := TopRecommendations(items, DefaultRecommendationLimit)

	assert.Len(t, fixes, 5)
	assert.Equal(t, "fix a", fixes[0])
}
