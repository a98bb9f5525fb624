package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreItemPointsLost(t *testing.T) {
	assert.Equal(t, 3, ScoreItem{Score: 2, MaxScore: 5}.PointsLost())
	assert.Equal(t, 0, ScoreItem{Score: 5, MaxScore: 5}.PointsLost())
	assert.Equal(t, 10, ScoreItem{Score: 0, MaxScore: 10}.PointsLost())
}

func TestSEOBreakdownAllItems(t *testing.T) {
	b := SEOBreakdown{
		Technical:     []ScoreItem{{Name: "a"}},
		Content:       []ScoreItem{{Name: "b"}, {Name: "c"}},
		Accessibility: []ScoreItem{{Name: "d"}},
	}

	items := b.AllItems()

	assert.Len(t, items, 4)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "d", items[3].Name)
}

func TestAIOBreakdownCategories(t *testing.T) {
	b := AIOBreakdown{
		Structure:   []ScoreItem{{Name: "s"}},
		Quotability: []ScoreItem{{Name: "q"}},
	}

	cats := b.Categories()

	assert.Len(t, cats, 5)
	assert.Len(t, b.AllItems(), 2)
}

func TestLinkCounts(t *testing.T) {
	p := PageInput{Links: []PageLink{
		{Href: "/a", IsInternal: true},
		{Href: "https://other.com", IsInternal: false},
		{Href: "/b", IsInternal: true},
	}}

	assert.Equal(t, 2, p.InternalLinkCount())
	assert.Equal(t, 1, p.ExternalLinkCount())
}
