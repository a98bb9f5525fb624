package models

// ItemStatus is the author-assigned severity of a check outcome. It is set
// per rule, not derived from the score ratio: two rules losing the same
// points can carry different severities.
type ItemStatus string

const (
	StatusPass    ItemStatus = "pass"
	StatusWarning ItemStatus = "warning"
	StatusFail    ItemStatus = "fail"
)

// ScoreItem is the smallest evaluation unit: one named check with a bounded
// score and a human-readable explanation. Metric optionally carries the raw
// measured value behind the reason string so callers never parse wording.
type ScoreItem struct {
	Name     string     `json:"name"`
	Score    int        `json:"score"`
	MaxScore int        `json:"max_score"`
	Status   ItemStatus `json:"status"`
	Reason   string     `json:"reason"`
	HowToFix string     `json:"how_to_fix,omitempty"`
	Metric   *float64   `json:"metric,omitempty"`
}

// PointsLost is the gap this item leaves against its budget.
func (s ScoreItem) PointsLost() int {
	return s.MaxScore - s.Score
}

// SEOBreakdown groups SEO score items into the five scoring categories.
// Each category's max scores sum to 20, the whole breakdown to 100.
type SEOBreakdown struct {
	Technical     []ScoreItem `json:"technical"`
	Content       []ScoreItem `json:"content"`
	Meta          []ScoreItem `json:"meta"`
	Performance   []ScoreItem `json:"performance"`
	Accessibility []ScoreItem `json:"accessibility"`
}

// Categories returns the breakdown groups in their fixed display order.
func (b *SEOBreakdown) Categories() [][]ScoreItem {
	return [][]ScoreItem{b.Technical, b.Content, b.Meta, b.Performance, b.Accessibility}
}

// AllItems flattens the breakdown in category order.
func (b *SEOBreakdown) AllItems() []ScoreItem {
	var items []ScoreItem
	for _, c := range b.Categories() {
		items = append(items, c...)
	}
	return items
}

// AIOBreakdown groups AIO score items into the five scoring categories.
// Same 20-per-category / 100-total budget as the SEO breakdown.
type AIOBreakdown struct {
	Structure      []ScoreItem `json:"structure"`
	Authority      []ScoreItem `json:"authority"`
	Schema         []ScoreItem `json:"schema"`
	ContentQuality []ScoreItem `json:"content_quality"`
	Quotability    []ScoreItem `json:"quotability"`
}

// Categories returns the breakdown groups in their fixed display order.
func (b *AIOBreakdown) Categories() [][]ScoreItem {
	return [][]ScoreItem{b.Structure, b.Authority, b.Schema, b.ContentQuality, b.Quotability}
}

// AllItems flattens the breakdown in category order.
func (b *AIOBreakdown) AllItems() []ScoreItem {
	var items []ScoreItem
	for _, c := range b.Categories() {
		items = append(items, c...)
	}
	return items
}
