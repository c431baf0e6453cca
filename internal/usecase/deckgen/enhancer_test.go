package deckgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
)

func TestEnhance_BackfillsNoveltyByType(t *testing.T) {
	enhancer := NewHeuristicEnhancer()
	findings := []entities.Insight{
		{ID: "insight-1", Type: entities.InsightAnomaly, Headline: "Spike in March", Confidence: 80, Evidence: []string{"row 3"}},
		{ID: "insight-2", Type: entities.InsightTrend, Headline: "Steady climb", Confidence: 70, Evidence: []string{"rows 1-6"}},
	}

	out := enhancer.Enhance(findings, nil, entities.GenerationContext{})

	require.Len(t, out, 2)
	assert.Equal(t, 80, out[0].Novelty)
	assert.Equal(t, 40, out[1].Novelty)
}

func TestEnhance_DiscountsUnsupportedClaims(t *testing.T) {
	enhancer := NewHeuristicEnhancer()
	ds := &entities.Dataset{Name: "sales", Rows: []entities.Row{{"x": 1.0}}}
	findings := []entities.Insight{
		{ID: "insight-1", Type: entities.InsightNovel, Headline: "Bold claim", Confidence: 90},
		{ID: "insight-2", Type: entities.InsightNovel, Headline: "Wild claim", Confidence: 10},
	}

	out := enhancer.Enhance(findings, ds, entities.GenerationContext{})

	assert.Equal(t, 70, out[0].Confidence)
	assert.Equal(t, 5, out[1].Confidence, "confidence floor is 5")
	assert.NotEmpty(t, out[0].Evidence, "derived evidence is attached with the discount")
}

func TestEnhance_BackfillsActionsAndImpact(t *testing.T) {
	enhancer := NewHeuristicEnhancer()
	gctx := entities.GenerationContext{Decision: "expand to EMEA"}
	findings := []entities.Insight{
		{ID: "insight-1", Type: entities.InsightOpportunity, Headline: "Untapped segment", Confidence: 75, Evidence: []string{"seg data"}},
		{ID: "insight-2", Type: entities.InsightRisk, Headline: "Churn creeping up", Confidence: 65, Evidence: []string{"churn data"}},
	}

	out := enhancer.Enhance(findings, nil, gctx)

	assert.Contains(t, out[0].RecommendedAction, "Untapped segment")
	assert.Contains(t, out[1].RecommendedAction, "mitigation plan")
	assert.Contains(t, out[0].Impact, "expand to EMEA")
}

func TestEnhance_NeverDropsOrInvents(t *testing.T) {
	enhancer := NewHeuristicEnhancer()
	findings := []entities.Insight{
		{ID: "insight-1", Type: entities.InsightTrend, Headline: "A", Confidence: 50, Evidence: []string{"e"}},
	}

	out := enhancer.Enhance(findings, nil, entities.GenerationContext{})

	assert.Len(t, out, len(findings))
	assert.Equal(t, "insight-1", out[0].ID)
}
