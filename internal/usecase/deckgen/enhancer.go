package deckgen

import (
	"fmt"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
)

// InsightEnhancer upgrades raw findings into presentation-ready insights.
// Contract: the output is the same length or fewer, never more; confidence may
// be lowered but a finding is never invented.
type InsightEnhancer interface {
	Enhance(findings []entities.Insight, ds *entities.Dataset, gctx entities.GenerationContext) []entities.Insight
}

// noveltyByType ranks how surprising each finding kind tends to be for an
// audience that has seen the data before.
var noveltyByType = map[entities.InsightType]int{
	entities.InsightNovel:       90,
	entities.InsightAnomaly:     80,
	entities.InsightCausation:   75,
	entities.InsightCorrelation: 65,
	entities.InsightOpportunity: 60,
	entities.InsightRisk:        60,
	entities.InsightTrend:       40,
	entities.InsightDataQuality: 20,
}

// HeuristicEnhancer is the deterministic in-process enhancer. It annotates
// novelty, backfills evidence and actions, and discounts unsupported claims.
type HeuristicEnhancer struct{}

// NewHeuristicEnhancer creates a new HeuristicEnhancer
func NewHeuristicEnhancer() *HeuristicEnhancer {
	return &HeuristicEnhancer{}
}

// Enhance upgrades each finding in place-order. No finding is dropped.
func (e *HeuristicEnhancer) Enhance(findings []entities.Insight, ds *entities.Dataset, gctx entities.GenerationContext) []entities.Insight {
	out := make([]entities.Insight, len(findings))
	for i, f := range findings {
		enhanced := f

		if enhanced.Novelty == 0 {
			if n, ok := noveltyByType[enhanced.Type]; ok {
				enhanced.Novelty = n
			} else {
				enhanced.Novelty = 50
			}
		}

		// A claim without evidence gets a confidence discount, not removal.
		if len(enhanced.Evidence) == 0 {
			enhanced.Confidence -= 20
			if enhanced.Confidence < 5 {
				enhanced.Confidence = 5
			}
			if ds != nil {
				enhanced.Evidence = []string{fmt.Sprintf("Derived from %d rows of %q", len(ds.Rows), ds.Name)}
			}
		}

		if enhanced.RecommendedAction == "" {
			switch enhanced.Type {
			case entities.InsightOpportunity:
				enhanced.RecommendedAction = fmt.Sprintf("Quantify and prioritize: %s", enhanced.Headline)
			case entities.InsightRisk:
				enhanced.RecommendedAction = fmt.Sprintf("Define a mitigation plan for: %s", enhanced.Headline)
			}
		}

		if enhanced.Impact == "" && gctx.Decision != "" {
			enhanced.Impact = fmt.Sprintf("Relevant to the decision: %s", gctx.Decision)
		}

		out[i] = enhanced
	}
	return out
}
