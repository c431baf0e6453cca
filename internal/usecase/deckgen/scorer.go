package deckgen

import (
	"fmt"
	"strings"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/pkg/config"
)

// Slide-count band that earns the structure bonus.
const (
	minIdealSlides = 5
	maxIdealSlides = 15
)

// QualityScorer computes the bounded deck-quality score and the qualitative
// business-impact estimate. Bonuses are independent and additive; the score
// is capped at 1.0 and never drops below the baseline.
type QualityScorer struct {
	cfg config.PipelineConfig
}

// NewQualityScorer creates a new QualityScorer
func NewQualityScorer(cfg config.PipelineConfig) *QualityScorer {
	return &QualityScorer{cfg: cfg}
}

// Score evaluates the assembled deck against the insights that fed it.
func (s *QualityScorer) Score(deck *entities.Deck, insights []entities.Insight, tmpl entities.DeckTemplate, gctx entities.GenerationContext) (float64, entities.ImpactEstimate) {
	score := s.cfg.BaselineQuality

	if hasDeepInsight(insights) {
		score += s.cfg.InsightDepthBonus
	}
	if templateSignalsStakes(tmpl.Name) {
		score += s.cfg.AudienceMatchBonus
	}
	if n := len(deck.Slides); n >= minIdealSlides && n <= maxIdealSlides {
		score += s.cfg.SlideCountBonus
	}
	if allSlidesFilled(deck) {
		score += s.cfg.CompletenessBonus
	}
	if score > 1.0 {
		score = 1.0
	}

	return score, s.estimateImpact(insights, gctx)
}

// hasDeepInsight reports whether any insight carries both a headline and an
// impact statement.
func hasDeepInsight(insights []entities.Insight) bool {
	for _, in := range insights {
		if in.Headline != "" && in.Impact != "" {
			return true
		}
	}
	return false
}

// templateSignalsStakes reports whether the template name indicates a
// board or investor context.
func templateSignalsStakes(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "board") || strings.Contains(n, "investor")
}

func allSlidesFilled(deck *entities.Deck) bool {
	for _, slide := range deck.Slides {
		if len(slide.Elements) == 0 {
			return false
		}
	}
	return len(deck.Slides) > 0
}

var impactMarkers = []string{"$", "€", "£", "%"}

// estimateImpact is High when any insight quantifies its impact in money or
// percentage terms, or when the goal is about funding; otherwise Medium.
func (s *QualityScorer) estimateImpact(insights []entities.Insight, gctx entities.GenerationContext) entities.ImpactEstimate {
	for _, in := range insights {
		for _, marker := range impactMarkers {
			if strings.Contains(in.Impact, marker) {
				return entities.ImpactEstimate{
					Level:     entities.ImpactHigh,
					Rationale: fmt.Sprintf("Quantified impact: %s", in.Impact),
				}
			}
		}
	}

	goal := strings.ToLower(gctx.Goal)
	if strings.Contains(goal, "funding") || strings.Contains(goal, "investment") {
		return entities.ImpactEstimate{
			Level:     entities.ImpactHigh,
			Rationale: "Deck supports a funding decision",
		}
	}

	return entities.ImpactEstimate{
		Level:     entities.ImpactMedium,
		Rationale: "Directional findings without quantified impact",
	}
}
