package deckgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/pkg/config"
)

func slidesWithContent(n int) []entities.Slide {
	slides := make([]entities.Slide, n)
	for i := range slides {
		slides[i] = entities.Slide{
			ID:       "slide-1",
			Elements: []entities.SlideElement{{Type: entities.ElementTitle, Text: "t"}},
		}
	}
	return slides
}

func TestScore_BaselineOnly(t *testing.T) {
	scorer := NewQualityScorer(config.DefaultPipeline())
	deck := &entities.Deck{Slides: slidesWithContent(3)} // below the ideal band

	score, _ := scorer.Score(deck, nil, entities.DeckTemplate{Name: "Data Story"}, entities.GenerationContext{})

	// Baseline plus the completeness bonus; no depth, audience or count bonus.
	assert.InDelta(t, 0.75, score, 1e-9)
}

func TestScore_AllBonusesCapAtOne(t *testing.T) {
	scorer := NewQualityScorer(config.DefaultPipeline())
	deck := &entities.Deck{Slides: slidesWithContent(7)}
	insights := []entities.Insight{{Headline: "Growth is accelerating", Impact: "supports the expansion case"}}

	score, _ := scorer.Score(deck, insights, entities.DeckTemplate{Name: "Board Update"}, entities.GenerationContext{})

	assert.Equal(t, 1.0, score)
}

func TestScore_EmptyDeckGetsNoStructureBonuses(t *testing.T) {
	scorer := NewQualityScorer(config.DefaultPipeline())
	deck := &entities.Deck{}

	score, _ := scorer.Score(deck, nil, entities.DeckTemplate{Name: "Data Story"}, entities.GenerationContext{})

	assert.InDelta(t, 0.70, score, 1e-9)
}

func TestEstimateImpact_QuantifiedInsightIsHigh(t *testing.T) {
	scorer := NewQualityScorer(config.DefaultPipeline())
	deck := &entities.Deck{Slides: slidesWithContent(6)}
	insights := []entities.Insight{{Headline: "Upside", Impact: "$1.2M in annual savings"}}

	_, impact := scorer.Score(deck, insights, entities.DeckTemplate{Name: "Data Story"}, entities.GenerationContext{})

	assert.Equal(t, entities.ImpactHigh, impact.Level)
	assert.Contains(t, impact.Rationale, "$1.2M")
}

func TestEstimateImpact_FundingGoalIsHigh(t *testing.T) {
	scorer := NewQualityScorer(config.DefaultPipeline())
	deck := &entities.Deck{Slides: slidesWithContent(6)}

	_, impact := scorer.Score(deck, nil, entities.DeckTemplate{Name: "Investor Pitch"}, entities.GenerationContext{
		Goal: "close our seed funding round",
	})

	assert.Equal(t, entities.ImpactHigh, impact.Level)
}

func TestEstimateImpact_DefaultsToMedium(t *testing.T) {
	scorer := NewQualityScorer(config.DefaultPipeline())
	deck := &entities.Deck{Slides: slidesWithContent(6)}
	insights := []entities.Insight{{Headline: "Directional", Impact: "worth watching"}}

	_, impact := scorer.Score(deck, insights, entities.DeckTemplate{Name: "Data Story"}, entities.GenerationContext{})

	assert.Equal(t, entities.ImpactMedium, impact.Level)
}
