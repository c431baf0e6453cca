package deckgen

import (
	"regexp"
	"strings"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/pkg/config"
)

// TemplateSelector scores catalog templates against a profile and brief and
// returns the best match, adapted to the caller's industry and audience.
// Selection is deterministic; ties are broken by catalog order.
type TemplateSelector struct {
	cfg config.PipelineConfig
}

// NewTemplateSelector creates a new TemplateSelector
func NewTemplateSelector(cfg config.PipelineConfig) *TemplateSelector {
	return &TemplateSelector{cfg: cfg}
}

// Select scores every catalog template and returns an adapted copy of the
// winner. The catalog entries themselves are never modified.
func (s *TemplateSelector) Select(catalog []entities.DeckTemplate, profile entities.DataProfile, gctx entities.GenerationContext) entities.DeckTemplate {
	best := 0
	bestScore := s.score(catalog[0], profile, gctx)
	for i := 1; i < len(catalog); i++ {
		if sc := s.score(catalog[i], profile, gctx); sc > bestScore {
			best, bestScore = i, sc
		}
	}
	return s.adapt(catalog[best], gctx)
}

// score implements the selection heuristics: keyword match, profile alignment
// bonuses and a linear time-fit penalty.
func (s *TemplateSelector) score(t entities.DeckTemplate, profile entities.DataProfile, gctx entities.GenerationContext) int {
	score := 0
	haystack := strings.ToLower(gctx.Audience + " " + gctx.Goal)

	for _, kw := range t.Keywords {
		if strings.Contains(haystack, kw) {
			score += s.cfg.KeywordBonus
			break
		}
	}

	if profile.HasTimeSeries && t.HasSlide(entities.BlueprintGrowthChart) {
		score += s.cfg.TimeSeriesBonus
	}
	if profile.HasComparisons && t.HasSlide(entities.BlueprintComparison) {
		score += s.cfg.ComparisonBonus
	}
	if profile.Complexity == entities.ComplexityHigh && t.Name == "Data Story" {
		score += s.cfg.ComplexityBonus
	}

	timeLimit := gctx.TimeLimit
	if timeLimit <= 0 {
		timeLimit = s.cfg.DefaultTimeLimit
	}
	diff := t.TotalDurationMinutes - timeLimit
	if diff < 0 {
		diff = -diff
	}
	score -= diff

	return score
}

var placeholderRe = regexp.MustCompile(`\[[^\]]*\]`)

// adapt rewrites the winning template for the specific industry and audience.
// Slide count and ordering are never changed.
func (s *TemplateSelector) adapt(t entities.DeckTemplate, gctx entities.GenerationContext) entities.DeckTemplate {
	adapted := t.Clone()
	phrase := industryPhrase(gctx.Industry)
	audience := strings.ToLower(gctx.Audience)

	for i := range adapted.Slides {
		bp := &adapted.Slides[i]
		if placeholderRe.MatchString(bp.Title) {
			bp.Title = placeholderRe.ReplaceAllString(bp.Title, phrase)
		}
		if bp.Guidelines == nil {
			bp.Guidelines = make(map[string]bool)
		}
		if strings.Contains(audience, "technical") {
			bp.Guidelines["includeMethodology"] = true
			bp.Guidelines["showDataSources"] = true
		}
		if strings.Contains(audience, "executive") || strings.Contains(audience, "board") {
			bp.Guidelines["highlightROI"] = true
			bp.Guidelines["showCompetitiveImplications"] = true
		}
	}
	return adapted
}

// industryPhrases maps a lowercased industry to the phrase substituted for
// bracketed title placeholders.
var industryPhrases = map[string]string{
	"saas":          "SaaS",
	"fintech":       "Fintech",
	"healthcare":    "Healthcare",
	"retail":        "Retail",
	"manufacturing": "Manufacturing",
	"ecommerce":     "E-commerce",
	"e-commerce":    "E-commerce",
	"logistics":     "Logistics",
	"education":     "Education",
	"energy":        "Energy",
}

func industryPhrase(industry string) string {
	if p, ok := industryPhrases[strings.ToLower(strings.TrimSpace(industry))]; ok {
		return p
	}
	if industry != "" {
		return industry
	}
	return "Business"
}
