package deckgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/pkg/config"
)

func TestSelect_KeywordMatchWinsBoardUpdate(t *testing.T) {
	selector := NewTemplateSelector(config.DefaultPipeline())
	profile := entities.DataProfile{HasTimeSeries: true}
	gctx := entities.GenerationContext{
		Audience:  "board of directors",
		Goal:      "quarterly update",
		TimeLimit: 15,
	}

	tmpl := selector.Select(Catalog(), profile, gctx)

	assert.Equal(t, "Board Update", tmpl.Name)
}

func TestSelect_FundingGoalWinsInvestorPitch(t *testing.T) {
	selector := NewTemplateSelector(config.DefaultPipeline())
	profile := entities.DataProfile{HasTimeSeries: true}
	gctx := entities.GenerationContext{
		Audience:  "potential investors",
		Goal:      "raise our series B funding",
		TimeLimit: 20,
	}

	tmpl := selector.Select(Catalog(), profile, gctx)

	assert.Equal(t, "Investor Pitch", tmpl.Name)
}

func TestSelect_TieBreaksByCatalogOrder(t *testing.T) {
	selector := NewTemplateSelector(config.DefaultPipeline())
	// No keywords, no profile signals: everything scores on time fit alone,
	// and the default 15-minute limit matches Board Update exactly.
	tmpl := selector.Select(Catalog(), entities.DataProfile{}, entities.GenerationContext{})

	assert.Equal(t, "Board Update", tmpl.Name)
}

func TestSelect_HighComplexityFavorsDataStory(t *testing.T) {
	selector := NewTemplateSelector(config.DefaultPipeline())
	profile := entities.DataProfile{
		Complexity:     entities.ComplexityHigh,
		HasTimeSeries:  true,
		HasComparisons: true,
	}
	gctx := entities.GenerationContext{
		Goal:      "explore and understand the data",
		TimeLimit: 25,
	}

	tmpl := selector.Select(Catalog(), profile, gctx)

	assert.Equal(t, "Data Story", tmpl.Name)
}

func TestSelect_AdaptsIndustryPlaceholders(t *testing.T) {
	selector := NewTemplateSelector(config.DefaultPipeline())
	profile := entities.DataProfile{HasTimeSeries: true}
	gctx := entities.GenerationContext{
		Audience:  "board",
		Goal:      "quarterly update",
		Industry:  "saas",
		TimeLimit: 15,
	}

	tmpl := selector.Select(Catalog(), profile, gctx)

	for _, bp := range tmpl.Slides {
		assert.NotContains(t, bp.Title, "[Industry]")
	}
	found := false
	for _, bp := range tmpl.Slides {
		if bp.Title == "SaaS Performance Trend" {
			found = true
		}
	}
	assert.True(t, found, "expected the industry phrase substituted into the trend slide")
}

func TestSelect_AudienceGuidelines(t *testing.T) {
	selector := NewTemplateSelector(config.DefaultPipeline())

	technical := selector.Select(Catalog(), entities.DataProfile{}, entities.GenerationContext{
		Audience: "technical team leads",
	})
	for _, bp := range technical.Slides {
		assert.True(t, bp.Guidelines["includeMethodology"])
		assert.True(t, bp.Guidelines["showDataSources"])
	}

	executive := selector.Select(Catalog(), entities.DataProfile{}, entities.GenerationContext{
		Audience: "executive committee",
	})
	for _, bp := range executive.Slides {
		assert.True(t, bp.Guidelines["highlightROI"])
		assert.True(t, bp.Guidelines["showCompetitiveImplications"])
	}
}

func TestSelect_NeverMutatesCatalog(t *testing.T) {
	selector := NewTemplateSelector(config.DefaultPipeline())
	catalog := Catalog()

	selector.Select(catalog, entities.DataProfile{}, entities.GenerationContext{
		Audience: "board",
		Industry: "fintech",
	})

	fresh := Catalog()
	for i := range catalog {
		assert.Equal(t, fresh[i], catalog[i])
	}
}
