package deckgen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/pkg/config"
)

func assembleGrowthDeck(t *testing.T) (*entities.Deck, entities.DeckTemplate) {
	t.Helper()
	ds := monthlyRevenueDataset([]float64{1000, 1200, 1400, 1700, 1900, 2200})
	profile := NewDataProfiler().Profile(ds)
	gctx := entities.GenerationContext{
		Audience:  "board",
		Goal:      "quarterly update",
		Industry:  "saas",
		TimeLimit: 15,
		Decision:  "approve the growth plan",
	}
	tmpl := NewTemplateSelector(config.DefaultPipeline()).Select(Catalog(), profile, gctx)
	insights := newTestPipeline(stubProvider{}).Fallback(ds, profile)

	return NewDeckAssembler().Assemble(tmpl, insights, ds, gctx, profile), tmpl
}

func TestAssemble_FollowsBlueprintOrder(t *testing.T) {
	deck, tmpl := assembleGrowthDeck(t)

	require.Len(t, deck.Slides, len(tmpl.Slides))
	for i, slide := range deck.Slides {
		assert.Equal(t, tmpl.Slides[i].Type, slide.Type)
		assert.Equal(t, tmpl.Slides[i].DurationSeconds, slide.DurationSeconds)
	}
}

func TestAssemble_PositionalSlideIDs(t *testing.T) {
	deck, _ := assembleGrowthDeck(t)

	assert.Equal(t, "slide-1", deck.Slides[0].ID)
	assert.Equal(t, "slide-7", deck.Slides[6].ID)
}

func TestAssemble_FixedLayoutGrid(t *testing.T) {
	deck, _ := assembleGrowthDeck(t)

	for _, slide := range deck.Slides {
		require.NotEmpty(t, slide.Elements)
		title := slide.Elements[0]
		assert.Equal(t, entities.ElementTitle, title.Type)
		assert.Equal(t, 100, title.X)
		assert.Equal(t, 100, title.Y)

		textIdx := 0
		for _, el := range slide.Elements[1:] {
			if el.Type == entities.ElementText {
				assert.Equal(t, 200+textIdx*50, el.Y)
				textIdx++
			}
		}
	}
}

func TestAssemble_GrowthChartSlide(t *testing.T) {
	deck, _ := assembleGrowthDeck(t)

	var chartSlide *entities.Slide
	for i := range deck.Slides {
		if deck.Slides[i].Type == entities.BlueprintGrowthChart {
			chartSlide = &deck.Slides[i]
		}
	}
	require.NotNil(t, chartSlide)

	var chart *entities.ChartSpec
	for _, el := range chartSlide.Elements {
		if el.Type == entities.ElementChart {
			chart = el.Chart
		}
	}
	require.NotNil(t, chart)
	assert.Equal(t, "line", chart.Type)
	assert.Equal(t, 6, len(chart.Data))
	assert.Equal(t, 1000.0, chart.Data["2024-01"])
	assert.Equal(t, 2200.0, chart.Data["2024-06"])
}

func TestAssemble_DeepDivePromotesTopInsight(t *testing.T) {
	ds := monthlyRevenueDataset([]float64{1000, 2200})
	profile := NewDataProfiler().Profile(ds)
	insights := []entities.Insight{
		{ID: "insight-1", Type: entities.InsightTrend, Headline: "Low priority", Confidence: 40, Novelty: 10},
		{ID: "insight-2", Type: entities.InsightAnomaly, Headline: "The big spike", Confidence: 90, Novelty: 80,
			Evidence: []string{"March doubled"}, Impact: "$500K upside"},
	}
	tmpl := Catalog()[0]

	deck := NewDeckAssembler().Assemble(tmpl, insights, ds, entities.GenerationContext{}, profile)

	var deepDive *entities.Slide
	for i := range deck.Slides {
		if deck.Slides[i].Type == entities.BlueprintDeepDive {
			deepDive = &deck.Slides[i]
		}
	}
	require.NotNil(t, deepDive)
	assert.Equal(t, "The big spike", deepDive.Title)
}

func TestAssemble_ComparisonSlideGroupsCategories(t *testing.T) {
	rows := make([]entities.Row, 12)
	regions := []string{"north", "south", "west"}
	for i := range rows {
		rows[i] = entities.Row{"region": regions[i%3], "deals": float64(i)}
	}
	ds := &entities.Dataset{Name: "deals", Rows: rows}
	profile := NewDataProfiler().Profile(ds)
	tmpl := Catalog()[2] // Sales Pitch carries a comparison slide

	deck := NewDeckAssembler().Assemble(tmpl, nil, ds, entities.GenerationContext{}, profile)

	var chart *entities.ChartSpec
	for _, slide := range deck.Slides {
		if slide.Type != entities.BlueprintComparison {
			continue
		}
		for _, el := range slide.Elements {
			if el.Type == entities.ElementChart {
				chart = el.Chart
			}
		}
	}
	require.NotNil(t, chart)
	assert.Equal(t, "bar", chart.Type)
	assert.Equal(t, 4.0, chart.Data["north"])
}

func TestAssemble_Deterministic(t *testing.T) {
	first, _ := assembleGrowthDeck(t)
	second, _ := assembleGrowthDeck(t)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "two runs over the same input must be bit-identical")
}
