package deckgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/pkg/config"
)

func testConfig() config.Config {
	return config.Config{
		LLM:      config.LLMConfig{Timeout: time.Second},
		Pipeline: config.DefaultPipeline(),
	}
}

// panicEnhancer simulates a defect inside the enhanced path.
type panicEnhancer struct{}

func (panicEnhancer) Enhance([]entities.Insight, *entities.Dataset, entities.GenerationContext) []entities.Insight {
	panic("enhancer blew up")
}

func TestGenerateDeck_GrowthScenario(t *testing.T) {
	svc := NewDefaultService(stubProvider{err: errors.New("offline")}, stubProvider{err: errors.New("offline")}, testConfig(), zap.NewNop())
	ds := monthlyRevenueDataset([]float64{1000, 1200, 1400, 1700, 1900, 2200})
	gctx := entities.GenerationContext{
		Audience:  "board of directors",
		Goal:      "quarterly update",
		Industry:  "saas",
		TimeLimit: 15,
	}

	result, err := svc.GenerateDeck(context.Background(), ds, gctx)

	require.NoError(t, err)
	assert.Equal(t, entities.StoryGrowth, result.Metadata.StoryType)
	assert.Contains(t, result.Metadata.TemplateName, "Board")
	assert.GreaterOrEqual(t, len(result.Deck.Slides), 5)
	assert.GreaterOrEqual(t, result.Deck.QualityScore, 0.70)
	assert.NotNil(t, result.Coaching)
	assert.Equal(t, entities.PathEnhanced, result.PathUsed)
}

func TestGenerateDeck_EmptyDataset(t *testing.T) {
	svc := NewDefaultService(stubProvider{err: errors.New("offline")}, stubProvider{err: errors.New("offline")}, testConfig(), zap.NewNop())
	ds := &entities.Dataset{Name: "empty", Rows: []entities.Row{}}

	result, err := svc.GenerateDeck(context.Background(), ds, entities.GenerationContext{})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Deck.Slides)
	assert.GreaterOrEqual(t, result.Deck.QualityScore, 0.70)
	// Every slide still has at least its title element.
	for _, slide := range result.Deck.Slides {
		assert.NotEmpty(t, slide.Elements)
	}
}

func TestGenerateDeck_NilDatasetIsInputError(t *testing.T) {
	svc := NewDefaultService(stubProvider{}, stubProvider{}, testConfig(), zap.NewNop())

	_, err := svc.GenerateDeck(context.Background(), nil, entities.GenerationContext{})
	assert.ErrorIs(t, err, entities.ErrDatasetMissing)

	_, err = svc.GenerateDeck(context.Background(), &entities.Dataset{Name: "no-rows"}, entities.GenerationContext{})
	assert.ErrorIs(t, err, entities.ErrDatasetMissing)
}

func TestGenerateDeck_NegativeTimeLimitIsInputError(t *testing.T) {
	svc := NewDefaultService(stubProvider{}, stubProvider{}, testConfig(), zap.NewNop())
	ds := monthlyRevenueDataset([]float64{1000, 2200})

	_, err := svc.GenerateDeck(context.Background(), ds, entities.GenerationContext{TimeLimit: -5})

	assert.ErrorIs(t, err, entities.ErrInvalidTimeLimit)
}

func TestGenerateDeck_PanicFallsBackToLegacy(t *testing.T) {
	cfg := config.DefaultPipeline()
	modelJSON := `{"insights":[{"type":"trend","headline":"h","evidence":["e"],"confidence":80}]}`
	insightPipe := NewInsightPipeline(stubProvider{resp: modelJSON}, panicEnhancer{}, cfg, time.Second, zap.NewNop())
	orch := NewPipelineOrchestrator(
		NewDataProfiler(),
		NewTemplateSelector(cfg),
		insightPipe,
		NewDeckAssembler(),
		NewQualityScorer(cfg),
		NewCoachingGenerator(stubProvider{err: errors.New("offline")}, time.Second, zap.NewNop()),
		cfg,
		zap.NewNop(),
	)
	ds := monthlyRevenueDataset([]float64{1000, 2200})

	result, err := orch.GenerateDeck(context.Background(), ds, entities.GenerationContext{})

	require.NoError(t, err)
	assert.Equal(t, entities.PathLegacy, result.PathUsed)
	assert.NotEmpty(t, result.Deck.Slides)
	assert.NotNil(t, result.Coaching)
}

func TestGenerateDeck_DefaultTimeLimitApplied(t *testing.T) {
	svc := NewDefaultService(stubProvider{err: errors.New("offline")}, stubProvider{err: errors.New("offline")}, testConfig(), zap.NewNop())
	ds := monthlyRevenueDataset([]float64{1000, 2200})

	// With no time limit the default 15 minutes should steer selection to the
	// 15-minute template over the 25-minute one.
	result, err := svc.GenerateDeck(context.Background(), ds, entities.GenerationContext{})

	require.NoError(t, err)
	assert.Equal(t, "Board Update", result.Metadata.TemplateName)
}

func TestGenerateDeck_Deterministic(t *testing.T) {
	svc := NewDefaultService(stubProvider{err: errors.New("offline")}, stubProvider{err: errors.New("offline")}, testConfig(), zap.NewNop())
	ds := monthlyRevenueDataset([]float64{1000, 1200, 1400, 1700, 1900, 2200})
	gctx := entities.GenerationContext{Audience: "board", Goal: "quarterly update", Industry: "saas", TimeLimit: 15}

	first, err := svc.GenerateDeck(context.Background(), ds, gctx)
	require.NoError(t, err)
	second, err := svc.GenerateDeck(context.Background(), ds, gctx)
	require.NoError(t, err)

	a, err := json.Marshal(first.Deck)
	require.NoError(t, err)
	b, err := json.Marshal(second.Deck)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateDeck_MetadataMatchesDeck(t *testing.T) {
	svc := NewDefaultService(stubProvider{err: errors.New("offline")}, stubProvider{err: errors.New("offline")}, testConfig(), zap.NewNop())
	ds := monthlyRevenueDataset([]float64{1000, 1200, 2200})

	result, err := svc.GenerateDeck(context.Background(), ds, entities.GenerationContext{})

	require.NoError(t, err)
	assert.Equal(t, len(result.Deck.Slides), result.Metadata.SlideCount)
	assert.Equal(t, result.Deck.ChartCount(), result.Metadata.ChartCount)
	assert.Equal(t, result.Deck.QualityScore, result.Metadata.QualityScore)
	assert.Equal(t, result.Deck.EstimatedImpact.Level, result.Metadata.EstimatedImpact)
}
