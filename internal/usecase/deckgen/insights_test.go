package deckgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/pkg/config"
)

// stubProvider returns a canned completion or error. It doubles as the
// coaching provider since the interfaces share a signature.
type stubProvider struct {
	resp string
	err  error
}

func (s stubProvider) Complete(_ context.Context, _, _ string) (string, error) {
	return s.resp, s.err
}

func newTestPipeline(p InsightProvider) *InsightPipeline {
	return NewInsightPipeline(p, NewHeuristicEnhancer(), config.DefaultPipeline(), time.Second, zap.NewNop())
}

func TestGenerate_ModelBackedPath(t *testing.T) {
	provider := stubProvider{resp: `{"insights":[
		{"type":"trend","headline":"Revenue climbing","evidence":["Jan to Jun up 120%"],"confidence":85,"impact":"$1.2M run-rate","recommended_action":"Keep investing"},
		{"type":"weird","headline":"Unknown kind","evidence":["x"],"confidence":60}
	]}`}
	pipeline := newTestPipeline(provider)
	ds := monthlyRevenueDataset([]float64{1000, 2200})

	insights := pipeline.Generate(context.Background(), ds, entities.GenerationContext{}, NewDataProfiler().Profile(ds))

	require.Len(t, insights, 2)
	assert.Equal(t, "insight-1", insights[0].ID)
	assert.Equal(t, entities.InsightTrend, insights[0].Type)
	assert.Equal(t, "Revenue climbing", insights[0].Headline)
	// Unknown types coerce to novel rather than being dropped.
	assert.Equal(t, entities.InsightNovel, insights[1].Type)
	// Enhancement annotated novelty.
	assert.NotZero(t, insights[0].Novelty)
}

func TestGenerate_ProviderErrorFallsBack(t *testing.T) {
	pipeline := newTestPipeline(stubProvider{err: errors.New("connection refused")})
	ds := monthlyRevenueDataset([]float64{1000, 1500, 2200})
	profile := NewDataProfiler().Profile(ds)

	insights := pipeline.Generate(context.Background(), ds, entities.GenerationContext{}, profile)

	require.NotEmpty(t, insights)
	// The local path reports dataset coverage first.
	assert.Equal(t, entities.InsightDataQuality, insights[0].Type)
}

func TestGenerate_UnparseableResponseFallsBack(t *testing.T) {
	pipeline := newTestPipeline(stubProvider{resp: "I could not analyze this data, sorry."})
	ds := monthlyRevenueDataset([]float64{1000, 2200})

	insights := pipeline.Generate(context.Background(), ds, entities.GenerationContext{}, NewDataProfiler().Profile(ds))

	require.NotEmpty(t, insights)
	assert.Equal(t, entities.InsightDataQuality, insights[0].Type)
}

func TestGenerate_CapsInsightCount(t *testing.T) {
	var items []string
	for i := 0; i < 14; i++ {
		items = append(items, fmt.Sprintf(`{"type":"trend","headline":"Finding %d","evidence":["e"],"confidence":70}`, i))
	}
	provider := stubProvider{resp: `{"insights":[` + strings.Join(items, ",") + `]}`}
	pipeline := newTestPipeline(provider)
	ds := monthlyRevenueDataset([]float64{1000, 2200})

	insights := pipeline.Generate(context.Background(), ds, entities.GenerationContext{}, NewDataProfiler().Profile(ds))

	assert.Len(t, insights, config.DefaultPipeline().MaxInsights)
}

func TestFallback_EmptyDataset(t *testing.T) {
	pipeline := newTestPipeline(stubProvider{err: errors.New("unused")})

	insights := pipeline.Fallback(&entities.Dataset{Name: "empty"}, entities.DataProfile{})

	require.Len(t, insights, 1)
	assert.Equal(t, entities.InsightDataQuality, insights[0].Type)
	assert.Equal(t, "No data available for analysis", insights[0].Headline)
	assert.Equal(t, 100, insights[0].Confidence)
}

func TestFallback_ReportsStructure(t *testing.T) {
	pipeline := newTestPipeline(stubProvider{})
	ds := monthlyRevenueDataset([]float64{1000, 1200, 2200})
	profile := NewDataProfiler().Profile(ds)

	insights := pipeline.Fallback(ds, profile)

	require.Len(t, insights, 3)
	assert.Equal(t, entities.InsightDataQuality, insights[0].Type)
	assert.Equal(t, entities.InsightCorrelation, insights[1].Type)
	assert.Equal(t, entities.InsightTrend, insights[2].Type)
	assert.Contains(t, insights[2].Impact, "growth")
}
