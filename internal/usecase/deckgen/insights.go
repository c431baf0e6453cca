package deckgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/pkg/config"
)

// InsightProvider is the language-model capability used for insight
// generation. Any transport error, timeout or unparseable body is treated as
// a single "unavailable" signal by the pipeline.
type InsightProvider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// InsightPipeline obtains raw findings from the model and upgrades them into
// enhanced insights. When the model is unavailable it degrades to a
// deterministic local path; a failure here never propagates to the caller.
type InsightPipeline struct {
	provider InsightProvider
	enhancer InsightEnhancer
	cfg      config.PipelineConfig
	timeout  time.Duration
	logger   *zap.Logger
}

// NewInsightPipeline creates a new InsightPipeline
func NewInsightPipeline(provider InsightProvider, enhancer InsightEnhancer, cfg config.PipelineConfig, timeout time.Duration, logger *zap.Logger) *InsightPipeline {
	return &InsightPipeline{
		provider: provider,
		enhancer: enhancer,
		cfg:      cfg,
		timeout:  timeout,
		logger:   logger,
	}
}

const insightSystemPrompt = `You are a senior business analyst. Given a dataset sample and a ` +
	`presentation brief, extract the findings that matter for the stated decision. ` +
	`Respond with JSON only: {"insights":[{"type":"trend|anomaly|correlation|causation|opportunity|risk|novel",` +
	`"headline":"...","evidence":["..."],"confidence":0-100,"impact":"...","recommended_action":"..."}]}. ` +
	`Return 8 to 10 insights.`

// rawInsight is the wire shape the model is asked to produce.
type rawInsight struct {
	Type              string   `json:"type"`
	Headline          string   `json:"headline"`
	Evidence          []string `json:"evidence"`
	Confidence        int      `json:"confidence"`
	Impact            string   `json:"impact"`
	RecommendedAction string   `json:"recommended_action"`
}

type insightPayload struct {
	Insights []rawInsight `json:"insights"`
}

// Generate returns an ordered, never-empty sequence of enhanced insights.
func (p *InsightPipeline) Generate(ctx context.Context, ds *entities.Dataset, gctx entities.GenerationContext, profile entities.DataProfile) []entities.Insight {
	findings, err := p.fromModel(ctx, ds, gctx, profile)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("insight model unavailable, using local fallback", zap.Error(err))
		}
		return p.Fallback(ds, profile)
	}

	enhanced := p.enhancer.Enhance(findings, ds, gctx)
	// Contract: never more findings than went in.
	if len(enhanced) > len(findings) {
		enhanced = enhanced[:len(findings)]
	}
	if len(enhanced) == 0 {
		enhanced = findings
	}
	if len(enhanced) > p.cfg.MaxInsights {
		enhanced = enhanced[:p.cfg.MaxInsights]
	}
	if len(enhanced) == 0 {
		return p.Fallback(ds, profile)
	}
	return enhanced
}

// fromModel runs the primary, model-backed path.
func (p *InsightPipeline) fromModel(ctx context.Context, ds *entities.Dataset, gctx entities.GenerationContext, profile entities.DataProfile) ([]entities.Insight, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.provider.Complete(callCtx, insightSystemPrompt, p.buildPrompt(ds, gctx, profile))
	if err != nil {
		return nil, err
	}

	var payload insightPayload
	if err := unmarshalModelJSON(raw, &payload); err != nil {
		return nil, err
	}
	if len(payload.Insights) == 0 {
		return nil, fmt.Errorf("model returned no insights")
	}

	findings := make([]entities.Insight, 0, len(payload.Insights))
	for i, ri := range payload.Insights {
		t := entities.InsightType(ri.Type)
		if !t.IsValid() {
			t = entities.InsightNovel
		}
		findings = append(findings, entities.Insight{
			ID:                fmt.Sprintf("insight-%d", i+1),
			Type:              t,
			Headline:          strings.TrimSpace(ri.Headline),
			Evidence:          ri.Evidence,
			Confidence:        clampScore(ri.Confidence),
			Impact:            strings.TrimSpace(ri.Impact),
			RecommendedAction: strings.TrimSpace(ri.RecommendedAction),
		})
	}
	return findings, nil
}

// buildPrompt renders the dataset sample and brief into the user prompt.
func (p *InsightPipeline) buildPrompt(ds *entities.Dataset, gctx entities.GenerationContext, profile entities.DataProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dataset %q: %d rows, %d columns.\n", ds.Name, profile.RowCount, profile.ColumnCount)
	fmt.Fprintf(&b, "Audience: %s. Goal: %s. Industry: %s. Decision: %s.\n",
		gctx.Audience, gctx.Goal, gctx.Industry, gctx.Decision)
	fmt.Fprintf(&b, "Detected story type: %s.\n\n", profile.StoryType)

	cols := ds.Columns()
	b.WriteString("Sample rows:\n")
	b.WriteString(strings.Join(cols, " | "))
	b.WriteString("\n")
	limit := p.cfg.SampleRows
	if limit <= 0 {
		limit = 20
	}
	for i, row := range ds.Rows {
		if i == limit {
			break
		}
		cells := make([]string, len(cols))
		for j, col := range cols {
			cells[j] = stringify(row[col])
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

// Fallback derives insights deterministically from the profile alone. It is
// also used directly by the legacy pipeline. Always returns at least one
// insight, including for an empty dataset.
func (p *InsightPipeline) Fallback(ds *entities.Dataset, profile entities.DataProfile) []entities.Insight {
	if ds == nil || len(ds.Rows) == 0 {
		return []entities.Insight{{
			ID:                "insight-1",
			Type:              entities.InsightDataQuality,
			Headline:          "No data available for analysis",
			Evidence:          []string{"The dataset contains no rows"},
			Confidence:        100,
			Novelty:           0,
			Impact:            "Presentation will rely on qualitative framing only",
			RecommendedAction: "Collect data before presenting quantitative claims",
		}}
	}

	insights := []entities.Insight{{
		ID:         "insight-1",
		Type:       entities.InsightDataQuality,
		Headline:   fmt.Sprintf("Dataset covers %d records across %d dimensions", profile.RowCount, profile.ColumnCount),
		Evidence:   []string{fmt.Sprintf("%d rows sampled from %q", profile.RowCount, ds.Name)},
		Confidence: 95,
		Novelty:    10,
		Impact:     fmt.Sprintf("Coverage of %d records supports the analysis", profile.RowCount),
	}}

	if len(profile.NumericColumns) > 0 {
		insights = append(insights, entities.Insight{
			ID:         "insight-2",
			Type:       entities.InsightCorrelation,
			Headline:   fmt.Sprintf("%d measurable indicators available", len(profile.NumericColumns)),
			Evidence:   []string{fmt.Sprintf("Numeric columns: %s", strings.Join(profile.NumericColumns, ", "))},
			Confidence: 90,
			Novelty:    20,
			Impact:     "Quantitative comparisons are possible across these indicators",
		})
	}

	if profile.DateColumn != "" {
		insights = append(insights, entities.Insight{
			ID:         fmt.Sprintf("insight-%d", len(insights)+1),
			Type:       entities.InsightTrend,
			Headline:   fmt.Sprintf("Time dimension detected in %q, trend analysis applies", profile.DateColumn),
			Evidence:   []string{fmt.Sprintf("Column %q parses as calendar dates", profile.DateColumn)},
			Confidence: 85,
			Novelty:    30,
			Impact:     fmt.Sprintf("The data tells a %s story over time", profile.StoryType),
			RecommendedAction: "Lead with the trend chart when presenting",
		})
	}

	return insights
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
