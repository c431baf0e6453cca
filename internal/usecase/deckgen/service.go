package deckgen

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/pkg/config"
	"github.com/deckpilot-team/deckpilot/pkg/runcontext"
)

// Service is the single entry point of the deck-generation pipeline.
type Service interface {
	GenerateDeck(ctx context.Context, ds *entities.Dataset, gctx entities.GenerationContext) (*entities.GenerationResult, error)
}

// PipelineOrchestrator runs the staged pipeline: profile, select, insights,
// assemble, score, coach. The enhanced path is attempted first; any failure
// inside it, including a panic, falls back to the legacy path. Only input
// validation can fail the call itself.
type PipelineOrchestrator struct {
	profiler  *DataProfiler
	selector  *TemplateSelector
	insights  *InsightPipeline
	assembler *DeckAssembler
	scorer    *QualityScorer
	coaching  *CoachingGenerator
	cfg       config.PipelineConfig
	logger    *zap.Logger
}

// NewPipelineOrchestrator creates a new PipelineOrchestrator
func NewPipelineOrchestrator(
	profiler *DataProfiler,
	selector *TemplateSelector,
	insights *InsightPipeline,
	assembler *DeckAssembler,
	scorer *QualityScorer,
	coaching *CoachingGenerator,
	cfg config.PipelineConfig,
	logger *zap.Logger,
) *PipelineOrchestrator {
	return &PipelineOrchestrator{
		profiler:  profiler,
		selector:  selector,
		insights:  insights,
		assembler: assembler,
		scorer:    scorer,
		coaching:  coaching,
		cfg:       cfg,
		logger:    logger,
	}
}

// NewDefaultService wires the orchestrator with the stock components. Both
// providers may be the same client.
func NewDefaultService(insightProvider InsightProvider, coachingProvider CoachingProvider, cfg config.Config, logger *zap.Logger) Service {
	timeout := cfg.LLM.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return NewPipelineOrchestrator(
		NewDataProfiler(),
		NewTemplateSelector(cfg.Pipeline),
		NewInsightPipeline(insightProvider, NewHeuristicEnhancer(), cfg.Pipeline, timeout, logger),
		NewDeckAssembler(),
		NewQualityScorer(cfg.Pipeline),
		NewCoachingGenerator(coachingProvider, timeout, logger),
		cfg.Pipeline,
		logger,
	)
}

// GenerateDeck validates the request and runs the pipeline. A nil dataset or a
// negative time limit is an input error; everything past validation succeeds.
func (o *PipelineOrchestrator) GenerateDeck(ctx context.Context, ds *entities.Dataset, gctx entities.GenerationContext) (*entities.GenerationResult, error) {
	if ds == nil || ds.Rows == nil {
		return nil, entities.ErrDatasetMissing
	}
	if gctx.TimeLimit < 0 {
		return nil, entities.ErrInvalidTimeLimit
	}
	if gctx.TimeLimit == 0 {
		gctx.TimeLimit = o.cfg.DefaultTimeLimit
	}

	runCtx, cancel := runcontext.Begin(ctx, string(entities.PathEnhanced))
	defer cancel()

	var result *entities.GenerationResult
	err := runcontext.RunGuarded(runCtx, func(ctx context.Context) error {
		result = o.runEnhanced(ctx, ds, gctx)
		return nil
	})
	if err != nil {
		if o.logger != nil {
			o.logger.Warn("enhanced pipeline failed, falling back to legacy",
				zap.String("run_id", runcontext.GetRunID(runCtx).String()),
				zap.Error(err))
		}
		result = o.runLegacy(ds, gctx)
	}

	if o.logger != nil {
		o.logger.Info("deck generated",
			zap.String("run_id", runcontext.GetRunID(runCtx).String()),
			zap.String("path", string(result.PathUsed)),
			zap.Int("slides", result.Metadata.SlideCount),
			zap.Float64("quality", result.Metadata.QualityScore),
			zap.Duration("elapsed", runcontext.Elapsed(runCtx)))
	}

	return result, nil
}

// runEnhanced is the primary path: model-backed insights and coaching.
func (o *PipelineOrchestrator) runEnhanced(ctx context.Context, ds *entities.Dataset, gctx entities.GenerationContext) *entities.GenerationResult {
	profile := o.profiler.Profile(ds)
	tmpl := o.selector.Select(Catalog(), profile, gctx)
	insights := o.insights.Generate(ctx, ds, gctx, profile)
	deck := o.assembler.Assemble(tmpl, insights, ds, gctx, profile)

	score, impact := o.scorer.Score(deck, insights, tmpl, gctx)
	deck.QualityScore = score
	deck.EstimatedImpact = impact

	brief := o.coaching.Generate(ctx, deck, gctx)

	return o.buildResult(deck, brief, tmpl, profile, entities.PathEnhanced)
}

// runLegacy is the deterministic fallback: same structural stages, local
// insights and the static coaching brief, no model calls.
func (o *PipelineOrchestrator) runLegacy(ds *entities.Dataset, gctx entities.GenerationContext) *entities.GenerationResult {
	profile := o.profiler.Profile(ds)
	tmpl := o.selector.Select(Catalog(), profile, gctx)
	insights := o.insights.Fallback(ds, profile)
	deck := o.assembler.Assemble(tmpl, insights, ds, gctx, profile)

	score, impact := o.scorer.Score(deck, insights, tmpl, gctx)
	deck.QualityScore = score
	deck.EstimatedImpact = impact

	brief := o.coaching.StaticBrief(gctx)

	return o.buildResult(deck, brief, tmpl, profile, entities.PathLegacy)
}

func (o *PipelineOrchestrator) buildResult(deck *entities.Deck, brief *entities.CoachingBrief, tmpl entities.DeckTemplate, profile entities.DataProfile, path entities.GenerationPath) *entities.GenerationResult {
	return &entities.GenerationResult{
		Deck:     deck,
		Coaching: brief,
		Metadata: entities.GenerationMetadata{
			QualityScore:    deck.QualityScore,
			EstimatedImpact: deck.EstimatedImpact.Level,
			SlideCount:      len(deck.Slides),
			ChartCount:      deck.ChartCount(),
			TemplateName:    tmpl.Name,
			StoryType:       profile.StoryType,
		},
		PathUsed: path,
	}
}
