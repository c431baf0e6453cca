package deckgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
)

// CoachingProvider is the language-model capability used for coaching briefs.
type CoachingProvider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// CoachingGenerator derives a short presenter-coaching brief from the finished
// deck. It never fails: any provider problem resolves to the static brief.
type CoachingGenerator struct {
	provider CoachingProvider
	timeout  time.Duration
	logger   *zap.Logger
}

// NewCoachingGenerator creates a new CoachingGenerator
func NewCoachingGenerator(provider CoachingProvider, timeout time.Duration, logger *zap.Logger) *CoachingGenerator {
	return &CoachingGenerator{provider: provider, timeout: timeout, logger: logger}
}

const coachingSystemPrompt = `You are a presentation coach. Given a slide deck outline and its ` +
	`audience, produce delivery advice. Respond with JSON only: {"key_tips":["..."],` +
	`"opening_hook":"...","tough_questions":["..."],"closing_statement":"..."}.`

type coachingPayload struct {
	KeyTips          []string `json:"key_tips"`
	OpeningHook      string   `json:"opening_hook"`
	ToughQuestions   []string `json:"tough_questions"`
	ClosingStatement string   `json:"closing_statement"`
}

// Generate returns a coaching brief for the deck. Never returns an error.
func (g *CoachingGenerator) Generate(ctx context.Context, deck *entities.Deck, gctx entities.GenerationContext) *entities.CoachingBrief {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.provider.Complete(callCtx, coachingSystemPrompt, g.buildPrompt(deck, gctx))
	if err != nil {
		if g.logger != nil {
			g.logger.Warn("coaching model unavailable, using static brief", zap.Error(err))
		}
		return g.StaticBrief(gctx)
	}

	var payload coachingPayload
	if err := unmarshalModelJSON(raw, &payload); err != nil {
		if g.logger != nil {
			g.logger.Warn("coaching response unparseable, using static brief", zap.Error(err))
		}
		return g.StaticBrief(gctx)
	}
	if len(payload.KeyTips) == 0 || payload.OpeningHook == "" {
		return g.StaticBrief(gctx)
	}

	return &entities.CoachingBrief{
		KeyTips:          payload.KeyTips,
		OpeningHook:      payload.OpeningHook,
		ToughQuestions:   payload.ToughQuestions,
		ClosingStatement: payload.ClosingStatement,
	}
}

func (g *CoachingGenerator) buildPrompt(deck *entities.Deck, gctx entities.GenerationContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Deck %q for audience %q, goal %q, %d minutes.\nSlides:\n",
		deck.Title, gctx.Audience, gctx.Goal, gctx.TimeLimit)
	for _, s := range deck.Slides {
		fmt.Fprintf(&b, "- %s: %s\n", s.Type, s.Title)
	}
	return b.String()
}

// StaticBrief is the deterministic fallback, also used directly by the legacy
// pipeline.
func (g *CoachingGenerator) StaticBrief(gctx entities.GenerationContext) *entities.CoachingBrief {
	audience := gctx.Audience
	if audience == "" {
		audience = "your audience"
	}
	return &entities.CoachingBrief{
		KeyTips: []string{
			"Open with the conclusion, then support it with the data",
			"Pause after each chart and let the numbers land",
			"Keep one message per slide and cut everything else",
		},
		OpeningHook:      fmt.Sprintf("Start with the single number that %s cares about most", audience),
		ToughQuestions: []string{
			"How confident are we in this data?",
			"What would change your recommendation?",
			"What are the risks if we act on this now?",
		},
		ClosingStatement: "End by restating the decision you are asking for and the first step to take this week",
	}
}
