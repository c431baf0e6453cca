package deckgen

import "github.com/deckpilot-team/deckpilot/internal/domain/entities"

// Catalog returns the fixed library of narrative templates. The slice is built
// fresh on every call so callers can never mutate shared catalog state.
func Catalog() []entities.DeckTemplate {
	return []entities.DeckTemplate{
		{
			Name:                 "Board Update",
			Keywords:             []string{"board", "update", "quarterly"},
			TotalDurationMinutes: 15,
			Slides: []entities.SlideBlueprint{
				{Type: entities.BlueprintTitle, Title: "Quarterly Business Review", DurationSeconds: 60, Layout: "title"},
				{Type: entities.BlueprintExecutiveSummary, Title: "Executive Summary", DurationSeconds: 120, Layout: "bullets",
					Guidelines: map[string]bool{"tellStory": true, "leadWithConclusion": true}},
				{Type: entities.BlueprintKPIDashboard, Title: "Key Metrics", DurationSeconds: 150, Layout: "dashboard",
					ChartHints: []string{"gauge"}, Guidelines: map[string]bool{"showTrend": true}},
				{Type: entities.BlueprintGrowthChart, Title: "[Industry] Performance Trend", DurationSeconds: 120, Layout: "chart-right",
					ChartHints: []string{"line"}, Guidelines: map[string]bool{"showTrend": true}},
				{Type: entities.BlueprintDeepDive, Title: "What Moved the Numbers", DurationSeconds: 180, Layout: "split",
					Guidelines: map[string]bool{"tellStory": true, "showEvidence": true}},
				{Type: entities.BlueprintRecommendations, Title: "Recommendations", DurationSeconds: 150, Layout: "bullets",
					Guidelines: map[string]bool{"actionable": true}},
				{Type: entities.BlueprintNextSteps, Title: "Next Steps", DurationSeconds: 120, Layout: "bullets"},
			},
		},
		{
			Name:                 "Investor Pitch",
			Keywords:             []string{"investor", "funding", "raise"},
			TotalDurationMinutes: 20,
			Slides: []entities.SlideBlueprint{
				{Type: entities.BlueprintTitle, Title: "Investment Opportunity", DurationSeconds: 60, Layout: "title"},
				{Type: entities.BlueprintExecutiveSummary, Title: "The Opportunity", DurationSeconds: 150, Layout: "bullets",
					Guidelines: map[string]bool{"tellStory": true, "leadWithConclusion": true}},
				{Type: entities.BlueprintGrowthChart, Title: "[Industry] Traction", DurationSeconds: 180, Layout: "chart-full",
					ChartHints: []string{"line"}, Guidelines: map[string]bool{"showTrend": true, "emphasizeGrowth": true}},
				{Type: entities.BlueprintKPIDashboard, Title: "Unit Economics", DurationSeconds: 180, Layout: "dashboard",
					ChartHints: []string{"gauge"}},
				{Type: entities.BlueprintComparison, Title: "[Industry] Competitive Position", DurationSeconds: 150, Layout: "split",
					ChartHints: []string{"bar"}, Guidelines: map[string]bool{"showComparison": true}},
				{Type: entities.BlueprintDeepDive, Title: "Why Now", DurationSeconds: 180, Layout: "split",
					Guidelines: map[string]bool{"tellStory": true, "showEvidence": true}},
				{Type: entities.BlueprintRecommendations, Title: "Use of Funds", DurationSeconds: 150, Layout: "bullets",
					Guidelines: map[string]bool{"actionable": true}},
				{Type: entities.BlueprintNextSteps, Title: "The Ask", DurationSeconds: 150, Layout: "bullets"},
			},
		},
		{
			Name:                 "Sales Pitch",
			Keywords:             []string{"sales", "prospect", "customer"},
			TotalDurationMinutes: 10,
			Slides: []entities.SlideBlueprint{
				{Type: entities.BlueprintTitle, Title: "Partnership Proposal", DurationSeconds: 45, Layout: "title"},
				{Type: entities.BlueprintExecutiveSummary, Title: "Why This Matters to You", DurationSeconds: 120, Layout: "bullets",
					Guidelines: map[string]bool{"tellStory": true}},
				{Type: entities.BlueprintComparison, Title: "[Industry] Benchmark", DurationSeconds: 120, Layout: "split",
					ChartHints: []string{"bar"}, Guidelines: map[string]bool{"showComparison": true}},
				{Type: entities.BlueprintDeepDive, Title: "The Evidence", DurationSeconds: 150, Layout: "split",
					Guidelines: map[string]bool{"showEvidence": true}},
				{Type: entities.BlueprintRecommendations, Title: "Proposed Plan", DurationSeconds: 165, Layout: "bullets",
					Guidelines: map[string]bool{"actionable": true}},
			},
		},
		{
			Name:                 "Data Story",
			Keywords:             []string{"analyze", "understand", "explore"},
			TotalDurationMinutes: 25,
			Slides: []entities.SlideBlueprint{
				{Type: entities.BlueprintTitle, Title: "What the Data Tells Us", DurationSeconds: 60, Layout: "title"},
				{Type: entities.BlueprintExecutiveSummary, Title: "Headline Findings", DurationSeconds: 150, Layout: "bullets",
					Guidelines: map[string]bool{"tellStory": true}},
				{Type: entities.BlueprintKPIDashboard, Title: "The Numbers at a Glance", DurationSeconds: 180, Layout: "dashboard",
					ChartHints: []string{"gauge"}},
				{Type: entities.BlueprintGrowthChart, Title: "[Industry] Over Time", DurationSeconds: 180, Layout: "chart-full",
					ChartHints: []string{"line"}, Guidelines: map[string]bool{"showTrend": true}},
				{Type: entities.BlueprintComparison, Title: "Segment Comparison", DurationSeconds: 180, Layout: "split",
					ChartHints: []string{"bar"}, Guidelines: map[string]bool{"showComparison": true}},
				{Type: entities.BlueprintDeepDive, Title: "The Standout Finding", DurationSeconds: 210, Layout: "split",
					Guidelines: map[string]bool{"tellStory": true, "showEvidence": true}},
				{Type: entities.BlueprintDeepDive, Title: "A Second Look", DurationSeconds: 180, Layout: "split",
					Guidelines: map[string]bool{"showEvidence": true}},
				{Type: entities.BlueprintRecommendations, Title: "What We Should Do", DurationSeconds: 180, Layout: "bullets",
					Guidelines: map[string]bool{"actionable": true}},
				{Type: entities.BlueprintNextSteps, Title: "Open Questions", DurationSeconds: 180, Layout: "bullets"},
			},
		},
	}
}
