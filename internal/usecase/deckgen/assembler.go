package deckgen

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
)

// Fixed visual layout applied to every slide after content synthesis.
const (
	titleX, titleY          = 100, 100
	titleWidth, titleHeight = 800, 60
	textX, textStartY       = 100, 200
	textWidth, textHeight   = 800, 40
	textStepY               = 50
	chartX, chartStartY     = 500, 300
	chartWidth, chartHeight = 400, 220
	chartStepY              = 250
)

const (
	maxSummaryHeadlines  = 4
	maxKPIColumns        = 4
	maxGaugeCharts       = 3
	maxEvidenceLines     = 3
	maxRecommendations   = 3
	maxTrendPoints       = 12
	maxComparisonGroups  = 5
)

// DeckAssembler walks the adapted template's blueprints and synthesizes slide
// content from the enhanced insights and the dataset. Output is a pure
// function of its inputs: two runs over the same data yield identical slides.
type DeckAssembler struct{}

// NewDeckAssembler creates a new DeckAssembler
func NewDeckAssembler() *DeckAssembler {
	return &DeckAssembler{}
}

// Assemble produces the deck title and ordered slides. The quality score is
// attached later by the scorer.
func (a *DeckAssembler) Assemble(tmpl entities.DeckTemplate, insights []entities.Insight, ds *entities.Dataset, gctx entities.GenerationContext, profile entities.DataProfile) *entities.Deck {
	deck := &entities.Deck{
		Title:  deckTitle(gctx.Industry, gctx.Goal, ds.Name),
		Slides: make([]entities.Slide, 0, len(tmpl.Slides)),
	}

	for i, bp := range tmpl.Slides {
		content := a.synthesize(bp, insights, ds, gctx, profile, deck.Title)
		slide := entities.Slide{
			ID:              fmt.Sprintf("slide-%d", i+1),
			Type:            bp.Type,
			Title:           content.title,
			DurationSeconds: bp.DurationSeconds,
		}
		slide.Elements = layout(content)
		deck.Slides = append(deck.Slides, slide)
	}

	return deck
}

// slideContent is the intermediate, pre-layout form of one slide.
type slideContent struct {
	title  string
	lines  []string
	charts []entities.ChartSpec
}

// synthesize dispatches on blueprint type and fills content from the insights
// and the dataset.
func (a *DeckAssembler) synthesize(bp entities.SlideBlueprint, insights []entities.Insight, ds *entities.Dataset, gctx entities.GenerationContext, profile entities.DataProfile, deckTitle string) slideContent {
	switch bp.Type {
	case entities.BlueprintTitle:
		return a.titleSlide(bp, gctx, deckTitle)
	case entities.BlueprintExecutiveSummary:
		return a.executiveSummary(bp, insights)
	case entities.BlueprintKPIDashboard:
		return a.kpiDashboard(bp, ds, profile)
	case entities.BlueprintDeepDive:
		return a.deepDive(bp, insights)
	case entities.BlueprintRecommendations:
		return a.recommendations(bp, insights)
	case entities.BlueprintGrowthChart:
		return a.growthChart(bp, ds, profile)
	case entities.BlueprintComparison:
		return a.comparison(bp, ds, profile)
	case entities.BlueprintNextSteps:
		return a.nextSteps(bp, gctx)
	default:
		return slideContent{
			title: bp.Title,
			lines: []string{fmt.Sprintf("Content for %s section", bp.Type)},
		}
	}
}

func (a *DeckAssembler) titleSlide(bp entities.SlideBlueprint, gctx entities.GenerationContext, deckTitle string) slideContent {
	c := slideContent{title: deckTitle}
	if gctx.Audience != "" {
		c.lines = append(c.lines, fmt.Sprintf("Prepared for: %s", gctx.Audience))
	}
	if gctx.Decision != "" {
		c.lines = append(c.lines, fmt.Sprintf("Decision at hand: %s", gctx.Decision))
	}
	if len(c.lines) == 0 {
		c.lines = append(c.lines, bp.Title)
	}
	return c
}

func (a *DeckAssembler) executiveSummary(bp entities.SlideBlueprint, insights []entities.Insight) slideContent {
	c := slideContent{title: bp.Title}
	for i, in := range insights {
		if i == maxSummaryHeadlines {
			break
		}
		c.lines = append(c.lines, fmt.Sprintf("%d. %s", i+1, in.Headline))
	}
	if len(c.lines) == 0 {
		c.lines = append(c.lines, "No findings available")
	}
	return c
}

func (a *DeckAssembler) kpiDashboard(bp entities.SlideBlueprint, ds *entities.Dataset, profile entities.DataProfile) slideContent {
	c := slideContent{title: bp.Title}
	metrics := metricColumns(profile)

	for i, col := range metrics {
		if i == maxKPIColumns {
			break
		}
		avg := columnAverage(ds, col)
		c.lines = append(c.lines, fmt.Sprintf("%s: avg %.2f", col, avg))
	}
	for i, col := range metrics {
		if i == maxGaugeCharts {
			break
		}
		c.charts = append(c.charts, entities.ChartSpec{
			Type:  "gauge",
			Title: col,
			Data:  map[string]float64{"value": columnAverage(ds, col)},
		})
	}
	if len(c.lines) == 0 {
		c.lines = append(c.lines, "No numeric indicators detected")
	}
	return c
}

// deepDive promotes the highest-priority insight to the slide title.
func (a *DeckAssembler) deepDive(bp entities.SlideBlueprint, insights []entities.Insight) slideContent {
	best := topInsight(insights)
	if best == nil {
		return slideContent{title: bp.Title, lines: []string{"No findings available"}}
	}
	c := slideContent{title: best.Headline}
	for i, ev := range best.Evidence {
		if i == maxEvidenceLines {
			break
		}
		c.lines = append(c.lines, ev)
	}
	if best.Impact != "" {
		c.lines = append(c.lines, fmt.Sprintf("Impact: %s", best.Impact))
	}
	if len(c.lines) == 0 {
		c.lines = append(c.lines, best.Headline)
	}
	return c
}

func (a *DeckAssembler) recommendations(bp entities.SlideBlueprint, insights []entities.Insight) slideContent {
	c := slideContent{title: bp.Title}
	for i, in := range insights {
		if i == maxRecommendations {
			break
		}
		action := in.RecommendedAction
		if action == "" {
			action = fmt.Sprintf("Investigate %s", in.Headline)
		}
		c.lines = append(c.lines, fmt.Sprintf("%d. %s", i+1, action))
	}
	if len(c.lines) == 0 {
		c.lines = append(c.lines, "1. Gather more data before acting")
	}
	return c
}

func (a *DeckAssembler) growthChart(bp entities.SlideBlueprint, ds *entities.Dataset, profile entities.DataProfile) slideContent {
	c := slideContent{title: bp.Title}
	metric := firstMetricColumn(profile)
	if profile.DateColumn == "" || metric == "" {
		c.lines = append(c.lines, "No time dimension detected in this dataset")
		return c
	}

	rows := sortedByDate(ds, profile.DateColumn)
	data := make(map[string]float64)
	for i, row := range rows {
		if i == maxTrendPoints {
			break
		}
		v, ok := toFloat(row[metric])
		if !ok {
			continue
		}
		data[stringify(row[profile.DateColumn])] = v
	}

	c.charts = append(c.charts, entities.ChartSpec{
		Type:  "line",
		Title: fmt.Sprintf("%s over time", metric),
		Data:  data,
	})
	c.lines = append(c.lines, fmt.Sprintf("%s trajectory: %s", metric, profile.StoryType))
	return c
}

func (a *DeckAssembler) comparison(bp entities.SlideBlueprint, ds *entities.Dataset, profile entities.DataProfile) slideContent {
	c := slideContent{title: bp.Title}
	col := firstCategoricalColumn(ds)
	if col == "" {
		c.lines = append(c.lines, "No grouping dimension detected in this dataset")
		return c
	}

	counts := make(map[string]float64)
	for _, row := range ds.Rows {
		if v, present := row[col]; present {
			counts[stringify(v)]++
		}
	}
	// Keep the dominant groups only, deterministically ordered.
	type group struct {
		key string
		n   float64
	}
	groups := make([]group, 0, len(counts))
	for k, n := range counts {
		groups = append(groups, group{k, n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].n != groups[j].n {
			return groups[i].n > groups[j].n
		}
		return groups[i].key < groups[j].key
	})
	data := make(map[string]float64)
	for i, g := range groups {
		if i == maxComparisonGroups {
			break
		}
		data[g.key] = g.n
	}

	c.charts = append(c.charts, entities.ChartSpec{
		Type:  "bar",
		Title: fmt.Sprintf("Breakdown by %s", col),
		Data:  data,
	})
	c.lines = append(c.lines, fmt.Sprintf("%d groups compared across %q", len(counts), col))
	return c
}

func (a *DeckAssembler) nextSteps(bp entities.SlideBlueprint, gctx entities.GenerationContext) slideContent {
	c := slideContent{title: bp.Title}
	steps := []string{
		"Align on the findings presented today",
		"Assign owners for each recommendation",
	}
	if gctx.Decision != "" {
		steps = append(steps, fmt.Sprintf("Decide: %s", gctx.Decision))
	} else {
		steps = append(steps, "Schedule a follow-up review")
	}
	for i, s := range steps {
		c.lines = append(c.lines, fmt.Sprintf("%d. %s", i+1, s))
	}
	return c
}

// layout applies the fixed visual grid: one title element, text lines stacked
// at 50px steps from y=200, charts stacked at 250px steps from y=300.
func layout(content slideContent) []entities.SlideElement {
	elements := []entities.SlideElement{{
		Type:   entities.ElementTitle,
		X:      titleX,
		Y:      titleY,
		Width:  titleWidth,
		Height: titleHeight,
		Text:   content.title,
	}}

	for i, line := range content.lines {
		elements = append(elements, entities.SlideElement{
			Type:   entities.ElementText,
			X:      textX,
			Y:      textStartY + i*textStepY,
			Width:  textWidth,
			Height: textHeight,
			Text:   line,
		})
	}

	for i := range content.charts {
		chart := content.charts[i]
		elements = append(elements, entities.SlideElement{
			Type:   entities.ElementChart,
			X:      chartX,
			Y:      chartStartY + i*chartStepY,
			Width:  chartWidth,
			Height: chartHeight,
			Chart:  &chart,
		})
	}

	return elements
}

// topInsight returns the highest-priority insight, earlier insights winning
// ties.
func topInsight(insights []entities.Insight) *entities.Insight {
	if len(insights) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(insights); i++ {
		if insights[i].Priority() > insights[best].Priority() {
			best = i
		}
	}
	return &insights[best]
}

// metricColumns filters the date column out of the numeric columns.
func metricColumns(profile entities.DataProfile) []string {
	var out []string
	for _, col := range profile.NumericColumns {
		if col != profile.DateColumn {
			out = append(out, col)
		}
	}
	return out
}

func columnAverage(ds *entities.Dataset, col string) float64 {
	sum, n := 0.0, 0
	for _, row := range ds.Rows {
		if v, ok := toFloat(row[col]); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// firstCategoricalColumn returns the first column with grouping potential,
// mirroring the profiler's categorical criterion.
func firstCategoricalColumn(ds *entities.Dataset) string {
	for _, col := range ds.Columns() {
		seen := make(map[string]struct{})
		n := 0
		for _, row := range ds.Rows {
			if n == categoricalSampleSize {
				break
			}
			if v, present := row[col]; present {
				seen[stringify(v)] = struct{}{}
				n++
			}
		}
		if n == 0 {
			continue
		}
		ratio := float64(len(seen)) / float64(n)
		if ratio > 1.0/float64(categoricalSampleSize) && ratio < 0.8 && len(seen) > 1 {
			return col
		}
	}
	return ""
}

// deckTitles are the candidate title templates; the pick is a pure function
// of (industry, goal, dataset name).
var deckTitles = []string{
	"%s Insights: %s",
	"The %s Story: %s",
	"%s Performance Review: %s",
	"Data-Driven %s: %s",
}

func deckTitle(industry, goal, datasetName string) string {
	ind := strings.TrimSpace(industry)
	if ind == "" {
		ind = "Business"
	}
	g := strings.TrimSpace(goal)
	if g == "" {
		g = datasetName
	}
	if g == "" {
		g = "Key Findings"
	}

	h := fnv.New32a()
	h.Write([]byte(industry + "|" + goal + "|" + datasetName))
	tpl := deckTitles[int(h.Sum32())%len(deckTitles)]
	return fmt.Sprintf(tpl, titleCase(ind), titleCase(g))
}

// titleCase capitalizes the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
