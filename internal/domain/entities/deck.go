package entities

// ElementType is the kind of positioned content unit on a slide.
type ElementType string

const (
	ElementTitle   ElementType = "title"
	ElementBullets ElementType = "bullets"
	ElementChart   ElementType = "chart"
	ElementText    ElementType = "text"
)

// ChartSpec describes one chart to be rendered by the external renderers.
type ChartSpec struct {
	Type  string             `json:"type"`
	Title string             `json:"title"`
	Data  map[string]float64 `json:"data"`
}

// SlideElement is a positioned content unit. Immutable once assembly completes.
type SlideElement struct {
	Type   ElementType `json:"type"`
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Text   string      `json:"text,omitempty"`
	Chart  *ChartSpec  `json:"chart,omitempty"`
}

// Slide belongs to exactly one deck. IDs are positional so that two runs over
// the same input produce bit-identical slides.
type Slide struct {
	ID              string         `json:"id"`
	Type            BlueprintType  `json:"type"`
	Title           string         `json:"title"`
	Elements        []SlideElement `json:"elements"`
	DurationSeconds int            `json:"duration_seconds"`
}

// ImpactLevel is the qualitative business-impact estimate of a deck.
type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "High"
	ImpactMedium ImpactLevel = "Medium"
	ImpactLow    ImpactLevel = "Low"
)

// ImpactEstimate pairs the level with a short rationale.
type ImpactEstimate struct {
	Level     ImpactLevel `json:"level"`
	Rationale string      `json:"rationale"`
}

// Deck is the terminal artifact of one orchestration run. QualityScore is
// computed last and attached once; everything else is immutable after assembly.
type Deck struct {
	Title           string         `json:"title"`
	Slides          []Slide        `json:"slides"`
	QualityScore    float64        `json:"quality_score"`
	EstimatedImpact ImpactEstimate `json:"estimated_impact"`
}

// ChartCount counts chart elements across all slides.
func (d *Deck) ChartCount() int {
	n := 0
	for _, s := range d.Slides {
		for _, el := range s.Elements {
			if el.Type == ElementChart {
				n++
			}
		}
	}
	return n
}

// CoachingBrief is the presenter-coaching output derived from a finished deck.
type CoachingBrief struct {
	KeyTips          []string `json:"key_tips"`
	OpeningHook      string   `json:"opening_hook"`
	ToughQuestions   []string `json:"tough_questions"`
	ClosingStatement string   `json:"closing_statement"`
}

// GenerationPath records which pipeline variant produced a result.
type GenerationPath string

const (
	PathEnhanced GenerationPath = "enhanced"
	PathLegacy   GenerationPath = "legacy"
)

// GenerationMetadata is the persistence handoff summary of a run.
type GenerationMetadata struct {
	QualityScore    float64     `json:"quality_score"`
	EstimatedImpact ImpactLevel `json:"estimated_impact"`
	SlideCount      int         `json:"slide_count"`
	ChartCount      int         `json:"chart_count"`
	TemplateName    string      `json:"template_name"`
	StoryType       StoryType   `json:"story_type"`
}

// GenerationResult is the full payload returned to the caller for one run.
type GenerationResult struct {
	Deck     *Deck              `json:"deck"`
	Coaching *CoachingBrief     `json:"coaching"`
	Metadata GenerationMetadata `json:"metadata"`
	PathUsed GenerationPath     `json:"path_used"`
}
