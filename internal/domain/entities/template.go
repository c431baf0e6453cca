package entities

// BlueprintType tags a slide blueprint with its generation recipe.
type BlueprintType string

const (
	BlueprintTitle            BlueprintType = "title"
	BlueprintExecutiveSummary BlueprintType = "executiveSummary"
	BlueprintKPIDashboard     BlueprintType = "kpiDashboard"
	BlueprintDeepDive         BlueprintType = "deepDive"
	BlueprintRecommendations  BlueprintType = "recommendations"
	BlueprintComparison       BlueprintType = "comparison"
	BlueprintGrowthChart      BlueprintType = "growthChart"
	BlueprintNextSteps        BlueprintType = "nextSteps"
)

// SlideBlueprint is one slide's generation recipe within a template: type,
// timing, layout and content-guideline switches, not yet filled with content.
type SlideBlueprint struct {
	Type            BlueprintType   `json:"type"`
	Title           string          `json:"title"`
	DurationSeconds int             `json:"duration_seconds"`
	Layout          string          `json:"layout"`
	ChartHints      []string        `json:"chart_hints,omitempty"`
	Guidelines      map[string]bool `json:"guidelines,omitempty"`
}

// Clone returns a deep copy so adaptation never touches catalog data.
func (b SlideBlueprint) Clone() SlideBlueprint {
	c := b
	if b.ChartHints != nil {
		c.ChartHints = make([]string, len(b.ChartHints))
		copy(c.ChartHints, b.ChartHints)
	}
	if b.Guidelines != nil {
		c.Guidelines = make(map[string]bool, len(b.Guidelines))
		for k, v := range b.Guidelines {
			c.Guidelines[k] = v
		}
	}
	return c
}

// DeckTemplate is an ordered slide blueprint sequence from the catalog.
type DeckTemplate struct {
	Name                 string           `json:"name"`
	Keywords             []string         `json:"keywords,omitempty"` // audience/goal terms this template targets
	TotalDurationMinutes int              `json:"total_duration_minutes"`
	Slides               []SlideBlueprint `json:"slides"`
}

// Clone returns a deep copy of the template, owned by the caller.
func (t DeckTemplate) Clone() DeckTemplate {
	c := t
	c.Keywords = append([]string(nil), t.Keywords...)
	c.Slides = make([]SlideBlueprint, len(t.Slides))
	for i, s := range t.Slides {
		c.Slides[i] = s.Clone()
	}
	return c
}

// HasSlide reports whether the template contains a blueprint of the given type.
func (t DeckTemplate) HasSlide(bt BlueprintType) bool {
	for _, s := range t.Slides {
		if s.Type == bt {
			return true
		}
	}
	return false
}
