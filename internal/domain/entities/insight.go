package entities

// InsightType classifies what kind of finding an insight carries.
type InsightType string

const (
	InsightTrend       InsightType = "trend"
	InsightAnomaly     InsightType = "anomaly"
	InsightCorrelation InsightType = "correlation"
	InsightCausation   InsightType = "causation"
	InsightOpportunity InsightType = "opportunity"
	InsightRisk        InsightType = "risk"
	InsightNovel       InsightType = "novel"
	InsightDataQuality InsightType = "data_quality"
)

// IsValid checks if the insight type is one of the known values.
func (t InsightType) IsValid() bool {
	switch t {
	case InsightTrend, InsightAnomaly, InsightCorrelation, InsightCausation,
		InsightOpportunity, InsightRisk, InsightNovel, InsightDataQuality:
		return true
	}
	return false
}

// Insight is an enhanced finding: headline, supporting evidence, confidence and
// novelty scores, an impact statement and an optional recommended action.
// Produced by the insight pipeline, consumed read-only downstream.
type Insight struct {
	ID                string      `json:"id"`
	Type              InsightType `json:"type"`
	Headline          string      `json:"headline"`
	Evidence          []string    `json:"evidence,omitempty"`
	Confidence        int         `json:"confidence"` // 0-100
	Novelty           int         `json:"novelty"`    // 0-100
	Impact            string      `json:"impact,omitempty"`
	RecommendedAction string      `json:"recommended_action,omitempty"`
}

// Priority ranks insights for slide promotion; higher wins.
func (i Insight) Priority() int {
	return i.Confidence + i.Novelty
}
