package deck

import (
	"time"

	"github.com/google/uuid"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
)

// DeckSummaryResponse is the list-view shape of a stored deck
type DeckSummaryResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	DatasetName     string    `json:"dataset_name"`
	TemplateName    string    `json:"template_name"`
	Path            string    `json:"path"`
	QualityScore    float64   `json:"quality_score"`
	EstimatedImpact string    `json:"estimated_impact"`
	SlideCount      int       `json:"slide_count"`
	ChartCount      int       `json:"chart_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// DeckResponse is the detail-view shape including the full slide payload
type DeckResponse struct {
	DeckSummaryResponse
	Slides   []entities.Slide        `json:"slides"`
	Coaching *entities.CoachingBrief `json:"coaching,omitempty"`
}

// GenerateDeckResponse is the payload returned by POST /decks/generate
type GenerateDeckResponse struct {
	Deck   *DeckResponse `json:"deck"`
	Reused bool          `json:"reused"`
}

// ExportDeckResponse is the payload returned by POST /decks/:id/export
type ExportDeckResponse struct {
	DownloadURL string `json:"download_url"`
	ExpiresIn   string `json:"expires_in"`
}
