package presenter

import (
	"encoding/json"

	"github.com/deckpilot-team/deckpilot/internal/adapter/dto/deck"
	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
)

// ToDeckSummaryResponse converts a DeckRecord entity to its list-view DTO
func ToDeckSummaryResponse(r *entities.DeckRecord) deck.DeckSummaryResponse {
	return deck.DeckSummaryResponse{
		ID:              r.ID,
		Title:           r.Title,
		DatasetName:     r.DatasetName,
		TemplateName:    r.TemplateName,
		Path:            r.Path,
		QualityScore:    r.QualityScore,
		EstimatedImpact: r.EstimatedImpact,
		SlideCount:      r.SlideCount,
		ChartCount:      r.ChartCount,
		CreatedAt:       r.CreatedAt,
	}
}

// ToDeckResponse converts a DeckRecord entity to its detail-view DTO,
// decoding the stored slide and coaching payloads
func ToDeckResponse(r *entities.DeckRecord) *deck.DeckResponse {
	if r == nil {
		return nil
	}

	response := &deck.DeckResponse{
		DeckSummaryResponse: ToDeckSummaryResponse(r),
	}

	if slides, err := r.DecodeSlides(); err == nil {
		response.Slides = slides
	}

	if len(r.Coaching) > 0 {
		var brief entities.CoachingBrief
		if err := json.Unmarshal(r.Coaching, &brief); err == nil {
			response.Coaching = &brief
		}
	}

	return response
}

// ToDeckListResponse converts a slice of DeckRecord entities to list DTOs
func ToDeckListResponse(records []*entities.DeckRecord) []deck.DeckSummaryResponse {
	responses := make([]deck.DeckSummaryResponse, len(records))
	for i, r := range records {
		responses[i] = ToDeckSummaryResponse(r)
	}
	return responses
}
