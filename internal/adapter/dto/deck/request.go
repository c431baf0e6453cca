package deck

import "github.com/deckpilot-team/deckpilot/internal/domain/entities"

// GenerateDeckRequest is the payload for POST /decks/generate
type GenerateDeckRequest struct {
	DatasetName string         `json:"dataset_name" validate:"required,max=255"`
	Rows        []entities.Row `json:"rows" validate:"required"`

	Audience  string `json:"audience" validate:"max=255"`
	Goal      string `json:"goal" validate:"max=500"`
	TimeLimit int    `json:"time_limit" validate:"gte=0,lte=480"`
	Industry  string `json:"industry" validate:"max=255"`
	Decision  string `json:"decision" validate:"max=500"`
}

// ToGenerationContext maps the request brief to the domain context
func (r *GenerateDeckRequest) ToGenerationContext() entities.GenerationContext {
	return entities.GenerationContext{
		Audience:  r.Audience,
		Goal:      r.Goal,
		TimeLimit: r.TimeLimit,
		Industry:  r.Industry,
		Decision:  r.Decision,
	}
}

// ListDecksRequest is the query shape for GET /decks
type ListDecksRequest struct {
	Page     int `query:"page" validate:"gte=0"`
	PageSize int `query:"page_size" validate:"gte=0,lte=100"`
}
