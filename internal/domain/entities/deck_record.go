package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeckRecord is the persisted form of a generation result. Slides, coaching and
// metadata are stored as JSONB so the rendering UI can consume them unchanged.
type DeckRecord struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	DatasetName string    `json:"dataset_name" gorm:"type:varchar(255);not null"`
	DatasetHash string    `json:"dataset_hash" gorm:"type:varchar(64);index"`

	TemplateName    string  `json:"template_name" gorm:"type:varchar(100)"`
	Path            string  `json:"path" gorm:"type:varchar(16);not null"`
	QualityScore    float64 `json:"quality_score" gorm:"not null"`
	EstimatedImpact string  `json:"estimated_impact" gorm:"type:varchar(16)"`
	SlideCount      int     `json:"slide_count"`
	ChartCount      int     `json:"chart_count"`

	Slides   datatypes.JSON `json:"slides" gorm:"type:jsonb;not null"`
	Coaching datatypes.JSON `json:"coaching,omitempty" gorm:"type:jsonb"`
	Metadata datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for DeckRecord
func (DeckRecord) TableName() string {
	return "decks"
}

// NewDeckRecord builds a persistable record from a finished generation result.
func NewDeckRecord(userID uuid.UUID, datasetName, datasetHash string, result *GenerationResult) (*DeckRecord, error) {
	slides, err := json.Marshal(result.Deck.Slides)
	if err != nil {
		return nil, err
	}
	coaching, err := json.Marshal(result.Coaching)
	if err != nil {
		return nil, err
	}
	metadata, err := json.Marshal(result.Metadata)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &DeckRecord{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           result.Deck.Title,
		DatasetName:     datasetName,
		DatasetHash:     datasetHash,
		TemplateName:    result.Metadata.TemplateName,
		Path:            string(result.PathUsed),
		QualityScore:    result.Deck.QualityScore,
		EstimatedImpact: string(result.Deck.EstimatedImpact.Level),
		SlideCount:      len(result.Deck.Slides),
		ChartCount:      result.Deck.ChartCount(),
		Slides:          slides,
		Coaching:        coaching,
		Metadata:        metadata,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// DecodeSlides unmarshals the stored slide payload.
func (r *DeckRecord) DecodeSlides() ([]Slide, error) {
	var slides []Slide
	if err := json.Unmarshal(r.Slides, &slides); err != nil {
		return nil, err
	}
	return slides, nil
}
