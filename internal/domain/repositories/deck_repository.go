package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
)

// DeckRepository defines the interface for deck persistence. The pipeline core
// never calls it; the deck usecase stores the finished handoff payload here.
type DeckRepository interface {
	// Create persists a finished deck record
	Create(ctx context.Context, record *entities.DeckRecord) error

	// FindByID finds a deck record by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.DeckRecord, error)

	// FindByDatasetHash returns the most recent deck generated for a dataset/brief hash
	FindByDatasetHash(ctx context.Context, userID uuid.UUID, hash string) (*entities.DeckRecord, error)

	// ListByUser returns a paginated list of deck records for a user, newest first
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.DeckRecord, error)

	// Delete removes a deck record
	Delete(ctx context.Context, id uuid.UUID) error
}
