package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
)

// DeckRepository implements the deck repository interface using GORM
type DeckRepository struct {
	db *gorm.DB
}

// NewDeckRepository creates a new deck repository
func NewDeckRepository(db *gorm.DB) *DeckRepository {
	return &DeckRepository{
		db: db,
	}
}

// Create persists a finished deck record
func (r *DeckRepository) Create(ctx context.Context, record *entities.DeckRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create deck record: %w", err)
	}
	return nil
}

// FindByID finds a deck record by ID
func (r *DeckRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.DeckRecord, error) {
	var record entities.DeckRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrDeckNotFound
		}
		return nil, fmt.Errorf("failed to find deck by ID: %w", err)
	}
	return &record, nil
}

// FindByDatasetHash returns the most recent deck generated for a dataset hash
func (r *DeckRepository) FindByDatasetHash(ctx context.Context, userID uuid.UUID, hash string) (*entities.DeckRecord, error) {
	var record entities.DeckRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND dataset_hash = ?", userID, hash).
		Order("created_at DESC").
		First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrDeckNotFound
		}
		return nil, fmt.Errorf("failed to find deck by dataset hash: %w", err)
	}
	return &record, nil
}

// ListByUser returns a paginated list of deck records for a user, newest first
func (r *DeckRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.DeckRecord, error) {
	var records []*entities.DeckRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return records, nil
}

// Delete removes a deck record
func (r *DeckRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entities.DeckRecord{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	return nil
}
