package decks

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/internal/domain/repositories"
	"github.com/deckpilot-team/deckpilot/internal/infrastructure/cache"
	"github.com/deckpilot-team/deckpilot/internal/usecase/deckgen"
	usecaseErrors "github.com/deckpilot-team/deckpilot/internal/usecase/errors"
)

// Result reuse window. A repeated request for the same dataset and brief
// within this window returns the stored deck instead of regenerating.
const cacheTTL = 24 * time.Hour

// ExportStorage is the object-store capability used for deck exports
type ExportStorage interface {
	UploadDeckArtifact(ctx context.Context, deckID, name string, payload []byte, contentType string) (string, error)
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// Service handles deck lifecycle business logic: generation with result reuse,
// retrieval with ownership checks, listing and export.
type Service struct {
	pipeline deckgen.Service
	deckRepo repositories.DeckRepository
	store    cache.Store
	storage  ExportStorage
	logger   *zap.Logger
}

// NewService creates a new deck service
func NewService(
	pipeline deckgen.Service,
	deckRepo repositories.DeckRepository,
	store cache.Store,
	storage ExportStorage,
	logger *zap.Logger,
) *Service {
	return &Service{
		pipeline: pipeline,
		deckRepo: deckRepo,
		store:    store,
		storage:  storage,
		logger:   logger,
	}
}

// GenerateInput represents input for generating a deck
type GenerateInput struct {
	Dataset *entities.Dataset
	Context entities.GenerationContext
}

// GenerateOutput pairs the persisted record with the full generation result
type GenerateOutput struct {
	Record *entities.DeckRecord
	Result *entities.GenerationResult
	Reused bool
}

// Generate runs the pipeline for the user's dataset and brief. An identical
// request within the reuse window returns the previously stored deck.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, input GenerateInput) (*GenerateOutput, error) {
	if input.Dataset == nil || input.Dataset.Rows == nil {
		return nil, usecaseErrors.ErrDatasetMissing
	}
	if input.Context.TimeLimit < 0 {
		return nil, usecaseErrors.ErrInvalidTimeLimit
	}

	hash := requestHash(input.Dataset, input.Context)

	if record := s.lookupCached(ctx, userID, hash); record != nil {
		s.logger.Info("deck reused from cache",
			zap.String("deck_id", record.ID.String()),
			zap.String("dataset_hash", hash))
		return &GenerateOutput{Record: record, Reused: true}, nil
	}

	result, err := s.pipeline.GenerateDeck(ctx, input.Dataset, input.Context)
	if err != nil {
		return nil, err
	}

	record, err := entities.NewDeckRecord(userID, input.Dataset.Name, hash, result)
	if err != nil {
		return nil, fmt.Errorf("failed to build deck record: %w", err)
	}
	if err := s.deckRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := s.store.Set(ctx, cacheKey(userID, hash), record.ID.String(), cacheTTL); err != nil {
		// Cache failures degrade reuse, not correctness.
		s.logger.Warn("failed to cache deck result", zap.Error(err))
	}

	return &GenerateOutput{Record: record, Result: result}, nil
}

// lookupCached resolves the cache entry for a request hash back to its record.
func (s *Service) lookupCached(ctx context.Context, userID uuid.UUID, hash string) *entities.DeckRecord {
	value, found, err := s.store.Get(ctx, cacheKey(userID, hash))
	if err != nil || !found {
		return nil
	}
	deckID, err := uuid.Parse(value)
	if err != nil {
		return nil
	}
	record, err := s.deckRepo.FindByID(ctx, deckID)
	if err != nil {
		return nil
	}
	return record
}

// Get retrieves a deck by ID, enforcing ownership
func (s *Service) Get(ctx context.Context, userID, deckID uuid.UUID) (*entities.DeckRecord, error) {
	record, err := s.deckRepo.FindByID(ctx, deckID)
	if err != nil {
		if errors.Is(err, entities.ErrDeckNotFound) {
			return nil, usecaseErrors.ErrDeckNotFound
		}
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}
	if record.UserID != userID {
		return nil, usecaseErrors.ErrDeckAccessDenied
	}
	return record, nil
}

// List retrieves the user's decks, newest first
func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.DeckRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	records, err := s.deckRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return records, nil
}

// Delete removes a deck, enforcing ownership
func (s *Service) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, deckID); err != nil {
		return err
	}
	if err := s.deckRepo.Delete(ctx, deckID); err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	return nil
}

// exportPayload is the JSON artifact shape written to object storage
type exportPayload struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	TemplateName    string          `json:"template_name"`
	QualityScore    float64         `json:"quality_score"`
	EstimatedImpact string          `json:"estimated_impact"`
	Slides          json.RawMessage `json:"slides"`
	Coaching        json.RawMessage `json:"coaching,omitempty"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
	ExportedAt      time.Time       `json:"exported_at"`
}

// Export serializes the deck to a JSON artifact, uploads it and returns a
// presigned download URL.
func (s *Service) Export(ctx context.Context, userID, deckID uuid.UUID) (string, error) {
	record, err := s.Get(ctx, userID, deckID)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(exportPayload{
		ID:              record.ID,
		Title:           record.Title,
		TemplateName:    record.TemplateName,
		QualityScore:    record.QualityScore,
		EstimatedImpact: record.EstimatedImpact,
		Slides:          json.RawMessage(record.Slides),
		Coaching:        json.RawMessage(record.Coaching),
		Metadata:        json.RawMessage(record.Metadata),
		ExportedAt:      time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to serialize deck export: %w", err)
	}

	objectName, err := s.storage.UploadDeckArtifact(ctx, record.ID.String(), "deck.json", payload, "application/json")
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecaseErrors.ErrExportFailed, err)
	}

	url, err := s.storage.GetFileURL(ctx, objectName, 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecaseErrors.ErrExportFailed, err)
	}

	s.logger.Info("deck exported",
		zap.String("deck_id", record.ID.String()),
		zap.String("object", objectName))

	return url, nil
}

// requestHash fingerprints the dataset together with the brief so that a
// changed brief regenerates even for identical data.
func requestHash(ds *entities.Dataset, gctx entities.GenerationContext) string {
	h := sha256.New()
	h.Write([]byte(ds.Fingerprint()))
	if b, err := json.Marshal(gctx); err == nil {
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func cacheKey(userID uuid.UUID, hash string) string {
	return fmt.Sprintf("deck:%s:%s", userID, hash)
}
