package decks

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/internal/infrastructure/cache"
	usecaseErrors "github.com/deckpilot-team/deckpilot/internal/usecase/errors"
)

// fakePipeline returns a canned generation result
type fakePipeline struct {
	result *entities.GenerationResult
	err    error
	calls  int
}

func (f *fakePipeline) GenerateDeck(_ context.Context, _ *entities.Dataset, _ entities.GenerationContext) (*entities.GenerationResult, error) {
	f.calls++
	return f.result, f.err
}

// fakeDeckRepo is an in-memory deck repository
type fakeDeckRepo struct {
	records map[uuid.UUID]*entities.DeckRecord
}

func newFakeDeckRepo() *fakeDeckRepo {
	return &fakeDeckRepo{records: make(map[uuid.UUID]*entities.DeckRecord)}
}

func (r *fakeDeckRepo) Create(_ context.Context, record *entities.DeckRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *fakeDeckRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.DeckRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, entities.ErrDeckNotFound
	}
	return record, nil
}

func (r *fakeDeckRepo) FindByDatasetHash(_ context.Context, userID uuid.UUID, hash string) (*entities.DeckRecord, error) {
	for _, record := range r.records {
		if record.UserID == userID && record.DatasetHash == hash {
			return record, nil
		}
	}
	return nil, entities.ErrDeckNotFound
}

func (r *fakeDeckRepo) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entities.DeckRecord, error) {
	var out []*entities.DeckRecord
	for _, record := range r.records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *fakeDeckRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.records, id)
	return nil
}

// fakeStorage records uploads and returns deterministic URLs
type fakeStorage struct {
	uploads map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (s *fakeStorage) UploadDeckArtifact(_ context.Context, deckID, name string, payload []byte, _ string) (string, error) {
	object := fmt.Sprintf("exports/%s/%s", deckID, name)
	s.uploads[object] = payload
	return object, nil
}

func (s *fakeStorage) GetFileURL(_ context.Context, objectName string, _ time.Duration) (string, error) {
	return "https://storage.test/" + objectName, nil
}

func testResult() *entities.GenerationResult {
	return &entities.GenerationResult{
		Deck: &entities.Deck{
			Title: "SaaS Insights: Quarterly Update",
			Slides: []entities.Slide{
				{ID: "slide-1", Type: entities.BlueprintTitle, Title: "t",
					Elements: []entities.SlideElement{{Type: entities.ElementTitle, Text: "t"}}},
			},
			QualityScore:    0.9,
			EstimatedImpact: entities.ImpactEstimate{Level: entities.ImpactHigh, Rationale: "r"},
		},
		Coaching: &entities.CoachingBrief{KeyTips: []string{"tip"}, OpeningHook: "hook"},
		Metadata: entities.GenerationMetadata{
			QualityScore: 0.9, EstimatedImpact: entities.ImpactHigh,
			SlideCount: 1, TemplateName: "Board Update", StoryType: entities.StoryGrowth,
		},
		PathUsed: entities.PathEnhanced,
	}
}

func testDataset() *entities.Dataset {
	return &entities.Dataset{Name: "revenue", Rows: []entities.Row{{"period": "2024-01", "revenue": 1000.0}}}
}

func newTestService(pipeline *fakePipeline) (*Service, *fakeDeckRepo, *fakeStorage) {
	repo := newFakeDeckRepo()
	storage := newFakeStorage()
	svc := NewService(pipeline, repo, cache.NewMemoryStore(), storage, zap.NewNop())
	return svc, repo, storage
}

func TestGenerate_PersistsRecord(t *testing.T) {
	pipeline := &fakePipeline{result: testResult()}
	svc, repo, _ := newTestService(pipeline)
	userID := uuid.New()

	out, err := svc.Generate(context.Background(), userID, GenerateInput{
		Dataset: testDataset(),
		Context: entities.GenerationContext{Goal: "quarterly update"},
	})

	require.NoError(t, err)
	assert.False(t, out.Reused)
	assert.Equal(t, "SaaS Insights: Quarterly Update", out.Record.Title)
	assert.Equal(t, string(entities.PathEnhanced), out.Record.Path)
	assert.Len(t, repo.records, 1)

	slides, err := out.Record.DecodeSlides()
	require.NoError(t, err)
	assert.Equal(t, "slide-1", slides[0].ID)
}

func TestGenerate_ReusesCachedResult(t *testing.T) {
	pipeline := &fakePipeline{result: testResult()}
	svc, _, _ := newTestService(pipeline)
	userID := uuid.New()
	input := GenerateInput{Dataset: testDataset(), Context: entities.GenerationContext{Goal: "quarterly update"}}

	first, err := svc.Generate(context.Background(), userID, input)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), userID, input)
	require.NoError(t, err)

	assert.True(t, second.Reused)
	assert.Equal(t, first.Record.ID, second.Record.ID)
	assert.Equal(t, 1, pipeline.calls, "the pipeline must not run again for an identical request")
}

func TestGenerate_ChangedBriefRegenerates(t *testing.T) {
	pipeline := &fakePipeline{result: testResult()}
	svc, _, _ := newTestService(pipeline)
	userID := uuid.New()

	_, err := svc.Generate(context.Background(), userID, GenerateInput{
		Dataset: testDataset(), Context: entities.GenerationContext{Goal: "quarterly update"},
	})
	require.NoError(t, err)
	out, err := svc.Generate(context.Background(), userID, GenerateInput{
		Dataset: testDataset(), Context: entities.GenerationContext{Goal: "raise funding"},
	})
	require.NoError(t, err)

	assert.False(t, out.Reused)
	assert.Equal(t, 2, pipeline.calls)
}

func TestGenerate_MissingDataset(t *testing.T) {
	svc, _, _ := newTestService(&fakePipeline{result: testResult()})

	_, err := svc.Generate(context.Background(), uuid.New(), GenerateInput{})

	assert.ErrorIs(t, err, usecaseErrors.ErrDatasetMissing)
}

func TestGet_EnforcesOwnership(t *testing.T) {
	pipeline := &fakePipeline{result: testResult()}
	svc, _, _ := newTestService(pipeline)
	owner := uuid.New()

	out, err := svc.Generate(context.Background(), owner, GenerateInput{
		Dataset: testDataset(), Context: entities.GenerationContext{},
	})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), owner, out.Record.ID)
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New(), out.Record.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrDeckAccessDenied)

	_, err = svc.Get(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrDeckNotFound)
}

func TestExport_UploadsArtifactAndReturnsURL(t *testing.T) {
	pipeline := &fakePipeline{result: testResult()}
	svc, _, storage := newTestService(pipeline)
	owner := uuid.New()

	out, err := svc.Generate(context.Background(), owner, GenerateInput{
		Dataset: testDataset(), Context: entities.GenerationContext{},
	})
	require.NoError(t, err)

	url, err := svc.Export(context.Background(), owner, out.Record.ID)

	require.NoError(t, err)
	object := fmt.Sprintf("exports/%s/deck.json", out.Record.ID)
	assert.Equal(t, "https://storage.test/"+object, url)
	assert.Contains(t, string(storage.uploads[object]), "SaaS Insights")
}

func TestDelete_RemovesOwnedDeck(t *testing.T) {
	pipeline := &fakePipeline{result: testResult()}
	svc, repo, _ := newTestService(pipeline)
	owner := uuid.New()

	out, err := svc.Generate(context.Background(), owner, GenerateInput{
		Dataset: testDataset(), Context: entities.GenerationContext{},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), owner, out.Record.ID))
	assert.Empty(t, repo.records)

	err = svc.Delete(context.Background(), owner, out.Record.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrDeckNotFound)
}

func TestGenerate_PipelineErrorPropagates(t *testing.T) {
	pipelineErr := errors.New("orchestration failed")
	svc, _, _ := newTestService(&fakePipeline{err: pipelineErr})

	_, err := svc.Generate(context.Background(), uuid.New(), GenerateInput{
		Dataset: testDataset(), Context: entities.GenerationContext{},
	})

	assert.ErrorIs(t, err, pipelineErr)
}
