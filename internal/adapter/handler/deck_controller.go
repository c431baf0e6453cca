package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	appErrors "github.com/deckpilot-team/deckpilot/errors"
	"github.com/deckpilot-team/deckpilot/internal/adapter/dto/deck"
	"github.com/deckpilot-team/deckpilot/internal/adapter/presenter"
	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/internal/usecase/decks"
	usecaseErrors "github.com/deckpilot-team/deckpilot/internal/usecase/errors"
)

// Deck handles deck-related HTTP requests
type Deck struct {
	deckService *decks.Service
	logger      *zap.Logger
}

// NewDeckHandler creates a new deck handler
func NewDeckHandler(deckService *decks.Service, logger *zap.Logger) *Deck {
	return &Deck{
		deckService: deckService,
		logger:      logger,
	}
}

// Generate handles POST /decks/generate
// @Summary      Generate a deck
// @Description  Runs the generation pipeline for the supplied dataset and brief
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      deck.GenerateDeckRequest  true  "Dataset and presentation brief"
// @Success      201      {object}  deck.GenerateDeckResponse  "Deck generated"
// @Failure      400      {object}  map[string]interface{}  "Invalid request or validation failed"
// @Failure      401      {object}  map[string]interface{}  "User not authenticated"
// @Failure      500      {object}  map[string]interface{}  "Generation failed"
// @Router       /decks/generate [post]
func (h *Deck) Generate(c echo.Context) error {
	var req deck.GenerateDeckRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, appErrors.ErrInvalidArgument(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, appErrors.ErrInvalidArgument(err.Error()))
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return HandleError(h.logger, c, appErrors.ErrUnauthenticated())
	}

	input := decks.GenerateInput{
		Dataset: &entities.Dataset{Name: req.DatasetName, Rows: req.Rows},
		Context: req.ToGenerationContext(),
	}

	output, err := h.deckService.Generate(c.Request().Context(), userID, input)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	response := &deck.GenerateDeckResponse{
		Deck:   presenter.ToDeckResponse(output.Record),
		Reused: output.Reused,
	}

	status := http.StatusCreated
	if output.Reused {
		status = http.StatusOK
	}
	return c.JSON(status, response)
}

// Get handles GET /decks/:id
// @Summary      Get deck details
// @Description  Returns the full slide payload and coaching brief of a stored deck
// @Tags         Decks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Deck ID (UUID)"
// @Success      200  {object}  deck.DeckResponse  "Deck details"
// @Failure      403  {object}  map[string]interface{}  "Deck owned by another user"
// @Failure      404  {object}  map[string]interface{}  "Deck not found"
// @Router       /decks/{id} [get]
func (h *Deck) Get(c echo.Context) error {
	deckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, appErrors.ErrInvalidArgument("deck ID must be a valid UUID"))
	}
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return HandleError(h.logger, c, appErrors.ErrUnauthenticated())
	}

	record, err := h.deckService.Get(c.Request().Context(), userID, deckID)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	return c.JSON(http.StatusOK, presenter.ToDeckResponse(record))
}

// List handles GET /decks
// @Summary      List decks
// @Description  Returns the caller's decks, newest first
// @Tags         Decks
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int  false  "Page number (1-based)"
// @Param        page_size  query     int  false  "Page size (max 100)"
// @Success      200  {array}   deck.DeckSummaryResponse  "Deck summaries"
// @Failure      401  {object}  map[string]interface{}  "User not authenticated"
// @Router       /decks [get]
func (h *Deck) List(c echo.Context) error {
	var req deck.ListDecksRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, appErrors.ErrInvalidArgument(err.Error()))
	}
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return HandleError(h.logger, c, appErrors.ErrUnauthenticated())
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}

	records, err := h.deckService.List(c.Request().Context(), userID, req.PageSize, (req.Page-1)*req.PageSize)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	return c.JSON(http.StatusOK, presenter.ToDeckListResponse(records))
}

// Export handles POST /decks/:id/export
// @Summary      Export a deck
// @Description  Serializes the deck to a JSON artifact in object storage and returns a download URL
// @Tags         Decks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Deck ID (UUID)"
// @Success      200  {object}  deck.ExportDeckResponse  "Download URL"
// @Failure      404  {object}  map[string]interface{}  "Deck not found"
// @Failure      500  {object}  map[string]interface{}  "Export failed"
// @Router       /decks/{id}/export [post]
func (h *Deck) Export(c echo.Context) error {
	deckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, appErrors.ErrInvalidArgument("deck ID must be a valid UUID"))
	}
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return HandleError(h.logger, c, appErrors.ErrUnauthenticated())
	}

	url, err := h.deckService.Export(c.Request().Context(), userID, deckID)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	return c.JSON(http.StatusOK, &deck.ExportDeckResponse{
		DownloadURL: url,
		ExpiresIn:   "24h",
	})
}

// Delete handles DELETE /decks/:id
// @Summary      Delete a deck
// @Description  Removes a stored deck
// @Tags         Decks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Deck ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Deck deleted"
// @Failure      404  {object}  map[string]interface{}  "Deck not found"
// @Router       /decks/{id} [delete]
func (h *Deck) Delete(c echo.Context) error {
	deckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, appErrors.ErrInvalidArgument("deck ID must be a valid UUID"))
	}
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return HandleError(h.logger, c, appErrors.ErrUnauthenticated())
	}

	if err := h.deckService.Delete(c.Request().Context(), userID, deckID); err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{"deleted": deckID})
}

// mapError translates usecase errors to application errors with HTTP codes
func (h *Deck) mapError(err error) error {
	switch {
	case errors.Is(err, usecaseErrors.ErrDatasetMissing):
		return appErrors.ErrDatasetMissing()
	case errors.Is(err, usecaseErrors.ErrInvalidTimeLimit):
		return appErrors.ErrInvalidArgument("time limit must not be negative")
	case errors.Is(err, usecaseErrors.ErrDeckNotFound):
		return appErrors.ErrDeckNotFound()
	case errors.Is(err, usecaseErrors.ErrDeckAccessDenied):
		return appErrors.ErrDeckAccessDenied()
	case errors.Is(err, usecaseErrors.ErrExportFailed):
		return appErrors.ErrExportFailed(err)
	case errors.Is(err, entities.ErrDatasetMissing):
		return appErrors.ErrDatasetMissing()
	case errors.Is(err, entities.ErrInvalidTimeLimit):
		return appErrors.ErrInvalidArgument("time limit must not be negative")
	default:
		return appErrors.ErrInternal(err)
	}
}
