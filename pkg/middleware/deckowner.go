package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/deckpilot-team/deckpilot/internal/usecase/decks"
)

// RequireDeckOwner middleware: only allow the deck's owner to perform the action
func RequireDeckOwner(deckService *decks.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deckID, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]interface{}{
					"error":   "invalid_deck_id",
					"message": "deck ID must be a valid UUID",
				})
			}
			userID, ok := c.Get("user_id").(uuid.UUID)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error":   "unauthorized",
					"message": "user not authenticated",
				})
			}
			if _, err := deckService.Get(c.Request().Context(), userID, deckID); err != nil {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error":   "not_owner",
					"message": "user does not own this deck",
				})
			}
			return next(c)
		}
	}
}
