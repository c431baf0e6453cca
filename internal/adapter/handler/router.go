package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/deckpilot-team/deckpilot/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg         *config.Config
	deckHandler *Deck
	authMW      echo.MiddlewareFunc
	ownerMW     echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, deckHandler *Deck, authMW, ownerMW echo.MiddlewareFunc) *Router {
	return &Router{
		cfg:         cfg,
		deckHandler: deckHandler,
		authMW:      authMW,
		ownerMW:     ownerMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupDeckRoutes(v1)
}

// setupDeckRoutes configures deck lifecycle routes
func (rt *Router) setupDeckRoutes(g *echo.Group) {
	deckGroup := g.Group("/decks")
	if rt.authMW != nil {
		deckGroup.Use(rt.authMW)
	}

	if rt.deckHandler != nil {
		// Routes addressing a single deck carry the ownership guard.
		var ownerMW []echo.MiddlewareFunc
		if rt.ownerMW != nil {
			ownerMW = append(ownerMW, rt.ownerMW)
		}

		deckGroup.POST("/generate", rt.deckHandler.Generate)
		deckGroup.GET("", rt.deckHandler.List)
		deckGroup.GET("/:id", rt.deckHandler.Get, ownerMW...)
		deckGroup.POST("/:id/export", rt.deckHandler.Export, ownerMW...)
		deckGroup.DELETE("/:id", rt.deckHandler.Delete, ownerMW...)
	} else {
		deckGroup.POST("/generate", rt.notImplemented)
		deckGroup.GET("", rt.notImplemented)
		deckGroup.GET("/:id", rt.notImplemented)
		deckGroup.POST("/:id/export", rt.notImplemented)
		deckGroup.DELETE("/:id", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
