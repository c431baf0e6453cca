package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/deckpilot-team/deckpilot/pkg/validator"

	_ "github.com/deckpilot-team/deckpilot/docs"

	"github.com/deckpilot-team/deckpilot/internal/adapter/handler"
	"github.com/deckpilot-team/deckpilot/internal/adapter/repository"
	"github.com/deckpilot-team/deckpilot/internal/infrastructure/cache"
	"github.com/deckpilot-team/deckpilot/internal/infrastructure/database"
	httpmw "github.com/deckpilot-team/deckpilot/internal/infrastructure/http/middleware"
	"github.com/deckpilot-team/deckpilot/internal/infrastructure/storage"
	"github.com/deckpilot-team/deckpilot/internal/usecase/auth"
	"github.com/deckpilot-team/deckpilot/internal/usecase/deckgen"
	"github.com/deckpilot-team/deckpilot/internal/usecase/decks"
	pkgai "github.com/deckpilot-team/deckpilot/pkg/ai"
	"github.com/deckpilot-team/deckpilot/pkg/config"
	"github.com/deckpilot-team/deckpilot/pkg/jwt"
	pkgmw "github.com/deckpilot-team/deckpilot/pkg/middleware"
)

// @title           DeckPilot API
// @version         1.0
// @description     API for generating presentation decks from tabular datasets

// @contact.name   API Support
// @contact.email  support@deckpilot.dev

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize cache store
	var store cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		store = redisStore
	} else {
		log.Println("📦 Redis disabled, using in-memory cache")
		store = cache.NewMemoryStore()
	}
	defer store.Close()

	// Initialize object storage for exports
	log.Println("🗄️  Connecting to object storage...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	deckRepo := repository.NewDeckRepository(db)

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize generation pipeline
	log.Println("🤖 Initializing generation pipeline...")
	llmClient := pkgai.NewLLMClient(&cfg.LLM)
	pipeline := deckgen.NewDefaultService(llmClient, llmClient, *cfg, logger)

	// Initialize deck service
	log.Println("🗂️  Initializing deck service...")
	deckService := decks.NewService(pipeline, deckRepo, store, minioClient, logger)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize token service
	tokenService := auth.NewTokenService(jwtManager, userRepo)

	// Initialize deck handler
	log.Println("🚀 Initializing deck handler...")
	deckHandler := handler.NewDeckHandler(deckService, logger)
	log.Println("✅ Deck handler initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authEchoMW := httpmw.EchoAuth(tokenService)
	ownerEchoMW := pkgmw.RequireDeckOwner(deckService)

	router := handler.NewRouter(cfg, deckHandler, authEchoMW, ownerEchoMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
