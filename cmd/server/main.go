package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"finplanner/internal/config"
	"finplanner/internal/database"
	"finplanner/internal/handlers"
	"finplanner/internal/knowledge"
	"finplanner/internal/llm"
	"finplanner/internal/middleware"
	"finplanner/internal/repositories"
	"finplanner/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := config.Load()
	setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	provider, err := llm.NewProvider(&cfg.LLM)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build LLM provider")
	}

	store, err := buildKnowledgeStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build knowledge store")
	}

	e := buildServer(cfg, db, provider, store)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		log.Info().
			Str("addr", addr).
			Str("environment", cfg.Server.Environment).
			Str("llm_provider", cfg.LLM.Provider).
			Msg("starting server")

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// buildKnowledgeStore seeds the retrieval corpus. With the ollama provider
// the same daemon serves embeddings; the anthropic backend has no embedding
// endpoint, so retrieval falls back to lexical ranking.
func buildKnowledgeStore(cfg *config.Config) (*knowledge.Store, error) {
	opts := []knowledge.Option{}

	if cfg.LLM.Provider == config.ProviderOllama {
		embedder := llm.NewOllamaProvider(&cfg.LLM).WithEmbeddingModel(cfg.Knowledge.EmbeddingModel)
		opts = append(opts, knowledge.WithEmbedder(embedder))
	}

	return knowledge.NewStore(cfg.Knowledge.CacheMaxItems, opts...)
}

func buildServer(cfg *config.Config, db *database.DB, provider llm.Provider, store *knowledge.Store) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	goalRepo := repositories.NewGoalRepository(db.DB)
	snapshotRepo := repositories.NewSnapshotRepository(db.DB)
	profileRepo := repositories.NewProfileRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	classifier := services.NewClassifierService()
	spending := services.NewSpendingService()
	health := services.NewHealthService()
	goals := services.NewGoalService()
	insights := services.NewInsightService(provider, store, metrics)

	budgetHandler := handlers.NewBudgetHandler(classifier, spending, insights, transactionRepo, metrics)
	healthHandler := handlers.NewHealthHandler(health, insights, snapshotRepo, metrics)
	goalHandler := handlers.NewGoalHandler(goals, insights, goalRepo, metrics)
	chatHandler := handlers.NewChatHandler(insights, store, metrics)
	profileHandler := handlers.NewProfileHandler(profileRepo)
	statusHandler := handlers.NewStatusHandler(db)

	handlers.RegisterRoutes(e, budgetHandler, healthHandler, goalHandler, chatHandler, profileHandler, statusHandler)

	if cfg.IsDevelopment() {
		sampleData := services.NewSampleDataService(uint64(time.Now().UnixNano()))
		devHandler := handlers.NewDevHandler(transactionRepo, sampleData)
		handlers.RegisterDevRoutes(e, devHandler)
	}

	return e
}
