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

	"github.com/pitchflow-app/pitchflow/backend/internal/adapters/cache"
	"github.com/pitchflow-app/pitchflow/backend/internal/adapters/database"
	"github.com/pitchflow-app/pitchflow/backend/internal/adapters/events"
	"github.com/pitchflow-app/pitchflow/backend/internal/adapters/providers/transcription"
	"github.com/pitchflow-app/pitchflow/backend/internal/adapters/search"
	"github.com/pitchflow-app/pitchflow/backend/internal/api/handlers"
	"github.com/pitchflow-app/pitchflow/backend/internal/api/middleware"
	"github.com/pitchflow-app/pitchflow/backend/internal/api/routes"
	"github.com/pitchflow-app/pitchflow/backend/internal/application/services"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/providers"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/repositories"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/clients/openai"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/clients/postgres"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/clients/redis"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/clients/typesense"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/observability"
	"github.com/pitchflow-app/pitchflow/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	// Initialize Typesense client
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Warning: Failed to initialize Typesense client: %v", err)
	} else {
		log.Println("Typesense client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Create base analysis adapter, wrapped with caching when Redis is up
	baseAnalysisAdapter := database.NewAnalysisAdapter(pgClient)

	var analysisRepo repositories.AnalysisRepository
	if cacheProvider != nil {
		analysisRepo = database.NewCachedAnalysisAdapter(baseAnalysisAdapter, cacheProvider)
		log.Println("Analysis adapter wrapped with caching layer")
	} else {
		analysisRepo = baseAnalysisAdapter
		log.Println("Analysis adapter running without cache (Redis unavailable)")
	}

	sessionRepo := database.NewSessionAdapter(pgClient)

	var searchRepo repositories.AnalysisSearchRepository
	if typesenseClient != nil {
		adapter := search.NewTypesenseAdapter(typesenseClient)
		if err := adapter.InitSchema(context.Background()); err != nil {
			log.Printf("Warning: Failed to init Typesense schema: %v", err)
		}
		searchRepo = adapter
	}

	// Initialize event bus for live dashboard updates
	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Println("Event bus initialized successfully")
	} else {
		log.Println("Event bus disabled (Redis not available)")
	}

	transcriptionProvider := transcription.NewMockTranscriptionProvider()

	var coachingProvider providers.CoachingMessageProvider
	if cfg.OpenAI.APIKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set; coaching messages disabled")
	} else {
		openaiClient, err := openai.NewClient(&cfg.OpenAI)
		if err != nil {
			log.Printf("Warning: Failed to initialize OpenAI client: %v", err)
		} else {
			coachingProvider = openaiClient
		}
	}

	// Initialize services
	analysisService := services.NewAnalysisService(
		analysisRepo,
		searchRepo,
		transcriptionProvider,
		coachingProvider,
		eventBus,
		metrics,
	)
	sessionService := services.NewSessionService(sessionRepo)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	var sseHandler *handlers.SSEHandler
	if eventBus != nil {
		sseHandler = handlers.NewSSEHandler(eventBus)
	}

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Println("Cache middleware initialized successfully")
	}

	// Set up router
	router := routes.NewRouter(
		analysisHandler,
		sessionHandler,
		sseHandler,
		cacheMiddleware,
		metrics,
	)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Printf("Error closing event bus: %v", err)
		}
	}

	log.Println("Server stopped")
}
