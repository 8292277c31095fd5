package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"studymate-backend/internal/config"
	"studymate-backend/internal/database"
	"studymate-backend/internal/handlers"
	"studymate-backend/internal/history"
	"studymate-backend/internal/logging"
	"studymate-backend/internal/models"
	"studymate-backend/internal/router"
	"studymate-backend/internal/services"
	"studymate-backend/internal/session"
	"studymate-backend/internal/websocket"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.IsProduction())
	log := logging.Logger()
	log.Info("Starting StudyMate Backend...")

	// ──── Step 2: Initialize Redis Clients ────
	var redisClients *database.RedisClients
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		clients, err := database.NewRedisClients(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Fatalf("Redis connection failed: %v", err)
		}
		defer clients.Close()
		redisClients = clients
		log.Info("Redis connected")
	}

	// ──── Step 3: Initialize History Store ────
	store, closeStore, err := newHistoryStore(cfg, redisClients)
	if err != nil {
		log.Fatalf("History store initialization failed: %v", err)
	}
	defer closeStore()
	log.Infof("History store: %s", cfg.HistoryStore)

	// ──── Step 4: Initialize Gemini Client ────
	oracle, err := services.NewGeminiOracle(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Gemini client initialization failed: %v", err)
	}
	defer oracle.Close()
	log.Infof("Gemini client initialized (model %s)", cfg.GeminiModel)

	// ──── Step 5: Initialize Services ────
	historyService := history.NewService(store)
	studyService := services.NewStudyService(oracle, cfg.GeminiModel, historyService, cfg.StrictResults)
	fileExtractService := services.NewFileExtractService()

	// ──── Step 6: Start WebSocket Hub ────
	var pubsub *redis.Client
	if redisClients != nil {
		pubsub = redisClients.PubSub
	}
	var tracker *session.Tracker
	wsHub := websocket.NewHub(pubsub, func(clientID string) models.Workspace {
		return tracker.Snapshot(clientID)
	})
	tracker = session.NewTracker(wsHub, cfg.DiscardStaleResponses)
	tracker.Start(time.Minute, cfg.WorkspaceIdleTTL)
	log.Infof("WebSocket hub started (idle workspaces expire after %s)", cfg.WorkspaceIdleTTL)

	// ──── Step 7: Initialize Handlers ────
	studyHandler := handlers.NewStudyHandler(studyService, tracker, fileExtractService, int64(cfg.MaxUploadBytes))
	historyHandler := handlers.NewHistoryHandler(historyService)
	metaHandler := handlers.NewMetaHandler(tracker)

	// ──── Step 8: Start HTTP Server ────
	r := router.New(
		studyHandler,
		historyHandler,
		metaHandler,
		wsHub,
		cfg.FrontendURL,
	)

	// Oracle calls have no deadline of their own; the write timeout must outlast them.
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down...")
		tracker.Stop()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Infof("StudyMate Backend ready on http://localhost:%s", cfg.Port)
	log.Infof("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Infof("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

// newHistoryStore opens the backend named by HISTORY_STORE. The returned
// close func is always safe to call.
func newHistoryStore(cfg *config.Config, redisClients *database.RedisClients) (history.Store, func(), error) {
	noop := func() {}

	switch cfg.HistoryStore {
	case "", "memory":
		return history.NewMemoryStore(), noop, nil
	case "file":
		return history.NewFileStore(cfg.HistoryDir), noop, nil
	case "redis":
		if redisClients == nil {
			return nil, noop, fmt.Errorf("HISTORY_STORE=redis requires REDIS_URL")
		}
		return history.NewRedisStore(redisClients.KV), noop, nil
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, noop, fmt.Errorf("HISTORY_STORE=postgres requires DATABASE_URL")
		}
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := database.RunMigrations(pool, database.Migrations()); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("database migration failed: %w", err)
		}
		return history.NewPostgresStore(pool), pool.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown HISTORY_STORE %q", cfg.HistoryStore)
}
