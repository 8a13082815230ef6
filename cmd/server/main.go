package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"docuforge/internal/config"
	"docuforge/internal/handler"
	"docuforge/internal/middleware"
	"docuforge/internal/repository/memory"
	"docuforge/internal/seed"
	"docuforge/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"addr", cfg.Addr(),
	)

	// In-memory stores. Everything lives for the process only.
	projectStore := memory.NewProjectStore()
	documentStore := memory.NewDocumentStore()
	activityLog := memory.NewActivityLog(memory.DefaultActivityCapacity)
	sessionStore := memory.NewSessionStore()

	// Seed the dashboard dataset
	fixtures, err := seed.Load()
	if err != nil {
		log.Fatalf("Failed to load seed fixtures: %v", err)
	}
	ctx := context.Background()
	if err := seed.Apply(ctx, fixtures, projectStore, documentStore, activityLog); err != nil {
		log.Fatalf("Failed to seed stores: %v", err)
	}
	logger.Info("stores seeded",
		"projects", len(fixtures.Projects),
		"documents", len(fixtures.Documents),
		"activities", len(fixtures.Activities),
	)

	// Services
	activityService := service.NewActivityService(activityLog, logger)
	projectService := service.NewProjectService(projectStore, activityService, logger)
	documentService := service.NewDocumentService(documentStore, logger)
	authService := service.NewAuthService(sessionStore, logger)

	// Handlers and routes
	mux := handler.NewRouter(handler.Handlers{
		Health:   handler.NewHealthHandler(config.ServiceName),
		Auth:     handler.NewAuthHandler(authService, logger),
		Project:  handler.NewProjectHandler(projectService, logger),
		Document: handler.NewDocumentHandler(documentService, logger),
		Activity: handler.NewActivityHandler(activityService, logger),
	})

	// Build middleware chain.
	// Order: CORS → Options → Recovery → Actor → Routes
	var httpHandler http.Handler = mux
	httpHandler = middleware.Actor(authService)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// Plain (non-preflight) OPTIONS gets a 204 instead of the mux 405.
	httpHandler = middleware.Options(httpHandler)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	httpHandler = middleware.CORS(cfg.CORSOrigins).Handler(httpHandler)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "addr", cfg.Addr())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
