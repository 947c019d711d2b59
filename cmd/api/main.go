package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justsurfingit/Campus-Job-Board/internal/auth"
	"github.com/justsurfingit/Campus-Job-Board/internal/config"
	"github.com/justsurfingit/Campus-Job-Board/internal/database"
	"github.com/justsurfingit/Campus-Job-Board/internal/handlers"
	"github.com/justsurfingit/Campus-Job-Board/internal/services"
	"github.com/justsurfingit/Campus-Job-Board/internal/storage"
	"github.com/justsurfingit/Campus-Job-Board/internal/store"
)

func main() {
	// 1. Load Environment Variables / Config
	cfg := config.Load()

	// 2. Pick the stores: Postgres when configured, seeded in-memory otherwise
	var (
		jobStore  store.JobStore
		appStore  store.ApplicationStore
		userStore store.UserStore
	)
	if cfg.DatabaseURL != "" {
		db := database.Connect(cfg.DatabaseURL)
		jobStore = store.NewGormJobStore(db)
		appStore = store.NewGormApplicationStore(db)
		userStore = store.NewGormUserStore(db)
	} else {
		log.Println("No DATABASE_URL set, using in-memory stores with demo data")
		jobStore = store.NewMemoryJobStore(store.SeedJobs())
		appStore = store.NewMemoryApplicationStore(store.SeedApplications())
		userStore = store.NewMemoryUserStore(store.SeedUsers())
	}

	// 3. CV file storage
	cvStorage, err := storage.NewDiskStorage(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to prepare upload directory:", err)
	}

	// 4. Initialize Core Services
	tokens := auth.NewTokenProvider(cfg.JWTSecret)
	jobService := services.NewJobService(jobStore)
	applicationService := services.NewApplicationService(appStore, cvStorage, storage.NewPolicy(cfg.MaxCVBytes))
	authService := services.NewAuthService(userStore, tokens)

	// 5. Initialize Handlers & Router
	router := handlers.NewRouter(handlers.RouterDeps{
		Jobs:         handlers.NewJobHandler(jobService),
		Applications: handlers.NewApplicationHandler(applicationService),
		Auth:         handlers.NewAuthHandler(authService),
		Analytics:    handlers.NewAnalyticsHandler(),
		Tokens:       tokens,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// 6. Run with graceful shutdown
	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("🚀 Server starting on port " + cfg.HTTPPort + "...")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start:", err)
		}
	}()

	<-shutdownCtx.Done()
	log.Println("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server shutdown failed:", err)
	}
}
