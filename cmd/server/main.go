package main

import (
	"context"
	"ctchen222/gists-api/internal/api/controller"
	"ctchen222/gists-api/internal/api/service"
	"ctchen222/gists-api/internal/config"
	"ctchen222/gists-api/internal/github"
	"ctchen222/gists-api/internal/logger"
	"ctchen222/gists-api/internal/server"
	"ctchen222/gists-api/internal/telemetry"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize telemetry before the logger so the slog bridge picks up
	// the OTLP log provider.
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(cfg.Log.Level)
	gin.SetMode(gin.ReleaseMode)

	// Create the GitHub client
	ghClient := github.NewClient(cfg.GitHub.BaseURL, cfg.GitHub.Timeout,
		github.WithMaxBodyBytes(cfg.GitHub.MaxBodyBytes))

	// Create services
	gistService := service.NewGistService(ghClient, cfg.Pagination.DefaultSize)

	// Create controllers
	gistController := controller.NewGistController(gistService)

	// Create the Gin-based server
	srv, err := server.NewServer(gistController)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("http server started", "address", cfg.Server.Address, "github", cfg.GitHub.BaseURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("Server exiting")
}
