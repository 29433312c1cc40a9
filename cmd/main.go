package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/sm8ta/webike_fleet_dashboard/docs"
	"github.com/sm8ta/webike_fleet_dashboard/internal/app"
	"github.com/sm8ta/webike_fleet_dashboard/internal/config"

	_ "github.com/lib/pq"
)

// @title Webike Fleet Dashboard API
// @version 1.0
// @description API для учёта байков, обслуживания и сессий дашборда

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Create app
	ctx := context.Background()
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- application.Run()
	}()

	// Graceful shutdown
	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stopSignals()

	select {
	case <-sigCtx.Done():
		application.Logger.Info("Shutdown signal received", nil)
	case err := <-serverErr:
		if err != nil {
			application.Logger.Error("HTTP server stopped", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Создаём контекст с таймаутом для shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := application.Stop(shutdownCtx); err != nil {
		application.Logger.Error("Failed to stop app", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}
