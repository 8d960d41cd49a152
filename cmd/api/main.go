package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pageza/heritage-recipes/backend/config"
	"github.com/pageza/heritage-recipes/backend/internal/api"
	"github.com/pageza/heritage-recipes/backend/internal/app"
	"github.com/pageza/heritage-recipes/backend/internal/logger"
	"github.com/pageza/heritage-recipes/backend/internal/server"
	"github.com/pageza/heritage-recipes/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logr := logger.New(cfg.LogLevel)

	var images service.ImageStore
	if cfg.ImagesEnabled() {
		s3Config, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			logr.Error("failed to configure S3", "error", err)
			os.Exit(1)
		}
		images = service.NewS3ImageStore(s3Config)
		logr.Info("recipe image uploads enabled", "bucket", s3Config.BucketName)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	application, err := app.New(ctx, cfg, logr, images)
	cancel()
	if err != nil {
		logr.Error("failed to start application", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logr.Error("failed to close database", "error", err)
		}
	}()

	srv := server.New(cfg, logr, api.Dependencies{
		AuthService:   application.AuthService,
		RecipeService: application.RecipeService,
		DB:            application.DB,
		ImageUploads:  images != nil,
	})

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logr.Error("server error", "error", err)
		}
	case sig := <-quit:
		logr.Info("received signal", "signal", sig.String())
	}

	logr.Info("shutting down server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server shutdown error", "error", err)
	}
	logr.Info("server stopped")
}
