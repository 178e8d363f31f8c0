package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pantrycook/pantrycook/backend/config"
	"github.com/pantrycook/pantrycook/backend/internal/database"
	"github.com/pantrycook/pantrycook/backend/internal/logger"
	"github.com/pantrycook/pantrycook/backend/internal/server"
	"github.com/pantrycook/pantrycook/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.Env != "production")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.New(cfg)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		// Rate limiting degrades to open; the service itself stays up.
		zl.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		redisClient = nil
	}

	var images *service.ImageService
	if s3cfg, err := config.NewS3Config(context.Background()); err != nil {
		zl.Warn("S3 unavailable, image uploads disabled", zap.Error(err))
	} else {
		images = service.NewImageService(s3cfg)
	}

	srv := server.NewServer(cfg, db, redisClient, images, zl)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zl.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		zl.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Fatal("server shutdown error", zap.Error(err))
	}
	zl.Info("server stopped")
}
