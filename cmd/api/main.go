package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolioapi/internal/api"
	"portfolioapi/internal/auth"
	"portfolioapi/internal/config"
	"portfolioapi/internal/database"
	"portfolioapi/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	log.Printf("database connection ready")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	log.Printf("database migrated")

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		// Rate limiting degrades to allow-all without Redis; the API stays up.
		logger.Warn("redis unreachable, public write rate limits disabled",
			slog.String("addr", cfg.Redis.Addr()), slog.Any("error", err))
	}

	mediaClient, err := storage.NewClient(cfg.Media)
	if err != nil {
		log.Fatalf("init media client: %v", err)
	}
	log.Printf("media client ready, bucket=%s", cfg.Media.Bucket)

	jwksProvider := auth.NewProvider(cfg.Auth.JWKSEndpoint())
	verifier := auth.NewVerifier(jwksProvider, cfg.Auth.IssuerURL, cfg.Auth.Audience)

	router := api.NewRouter(cfg, logger)
	api.RegisterRoutes(router, db, verifier, redisClient, mediaClient, logger, cfg)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.API.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("api listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start api server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", slog.Any("error", err))
	}

	if err := redisClient.Close(); err != nil {
		logger.Error("close redis client", slog.Any("error", err))
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("close database", slog.Any("error", err))
		}
	}
}
