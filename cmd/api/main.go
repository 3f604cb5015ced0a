package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/devconnector/devconnector-api/internal/api"
	"github.com/devconnector/devconnector-api/internal/api/handler"
	"github.com/devconnector/devconnector-api/internal/core/service"
	"github.com/devconnector/devconnector-api/internal/infrastructure/db/mongo"
	"github.com/devconnector/devconnector-api/internal/infrastructure/db/redis"
	"github.com/devconnector/devconnector-api/internal/infrastructure/github"
	"github.com/devconnector/devconnector-api/internal/pkg/config"
	"github.com/devconnector/devconnector-api/pkg/logger"
)

// @title           DevConnector API
// @version         1.0
// @description     Developer profiles, posts, likes and comments.

// @BasePath  /

// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token

//go:generate swag init --dir ../.. --generalInfo cmd/api/main.go --output ../../docs --outputTypes go

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "devconnector-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "devconnector-api",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting application")

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return fmt.Errorf("failed to initialize mongodb: %w", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer rdb.Close()

	users := mongo.NewUserRepository(db)
	profiles := mongo.NewProfileRepository(db)
	posts := mongo.NewPostRepository(db)
	if err := mongo.EnsureIndexes(ctx, users, profiles, posts); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	creds, err := service.NewCredentials(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	githubClient := github.NewClient(github.Config{
		BaseURL:      cfg.GitHub.BaseURL,
		ClientID:     cfg.GitHub.ClientID,
		ClientSecret: cfg.GitHub.ClientSecret,
		Timeout:      cfg.GitHub.Timeout,
	})

	e := api.NewRouter(api.Dependencies{
		Auth:     service.NewAuthService(users, creds, log),
		Profiles: service.NewProfileService(profiles, users, posts, githubClient, log),
		Posts:    service.NewPostService(posts, users, redis.NewIdempotencyStore(rdb), log),
		Tokens:   creds,
		Readiness: map[string]handler.DependencyCheck{
			"mongodb": handler.MongoCheck(db),
			"redis":   handler.RedisCheck(rdb),
		},
	}, log)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ":"+cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
		close(serverErrors)
	}()

	select {
	case err, ok := <-serverErrors:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
