// Package main provides the support bot API server entrypoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kickshq/support-bot/internal/cache"
	"github.com/kickshq/support-bot/internal/classifier"
	"github.com/kickshq/support-bot/internal/config"
	"github.com/kickshq/support-bot/internal/knowledge"
	"github.com/kickshq/support-bot/internal/llm"
	"github.com/kickshq/support-bot/internal/observability"
	"github.com/kickshq/support-bot/internal/resolver"
	"github.com/kickshq/support-bot/internal/session"
)

func main() {
	// Load .env for local development; a missing file is fine
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("cache", cfg.Cache.Driver).
		Float64("threshold", cfg.Classifier.ConfidenceThreshold).
		Msg("Starting support bot API")

	// Train the intent classifier up front so the first request pays no cost
	cls := classifier.New(logger, knowledge.TrainingData, classifier.Config{
		MaxFeatures: cfg.Classifier.MaxFeatures,
	})
	if err := cls.Train(); err != nil {
		logger.Fatal().Err(err).Msg("Classifier training failed")
	}

	// Generative backend is optional; without a key the rule fallback serves
	var generator resolver.Generator
	if cfg.LLM.APIKey == "" {
		logger.Warn().Msg("No API key configured, generative fallback disabled")
	} else {
		generator = llm.NewClient(llm.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			BaseURL:     cfg.LLM.BaseURL,
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		})
	}

	// Reply cache
	var replies cache.Client
	switch cfg.Cache.Driver {
	case "redis":
		redisClient, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
		})
		if err != nil {
			logger.Error().Err(err).Msg("Redis unavailable, falling back to memory cache")
			replies = cache.NewMemoryClient(cfg.Cache.MaxEntries)
		} else {
			replies = redisClient
		}
	default:
		replies = cache.NewMemoryClient(cfg.Cache.MaxEntries)
	}
	defer replies.Close()

	res := resolver.New(logger, cls, generator, replies, resolver.Config{
		Threshold: cfg.Classifier.ConfidenceThreshold,
		CacheTTL:  cfg.Cache.TTL,
	}, nil)

	sessions := session.NewStore(cfg.Session.MaxMessages, cfg.Session.TTL)
	defer sessions.Close()

	appCfg := &AppConfig{
		RequestTimeout: cfg.Server.ReadTimeout,
		AllowedOrigins: []string{"*"},
	}

	router := NewRouter(logger, appCfg, res, cls, sessions)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt or error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}
