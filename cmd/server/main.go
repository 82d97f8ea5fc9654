// Package main provides the hotel chat bot server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jeeshotel/hotelbot/internal/buildinfo"
	"github.com/jeeshotel/hotelbot/internal/catalog"
	"github.com/jeeshotel/hotelbot/internal/config"
	"github.com/jeeshotel/hotelbot/internal/dialogue"
	"github.com/jeeshotel/hotelbot/internal/hotel"
	"github.com/jeeshotel/hotelbot/internal/logger"
	"github.com/jeeshotel/hotelbot/internal/metrics"
	"github.com/jeeshotel/hotelbot/internal/nlp"
	"github.com/jeeshotel/hotelbot/internal/profile"
	"github.com/jeeshotel/hotelbot/internal/ratelimit"
	"github.com/jeeshotel/hotelbot/internal/sentry"
	"github.com/jeeshotel/hotelbot/internal/webhook"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)
	log.WithField("version", buildinfo.Version).
		WithField("commit", buildinfo.Commit).
		Info("Starting Jees Hotel bot server")

	// Initialize error reporting (no-op without a token)
	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.SentryToken,
		Host:        cfg.SentryHost,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Version,
	}); err != nil {
		log.WithError(err).Error("Failed to initialize Sentry, continuing without error reporting")
	}
	defer sentry.Flush(2 * time.Second)

	// Create metrics
	m := metrics.New()
	log.Info("Metrics initialized")

	// Per-user message rate limiter
	limiter := ratelimit.NewKeyedInterval(ratelimit.KeyedConfig{
		Name:          "chat",
		MinInterval:   cfg.Bot.MinMessageInterval,
		CleanupPeriod: cfg.Bot.RateLimitCleanupPeriod,
		OnDrop: func(name string) {
			m.RateLimitDropsTotal.WithLabelValues(name).Inc()
		},
	})
	defer limiter.Stop()

	// Assemble the dialogue engine
	info := hotel.Default()
	cat := catalog.New(info)
	if err := cat.Validate(); err != nil {
		log.WithError(err).Error("Response catalog is incomplete")
		os.Exit(1)
	}

	store := profile.NewStore()
	responder := dialogue.New(dialogue.Deps{
		Config:  cfg.Bot,
		Hotel:   info,
		Store:   store,
		Catalog: cat,
		Canon:   nlp.New(nlp.DefaultGroups(), cfg.Bot.FuzzyThreshold),
		Limiter: limiter,
		Metrics: m,
		Logger:  log,
	})
	log.Info("Dialogue engine created")

	chatHandler := webhook.NewHandler(responder, log)

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))

	// Setup routes
	setupRoutes(router, chatHandler, m, cfg, store)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Failed to start server")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	log.Info("Server stopped")
}
