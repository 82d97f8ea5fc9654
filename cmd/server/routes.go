// Package main provides the hotel chat bot server entry point.
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jeeshotel/hotelbot/internal/buildinfo"
	"github.com/jeeshotel/hotelbot/internal/config"
	"github.com/jeeshotel/hotelbot/internal/metrics"
	"github.com/jeeshotel/hotelbot/internal/profile"
	"github.com/jeeshotel/hotelbot/internal/webhook"
)

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, chatHandler *webhook.Handler, m *metrics.Metrics, cfg *config.Config, store *profile.Store) {
	// Root endpoint - send visitors to the chat widget
	rootHandler := func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/chatbot")
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Health check endpoints
	// Liveness Probe - only checks that the process is running
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness Probe - the bot has no external dependencies (the catalog
	// is validated at startup), so ready reports build identity and the
	// in-memory state size
	readyHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ready",
			"version":  buildinfo.Version,
			"commit":   buildinfo.Commit,
			"profiles": store.Len(),
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Chat API and widget
	router.POST("/api", chatHandler.Handle)
	router.GET("/chatbot", chatHandler.Widget)

	// Prometheus metrics endpoint, Basic Auth protected when a password
	// is configured
	metricsHandler := gin.WrapH(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	if cfg.MetricsPassword != "" {
		authorized := router.Group("/", gin.BasicAuth(gin.Accounts{
			cfg.MetricsUsername: cfg.MetricsPassword,
		}))
		authorized.GET("/metrics", metricsHandler)
	} else {
		router.GET("/metrics", metricsHandler)
	}
}
