// Package main provides the matching API server entry point.
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/app"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/buildinfo"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/storage"
)

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, handler *app.Handler, db *storage.DB, registry *prometheus.Registry) {
	rootHandler := func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "https://github.com/alvinbhou/ptt-studyabroad-api")
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Liveness probe: process is up, nothing else is checked.
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": buildinfo.Version})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness probe: the corpus must be queryable.
	readyHandler := func(c *gin.Context) {
		counts, err := db.CountArticlesByType(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ready",
			"articles": counts,
		})
	}
	router.GET("/readyz", readyHandler)
	router.HEAD("/readyz", readyHandler)

	router.POST("/admission", handler.RankAdmission)
	router.POST("/school-choice", handler.RankSchoolChoice)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
