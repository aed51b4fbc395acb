// Package main provides the matching API server entry point.
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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/admission"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/app"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/background"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/buildinfo"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/config"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/logger"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/metrics"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/pipeline"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/program"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/refdata"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.WithField("version", buildinfo.Version).
		WithField("commit", buildinfo.Commit).
		Info("Starting PTT StudyAbroad API")

	db, err := storage.New(cfg.SQLitePath())
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer func() { _ = db.Close() }()
	log.WithField("path", cfg.SQLitePath()).Info("Database connected")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	tables := refdata.Load()
	programs := program.NewResolver(tables)
	bg := background.NewResolver(tables)
	adm := admission.NewParser(tables, programs)

	// Ingest the crawled articles dump when one is present; the server
	// still starts on an empty corpus otherwise.
	if _, err := os.Stat(cfg.ArticlesPath); err == nil {
		pipe := pipeline.New(db, bg, adm, m, log, cfg.PipelineWorkers)
		if err := pipe.Run(context.Background(), cfg.ArticlesPath); err != nil {
			log.WithError(err).Fatal("Ingest pipeline failed")
		}
	} else {
		log.WithField("path", cfg.ArticlesPath).Warn("Articles dump not found, serving existing corpus")
	}

	handler := app.NewHandler(db, bg, adm, programs, m, log)

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(log))

	setupRoutes(router, handler, db, registry)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	log.Info("Server stopped")
}
