// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, data paths and the extraction pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir      string // Directory for the SQLite database
	ArticlesPath string // Path of the crawled articles JSON batch

	// Pipeline Configuration
	PipelineWorkers int // Concurrent per-post extraction workers
}

// Load reads configuration from environment variables.
// A .env file is loaded first when present (development convenience).
func Load() (*Config, error) {
	// Ignore error: .env is optional, real deployments set env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv(EnvPort, "8080"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDuration(EnvShutdownTimeout, 10*time.Second),
		DataDir:         getEnv(EnvDataDir, "data"),
		ArticlesPath:    getEnv(EnvArticlesPath, filepath.Join("data", "studyabroad.json")),
		PipelineWorkers: getInt(EnvPipelineWorkers, runtime.NumCPU()),
	}

	if cfg.PipelineWorkers < 1 {
		return nil, fmt.Errorf("%s must be at least 1, got %d", EnvPipelineWorkers, cfg.PipelineWorkers)
	}

	return cfg, nil
}

// SQLitePath returns the path of the SQLite database file.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "studyabroad.db")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
