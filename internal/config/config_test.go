package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port '8080', got '%s'", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected default shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.ArticlesPath != filepath.Join("data", "studyabroad.json") {
		t.Errorf("Unexpected default articles path '%s'", cfg.ArticlesPath)
	}
	if cfg.PipelineWorkers < 1 {
		t.Errorf("Expected at least 1 pipeline worker, got %d", cfg.PipelineWorkers)
	}
}

func TestLoadOverrides(t *testing.T) {
	_ = os.Setenv(EnvPort, "9090")
	_ = os.Setenv(EnvShutdownTimeout, "30s")
	_ = os.Setenv(EnvPipelineWorkers, "3")
	defer func() { _ = os.Unsetenv(EnvPort) }()
	defer func() { _ = os.Unsetenv(EnvShutdownTimeout) }()
	defer func() { _ = os.Unsetenv(EnvPipelineWorkers) }()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port '9090', got '%s'", cfg.Port)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.PipelineWorkers != 3 {
		t.Errorf("Expected 3 pipeline workers, got %d", cfg.PipelineWorkers)
	}
}

func TestLoadRejectsZeroWorkers(t *testing.T) {
	_ = os.Setenv(EnvPipelineWorkers, "0")
	defer func() { _ = os.Unsetenv(EnvPipelineWorkers) }()

	if _, err := Load(); err == nil {
		t.Error("Expected error for zero pipeline workers, got nil")
	}
}

func TestSQLitePath(t *testing.T) {
	cfg := &Config{DataDir: "data"}
	want := filepath.Join("data", "studyabroad.db")
	if got := cfg.SQLitePath(); got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
}
