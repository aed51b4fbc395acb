// Package config defines environment variable keys for configuration.
package config

const (
	// Server
	EnvPort            = "PTT_PORT"
	EnvLogLevel        = "PTT_LOG_LEVEL"
	EnvShutdownTimeout = "PTT_SHUTDOWN_TIMEOUT"

	// Data
	EnvDataDir      = "PTT_DATA_DIR"
	EnvArticlesPath = "PTT_ARTICLES_PATH"

	// Pipeline
	EnvPipelineWorkers = "PTT_PIPELINE_WORKERS"
)
