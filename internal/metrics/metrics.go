// Package metrics registers the Prometheus metrics the service
// exposes on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ingest pipeline metrics
	ArticlesIngestedTotal *prometheus.CounterVec
	ArticlesSkippedTotal  *prometheus.CounterVec
	PipelineDuration      prometheus.Histogram

	// Extraction metrics
	ExtractionHitsTotal   *prometheus.CounterVec
	ExtractionMissesTotal *prometheus.CounterVec

	// Query metrics
	QueryDurationSeconds *prometheus.HistogramVec
	QueryResultsReturned *prometheus.HistogramVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		ArticlesIngestedTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ptt_articles_ingested_total",
				Help: "Total number of articles ingested by article type",
			},
			[]string{"article_type"}, // ADMISSION, ASK, GENERAL_CS, ALL
		),

		ArticlesSkippedTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ptt_articles_skipped_total",
				Help: "Total number of articles dropped before extraction by reason",
			},
			[]string{"reason"}, // duplicate, invalid
		),

		PipelineDuration: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ptt_pipeline_duration_seconds",
				Help:    "Full ingest pipeline duration in seconds",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
			},
		),

		ExtractionHitsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ptt_extraction_hits_total",
				Help: "Total number of successful extractions by field",
			},
			[]string{"field"}, // university, major, gpa, admission
		),

		ExtractionMissesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ptt_extraction_misses_total",
				Help: "Total number of extractions that found nothing by field",
			},
			[]string{"field"},
		),

		QueryDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ptt_query_duration_seconds",
				Help:    "Ranking query duration in seconds by endpoint",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"endpoint"}, // admission, school_choice
		),

		QueryResultsReturned: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ptt_query_results_returned",
				Help:    "Number of ranked results returned by endpoint",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200},
			},
			[]string{"endpoint"},
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ptt_http_errors_total",
				Help: "Total number of HTTP errors by endpoint and status code",
			},
			[]string{"endpoint", "status"},
		),
	}

	return m
}
