package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for AirEase
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Search Metrics
	SearchesTotal        prometheus.CounterVec
	ProviderFallbacks    prometheus.CounterVec
	ProviderCallDuration prometheus.HistogramVec

	// Scoring Metrics
	FlightsScoredTotal prometheus.Counter
	ScoringDuration    prometheus.Histogram
	RescoresTotal      prometheus.CounterVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Enrichment Metrics
	SeatMapEnrichmentsTotal prometheus.Counter
	MetadataLookupsTotal    prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airease_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "airease_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "airease_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Search Metrics
		SearchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airease_searches_total",
				Help: "Total flight searches by persona and result source",
			},
			[]string{"persona", "source"},
		),
		ProviderFallbacks: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airease_provider_fallbacks_total",
				Help: "Provider fallbacks by failed provider and error code",
			},
			[]string{"provider", "error_code"},
		),
		ProviderCallDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "airease_provider_call_duration_seconds",
				Help:    "External provider call latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
			},
			[]string{"provider"},
		),

		// Scoring Metrics
		FlightsScoredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "airease_flights_scored_total",
				Help: "Total flight records scored",
			},
		),
		ScoringDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "airease_scoring_duration_seconds",
				Help:    "Per-search scoring pass duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		RescoresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airease_rescores_total",
				Help: "Persona rescore operations by target persona",
			},
			[]string{"persona"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airease_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airease_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Enrichment Metrics
		SeatMapEnrichmentsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "airease_seatmap_enrichments_total",
				Help: "Flights whose facilities were enriched from seat-map data",
			},
		),
		MetadataLookupsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airease_metadata_lookups_total",
				Help: "Aircraft metadata lookups by outcome (hit, negative_hit, fetched, rate_limited, error)",
			},
			[]string{"outcome"},
		),
	}
}
