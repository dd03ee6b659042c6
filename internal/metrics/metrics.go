package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics.
var (
	RowsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nlt_rows_processed_total",
		Help: "Rows processed by result",
	}, []string{"result"})

	RowDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nlt_row_duration_seconds",
		Help:    "Per-row processing duration in seconds",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10},
	})

	TransliterationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nlt_transliterations_total",
		Help: "Proper-noun values routed to the phonetic transliterator",
	})

	BatchFilesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nlt_batch_files_written_total",
		Help: "Output batch files written",
	})
)

// Translation dependency metrics.
var (
	LLMTranslationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nlt_llm_translation_duration_seconds",
		Help:    "LLM translation call duration in seconds",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30},
	})

	LLMCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nlt_llm_calls_total",
		Help: "LLM calls by result",
	}, []string{"result"})

	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nlt_cache_lookups_total",
		Help: "Translation cache lookups by result",
	}, []string{"result"})

	RateLimitWaits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nlt_rate_limit_waits_total",
		Help: "Times a worker had to wait for the LLM rate limit window",
	})
)

// Connection pool metrics, exported only when the cache runs on Postgres.
var (
	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nlt_db_pool_total_conns",
		Help: "Total connections in the pgx pool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nlt_db_pool_idle_conns",
		Help: "Idle connections in the pgx pool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nlt_db_pool_acquired_conns",
		Help: "Acquired connections in the pgx pool",
	})

	DBPoolMaxConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nlt_db_pool_max_conns",
		Help: "Maximum connections allowed in the pgx pool",
	})
)
