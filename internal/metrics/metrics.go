package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the client.
// It includes counters for cache reads, fetches and invalidations,
// a histogram for API request duration and a gauge for the last dashboard refresh.
type Metrics struct {
	CacheReads           *prometheus.CounterVec
	Fetches              *prometheus.CounterVec
	Invalidations        *prometheus.CounterVec
	StaleDiscarded       *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
	RequestFailures      *prometheus.CounterVec
	ValidationFailures   *prometheus.CounterVec
	LastDashboardRefresh prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		CacheReads: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_cache_reads_total",
			Help: "Total cache reads by resource and result (hit, miss, shared).",
		}, []string{"resource", "result"}),
		Fetches: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_cache_fetches_total",
			Help: "Total network fetches started by the cache.",
		}, []string{"resource"}),
		Invalidations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_cache_invalidations_total",
			Help: "Total query keys marked stale.",
		}, []string{"resource"}),
		StaleDiscarded: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_cache_stale_responses_total",
			Help: "Fetch responses discarded because the key was invalidated while in flight.",
		}, []string{"resource"}),
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrms_api_request_duration_seconds",
			Help:    "Duration of HRMS API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}), // op: 'list employees', 'create attendance'
		RequestFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_api_request_failures_total",
			Help: "Total HRMS API requests that failed in transport or were rejected by the server.",
		}, []string{"op"}),
		ValidationFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_form_validation_failures_total",
			Help: "Total submissions blocked by local form validation.",
		}, []string{"form"}),
		LastDashboardRefresh: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "hrms_dashboard_last_refresh_timestamp",
			Help: "Last time the dashboard summary was recomputed.",
		}),
	}

	for _, result := range []string{"hit", "miss", "shared"} {
		metrics.CacheReads.WithLabelValues("employee", result)
		metrics.CacheReads.WithLabelValues("attendance", result)
	}

	return metrics
}
