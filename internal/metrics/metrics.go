// Package metrics provides Prometheus metrics collection for the dispatch service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// OrdersConfirmedTotal counts compositions turned into orders.
	OrdersConfirmedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_confirmed_total",
			Help: "Total number of confirmed orders",
		},
	)

	// CompositionRejectionsTotal counts refused confirms and adds by reason.
	CompositionRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "composition_rejections_total",
			Help: "Total number of rejected composition operations",
		},
		[]string{"reason"},
	)

	// OrderOperationsTotal counts changes to confirmed orders.
	OrderOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_operations_total",
			Help: "Total number of operations on confirmed orders",
		},
		[]string{"operation", "result"},
	)

	// VehicleUtilization records capacity use at confirm time.
	VehicleUtilization = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vehicle_utilization_percent",
			Help:    "Vehicle capacity utilization of confirmed orders",
			Buckets: []float64{10, 25, 50, 75, 90, 100, 110, 150},
		},
		[]string{"dimension"},
	)

	// DraftSyncTotal counts draft mirror writes.
	DraftSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draft_sync_total",
			Help: "Total number of draft mirror writes",
		},
		[]string{"result"},
	)

	// DraftSyncQueueDepth is the number of drafts waiting to be mirrored.
	DraftSyncQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "draft_sync_queue_depth",
			Help: "Drafts waiting to be written to the mirror",
		},
	)

	// SnapshotRefreshTotal counts catalog and open order reads.
	SnapshotRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_refresh_total",
			Help: "Total number of snapshot refreshes",
		},
		[]string{"result"},
	)

	// SnapshotRefreshDuration tracks how long a snapshot read takes.
	SnapshotRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "snapshot_refresh_duration_seconds",
			Help:    "Snapshot refresh duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	// ActiveSessions is the number of compositions held in memory.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "composition_sessions_active",
			Help: "Composition sessions held in memory",
		},
	)

	// PanicsRecoveredTotal counts handler panics turned into 500s.
	PanicsRecoveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Handler panics recovered by the HTTP middleware",
		},
		[]string{"path"},
	)

	// CircuitBreakerState is 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordOrderConfirmed counts a confirmed order and its utilization.
// Utilization is skipped when the vehicle is unknown to the catalog.
func RecordOrderConfirmed(weightPct, volumePct int, vehicleKnown bool) {
	OrdersConfirmedTotal.Inc()
	if vehicleKnown {
		VehicleUtilization.WithLabelValues("weight").Observe(float64(weightPct))
		VehicleUtilization.WithLabelValues("volume").Observe(float64(volumePct))
	}
}

// RecordRejection counts a rejected composition operation.
func RecordRejection(reason string) {
	CompositionRejectionsTotal.WithLabelValues(reason).Inc()
}

// RecordOrderOperation counts an adjust or cancel on a confirmed order.
func RecordOrderOperation(operation, result string) {
	OrderOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordDraftSync counts a draft mirror write.
func RecordDraftSync(result string) {
	DraftSyncTotal.WithLabelValues(result).Inc()
}

// SetDraftQueueDepth updates the pending draft gauge.
func SetDraftQueueDepth(n int) {
	DraftSyncQueueDepth.Set(float64(n))
}

// RecordSnapshotRefresh records one snapshot read.
func RecordSnapshotRefresh(duration time.Duration, result string) {
	SnapshotRefreshDuration.Observe(duration.Seconds())
	SnapshotRefreshTotal.WithLabelValues(result).Inc()
}

// SetActiveSessions updates the in-memory session gauge.
func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}

// SetCircuitBreakerState publishes a breaker's state.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordPanic counts a recovered panic on the route template path.
func RecordPanic(path string) {
	if path == "" {
		path = "unmatched"
	}
	PanicsRecoveredTotal.WithLabelValues(path).Inc()
}
