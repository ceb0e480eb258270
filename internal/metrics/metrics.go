// internal/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/javajoker/launchpad-backend/internal/models"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "launchpad",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "launchpad",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "launchpad",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	moderationDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "launchpad",
			Subsystem: "moderation",
			Name:      "decisions_total",
			Help:      "Moderation decisions applied, by resulting status.",
		},
		[]string{"status"},
	)

	engagements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "launchpad",
			Name:      "engagements_total",
			Help:      "Upvote and report attempts, by outcome.",
		},
		[]string{"kind", "result"},
	)

	productsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "launchpad",
			Name:      "products_by_status",
			Help:      "Products per moderation bucket at the last digest run.",
		},
		[]string{"bucket"},
	)
)

// Engagement outcomes.
const (
	ResultRecorded  = "recorded"
	ResultDuplicate = "duplicate"
	ResultNotFound  = "not_found"
	ResultError     = "error"
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		moderationDecisions,
		engagements,
		productsByStatus,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RequestStarted() {
	httpInFlight.Inc()
}

// RecordHTTPRequest closes out one request. path is the route template.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpInFlight.Dec()
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordDecision(status models.ProductStatus) {
	moderationDecisions.WithLabelValues(string(status)).Inc()
}

func RecordEngagement(kind, result string) {
	engagements.WithLabelValues(kind, result).Inc()
}

func SetStatusCounts(counts models.StatusCounts) {
	productsByStatus.WithLabelValues("accepted").Set(float64(counts.Accepted))
	productsByStatus.WithLabelValues("pending").Set(float64(counts.Pending))
	productsByStatus.WithLabelValues("rejected").Set(float64(counts.Rejected))
	productsByStatus.WithLabelValues("notReviewed").Set(float64(counts.NotReviewed))
}
