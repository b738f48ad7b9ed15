package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	sessionsIssued = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "sessions",
		Name:      "issued_total",
		Help:      "Number of sessions issued on successful login.",
	})
	sessionsExpired = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "sessions",
		Name:      "expired_total",
		Help:      "Number of sessions lazily deleted on an expired read.",
	})
	sessionsRevoked = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "sessions",
		Name:      "revoked_total",
		Help:      "Number of sessions revoked by explicit logout.",
	})
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, partitioned by method and status code.",
	}, []string{"method", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fittrack",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(sessionsIssued, sessionsExpired, sessionsRevoked, httpRequests, httpDuration)
}

// RecordSessionIssued counts a login that produced a session.
func RecordSessionIssued() {
	sessionsIssued.Inc()
}

// RecordSessionExpired counts a lazy expiry deletion.
func RecordSessionExpired() {
	sessionsExpired.Inc()
}

// RecordSessionRevoked counts an explicit logout.
func RecordSessionRevoked() {
	sessionsRevoked.Inc()
}

// RecordRequest counts a completed HTTP request and its latency.
func RecordRequest(method string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
