package metrics

import (
	"regexp"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// LoginsTotal counts login attempts by result (success, failure).
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	// VisitsTotal counts hits to the session visit counter page.
	VisitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "visits_total",
			Help: "Total number of visit counter page hits",
		},
	)
)

var numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)

func init() {
	prometheus.MustRegister(RequestDuration, RequestTotal, LoginsTotal, VisitsTotal)
}

// NormalizePath reduces label cardinality by replacing numeric path
// segments with {id} (e.g. /posts/3 -> /posts/{id}).
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records one finished HTTP request.
func RecordRequest(method, path string, status int, durationSeconds float64) {
	labels := []string{method, NormalizePath(path), strconv.Itoa(status)}
	RequestDuration.WithLabelValues(labels...).Observe(durationSeconds)
	RequestTotal.WithLabelValues(labels...).Inc()
}

// RecordLogin records a login attempt outcome.
func RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	LoginsTotal.WithLabelValues(result).Inc()
}
