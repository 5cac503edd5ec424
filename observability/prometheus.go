package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusRecorder records client metrics as Prometheus collectors.
type PrometheusRecorder struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RateLimitWait   *prometheus.HistogramVec
	ErrorsTotal     *prometheus.CounterVec
}

var _ MetricsRecorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder registers the client collectors with reg under
// namespace. Passing prometheus.DefaultRegisterer exposes them on the
// default /metrics handler.
func NewPrometheusRecorder(reg prometheus.Registerer, namespace string) *PrometheusRecorder {
	factory := promauto.With(reg)

	return &PrometheusRecorder{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of API requests by method, path and status",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"method", "path"},
		),
		RateLimitWait: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rate_limit_wait_seconds",
				Help:      "Time spent waiting on the client-side rate limiter",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		ErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of client errors by operation and type",
			},
			[]string{"operation", "type"},
		),
	}
}

func (r *PrometheusRecorder) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	r.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	r.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) RecordRateLimit(endpoint string, wait time.Duration) {
	r.RateLimitWait.WithLabelValues(endpoint).Observe(wait.Seconds())
}

func (r *PrometheusRecorder) RecordError(operation, errorType string) {
	r.ErrorsTotal.WithLabelValues(operation, errorType).Inc()
}
