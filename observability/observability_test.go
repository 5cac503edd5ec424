package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()

	assert.NotPanics(t, func() {
		logger.Debug("debug", Field{Key: "k", Value: 1})
		logger.Info("info")
		logger.Warn("warn")
		logger.Error("error")
		logger.With(Field{Key: "k", Value: "v"}).Debug("child")
	})
}

func TestNoopMetricsRecorder(t *testing.T) {
	metrics := NoopMetricsRecorder()

	assert.NotPanics(t, func() {
		metrics.RecordHTTPRequest("GET", "/sites", 200, time.Second)
		metrics.RecordRateLimit("default", time.Millisecond)
		metrics.RecordError("http_request", "NetworkError")
	})
}

// TestZerologLogger_Fields tests that structured fields reach the JSON output.
func TestZerologLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.With(Field{Key: "component", Value: "transport"}).Debug("http request completed",
		Field{Key: "method", Value: "GET"},
		Field{Key: "status", Value: 200},
		Field{Key: "error", Value: errors.New("boom")},
		Field{Key: "extra", Value: []string{"a"}},
	)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "http request completed", line["message"])
	assert.Equal(t, "transport", line["component"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, float64(200), line["status"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, []any{"a"}, line["extra"])
}

// TestZerologLogger_LevelFiltering tests that disabled levels emit nothing.
func TestZerologLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	logger.Debug("hidden")
	logger.Info("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn("shown")
	logger.Error("shown too")
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

// TestPrometheusRecorder tests counters and histograms registration.
func TestPrometheusRecorder(t *testing.T) {
	// Use a new registry to avoid conflicts with other tests
	reg := prometheus.NewRegistry()
	rec := NewPrometheusRecorder(reg, "netlify")

	rec.RecordHTTPRequest("GET", "/sites/:id", 200, 150*time.Millisecond)
	rec.RecordHTTPRequest("GET", "/sites/:id", 200, 50*time.Millisecond)
	rec.RecordHTTPRequest("GET", "/sites/:id", 404, 10*time.Millisecond)
	rec.RecordError("http_request", "NetworkError")
	rec.RecordRateLimit("default", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.RequestsTotal.WithLabelValues("GET", "/sites/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RequestsTotal.WithLabelValues("GET", "/sites/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.ErrorsTotal.WithLabelValues("http_request", "NetworkError")))
	assert.Equal(t, 2, testutil.CollectAndCount(rec.RequestsTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.RequestDuration))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.RateLimitWait))

	// Registering the same namespace twice must fail loudly.
	assert.Panics(t, func() { NewPrometheusRecorder(reg, "netlify") })
}
