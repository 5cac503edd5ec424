package middleware

import (
	"net/http"
	"regexp"
	"time"

	"github.com/tomblancdev/netlify-go/observability"
)

// Observability returns a middleware that logs and records metrics for HTTP requests.
// Every completed response is logged at debug level, or warn when the status is >= 400.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{
			next:    next,
			logger:  logger,
			metrics: metrics,
		}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	urlStr := req.URL.String()

	t.logger.Debug("http request started",
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "url", Value: urlStr},
	)

	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.logger.Error("http request failed",
			observability.Field{Key: "method", Value: req.Method},
			observability.Field{Key: "url", Value: urlStr},
			observability.Field{Key: "duration", Value: duration},
			observability.Field{Key: "error", Value: err.Error()},
		)

		t.metrics.RecordError("http_request", "NetworkError")

		//nolint:wrapcheck // Observability middleware logs error but passes it through unchanged
		return nil, err
	}

	fields := []observability.Field{
		{Key: "method", Value: req.Method},
		{Key: "url", Value: urlStr},
		{Key: "status", Value: resp.StatusCode},
		{Key: "duration", Value: duration},
	}

	if resp.StatusCode >= http.StatusBadRequest {
		t.logger.Warn("http request completed with error", fields...)
	} else {
		t.logger.Debug("http request completed", fields...)
	}

	t.metrics.RecordHTTPRequest(req.Method, NormalizePath(req.URL.Path), resp.StatusCode, duration)

	return resp, nil
}

var (
	// filePathPattern matches everything after a files collection: site file
	// paths and deploy upload paths contain slashes of their own.
	filePathPattern = regexp.MustCompile(`/files/.+$`)
	// resourceIDPattern matches the identifier that follows a sites or deploys collection.
	resourceIDPattern = regexp.MustCompile(`/(sites|deploys)/[^/]+`)
	// accountSitesPattern matches /{account_slug}/sites at the end of a path.
	accountSitesPattern = regexp.MustCompile(`/([^/]+)/sites$`)
	// versionSegmentPattern matches API prefix segments such as "api" or "v1".
	versionSegmentPattern = regexp.MustCompile(`^(api|v\d+)$`)
)

// NormalizePath replaces dynamic path segments (site and deploy ids, account
// slugs, file paths) with placeholders so metric labels stay bounded.
//
// Examples:
//   - /api/v1/sites/3970e0fe-8564-4903-9a55-c5f8de49fb8b → /api/v1/sites/:id
//   - /api/v1/acme/sites → /api/v1/:account/sites
//   - /api/v1/sites/abc/files/css/main.css → /api/v1/sites/:id/files/:path
//   - /api/v1/deploys/5f1a/files/index.html → /api/v1/deploys/:id/files/:path
func NormalizePath(path string) string {
	normalized := filePathPattern.ReplaceAllString(path, "/files/:path")

	normalized = accountSitesPattern.ReplaceAllStringFunc(normalized, func(match string) string {
		slug := accountSitesPattern.FindStringSubmatch(match)[1]
		if versionSegmentPattern.MatchString(slug) {
			return match
		}
		return "/:account/sites"
	})

	return resourceIDPattern.ReplaceAllString(normalized, "/$1/:id")
}
