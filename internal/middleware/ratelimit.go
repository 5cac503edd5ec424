package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/tomblancdev/netlify-go/observability"
)

// RateLimiterSelector picks the limiter guarding req and the endpoint label
// reported to metrics. A nil limiter lets the request through unthrottled.
type RateLimiterSelector func(req *http.Request) (*rate.Limiter, string)

// RateLimitConfig configures RateLimit. A nil Selector disables limiting.
type RateLimitConfig struct {
	Selector RateLimiterSelector
	Logger   observability.Logger
	Metrics  observability.MetricsRecorder
}

// PerMinute builds a limiter allowing n requests per minute with a burst of one.
// n <= 0 returns nil, which disables limiting.
func PerMinute(n int) *rate.Limiter {
	if n <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), 1)
}

// RateLimit returns a middleware that delays requests until the selected
// limiter admits them. A request whose context ends while waiting fails with
// the context error and gives its reservation back.
func RateLimit(cfg RateLimitConfig) func(http.RoundTripper) http.RoundTripper {
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &rateLimitTransport{
			next:     next,
			selector: cfg.Selector,
			logger:   cfg.Logger,
			metrics:  cfg.Metrics,
		}
	}
}

type rateLimitTransport struct {
	next     http.RoundTripper
	selector RateLimiterSelector
	logger   observability.Logger
	metrics  observability.MetricsRecorder
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.selector != nil {
		if limiter, endpoint := t.selector(req); limiter != nil {
			if err := t.wait(req.Context(), limiter, endpoint, req.URL.Path); err != nil {
				return nil, err
			}
		}
	}

	//nolint:wrapcheck // Errors from the inner transport surface unchanged
	return t.next.RoundTrip(req)
}

func (t *rateLimitTransport) wait(ctx context.Context, limiter *rate.Limiter, endpoint, path string) error {
	reservation := limiter.Reserve()
	if !reservation.OK() {
		return errors.New("rate limit reservation failed")
	}

	delay := reservation.Delay()
	if delay <= 0 {
		return nil
	}

	t.logger.Debug("rate limit delay",
		observability.Field{Key: "endpoint", Value: endpoint},
		observability.Field{Key: "delay", Value: delay},
		observability.Field{Key: "path", Value: path},
	)
	t.metrics.RecordRateLimit(endpoint, delay)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		reservation.Cancel()
		return errors.Wrap(ctx.Err(), "context canceled during rate limit wait")
	}
}
