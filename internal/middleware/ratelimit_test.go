package middleware_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/tomblancdev/netlify-go/internal/middleware"
)

func okTransport(calls *int) http.RoundTripper {
	return roundTripFunc(func(*http.Request) (*http.Response, error) {
		*calls++
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})
}

func deploySelector(deploys, general *rate.Limiter) middleware.RateLimiterSelector {
	return func(req *http.Request) (*rate.Limiter, string) {
		if req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/deploys") {
			return deploys, "deploys"
		}
		return general, "default"
	}
}

func send(t *testing.T, rt http.RoundTripper, ctx context.Context, method, path string) error {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, method, "https://api.netlify.com/api/v1"+path, http.NoBody)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	return err
}

func TestRateLimit_DeployLimiterDelaysOnlyDeploys(t *testing.T) {
	t.Parallel()

	var calls int
	metrics := &recordingMetrics{}
	logger := &recordingLogger{}
	deploys := rate.NewLimiter(rate.Every(80*time.Millisecond), 1)
	transport := middleware.RateLimit(middleware.RateLimitConfig{
		Selector: deploySelector(deploys, nil),
		Logger:   logger,
		Metrics:  metrics,
	})(okTransport(&calls))

	ctx := context.Background()
	require.NoError(t, send(t, transport, ctx, http.MethodPost, "/sites/abc/deploys"))

	start := time.Now()
	for range 3 {
		require.NoError(t, send(t, transport, ctx, http.MethodGet, "/sites"))
	}
	assert.Less(t, time.Since(start), 40*time.Millisecond)

	start = time.Now()
	require.NoError(t, send(t, transport, ctx, http.MethodPost, "/sites/abc/deploys"))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)

	assert.Equal(t, 5, calls)
	assert.Equal(t, []string{"deploys"}, metrics.waits)
	require.Len(t, logger.entries, 1)
	assert.Equal(t, "rate limit delay", logger.entries[0].msg)
	assert.Equal(t, "/api/v1/sites/abc/deploys", logger.entries[0].fields["path"])
}

func TestRateLimit_NoLimiterPassesThrough(t *testing.T) {
	t.Parallel()

	for name, cfg := range map[string]middleware.RateLimitConfig{
		"nil selector":          {},
		"selector returns none": {Selector: deploySelector(nil, nil)},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var calls int
			transport := middleware.RateLimit(cfg)(okTransport(&calls))
			for range 5 {
				require.NoError(t, send(t, transport, context.Background(), http.MethodPost, "/sites/abc/deploys"))
			}
			assert.Equal(t, 5, calls)
		})
	}
}

func TestRateLimit_DeadlineDuringWait(t *testing.T) {
	t.Parallel()

	var calls int
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	transport := middleware.RateLimit(middleware.RateLimitConfig{
		Selector: deploySelector(nil, limiter),
	})(okTransport(&calls))

	require.NoError(t, send(t, transport, context.Background(), http.MethodGet, "/user"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := send(t, transport, ctx, http.MethodGet, "/user")

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, calls)
	// The cancelled reservation is returned, so the token count is not
	// pushed a further hour out.
	assert.InDelta(t, 0, limiter.TokensAt(time.Now()), 0.01)
}

func TestPerMinute(t *testing.T) {
	t.Parallel()

	assert.Nil(t, middleware.PerMinute(0))
	assert.Nil(t, middleware.PerMinute(-3))

	limiter := middleware.PerMinute(60)
	require.NotNil(t, limiter)
	assert.InDelta(t, 1.0, float64(limiter.Limit()), 1e-9)
	assert.Equal(t, 1, limiter.Burst())
}
