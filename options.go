package netlify

import (
	"net/http"
	"time"

	"github.com/tomblancdev/netlify-go/observability"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API base URL, including its path prefix.
// Default: https://api.netlify.com/api/v1.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the default request timeout. Values <= 0 are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
//
// The client is copied, never mutated. Its transport is reused across
// calls, so connection reuse follows that transport's settings, and its
// redirect policy applies. Per-call timeouts still come from the client
// configuration.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger receiving request traces. Successful requests
// are logged at debug level, error statuses at warn level.
//
//	zl := zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
//	client, err := netlify.NewClient(token,
//	    netlify.WithLogger(observability.NewZerologLogger(zl)),
//	)
func WithLogger(logger observability.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics sets the recorder for request metrics.
func WithMetrics(metrics observability.MetricsRecorder) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// WithRateLimit limits the client to n requests per minute. Requests over
// the limit wait, honoring their context. n <= 0 disables limiting, which
// is the default.
func WithRateLimit(n int) Option {
	return func(c *Client) {
		c.rateLimit = n
	}
}

// WithDeployRateLimit applies a separate per-minute limit to deploy
// creation. Netlify limits deploys more tightly than other calls.
func WithDeployRateLimit(n int) Option {
	return func(c *Client) {
		c.deployRateLimit = n
	}
}
