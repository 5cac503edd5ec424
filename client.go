package netlify

import (
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-openapi/validate"

	"github.com/tomblancdev/netlify-go/internal/middleware"
	"github.com/tomblancdev/netlify-go/observability"
)

const (
	// DefaultBaseURL is the public Netlify API endpoint.
	DefaultBaseURL = "https://api.netlify.com/api/v1"

	// DefaultTimeout bounds each request unless overridden.
	DefaultTimeout = 60 * time.Second

	// EnvAccessToken is read by [NewClientFromEnv].
	EnvAccessToken = "NETLIFY_ACCESS_TOKEN"

	// EnvAPIURL optionally overrides the base URL in [NewClientFromEnv].
	EnvAPIURL = "NETLIFY_API_URL"
)

// Client is the Netlify API client.
//
// A Client holds only immutable configuration once built and is safe for
// concurrent use by multiple goroutines.
type Client struct {
	token           string
	baseURL         string
	userAgent       string
	timeout         time.Duration
	httpClient      *http.Client
	logger          observability.Logger
	metrics         observability.MetricsRecorder
	rateLimit       int
	deployRateLimit int

	transport *Transport
}

// NewClient creates a new Netlify client authenticated with accessToken.
//
//	client, err := netlify.NewClient(os.Getenv("NETLIFY_ACCESS_TOKEN"),
//	    netlify.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewClient(accessToken string, opts ...Option) (*Client, error) {
	if err := validate.RequiredString("accessToken", "client", accessToken); err != nil {
		return nil, err
	}

	c := &Client{
		token:     accessToken,
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", c.baseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Newf("invalid base URL %q: scheme must be http or https", c.baseURL)
	}

	if c.logger == nil {
		c.logger = observability.NoopLogger()
	}
	if c.metrics == nil {
		c.metrics = observability.NoopMetricsRecorder()
	}

	c.transport = &Transport{
		token:      c.token,
		baseURL:    c.baseURL,
		userAgent:  c.userAgent,
		timeout:    c.timeout,
		httpClient: c.httpClient,
		logger:     c.logger.With(observability.Field{Key: "component", Value: "netlify"}),
		metrics:    c.metrics,
		limiter:    middleware.PerMinute(c.rateLimit),
		deployRate: middleware.PerMinute(c.deployRateLimit),
	}

	return c, nil
}

// NewClientFromEnv creates a client from NETLIFY_ACCESS_TOKEN and, when
// set, NETLIFY_API_URL. Explicit options take precedence over the
// environment.
func NewClientFromEnv(opts ...Option) (*Client, error) {
	token := os.Getenv(EnvAccessToken)
	if token == "" {
		return nil, errors.Newf("%s is not set", EnvAccessToken)
	}

	if apiURL := os.Getenv(EnvAPIURL); apiURL != "" {
		opts = append([]Option{WithBaseURL(apiURL)}, opts...)
	}

	return NewClient(token, opts...)
}

// Transport returns the transport used by the endpoint methods. It can
// issue calls for endpoints this package does not wrap.
func (c *Client) Transport() *Transport {
	return c.transport
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UserAgent returns the User-Agent sent with every request.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// Timeout returns the default per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}
