// Package httpclient builds the *http.Client used for Netlify API calls
// from a base transport and an ordered list of round-tripper wrappers.
package httpclient

import (
	"net/http"
	"time"
)

// DefaultTimeout applies when neither WithTimeout nor WithHTTPClient is given.
const DefaultTimeout = 60 * time.Second

// Client pairs an *http.Client with the transport it was built on.
type Client struct {
	base       *http.Client
	middleware []Middleware
	inner      http.RoundTripper
}

// Middleware decorates a RoundTripper. The first one given to
// WithMiddleware sees the request first.
type Middleware func(http.RoundTripper) http.RoundTripper

// New returns a client built from opts.
func New(opts ...Option) *Client {
	c := &Client{
		base: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.inner = c.base.Transport
	if c.inner == nil {
		c.inner = http.DefaultTransport
	}

	if len(c.middleware) > 0 {
		rt := c.inner
		for i := len(c.middleware) - 1; i >= 0; i-- {
			rt = c.middleware[i](rt)
		}
		c.base.Transport = rt
	}

	return c
}

// NewEphemeralTransport clones http.DefaultTransport with keep-alives off,
// so every request dials and the connection closes with the response body.
func NewEphemeralTransport() *http.Transport {
	//nolint:forcetypeassert // DefaultTransport is always *http.Transport
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DisableKeepAlives = true
	return t
}

// Do sends req through the middleware chain.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	//nolint:wrapcheck // Callers inspect *url.Error directly
	return c.base.Do(req)
}

// HTTPClient exposes the assembled client.
func (c *Client) HTTPClient() *http.Client {
	return c.base
}

// CloseIdleConnections closes idle connections of the innermost transport.
// Middleware wrappers are skipped, so the call reaches the connection pool
// even when none of them forwards it.
func (c *Client) CloseIdleConnections() {
	if closer, ok := c.inner.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
}
