package httpclient

import (
	"net/http"
	"time"
)

// Option configures a Client in New.
type Option func(*Client)

// WithHTTPClient starts from a shallow copy of client, so installing
// middleware leaves the caller's Transport field untouched.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			copied := *client
			c.base = &copied
		}
	}
}

// WithTimeout overrides the client timeout. Zero disables it and leaves
// deadlines to the request context.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.base.Timeout = timeout
	}
}

// WithTransport sets the innermost transport that middleware wraps.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.base.Transport = transport
	}
}

// WithMiddleware appends wrappers. WithMiddleware(a, b) yields a(b(transport)).
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, middleware...)
	}
}

// WithCheckRedirect sets the redirect policy.
func WithCheckRedirect(check func(req *http.Request, via []*http.Request) error) Option {
	return func(c *Client) {
		c.base.CheckRedirect = check
	}
}
