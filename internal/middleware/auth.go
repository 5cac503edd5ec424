// Package middleware holds the http.RoundTripper layers installed on every
// API call: authentication, request tracing and client-side rate limiting.
package middleware

import "net/http"

// BearerToken sets "Authorization: Bearer <token>" on a copy of each
// outgoing request. The caller's request keeps its headers.
func BearerToken(token string) func(http.RoundTripper) http.RoundTripper {
	value := "Bearer " + token
	return func(next http.RoundTripper) http.RoundTripper {
		return &bearerTransport{next: next, value: value}
	}
}

type bearerTransport struct {
	next  http.RoundTripper
	value string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("Authorization", t.value)

	//nolint:wrapcheck // Errors from the inner transport surface unchanged
	return t.next.RoundTrip(out)
}
