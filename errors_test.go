package netlify_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomblancdev/netlify-go"
)

func intRef(v int) *int       { return &v }
func strRef(v string) *string { return &v }

// TestTransportError_Error tests message rendering.
func TestTransportError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *netlify.TransportError
		want string
	}{
		{
			name: "code and message",
			err: &netlify.TransportError{
				Method: "GET", Path: "/bad_url", StatusCode: 404,
				Code: intRef(404), Message: strRef("Not found"),
			},
			want: "netlify: request to GET /bad_url did not succeed. code: 404, message: 'Not found'",
		},
		{
			name: "errors sorted by key",
			err: &netlify.TransportError{
				Method: "POST", Path: "/sites", StatusCode: 422,
				Errors: map[string]any{"name": "taken", "domain": "invalid"},
			},
			want: "netlify: request to POST /sites did not succeed. errors: {domain: invalid, name: taken}",
		},
		{
			name: "no detail",
			err:  &netlify.TransportError{Method: "DELETE", Path: "/sites/abc", StatusCode: 500},
			want: "netlify: request to DELETE /sites/abc did not succeed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

// TestHTTPStatusError_Error tests message rendering.
func TestHTTPStatusError_Error(t *testing.T) {
	err := &netlify.HTTPStatusError{
		Method: "GET", Path: "/user", StatusCode: 502, Status: "502 Bad Gateway",
	}

	assert.Equal(t, "netlify: request to GET /user failed with status 502 Bad Gateway", err.Error())
}

// TestStatusSentinels tests errors.Is matching on both error kinds.
func TestStatusSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     bool
	}{
		{
			name:     "transport error status",
			err:      &netlify.TransportError{StatusCode: http.StatusNotFound},
			sentinel: netlify.ErrNotFound,
			want:     true,
		},
		{
			name:     "transport error code wins over status",
			err:      &netlify.TransportError{StatusCode: http.StatusBadRequest, Code: intRef(401)},
			sentinel: netlify.ErrUnauthorized,
			want:     true,
		},
		{
			name:     "http status error",
			err:      &netlify.HTTPStatusError{StatusCode: http.StatusTooManyRequests},
			sentinel: netlify.ErrRateLimited,
			want:     true,
		},
		{
			name:     "other status",
			err:      &netlify.HTTPStatusError{StatusCode: http.StatusInternalServerError},
			sentinel: netlify.ErrForbidden,
			want:     false,
		},
		{
			name:     "unrelated error",
			err:      errors.New("boom"),
			sentinel: netlify.ErrNotFound,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.sentinel))
		})
	}
}

// TestIsNotFound tests the helper.
func TestIsNotFound(t *testing.T) {
	assert.True(t, netlify.IsNotFound(&netlify.HTTPStatusError{StatusCode: http.StatusNotFound}))
	assert.False(t, netlify.IsNotFound(&netlify.TransportError{StatusCode: http.StatusForbidden}))
	assert.False(t, netlify.IsNotFound(nil))
}
