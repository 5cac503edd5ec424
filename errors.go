package netlify

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/tomblancdev/netlify-go/internal/decode"
)

// maxErrorBodySize limits how much of a non-JSON error body is kept on
// [HTTPStatusError]. Larger bodies are truncated.
const maxErrorBodySize = 4096

// TransportError is returned when the API answers with a non-2xx status and
// a JSON error body.
//
// The body may carry any subset of code, message and errors; all of them are
// optional and an empty JSON object is legal.
//
//	site, err := client.GetSite(ctx, "missing")
//	var apiErr *netlify.TransportError
//	if errors.As(err, &apiErr) {
//	    fmt.Println(apiErr.Method, apiErr.Path, apiErr.StatusCode)
//	}
type TransportError struct {
	// Method is the HTTP method of the failed request.
	Method string

	// Path is the request path relative to the base URL, e.g. "/sites/abc".
	Path string

	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is the server reported error code, usually equal to StatusCode.
	Code *int

	// Message is the server reported message.
	Message *string

	// Errors holds any structured detail the server attached.
	Errors map[string]any
}

func (e *TransportError) Error() string {
	var parts []string
	if e.Code != nil {
		parts = append(parts, fmt.Sprintf("code: %d", *e.Code))
	}
	if e.Message != nil {
		parts = append(parts, fmt.Sprintf("message: '%s'", *e.Message))
	}
	if e.Errors != nil {
		parts = append(parts, "errors: "+renderDetail(e.Errors))
	}

	msg := fmt.Sprintf("netlify: request to %s %s did not succeed", e.Method, e.Path)
	if len(parts) == 0 {
		return msg
	}
	return msg + ". " + strings.Join(parts, ", ")
}

// Is matches the status sentinels such as [ErrNotFound].
func (e *TransportError) Is(target error) bool {
	status := e.StatusCode
	if e.Code != nil {
		status = *e.Code
	}
	return matchStatus(target, status)
}

// HTTPStatusError is returned when the API answers with a non-2xx status and
// a body that is not JSON. The raw body is kept, truncated to 4KB.
type HTTPStatusError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("netlify: request to %s %s failed with status %s", e.Method, e.Path, e.Status)
}

// Is matches the status sentinels such as [ErrNotFound].
func (e *HTTPStatusError) Is(target error) bool {
	return matchStatus(target, e.StatusCode)
}

// ValidationError is returned when a response body cannot be decoded into
// the expected record. It lists every failing field.
type ValidationError = decode.ValidationError

// FieldError describes one field of a [ValidationError].
type FieldError = decode.FieldError

// Status sentinels. Both [*TransportError] and [*HTTPStatusError] match them
// with errors.Is:
//
//	if errors.Is(err, netlify.ErrNotFound) {
//	    // site was already deleted
//	}
var (
	ErrUnauthorized = errors.New("netlify: unauthorized")
	ErrForbidden    = errors.New("netlify: forbidden")
	ErrNotFound     = errors.New("netlify: not found")
	ErrRateLimited  = errors.New("netlify: rate limited")
)

var statusSentinels = map[error]int{
	ErrUnauthorized: http.StatusUnauthorized,
	ErrForbidden:    http.StatusForbidden,
	ErrNotFound:     http.StatusNotFound,
	ErrRateLimited:  http.StatusTooManyRequests,
}

func matchStatus(target error, status int) bool {
	want, ok := statusSentinels[target]
	return ok && want == status
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// renderDetail formats an error detail map with sorted keys.
func renderDetail(detail map[string]any) string {
	keys := make([]string, 0, len(detail))
	for k := range detail {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", k, detail[k])
	}
	b.WriteByte('}')
	return b.String()
}
