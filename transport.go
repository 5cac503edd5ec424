package netlify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/swag/conv"
	"golang.org/x/time/rate"

	"github.com/tomblancdev/netlify-go/internal/decode"
	"github.com/tomblancdev/netlify-go/internal/httpclient"
	"github.com/tomblancdev/netlify-go/internal/middleware"
	"github.com/tomblancdev/netlify-go/observability"
)

// Params holds query parameters. Nil values and nil pointers are dropped.
//
// Supported values are strings, booleans, integers, floats, fmt.Stringer
// values, pointers to any of those and []string (sent as a repeated key).
type Params map[string]any

// Request carries the optional parts of a single API call.
//
// Zero values mean "use the client default": a zero Timeout uses the
// client timeout and an empty BaseURL uses the client base URL.
type Request struct {
	// Content is sent as the raw request body. The caller sets the
	// Content-Type header. Ignored when Payload is set.
	Content []byte

	// Payload is JSON encoded and sent with Content-Type: application/json.
	Payload any

	// Params are appended to the URL query.
	Params Params

	// Headers override the default headers key by key.
	Headers map[string]string

	Timeout time.Duration
	BaseURL string
}

// Transport performs authenticated requests against the Netlify API and
// translates error responses.
//
// Every call dials a fresh connection unless a custom *http.Client was
// supplied with [WithHTTPClient]. A Transport is safe for concurrent use.
type Transport struct {
	token      string
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	logger     observability.Logger
	metrics    observability.MetricsRecorder
	limiter    *rate.Limiter
	deployRate *rate.Limiter
}

// errorBodySchema describes the JSON error body returned by the API.
var errorBodySchema = decode.Define("ErrorBody", func(o *decode.Object) *TransportError {
	return &TransportError{
		Code:    intPtr(decode.GetPtr[int64](o, "code")),
		Message: decode.GetPtr[string](o, "message"),
		Errors:  decode.GetMap[any](o, "errors"),
	}
},
	decode.Field{Name: "code", Type: decode.Optional(decode.Int())},
	decode.Field{Name: "message", Type: decode.Optional(decode.String())},
	decode.Field{Name: "errors", Type: decode.Optional(decode.Map())},
)

// Send performs one request and returns the parsed JSON body.
//
// It returns nil for 204 responses and empty bodies. Non-2xx responses
// become a [*TransportError] when the body is JSON and a [*HTTPStatusError]
// otherwise. Network failures are returned unchanged.
//
//	body, err := client.Transport().Send(ctx, http.MethodGet, "/sites", &netlify.Request{
//	    Params: netlify.Params{"filter": "owner"},
//	})
func (t *Transport) Send(ctx context.Context, method, path string, req *Request) (any, error) {
	if req == nil {
		req = &Request{}
	}

	target, err := t.buildURL(req.BaseURL, path, req.Params)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, t.resolveTimeout(req.Timeout))
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	for k, v := range t.buildHeaders(contentType, req.Headers) {
		httpReq.Header.Set(k, v)
	}

	client := t.newHTTPClient()
	if t.httpClient == nil {
		defer client.CloseIdleConnections()
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		//nolint:wrapcheck // Network failures surface unchanged as *url.Error
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, t.statusError(method, path, resp)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response of %s %s", method, path)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var out any
	if err := runtime.JSONConsumer().Consume(bytes.NewReader(raw), &out); err != nil {
		return nil, errors.Wrapf(err, "failed to parse response of %s %s", method, path)
	}
	return out, nil
}

func (t *Transport) resolveTimeout(timeout time.Duration) time.Duration {
	if timeout > 0 {
		return timeout
	}
	return t.timeout
}

func (t *Transport) resolveBaseURL(baseURL string) string {
	if baseURL != "" {
		return baseURL
	}
	return t.baseURL
}

// buildURL joins the base URL and path, preserving any base path such as
// /api/v1, and encodes params.
func (t *Transport) buildURL(baseURL, path string, params Params) (string, error) {
	u, err := url.Parse(t.resolveBaseURL(baseURL))
	if err != nil {
		return "", errors.Wrap(err, "invalid base URL")
	}

	ref, err := url.Parse(path)
	if err != nil {
		return "", errors.Wrapf(err, "invalid request path %q", path)
	}
	basePath, baseRaw := strings.TrimSuffix(u.Path, "/"), strings.TrimSuffix(u.EscapedPath(), "/")
	u.Path = basePath + "/" + strings.TrimPrefix(ref.Path, "/")
	u.RawPath = baseRaw + "/" + strings.TrimPrefix(ref.EscapedPath(), "/")

	query := u.Query()
	for k, v := range ref.Query() {
		query[k] = v
	}
	if err := encodeParams(query, params); err != nil {
		return "", err
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// buildHeaders merges defaults, the body content type and per-call
// overrides. Overrides win.
func (t *Transport) buildHeaders(contentType string, overrides map[string]string) map[string]string {
	headers := map[string]string{
		"User-Agent": t.userAgent,
		"Accept":     runtime.JSONMime,
	}
	if contentType != "" {
		headers[runtime.HeaderContentType] = contentType
	}
	for k, v := range overrides {
		headers[http.CanonicalHeaderKey(k)] = v
	}
	return headers
}

// newHTTPClient builds the per-call client and its middleware chain.
func (t *Transport) newHTTPClient() *httpclient.Client {
	opts := make([]httpclient.Option, 0, 4)
	if t.httpClient != nil {
		opts = append(opts, httpclient.WithHTTPClient(t.httpClient))
	} else {
		opts = append(opts,
			httpclient.WithTransport(httpclient.NewEphemeralTransport()),
			httpclient.WithCheckRedirect(func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			}),
		)
	}
	// Deadlines come from the request context.
	opts = append(opts, httpclient.WithTimeout(0))

	chain := []httpclient.Middleware{
		middleware.RateLimit(middleware.RateLimitConfig{
			Selector: t.selectLimiter,
			Logger:   t.logger,
			Metrics:  t.metrics,
		}),
		middleware.BearerToken(t.token),
		middleware.Observability(t.logger, t.metrics),
	}
	opts = append(opts, httpclient.WithMiddleware(chain...))

	return httpclient.New(opts...)
}

// selectLimiter routes deploy creation to the deploy limiter when one is
// configured.
func (t *Transport) selectLimiter(req *http.Request) (*rate.Limiter, string) {
	if t.deployRate != nil && req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/deploys") {
		return t.deployRate, "deploys"
	}
	return t.limiter, "default"
}

// statusError translates a non-2xx response.
func (t *Transport) statusError(method, path string, resp *http.Response) error {
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	httpErr := &HTTPStatusError{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       raw,
	}
	if readErr != nil {
		return errors.WithSecondaryError(httpErr, readErr)
	}

	mediaType, _, err := runtime.ContentType(resp.Header)
	if err != nil || !isJSONMediaType(mediaType) {
		return httpErr
	}

	var body any
	if err := runtime.JSONConsumer().Consume(bytes.NewReader(raw), &body); err != nil {
		return errors.WithSecondaryError(httpErr, err)
	}
	apiErr, err := errorBodySchema.Decode(body)
	if err != nil {
		return errors.WithSecondaryError(httpErr, err)
	}

	apiErr.Method = method
	apiErr.Path = path
	apiErr.StatusCode = resp.StatusCode
	return apiErr
}

func isJSONMediaType(mediaType string) bool {
	return mediaType == runtime.JSONMime || strings.HasSuffix(mediaType, "+json")
}

// encodeBody returns the request body and the content type it implies.
func encodeBody(req *Request) (io.Reader, string, error) {
	switch {
	case req.Payload != nil:
		var buf bytes.Buffer
		if err := runtime.JSONProducer().Produce(&buf, req.Payload); err != nil {
			return nil, "", errors.Wrap(err, "failed to encode request payload")
		}
		return &buf, runtime.JSONMime, nil
	case req.Content != nil:
		return bytes.NewReader(req.Content), "", nil
	default:
		return http.NoBody, "", nil
	}
}

// encodeParams adds params to query in key order.
func encodeParams(query url.Values, params Params) error {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		values, err := formatParam(params[k])
		if err != nil {
			return errors.Wrapf(err, "query parameter %q", k)
		}
		if values == nil {
			continue
		}
		query[k] = values
	}
	return nil
}

// formatParam renders one query value. A nil result means "omit".
// Pointers are dereferenced; nil pointers of any type are omitted.
func formatParam(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		return formatParam(rv.Elem().Interface())
	}

	switch p := v.(type) {
	case string:
		return []string{p}, nil
	case bool:
		return []string{conv.FormatBool(p)}, nil
	case int:
		return []string{conv.FormatInteger(p)}, nil
	case int32:
		return []string{conv.FormatInteger(p)}, nil
	case int64:
		return []string{conv.FormatInteger(p)}, nil
	case uint:
		return []string{conv.FormatUinteger(p)}, nil
	case uint32:
		return []string{conv.FormatUinteger(p)}, nil
	case uint64:
		return []string{conv.FormatUinteger(p)}, nil
	case float32:
		return []string{conv.FormatFloat(p)}, nil
	case float64:
		return []string{conv.FormatFloat(p)}, nil
	case []string:
		if p == nil {
			return nil, nil
		}
		return p, nil
	case fmt.Stringer:
		return []string{p.String()}, nil
	default:
		return nil, errors.Newf("unsupported value type %T", v)
	}
}

func intPtr(v *int64) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
