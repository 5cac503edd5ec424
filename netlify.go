// Package netlify provides a Go SDK for the Netlify REST API.
//
// Netlify hosts static sites and serverless functions. This SDK wraps the
// API endpoints for the current user, sites, site files and deploys, and
// decodes every response into validated, typed records.
//
// # Installation
//
//	go get github.com/tomblancdev/netlify-go
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//	    "os"
//
//	    "github.com/tomblancdev/netlify-go"
//	)
//
//	func main() {
//	    client, err := netlify.NewClient(os.Getenv("NETLIFY_ACCESS_TOKEN"))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    user, err := client.GetCurrentUser(context.Background())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("Logged in as %s\n", user.Email)
//	}
//
// # Client Configuration
//
// The client is configured with functional options:
//
//	client, err := netlify.NewClient(token,
//	    netlify.WithTimeout(2*time.Minute),
//	    netlify.WithRateLimit(300),
//	    netlify.WithLogger(observability.NewZerologLogger(zl)),
//	    netlify.WithMetrics(observability.NewPrometheusRecorder(prometheus.DefaultRegisterer, "netlify")),
//	)
//
// [NewClientFromEnv] reads NETLIFY_ACCESS_TOKEN and NETLIFY_API_URL.
//
// # Error Handling
//
// Failed calls return one of:
//
//   - [*TransportError]: the API answered non-2xx with a JSON error body
//   - [*HTTPStatusError]: the API answered non-2xx with any other body
//   - [*ValidationError]: the response did not match the expected record;
//     every failing field is listed
//   - a go-openapi *errors.Validation: an argument was rejected before any
//     request was made
//   - the network or file system error, unchanged
//
// Status sentinels work with errors.Is:
//
//	site, err := client.GetSite(ctx, id)
//	if errors.Is(err, netlify.ErrNotFound) {
//	    // handle missing site
//	}
//
// # Raw Calls
//
// Endpoints without a typed method can be reached through [Client.Transport]:
//
//	body, err := client.Transport().Send(ctx, http.MethodGet, "/dns_zones", nil)
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines.
// Each call dials its own connection and shares no mutable state.
//
// # API Version Compatibility
//
// This SDK targets the Netlify API v1 (see [APIVersion]).
package netlify
