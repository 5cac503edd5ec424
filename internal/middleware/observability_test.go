package middleware

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "current user",
			input:    "/api/v1/user",
			expected: "/api/v1/user",
		},
		{
			name:     "site collection is not an account",
			input:    "/api/v1/sites",
			expected: "/api/v1/sites",
		},
		{
			name:     "site by uuid",
			input:    "/api/v1/sites/3970e0fe-8564-4903-9a55-c5f8de49fb8b",
			expected: "/api/v1/sites/:id",
		},
		{
			name:     "site by domain",
			input:    "/api/v1/sites/example.netlify.app",
			expected: "/api/v1/sites/:id",
		},
		{
			name:     "account sites",
			input:    "/api/v1/acme-team/sites",
			expected: "/api/v1/:account/sites",
		},
		{
			name:     "site deploy",
			input:    "/api/v1/sites/abc/deploys/5f1a2b3c4d5e6f7a8b9c0d1e",
			expected: "/api/v1/sites/:id/deploys/:id",
		},
		{
			name:     "nested site file",
			input:    "/api/v1/sites/abc/files/css/sites/main.css",
			expected: "/api/v1/sites/:id/files/:path",
		},
		{
			name:     "deploy upload",
			input:    "/api/v1/deploys/5f1a/files/index.html",
			expected: "/api/v1/deploys/:id/files/:path",
		},
		{
			name:     "unprefixed path",
			input:    "/sites/abc",
			expected: "/sites/:id",
		},
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizePath(tt.input))
		})
	}
}

func TestNormalizePath_DistinctFilesShareOneLabel(t *testing.T) {
	t.Parallel()

	labels := make(map[string]struct{})
	for i := range 500 {
		labels[NormalizePath(fmt.Sprintf("/api/v1/sites/site-%d/files/assets/%d.js", i, i))] = struct{}{}
	}

	assert.Equal(t, map[string]struct{}{"/api/v1/sites/:id/files/:path": {}}, labels)
}
