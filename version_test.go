package netlify_test

import (
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomblancdev/netlify-go"
)

// TestVersion_Constants verifies version constants are set correctly.
func TestVersion_Constants(t *testing.T) {
	_, err := semver.StrictNewVersion(netlify.Version)
	require.NoError(t, err, "Version should be a valid semantic version")

	assert.NotEmpty(t, netlify.APIVersion)
	assert.True(t, strings.HasSuffix(netlify.DefaultUserAgent, "/"+netlify.Version))
	assert.True(t, netlify.IsCompatible(netlify.APIVersion), "APIVersion should satisfy APIVersionRange")
}

// TestIsCompatible tests the IsCompatible convenience function.
func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		compatible bool
	}{
		{name: "exact target version", version: "1.0.0", compatible: true},
		{name: "minor version in range", version: "1.4.2", compatible: true},
		{name: "prerelease excluded", version: "1.1.0-beta", compatible: false},
		{name: "version too old", version: "0.9.0", compatible: false},
		{name: "major version mismatch", version: "2.0.0", compatible: false},
		{name: "empty version", version: "", compatible: false},
		{name: "invalid version", version: "not-a-version", compatible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := netlify.IsCompatible(tt.version)
			assert.Equal(t, tt.compatible, result, "IsCompatible(%q) should return %v", tt.version, tt.compatible)
		})
	}
}
