package netlify

import "github.com/Masterminds/semver/v3"

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
// The version is incremented according to the following rules:
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.3.2"

// APIVersion is the Netlify REST API version this SDK was built for.
// The API is served under the /api/v1 prefix.
const APIVersion = "1.0.0"

// APIVersionRange is the semver constraint of API versions this SDK
// is expected to work with.
const APIVersionRange = ">=1.0.0 <2.0.0"

// DefaultUserAgent is sent with every request unless [WithUserAgent] is used.
const DefaultUserAgent = "NetlifyGoClient/" + Version

var compatibleRange, _ = semver.NewConstraint(APIVersionRange)

// IsCompatible reports whether version satisfies [APIVersionRange].
// Empty or malformed versions are never compatible.
//
//	if !netlify.IsCompatible("1.4.0") {
//	    log.Println("unsupported API version")
//	}
func IsCompatible(version string) bool {
	if version == "" {
		return false
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return compatibleRange.Check(v)
}
