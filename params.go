package netlify

import (
	"net/url"
	"strings"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/validate"
)

const (
	inPath  = "path"
	inQuery = "query"
)

// ListSitesParams are the optional query parameters of [Client.ListSites].
type ListSitesParams struct {
	Filter  *ListSitesFilter
	Page    *int
	PerPage *int
}

// ListSitesForAccountParams are the optional query parameters of
// [Client.ListSitesForAccount].
type ListSitesForAccountParams struct {
	// Name filters sites by name.
	Name    *string
	Page    *int
	PerPage *int
}

// ListSiteDeploysParams are the optional query parameters of
// [Client.ListSiteDeploys].
type ListSiteDeploysParams struct {
	// Production restricts the list to production deploys when true.
	Production *bool

	// State filters by deploy state, e.g. [DeployStateReady].
	State *string

	// Branch filters by the git branch the deploy was built from.
	Branch  *string
	Page    *int
	PerPage *int
}

// checks collects argument validation results. Nil entries are passing
// checks.
func checks(results ...*openapierrors.Validation) error {
	var errs []error
	for _, r := range results {
		if r != nil {
			errs = append(errs, r)
		}
	}
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return openapierrors.CompositeValidationError(errs...)
	}
}

func requirePath(name, value string) *openapierrors.Validation {
	return validate.RequiredString(name, inPath, value)
}

func minimumOne(name string, value *int) *openapierrors.Validation {
	if value == nil {
		return nil
	}
	return validate.MinimumInt(name, inQuery, int64(*value), 1, false)
}

func validFilter(filter *ListSitesFilter) *openapierrors.Validation {
	if filter == nil {
		return nil
	}
	return validate.Enum("filter", inQuery, string(*filter), ListSitesFilterValues)
}

func filterParam(filter *ListSitesFilter) *string {
	if filter == nil {
		return nil
	}
	s := string(*filter)
	return &s
}

// escapeFilePath escapes each segment of a site file path so names with
// reserved characters survive URL building. Slashes are kept.
func escapeFilePath(p string) string {
	segments := strings.Split(strings.TrimPrefix(p, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
