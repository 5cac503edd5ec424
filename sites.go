package netlify

import (
	"context"
	"net/http"
	"net/url"
)

// ListSites lists the sites the user can access. params may be nil.
//
// GET /sites
//
//	sites, err := client.ListSites(ctx, &netlify.ListSitesParams{
//	    Filter: conv.Pointer(netlify.ListSitesFilterOwner),
//	    PerPage: conv.Pointer(50),
//	})
func (c *Client) ListSites(ctx context.Context, params *ListSitesParams) ([]*Site, error) {
	if params == nil {
		params = &ListSitesParams{}
	}
	if err := checks(
		validFilter(params.Filter),
		minimumOne("page", params.Page),
		minimumOne("per_page", params.PerPage),
	); err != nil {
		return nil, err
	}

	body, err := c.transport.Send(ctx, http.MethodGet, "/sites", &Request{
		Params: Params{
			"filter":   filterParam(params.Filter),
			"page":     params.Page,
			"per_page": params.PerPage,
		},
	})
	if err != nil {
		return nil, err
	}
	return siteSchema.DecodeList(body)
}

// ListSitesForAccount lists the sites of a team account. params may be nil.
//
// GET /{account_slug}/sites
func (c *Client) ListSitesForAccount(ctx context.Context, accountSlug string, params *ListSitesForAccountParams) ([]*Site, error) {
	if params == nil {
		params = &ListSitesForAccountParams{}
	}
	if err := checks(
		requirePath("account_slug", accountSlug),
		minimumOne("page", params.Page),
		minimumOne("per_page", params.PerPage),
	); err != nil {
		return nil, err
	}

	body, err := c.transport.Send(ctx, http.MethodGet, "/"+url.PathEscape(accountSlug)+"/sites", &Request{
		Params: Params{
			"name":     params.Name,
			"page":     params.Page,
			"per_page": params.PerPage,
		},
	})
	if err != nil {
		return nil, err
	}
	return siteSchema.DecodeList(body)
}

// CreateSite creates a site in the user's personal account. configureDNS
// may be nil to leave the API default.
//
// POST /sites
func (c *Client) CreateSite(ctx context.Context, req *CreateSiteRequest, configureDNS *bool) (*Site, error) {
	return c.createSite(ctx, "/sites", req, configureDNS)
}

// CreateSiteInTeam creates a site in a team account.
//
// POST /{account_slug}/sites
func (c *Client) CreateSiteInTeam(ctx context.Context, accountSlug string, req *CreateSiteRequest, configureDNS *bool) (*Site, error) {
	if err := checks(requirePath("account_slug", accountSlug)); err != nil {
		return nil, err
	}
	return c.createSite(ctx, "/"+url.PathEscape(accountSlug)+"/sites", req, configureDNS)
}

func (c *Client) createSite(ctx context.Context, path string, req *CreateSiteRequest, configureDNS *bool) (*Site, error) {
	if req == nil {
		req = &CreateSiteRequest{}
	}

	body, err := c.transport.Send(ctx, http.MethodPost, path, &Request{
		Payload: req,
		Params:  Params{"configure_dns": configureDNS},
	})
	if err != nil {
		return nil, err
	}
	return siteSchema.Decode(body)
}

// GetSite returns a site by id or by its domain.
//
// GET /sites/{site_id}
func (c *Client) GetSite(ctx context.Context, siteID string) (*Site, error) {
	if err := checks(requirePath("site_id", siteID)); err != nil {
		return nil, err
	}

	body, err := c.transport.Send(ctx, http.MethodGet, sitePath(siteID), nil)
	if err != nil {
		return nil, err
	}
	return siteSchema.Decode(body)
}

// UpdateSite changes the settings present in req. Nil fields are left
// untouched.
//
// PATCH /sites/{site_id}
func (c *Client) UpdateSite(ctx context.Context, siteID string, req *UpdateSiteRequest) (*Site, error) {
	if err := checks(requirePath("site_id", siteID)); err != nil {
		return nil, err
	}
	if req == nil {
		req = &UpdateSiteRequest{}
	}

	body, err := c.transport.Send(ctx, http.MethodPatch, sitePath(siteID), &Request{Payload: req})
	if err != nil {
		return nil, err
	}
	return siteSchema.Decode(body)
}

// DeleteSite deletes a site.
//
// DELETE /sites/{site_id}
func (c *Client) DeleteSite(ctx context.Context, siteID string) error {
	if err := checks(requirePath("site_id", siteID)); err != nil {
		return err
	}

	_, err := c.transport.Send(ctx, http.MethodDelete, sitePath(siteID), nil)
	return err
}

func sitePath(siteID string) string {
	return "/sites/" + url.PathEscape(siteID)
}
