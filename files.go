package netlify

import (
	"context"
	"net/http"
)

// ListSiteFiles lists the files of a site's published deploy.
//
// GET /sites/{site_id}/files
func (c *Client) ListSiteFiles(ctx context.Context, siteID string) ([]*SiteFile, error) {
	if err := checks(requirePath("site_id", siteID)); err != nil {
		return nil, err
	}

	body, err := c.transport.Send(ctx, http.MethodGet, sitePath(siteID)+"/files", nil)
	if err != nil {
		return nil, err
	}
	return siteFileSchema.DecodeList(body)
}

// GetSiteFileByPathName returns the metadata of one published file.
// filePath may contain slashes, e.g. "css/main.css".
//
// GET /sites/{site_id}/files/{file_path}
func (c *Client) GetSiteFileByPathName(ctx context.Context, siteID, filePath string) (*SiteFile, error) {
	if err := checks(
		requirePath("site_id", siteID),
		requirePath("file_path", filePath),
	); err != nil {
		return nil, err
	}

	body, err := c.transport.Send(ctx, http.MethodGet, sitePath(siteID)+"/files/"+escapeFilePath(filePath), nil)
	if err != nil {
		return nil, err
	}
	return siteFileSchema.Decode(body)
}
