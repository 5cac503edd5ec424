package netlify

import (
	"context"
	"net/http"
	"net/url"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-openapi/runtime"
)

const zipMime = "application/zip"

// CreateSiteDeploy uploads a zip archive as a new deploy of a site. title
// may be nil.
//
// The whole archive is read into memory before the request is sent. A
// missing file fails with an error matching fs.ErrNotExist and no request
// is made.
//
// POST /sites/{site_id}/deploys
//
//	deploy, err := client.CreateSiteDeploy(ctx, site.ID, "dist.zip", conv.Pointer("release 42"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(deploy.State)
func (c *Client) CreateSiteDeploy(ctx context.Context, siteID, zipPath string, title *string) (*SiteDeploy, error) {
	if err := checks(requirePath("site_id", siteID)); err != nil {
		return nil, err
	}

	content, err := readUpload(zipPath)
	if err != nil {
		return nil, err
	}

	body, err := c.transport.Send(ctx, http.MethodPost, sitePath(siteID)+"/deploys", &Request{
		Content: content,
		Headers: map[string]string{runtime.HeaderContentType: zipMime},
		Params:  Params{"title": title},
	})
	if err != nil {
		return nil, err
	}
	return siteDeploySchema.Decode(body)
}

// ListSiteDeploys lists the deploys of a site, newest first. params may be
// nil.
//
// GET /sites/{site_id}/deploys
func (c *Client) ListSiteDeploys(ctx context.Context, siteID string, params *ListSiteDeploysParams) ([]*SiteDeploy, error) {
	if params == nil {
		params = &ListSiteDeploysParams{}
	}
	if err := checks(
		requirePath("site_id", siteID),
		minimumOne("page", params.Page),
		minimumOne("per_page", params.PerPage),
	); err != nil {
		return nil, err
	}

	body, err := c.transport.Send(ctx, http.MethodGet, sitePath(siteID)+"/deploys", &Request{
		Params: Params{
			"production": params.Production,
			"state":      params.State,
			"branch":     params.Branch,
			"page":       params.Page,
			"per_page":   params.PerPage,
		},
	})
	if err != nil {
		return nil, err
	}
	return siteDeploySchema.DecodeList(body)
}

// GetSiteDeploy returns one deploy of a site.
//
// GET /sites/{site_id}/deploys/{deploy_id}
func (c *Client) GetSiteDeploy(ctx context.Context, siteID, deployID string) (*SiteDeploy, error) {
	if err := checks(
		requirePath("site_id", siteID),
		requirePath("deploy_id", deployID),
	); err != nil {
		return nil, err
	}

	body, err := c.transport.Send(ctx, http.MethodGet, sitePath(siteID)+"/deploys/"+url.PathEscape(deployID), nil)
	if err != nil {
		return nil, err
	}
	return siteDeploySchema.Decode(body)
}

// UploadDeployFile uploads one file of a file-digest deploy. filePath is
// the path the file is served under; localPath is read from disk.
//
// PUT /deploys/{deploy_id}/files/{file_path}
func (c *Client) UploadDeployFile(ctx context.Context, deployID, filePath, localPath string) (*SiteFile, error) {
	if err := checks(
		requirePath("deploy_id", deployID),
		requirePath("file_path", filePath),
	); err != nil {
		return nil, err
	}

	content, err := readUpload(localPath)
	if err != nil {
		return nil, err
	}

	path := "/deploys/" + url.PathEscape(deployID) + "/files/" + escapeFilePath(filePath)
	body, err := c.transport.Send(ctx, http.MethodPut, path, &Request{
		Content: content,
		Headers: map[string]string{runtime.HeaderContentType: runtime.DefaultMime},
	})
	if err != nil {
		return nil, err
	}
	return siteFileSchema.Decode(body)
}

// readUpload reads a file to upload. The *fs.PathError is kept in the chain.
func readUpload(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read upload %q", path)
	}
	return content, nil
}
