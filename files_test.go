package netlify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestListSiteFiles tests listing with an optional deploy id.
func TestListSiteFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sites/abc/files", r.URL.Path)
		writeJSON(w, http.StatusOK, fixture(t, "files.json"))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	files, err := client.ListSiteFiles(context.Background(), "abc")

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "/index.html", files[0].Path)
	assert.Equal(t, 1024, files[0].Size)
	require.NotNil(t, files[0].DeployID)
	assert.Equal(t, "6389a2c9f1b2c3d4e5f60718", *files[0].DeployID)
	assert.Nil(t, files[1].DeployID)
}

// TestListSiteFiles_InvalidElement tests that failing elements are reported
// by index.
func TestListSiteFiles_InvalidElement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []byte(`[
			{"id": "/a", "path": "/a", "sha": "1", "mime_type": "text/plain", "size": 1},
			{"id": "/b", "path": "/b", "sha": "2", "mime_type": "text/plain", "size": 1.5}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	files, err := client.ListSiteFiles(context.Background(), "abc")

	require.Error(t, err)
	assert.Nil(t, files)
	assert.Contains(t, err.Error(), `field "1"`)
}

// TestGetSiteFileByPathName tests nested and escaped file paths.
func TestGetSiteFileByPathName(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		wantPath string
		wantRaw  string
	}{
		{
			name:     "nested path",
			filePath: "css/main.css",
			wantPath: "/sites/abc/files/css/main.css",
			wantRaw:  "/sites/abc/files/css/main.css",
		},
		{
			name:     "leading slash",
			filePath: "/css/main.css",
			wantPath: "/sites/abc/files/css/main.css",
			wantRaw:  "/sites/abc/files/css/main.css",
		},
		{
			name:     "reserved characters",
			filePath: "docs/my file?.txt",
			wantPath: "/sites/abc/files/docs/my file?.txt",
			wantRaw:  "/sites/abc/files/docs/my%20file%3F.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, tt.wantRaw, r.URL.EscapedPath())
				assert.Empty(t, r.URL.RawQuery)
				writeJSON(w, http.StatusOK, fixture(t, "file.json"))
			}))
			defer server.Close()

			client := newTestClient(t, server)
			file, err := client.GetSiteFileByPathName(context.Background(), "abc", tt.filePath)

			require.NoError(t, err)
			assert.Equal(t, "text/css", file.MimeType)
			assert.Equal(t, 2048, file.Size)
		})
	}
}

// TestGetSiteFileByPathName_EmptyArguments tests that both arguments are
// validated together.
func TestGetSiteFileByPathName_EmptyArguments(t *testing.T) {
	server, hits := unreachableServer(t)

	client := newTestClient(t, server)
	_, err := client.GetSiteFileByPathName(context.Background(), "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "site_id")
	assert.Contains(t, err.Error(), "file_path")
	assert.Zero(t, hits.Load())
}
