package netlify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomblancdev/netlify-go"
)

// TestGetCurrentUser_Success tests decoding of the current user.
//
// It verifies that:
//   - GET /user is requested
//   - Nullable fields map to nil and empty strings stay set
//   - Unknown fields are ignored
func TestGetCurrentUser_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/user", r.URL.Path)
		writeJSON(w, http.StatusOK, fixture(t, "user.json"))
	}))
	defer server.Close()

	// Act
	client := newTestClient(t, server)
	user, err := client.GetCurrentUser(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "5c6b8ef0c2e8a1b2c3d4e5f6", user.ID)
	assert.Nil(t, user.UID)
	require.NotNil(t, user.FullName)
	assert.Equal(t, "Jane Doe", *user.FullName)
	assert.Equal(t, "jane@example.com", user.Email)
	require.NotNil(t, user.AffiliateID)
	assert.Empty(t, *user.AffiliateID)
	assert.Equal(t, 3, user.SiteCount)
	assertTime(t, time.Date(2022, 10, 19, 21, 35, 24, 0, time.UTC), user.CreatedAt)
	require.NotNil(t, user.LastLogin)
	assertTime(t, time.Date(2023, 1, 5, 10, 0, 0, 0, time.UTC), *user.LastLogin)
	assert.Equal(t, []string{"github", "email"}, user.LoginProviders)
	assert.Equal(t, map[string]string{"slides": "done"}, user.OnboardingProcess)
}

// TestGetCurrentUser_DecodeIsRepeatable tests that decoding the same payload
// twice yields equal records.
func TestGetCurrentUser_DecodeIsRepeatable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, fixture(t, "user.json"))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	first, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)
	second, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

// TestGetCurrentUser_InvalidBody tests that every failing field is reported.
func TestGetCurrentUser_InvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mustEncode(w, map[string]any{
			"id":              "u1",
			"site_count":      "three",
			"created_at":      "2022-10-19T21:35:24Z",
			"login_providers": []string{},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	user, err := client.GetCurrentUser(context.Background())

	require.Error(t, err)
	assert.Nil(t, user)

	var verr *netlify.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "User", verr.Record)
	assert.Equal(t, []string{"email", "site_count"}, verr.Fields())
}

// TestGetCurrentUser_Unauthorized tests status translation.
func TestGetCurrentUser_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, []byte(`{"code": 401, "message": "Access Denied"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.GetCurrentUser(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, netlify.ErrUnauthorized)
	assert.Contains(t, err.Error(), "message: 'Access Denied'")
}
