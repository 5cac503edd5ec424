package netlify

import (
	"context"
	"net/http"
)

// GetCurrentUser returns the user that owns the access token.
//
// GET /user
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	body, err := c.transport.Send(ctx, http.MethodGet, "/user", nil)
	if err != nil {
		return nil, err
	}
	return userSchema.Decode(body)
}
