package raindrop

import (
	"context"
	"net/http"
)

// GetUser fetches the authenticated account. Useful as a connectivity and
// credential check.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	var resp struct {
		Result bool  `json:"result"`
		User   *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/user", nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &APIError{Message: "user missing from response"}
	}
	return resp.User, nil
}
