package raindrop

import (
	"context"
	"net/http"
)

// ListCollections lists the account's root collections.
func (c *Client) ListCollections(ctx context.Context) ([]Collection, error) {
	var resp struct {
		Result bool         `json:"result"`
		Items  []Collection `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/collections", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
