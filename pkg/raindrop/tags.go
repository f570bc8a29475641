package raindrop

import (
	"context"
	"fmt"
	"net/http"
)

// ListTags lists tags across a collection. Collection 0 means all
// collections.
func (c *Client) ListTags(ctx context.Context, collectionID int) ([]Tag, error) {
	var resp struct {
		Result bool  `json:"result"`
		Items  []Tag `json:"items"`
	}
	path := fmt.Sprintf("/tags/%d", collectionID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
