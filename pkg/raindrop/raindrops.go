package raindrop

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type itemResponse struct {
	Result bool      `json:"result"`
	Item   *Raindrop `json:"item"`
}

type itemsResponse struct {
	Result bool       `json:"result"`
	Items  []Raindrop `json:"items"`
	Count  int        `json:"count"`
}

// GetRaindrop fetches a single raindrop's metadata. A missing item, like an
// upstream 404, yields a NotFoundError.
func (c *Client) GetRaindrop(ctx context.Context, id int) (*Raindrop, error) {
	var resp itemResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/raindrop/%d", id), nil, nil, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	if resp.Item == nil {
		return nil, &NotFoundError{ID: id}
	}
	return resp.Item, nil
}

// ListOptions narrow a raindrop listing.
type ListOptions struct {
	Search  string
	Sort    string
	Page    int
	PerPage int
}

// ListRaindrops lists the raindrops in a collection. Collection 0 is the
// unsorted collection.
func (c *Client) ListRaindrops(ctx context.Context, collectionID int, opts *ListOptions) ([]Raindrop, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Search != "" {
			query.Set("search", opts.Search)
		}
		if opts.Sort != "" {
			query.Set("sort", opts.Sort)
		}
		if opts.Page > 0 {
			query.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PerPage > 0 {
			query.Set("perpage", strconv.Itoa(opts.PerPage))
		}
	}

	var resp itemsResponse
	err := c.do(ctx, http.MethodGet,
		fmt.Sprintf("/raindrops/%d", collectionID), query, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// RaindropParams are the writable fields of a raindrop.
type RaindropParams struct {
	Link       string         `json:"link,omitempty"`
	Title      string         `json:"title,omitempty"`
	Excerpt    string         `json:"excerpt,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	Collection *CollectionRef `json:"collection,omitempty"`
}

// CreateRaindrop bookmarks a new link.
func (c *Client) CreateRaindrop(ctx context.Context, params *RaindropParams) (*Raindrop, error) {
	var resp itemResponse
	err := c.do(ctx, http.MethodPost, "/raindrop", nil, params, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Item == nil {
		return nil, &APIError{Message: "created raindrop missing from response"}
	}
	return resp.Item, nil
}

// URLExists is the outcome of a duplicate-link check. Raindrop is set when
// the link is already bookmarked and the service reported the match.
type URLExists struct {
	Exists   bool
	Link     string
	Raindrop *Raindrop
}

type urlExistsResponse struct {
	Result   bool      `json:"result"`
	Exists   bool      `json:"exists"`
	Link     string    `json:"link"`
	Raindrop *Raindrop `json:"raindrop"`
}

// CheckURLExists reports whether link is already bookmarked. The dedicated
// endpoint answers result:false when the link is unknown, which do surfaces
// as an error; any error there falls back to an exact-match search across
// the unsorted collection, ignoring a trailing slash.
func (c *Client) CheckURLExists(ctx context.Context, link string) (*URLExists, error) {
	body := struct {
		Link string `json:"link"`
	}{Link: link}

	var resp urlExistsResponse
	err := c.do(ctx, http.MethodPost, "/import/url/exists", nil, body, &resp)
	if err == nil {
		out := &URLExists{Exists: resp.Exists, Link: resp.Link, Raindrop: resp.Raindrop}
		if out.Link == "" {
			out.Link = link
		}
		return out, nil
	}

	items, searchErr := c.ListRaindrops(ctx, 0, &ListOptions{Search: link, PerPage: 10})
	if searchErr != nil {
		return nil, err
	}
	trimmed := strings.TrimSuffix(link, "/")
	for i := range items {
		if strings.TrimSuffix(items[i].Link, "/") == trimmed {
			return &URLExists{Exists: true, Link: items[i].Link, Raindrop: &items[i]}, nil
		}
	}
	return &URLExists{Exists: false, Link: link}, nil
}

// UpdateRaindrop changes an existing raindrop.
func (c *Client) UpdateRaindrop(ctx context.Context, id int, params *RaindropParams) (*Raindrop, error) {
	var resp itemResponse
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/raindrop/%d", id), nil, params, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	if resp.Item == nil {
		return nil, &NotFoundError{ID: id}
	}
	return resp.Item, nil
}

// DeleteRaindrop removes a raindrop. Deleting moves it to the trash
// collection unless it is already there.
func (c *Client) DeleteRaindrop(ctx context.Context, id int) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/raindrop/%d", id), nil, nil, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return &NotFoundError{ID: id}
	}
	return err
}
