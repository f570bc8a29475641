package raindrop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Client talks to the Raindrop.io REST API. It is stateless apart from the
// fixed credential and safe for concurrent use.
type Client struct {
	cfg      *Config
	api      *http.Client // follows redirects, carries auth
	redirect *http.Client // returns redirect responses unfollowed
	content  *http.Client // longer timeout, never carries auth
	logger   hclog.Logger
}

// New creates a Raindrop.io client from the given configuration.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid raindrop client config: %w", err)
	}

	return &Client{
		cfg:      cfg,
		api:      cfg.newHTTPClient(),
		redirect: cfg.newRedirectClient(),
		content:  cfg.newContentClient(),
		logger:   cfg.Logger.Named("raindrop"),
	}, nil
}

// MaskedToken returns the configured token in a form safe for display.
func (c *Client) MaskedToken() string {
	tok := c.cfg.Token
	if len(tok) <= 8 {
		return "***"
	}
	return tok[:4] + "..." + tok[len(tok)-4:]
}

// do executes an authenticated API call. A non-nil body is JSON-encoded.
// When result is non-nil a JSON response is decoded into it; for non-JSON
// content types a *string or *[]byte result receives the raw body, and any
// other result type yields a decode error rather than a silently empty value.
// Network-level failures produce an *APIError with Status 0; HTTP and
// semantic failures are classified by classify.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	endpoint := c.cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, body != nil)

	reqID := uuid.New().String()
	c.logger.Debug("api request", "id", reqID, "method", method, "path", path)

	resp, err := c.api.Do(req)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	c.logger.Debug("api response",
		"id", reqID, "status", resp.StatusCode, "bytes", len(respBody))

	contentType := resp.Header.Get("Content-Type")
	if err := classify(resp.StatusCode, contentType, respBody); err != nil {
		return err
	}

	if result == nil {
		return nil
	}
	if !isJSONContentType(contentType) {
		// Opaque payload. Hand it over raw when the caller can take it.
		switch r := result.(type) {
		case *string:
			*r = string(respBody)
		case *[]byte:
			*r = respBody
		default:
			return &APIError{
				Message: fmt.Sprintf("failed to decode response: unexpected content type %q", contentType),
				Status:  resp.StatusCode,
				Body:    respBody,
			}
		}
		return nil
	}
	if len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return &APIError{
			Message: fmt.Sprintf("failed to decode response: %v", err),
			Status:  resp.StatusCode,
			Body:    respBody,
		}
	}
	return nil
}

// rawResponse is the unclassified output of a manual-redirect dispatch.
type rawResponse struct {
	status int
	header http.Header
	body   []byte
}

// doRaw executes an authenticated call with automatic redirect-following
// disabled and returns the response untouched. Callers inspect the status
// and headers themselves; only network-level failures are classified here.
func (c *Client) doRaw(ctx context.Context, method, path string) (*rawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, false)

	resp, err := c.redirect.Do(req)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	c.logger.Debug("raw api response", "method", method, "path", path,
		"status", resp.StatusCode)

	return &rawResponse{
		status: resp.StatusCode,
		header: resp.Header,
		body:   body,
	}, nil
}

func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
}

func isJSONContentType(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
