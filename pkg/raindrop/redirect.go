package raindrop

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// resolveSignedURL dispatches a request with redirect-following disabled and
// extracts the pre-signed storage URL from the temporary-redirect response.
// When signingHosts is non-empty the target must belong to one of the listed
// domains; file copies and cached pages redirect to different signing
// domains, so the allowed set is configured per resource kind rather than
// hard-coded.
func (c *Client) resolveSignedURL(ctx context.Context, path string, signingHosts []string) (string, error) {
	resp, err := c.doRaw(ctx, http.MethodGet, path)
	if err != nil {
		return "", err
	}

	if resp.status != http.StatusTemporaryRedirect {
		return "", &APIError{
			Message: fmt.Sprintf("unexpected response: %d", resp.status),
			Status:  resp.status,
			Body:    resp.body,
		}
	}

	loc := resp.header.Get("Location")
	if loc == "" {
		return "", &APIError{
			Message: "could not obtain signed URL",
			Status:  resp.status,
		}
	}

	u, err := url.Parse(loc)
	if err != nil || !u.IsAbs() {
		return "", &APIError{
			Message: fmt.Sprintf("signed URL is not fetchable: %q", maskURL(loc)),
			Status:  resp.status,
		}
	}
	if len(signingHosts) > 0 && !hostAllowed(u.Hostname(), signingHosts) {
		return "", &APIError{
			Message: fmt.Sprintf("signed URL points at unexpected host %q", u.Hostname()),
			Status:  resp.status,
		}
	}

	c.logger.Debug("resolved signed URL", "path", path, "target", maskURL(loc))
	return loc, nil
}

// fetchSignedURL retrieves the content behind a signed URL. Authorization is
// embedded in the URL's signature, so the bearer header is deliberately not
// sent. Failures are wrapped so callers can tell a failed content fetch
// apart from a failed redirect resolution.
func (c *Client) fetchSignedURL(ctx context.Context, signedURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, signedURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create signed URL request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.content.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("redirect succeeded but content fetch failed: %w",
			&APIError{Message: err.Error()})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("redirect succeeded but content fetch failed: %w",
			&APIError{
				Message: fmt.Sprintf("signed URL returned %d %s",
					resp.StatusCode, http.StatusText(resp.StatusCode)),
				Status: resp.StatusCode,
			})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read signed URL content: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return body, contentType, nil
}

// hostAllowed reports whether hostname belongs to one of the given signing
// domains, either exactly or as a subdomain.
func hostAllowed(hostname string, domains []string) bool {
	for _, d := range domains {
		if hostname == d || strings.HasSuffix(hostname, "."+d) {
			return true
		}
	}
	return false
}

// maskURL strips query parameters so signed URLs never reach logs or error
// messages in full; the signature lives in the query string.
func maskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable URL>"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
