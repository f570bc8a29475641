package raindrop

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-multierror"
)

// CacheStatus is the provider-side readiness state of a permanent copy. The
// remote service owns the lifecycle; the client only observes and reports it.
type CacheStatus string

const (
	CacheReady          CacheStatus = "ready"
	CacheCreating       CacheStatus = "creating"
	CacheRetry          CacheStatus = "retry"
	CacheFailed         CacheStatus = "failed"
	CacheInvalidOrigin  CacheStatus = "invalid-origin"
	CacheInvalidTimeout CacheStatus = "invalid-timeout"
	CacheInvalidSize    CacheStatus = "invalid-size"
)

// Cache is the permanent-copy descriptor embedded in raindrop metadata and
// returned by cache creation calls.
type Cache struct {
	Status  CacheStatus `json:"status"`
	Size    int64       `json:"size"`
	Created string      `json:"created"`
}

// SizeMB renders the cache size as megabytes with two decimals.
func (c *Cache) SizeMB() string {
	return fmt.Sprintf("%.2f", float64(c.Size)/(1024*1024))
}

// CreatedTime parses the creation timestamp. The API has returned more than
// one timestamp layout over time, so parsing is lenient.
func (c *Cache) CreatedTime() (time.Time, error) {
	return dateparse.ParseAny(c.Created)
}

// CreatedDisplay renders the creation timestamp for human output. Timestamps
// that do not parse come back verbatim.
func (c *Cache) CreatedDisplay() string {
	ts, err := c.CreatedTime()
	if err != nil {
		return c.Created
	}
	return ts.UTC().Format("2006-01-02 15:04")
}

// Narrative returns the fixed advisory text for the descriptor's status.
// Every defined status maps to a distinct, non-empty message; unknown
// statuses fall back to naming the raw value.
func (c *Cache) Narrative() string {
	switch c.Status {
	case CacheReady:
		return fmt.Sprintf(
			"Permanent copy is ready. Size: %s MB, created %s. "+
				"Request the copy again to retrieve the signed URL.",
			c.SizeMB(), c.Created)
	case CacheCreating:
		return "Permanent copy is being created. This may take a few moments; " +
			"check back later to see when it is ready."
	case CacheRetry:
		return "Permanent copy creation is being retried. " +
			"The service will attempt to create the cache again."
	case CacheFailed:
		return "Permanent copy creation failed. " +
			"The webpage content could not be archived."
	case CacheInvalidOrigin:
		return "Cannot create permanent copy: invalid origin. " +
			"The source website does not allow archiving."
	case CacheInvalidTimeout:
		return "Cannot create permanent copy: timeout. " +
			"The webpage took too long to load."
	case CacheInvalidSize:
		return "Cannot create permanent copy: size limit exceeded. " +
			"The webpage content is too large to archive."
	default:
		return fmt.Sprintf("Status: %s", c.Status)
	}
}

// MaxContentLength is the bound applied to retrieved copy content. Truncation
// keeps responses within a downstream consumer's size limits; it is not an
// error condition.
const MaxContentLength = 8000

// CopyLink is the outcome of resolving a permanent-copy link. SignedURL is
// empty when the copy is not ready yet, or when it is ready but the signed
// URL could not be retrieved; Cache then carries whatever the service
// reported, and Advisory explains the state.
type CopyLink struct {
	ID        int
	Title     string
	Type      string
	SourceURL string
	SignedURL string
	Cache     *Cache
	Advisory  string
}

// CopyContent is the outcome of retrieving permanent-copy content. Content
// holds at most MaxContentLength bytes of text; Raw holds the full body.
type CopyContent struct {
	ID        int
	Title     string
	Type      string
	SourceURL string
	Cache     *Cache
	Content   string
	Raw       []byte
	MediaType string
	TotalSize int
	Truncated bool
	Advisory  string
}

const signedURLAdvisory = "This is a temporary signed URL that provides " +
	"direct access to the stored copy. It will expire after a short time."

// GetCopyLink resolves the permanent-copy link for a raindrop. Documents
// yield a signed download URL; web pages yield a signed cache URL when the
// copy is ready, the cache descriptor alone when the URL cannot be resolved,
// and otherwise trigger a creation request whose resulting status is
// reported in the advisory text.
func (c *Client) GetCopyLink(ctx context.Context, id int) (*CopyLink, error) {
	r, err := c.GetRaindrop(ctx, id)
	if err != nil {
		return nil, err
	}

	link := &CopyLink{
		ID:        r.ID,
		Title:     r.Title,
		Type:      r.Type,
		SourceURL: r.Link,
	}

	if r.IsDocument() {
		signed, err := c.resolveSignedURL(ctx,
			fmt.Sprintf("/raindrop/%d/file", id), c.cfg.FileSigningHosts)
		if err != nil {
			return nil, fmt.Errorf(
				"getting document link: %w (document downloads require a Pro subscription)", err)
		}
		link.SignedURL = signed
		link.Advisory = signedURLAdvisory
		return link, nil
	}

	if r.Cache != nil && r.Cache.Status == CacheReady {
		link.Cache = r.Cache
		signed, err := c.resolveSignedURL(ctx,
			fmt.Sprintf("/raindrop/%d/cache", id), nil)
		if err != nil {
			// Partial information beats total failure: the copy
			// exists even though its URL is unavailable right now.
			c.logger.Warn("cache ready but signed URL unavailable",
				"id", id, "error", err)
			link.Advisory = "Cache is available but a signed URL could not be retrieved."
			return link, nil
		}
		link.SignedURL = signed
		link.Advisory = signedURLAdvisory
		return link, nil
	}

	cache, err := c.createCache(ctx, id)
	if err != nil {
		return nil, err
	}
	link.Cache = cache
	link.Advisory = cache.Narrative()
	return link, nil
}

// GetCopyContent retrieves the permanent-copy content of a raindrop. The
// ready branch performs the full three-hop resolution (metadata, redirect,
// signed fetch); other branches behave as GetCopyLink and report the cache
// status without content.
func (c *Client) GetCopyContent(ctx context.Context, id int) (*CopyContent, error) {
	r, err := c.GetRaindrop(ctx, id)
	if err != nil {
		return nil, err
	}

	content := &CopyContent{
		ID:        r.ID,
		Title:     r.Title,
		Type:      r.Type,
		SourceURL: r.Link,
	}

	if r.IsDocument() {
		signed, err := c.resolveSignedURL(ctx,
			fmt.Sprintf("/raindrop/%d/file", id), c.cfg.FileSigningHosts)
		if err != nil {
			return nil, fmt.Errorf(
				"getting document file: %w (document downloads require a Pro subscription)", err)
		}
		return c.fillContent(ctx, content, signed)
	}

	if r.Cache != nil && r.Cache.Status == CacheReady {
		content.Cache = r.Cache
		signed, err := c.resolveSignedURL(ctx,
			fmt.Sprintf("/raindrop/%d/cache", id), nil)
		if err != nil {
			c.logger.Warn("cache ready but signed URL unavailable",
				"id", id, "error", err)
			content.Advisory = "Cache is available but its content could not be retrieved."
			return content, nil
		}
		return c.fillContent(ctx, content, signed)
	}

	cache, err := c.createCache(ctx, id)
	if err != nil {
		return nil, err
	}
	content.Cache = cache
	content.Advisory = cache.Narrative()
	return content, nil
}

// fillContent fetches the signed URL and applies the truncation bound.
func (c *Client) fillContent(ctx context.Context, content *CopyContent, signedURL string) (*CopyContent, error) {
	body, mediaType, err := c.fetchSignedURL(ctx, signedURL)
	if err != nil {
		if content.Cache != nil {
			c.logger.Warn("content fetch failed after redirect",
				"id", content.ID, "error", err)
			content.Advisory = "Cache is available but its content could not be retrieved."
			return content, nil
		}
		return nil, err
	}

	content.Raw = body
	content.MediaType = mediaType
	content.TotalSize = len(body)
	content.Content, content.Truncated = truncateContent(string(body))
	content.Advisory = signedURLAdvisory
	return content, nil
}

// truncateContent bounds s at MaxContentLength bytes, appending an explicit
// marker that states the untruncated size. The cut backs off to a rune
// boundary so the truncated text stays valid UTF-8. Deterministic for
// identical input.
func truncateContent(s string) (string, bool) {
	if len(s) <= MaxContentLength {
		return s, false
	}
	cut := MaxContentLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s\n\n... [content truncated - total size: %d bytes]",
		s[:cut], len(s)), true
}

// cacheCreateVerbs are the candidate verbs for a cache creation call, tried
// in order with the first success short-circuiting. The remote API is
// inconsistently documented on which verb it accepts.
var cacheCreateVerbs = []string{http.MethodPost, http.MethodPut}

// copyResponse is the envelope of a cache creation call.
type copyResponse struct {
	Result bool   `json:"result"`
	Cache  *Cache `json:"cache"`
	Link   string `json:"link,omitempty"`
}

// createCache requests creation of a permanent copy. The first failure's
// message is surfaced when every verb fails, unless it pattern-matches an
// entitlement restriction, which gets its own error type.
func (c *Client) createCache(ctx context.Context, id int) (*Cache, error) {
	path := fmt.Sprintf("/raindrop/%d/cache", id)

	var primary error
	var attempts *multierror.Error
	for _, verb := range cacheCreateVerbs {
		var resp copyResponse
		err := c.do(ctx, verb, path, nil, nil, &resp)
		if err == nil {
			if resp.Cache == nil {
				return nil, &APIError{
					Message: "cache information not available in response",
				}
			}
			return resp.Cache, nil
		}
		if primary == nil {
			primary = err
		}
		attempts = multierror.Append(attempts,
			fmt.Errorf("%s %s: %w", verb, path, err))
	}

	if isEntitlementError(primary) {
		return nil, &EntitlementError{Cause: attempts.ErrorOrNil()}
	}
	c.logger.Debug("cache creation attempts failed", "id", id,
		"error", attempts.ErrorOrNil())
	return nil, primary
}
