package raindrop

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultBaseURL is the Raindrop.io REST API root.
	DefaultBaseURL = "https://api.raindrop.io/rest/v1"

	defaultUserAgent      = "rainstash/" + "0.1.0"
	defaultTimeout        = 30 * time.Second
	defaultContentTimeout = 120 * time.Second
)

// defaultFileSigningHosts is where Raindrop.io file downloads redirect to.
// File copies are stored in S3; cached pages use an unconstrained signing
// domain and are not checked against this list.
var defaultFileSigningHosts = []string{"amazonaws.com"}

// Config holds configuration for the Raindrop.io client.
type Config struct {
	// Token is the bearer token used to authenticate every API call.
	// Required; clients cannot be constructed without one.
	Token string

	// BaseURL is the API root. Default: DefaultBaseURL.
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string

	// Timeout bounds metadata and redirect-resolution calls.
	// Default: 30 seconds.
	Timeout time.Duration

	// ContentTimeout bounds fetches of signed URLs, which can be large
	// binary downloads. Default: 120 seconds.
	ContentTimeout time.Duration

	// FileSigningHosts are the storage domains a file-download redirect is
	// allowed to point at. Default: amazonaws.com. An empty list disables
	// the check.
	FileSigningHosts []string

	// Logger for debug output. Defaults to a null logger. Tokens and
	// signed URLs are never written to it in full.
	Logger hclog.Logger
}

// DefaultConfig returns a Config with defaults applied. The token must still
// be supplied by the caller.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:          DefaultBaseURL,
		UserAgent:        defaultUserAgent,
		Timeout:          defaultTimeout,
		ContentTimeout:   defaultContentTimeout,
		FileSigningHosts: defaultFileSigningHosts,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Token, validation.Required),
		validation.Field(&c.BaseURL, validation.Required),
	); err != nil {
		return err
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https scheme, got: %s", u.Scheme)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got: %v", c.Timeout)
	}
	if c.ContentTimeout < 0 {
		return fmt.Errorf("content timeout must be non-negative, got: %v", c.ContentTimeout)
	}
	return nil
}

// setDefaults fills unset optional fields.
func (c *Config) setDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.ContentTimeout == 0 {
		c.ContentTimeout = defaultContentTimeout
	}
	if c.FileSigningHosts == nil {
		c.FileSigningHosts = defaultFileSigningHosts
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
}

// newHTTPClient builds the client used for ordinary API calls.
func (c *Config) newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: c.Timeout,
	}
}

// newRedirectClient builds the client used for redirect resolution. It
// returns redirect responses untouched so the Location header can be
// inspected before anything is fetched: the signed URL must never receive
// the bearer header.
func (c *Config) newRedirectClient() *http.Client {
	return &http.Client{
		Timeout: c.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// newContentClient builds the client used to fetch signed URLs.
func (c *Config) newContentClient() *http.Client {
	return &http.Client{
		Timeout: c.ContentTimeout,
	}
}
