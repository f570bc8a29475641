// Package config loads the optional rainstash HCL configuration file and
// resolves it, together with the environment, into a raindrop client
// configuration.
//
// Example configuration:
//
//	base_url           = "https://api.raindrop.io/rest/v1"
//	token_env          = "RAINDROP_TOKEN"
//	timeout            = "30s"
//	content_timeout    = "2m"
//	file_signing_hosts = ["amazonaws.com"]
//	log_level          = "info"
//
// The token itself always comes from the environment; the file only names
// the variable so credentials never land on disk next to the config.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/rainstash/rainstash/pkg/raindrop"
)

// DefaultTokenEnv is the environment variable consulted for the bearer
// token when the config file does not name another one.
const DefaultTokenEnv = "RAINDROP_TOKEN"

// Config is the on-disk configuration. Every field is optional; an absent
// config file is equivalent to an empty one.
type Config struct {
	BaseURL          string   `hcl:"base_url,optional"`
	TokenEnv         string   `hcl:"token_env,optional"`
	Timeout          string   `hcl:"timeout,optional"`
	ContentTimeout   string   `hcl:"content_timeout,optional"`
	FileSigningHosts []string `hcl:"file_signing_hosts,optional"`
	LogLevel         string   `hcl:"log_level,optional"`
}

// Load parses the configuration file at path. An empty path returns an
// empty configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration from %s: %w", path, err)
	}
	return cfg, nil
}

// ClientConfig resolves the file configuration and environment into a
// raindrop client configuration. The token is read from the configured
// environment variable; its absence surfaces as a validation error when the
// client is constructed.
func (c *Config) ClientConfig(logger hclog.Logger) (*raindrop.Config, error) {
	out := raindrop.DefaultConfig()
	out.Logger = logger

	tokenEnv := c.TokenEnv
	if tokenEnv == "" {
		tokenEnv = DefaultTokenEnv
	}
	out.Token = os.Getenv(tokenEnv)

	if c.BaseURL != "" {
		out.BaseURL = c.BaseURL
	}
	if c.FileSigningHosts != nil {
		out.FileSigningHosts = c.FileSigningHosts
	}

	var err error
	if out.Timeout, err = parseDuration(c.Timeout, out.Timeout); err != nil {
		return nil, fmt.Errorf("invalid timeout: %w", err)
	}
	if out.ContentTimeout, err = parseDuration(c.ContentTimeout, out.ContentTimeout); err != nil {
		return nil, fmt.Errorf("invalid content_timeout: %w", err)
	}

	return out, nil
}

// LogLevelOrDefault maps the configured level to hclog, defaulting to info.
func (c *Config) LogLevelOrDefault() hclog.Level {
	if c.LogLevel == "" {
		return hclog.Info
	}
	return hclog.LevelFromString(c.LogLevel)
}

func parseDuration(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	return time.ParseDuration(s)
}
