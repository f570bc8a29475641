package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rainstash.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path yields empty config", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, &Config{}, cfg)
	})

	t.Run("parses an HCL file", func(t *testing.T) {
		path := writeConfig(t, `
base_url           = "https://raindrop.internal/rest/v1"
token_env          = "MY_TOKEN"
timeout            = "10s"
file_signing_hosts = ["storage.example"]
log_level          = "debug"
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://raindrop.internal/rest/v1", cfg.BaseURL)
		assert.Equal(t, "MY_TOKEN", cfg.TokenEnv)
		assert.Equal(t, []string{"storage.example"}, cfg.FileSigningHosts)
		assert.Equal(t, hclog.Debug, cfg.LogLevelOrDefault())
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
		require.Error(t, err)
	})
}

func TestClientConfig(t *testing.T) {
	t.Run("reads the token from the named env var", func(t *testing.T) {
		t.Setenv("MY_TOKEN", "secret")
		cfg := &Config{TokenEnv: "MY_TOKEN", Timeout: "10s"}

		cc, err := cfg.ClientConfig(hclog.NewNullLogger())
		require.NoError(t, err)
		assert.Equal(t, "secret", cc.Token)
		assert.Equal(t, 10*time.Second, cc.Timeout)
	})

	t.Run("defaults to RAINDROP_TOKEN", func(t *testing.T) {
		t.Setenv(DefaultTokenEnv, "from-default-env")
		cc, err := (&Config{}).ClientConfig(hclog.NewNullLogger())
		require.NoError(t, err)
		assert.Equal(t, "from-default-env", cc.Token)
	})

	t.Run("rejects a malformed timeout", func(t *testing.T) {
		_, err := (&Config{Timeout: "soon"}).ClientConfig(hclog.NewNullLogger())
		require.Error(t, err)
	})
}
