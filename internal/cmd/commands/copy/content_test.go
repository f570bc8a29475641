package copy

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainstash/rainstash/internal/cmd/base"
)

func writeTestConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rainstash.hcl")
	contents := fmt.Sprintf("base_url = %q\n", baseURL)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func newCopyServer(t *testing.T) *httptest.Server {
	t.Helper()
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/raindrop/1" && r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"result":true,"item":{"_id":1,"title":"A Page",
				"link":"https://src.example","type":"article",
				"cache":{"status":"ready","size":1024,"created":"2024-05-01T10:00:00Z"}}}`)
		case r.URL.Path == "/raindrop/1/cache" && r.Method == http.MethodGet:
			w.Header().Set("Location", server.URL+"/signed?sig=1")
			w.WriteHeader(http.StatusTemporaryRedirect)
		case r.URL.Path == "/signed":
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, "<html>archived</html>")
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestContentCommand(t *testing.T) {
	t.Setenv("RAINDROP_TOKEN", "test-token")

	t.Run("writes the full body through the filesystem", func(t *testing.T) {
		server := newCopyServer(t)
		ui := cli.NewMockUi()
		fs := afero.NewMemMapFs()
		c := &ContentCommand{Command: newBaseCommand(ui, fs)}

		code := c.Run([]string{
			"-config", writeTestConfig(t, server.URL),
			"-out", "/copy.html",
			"1",
		})
		require.Equal(t, 0, code, ui.ErrorWriter.String())

		saved, err := afero.ReadFile(fs, "/copy.html")
		require.NoError(t, err)
		assert.Equal(t, "<html>archived</html>", string(saved))
		assert.Contains(t, ui.OutputWriter.String(), "Wrote 21 bytes")
	})

	t.Run("prints truncated content without -out", func(t *testing.T) {
		server := newCopyServer(t)
		ui := cli.NewMockUi()
		c := &ContentCommand{Command: newBaseCommand(ui, afero.NewMemMapFs())}

		code := c.Run([]string{"-config", writeTestConfig(t, server.URL), "1"})
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		assert.Contains(t, ui.OutputWriter.String(), "<html>archived</html>")
	})

	t.Run("renders the cache timestamp in display form", func(t *testing.T) {
		server := newCopyServer(t)
		ui := cli.NewMockUi()
		c := &ContentCommand{Command: newBaseCommand(ui, afero.NewMemMapFs())}

		code := c.Run([]string{"-config", writeTestConfig(t, server.URL), "1"})
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		assert.Contains(t, ui.OutputWriter.String(), "created 2024-05-01 10:00")
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		ui := cli.NewMockUi()
		c := &ContentCommand{Command: newBaseCommand(ui, afero.NewMemMapFs())}

		code := c.Run([]string{"abc"})
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "invalid raindrop ID")
	})
}

func TestLinkCommandNotFound(t *testing.T) {
	t.Setenv("RAINDROP_TOKEN", "test-token")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":true,"item":null}`)
	}))
	defer server.Close()

	ui := cli.NewMockUi()
	c := &LinkCommand{Command: newBaseCommand(ui, afero.NewMemMapFs())}

	code := c.Run([]string{"-config", writeTestConfig(t, server.URL), "1"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "not found")
}

func newBaseCommand(ui cli.Ui, fs afero.Fs) *base.Command {
	return &base.Command{
		UI:  ui,
		Log: hclog.NewNullLogger(),
		FS:  fs,
	}
}
