package raindrop

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := New(&Config{
		Token:   "test-token",
		BaseURL: baseURL,
		Logger:  hclog.NewNullLogger(),
	})
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		_, err := New(&Config{BaseURL: DefaultBaseURL})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Token")
	})

	t.Run("rejects a non-http base URL", func(t *testing.T) {
		_, err := New(&Config{Token: "t", BaseURL: "ftp://example.com"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scheme")
	})

	t.Run("applies defaults", func(t *testing.T) {
		cfg := &Config{Token: "t"}
		client, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, defaultTimeout, cfg.Timeout)
		assert.Equal(t, defaultContentTimeout, cfg.ContentTimeout)
		assert.Equal(t, defaultFileSigningHosts, cfg.FileSigningHosts)
		assert.NotNil(t, client.logger)
	})
}

func TestClientDo(t *testing.T) {
	t.Run("sends bearer token and user agent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, defaultUserAgent, r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"result":true}`))
		}))
		defer server.Close()

		client := testClient(t, server.URL)
		err := client.do(context.Background(), http.MethodGet, "/user", nil, nil, nil)
		require.NoError(t, err)
	})

	t.Run("network failure yields an APIError without status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		client := testClient(t, server.URL)
		err := client.do(context.Background(), http.MethodGet, "/user", nil, nil, nil)
		require.Error(t, err)

		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		assert.Equal(t, 0, apiErr.Status)
		assert.Contains(t, apiErr.Message, "request failed")
	})

	t.Run("non-JSON content type yields raw text, not a decode error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html>cached page</html>"))
		}))
		defer server.Close()

		client := testClient(t, server.URL)
		var body string
		err := client.do(context.Background(), http.MethodGet, "/raindrop/1/cache", nil, nil, &body)
		require.NoError(t, err)
		assert.Equal(t, "<html>cached page</html>", body)
	})

	t.Run("non-JSON body with a struct result is a decode error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html>interstitial</html>"))
		}))
		defer server.Close()

		client := testClient(t, server.URL)
		_, err := client.GetRaindrop(context.Background(), 1)
		require.Error(t, err)
		assert.False(t, IsNotFound(err))

		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		assert.Equal(t, http.StatusOK, apiErr.Status)
		assert.Contains(t, apiErr.Message, "unexpected content type")
	})

	t.Run("encodes query parameters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "golang", r.URL.Query().Get("search"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"result":true,"items":[]}`))
		}))
		defer server.Close()

		client := testClient(t, server.URL)
		_, err := client.ListRaindrops(context.Background(), 0, &ListOptions{Search: "golang"})
		require.NoError(t, err)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		client := testClient(t, server.URL)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := client.do(ctx, http.MethodGet, "/user", nil, nil, nil)
		require.Error(t, err)
	})
}

func TestMaskedToken(t *testing.T) {
	client, err := New(&Config{Token: "0123456789abcdef"})
	require.NoError(t, err)
	assert.Equal(t, "0123...cdef", client.MaskedToken())

	short, err := New(&Config{Token: "short"})
	require.NoError(t, err)
	assert.Equal(t, "***", short.MaskedToken())
}
