package tenor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanctyr/core"
)

func TestTenorClient_ResolveGifURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "12345", r.URL.Query().Get("ids"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "gif", r.URL.Query().Get("media_filter"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{"media_formats": {"gif": {"url": "https://media.tenor.com/xyz/dance.gif"}}}
			]
		}`))
	}))
	defer server.Close()

	originalBase := tenorAPIBase
	tenorAPIBase = server.URL
	defer func() { tenorAPIBase = originalBase }()

	client := NewTenorClient(&http.Client{}, "test-key")

	gifURL, err := client.ResolveGifURL(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, "https://media.tenor.com/xyz/dance.gif", gifURL)
}

func TestTenorClient_ResolveGifURL_NotConfigured(t *testing.T) {
	client := NewTenorClient(&http.Client{}, "")

	_, err := client.ResolveGifURL(context.Background(), "12345")
	assert.ErrorIs(t, err, core.ErrNotConfigured)
}

func TestTenorClient_ResolveGifURL_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	originalBase := tenorAPIBase
	tenorAPIBase = server.URL
	defer func() { tenorAPIBase = originalBase }()

	client := NewTenorClient(&http.Client{}, "test-key")

	_, err := client.ResolveGifURL(context.Background(), "12345")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
