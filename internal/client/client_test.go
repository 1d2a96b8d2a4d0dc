package client_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/go-vimeo/internal/client"
	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

func TestNew_RequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := client.New(context.Background(), &vimeo.Config{})
	require.ErrorIs(t, err, vimeo.ErrConsumerCredentialsRequired)

	_, err = client.New(context.Background(), &vimeo.Config{ConsumerKey: "key-only"})
	require.ErrorIs(t, err, vimeo.ErrConsumerCredentialsRequired)
}

func TestClient_Call(t *testing.T) {
	t.Parallel()

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "vimeo.videos.getInfo", r.URL.Query().Get("method"))
		assert.Equal(t, "12345", r.URL.Query().Get("video_id"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Contains(t, r.Header.Get("Authorization"), "OAuth")

		_, _ = w.Write([]byte(`{"stat":"ok","generated_in":"0.01","video":{"id":"12345","title":"Sunset"}}`))
	})

	apiClient := newTestClient(t, server)

	result, err := apiClient.Call(context.Background(), "videos.getInfo", vimeo.Params{"video_id": "12345"})
	require.NoError(t, err)

	payload, ok := result.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Sunset", payload["title"])
}

func TestClient_CallUnknownMethod(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"stat":"ok"}`))
	})

	apiClient := newTestClient(t, server)

	_, err := apiClient.Call(context.Background(), "movies.getInfo", nil)
	require.ErrorIs(t, err, vimeo.ErrUnknownMethod)

	// The bad name never reaches the wire
	assert.Equal(t, int64(0), requests.Load())
}

func TestClient_CallUsesCache(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"stat":"ok","video":{"id":"12345"}}`))
	})

	apiClient := newTestClient(t, server)
	ctx := context.Background()

	// Same method and parameters, any argument order: one request
	_, err := apiClient.Call(ctx, "videos.getInfo", vimeo.Params{"video_id": "12345", "extra": "x"})
	require.NoError(t, err)

	result, err := apiClient.Call(ctx, "videos.getInfo", vimeo.Params{"extra": "x", "video_id": "12345"})
	require.NoError(t, err)
	assert.NotNil(t, result.Payload)

	assert.Equal(t, int64(1), requests.Load())

	// Different parameters miss
	_, err = apiClient.Call(ctx, "videos.getInfo", vimeo.Params{"video_id": "99999"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), requests.Load())
}

func TestClient_FlushCache(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"stat":"ok","video":{"id":"12345"}}`))
	})

	apiClient := newTestClient(t, server)
	ctx := context.Background()

	_, err := apiClient.Call(ctx, "videos.getInfo", vimeo.Params{"video_id": "12345"})
	require.NoError(t, err)

	apiClient.FlushCache()

	_, err = apiClient.Call(ctx, "videos.getInfo", vimeo.Params{"video_id": "12345"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), requests.Load())
}

func TestClient_ZeroCacheTimeoutDisablesCaching(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"stat":"ok","video":{"id":"12345"}}`))
	})

	apiClient := newTestClientWithConfig(t, server, func(config *vimeo.Config) {
		config.CacheTimeout = 0
	})
	ctx := context.Background()

	for range 3 {
		_, err := apiClient.Call(ctx, "videos.getInfo", vimeo.Params{"video_id": "12345"})
		require.NoError(t, err)
	}

	assert.Equal(t, int64(3), requests.Load())
}

func TestClient_APIFailureNotCached(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"stat":"fail","err":{"code":"1","msg":"Method not found"}}`))
	})

	apiClient := newTestClient(t, server)
	ctx := context.Background()

	for range 2 {
		_, err := apiClient.Call(ctx, "videos.getInfo", vimeo.Params{"video_id": "12345"})
		require.Error(t, err)
		assert.True(t, vimeo.IsAPIFailure(err))
	}

	// Failures go back to the wire every time
	assert.Equal(t, int64(2), requests.Load())
}

func TestClient_CallXMLFormat(t *testing.T) {
	t.Parallel()

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "xml", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`<rsp stat="ok"><video id="12345"/></rsp>`))
	})

	apiClient := newTestClient(t, server)

	result, err := apiClient.Call(context.Background(), "videos.getInfo", vimeo.Params{
		"video_id": "12345",
		"format":   vimeo.FormatXML,
	})
	require.NoError(t, err)
	require.NotNil(t, result.XML)
	assert.Equal(t, "rsp", result.XML.Root().Tag)
	assert.Nil(t, result.Payload)
}

func TestClient_CallRaw(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		w.Header().Set("X-Custom", "value")
		_, _ = w.Write([]byte(`{"stat":"ok","video":{"id":"12345"}}`))
	})

	apiClient := newTestClient(t, server)
	ctx := context.Background()

	// Raw calls never touch the cache
	for range 2 {
		raw, err := apiClient.CallRaw(ctx, "videos.getInfo", vimeo.Params{"video_id": "12345"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, raw.StatusCode)
		assert.Equal(t, "value", raw.Headers.Get("X-Custom"))
		assert.Contains(t, string(raw.Body), `"id":"12345"`)
	}

	assert.Equal(t, int64(2), requests.Load())
}

func TestClient_CallRawReturnsErrorStatuses(t *testing.T) {
	t.Parallel()

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("server error"))
	})

	apiClient := newTestClient(t, server)

	raw, err := apiClient.CallRaw(context.Background(), "videos.getInfo", vimeo.Params{"video_id": "12345"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, raw.StatusCode)
	assert.Equal(t, "server error", string(raw.Body))
}

func TestClient_CallRawUnknownMethod(t *testing.T) {
	t.Parallel()

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"stat":"ok"}`))
	})

	apiClient := newTestClient(t, server)

	_, err := apiClient.CallRaw(context.Background(), "movies.getInfo", nil)
	require.ErrorIs(t, err, vimeo.ErrUnknownMethod)
}

func TestClient_Token(t *testing.T) {
	t.Parallel()

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {})

	seeded := newTestClient(t, server)

	token := seeded.Token()
	require.NotNil(t, token)
	assert.Equal(t, "test-token", token.Token)
	assert.Equal(t, "test-token-secret", token.Secret)

	anonymous := newTestClientWithConfig(t, server, func(config *vimeo.Config) {
		config.Token = ""
		config.TokenSecret = ""
	})
	assert.Nil(t, anonymous.Token())
}

func TestClient_HandshakeOutOfOrder(t *testing.T) {
	t.Parallel()

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {})

	apiClient := newTestClientWithConfig(t, server, func(config *vimeo.Config) {
		config.Token = ""
		config.TokenSecret = ""
	})

	_, err := apiClient.AuthorizationURL("read")
	require.Error(t, err)

	err = apiClient.SetVerifier("verifier")
	require.Error(t, err)

	_, err = apiClient.GetAccessToken(context.Background())
	require.Error(t, err)
}

func TestClient_FullHandshake(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/request_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
		_, _ = w.Write([]byte("oauth_token=req-token&oauth_token_secret=req-secret&oauth_callback_confirmed=true"))
	})
	mux.HandleFunc("/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
		_, _ = w.Write([]byte("oauth_token=access-token&oauth_token_secret=access-secret"))
	})

	server := newAPIServer(t, mux.ServeHTTP)

	apiClient := newTestClientWithConfig(t, server, func(config *vimeo.Config) {
		config.Token = ""
		config.TokenSecret = ""
		config.RequestTokenURL = server.URL + "/oauth/request_token"
		config.AuthorizeURL = server.URL + "/oauth/authorize"
		config.AccessTokenURL = server.URL + "/oauth/access_token"
	})
	ctx := context.Background()

	require.NoError(t, apiClient.GetRequestToken(ctx))

	authURL, err := apiClient.AuthorizationURL("write")
	require.NoError(t, err)
	assert.Contains(t, authURL, "oauth_token=req-token")
	assert.Contains(t, authURL, "permission=write")

	require.NoError(t, apiClient.SetVerifier("verifier"))

	token, err := apiClient.GetAccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", token.Token)
	assert.Equal(t, "access-secret", token.Secret)
}

func TestClient_ResourceClientsInitialized(t *testing.T) {
	t.Parallel()

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {})
	apiClient := newTestClient(t, server)

	assert.NotNil(t, apiClient.Videos())
	assert.NotNil(t, apiClient.People())
	assert.NotNil(t, apiClient.Channels())
	assert.NotNil(t, apiClient.Albums())
	assert.NotNil(t, apiClient.Groups())
	assert.NotNil(t, apiClient.Activity())
	assert.NotNil(t, apiClient.Contacts())
	assert.NotNil(t, apiClient.Test())
}

func TestClient_HTTPErrorSurfaces(t *testing.T) {
	t.Parallel()

	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	})

	apiClient := newTestClient(t, server)

	_, err := apiClient.Call(context.Background(), "videos.getInfo", vimeo.Params{"video_id": "12345"})
	require.Error(t, err)

	httpErr := &vimeo.HTTPError{}
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
}
