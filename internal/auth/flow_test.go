package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/go-vimeo/internal/auth"
	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// newHandshakeServer serves the two token-exchange endpoints with canned
// form-encoded responses.
func newHandshakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/request_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
		_, _ = w.Write([]byte("oauth_token=req-token&oauth_token_secret=req-secret&oauth_callback_confirmed=true"))
	})
	mux.HandleFunc("/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
		_, _ = w.Write([]byte("oauth_token=access-token&oauth_token_secret=access-secret"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func testEndpoints(server *httptest.Server) auth.Endpoints {
	return auth.Endpoints{
		RequestTokenURL: server.URL + "/oauth/request_token",
		AuthorizeURL:    server.URL + "/oauth/authorize",
		AccessTokenURL:  server.URL + "/oauth/access_token",
	}
}

func TestFlowManager_FullHandshake(t *testing.T) {
	t.Parallel()

	server := newHandshakeServer(t)
	manager := auth.NewFlowManager("consumer-key", "consumer-secret", testEndpoints(server), server.Client())
	ctx := context.Background()

	// Step 1: request token
	err := manager.RequestToken(ctx)
	require.NoError(t, err)

	stored := manager.Store().Get()
	require.NotNil(t, stored)
	assert.Equal(t, "req-token", stored.Token)
	assert.Equal(t, "req-secret", stored.Secret)

	// Step 2a: authorization URL carries the token and permission
	authURL, err := manager.AuthorizationURL("write")
	require.NoError(t, err)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "req-token", parsed.Query().Get("oauth_token"))
	assert.Equal(t, "write", parsed.Query().Get("permission"))

	// Step 2b: verifier
	err = manager.SetVerifier("granted-verifier")
	require.NoError(t, err)

	// Step 3: access token replaces the request token
	token, err := manager.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", token.Token)
	assert.Equal(t, "access-secret", token.Secret)

	stored = manager.Store().Get()
	require.NotNil(t, stored)
	assert.Equal(t, "access-token", stored.Token)
}

func TestFlowManager_DefaultPermission(t *testing.T) {
	t.Parallel()

	server := newHandshakeServer(t)
	manager := auth.NewFlowManager("consumer-key", "consumer-secret", testEndpoints(server), server.Client())

	err := manager.RequestToken(context.Background())
	require.NoError(t, err)

	authURL, err := manager.AuthorizationURL("")
	require.NoError(t, err)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "read", parsed.Query().Get("permission"))
}

func TestFlowManager_StepsOutOfOrder(t *testing.T) {
	t.Parallel()

	server := newHandshakeServer(t)
	manager := auth.NewFlowManager("consumer-key", "consumer-secret", testEndpoints(server), server.Client())
	ctx := context.Background()

	// Authorization URL before any request token
	_, err := manager.AuthorizationURL("read")
	require.ErrorIs(t, err, auth.ErrNoRequestToken)

	// Verifier before any request token
	err = manager.SetVerifier("verifier")
	require.ErrorIs(t, err, auth.ErrNoRequestToken)

	// Access token before any request token
	_, err = manager.AccessToken(ctx)
	require.ErrorIs(t, err, auth.ErrNoRequestToken)

	// Access token with a request token but no verifier
	err = manager.RequestToken(ctx)
	require.NoError(t, err)

	_, err = manager.AccessToken(ctx)
	require.ErrorIs(t, err, auth.ErrNoVerifier)
}

func TestFlowManager_RequestTokenExchangeFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	manager := auth.NewFlowManager("bad-key", "bad-secret", testEndpoints(server), server.Client())

	err := manager.RequestToken(context.Background())
	require.ErrorIs(t, err, vimeo.ErrTokenExchangeFailed)
	assert.Nil(t, manager.Store().Get())
}

func TestFlowManager_SeededAccessToken(t *testing.T) {
	t.Parallel()

	server := newHandshakeServer(t)
	manager := auth.NewFlowManager("consumer-key", "consumer-secret", testEndpoints(server), server.Client())

	// A previously obtained access token skips the handshake entirely
	manager.Store().Set(&auth.Token{Token: "saved-token", Secret: "saved-secret"})

	client, err := manager.HTTPClient(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestFlowManager_HTTPClientWithoutToken(t *testing.T) {
	t.Parallel()

	server := newHandshakeServer(t)
	manager := auth.NewFlowManager("consumer-key", "consumer-secret", testEndpoints(server), server.Client())

	// Consumer-only signing for public methods
	client, err := manager.HTTPClient(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestFlowManager_SignsRequests(t *testing.T) {
	t.Parallel()

	var authorization string

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"stat":"ok"}`))
	}))
	t.Cleanup(api.Close)

	manager := auth.NewFlowManager("consumer-key", "consumer-secret", auth.DefaultEndpoints(), api.Client())
	manager.Store().Set(&auth.Token{Token: "access-token", Secret: "access-secret"})

	client, err := manager.HTTPClient(context.Background())
	require.NoError(t, err)

	resp, err := client.Get(api.URL)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	assert.Contains(t, authorization, `OAuth`)
	assert.Contains(t, authorization, `oauth_consumer_key="consumer-key"`)
	assert.Contains(t, authorization, `oauth_token="access-token"`)
	assert.Contains(t, authorization, `oauth_signature=`)
}
