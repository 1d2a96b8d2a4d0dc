package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reelworks/go-vimeo/internal/client"
	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// newAPIServer starts an httptest server standing in for the REST endpoint.
func newAPIServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

// newTestClient builds a client against the given server with a seeded
// access token and a generous cache timeout.
func newTestClient(t *testing.T, server *httptest.Server) *client.Client {
	t.Helper()

	return newTestClientWithConfig(t, server, func(config *vimeo.Config) {})
}

func newTestClientWithConfig(t *testing.T, server *httptest.Server, modify func(*vimeo.Config)) *client.Client {
	t.Helper()

	config := &vimeo.Config{
		ConsumerKey:    "test-key",
		ConsumerSecret: "test-secret",
		Token:          "test-token",
		TokenSecret:    "test-token-secret",
		APIEndpoint:    server.URL + "/api/rest/v2/",
		CacheTimeout:   1 * time.Minute,
		CacheSize:      100,
	}
	modify(config)

	apiClient, err := client.New(context.Background(), config)
	require.NoError(t, err)

	return apiClient
}

// stubCaller is a canned vimeo.MethodCaller for the typed resource clients.
type stubCaller struct {
	payload interface{}
	rawBody []byte
	err     error

	method string
	params vimeo.Params
}

func (s *stubCaller) Call(ctx context.Context, method string, params vimeo.Params) (*vimeo.Result, error) {
	s.method = method
	s.params = params

	if s.err != nil {
		return nil, s.err
	}

	return &vimeo.Result{Format: vimeo.FormatJSON, Payload: s.payload}, nil
}

func (s *stubCaller) CallRaw(ctx context.Context, method string, params vimeo.Params) (*vimeo.RawResult, error) {
	s.method = method
	s.params = params

	if s.err != nil {
		return nil, s.err
	}

	return &vimeo.RawResult{StatusCode: http.StatusOK, Body: s.rawBody}, nil
}
